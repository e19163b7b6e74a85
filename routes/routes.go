package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Tatang94/cryptomarketcap/controllers"
	"github.com/Tatang94/cryptomarketcap/routes/middlewares"
)

func SetupRouter(ctrl *controllers.Controller) *fiber.App {
	app := fiber.New()

	app.Use(middlewares.RequestLogger())

	app.Get("/api/health", ctrl.GetHealth)
	app.Get("/api/global", ctrl.GetGlobal)
	app.Get("/api/coins", ctrl.GetCoins)
	app.Get("/api/coins/:id", ctrl.GetCoin)
	app.Get("/api/coins/:id/ohlcv/today", ctrl.GetOHLCVToday)
	app.Get("/api/coins/:id/markets", ctrl.GetCoinMarkets)
	app.Get("/api/tickers", ctrl.GetTickers)
	app.Get("/api/tickers/:id", ctrl.GetTicker)
	app.Get("/api/exchanges", ctrl.GetExchanges)
	app.Get("/api/exchanges/:id", ctrl.GetExchange)
	app.Get("/api/search", ctrl.Search)

	app.Get("/api/view/global", ctrl.GetViewGlobal)
	app.Get("/api/view/table", ctrl.GetViewTable)
	app.Get("/api/view/chart/:id", ctrl.GetViewChart)
	app.Get("/api/view/coins/:id/markets", ctrl.GetViewMarkets)

	return app
}
