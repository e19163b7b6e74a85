package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Tatang94/cryptomarketcap/controllers/helpers"
	"github.com/Tatang94/cryptomarketcap/controllers/queries"
)

func (ctrl *Controller) GetHealth(c *fiber.Ctx) error {
	if !ctrl.Health.Healthy(c.Context()) {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.health.failed"},
		})
	}

	return c.Status(200).JSON(fiber.Map{
		"status":  "ok",
		"healthy": true,
	})
}

func (ctrl *Controller) GetGlobal(c *fiber.Ctx) error {
	stats, err := ctrl.Paprika.Global(c.Context())
	if err != nil {
		return respondError(c, err, "public.global_stats")
	}

	return c.Status(200).JSON(stats)
}

func (ctrl *Controller) GetCoins(c *fiber.Ctx) error {
	coins, err := ctrl.Paprika.Coins(c.Context())
	if err != nil {
		return respondError(c, err, "public.coins")
	}

	return c.Status(200).JSON(coins)
}

func (ctrl *Controller) GetCoin(c *fiber.Ctx) error {
	details, err := ctrl.Paprika.CoinByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "public.coin")
	}

	return c.Status(200).JSON(details)
}

func (ctrl *Controller) GetTickers(c *fiber.Ctx) error {
	errs := new(helpers.Errors)

	params := new(queries.TickersQuery)
	if err := c.QueryParser(params); err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	helpers.Validate(params, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	tickers, err := ctrl.Paprika.Tickers(c.Context(), params.Start, params.Limit)
	if err != nil {
		return respondError(c, err, "public.tickers")
	}

	return c.Status(200).JSON(tickers)
}

func (ctrl *Controller) GetTicker(c *fiber.Ctx) error {
	ticker, err := ctrl.Paprika.TickerByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "public.ticker")
	}

	return c.Status(200).JSON(ticker)
}

func (ctrl *Controller) GetOHLCVToday(c *fiber.Ctx) error {
	candles, err := ctrl.Paprika.OHLCVToday(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "public.ohlcv")
	}

	return c.Status(200).JSON(candles)
}

func (ctrl *Controller) GetCoinMarkets(c *fiber.Ctx) error {
	markets, err := ctrl.Paprika.CoinMarkets(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "public.markets")
	}

	return c.Status(200).JSON(markets)
}

func (ctrl *Controller) GetExchanges(c *fiber.Ctx) error {
	exchanges, err := ctrl.Paprika.Exchanges(c.Context())
	if err != nil {
		return respondError(c, err, "public.exchanges")
	}

	return c.Status(200).JSON(exchanges)
}

func (ctrl *Controller) GetExchange(c *fiber.Ctx) error {
	exchange, err := ctrl.Paprika.ExchangeByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "public.exchange")
	}

	return c.Status(200).JSON(exchange)
}

// Search rejects an empty query before any upstream contact.
func (ctrl *Controller) Search(c *fiber.Ctx) error {
	errs := new(helpers.Errors)

	params := new(queries.SearchQuery)
	if err := c.QueryParser(params); err != nil {
		return c.Status(400).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	helpers.Validate(params, errs)
	if errs.Size() > 0 {
		return c.Status(400).JSON(errs)
	}

	payload, err := ctrl.Paprika.Search(c.Context(), params.Q)
	if err != nil {
		return respondError(c, err, "public.search")
	}

	c.Set("Content-Type", "application/json")
	return c.Status(200).Send(payload)
}
