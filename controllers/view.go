package controllers

import (
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Tatang94/cryptomarketcap/config"
	"github.com/Tatang94/cryptomarketcap/controllers/helpers"
	"github.com/Tatang94/cryptomarketcap/controllers/queries"
	"github.com/Tatang94/cryptomarketcap/display"
	"github.com/Tatang94/cryptomarketcap/types"
)

// The view handlers are the server-side home of the dashboard's transform
// layer: they consume validated records and serve display-ready
// projections. The raw /api endpoints stay schema-shaped and untouched.

func (ctrl *Controller) GetViewGlobal(c *fiber.Ctx) error {
	stats, err := ctrl.Paprika.Global(c.Context())
	if err != nil {
		return respondError(c, err, "view.global")
	}

	return c.Status(200).JSON(display.GlobalStatsView(*stats))
}

func (ctrl *Controller) GetViewTable(c *fiber.Ctx) error {
	errs := new(helpers.Errors)

	params := new(queries.TableQuery)
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
		return respondError(c, err, "view.table")
	}

	rows := make([]types.CryptoTableRow, 0, len(tickers))
	for _, ticker := range tickers {
		rows = append(rows, display.TickerToTableRow(ticker))
	}

	rows = display.SortRows(rows, params.SortConfig())
	page, pageCount := display.Paginate(rows, params.Page)

	snapshot := ctrl.Rates.Snapshot()

	return c.Status(200).JSON(fiber.Map{
		"rows":       page,
		"page_count": pageCount,
		"sort":       params.SortConfig(),
		"currency":   snapshot.Code,
		"rate_as_of": snapshot.AsOf,
	})
}

// GetViewChart serves the 7-day price series. When the true candle series
// is unavailable or empty it substitutes the synthetic generator and flags
// the response as simulated; the two producers are never mixed.
func (ctrl *Controller) GetViewChart(c *fiber.Ctx) error {
	id := c.Params("id")

	ticker, err := ctrl.Paprika.TickerByID(c.Context(), id)
	if err != nil {
		return respondError(c, err, "view.chart")
	}

	candles, err := ctrl.Paprika.OHLCVToday(c.Context(), id)
	if err != nil || len(candles) == 0 {
		if err != nil {
			config.Logger.Warnf("Chart candles unavailable for %s, serving simulated series: %v", id, err)
		}

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		points := display.SyntheticSeries(*ticker, display.FallbackPoints, rng, time.Now())

		return c.Status(200).JSON(fiber.Map{
			"points":    points,
			"simulated": true,
		})
	}

	return c.Status(200).JSON(fiber.Map{
		"points":    display.TrueSeries(candles),
		"simulated": false,
	})
}

func (ctrl *Controller) GetViewMarkets(c *fiber.Ctx) error {
	markets, err := ctrl.Paprika.CoinMarkets(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "view.markets")
	}

	formatter := display.NewFormatter(ctrl.Rates.Snapshot())

	rows := make([]types.MarketRow, 0, len(markets))
	for _, market := range markets {
		rows = append(rows, formatter.MarketToRow(market))
	}

	return c.Status(200).JSON(rows)
}
