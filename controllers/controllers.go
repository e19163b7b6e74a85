package controllers

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Tatang94/cryptomarketcap/config"
	"github.com/Tatang94/cryptomarketcap/controllers/helpers"
	"github.com/Tatang94/cryptomarketcap/display"
	"github.com/Tatang94/cryptomarketcap/models"
	"github.com/Tatang94/cryptomarketcap/schema"
	"github.com/Tatang94/cryptomarketcap/services/coinpaprika"
	"github.com/Tatang94/cryptomarketcap/services/health"
)

// MarketData is the upstream gateway surface, satisfied by
// *coinpaprika.Client.
type MarketData interface {
	Global(ctx context.Context) (*models.GlobalStats, error)
	Coins(ctx context.Context) ([]models.Coin, error)
	CoinByID(ctx context.Context, id string) (*models.CoinDetails, error)
	Tickers(ctx context.Context, start, limit int) ([]models.Ticker, error)
	TickerByID(ctx context.Context, id string) (*models.Ticker, error)
	OHLCVToday(ctx context.Context, id string) ([]models.OHLCV, error)
	CoinMarkets(ctx context.Context, id string) ([]models.Market, error)
	Exchanges(ctx context.Context) ([]models.Exchange, error)
	ExchangeByID(ctx context.Context, id string) (*models.Exchange, error)
	Search(ctx context.Context, q string) (json.RawMessage, error)
}

// RateSource yields the current display-currency snapshot.
type RateSource interface {
	Snapshot() display.RateSnapshot
}

type Controller struct {
	Paprika MarketData
	Health  health.Checker
	Rates   RateSource
}

func New(paprika MarketData, checker health.Checker, ratesrc RateSource) *Controller {
	return &Controller{
		Paprika: paprika,
		Health:  checker,
		Rates:   ratesrc,
	}
}

// respondError maps the gateway error taxonomy onto HTTP statuses. Nothing
// here retries; the message names the failing resource, the log carries the
// cause.
func respondError(c *fiber.Ctx, err error, message string) error {
	var badRequest *coinpaprika.BadRequestError
	var upstream *coinpaprika.UpstreamError
	var invalid *schema.Error

	switch {
	case errors.As(err, &badRequest):
		return c.Status(400).JSON(helpers.Errors{
			Errors: []string{message + ".bad_request"},
		})
	case errors.As(err, &upstream):
		config.Logger.Errorf("Upstream error for %s: %v", message, err)
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{message + ".upstream_failed"},
		})
	case errors.As(err, &invalid):
		config.Logger.Errorf("Validation error for %s: %v", message, err)
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{message + ".invalid_payload"},
		})
	default:
		config.Logger.Errorf("Request failed for %s: %v", message, err)
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{message + ".failed"},
		})
	}
}
