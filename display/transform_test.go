package display

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null"

	"github.com/Tatang94/cryptomarketcap/models"
)

func sampleTicker() models.Ticker {
	return models.Ticker{
		ID:          "btc-bitcoin",
		Name:        "Bitcoin",
		Symbol:      "BTC",
		Rank:        1,
		TotalSupply: 19500000,
		MaxSupply:   null.Float64From(21000000),
		BetaValue:   0.98,
		FirstDataAt: "2010-07-17T00:00:00Z",
		LastUpdated: "2024-01-01T00:00:00Z",
		Quotes: models.TickerQuotes{
			USD: models.Quote{
				Price:            42000.5,
				Volume24h:        1.2e10,
				MarketCap:        8.2e11,
				PercentChange24h: 2.5,
			},
		},
	}
}

func TestTickerToTableRow(t *testing.T) {
	ticker := sampleTicker()
	row := TickerToTableRow(ticker)

	if row.ID != ticker.ID || row.Name != ticker.Name || row.Symbol != ticker.Symbol {
		t.Error("identity fields must map through unchanged")
	}
	if row.Rank != 1 {
		t.Errorf("rank = %d, want 1", row.Rank)
	}
	if row.Price != 42000.5 || row.Change24h != 2.5 {
		t.Error("quote fields must map through unchanged")
	}
	if row.MarketCap != 8.2e11 || row.Volume24h != 1.2e10 {
		t.Error("market cap / volume must map through unchanged")
	}
	if !row.MaxSupply.Valid || row.MaxSupply.Float64 != 21000000 {
		t.Error("max supply must survive the projection")
	}
	if row.LastUpdated != ticker.LastUpdated {
		t.Error("last updated must map through unchanged")
	}
}

func TestTickerToTableRowDeterministic(t *testing.T) {
	ticker := sampleTicker()

	if TickerToTableRow(ticker) != TickerToTableRow(ticker) {
		t.Error("projection must be pure: same input, same output")
	}
}

func TestTickerToTableRowCirculatingFallback(t *testing.T) {
	ticker := sampleTicker()

	row := TickerToTableRow(ticker)
	if row.CirculatingSupply != ticker.TotalSupply {
		t.Errorf("absent circulating supply must fall back to total, got %v", row.CirculatingSupply)
	}

	ticker.CirculatingSupply = null.Float64From(19000000)
	row = TickerToTableRow(ticker)
	if row.CirculatingSupply != 19000000 {
		t.Errorf("reported circulating supply must win, got %v", row.CirculatingSupply)
	}
}

func TestGlobalStatsView(t *testing.T) {
	stats := models.GlobalStats{
		MarketCapUsd:               1.7e12,
		Volume24hUsd:               9e10,
		BitcoinDominancePercentage: 51.3,
		CryptocurrenciesNumber:     9999,
		MarketCapChange24h:         -0.8,
		Volume24hChange24h:         4.1,
	}

	view := GlobalStatsView(stats)
	if view.MarketCap != stats.MarketCapUsd || view.Volume24h != stats.Volume24hUsd {
		t.Error("totals must map through unchanged")
	}
	if view.BitcoinDominance != 51.3 || view.ActiveCryptos != 9999 {
		t.Error("dominance / active count must map through unchanged")
	}
	if view.MarketCapChange24h != -0.8 || view.VolumeChange24h != 4.1 {
		t.Error("change percentages must map through unchanged")
	}
}

func TestMarketToRowWithQuote(t *testing.T) {
	f := NewFormatter(RateSnapshot{
		Code: "USD", Prefix: "$",
		Rate: decimal.NewFromInt(1),
		AsOf: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	})

	market := models.Market{
		ExchangeID:   "binance",
		ExchangeName: "Binance",
		Pair:         "BTC/USDT",
		MarketURL:    null.StringFrom("https://binance.com/trade/BTC_USDT"),
		Quotes: &models.MarketQuotes{
			USD: &models.MarketQuote{
				Price:     null.Float64From(42000),
				Volume24h: null.Float64From(2.5e9),
			},
		},
	}

	row := f.MarketToRow(market)
	if row.Price != "$42.00K" {
		t.Errorf("price = %q, want $42.00K", row.Price)
	}
	if row.Volume24h != "$2.50B" {
		t.Errorf("volume = %q, want $2.50B", row.Volume24h)
	}
	if row.MarketURL != "https://binance.com/trade/BTC_USDT" {
		t.Errorf("market url = %q", row.MarketURL)
	}
}

func TestMarketToRowMissingQuoteDegradesToNA(t *testing.T) {
	f := NewFormatter(RateSnapshot{
		Code: "USD", Prefix: "$",
		Rate: decimal.NewFromInt(1),
		AsOf: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	})

	cases := map[string]models.Market{
		"nil quotes":   {ExchangeName: "Kraken", Pair: "BTC/EUR"},
		"nil usd":      {ExchangeName: "Kraken", Pair: "BTC/EUR", Quotes: &models.MarketQuotes{}},
		"empty fields": {ExchangeName: "Kraken", Pair: "BTC/EUR", Quotes: &models.MarketQuotes{USD: &models.MarketQuote{}}},
	}

	for name, market := range cases {
		row := f.MarketToRow(market)
		if row.Price != NotAvailable || row.Volume24h != NotAvailable {
			t.Errorf("%s: want N/A price/volume, got %q / %q", name, row.Price, row.Volume24h)
		}
	}
}

func TestSupplyPercentage(t *testing.T) {
	ticker := sampleTicker()
	got := SupplyPercentage(ticker)
	want := 19500000.0 / 21000000.0 * 100

	if got != want {
		t.Errorf("supply percentage = %v, want %v", got, want)
	}

	ticker.MaxSupply = null.Float64{}
	if SupplyPercentage(ticker) != 0 {
		t.Error("uncapped supply must report 0")
	}

	ticker.MaxSupply = null.Float64From(0)
	if SupplyPercentage(ticker) != 0 {
		t.Error("zero max supply must not divide")
	}
}
