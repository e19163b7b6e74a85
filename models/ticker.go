package models

import "github.com/volatiletech/null"

// Quote is one fiat-denominated snapshot of a coin. All values are USD at
// the boundary; display-currency conversion happens in the view layer.
type Quote struct {
	Price               float64 `json:"price"`
	Volume24h           float64 `json:"volume_24h"`
	Volume24hChange24h  float64 `json:"volume_24h_change_24h"`
	MarketCap           float64 `json:"market_cap"`
	MarketCapChange24h  float64 `json:"market_cap_change_24h"`
	PercentChange15m    float64 `json:"percent_change_15m"`
	PercentChange30m    float64 `json:"percent_change_30m"`
	PercentChange1h     float64 `json:"percent_change_1h"`
	PercentChange6h     float64 `json:"percent_change_6h"`
	PercentChange12h    float64 `json:"percent_change_12h"`
	PercentChange24h    float64 `json:"percent_change_24h"`
	PercentChange7d     float64 `json:"percent_change_7d"`
	PercentChange30d    float64 `json:"percent_change_30d"`
	PercentChange1y     float64 `json:"percent_change_1y"`
	ATHPrice            float64 `json:"ath_price"`
	ATHDate             string  `json:"ath_date"`
	PercentFromPriceATH float64 `json:"percent_from_price_ath"`
}

type TickerQuotes struct {
	USD Quote `json:"USD"`
}

// Ticker is the upstream /tickers record. MaxSupply null means uncapped.
// CirculatingSupply is sent by the upstream but not guaranteed, so it stays
// nullable and the table projection falls back to TotalSupply.
type Ticker struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Symbol            string       `json:"symbol"`
	Rank              int          `json:"rank"`
	TotalSupply       float64      `json:"total_supply"`
	MaxSupply         null.Float64 `json:"max_supply"`
	CirculatingSupply null.Float64 `json:"circulating_supply,omitempty"`
	BetaValue         float64      `json:"beta_value"`
	FirstDataAt       string       `json:"first_data_at"`
	LastUpdated       string       `json:"last_updated"`
	Quotes            TickerQuotes `json:"quotes"`
}
