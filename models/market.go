package models

import "github.com/volatiletech/null"

// MarketQuote is the optional USD view of a market pair. Price and volume
// may each be absent even when the quote object itself is present.
type MarketQuote struct {
	Price     null.Float64 `json:"price"`
	Volume24h null.Float64 `json:"volume_24h"`
}

type MarketQuotes struct {
	USD *MarketQuote `json:"USD,omitempty"`
}

// Market is one exchange's listing of a trading pair. Exchanges report this
// data unevenly, so everything past the pair identity is nullable.
type Market struct {
	ExchangeID             string        `json:"exchange_id"`
	ExchangeName           string        `json:"exchange_name"`
	Pair                   string        `json:"pair"`
	BaseCurrencyID         string        `json:"base_currency_id"`
	QuoteCurrencyID        string        `json:"quote_currency_id"`
	MarketURL              null.String   `json:"market_url,omitempty"`
	Category               null.String   `json:"category,omitempty"`
	FeeType                null.String   `json:"fee_type,omitempty"`
	Outlier                null.Bool     `json:"outlier,omitempty"`
	ReportedVolume24hShare null.Float64  `json:"reported_volume_24h_share,omitempty"`
	Quotes                 *MarketQuotes `json:"quotes,omitempty"`
}
