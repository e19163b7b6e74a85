package models

import "github.com/volatiletech/null"

type ExchangeLinks struct {
	Website []string `json:"website,omitempty"`
	Twitter []string `json:"twitter,omitempty"`
}

type ExchangeFiat struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// ExchangeQuote carries reported vs. adjusted volume over the 24h/7d/30d
// windows.
type ExchangeQuote struct {
	ReportedVolume24h float64 `json:"reported_volume_24h"`
	AdjustedVolume24h float64 `json:"adjusted_volume_24h"`
	ReportedVolume7d  float64 `json:"reported_volume_7d"`
	AdjustedVolume7d  float64 `json:"adjusted_volume_7d"`
	ReportedVolume30d float64 `json:"reported_volume_30d"`
	AdjustedVolume30d float64 `json:"adjusted_volume_30d"`
}

type ExchangeQuotes struct {
	USD ExchangeQuote `json:"USD"`
}

// Exchange is the upstream /exchanges/:id record.
type Exchange struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Active             bool           `json:"active"`
	WebsiteStatus      bool           `json:"website_status"`
	APIStatus          bool           `json:"api_status"`
	Description        null.String    `json:"description,omitempty"`
	MarketsDataFetched bool           `json:"markets_data_fetched"`
	AdjustedRank       null.Int       `json:"adjusted_rank,omitempty"`
	ReportedRank       null.Int       `json:"reported_rank,omitempty"`
	Currencies         int            `json:"currencies"`
	Markets            int            `json:"markets"`
	Fiats              []ExchangeFiat `json:"fiats"`
	Links              ExchangeLinks  `json:"links"`
	Quotes             ExchangeQuotes `json:"quotes"`
	LastUpdated        string         `json:"last_updated"`
}
