package types

import "github.com/volatiletech/null"

// CryptoTableRow is the flat projection of a Ticker used by the table view.
// Derived fresh on every fetch, never persisted.
type CryptoTableRow struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Symbol            string       `json:"symbol"`
	Rank              int          `json:"rank"`
	Price             float64      `json:"price"`
	Change24h         float64      `json:"change24h"`
	MarketCap         float64      `json:"marketCap"`
	Volume24h         float64      `json:"volume24h"`
	CirculatingSupply float64      `json:"circulatingSupply"`
	MaxSupply         null.Float64 `json:"maxSupply,omitempty"`
	LastUpdated       string       `json:"lastUpdated"`
}

// GlobalMarketStats is the dashboard header projection of GlobalStats.
type GlobalMarketStats struct {
	MarketCap          float64 `json:"marketCap"`
	Volume24h          float64 `json:"volume24h"`
	BitcoinDominance   float64 `json:"bitcoinDominance"`
	ActiveCryptos      int     `json:"activeCryptos"`
	MarketCapChange24h float64 `json:"marketCapChange24h"`
	VolumeChange24h    float64 `json:"volumeChange24h"`
}

// MarketRow is the display projection of one trading market. Price and
// volume degrade to "N/A" when the exchange did not report a USD quote.
type MarketRow struct {
	ExchangeName string `json:"exchangeName"`
	Pair         string `json:"pair"`
	Price        string `json:"price"`
	Volume24h    string `json:"volume24h"`
	MarketURL    string `json:"marketUrl,omitempty"`
}

// ChartPoint is the shared output contract of the true-series adapter and
// the synthetic fallback generator.
type ChartPoint struct {
	Time      string  `json:"time"`
	Price     float64 `json:"price"`
	Volume    float64 `json:"volume"`
	MarketCap float64 `json:"marketCap"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
}

type SortKey = string

var (
	SortByRank              SortKey = "rank"
	SortByID                SortKey = "id"
	SortByName              SortKey = "name"
	SortBySymbol            SortKey = "symbol"
	SortByPrice             SortKey = "price"
	SortByChange24h         SortKey = "change24h"
	SortByMarketCap         SortKey = "marketCap"
	SortByVolume24h         SortKey = "volume24h"
	SortByCirculatingSupply SortKey = "circulatingSupply"
	SortByMaxSupply         SortKey = "maxSupply"
	SortByLastUpdated       SortKey = "lastUpdated"
)

type SortDirection = string

var (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortConfig is the table view's sort state. Toggling the active key flips
// the direction; selecting a new key resets to ascending.
type SortConfig struct {
	Key       SortKey       `json:"key"`
	Direction SortDirection `json:"direction"`
}

func DefaultSortConfig() SortConfig {
	return SortConfig{Key: SortByRank, Direction: SortAsc}
}

func (s SortConfig) Toggle(key SortKey) SortConfig {
	if s.Key == key && s.Direction == SortAsc {
		return SortConfig{Key: key, Direction: SortDesc}
	}
	return SortConfig{Key: key, Direction: SortAsc}
}

func ValidSortKey(key SortKey) bool {
	switch key {
	case SortByRank, SortByID, SortByName, SortBySymbol, SortByPrice,
		SortByChange24h, SortByMarketCap, SortByVolume24h,
		SortByCirculatingSupply, SortByMaxSupply, SortByLastUpdated:
		return true
	}
	return false
}
