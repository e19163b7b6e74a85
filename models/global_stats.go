package models

// GlobalStats is the upstream /global aggregate snapshot.
type GlobalStats struct {
	MarketCapUsd                float64 `json:"market_cap_usd"`
	Volume24hUsd                float64 `json:"volume_24h_usd"`
	BitcoinDominancePercentage  float64 `json:"bitcoin_dominance_percentage"`
	CryptocurrenciesNumber      int     `json:"cryptocurrencies_number"`
	MarketCapATHValue           float64 `json:"market_cap_ath_value"`
	MarketCapATHDate            string  `json:"market_cap_ath_date"`
	Volume24hATHValue           float64 `json:"volume_24h_ath_value"`
	Volume24hATHDate            string  `json:"volume_24h_ath_date"`
	MarketCapChange24h          float64 `json:"market_cap_change_24h"`
	Volume24hChange24h          float64 `json:"volume_24h_change_24h"`
	LastUpdated                 int64   `json:"last_updated"`
}
