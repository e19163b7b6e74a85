package display

import (
	"github.com/Tatang94/cryptomarketcap/models"
	"github.com/Tatang94/cryptomarketcap/types"
)

// TickerToTableRow is a pure 1:1 projection. Every required field maps
// straight through; the only substitution allowed is the optional
// circulating supply falling back to the total supply.
func TickerToTableRow(t models.Ticker) types.CryptoTableRow {
	circulating := t.TotalSupply
	if t.CirculatingSupply.Valid {
		circulating = t.CirculatingSupply.Float64
	}

	return types.CryptoTableRow{
		ID:                t.ID,
		Name:              t.Name,
		Symbol:            t.Symbol,
		Rank:              t.Rank,
		Price:             t.Quotes.USD.Price,
		Change24h:         t.Quotes.USD.PercentChange24h,
		MarketCap:         t.Quotes.USD.MarketCap,
		Volume24h:         t.Quotes.USD.Volume24h,
		CirculatingSupply: circulating,
		MaxSupply:         t.MaxSupply,
		LastUpdated:       t.LastUpdated,
	}
}

func GlobalStatsView(g models.GlobalStats) types.GlobalMarketStats {
	return types.GlobalMarketStats{
		MarketCap:          g.MarketCapUsd,
		Volume24h:          g.Volume24hUsd,
		BitcoinDominance:   g.BitcoinDominancePercentage,
		ActiveCryptos:      g.CryptocurrenciesNumber,
		MarketCapChange24h: g.MarketCapChange24h,
		VolumeChange24h:    g.Volume24hChange24h,
	}
}

// NotAvailable is the lenient per-field fallback for optional data that was
// accepted at the boundary but absent for a particular record.
const NotAvailable = "N/A"

// MarketToRow projects one trading market for display. A missing nested USD
// quote degrades to N/A instead of failing the list render.
func (f *Formatter) MarketToRow(m models.Market) types.MarketRow {
	row := types.MarketRow{
		ExchangeName: m.ExchangeName,
		Pair:         m.Pair,
		Price:        NotAvailable,
		Volume24h:    NotAvailable,
	}

	if m.Quotes != nil && m.Quotes.USD != nil {
		if m.Quotes.USD.Price.Valid {
			row.Price = f.FormatCurrency(m.Quotes.USD.Price.Float64)
		}
		if m.Quotes.USD.Volume24h.Valid {
			row.Volume24h = f.FormatCurrency(m.Quotes.USD.Volume24h.Float64)
		}
	}

	if m.MarketURL.Valid {
		row.MarketURL = m.MarketURL.String
	}

	return row
}

// SupplyPercentage guards the division: a null or zero max supply means
// uncapped and reports 0.
func SupplyPercentage(t models.Ticker) float64 {
	if !t.MaxSupply.Valid || t.MaxSupply.Float64 == 0 {
		return 0
	}
	return t.TotalSupply / t.MaxSupply.Float64 * 100
}
