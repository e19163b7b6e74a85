package display

import (
	"sort"

	"github.com/Tatang94/cryptomarketcap/types"
)

// PageSize matches the upstream ticker page cap, so one table page maps to
// one upstream fetch.
const PageSize = 1000

// SortRows orders a copy of rows by the configured key. The sort is
// explicitly stable; descending flips the comparator rather than reversing
// the sorted slice, so equal-key ties keep their input order in both
// directions.
func SortRows(rows []types.CryptoTableRow, cfg types.SortConfig) []types.CryptoTableRow {
	sorted := make([]types.CryptoTableRow, len(rows))
	copy(sorted, rows)

	less := lessFor(cfg.Key)
	sort.SliceStable(sorted, func(i, j int) bool {
		if cfg.Direction == types.SortDesc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})

	return sorted
}

func lessFor(key types.SortKey) func(a, b types.CryptoTableRow) bool {
	switch key {
	case types.SortByID:
		return func(a, b types.CryptoTableRow) bool { return a.ID < b.ID }
	case types.SortByName:
		return func(a, b types.CryptoTableRow) bool { return a.Name < b.Name }
	case types.SortBySymbol:
		return func(a, b types.CryptoTableRow) bool { return a.Symbol < b.Symbol }
	case types.SortByPrice:
		return func(a, b types.CryptoTableRow) bool { return a.Price < b.Price }
	case types.SortByChange24h:
		return func(a, b types.CryptoTableRow) bool { return a.Change24h < b.Change24h }
	case types.SortByMarketCap:
		return func(a, b types.CryptoTableRow) bool { return a.MarketCap < b.MarketCap }
	case types.SortByVolume24h:
		return func(a, b types.CryptoTableRow) bool { return a.Volume24h < b.Volume24h }
	case types.SortByCirculatingSupply:
		return func(a, b types.CryptoTableRow) bool { return a.CirculatingSupply < b.CirculatingSupply }
	case types.SortByMaxSupply:
		// Null max supply means uncapped and sorts as zero.
		return func(a, b types.CryptoTableRow) bool { return a.MaxSupply.Float64 < b.MaxSupply.Float64 }
	case types.SortByLastUpdated:
		return func(a, b types.CryptoTableRow) bool { return a.LastUpdated < b.LastUpdated }
	default:
		return func(a, b types.CryptoTableRow) bool { return a.Rank < b.Rank }
	}
}

// Paginate slices one fixed-size page out of rows. The page index is
// clamped to [1, pageCount]; pageCount is never below 1.
func Paginate(rows []types.CryptoTableRow, page int) ([]types.CryptoTableRow, int) {
	pageCount := (len(rows) + PageSize - 1) / PageSize
	if pageCount < 1 {
		pageCount = 1
	}

	if page < 1 {
		page = 1
	}
	if page > pageCount {
		page = pageCount
	}

	from := (page - 1) * PageSize
	to := from + PageSize
	if from > len(rows) {
		from = len(rows)
	}
	if to > len(rows) {
		to = len(rows)
	}

	return rows[from:to], pageCount
}
