package display

import (
	"testing"

	"github.com/Tatang94/cryptomarketcap/types"
)

func rows() []types.CryptoTableRow {
	return []types.CryptoTableRow{
		{ID: "btc-bitcoin", Name: "Bitcoin", Rank: 1, Price: 42000, Change24h: 2.5},
		{ID: "eth-ethereum", Name: "Ethereum", Rank: 2, Price: 2200, Change24h: -1.2},
		{ID: "usdt-tether", Name: "Tether", Rank: 3, Price: 1, Change24h: 0.01},
		{ID: "bnb-binance-coin", Name: "BNB", Rank: 4, Price: 310, Change24h: 0.9},
	}
}

func prices(rows []types.CryptoTableRow) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = r.Price
	}
	return out
}

func TestSortRowsAscendingPrice(t *testing.T) {
	sorted := SortRows(rows(), types.SortConfig{Key: types.SortByPrice, Direction: types.SortAsc})

	got := prices(sorted)
	want := []float64{1, 310, 2200, 42000}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ascending prices = %v, want %v", got, want)
		}
	}
}

func TestSortToggleReversesOrder(t *testing.T) {
	cfg := types.SortConfig{Key: types.SortByPrice, Direction: types.SortAsc}
	asc := SortRows(rows(), cfg)
	desc := SortRows(rows(), cfg.Toggle(types.SortByPrice))

	for i := range asc {
		if asc[i].Price != desc[len(desc)-1-i].Price {
			t.Fatalf("toggled sort is not the exact reverse: asc %v desc %v", prices(asc), prices(desc))
		}
	}
}

func TestSortStableTies(t *testing.T) {
	tied := []types.CryptoTableRow{
		{ID: "a", Price: 5, Rank: 1},
		{ID: "b", Price: 5, Rank: 2},
		{ID: "c", Price: 5, Rank: 3},
	}

	for _, dir := range []types.SortDirection{types.SortAsc, types.SortDesc} {
		sorted := SortRows(tied, types.SortConfig{Key: types.SortByPrice, Direction: dir})
		if sorted[0].ID != "a" || sorted[1].ID != "b" || sorted[2].ID != "c" {
			t.Errorf("direction %s: equal-key ties must keep input order, got %v %v %v",
				dir, sorted[0].ID, sorted[1].ID, sorted[2].ID)
		}
	}
}

func TestSortRowsDoesNotMutateInput(t *testing.T) {
	input := rows()
	SortRows(input, types.SortConfig{Key: types.SortByPrice, Direction: types.SortDesc})

	if input[0].ID != "btc-bitcoin" || input[3].ID != "bnb-binance-coin" {
		t.Error("SortRows must sort a copy, not the caller's slice")
	}
}

func TestSortRowsStringKey(t *testing.T) {
	sorted := SortRows(rows(), types.SortConfig{Key: types.SortByName, Direction: types.SortAsc})
	if sorted[0].Name != "BNB" || sorted[3].Name != "Tether" {
		t.Errorf("lexicographic sort broken: first %q last %q", sorted[0].Name, sorted[3].Name)
	}
}

func TestSortConfigToggle(t *testing.T) {
	cfg := types.DefaultSortConfig()
	if cfg.Key != types.SortByRank || cfg.Direction != types.SortAsc {
		t.Fatalf("default sort must be rank ascending, got %+v", cfg)
	}

	cfg = cfg.Toggle(types.SortByRank)
	if cfg.Direction != types.SortDesc {
		t.Error("toggling the active key must flip to descending")
	}

	cfg = cfg.Toggle(types.SortByPrice)
	if cfg.Key != types.SortByPrice || cfg.Direction != types.SortAsc {
		t.Error("selecting a new key must reset to ascending")
	}
}

func TestPaginateClampsPage(t *testing.T) {
	many := make([]types.CryptoTableRow, PageSize+5)
	for i := range many {
		many[i].Rank = i + 1
	}

	page, count := Paginate(many, 0)
	if count != 2 {
		t.Fatalf("page count = %d, want 2", count)
	}
	if len(page) != PageSize || page[0].Rank != 1 {
		t.Error("page below 1 must clamp to the first page")
	}

	page, _ = Paginate(many, 99)
	if len(page) != 5 || page[0].Rank != PageSize+1 {
		t.Error("page beyond the count must clamp to the last page")
	}
}

func TestPaginateEmpty(t *testing.T) {
	page, count := Paginate(nil, 1)
	if len(page) != 0 || count != 1 {
		t.Errorf("empty input: page len %d count %d, want 0 and 1", len(page), count)
	}
}
