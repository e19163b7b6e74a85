package queries

import (
	"github.com/Tatang94/cryptomarketcap/types"
)

type TableQuery struct {
	Start   int                 `query:"start" validate:"uint"`
	Limit   int                 `query:"limit" validate:"uint"`
	Page    int                 `query:"page" validate:"uint"`
	SortKey types.SortKey       `query:"sort_key" validate:"ValidateSortKey"`
	SortDir types.SortDirection `query:"sort_dir" validate:"ValidateSortDir"`
}

func (t TableQuery) ValidateSortKey(val types.SortKey) bool {
	return len(val) == 0 || types.ValidSortKey(val)
}

func (t TableQuery) ValidateSortDir(val types.SortDirection) bool {
	return len(val) == 0 || val == types.SortAsc || val == types.SortDesc
}

func (t TableQuery) Messages() map[string]string {
	return map[string]string{
		"uint":            "view.table.invalid_{field}",
		"ValidateSortKey": "view.table.invalid_sort_key",
		"ValidateSortDir": "view.table.invalid_sort_dir",
	}
}

// SortConfig folds the query parameters onto the default (rank, ascending).
func (t TableQuery) SortConfig() types.SortConfig {
	cfg := types.DefaultSortConfig()
	if len(t.SortKey) > 0 {
		cfg.Key = t.SortKey
	}
	if len(t.SortDir) > 0 {
		cfg.Direction = t.SortDir
	}
	return cfg
}
