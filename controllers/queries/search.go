package queries

import "github.com/Tatang94/cryptomarketcap/controllers/helpers"

type SearchQuery struct {
	Q string `query:"q" validate:"required"`
}

func (s SearchQuery) Messages() map[string]string {
	return helpers.ValidateMessage("public.search")
}
