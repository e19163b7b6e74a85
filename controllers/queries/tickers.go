package queries

import "github.com/Tatang94/cryptomarketcap/controllers/helpers"

type TickersQuery struct {
	Start int `query:"start" validate:"uint"`
	Limit int `query:"limit" validate:"uint"`
}

func (t TickersQuery) Messages() map[string]string {
	return helpers.ValidateMessage("public.tickers")
}
