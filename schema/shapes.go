package schema

func str(name string, required bool) Field {
	return Field{Name: name, Kind: String, Required: required}
}

func num(name string, required bool) Field {
	return Field{Name: name, Kind: Number, Required: required}
}

func boolean(name string, required bool) Field {
	return Field{Name: name, Kind: Bool, Required: required}
}

func obj(name string, required bool, fields ...Field) Field {
	return Field{Name: name, Kind: Object, Required: required, Fields: fields}
}

var Coin = Shape{
	Name: "coin",
	Fields: []Field{
		str("id", true),
		str("name", true),
		str("symbol", true),
		num("rank", true),
		boolean("is_new", true),
		boolean("is_active", true),
		str("type", true),
	},
}

var CoinDetails = Shape{
	Name: "coin_details",
	Fields: []Field{
		str("id", true),
		str("name", true),
		str("symbol", true),
		num("rank", true),
		boolean("is_new", true),
		boolean("is_active", true),
		str("type", true),
		str("description", false),
		str("message", false),
		boolean("open_source", true),
		str("started_at", false),
		str("development_status", true),
		boolean("hardware_wallet", true),
		str("proof_type", true),
		str("org_structure", true),
		str("hash_algorithm", true),
		str("first_data_at", true),
		str("last_data_at", true),
	},
}

var quoteFields = []Field{
	num("price", true),
	num("volume_24h", true),
	num("volume_24h_change_24h", true),
	num("market_cap", true),
	num("market_cap_change_24h", true),
	num("percent_change_15m", true),
	num("percent_change_30m", true),
	num("percent_change_1h", true),
	num("percent_change_6h", true),
	num("percent_change_12h", true),
	num("percent_change_24h", true),
	num("percent_change_7d", true),
	num("percent_change_30d", true),
	num("percent_change_1y", true),
	num("ath_price", true),
	str("ath_date", true),
	num("percent_from_price_ath", true),
}

var Ticker = Shape{
	Name: "ticker",
	Fields: []Field{
		str("id", true),
		str("name", true),
		str("symbol", true),
		num("rank", true),
		num("total_supply", true),
		num("max_supply", false),
		num("circulating_supply", false),
		num("beta_value", true),
		str("first_data_at", true),
		str("last_updated", true),
		obj("quotes", true,
			obj("USD", true, quoteFields...),
		),
	},
}

var GlobalStats = Shape{
	Name: "global_stats",
	Fields: []Field{
		num("market_cap_usd", true),
		num("volume_24h_usd", true),
		num("bitcoin_dominance_percentage", true),
		num("cryptocurrencies_number", true),
		num("market_cap_ath_value", true),
		str("market_cap_ath_date", true),
		num("volume_24h_ath_value", true),
		str("volume_24h_ath_date", true),
		num("market_cap_change_24h", true),
		num("volume_24h_change_24h", true),
		num("last_updated", true),
	},
}

var OHLCV = Shape{
	Name: "ohlcv",
	Fields: []Field{
		str("time_open", true),
		str("time_close", true),
		num("open", true),
		num("high", true),
		num("low", true),
		num("close", true),
		num("volume", true),
		num("market_cap", true),
	},
}

var Market = Shape{
	Name: "market",
	Fields: []Field{
		str("exchange_id", true),
		str("exchange_name", true),
		str("pair", true),
		str("base_currency_id", true),
		str("quote_currency_id", true),
		str("market_url", false),
		str("category", false),
		str("fee_type", false),
		boolean("outlier", false),
		num("reported_volume_24h_share", false),
		obj("quotes", false,
			obj("USD", false,
				num("price", false),
				num("volume_24h", false),
			),
		),
	},
}

var Exchange = Shape{
	Name: "exchange",
	Fields: []Field{
		str("id", true),
		str("name", true),
		boolean("active", true),
		boolean("website_status", true),
		boolean("api_status", true),
		str("description", false),
		boolean("markets_data_fetched", true),
		num("adjusted_rank", false),
		num("reported_rank", false),
		num("currencies", true),
		num("markets", true),
		{Name: "fiats", Kind: Array, Required: false, Elem: &Field{
			Kind: Object,
			Fields: []Field{
				str("name", true),
				str("symbol", true),
			},
		}},
		obj("links", false,
			Field{Name: "website", Kind: Array, Elem: &Field{Kind: String}},
			Field{Name: "twitter", Kind: Array, Elem: &Field{Kind: String}},
		),
		obj("quotes", true,
			obj("USD", true,
				num("reported_volume_24h", true),
				num("adjusted_volume_24h", true),
				num("reported_volume_7d", true),
				num("adjusted_volume_7d", true),
				num("reported_volume_30d", true),
				num("adjusted_volume_30d", true),
			),
		),
		str("last_updated", true),
	},
}
