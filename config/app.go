package config

import (
	"errors"
	"io/ioutil"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"
)

var App *AppConfig

// DisplayCurrencyConfig is the statically configured USD to display-currency
// conversion. The rate carries its own as_of timestamp so stale rates are
// visible to callers instead of being a silent module constant.
type DisplayCurrencyConfig struct {
	Code   string `yaml:"code"`
	Prefix string `yaml:"prefix"`
	Rate   string `yaml:"rate"`
	AsOf   string `yaml:"as_of"`
}

type AppConfig struct {
	Port            string                `yaml:"port"`
	UpstreamURL     string                `yaml:"upstream_url"`
	UpstreamAPIKey  string                `yaml:"-"`
	RateFeedURL     string                `yaml:"rate_feed_url"`
	DisplayCurrency DisplayCurrencyConfig `yaml:"display_currency"`
}

func (c DisplayCurrencyConfig) ParseRate() (decimal.Decimal, time.Time, error) {
	rate, err := decimal.NewFromString(c.Rate)
	if err != nil {
		return decimal.Zero, time.Time{}, err
	}
	if !rate.IsPositive() {
		return decimal.Zero, time.Time{}, errors.New("display currency rate must be positive")
	}

	asOf, err := time.Parse(time.RFC3339, c.AsOf)
	if err != nil {
		return decimal.Zero, time.Time{}, err
	}

	return rate, asOf, nil
}

func LoadAppConfig() error {
	path := os.Getenv("CONFIG_PATH")
	if len(path) == 0 {
		path = "config.yaml"
	}

	app := defaultAppConfig()

	data, err := ioutil.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, app); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if port := os.Getenv("PORT"); len(port) > 0 {
		app.Port = port
	}
	if url := os.Getenv("COINPAPRIKA_URL"); len(url) > 0 {
		app.UpstreamURL = url
	}
	app.UpstreamAPIKey = os.Getenv("COINPAPRIKA_API_KEY")

	if _, _, err := app.DisplayCurrency.ParseRate(); err != nil {
		return err
	}

	App = app

	return nil
}

func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Port:        "3000",
		UpstreamURL: "https://api.coinpaprika.com/v1",
		RateFeedURL: "https://min-api.cryptocompare.com/data/price?fsym=USD&tsyms=IDR",
		DisplayCurrency: DisplayCurrencyConfig{
			Code:   "IDR",
			Prefix: "Rp",
			Rate:   "15500",
			AsOf:   "2024-01-02T00:00:00Z",
		},
	}
}
