// Package rates provides the display-currency rate snapshot: the cached
// value published by the daemon when available, the static configured rate
// otherwise.
package rates

import (
	"github.com/Tatang94/cryptomarketcap/config"
	"github.com/Tatang94/cryptomarketcap/display"
)

// CacheKey is where the daemon publishes the refreshed snapshot.
const CacheKey = "cryptomarketcap:display_rate"

type Service struct {
	cache  *config.CacheService
	static display.RateSnapshot
}

// New builds the service around a static snapshot; cache may be nil.
func New(cache *config.CacheService, static display.RateSnapshot) *Service {
	return &Service{cache: cache, static: static}
}

// FromConfig derives the static snapshot from the loaded app config. The
// config loader already rejected unparsable rates.
func FromConfig(cfg config.DisplayCurrencyConfig) display.RateSnapshot {
	rate, asOf, _ := cfg.ParseRate()

	return display.RateSnapshot{
		Code:   cfg.Code,
		Prefix: cfg.Prefix,
		Rate:   rate,
		AsOf:   asOf,
	}
}

// Snapshot prefers the daemon-refreshed cache entry and falls back to the
// static configuration.
func (s *Service) Snapshot() display.RateSnapshot {
	if s.cache != nil {
		var snap display.RateSnapshot
		if err := s.cache.GetKey(CacheKey, &snap); err == nil && snap.Rate.IsPositive() {
			return snap
		}
	}

	return s.static
}
