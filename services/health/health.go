// Package health supplies the constructor-injected health check used by the
// /api/health endpoint.
package health

import (
	"context"

	"github.com/Tatang94/cryptomarketcap/config"
)

type Checker interface {
	Healthy(ctx context.Context) bool
}

// Always reports healthy. The stateless deployment has nothing local to
// probe.
type Always struct{}

func (Always) Healthy(ctx context.Context) bool {
	return true
}

// Cache reports healthy while the shared redis connection answers pings.
type Cache struct {
	Cache *config.CacheService
}

func (c Cache) Healthy(ctx context.Context) bool {
	return c.Cache.Ping(ctx) == nil
}
