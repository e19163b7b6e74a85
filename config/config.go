package config

import "os"

func InitializeConfig() error {
	NewLoggerService()
	if err := LoadAppConfig(); err != nil {
		return err
	}

	// Redis is optional for the API tier: without it the display rate
	// falls back to the static configured snapshot.
	if len(os.Getenv("REDIS_HOST")) > 0 {
		if err := NewCacheService(); err != nil {
			return err
		}
	} else {
		Logger.Warn("REDIS_HOST not set, display rate served from static config")
	}

	return nil
}
