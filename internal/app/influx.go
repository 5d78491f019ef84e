package app

import (
	"context"
	"fmt"
	"time"

	"stockpulse/config"
	"stockpulse/internal/cache"
	"stockpulse/internal/storage"
)

// InitInflux initializes the InfluxDB store using the provided
// configuration and verifies connectivity with a short ping.
//
// Parameters:
//   - cfg (config.Config): The application configuration object.
//
// Returns:
//   - storage.TimeSeriesStore: a connected store (safe for concurrent use).
//   - error: if the server cannot be reached.
func InitInflux(cfg config.Config) (storage.TimeSeriesStore, error) {
	store := storage.NewInfluxStore(
		cfg.Influx.URL,
		cfg.Influx.Token,
		cfg.Influx.Org,
		cfg.Influx.Bucket,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to connect to influxdb: %w", err)
	}
	return store, nil
}

// InitRedisCache connects the optional Redis result cache.
func InitRedisCache(cfg config.Config) (cache.ResultCache, error) {
	return cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
}

// storeOpener and cacheOpener are indirections used by InitializeApp;
// overridden in tests to avoid real connections.
var (
	storeOpener = InitInflux
	cacheOpener = InitRedisCache
)
