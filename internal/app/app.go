package app

import (
	"github.com/gin-gonic/gin"

	"stockpulse/config"
	"stockpulse/internal/api"
	"stockpulse/internal/cache"
	"stockpulse/internal/logger"
	"stockpulse/internal/query"
	"stockpulse/internal/service"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to InfluxDB via the store opener.
//   - Connects to Redis when configured (missing Redis only disables caching).
//   - Creates the query builder, the service layer, and the HTTP handlers.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Connect to the time-series store
	// indirection for unit testing
	store, err := storeOpener(cfg)
	if err != nil {
		return nil, nil, err
	}

	// Optional Redis result cache; a failed connection is non-fatal.
	var resultCache cache.ResultCache
	if cfg.Redis.Addr != "" {
		redisCache, err := cacheOpener(cfg)
		if err != nil {
			logger.L().Warn().Err(err).Msg("redis unavailable, caching disabled")
		} else {
			resultCache = redisCache
		}
	}

	// Query builder bound to the configured bucket
	builder := query.NewBuilder(cfg.Influx.Bucket)

	// Initialize service layer (business logic)
	svc := service.NewStockService(store, builder, resultCache)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(store.Ping)
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		store.Close()
		if resultCache != nil {
			_ = resultCache.Close()
		}
	}

	return router, cleanup, nil
}
