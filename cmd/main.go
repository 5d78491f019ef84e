package main

//
//  @title           stockpulse API
//  @version         1.0
//  @description     Stock price/volume time-series ingestion & query service.
//  @contact.name    API Support
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        stocks
//  @tag.description Endpoints for storing and querying stock observations
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stockpulse/config"
	_ "stockpulse/docs" // swagger docs
	"stockpulse/internal/app"
	"stockpulse/internal/logger"
	"stockpulse/internal/seed"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up
// resources when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., store connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the stockpulse application.
//
// Modes (selected via --mode flag):
//   - api:  Starts the REST API for storing and querying stock observations.
//   - seed: Populates the backend with mock random-walk data for development.
//
// Flags:
//   - --mode: Execution mode ("api" or "seed"). Default: "api".
//   - --port: Port for the API server. Defaults to value from config (SERVER_PORT).
//   - --days: Number of trailing days to seed (seed mode).
//   - --step-minutes: Minutes between seeded observations (seed mode).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or seed")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	days := flag.Int("days", 30, "Number of trailing days to seed")
	stepMinutes := flag.Int("step-minutes", 5, "Minutes between seeded observations")
	flag.Parse()

	switch *mode {
	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "seed":
		// Seed mode: populate the store with mock data
		logger.L().Info().Int("days", *days).Msg("seeding mock data")

		store, err := app.InitInflux(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("store connect error")
		}
		defer store.Close()

		gen := seed.NewGenerator(store, time.Now().UnixNano())
		total, err := gen.Run(ctx, *days, time.Duration(*stepMinutes)*time.Minute)
		if err != nil {
			logger.L().Fatal().Err(err).Int("written", total).Msg("seeding failed")
		}
		logger.L().Info().Int("written", total).Msg("seeding completed successfully")

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
