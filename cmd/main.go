package main

//
//  @title           tickerpulse API
//  @version         1.0
//  @description     Daily ticker history ingestion & query service.
//  @termsOfService  https://github.com/guttosm/tickerpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/tickerpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        tickers
//  @tag.description Endpoints for ingesting and querying ticker history
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
	"strings"
	"syscall"
	"time"

	"github.com/guttosm/tickerpulse/config"
	_ "github.com/guttosm/tickerpulse/docs" // swagger docs
	"github.com/guttosm/tickerpulse/internal/app"
	"github.com/guttosm/tickerpulse/internal/logger"
	"github.com/guttosm/tickerpulse/internal/provider"
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

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., DB connections).
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

// splitTickers parses a comma-separated --tickers flag value into symbols.
// An empty value yields nil so the configured watchlist is used.
func splitTickers(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// main is the entry point of the tickerpulse application.
//
// Modes (selected via --mode flag):
//   - fetch: One-shot ingestion of daily history for the given tickers.
//   - api:   Starts the REST API exposing ingestion and query endpoints.
//
// Flags:
//   - --mode:    Execution mode ("fetch" or "api"). Default: "fetch".
//   - --tickers: Comma-separated symbols to fetch. Defaults to the configured watchlist.
//   - --period:  History window (1d, 5d, 1mo, 3mo, 6mo, 1y, 2y, 5y, 10y, ytd, max). Default: "1y".
//   - --port:    Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "fetch", "Mode: fetch or api")
	tickers := flag.String("tickers", "", "Comma-separated symbols (empty uses the configured watchlist)")
	period := flag.String("period", string(provider.DefaultPeriod), "History window to fetch")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "fetch":
		// Fetch mode: pull daily bars from the provider and persist them
		logger.L().Info().Str("period", *period).Msg("running fetch")

		svc, cleanup, err := app.InitializeIngestion(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}
		defer cleanup()

		res, err := svc.Ingest(ctx, splitTickers(*tickers), provider.Period(*period))
		if err != nil {
			logger.L().Fatal().Err(err).Msg("fetch failed")
		}

		logger.L().Info().
			Int("records_created", res.RecordsCreated).
			Int("records_updated", res.RecordsUpdated).
			Int("tickers_processed", res.TickersProcessed).
			Msg(res.Message)

		if !res.Success {
			for _, e := range res.Errors {
				logger.L().Error().Msg(e)
			}
			os.Exit(1)
		}

	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
