package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tickerpulse/config"
	"github.com/guttosm/tickerpulse/internal/api"
	"github.com/guttosm/tickerpulse/internal/ingestion"
	"github.com/guttosm/tickerpulse/internal/provider"
	"github.com/guttosm/tickerpulse/internal/service"
	"github.com/guttosm/tickerpulse/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Initializes the repository layer (HistoryRepository).
//   - Creates the market-data provider client and ingestion service.
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp(cfg config.Config) (*gin.Engine, func(), error) {
	// Connect to PostgreSQL
	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	// Initialize repository layer (responsible for DB access)
	repo := storage.NewHistoryRepository(db)

	// Market-data provider client
	market := provider.NewYahooClient(
		cfg.Provider.BaseURL,
		provider.WithTimeout(time.Duration(cfg.Provider.TimeoutSeconds)*time.Second),
	)

	// Initialize service layer (business logic)
	ingestSvc := ingestion.NewService(market, repo, cfg.Tickers.List())
	querySvc := service.NewQueryService(repo, cfg.Tickers.List())

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(ingestSvc, querySvc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}

// InitializeIngestion wires only the pieces needed for a one-shot ingestion
// run (no HTTP server). Used by the fetch mode of the CLI.
//
// Returns:
//   - *ingestion.Service: ready-to-use ingestion service.
//   - func(): cleanup function closing the DB connection.
//   - error: any initialization error that occurred.
func InitializeIngestion(cfg config.Config) (*ingestion.Service, func(), error) {
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	repo := storage.NewHistoryRepository(db)
	market := provider.NewYahooClient(
		cfg.Provider.BaseURL,
		provider.WithTimeout(time.Duration(cfg.Provider.TimeoutSeconds)*time.Second),
	)

	svc := ingestion.NewService(market, repo, cfg.Tickers.List())

	cleanup := func() {
		_ = db.Close()
	}

	return svc, cleanup, nil
}
