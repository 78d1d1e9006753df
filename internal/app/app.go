package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"cryptopulse/config"
	"cryptopulse/internal/api"
	"cryptopulse/internal/ingestion"
	"cryptopulse/internal/service"
	"cryptopulse/internal/store"
)

// ingestor is an indirection for the startup ingestion pass; tests can override it.
var ingestor = func(ctx context.Context, dir string, st *store.ObservationStore, parallel int) (int, int, error) {
	return ingestion.ProcessDirectory(ctx, dir, st, parallel)
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Runs the single startup ingestion pass over the configured data directory.
//   - Wires store → recommendation service → HTTP handler → router.
//   - Registers health and readiness probes.
//
// The store is fully populated before the router is returned, so query
// handlers only ever read an immutable snapshot.
func InitializeApp(ctx context.Context) (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	st := store.New()
	if _, _, err := ingestor(ctx, cfg.Data.Dir, st, 0); err != nil {
		return nil, nil, fmt.Errorf("failed to ingest price data: %w", err)
	}

	// Query engine over the populated store
	svc := service.NewRecommendationService(st)

	// HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(st.Len)
	healthHandler.Register(router)

	// No external resources to release; kept for symmetry with shutdown flow.
	cleanup := func() {}

	return router, cleanup, nil
}
