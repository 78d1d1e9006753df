package main

//
//  @title           cryptopulse API
//  @version         1.0
//  @description     Crypto price statistics & recommendation service.
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        statistics
//  @tag.description Endpoints for querying price statistics and normalized ranges
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

	"cryptopulse/config"
	_ "cryptopulse/docs" // swagger docs
	"cryptopulse/internal/app"
	"cryptopulse/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
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

// main is the entry point of the cryptopulse application.
//
// Startup sequence:
//  1. Load configuration and initialize the JSON logger.
//  2. Ingest every *.csv price history file from the data directory into
//     the in-memory store (files that fail to parse are logged and skipped).
//  3. Serve the read-only statistics API until SIGINT/SIGTERM.
//
// Flags:
//   - --dir:  Directory containing price history CSV files. Defaults to DATA_DIR from config.
//   - --port: Port for the API server. Defaults to SERVER_PORT from config.
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	dir := flag.String("dir", config.AppConfig.Data.Dir, "Directory with price history CSV files")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for the API server")
	flag.Parse()
	config.AppConfig.Data.Dir = *dir

	router, cleanup, err := app.InitializeApp(ctx)
	if err != nil {
		logger.L().Fatal().Err(err).Msg("app init error")
	}

	server := startServer(router, *port)
	gracefulShutdown(ctx, server, cleanup)
}
