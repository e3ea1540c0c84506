// Package main implements the entry point for the WordVault API server,
// which schedules spaced-repetition vocabulary reviews.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/wordvault/wordvault-api/internal/config"
	"github.com/wordvault/wordvault-api/internal/platform/logger"
	"github.com/wordvault/wordvault-api/internal/platform/postgres"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// run loads configuration, wires the application, and serves HTTP until a
// shutdown signal arrives.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	ctx := context.Background()

	if err := runMigrations(cfg.Database.URL, appLogger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database.URL, postgres.DefaultPoolConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	app, err := newApplication(cfg, appLogger, pool)
	if err != nil {
		pool.Close()
		return fmt.Errorf("failed to wire application: %w", err)
	}

	return app.serve(ctx, app.setupRouter())
}
