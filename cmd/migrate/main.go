package main

import (
	"context"
	"time"

	"ltrack-server/internal/config"
	"ltrack-server/internal/observability"
	"ltrack-server/internal/store"
)

// Applies the embedded schema migrations and exits. Used by deploys that
// keep DB_AUTO_MIGRATE off for the API process.
func main() {
	logger := observability.NewLogger()
	defer logger.Sync()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, "failed to load configuration", err)
	}

	dataStore, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize store", err)
	}
	defer dataStore.Close()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	logger.Info(ctx, "applying database migrations...")
	if err := dataStore.Migrate(ctx); err != nil {
		logger.Fatal(ctx, "migration failed", err)
	}
	logger.Info(ctx, "database migrations applied")
}
