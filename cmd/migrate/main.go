// Command migrate applies the embedded schema migrations to the local store.
package main

import (
	"context"

	"go.uber.org/zap"

	"storefront-client/internal/config"
	"storefront-client/internal/localdb"
	"storefront-client/internal/migrate"
)

func main() {
	cfg := config.FromEnv()
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	db, err := localdb.Open(context.Background(), cfg.DBPath)
	if err != nil {
		logger.Fatal("open local db", zap.Error(err))
	}

	if err := migrate.Apply(db); err != nil {
		logger.Fatal("apply migrations", zap.Error(err))
	}

	logger.Info("migrations applied")
}
