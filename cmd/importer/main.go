// Command importer loads a catalog CSV export into the local store.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"storefront-client/internal/config"
	"storefront-client/internal/importer"
	"storefront-client/internal/localdb"
	"storefront-client/internal/migrate"
	catalogrepo "storefront-client/internal/repository/catalog"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to catalog CSV export")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	db, err := localdb.Open(ctx, cfg.DBPath)
	if err != nil {
		logger.Fatal("open local db", zap.Error(err))
	}

	if err := migrate.Apply(db); err != nil {
		logger.Fatal("apply migrations", zap.Error(err))
	}

	repo, err := catalogrepo.NewRepository(db, logger)
	if err != nil {
		logger.Fatal("init catalog store", zap.Error(err))
	}

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatal("open file", zap.Error(err))
	}
	defer f.Close()

	start := time.Now()
	count, err := importer.NewCSVImporter(f, repo).Run(ctx)
	if err != nil {
		logger.Fatal("import failed", zap.Error(err))
	}

	fmt.Printf("Imported %d products in %s\n", count, time.Since(start).Truncate(time.Millisecond))
}
