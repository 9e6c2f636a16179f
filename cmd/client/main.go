// Command client runs the local storefront process: it owns the embedded
// database, keeps the catalog synchronized with the backend, and serves
// composed view state to the UI over a local HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"storefront-client/internal/cart"
	"storefront-client/internal/catalog"
	"storefront-client/internal/config"
	"storefront-client/internal/httpserver"
	"storefront-client/internal/localdb"
	"storefront-client/internal/migrate"
	"storefront-client/internal/prefs"
	"storefront-client/internal/remote"
	cartrepo "storefront-client/internal/repository/cart"
	catalogrepo "storefront-client/internal/repository/catalog"
	reviewrepo "storefront-client/internal/repository/review"
	"storefront-client/internal/review"
	"storefront-client/internal/session"
	"storefront-client/internal/viewstate"
)

func main() {
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

	prefStore, err := prefs.NewStore(cfg.PrefsPath)
	if err != nil {
		logger.Fatal("open prefs", zap.Error(err))
	}

	catalogRepo, err := catalogrepo.NewRepository(db, logger)
	if err != nil {
		logger.Fatal("init catalog store", zap.Error(err))
	}
	cartStore, err := cart.NewStore(ctx, cartrepo.NewRepository(db), logger)
	if err != nil {
		logger.Fatal("init cart store", zap.Error(err))
	}
	reviewService, err := review.NewService(ctx, reviewrepo.NewRepository(db), logger)
	if err != nil {
		logger.Fatal("init review service", zap.Error(err))
	}

	backend := remote.New(cfg.BackendBaseURL, logger)
	synchronizer := catalog.NewSynchronizer(backend, catalogRepo, logger)
	sessionStore := session.NewStore(backend, prefStore, logger)
	sessionStore.Restore()

	catalogView := viewstate.NewCatalogComposer(catalogRepo.Products(), synchronizer.Syncing())
	defer catalogView.Close()
	cartView := viewstate.NewCartComposer(cartStore.Rows())
	defer cartView.Close()
	myReviews := review.NewAggregator(sessionStore.Identity(), reviewService.Reviews(), catalogRepo.Products())
	defer myReviews.Close()

	// Initial refresh; a failure degrades to cache or seed inside Sync.
	go func() {
		syncCtx, cancel := context.WithTimeout(ctx, cfg.SyncTimeout)
		defer cancel()
		if err := synchronizer.Sync(syncCtx); err != nil {
			logger.Warn("initial catalog sync", zap.Error(err))
		}
	}()

	srv, err := httpserver.New(cfg.HTTPAddr, logger, db, httpserver.Deps{
		Synchronizer: synchronizer,
		Catalog:      catalogRepo,
		Filters:      catalogView,
		CatalogState: catalogView.State(),
		Cart:         cartStore,
		CartState:    cartView.State(),
		Reviews:      reviewService,
		MyReviews:    myReviews.State(),
		Session:      sessionStore,
	}, cfg.AllowedOrigins)
	if err != nil {
		logger.Fatal("init server", zap.Error(err))
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting http server", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	} else {
		logger.Info("server stopped")
	}
}
