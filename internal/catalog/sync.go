// Package catalog orchestrates catalog refresh: fetch the remote product
// list, map it to the local schema and atomically replace the cached rows.
// Remote failures never escape this layer; the catalog is always left usable
// (last-known-good cache, or the seed set on a cold start with no
// connectivity).
package catalog

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"storefront-client/internal/domain"
	"storefront-client/internal/observe"
	"storefront-client/internal/remote"
	catalogrepo "storefront-client/internal/repository/catalog"
)

type remoteSource interface {
	FetchProducts(ctx context.Context) ([]remote.ProductRecord, error)
}

// Synchronizer owns all writes to the local catalog store.
type Synchronizer struct {
	remote  remoteSource
	store   catalogrepo.Store
	logger  *zap.Logger
	syncing *observe.Cell[bool]
}

func NewSynchronizer(src remoteSource, store catalogrepo.Store, logger *zap.Logger) *Synchronizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Synchronizer{
		remote:  src,
		store:   store,
		logger:  logger,
		syncing: observe.NewCell(false),
	}
}

// Syncing reports whether a sync round-trip is in flight. It drives the
// catalog view state's loading flag.
func (s *Synchronizer) Syncing() *observe.Cell[bool] {
	return s.syncing
}

// Sync refreshes the local catalog from the backend. It is idempotent and
// safe to call on every catalog-screen entry. Remote failures (network,
// status, malformed payload) are handled here: the existing cache is kept,
// and the seed catalog is applied only when the cache is empty. The returned
// error reports local storage trouble or context cancellation, never a
// remote failure.
func (s *Synchronizer) Sync(ctx context.Context) error {
	s.syncing.Set(true)
	defer s.syncing.Set(false)

	records, err := s.remote.FetchProducts(ctx)
	if err != nil {
		if ctx.Err() != nil {
			// Abandoned sync: the atomic replace never ran, the cache is
			// exactly what it was.
			return ctx.Err()
		}
		s.logFetchFailure(err)
		return s.fallback(ctx)
	}

	products := make([]domain.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, mapRecord(rec))
	}
	if err := s.store.ReplaceAll(ctx, products); err != nil {
		return err
	}
	s.logger.Info("catalog synchronized", zap.Int("count", len(products)))
	return nil
}

// fallback leaves a previously synchronized cache untouched and seeds a
// fixed catalog only when the store is empty.
func (s *Synchronizer) fallback(ctx context.Context) error {
	count, err := s.store.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("keeping cached catalog", zap.Int64("count", count))
		return nil
	}
	s.logger.Info("catalog empty after failed sync, applying seed catalog")
	return s.store.ReplaceAll(ctx, SeedProducts())
}

func (s *Synchronizer) logFetchFailure(err error) {
	var srvErr *remote.ServerError
	switch {
	case errors.Is(err, remote.ErrNetworkUnavailable):
		s.logger.Warn("catalog sync: backend unreachable")
	case errors.As(err, &srvErr):
		s.logger.Warn("catalog sync: backend rejected request", zap.Int("status", srvErr.Status))
	case errors.Is(err, remote.ErrMalformedResponse):
		s.logger.Warn("catalog sync: backend payload undecodable", zap.Error(err))
	default:
		s.logger.Warn("catalog sync failed", zap.Error(err))
	}
}

func mapRecord(rec remote.ProductRecord) domain.Product {
	return domain.Product{
		Code:        rec.Code,
		Category:    rec.Category,
		Brand:       rec.Brand,
		Name:        rec.Name,
		PriceCents:  rec.PriceCents,
		Description: rec.Description,
		Image:       ImageForCode(rec.Code),
	}
}
