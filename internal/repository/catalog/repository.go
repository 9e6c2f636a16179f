// Package catalog is the local catalog store: the last-synchronized product
// rows, addressable by code and observable as a reactive collection. The
// Synchronizer is the only writer; reads are unrestricted.
package catalog

import (
	"context"

	"storefront-client/internal/domain"
)

// Store is the capability contract the synchronizer and readers depend on.
type Store interface {
	// All returns the current catalog ordered by name.
	All(ctx context.Context) ([]domain.Product, error)
	// GetByCode returns the product for code or domain.ErrNotFound.
	GetByCode(ctx context.Context, code string) (*domain.Product, error)
	// Count reports how many products the store currently holds.
	Count(ctx context.Context) (int64, error)
	// ReplaceAll atomically swaps the whole catalog for products. Readers
	// observe either the previous catalog or the new one, never a mix.
	ReplaceAll(ctx context.Context, products []domain.Product) error
}
