// Package cart persists cart rows in the embedded database, one row per
// product code with an append-order position. Semantics (merge, quantity
// floor) live in the cart store; this package is plain storage.
package cart

import (
	"context"

	"storefront-client/internal/domain"
)

// Storage is the persistence contract the cart store drives.
type Storage interface {
	// All returns the rows in append order.
	All(ctx context.Context) ([]domain.CartRow, error)
	// Upsert inserts row at the end of the cart, or overwrites the row with
	// the same code in place (position preserved).
	Upsert(ctx context.Context, row domain.CartRow) error
	// SetQuantity updates the quantity of the row for code; no-op if absent.
	SetQuantity(ctx context.Context, code string, quantity int) error
	// Delete removes the row for code; no-op if absent.
	Delete(ctx context.Context, code string) error
	// DeleteAll empties the cart.
	DeleteAll(ctx context.Context) error
}
