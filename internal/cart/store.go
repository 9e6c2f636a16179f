// Package cart maintains the shopping cart: at most one row per product
// code, quantity always >= 1, append order preserved. All mutations funnel
// through a single mutex, so read-modify-write per code is atomic and
// concurrent increments never lose updates.
package cart

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"storefront-client/internal/domain"
	"storefront-client/internal/observe"
	cartrepo "storefront-client/internal/repository/cart"
)

// Store owns the cart rows. Rows are exposed as a broadcast cell; every
// committed mutation publishes a fresh snapshot.
type Store struct {
	storage cartrepo.Storage
	logger  *zap.Logger
	rows    *observe.Cell[[]domain.CartRow]
}

// NewStore builds the cart store and primes the rows cell from storage.
func NewStore(ctx context.Context, storage cartrepo.Storage, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	initial, err := storage.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return &Store{
		storage: storage,
		logger:  logger,
		rows:    observe.NewCell(initial),
	}, nil
}

// Rows is the reactive cart collection.
func (s *Store) Rows() *observe.Cell[[]domain.CartRow] {
	return s.rows
}

// AddItem appends a quantity-1 row for the product, or increments the
// existing row for the same code in place. Row order is preserved.
func (s *Store) AddItem(ctx context.Context, product domain.Product) error {
	var opErr error
	s.rows.Update(func(rows []domain.CartRow) []domain.CartRow {
		idx := indexOf(rows, product.Code)
		if idx < 0 {
			row := domain.CartRow{Product: product, Quantity: 1}
			if opErr = s.storage.Upsert(ctx, row); opErr != nil {
				return rows
			}
			return append(copyRows(rows), row)
		}
		updated := rows[idx]
		updated.Quantity++
		if opErr = s.storage.SetQuantity(ctx, product.Code, updated.Quantity); opErr != nil {
			return rows
		}
		return replaceAt(rows, idx, updated)
	})
	if opErr != nil {
		return fmt.Errorf("add item %s: %w", product.Code, opErr)
	}
	s.logger.Debug("cart: item added", zap.String("code", product.Code))
	return nil
}

// IncreaseQuantity increments the row for code; absent code is a no-op.
func (s *Store) IncreaseQuantity(ctx context.Context, code string) error {
	return s.changeQuantity(ctx, code, +1)
}

// DecreaseQuantity decrements the row for code, flooring at quantity 1.
// Decrementing a quantity-1 row is a no-op: removing the last unit is an
// explicit RemoveItem, never a side effect. Absent code is a no-op.
func (s *Store) DecreaseQuantity(ctx context.Context, code string) error {
	return s.changeQuantity(ctx, code, -1)
}

func (s *Store) changeQuantity(ctx context.Context, code string, delta int) error {
	var opErr error
	s.rows.Update(func(rows []domain.CartRow) []domain.CartRow {
		idx := indexOf(rows, code)
		if idx < 0 {
			return rows
		}
		next := rows[idx].Quantity + delta
		if next < 1 {
			return rows
		}
		updated := rows[idx]
		updated.Quantity = next
		if opErr = s.storage.SetQuantity(ctx, code, next); opErr != nil {
			return rows
		}
		return replaceAt(rows, idx, updated)
	})
	if opErr != nil {
		return fmt.Errorf("change quantity %s: %w", code, opErr)
	}
	return nil
}

// RemoveItem deletes the row for code; absent code is a no-op.
func (s *Store) RemoveItem(ctx context.Context, code string) error {
	var opErr error
	s.rows.Update(func(rows []domain.CartRow) []domain.CartRow {
		idx := indexOf(rows, code)
		if idx < 0 {
			return rows
		}
		if opErr = s.storage.Delete(ctx, code); opErr != nil {
			return rows
		}
		next := copyRows(rows[:idx])
		return append(next, rows[idx+1:]...)
	})
	if opErr != nil {
		return fmt.Errorf("remove item %s: %w", code, opErr)
	}
	s.logger.Debug("cart: item removed", zap.String("code", code))
	return nil
}

// Clear removes all rows.
func (s *Store) Clear(ctx context.Context) error {
	var opErr error
	s.rows.Update(func(rows []domain.CartRow) []domain.CartRow {
		if opErr = s.storage.DeleteAll(ctx); opErr != nil {
			return rows
		}
		return nil
	})
	if opErr != nil {
		return fmt.Errorf("clear cart: %w", opErr)
	}
	s.logger.Debug("cart: cleared")
	return nil
}

func indexOf(rows []domain.CartRow, code string) int {
	for i, row := range rows {
		if row.Product.Code == code {
			return i
		}
	}
	return -1
}

func copyRows(rows []domain.CartRow) []domain.CartRow {
	return append([]domain.CartRow(nil), rows...)
}

func replaceAt(rows []domain.CartRow, idx int, row domain.CartRow) []domain.CartRow {
	next := copyRows(rows)
	next[idx] = row
	return next
}
