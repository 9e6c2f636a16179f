// Package review persists user reviews in the embedded database. Write
// policy (one review per author and product, id preserved on replacement)
// lives in the review service; this package is plain storage.
package review

import (
	"context"

	"storefront-client/internal/domain"
)

// Storage is the persistence contract the review service drives.
type Storage interface {
	// All returns every stored review, newest first.
	All(ctx context.Context) ([]domain.Review, error)
	// ByProduct returns the reviews for a product code, newest first.
	ByProduct(ctx context.Context, code string) ([]domain.Review, error)
	// ByAuthor returns the reviews written by the author, newest first.
	ByAuthor(ctx context.Context, email string) ([]domain.Review, error)
	// FindByAuthorProduct returns the author's review for the product, or
	// domain.ErrNotFound.
	FindByAuthorProduct(ctx context.Context, email, code string) (*domain.Review, error)
	// Upsert inserts the review or overwrites the row with the same id.
	Upsert(ctx context.Context, review domain.Review) error
}
