// Package review implements review writes (one review per author and
// product, id preserved when the author replaces their own review) and the
// reactive aggregation of a user's reviews with the product catalog.
package review

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront-client/internal/domain"
	"storefront-client/internal/observe"
	reviewrepo "storefront-client/internal/repository/review"
)

// Service owns review writes and publishes the full review set as a
// broadcast cell.
type Service struct {
	storage reviewrepo.Storage
	logger  *zap.Logger
	reviews *observe.Cell[[]domain.Review]
}

// NewService builds the service and primes the reviews cell from storage.
func NewService(ctx context.Context, storage reviewrepo.Storage, logger *zap.Logger) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	initial, err := storage.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}
	return &Service{
		storage: storage,
		logger:  logger,
		reviews: observe.NewCell(initial),
	}, nil
}

// Reviews is the reactive collection of all stored reviews.
func (s *Service) Reviews() *observe.Cell[[]domain.Review] {
	return s.reviews
}

// ByProduct returns the reviews for one product, newest first.
func (s *Service) ByProduct(ctx context.Context, code string) ([]domain.Review, error) {
	return s.storage.ByProduct(ctx, code)
}

// Submit records the author's review for a product. A second review from the
// same author for the same product replaces the first in place: the id and
// creation timestamp survive, rating and comment are overwritten.
func (s *Service) Submit(ctx context.Context, author domain.Identity, productCode string, rating int, comment string) (domain.Review, error) {
	if strings.TrimSpace(productCode) == "" {
		return domain.Review{}, fmt.Errorf("%w: empty product code", domain.ErrValidation)
	}
	if rating < 1 || rating > 5 {
		return domain.Review{}, fmt.Errorf("%w: rating %d outside 1..5", domain.ErrValidation, rating)
	}

	review := domain.Review{
		ProductCode: productCode,
		AuthorEmail: author.Email,
		AuthorName:  author.Name,
		Rating:      rating,
		Comment:     comment,
	}

	existing, err := s.storage.FindByAuthorProduct(ctx, author.Email, productCode)
	switch {
	case err == nil:
		review.ID = existing.ID
		review.CreatedAt = existing.CreatedAt
	case errors.Is(err, domain.ErrNotFound):
		review.ID = uuid.NewString()
		review.CreatedAt = time.Now().UTC()
	default:
		return domain.Review{}, fmt.Errorf("submit review: %w", err)
	}

	if err := s.storage.Upsert(ctx, review); err != nil {
		return domain.Review{}, fmt.Errorf("submit review: %w", err)
	}

	all, err := s.storage.All(ctx)
	if err != nil {
		return domain.Review{}, fmt.Errorf("refresh reviews: %w", err)
	}
	s.reviews.Set(all)
	s.logger.Info("review submitted",
		zap.String("product", productCode),
		zap.String("author", author.Email),
		zap.Int("rating", rating),
	)
	return review, nil
}
