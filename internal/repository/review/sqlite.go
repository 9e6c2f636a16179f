package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront-client/internal/domain"
)

type reviewRow struct {
	ID          string    `gorm:"primaryKey;column:id"`
	ProductCode string    `gorm:"column:product_code"`
	AuthorEmail string    `gorm:"column:author_email"`
	AuthorName  string    `gorm:"column:author_name"`
	Rating      int       `gorm:"column:rating"`
	Comment     string    `gorm:"column:comment"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (reviewRow) TableName() string { return "reviews" }

// Repository is the SQLite-backed review storage.
type Repository struct {
	db *gorm.DB
}

var _ Storage = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) All(ctx context.Context) ([]domain.Review, error) {
	return r.list(ctx, r.db.WithContext(ctx))
}

func (r *Repository) ByProduct(ctx context.Context, code string) ([]domain.Review, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("product_code = ?", code))
}

func (r *Repository) ByAuthor(ctx context.Context, email string) ([]domain.Review, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("author_email = ?", email))
}

func (r *Repository) list(ctx context.Context, q *gorm.DB) ([]domain.Review, error) {
	var rows []reviewRow
	if err := q.Order("created_at DESC, id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	reviews := make([]domain.Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, toDomain(row))
	}
	return reviews, nil
}

func (r *Repository) FindByAuthorProduct(ctx context.Context, email, code string) (*domain.Review, error) {
	var row reviewRow
	err := r.db.WithContext(ctx).First(&row, "author_email = ? AND product_code = ?", email, code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find review: %w", err)
	}
	review := toDomain(row)
	return &review, nil
}

func (r *Repository) Upsert(ctx context.Context, review domain.Review) error {
	row := reviewRow{
		ID:          review.ID,
		ProductCode: review.ProductCode,
		AuthorEmail: review.AuthorEmail,
		AuthorName:  review.AuthorName,
		Rating:      review.Rating,
		Comment:     review.Comment,
		CreatedAt:   review.CreatedAt,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("upsert review %s: %w", review.ID, err)
	}
	return nil
}

func toDomain(row reviewRow) domain.Review {
	return domain.Review{
		ID:          row.ID,
		ProductCode: row.ProductCode,
		AuthorEmail: row.AuthorEmail,
		AuthorName:  row.AuthorName,
		Rating:      row.Rating,
		Comment:     row.Comment,
		CreatedAt:   row.CreatedAt,
	}
}
