package cart

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront-client/internal/domain"
)

type cartRow struct {
	Code        string `gorm:"primaryKey;column:code"`
	Category    string `gorm:"column:category"`
	Brand       string `gorm:"column:brand"`
	Name        string `gorm:"column:name"`
	PriceCents  int64  `gorm:"column:price_cents"`
	Description string `gorm:"column:description"`
	Image       string `gorm:"column:image"`
	Quantity    int    `gorm:"column:quantity"`
	Position    int64  `gorm:"column:position"`
}

func (cartRow) TableName() string { return "cart_rows" }

// Repository is the SQLite-backed cart storage.
type Repository struct {
	db *gorm.DB
}

var _ Storage = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) All(ctx context.Context) ([]domain.CartRow, error) {
	var rows []cartRow
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list cart rows: %w", err)
	}
	result := make([]domain.CartRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.CartRow{
			Product: domain.Product{
				Code:        row.Code,
				Category:    row.Category,
				Brand:       row.Brand,
				Name:        row.Name,
				PriceCents:  row.PriceCents,
				Description: row.Description,
				Image:       row.Image,
			},
			Quantity: row.Quantity,
		})
	}
	return result, nil
}

func (r *Repository) Upsert(ctx context.Context, row domain.CartRow) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var position int64
		var existing cartRow
		err := tx.Select("position").First(&existing, "code = ?", row.Product.Code).Error
		switch {
		case err == nil:
			position = existing.Position
		case errors.Is(err, gorm.ErrRecordNotFound):
			var maxPos *int64
			if err := tx.Model(&cartRow{}).Select("MAX(position)").Scan(&maxPos).Error; err != nil {
				return fmt.Errorf("next cart position: %w", err)
			}
			if maxPos != nil {
				position = *maxPos + 1
			}
		default:
			return fmt.Errorf("find cart row %s: %w", row.Product.Code, err)
		}

		rec := cartRow{
			Code:        row.Product.Code,
			Category:    row.Product.Category,
			Brand:       row.Product.Brand,
			Name:        row.Product.Name,
			PriceCents:  row.Product.PriceCents,
			Description: row.Product.Description,
			Image:       row.Product.Image,
			Quantity:    row.Quantity,
			Position:    position,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			UpdateAll: true,
		}).Create(&rec).Error; err != nil {
			return fmt.Errorf("upsert cart row %s: %w", row.Product.Code, err)
		}
		return nil
	})
}

func (r *Repository) SetQuantity(ctx context.Context, code string, quantity int) error {
	err := r.db.WithContext(ctx).Model(&cartRow{}).Where("code = ?", code).Update("quantity", quantity).Error
	if err != nil {
		return fmt.Errorf("set quantity for %s: %w", code, err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, code string) error {
	if err := r.db.WithContext(ctx).Delete(&cartRow{}, "code = ?", code).Error; err != nil {
		return fmt.Errorf("delete cart row %s: %w", code, err)
	}
	return nil
}

func (r *Repository) DeleteAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&cartRow{}).Error; err != nil {
		return fmt.Errorf("delete cart rows: %w", err)
	}
	return nil
}
