package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"storefront-client/internal/domain"
	"storefront-client/internal/observe"
)

type productRow struct {
	Code        string `gorm:"primaryKey;column:code"`
	Category    string `gorm:"column:category"`
	Brand       string `gorm:"column:brand"`
	Name        string `gorm:"column:name"`
	PriceCents  int64  `gorm:"column:price_cents"`
	Description string `gorm:"column:description"`
	Image       string `gorm:"column:image"`
}

func (productRow) TableName() string { return "products" }

// Repository is the SQLite-backed catalog store. It additionally publishes
// the catalog as a broadcast cell refreshed after every committed replace.
type Repository struct {
	db       *gorm.DB
	logger   *zap.Logger
	products *observe.Cell[[]domain.Product]
}

var _ Store = (*Repository)(nil)

// NewRepository builds the store and primes the products cell from the
// current table contents.
func NewRepository(db *gorm.DB, logger *zap.Logger) (*Repository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Repository{
		db:       db,
		logger:   logger,
		products: observe.NewCell[[]domain.Product](nil),
	}
	initial, err := r.All(context.Background())
	if err != nil {
		return nil, fmt.Errorf("prime catalog cell: %w", err)
	}
	r.products.Set(initial)
	return r, nil
}

// Products is the reactive catalog collection. Subscribers observe the full
// list after every committed replace.
func (r *Repository) Products() *observe.Cell[[]domain.Product] {
	return r.products
}

func (r *Repository) All(ctx context.Context) ([]domain.Product, error) {
	var rows []productRow
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, toDomain(row))
	}
	return products, nil
}

func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Product, error) {
	var row productRow
	if err := r.db.WithContext(ctx).First(&row, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get product %s: %w", code, err)
	}
	p := toDomain(row)
	return &p, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&productRow{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

// ReplaceAll deletes every row and inserts products within one transaction,
// then refreshes the products cell. A failed or abandoned replace rolls back
// and leaves both the table and the cell untouched.
func (r *Repository) ReplaceAll(ctx context.Context, products []domain.Product) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&productRow{}).Error; err != nil {
			return fmt.Errorf("delete products: %w", err)
		}
		if len(products) == 0 {
			return nil
		}
		rows := make([]productRow, 0, len(products))
		for _, p := range products {
			rows = append(rows, fromDomain(p))
		}
		if err := tx.CreateInBatches(rows, 100).Error; err != nil {
			return fmt.Errorf("insert products: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	refreshed, err := r.All(ctx)
	if err != nil {
		return fmt.Errorf("refresh catalog cell: %w", err)
	}
	r.products.Set(refreshed)
	r.logger.Info("catalog replaced", zap.Int("count", len(refreshed)))
	return nil
}

func toDomain(row productRow) domain.Product {
	return domain.Product{
		Code:        row.Code,
		Category:    row.Category,
		Brand:       row.Brand,
		Name:        row.Name,
		PriceCents:  row.PriceCents,
		Description: row.Description,
		Image:       row.Image,
	}
}

func fromDomain(p domain.Product) productRow {
	return productRow{
		Code:        p.Code,
		Category:    p.Category,
		Brand:       p.Brand,
		Name:        p.Name,
		PriceCents:  p.PriceCents,
		Description: p.Description,
		Image:       p.Image,
	}
}
