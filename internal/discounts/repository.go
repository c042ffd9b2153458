package discounts

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/velamart/storefront-backend/pkg/db/models"
)

// Repository loads discount rows for the pricing pipeline.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// ListActiveForProduct returns discounts that are active at asOf and either
// linked to the product or global (no product links at all). Store, currency
// and customer-group scoping happens in the service; this query only trims
// by activity and assortment.
func (r *Repository) ListActiveForProduct(ctx context.Context, productID uuid.UUID, asOf time.Time) ([]models.Discount, error) {
	var discounts []models.Discount
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("start_date_utc IS NULL OR start_date_utc < ?", asOf).
		Where("end_date_utc IS NULL OR end_date_utc > ?", asOf).
		Where("id IN (SELECT discount_id FROM discount_products WHERE product_id = ?) OR id NOT IN (SELECT discount_id FROM discount_products)", productID).
		Order("created_at ASC").
		Find(&discounts).
		Error
	if err != nil {
		return nil, err
	}
	return discounts, nil
}

// Create inserts a discount row.
func (r *Repository) Create(ctx context.Context, discount *models.Discount) (*models.Discount, error) {
	if err := r.db.WithContext(ctx).Create(discount).Error; err != nil {
		return nil, err
	}
	return discount, nil
}

// LinkProduct attaches a discount to a product.
func (r *Repository) LinkProduct(ctx context.Context, discountID, productID uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(
		"INSERT INTO discount_products (discount_id, product_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		discountID, productID,
	).Error
}
