package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/velamart/storefront-backend/pkg/types"
)

// ShoppingCartItem associates a customer with a product, quantity and the
// selections that drive pricing. Rental dates are set only for rental
// products.
type ShoppingCartItem struct {
	ID         uuid.UUID                `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerID uuid.UUID                `gorm:"column:customer_id;type:uuid;not null;index"`
	StoreID    uuid.UUID                `gorm:"column:store_id;type:uuid;not null"`
	ProductID  uuid.UUID                `gorm:"column:product_id;type:uuid;not null"`
	Quantity   int                      `gorm:"column:quantity;not null;default:1"`
	Attributes types.AttributeSelection `gorm:"column:attributes;type:jsonb"`

	CustomerEnteredPrice *decimal.Decimal `gorm:"column:customer_entered_price;type:numeric(12,2)"`

	RentalStartDateUTC *time.Time `gorm:"column:rental_start_date_utc"`
	RentalEndDateUTC   *time.Time `gorm:"column:rental_end_date_utc"`

	AppliedTierPrice *types.AppliedTierPrice `gorm:"column:applied_tier_price;type:jsonb"`
	AppliedDiscounts types.AppliedDiscounts  `gorm:"column:applied_discounts;type:jsonb"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
