package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/velamart/storefront-backend/pkg/enums"
)

// Product represents the canonical catalog listing.
type Product struct {
	ID      uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	StoreID uuid.UUID `gorm:"column:store_id;type:uuid;not null"`
	SKU     string    `gorm:"column:sku;not null"`
	Name    string    `gorm:"column:name;not null"`

	Price       decimal.Decimal  `gorm:"column:price;type:numeric(12,2);not null"`
	OldPrice    *decimal.Decimal `gorm:"column:old_price;type:numeric(12,2)"`
	ProductCost decimal.Decimal  `gorm:"column:product_cost;type:numeric(12,2);not null;default:0"`

	CustomerEntersPrice bool            `gorm:"column:customer_enters_price;not null;default:false"`
	MinEnteredPrice     decimal.Decimal `gorm:"column:min_entered_price;type:numeric(12,2);not null;default:0"`
	MaxEnteredPrice     decimal.Decimal `gorm:"column:max_entered_price;type:numeric(12,2);not null;default:0"`

	IsRental          bool                       `gorm:"column:is_rental;not null;default:false"`
	RentalCycleLength int                        `gorm:"column:rental_cycle_length;not null;default:1"`
	RentalCyclePeriod enums.RecurringCyclePeriod `gorm:"column:rental_cycle_period;not null;default:'days'"`
	IncBothDate       bool                       `gorm:"column:inc_both_date;not null;default:false"`

	InventoryMethod enums.InventoryMethod `gorm:"column:inventory_method;not null;default:'none'"`
	StockQuantity   int                   `gorm:"column:stock_quantity;not null;default:0"`

	OrderMinimumQuantity int `gorm:"column:order_minimum_quantity;not null;default:1"`
	OrderMaximumQuantity int `gorm:"column:order_maximum_quantity;not null;default:0"`

	IsActive bool `gorm:"column:is_active;not null;default:true"`

	TierPrices            []TierPrice                   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	AttributeMappings     []ProductAttributeMapping     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	AttributeCombinations []ProductAttributeCombination `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// HasTierPrices reports whether any tier rows are configured; the pricing
// pipeline uses this as its no-op fast path.
func (p *Product) HasTierPrices() bool {
	return p != nil && len(p.TierPrices) > 0
}
