package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/velamart/storefront-backend/pkg/types"
)

// ProductAttributeCombination pins a specific set of selected attribute values
// to its own SKU, stock and optional price/cost overrides (a concrete variant
// such as a particular color+size).
type ProductAttributeCombination struct {
	ID              uuid.UUID                `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID       uuid.UUID                `gorm:"column:product_id;type:uuid;not null;index"`
	Attributes      types.AttributeSelection `gorm:"column:attributes;type:jsonb;not null"`
	SKU             *string                  `gorm:"column:sku"`
	OverriddenPrice *decimal.Decimal         `gorm:"column:overridden_price;type:numeric(12,2)"`
	OverriddenCost  *decimal.Decimal         `gorm:"column:overridden_cost;type:numeric(12,2)"`
	StockQuantity   int                      `gorm:"column:stock_quantity;not null;default:0"`
	PictureID       *uuid.UUID               `gorm:"column:picture_id;type:uuid"`
	CreatedAt       time.Time                `gorm:"column:created_at;autoCreateTime"`
}
