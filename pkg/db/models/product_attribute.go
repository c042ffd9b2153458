package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/velamart/storefront-backend/pkg/enums"
)

// ProductAttribute is a reusable attribute definition (color, size, material).
type ProductAttribute struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// ProductAttributeMapping attaches an attribute to a product with a concrete
// control type and the selectable values.
type ProductAttributeMapping struct {
	ID                 uuid.UUID                  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID          uuid.UUID                  `gorm:"column:product_id;type:uuid;not null;index"`
	ProductAttributeID uuid.UUID                  `gorm:"column:product_attribute_id;type:uuid;not null"`
	ControlType        enums.AttributeControlType `gorm:"column:control_type;not null;default:'dropdown'"`
	IsRequired         bool                       `gorm:"column:is_required;not null;default:false"`
	DisplayOrder       int                        `gorm:"column:display_order;not null;default:0"`
	Values             []ProductAttributeValue    `gorm:"foreignKey:MappingID;constraint:OnDelete:CASCADE"`
	CreatedAt          time.Time                  `gorm:"column:created_at;autoCreateTime"`
}

// ProductAttributeValue is one selectable choice with its price, weight and
// cost deltas. AdjustmentKind decides whether PriceAdjustment is a flat amount
// or a percentage of the base price.
type ProductAttributeValue struct {
	ID               uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	MappingID        uuid.UUID            `gorm:"column:mapping_id;type:uuid;not null;index"`
	Name             string               `gorm:"column:name;not null"`
	PriceAdjustment  decimal.Decimal      `gorm:"column:price_adjustment;type:numeric(12,2);not null;default:0"`
	AdjustmentKind   enums.AdjustmentKind `gorm:"column:adjustment_kind;not null;default:'fixed_amount'"`
	WeightAdjustment decimal.Decimal      `gorm:"column:weight_adjustment;type:numeric(12,3);not null;default:0"`
	Cost             decimal.Decimal      `gorm:"column:cost;type:numeric(12,2);not null;default:0"`
	IsPreSelected    bool                 `gorm:"column:is_pre_selected;not null;default:false"`
	DisplayOrder     int                  `gorm:"column:display_order;not null;default:0"`
	CreatedAt        time.Time            `gorm:"column:created_at;autoCreateTime"`
}
