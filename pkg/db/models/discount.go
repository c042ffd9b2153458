package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Discount is a promotion configured by a merchant. Scoping follows the tier
// price convention: nil StoreID/CurrencyCode/CustomerGroupID match everything.
// A discount with no product links applies to the whole assortment.
type Discount struct {
	ID                 uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name               string          `gorm:"column:name;not null"`
	UsePercentage      bool            `gorm:"column:use_percentage;not null;default:false"`
	DiscountPercentage decimal.Decimal `gorm:"column:discount_percentage;type:numeric(5,2);not null;default:0"`
	DiscountAmount     decimal.Decimal `gorm:"column:discount_amount;type:numeric(12,2);not null;default:0"`
	IsCumulative       bool            `gorm:"column:is_cumulative;not null;default:false"`

	StoreID         *uuid.UUID `gorm:"column:store_id;type:uuid"`
	CurrencyCode    *string    `gorm:"column:currency_code"`
	CustomerGroupID *uuid.UUID `gorm:"column:customer_group_id;type:uuid"`

	StartDateUTC *time.Time `gorm:"column:start_date_utc"`
	EndDateUTC   *time.Time `gorm:"column:end_date_utc"`
	IsActive     bool       `gorm:"column:is_active;not null;default:true"`

	Products []Product `gorm:"many2many:discount_products"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
