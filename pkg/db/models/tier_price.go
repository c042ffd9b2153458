package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TierPrice is a quantity-breakpoint price override on a product. A nil
// StoreID, CustomerGroupID or CurrencyCode is the wildcard sentinel: the entry
// applies to every value of that dimension. The date window is optional on
// both ends.
type TierPrice struct {
	ID               uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID        uuid.UUID       `gorm:"column:product_id;type:uuid;not null;index"`
	StoreID          *uuid.UUID      `gorm:"column:store_id;type:uuid"`
	CustomerGroupID  *uuid.UUID      `gorm:"column:customer_group_id;type:uuid"`
	CurrencyCode     *string         `gorm:"column:currency_code"`
	Quantity         int             `gorm:"column:quantity;not null;default:1"`
	Price            decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	StartDateTimeUTC *time.Time      `gorm:"column:start_datetime_utc"`
	EndDateTimeUTC   *time.Time      `gorm:"column:end_datetime_utc"`
	CreatedAt        time.Time       `gorm:"column:created_at;autoCreateTime"`
}
