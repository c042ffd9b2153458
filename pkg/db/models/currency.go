package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Currency is a supported denomination. Rate converts from the primary store
// currency; RoundingDecimals is the display precision callers round final
// prices to.
type Currency struct {
	ID               uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Code             string          `gorm:"column:code;uniqueIndex;not null"`
	Name             string          `gorm:"column:name;not null"`
	Rate             decimal.Decimal `gorm:"column:rate;type:numeric(18,8);not null;default:1"`
	RoundingDecimals int32           `gorm:"column:rounding_decimals;not null;default:2"`
	IsActive         bool            `gorm:"column:is_active;not null;default:true"`
	CreatedAt        time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
