package models

import (
	"time"

	"github.com/google/uuid"
)

// CustomerGroup is a named customer segment used to scope tier prices and
// discounts.
type CustomerGroup struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// Customer carries the group memberships the pricing pipeline scopes by.
type Customer struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email     string          `gorm:"column:email;uniqueIndex;not null"`
	Groups    []CustomerGroup `gorm:"many2many:customer_group_memberships"`
	IsActive  bool            `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// InGroup reports whether the customer belongs to the given group.
func (c *Customer) InGroup(groupID uuid.UUID) bool {
	if c == nil {
		return false
	}
	for _, group := range c.Groups {
		if group.ID == groupID {
			return true
		}
	}
	return false
}
