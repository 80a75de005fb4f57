package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cart holds services a user staged before booking. One cart per user,
// created lazily on first add. Items are hard-deleted so the (cart, service)
// unique pair can be reused after removal.
type Cart struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	Items []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Cart) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}

// TotalPrice sums price * quantity over the loaded items. Items must be
// preloaded with their services.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, item := range c.Items {
		if item.Service != nil {
			total += item.Service.Price * float64(item.Quantity)
		}
	}
	return total
}

type CartItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CartID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_service,priority:1"`
	ServiceID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_service,priority:2"`
	Quantity  int       `gorm:"not null;default:1"`

	Service *Service `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) (err error) {
	if ci.ID == uuid.Nil {
		ci.ID = uuid.New()
	}
	return
}
