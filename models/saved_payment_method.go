package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CardType string

const (
	CardTypeVisa       CardType = "visa"
	CardTypeMastercard CardType = "mastercard"
	CardTypeRupay      CardType = "rupay"
)

// SavedPaymentMethod is a demo saved card: last 4 digits, network, nickname.
// No real card data is ever stored.
type SavedPaymentMethod struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	LastFour  string    `gorm:"type:varchar(4);not null"`
	CardType  CardType  `gorm:"type:varchar(20);not null"`
	Nickname  string    `gorm:"type:varchar(50)"`
	IsDefault bool      `gorm:"default:false"`

	gorm.Model
}

func (m *SavedPaymentMethod) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
