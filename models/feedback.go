package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feedback left by a logged-in customer, shown on the testimonials page.
type Feedback struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating  int       `gorm:"not null;default:5"` // 1-5
	Message string    `gorm:"type:text"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	gorm.Model
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return
}
