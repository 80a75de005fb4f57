package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact form submission from the public site.
type Contact struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	Name    string    `gorm:"not null"`
	Email   string    `gorm:"not null"`
	Subject string
	Message string `gorm:"type:text;not null"`

	gorm.Model
}

func (c *Contact) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
