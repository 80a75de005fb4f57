package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Staff member who can be assigned to appointments.
type Staff struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	Name           string    `gorm:"not null"`
	Specialization string
	ImageURL       string
	// No column default: a zero-value false must reach the INSERT so admins
	// can create inactive staff. Callers set this explicitly.
	IsActive bool `gorm:"not null"`

	gorm.Model
}

func (s *Staff) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
