package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	Name            string    `gorm:"not null"`
	Description     string
	Price           float64 `gorm:"type:decimal(10,2);not null"`
	DurationMinutes int     `gorm:"default:60"` // approx duration in minutes
	ImageURL        string
	Location        string `gorm:"index"` // branch or area, e.g. Chembur, Bandra
	// No column default: a zero-value false must reach the INSERT so admins
	// can create inactive services. Callers set this explicitly.
	IsActive bool `gorm:"not null"`

	gorm.Model
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
