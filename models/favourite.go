package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserFavourite is a service saved for quick booking later. Adding the same
// service twice is a no-op (unique pair).
type UserFavourite struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_service,priority:1"`
	ServiceID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_service,priority:2"`

	Service *Service `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (f *UserFavourite) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return
}
