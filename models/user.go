package models

import (
	"glamour-salon-backend/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Username string    `gorm:"uniqueIndex;not null"`
	Email    string    `gorm:"index"`
	Password string    `gorm:"not null"`

	FirstName string
	LastName  string
	Phone     string
	AvatarURL string

	LastLogin *time.Time
	IsActive  bool `gorm:"default:true"`

	Cart         *Cart                `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Appointments []Appointment        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Favourites   []UserFavourite      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	SavedCards   []SavedPaymentMethod `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Feedbacks    []Feedback           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	gorm.Model
}

// Initialize UUID and hash the password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
