package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// IsActive reports whether the appointment still occupies its slot.
func (s AppointmentStatus) IsActive() bool {
	return s == AppointmentStatusPending || s == AppointmentStatusConfirmed
}

// Appointment booked by a user for a service. At most one active
// (pending/confirmed) appointment may exist per user, date and time.
type Appointment struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	ServiceID uuid.UUID  `gorm:"type:uuid;not null;index"`
	StaffID   *uuid.UUID `gorm:"type:uuid;index"`

	Date   time.Time         `gorm:"type:date;not null;index"`
	Time   string            `gorm:"type:varchar(5);not null"` // "HH:MM"
	Status AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	Notes  string            `gorm:"type:text"`

	Service *Service `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	Staff   *Staff   `gorm:"foreignKey:StaffID;constraint:OnDelete:SET NULL"`
	Payment *Payment `gorm:"foreignKey:AppointmentID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
