package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodOnline PaymentMethod = "online"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Payment record for an appointment. One per appointment; a retry after a
// simulated failure overwrites this row in place instead of appending.
type Payment struct {
	ID            uuid.UUID     `gorm:"type:uuid;primary_key"`
	AppointmentID uuid.UUID     `gorm:"type:uuid;uniqueIndex;not null"`
	Amount        float64       `gorm:"type:decimal(10,2);not null"`
	Method        PaymentMethod `gorm:"type:varchar(20);not null"`
	Status        PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	TransactionID string        // demo pay_xxx format, not a real gateway reference

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
