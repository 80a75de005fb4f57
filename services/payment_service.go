package services

import (
	"errors"
	"fmt"
	"math/rand"

	"glamour-salon-backend/config"
	"glamour-salon-backend/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PaymentMode selects how the user settles an appointment.
type PaymentMode string

const (
	PayModeSalon  PaymentMode = "salon"  // cash/card at the counter, no gateway
	PayModeOnline PaymentMode = "online" // simulated gateway
)

const txidChars = "abcdefghijklmnopqrstuvwxyz0123456789"

// generateTransactionID returns a Razorpay-style demo reference
// (pay_ + 14 lowercase alphanumerics). Cosmetic only, no uniqueness enforced.
func generateTransactionID() string {
	b := make([]byte, 14)
	for i := range b {
		b[i] = txidChars[rand.Intn(len(txidChars))]
	}
	return "pay_" + string(b)
}

// PaymentService ties a payment to exactly one appointment and drives the
// appointment's confirmation transition.
type PaymentService struct {
	db       *gorm.DB
	notifier *Notifier
}

func NewPaymentService(db *gorm.DB, notifier *Notifier) *PaymentService {
	return &PaymentService{db: db, notifier: notifier}
}

// Attempt records a payment for the appointment. The payment row is upserted
// keyed on the one-to-one appointment link, so a retry after a simulated
// failure overwrites the same row. Amount is always recomputed from the
// current service price.
func (s *PaymentService) Attempt(userID, appointmentID uuid.UUID, mode PaymentMode, simulateSuccess bool) (*models.Payment, Flash, error) {
	var appointment models.Appointment
	err := s.db.Preload("Service").Preload("Payment").
		Where("id = ? AND user_id = ?", appointmentID, userID).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorFlash("Appointment not found."), ErrNotFound
		}
		return nil, errorFlash("Payment could not be processed."), err
	}

	if appointment.Status == models.AppointmentStatusCancelled {
		return nil, errorFlash("This appointment is cancelled."), ErrConflict
	}
	if appointment.Payment != nil && appointment.Payment.Status == models.PaymentStatusPaid {
		return nil, infoFlash("This appointment is already paid."), ErrConflict
	}
	if appointment.Service == nil {
		return nil, errorFlash("Payment could not be processed."), ErrNotFound
	}
	amount := appointment.Service.Price

	if mode == PayModeSalon {
		txid := generateTransactionID()
		err := s.db.Transaction(func(tx *gorm.DB) error {
			if err := s.upsertPayment(tx, appointment.ID, amount, models.PaymentMethodCash, models.PaymentStatusPaid, txid); err != nil {
				return err
			}
			return tx.Model(&models.Appointment{}).Where("id = ?", appointment.ID).
				Update("status", models.AppointmentStatusConfirmed).Error
		})
		if err != nil {
			config.Log.Error("salon payment failed", zap.String("appointmentID", appointment.ID.String()), zap.Error(err))
			return nil, errorFlash("Payment could not be processed."), err
		}
		payment, err := s.paymentFor(appointment.ID)
		if err != nil {
			return nil, errorFlash("Payment could not be processed."), err
		}
		s.notifyConfirmed(userID, &appointment)
		return payment, successFlash(fmt.Sprintf("Payment recorded. Transaction ID: %s", txid)), nil
	}

	// Online path: persist the attempt as pending first, then branch on the
	// simulated gateway outcome.
	if err := s.upsertPayment(s.db, appointment.ID, amount, models.PaymentMethodOnline, models.PaymentStatusPending, ""); err != nil {
		return nil, errorFlash("Payment could not be processed."), err
	}

	if !simulateSuccess {
		err := s.db.Model(&models.Payment{}).Where("appointment_id = ?", appointment.ID).
			Update("status", models.PaymentStatusFailed).Error
		if err != nil {
			return nil, errorFlash("Payment could not be processed."), err
		}
		payment, err := s.paymentFor(appointment.ID)
		if err != nil {
			return nil, errorFlash("Payment could not be processed."), err
		}
		return payment, errorFlash("Payment failed (simulated). Try again."), nil
	}

	txid := generateTransactionID()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Payment{}).Where("appointment_id = ?", appointment.ID).
			Updates(map[string]interface{}{
				"status":         models.PaymentStatusPaid,
				"transaction_id": txid,
			}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Appointment{}).Where("id = ?", appointment.ID).
			Update("status", models.AppointmentStatusConfirmed).Error
	})
	if err != nil {
		config.Log.Error("online payment failed", zap.String("appointmentID", appointment.ID.String()), zap.Error(err))
		return nil, errorFlash("Payment could not be processed."), err
	}
	payment, err := s.paymentFor(appointment.ID)
	if err != nil {
		return nil, errorFlash("Payment could not be processed."), err
	}
	s.notifyConfirmed(userID, &appointment)
	return payment, successFlash(fmt.Sprintf("Payment successful! Transaction ID: %s", txid)), nil
}

// upsertPayment creates the payment or overwrites the existing row in place
// (ON CONFLICT on the unique appointment_id).
func (s *PaymentService) upsertPayment(tx *gorm.DB, appointmentID uuid.UUID, amount float64, method models.PaymentMethod, status models.PaymentStatus, txid string) error {
	payment := models.Payment{
		AppointmentID: appointmentID,
		Amount:        amount,
		Method:        method,
		Status:        status,
		TransactionID: txid,
	}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "appointment_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"amount", "method", "status", "transaction_id", "updated_at",
		}),
	}).Create(&payment).Error
}

func (s *PaymentService) paymentFor(appointmentID uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.Where("appointment_id = ?", appointmentID).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *PaymentService) notifyConfirmed(userID uuid.UUID, appointment *models.Appointment) {
	if s.notifier == nil {
		return
	}
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return
	}
	serviceName := ""
	if appointment.Service != nil {
		serviceName = appointment.Service.Name
	}
	s.notifier.SendBookingConfirmation(user.Phone, serviceName, appointment.Date.Format(dateLayout), appointment.Time)
}
