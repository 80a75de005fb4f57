package services

import (
	"errors"
	"time"

	"glamour-salon-backend/config"
	"glamour-salon-backend/models"
	"glamour-salon-backend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"
const timeLayout = "15:04"

var errSlotTaken = errors.New("slot already booked")

// BookingService owns the appointment lifecycle: create with clash check,
// cancel, and the upcoming/history partition.
type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

type BookRequest struct {
	ServiceID uuid.UUID
	StaffID   *uuid.UUID
	Date      string // "2006-01-02"
	Time      string // "15:04"
	Notes     string
}

// Today returns the current calendar date as a UTC midnight. All appointment
// dates are stored with this convention so comparisons never cross timezones.
func Today() time.Time {
	return utils.BeginningOfDay(time.Now().UTC())
}

// Book validates the request and creates a pending appointment. The clash
// check and the insert run in one transaction; a unique partial index on
// (user_id, date, time) for active statuses backstops concurrent requests.
func (s *BookingService) Book(userID uuid.UUID, req BookRequest) (*models.Appointment, Flash, error) {
	if req.Date == "" || req.Time == "" {
		return nil, errorFlash("Please select date and time."), nil
	}

	apptDate, dateErr := time.Parse(dateLayout, req.Date)
	apptTime, timeErr := time.Parse(timeLayout, req.Time)
	if dateErr != nil || timeErr != nil {
		return nil, errorFlash("Invalid date or time."), nil
	}

	if apptDate.Before(Today()) {
		return nil, errorFlash("Cannot book in the past."), nil
	}

	var service models.Service
	if err := s.db.Where("id = ? AND is_active = ?", req.ServiceID, true).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorFlash("Service not found."), ErrNotFound
		}
		return nil, errorFlash("Could not book the appointment."), err
	}

	// Staff is an optional preference; an unknown or inactive id is dropped
	// rather than rejected.
	var staffID *uuid.UUID
	if req.StaffID != nil {
		var staff models.Staff
		if err := s.db.Where("id = ? AND is_active = ?", *req.StaffID, true).First(&staff).Error; err == nil {
			staffID = &staff.ID
		}
	}

	timeStr := apptTime.Format(timeLayout)
	appointment := &models.Appointment{
		UserID:    userID,
		ServiceID: service.ID,
		StaffID:   staffID,
		Date:      apptDate,
		Time:      timeStr,
		Status:    models.AppointmentStatusPending,
		Notes:     req.Notes,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// One slot per user per calendar moment, regardless of service.
		var count int64
		if err := tx.Model(&models.Appointment{}).
			Where("user_id = ? AND date = ? AND time = ? AND status IN ?",
				userID, apptDate, timeStr,
				[]models.AppointmentStatus{models.AppointmentStatusPending, models.AppointmentStatusConfirmed}).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errSlotTaken
		}
		return tx.Create(appointment).Error
	})
	if errors.Is(err, errSlotTaken) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, errorFlash("You already have an appointment at this date and time."), ErrConflict
	}
	if err != nil {
		config.Log.Error("booking create failed", zap.String("userID", userID.String()), zap.Error(err))
		return nil, errorFlash("Could not book the appointment."), err
	}

	return appointment, successFlash("Appointment booked! Proceed to payment."), nil
}

// Cancel moves a pending or confirmed appointment to cancelled. Terminal
// appointments are left untouched with a warning.
func (s *BookingService) Cancel(userID, appointmentID uuid.UUID) (Flash, error) {
	var appointment models.Appointment
	err := s.db.Where("id = ? AND user_id = ?", appointmentID, userID).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorFlash("Appointment not found."), ErrNotFound
		}
		return errorFlash("Could not cancel the appointment."), err
	}

	if !appointment.Status.IsActive() {
		return warningFlash("This appointment cannot be cancelled."), nil
	}

	if err := s.db.Model(&appointment).Update("status", models.AppointmentStatusCancelled).Error; err != nil {
		return errorFlash("Could not cancel the appointment."), err
	}
	return successFlash("Appointment cancelled."), nil
}

// MyAppointments returns the user's appointments split into upcoming and
// history, newest first.
func (s *BookingService) MyAppointments(userID uuid.UUID) (upcoming, history []models.Appointment, err error) {
	var all []models.Appointment
	err = s.db.Preload("Service").Preload("Staff").Preload("Payment").
		Where("user_id = ?", userID).
		Order("date DESC, time DESC").
		Find(&all).Error
	if err != nil {
		return nil, nil, err
	}
	upcoming, history = PartitionAppointments(all, Today())
	return upcoming, history, nil
}

// PartitionAppointments splits appointments into upcoming (still active and
// dated today or later) and history (everything else, including past-dated
// appointments that were never acted on). Every appointment lands in exactly
// one of the two sets.
func PartitionAppointments(appointments []models.Appointment, today time.Time) (upcoming, history []models.Appointment) {
	todayKey := today.Format(dateLayout)
	for _, a := range appointments {
		if a.Status.IsActive() && a.Date.Format(dateLayout) >= todayKey {
			upcoming = append(upcoming, a)
		} else {
			history = append(history, a)
		}
	}
	return upcoming, history
}

// CompletePastAppointments marks confirmed appointments whose date has passed
// as completed. Run by the daily housekeeping sweep and safe to re-run.
func (s *BookingService) CompletePastAppointments() (int64, error) {
	result := s.db.Model(&models.Appointment{}).
		Where("status = ? AND date < ?", models.AppointmentStatusConfirmed, Today()).
		Update("status", models.AppointmentStatusCompleted)
	return result.RowsAffected, result.Error
}
