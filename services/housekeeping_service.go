package services

import (
	"glamour-salon-backend/config"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HousekeepingService runs the daily sweep that settles finished appointments.
type HousekeepingService struct {
	db       *gorm.DB
	bookings *BookingService
}

func NewHousekeepingService(db *gorm.DB) *HousekeepingService {
	return &HousekeepingService{
		db:       db,
		bookings: NewBookingService(db),
	}
}

func (s *HousekeepingService) StartScheduler() {
	c := cron.New()

	// Run every night just after midnight
	c.AddFunc("5 0 * * *", func() {
		s.Run()
	})

	c.Start()
	config.Log.Info("housekeeping scheduler started")
}

func (s *HousekeepingService) Run() {
	completed, err := s.bookings.CompletePastAppointments()
	if err != nil {
		config.Log.Error("appointment completion sweep failed", zap.Error(err))
		return
	}
	if completed > 0 {
		config.Log.Info("appointments marked completed", zap.Int64("count", completed))
	}
}
