package services

import (
	"errors"
	"testing"
	"time"

	"glamour-salon-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func TestBook_CreatesPendingAppointment(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	service := createTestService(t, db, "Facial", 500)
	svc := NewBookingService(db)

	appointment, flash, err := svc.Book(user.ID, BookRequest{
		ServiceID: service.ID,
		Date:      tomorrow(),
		Time:      "10:00",
		Notes:     "first visit",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flash.Level != FlashSuccess {
		t.Fatalf("expected success flash, got %q: %q", flash.Level, flash.Message)
	}
	if flash.Message != "Appointment booked! Proceed to payment." {
		t.Fatalf("unexpected message %q", flash.Message)
	}
	if appointment.Status != models.AppointmentStatusPending {
		t.Fatalf("expected pending, got %q", appointment.Status)
	}
	if appointment.Time != "10:00" {
		t.Fatalf("expected time 10:00, got %q", appointment.Time)
	}
}

func TestBook_RejectsMissingDateAndTime(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	service := createTestService(t, db, "Haircut", 300)
	svc := NewBookingService(db)

	_, flash, err := svc.Book(user.ID, BookRequest{ServiceID: service.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flash.Message != "Please select date and time." {
		t.Fatalf("unexpected message %q", flash.Message)
	}
}

func TestBook_RejectsUnparseableDate(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	service := createTestService(t, db, "Haircut", 300)
	svc := NewBookingService(db)

	_, flash, err := svc.Book(user.ID, BookRequest{
		ServiceID: service.ID,
		Date:      "not-a-date",
		Time:      "10:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flash.Message != "Invalid date or time." {
		t.Fatalf("unexpected message %q", flash.Message)
	}
}

func TestBook_RejectsPastDate(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	service := createTestService(t, db, "Haircut", 300)
	svc := NewBookingService(db)

	_, flash, err := svc.Book(user.ID, BookRequest{
		ServiceID: service.ID,
		Date:      yesterday(),
		Time:      "10:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flash.Message != "Cannot book in the past." {
		t.Fatalf("unexpected message %q", flash.Message)
	}

	var count int64
	db.Model(&models.Appointment{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no appointment rows, got %d", count)
	}
}

func TestBook_RejectsInactiveService(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	service := createTestService(t, db, "Retired", 300)
	db.Model(&service).Update("is_active", false)
	svc := NewBookingService(db)

	_, _, err := svc.Book(user.ID, BookRequest{
		ServiceID: service.ID,
		Date:      tomorrow(),
		Time:      "10:00",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBook_SlotClash(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	facial := createTestService(t, db, "Facial", 500)
	haircut := createTestService(t, db, "Haircut", 300)
	svc := NewBookingService(db)

	_, _, err := svc.Book(user.ID, BookRequest{ServiceID: facial.ID, Date: tomorrow(), Time: "10:00"})
	if err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	// Clash is per user+date+time regardless of service.
	_, flash, err := svc.Book(user.ID, BookRequest{ServiceID: haircut.ID, Date: tomorrow(), Time: "10:00"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if flash.Message != "You already have an appointment at this date and time." {
		t.Fatalf("unexpected message %q", flash.Message)
	}

	var count int64
	db.Model(&models.Appointment{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one appointment, got %d", count)
	}
}

func TestActiveSlotIndexRejectsDuplicate(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	service := createTestService(t, db, "Facial", 500)

	first := models.Appointment{
		UserID: user.ID, ServiceID: service.ID,
		Date: Today().AddDate(0, 0, 1), Time: "10:00",
		Status: models.AppointmentStatusPending,
	}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("seed appointment: %v", err)
	}

	// Writing past the service layer must still hit the partial index, and
	// the driver error must translate to the gorm sentinel.
	second := models.Appointment{
		UserID: user.ID, ServiceID: service.ID,
		Date: Today().AddDate(0, 0, 1), Time: "10:00",
		Status: models.AppointmentStatusConfirmed,
	}
	err := db.Create(&second).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected gorm.ErrDuplicatedKey, got %v", err)
	}
}

func TestBook_DifferentUsersShareSlot(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db)
	bob := createTestUser(t, db)
	service := createTestService(t, db, "Facial", 500)
	svc := NewBookingService(db)

	if _, _, err := svc.Book(alice.ID, BookRequest{ServiceID: service.ID, Date: tomorrow(), Time: "10:00"}); err != nil {
		t.Fatalf("alice booking failed: %v", err)
	}
	if _, _, err := svc.Book(bob.ID, BookRequest{ServiceID: service.ID, Date: tomorrow(), Time: "10:00"}); err != nil {
		t.Fatalf("bob booking failed: %v", err)
	}
}

func TestBook_SlotFreesAfterCancel(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	service := createTestService(t, db, "Facial", 500)
	svc := NewBookingService(db)

	appointment, _, err := svc.Book(user.ID, BookRequest{ServiceID: service.ID, Date: tomorrow(), Time: "10:00"})
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	if _, err := svc.Cancel(user.ID, appointment.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	if _, _, err := svc.Book(user.ID, BookRequest{ServiceID: service.ID, Date: tomorrow(), Time: "10:00"}); err != nil {
		t.Fatalf("rebooking a cancelled slot failed: %v", err)
	}
}

func TestBook_UnknownStaffIsDropped(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	service := createTestService(t, db, "Facial", 500)
	inactive := createTestStaff(t, db, "Former employee", false)
	svc := NewBookingService(db)

	appointment, _, err := svc.Book(user.ID, BookRequest{
		ServiceID: service.ID,
		StaffID:   &inactive.ID,
		Date:      tomorrow(),
		Time:      "10:00",
	})
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	if appointment.StaffID != nil {
		t.Fatalf("expected staff preference dropped, got %v", appointment.StaffID)
	}

	// The inactive flag must survive the insert; a silently-activated row
	// would have been assigned above.
	var reloaded models.Staff
	if err := db.First(&reloaded, "id = ?", inactive.ID).Error; err != nil {
		t.Fatalf("reload staff: %v", err)
	}
	if reloaded.IsActive {
		t.Fatalf("staff created inactive was stored active")
	}
}

func TestBook_RejectsServiceCreatedInactive(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	service := models.Service{
		Name:            "Coming soon",
		Price:           700,
		DurationMinutes: 60,
		IsActive:        false,
	}
	if err := db.Create(&service).Error; err != nil {
		t.Fatalf("create service: %v", err)
	}

	var reloaded models.Service
	if err := db.First(&reloaded, "id = ?", service.ID).Error; err != nil {
		t.Fatalf("reload service: %v", err)
	}
	if reloaded.IsActive {
		t.Fatalf("service created inactive was stored active")
	}

	_, _, err := NewBookingService(db).Book(user.ID, BookRequest{
		ServiceID: service.ID,
		Date:      tomorrow(),
		Time:      "10:00",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBook_ActiveStaffAssigned(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	service := createTestService(t, db, "Facial", 500)
	staff := createTestStaff(t, db, "Priya", true)
	svc := NewBookingService(db)

	appointment, _, err := svc.Book(user.ID, BookRequest{
		ServiceID: service.ID,
		StaffID:   &staff.ID,
		Date:      tomorrow(),
		Time:      "10:00",
	})
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	if appointment.StaffID == nil || *appointment.StaffID != staff.ID {
		t.Fatalf("expected staff %s assigned, got %v", staff.ID, appointment.StaffID)
	}
}

func TestCancel_PendingAndTerminalStates(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	service := createTestService(t, db, "Facial", 500)
	svc := NewBookingService(db)

	appointment, _, err := svc.Book(user.ID, BookRequest{ServiceID: service.ID, Date: tomorrow(), Time: "10:00"})
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	flash, err := svc.Cancel(user.ID, appointment.ID)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if flash.Message != "Appointment cancelled." {
		t.Fatalf("unexpected message %q", flash.Message)
	}

	// Cancelling again is a warning no-op, not an error.
	flash, err = svc.Cancel(user.ID, appointment.ID)
	if err != nil {
		t.Fatalf("second cancel errored: %v", err)
	}
	if flash.Level != FlashWarning || flash.Message != "This appointment cannot be cancelled." {
		t.Fatalf("expected warning no-op, got %q: %q", flash.Level, flash.Message)
	}

	var reloaded models.Appointment
	db.First(&reloaded, "id = ?", appointment.ID)
	if reloaded.Status != models.AppointmentStatusCancelled {
		t.Fatalf("status changed by no-op cancel: %q", reloaded.Status)
	}
}

func TestCancel_CompletedIsNoOp(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	service := createTestService(t, db, "Facial", 500)
	svc := NewBookingService(db)

	appointment, _, err := svc.Book(user.ID, BookRequest{ServiceID: service.ID, Date: tomorrow(), Time: "10:00"})
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	db.Model(&models.Appointment{}).Where("id = ?", appointment.ID).
		Update("status", models.AppointmentStatusCompleted)

	flash, err := svc.Cancel(user.ID, appointment.ID)
	if err != nil {
		t.Fatalf("cancel errored: %v", err)
	}
	if flash.Level != FlashWarning {
		t.Fatalf("expected warning, got %q", flash.Level)
	}

	var reloaded models.Appointment
	db.First(&reloaded, "id = ?", appointment.ID)
	if reloaded.Status != models.AppointmentStatusCompleted {
		t.Fatalf("completed appointment mutated: %q", reloaded.Status)
	}
}

func TestCancel_NotOwner(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db)
	stranger := createTestUser(t, db)
	service := createTestService(t, db, "Facial", 500)
	svc := NewBookingService(db)

	appointment, _, err := svc.Book(owner.ID, BookRequest{ServiceID: service.ID, Date: tomorrow(), Time: "10:00"})
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	_, err = svc.Cancel(stranger.ID, appointment.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestPartitionAppointments(t *testing.T) {
	today := mustDate(t, "2026-08-31")
	appointments := []models.Appointment{
		{ID: uuid.New(), Status: models.AppointmentStatusPending, Date: mustDate(t, "2026-09-01")},   // upcoming
		{ID: uuid.New(), Status: models.AppointmentStatusConfirmed, Date: mustDate(t, "2026-08-31")}, // upcoming, same day
		{ID: uuid.New(), Status: models.AppointmentStatusPending, Date: mustDate(t, "2026-08-30")},   // history, stale pending
		{ID: uuid.New(), Status: models.AppointmentStatusCancelled, Date: mustDate(t, "2026-09-05")}, // history
		{ID: uuid.New(), Status: models.AppointmentStatusCompleted, Date: mustDate(t, "2026-08-20")}, // history
	}

	upcoming, history := PartitionAppointments(appointments, today)

	if len(upcoming) != 2 {
		t.Fatalf("expected 2 upcoming, got %d", len(upcoming))
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 history, got %d", len(history))
	}
	if len(upcoming)+len(history) != len(appointments) {
		t.Fatalf("partition is not exhaustive")
	}

	// No appointment may appear in both sets.
	seen := map[uuid.UUID]bool{}
	for _, a := range upcoming {
		seen[a.ID] = true
	}
	for _, a := range history {
		if seen[a.ID] {
			t.Fatalf("appointment %s in both sets", a.ID)
		}
	}
}

func TestMyAppointments_SplitsUpcomingAndHistory(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	service := createTestService(t, db, "Facial", 500)
	svc := NewBookingService(db)

	if _, _, err := svc.Book(user.ID, BookRequest{ServiceID: service.ID, Date: tomorrow(), Time: "10:00"}); err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	stale := models.Appointment{
		UserID:    user.ID,
		ServiceID: service.ID,
		Date:      Today().AddDate(0, 0, -3),
		Time:      "11:00",
		Status:    models.AppointmentStatusPending,
	}
	if err := db.Create(&stale).Error; err != nil {
		t.Fatalf("seed stale appointment: %v", err)
	}

	upcoming, history, err := svc.MyAppointments(user.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(upcoming) != 1 || len(history) != 1 {
		t.Fatalf("expected 1 upcoming and 1 history, got %d and %d", len(upcoming), len(history))
	}
	if upcoming[0].Service == nil || upcoming[0].Service.Name != "Facial" {
		t.Fatalf("expected service preloaded")
	}
}

func TestCompletePastAppointments(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	service := createTestService(t, db, "Facial", 500)
	svc := NewBookingService(db)

	past := models.Appointment{
		UserID: user.ID, ServiceID: service.ID,
		Date: Today().AddDate(0, 0, -2), Time: "10:00",
		Status: models.AppointmentStatusConfirmed,
	}
	future := models.Appointment{
		UserID: user.ID, ServiceID: service.ID,
		Date: Today().AddDate(0, 0, 2), Time: "10:00",
		Status: models.AppointmentStatusConfirmed,
	}
	stalePending := models.Appointment{
		UserID: user.ID, ServiceID: service.ID,
		Date: Today().AddDate(0, 0, -2), Time: "11:00",
		Status: models.AppointmentStatusPending,
	}
	for _, a := range []*models.Appointment{&past, &future, &stalePending} {
		if err := db.Create(a).Error; err != nil {
			t.Fatalf("seed appointment: %v", err)
		}
	}

	completed, err := svc.CompletePastAppointments()
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if completed != 1 {
		t.Fatalf("expected 1 completion, got %d", completed)
	}

	// Fresh struct per lookup: reusing one dest would feed its primary key
	// back into the next query's conditions.
	var pastReloaded models.Appointment
	if err := db.First(&pastReloaded, "id = ?", past.ID).Error; err != nil {
		t.Fatalf("reload past appointment: %v", err)
	}
	if pastReloaded.Status != models.AppointmentStatusCompleted {
		t.Fatalf("past confirmed not completed: %q", pastReloaded.Status)
	}
	var futureReloaded models.Appointment
	if err := db.First(&futureReloaded, "id = ?", future.ID).Error; err != nil {
		t.Fatalf("reload future appointment: %v", err)
	}
	if futureReloaded.Status != models.AppointmentStatusConfirmed {
		t.Fatalf("future appointment touched: %q", futureReloaded.Status)
	}
	var staleReloaded models.Appointment
	if err := db.First(&staleReloaded, "id = ?", stalePending.ID).Error; err != nil {
		t.Fatalf("reload stale pending appointment: %v", err)
	}
	if staleReloaded.Status != models.AppointmentStatusPending {
		t.Fatalf("stale pending touched: %q", staleReloaded.Status)
	}
}
