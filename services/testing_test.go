package services

import (
	"fmt"
	"testing"

	"glamour-salon-backend/config"
	"glamour-salon-backend/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	config.Log = zap.NewNop()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Staff{},
		&models.Cart{},
		&models.CartItem{},
		&models.UserFavourite{},
		&models.Appointment{},
		&models.Payment{},
		&models.SavedPaymentMethod{},
		&models.Feedback{},
		&models.Contact{},
	)
	if err != nil {
		t.Fatalf("migrate schema: %v", err)
	}

	// Same partial index production creates after AutoMigrate.
	err = db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_active_slot
		ON appointments (user_id, date, time)
		WHERE status IN ('pending', 'confirmed')`).Error
	if err != nil {
		t.Fatalf("create slot index: %v", err)
	}

	return db
}

var testUserSeq int

// createTestUser inserts a user without running hooks, so tests skip the
// bcrypt cost.
func createTestUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	testUserSeq++
	user := models.User{
		ID:       uuid.New(),
		Username: fmt.Sprintf("customer%d", testUserSeq),
		Password: "not-a-real-hash",
		Phone:    "+919876543210",
		IsActive: true,
	}
	if err := db.Session(&gorm.Session{SkipHooks: true}).Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTestService(t *testing.T, db *gorm.DB, name string, price float64) models.Service {
	t.Helper()
	service := models.Service{
		Name:            name,
		Price:           price,
		DurationMinutes: 60,
		IsActive:        true,
	}
	if err := db.Create(&service).Error; err != nil {
		t.Fatalf("create service: %v", err)
	}
	return service
}

func createTestStaff(t *testing.T, db *gorm.DB, name string, active bool) models.Staff {
	t.Helper()
	staff := models.Staff{
		Name:     name,
		IsActive: active,
	}
	if err := db.Create(&staff).Error; err != nil {
		t.Fatalf("create staff: %v", err)
	}
	return staff
}

func tomorrow() string {
	return Today().AddDate(0, 0, 1).Format(dateLayout)
}

func yesterday() string {
	return Today().AddDate(0, 0, -1).Format(dateLayout)
}
