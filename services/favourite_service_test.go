package services

import (
	"errors"
	"testing"

	"glamour-salon-backend/models"
)

func TestFavourite_AddIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	service := createTestService(t, db, "Manicure", 400)
	svc := NewFavouriteService(db)

	flash, err := svc.Add(user.ID, service.ID)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if flash.Level != FlashSuccess || flash.Message != "Saved Manicure to your list." {
		t.Fatalf("unexpected flash %q: %q", flash.Level, flash.Message)
	}

	flash, err = svc.Add(user.ID, service.ID)
	if err != nil {
		t.Fatalf("repeat add failed: %v", err)
	}
	if flash.Level != FlashInfo || flash.Message != "Manicure is already in your list." {
		t.Fatalf("unexpected flash %q: %q", flash.Level, flash.Message)
	}

	var count int64
	db.Model(&models.UserFavourite{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected one favourite row, got %d", count)
	}
}

func TestFavourite_AddInactiveService(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	service := createTestService(t, db, "Manicure", 400)
	db.Model(&models.Service{}).Where("id = ?", service.ID).Update("is_active", false)
	svc := NewFavouriteService(db)

	_, err := svc.Add(user.ID, service.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFavourite_ListAndRemove(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	manicure := createTestService(t, db, "Manicure", 400)
	pedicure := createTestService(t, db, "Pedicure", 450)
	svc := NewFavouriteService(db)

	svc.Add(user.ID, manicure.ID)
	svc.Add(user.ID, pedicure.ID)

	favourites, err := svc.List(user.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(favourites) != 2 {
		t.Fatalf("expected 2 favourites, got %d", len(favourites))
	}
	for _, f := range favourites {
		if f.Service == nil {
			t.Fatalf("service not preloaded")
		}
	}

	flash, err := svc.Remove(user.ID, manicure.ID)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if flash.Message != "Removed from saved list." {
		t.Fatalf("unexpected message %q", flash.Message)
	}

	favourites, _ = svc.List(user.ID)
	if len(favourites) != 1 || favourites[0].ServiceID != pedicure.ID {
		t.Fatalf("unexpected list after remove")
	}
}
