package services

import (
	"errors"
	"fmt"

	"glamour-salon-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FavouriteService manages the saved-services list for quick booking later.
type FavouriteService struct {
	db *gorm.DB
}

func NewFavouriteService(db *gorm.DB) *FavouriteService {
	return &FavouriteService{db: db}
}

func (s *FavouriteService) List(userID uuid.UUID) ([]models.UserFavourite, error) {
	var favourites []models.UserFavourite
	err := s.db.Preload("Service").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favourites).Error
	return favourites, err
}

// Add saves a service to the user's list. Saving one that is already there is
// an idempotent no-op.
func (s *FavouriteService) Add(userID, serviceID uuid.UUID) (Flash, error) {
	var service models.Service
	if err := s.db.Where("id = ? AND is_active = ?", serviceID, true).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorFlash("Service not found."), ErrNotFound
		}
		return errorFlash("Could not save to your list."), err
	}

	favourite := models.UserFavourite{UserID: userID, ServiceID: service.ID}
	result := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "service_id"}},
		DoNothing: true,
	}).Create(&favourite)
	if result.Error != nil {
		return errorFlash("Could not save to your list."), result.Error
	}
	if result.RowsAffected == 0 {
		return infoFlash(fmt.Sprintf("%s is already in your list.", service.Name)), nil
	}
	return successFlash(fmt.Sprintf("Saved %s to your list.", service.Name)), nil
}

func (s *FavouriteService) Remove(userID, serviceID uuid.UUID) (Flash, error) {
	result := s.db.Where("user_id = ? AND service_id = ?", userID, serviceID).Delete(&models.UserFavourite{})
	if result.Error != nil {
		return errorFlash("Could not remove from saved list."), result.Error
	}
	return successFlash("Removed from saved list."), nil
}
