package services

import (
	"errors"
	"fmt"

	"glamour-salon-backend/models"
	"glamour-salon-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CardService manages demo saved cards on the user profile. At most one card
// per user is flagged default.
type CardService struct {
	db *gorm.DB
}

func NewCardService(db *gorm.DB) *CardService {
	return &CardService{db: db}
}

func (s *CardService) List(userID uuid.UUID) ([]models.SavedPaymentMethod, error) {
	var cards []models.SavedPaymentMethod
	err := s.db.Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&cards).Error
	return cards, err
}

// AddCard stores demo card metadata. The user's first card becomes the default.
func (s *CardService) AddCard(userID uuid.UUID, lastFour string, cardType models.CardType, nickname string) (*models.SavedPaymentMethod, Flash, error) {
	if !utils.ValidateLastFour(lastFour) {
		return nil, errorFlash("Enter valid last 4 digits."), nil
	}
	switch cardType {
	case models.CardTypeVisa, models.CardTypeMastercard, models.CardTypeRupay:
	case "":
		cardType = models.CardTypeVisa
	default:
		return nil, errorFlash("Unknown card type."), nil
	}
	if nickname == "" {
		nickname = fmt.Sprintf("Card ****%s", lastFour)
	}

	card := models.SavedPaymentMethod{
		UserID:   userID,
		LastFour: lastFour,
		CardType: cardType,
		Nickname: nickname,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.SavedPaymentMethod{}).
			Where("user_id = ?", userID).Count(&existing).Error; err != nil {
			return err
		}
		card.IsDefault = existing == 0
		return tx.Create(&card).Error
	})
	if err != nil {
		return nil, errorFlash("Could not add payment method."), err
	}
	return &card, successFlash("Payment method added (demo)."), nil
}

// SetDefault flags one card as default, clearing the flag on every other card
// owned by the user in the same transaction.
func (s *CardService) SetDefault(userID, cardID uuid.UUID) (Flash, error) {
	var card models.SavedPaymentMethod
	err := s.db.Where("id = ? AND user_id = ?", cardID, userID).First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorFlash("Payment method not found."), ErrNotFound
		}
		return errorFlash("Could not update default card."), err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.SavedPaymentMethod{}).
			Where("user_id = ?", userID).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.SavedPaymentMethod{}).
			Where("id = ?", card.ID).
			Update("is_default", true).Error
	})
	if err != nil {
		return errorFlash("Could not update default card."), err
	}
	return successFlash("Default card updated."), nil
}

func (s *CardService) RemoveCard(userID, cardID uuid.UUID) (Flash, error) {
	result := s.db.Where("id = ? AND user_id = ?", cardID, userID).Delete(&models.SavedPaymentMethod{})
	if result.Error != nil {
		return errorFlash("Could not remove payment method."), result.Error
	}
	if result.RowsAffected == 0 {
		return errorFlash("Payment method not found."), ErrNotFound
	}
	return successFlash("Payment method removed."), nil
}
