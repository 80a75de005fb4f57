package services

import (
	"errors"
	"fmt"

	"glamour-salon-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartService manages the per-user cart used to stage services before booking.
type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// GetCart returns the user's cart, creating it on first use, with items and
// services loaded.
func (s *CartService) GetCart(userID uuid.UUID) (*models.Cart, error) {
	cart, err := s.getOrCreateCart(userID)
	if err != nil {
		return nil, err
	}
	err = s.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("cart_items.created_at")
	}).Preload("Items.Service").First(cart, "id = ?", cart.ID).Error
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// AddToCart stages a service in the cart, incrementing quantity when it is
// already there. The increment is a single upsert on the (cart, service) pair.
func (s *CartService) AddToCart(userID, serviceID uuid.UUID) (Flash, error) {
	var service models.Service
	if err := s.db.Where("id = ? AND is_active = ?", serviceID, true).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorFlash("Service not found."), ErrNotFound
		}
		return errorFlash("Could not add to cart."), err
	}

	cart, err := s.getOrCreateCart(userID)
	if err != nil {
		return errorFlash("Could not add to cart."), err
	}

	item := models.CartItem{
		CartID:    cart.ID,
		ServiceID: service.ID,
		Quantity:  1,
	}
	err = s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "service_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_items.quantity + 1"),
		}),
	}).Create(&item).Error
	if err != nil {
		return errorFlash("Could not add to cart."), err
	}

	return successFlash(fmt.Sprintf("Added %s to cart.", service.Name)), nil
}

// RemoveFromCart drops a service from the cart entirely.
func (s *CartService) RemoveFromCart(userID, serviceID uuid.UUID) (Flash, error) {
	var cart models.Cart
	if err := s.db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorFlash("Cart not found."), ErrNotFound
		}
		return errorFlash("Could not remove from cart."), err
	}

	result := s.db.Where("cart_id = ? AND service_id = ?", cart.ID, serviceID).Delete(&models.CartItem{})
	if result.Error != nil {
		return errorFlash("Could not remove from cart."), result.Error
	}
	if result.RowsAffected == 0 {
		return errorFlash("Item not found in cart."), ErrNotFound
	}
	return successFlash("Removed from cart."), nil
}

func (s *CartService) getOrCreateCart(userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.Where(models.Cart{UserID: userID}).FirstOrCreate(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}
