package controllers

import (
	"net/http"

	"glamour-salon-backend/config"
	"glamour-salon-backend/services"
	"glamour-salon-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AddToCartInput struct {
	ServiceID string `json:"serviceId" binding:"required"`
}

func GetCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	svc := services.NewCartService(config.DB)
	cart, err := svc.GetCart(userID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": cart.Items,
		"total": cart.TotalPrice(),
	})
}

func AddToCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	serviceUUID, err := uuid.Parse(input.ServiceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	svc := services.NewCartService(config.DB)
	flash, err := svc.AddToCart(userID, serviceUUID)
	c.JSON(flashStatus(flash, err), gin.H{"level": flash.Level, "message": flash.Message})
}

func RemoveFromCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	serviceUUID, err := uuid.Parse(c.Param("serviceId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	svc := services.NewCartService(config.DB)
	flash, err := svc.RemoveFromCart(userID, serviceUUID)
	c.JSON(flashStatus(flash, err), gin.H{"level": flash.Level, "message": flash.Message})
}
