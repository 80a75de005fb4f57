package controllers

import (
	"net/http"

	"glamour-salon-backend/config"
	"glamour-salon-backend/services"
	"glamour-salon-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AddFavouriteInput struct {
	ServiceID string `json:"serviceId" binding:"required"`
}

// ListFavourites returns the user's saved services, newest first.
func ListFavourites(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	svc := services.NewFavouriteService(config.DB)
	favourites, err := svc.List(userID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve saved list")
		return
	}
	c.JSON(http.StatusOK, favourites)
}

func AddFavourite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input AddFavouriteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	serviceUUID, err := uuid.Parse(input.ServiceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	svc := services.NewFavouriteService(config.DB)
	flash, err := svc.Add(userID, serviceUUID)
	c.JSON(flashStatus(flash, err), gin.H{"level": flash.Level, "message": flash.Message})
}

func RemoveFavourite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	serviceUUID, err := uuid.Parse(c.Param("serviceId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	svc := services.NewFavouriteService(config.DB)
	flash, err := svc.Remove(userID, serviceUUID)
	c.JSON(flashStatus(flash, err), gin.H{"level": flash.Level, "message": flash.Message})
}
