// controllers/booking.go
package controllers

import (
	"net/http"

	"glamour-salon-backend/config"
	"glamour-salon-backend/services"
	"glamour-salon-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateBookingInput struct {
	ServiceID string `json:"serviceId" binding:"required"`
	StaffID   string `json:"staffId"` // optional
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Notes     string `json:"notes"`
}

func CreateBooking(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Please select date and time.")
		return
	}

	serviceUUID, err := uuid.Parse(input.ServiceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var staffID *uuid.UUID
	if input.StaffID != "" {
		if staffUUID, err := uuid.Parse(input.StaffID); err == nil {
			staffID = &staffUUID
		}
	}

	svc := services.NewBookingService(config.DB)
	appointment, flash, err := svc.Book(userID, services.BookRequest{
		ServiceID: serviceUUID,
		StaffID:   staffID,
		Date:      input.Date,
		Time:      input.Time,
		Notes:     input.Notes,
	})

	status := flashStatus(flash, err)
	if appointment == nil {
		c.JSON(status, gin.H{"level": flash.Level, "message": flash.Message})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"level":       flash.Level,
		"message":     flash.Message,
		"appointment": appointment,
	})
}

// MyAppointments lists the user's appointments split into upcoming and
// booking history.
func MyAppointments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	svc := services.NewBookingService(config.DB)
	upcoming, history, err := svc.MyAppointments(userID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"upcoming": upcoming,
		"history":  history,
	})
}

func CancelAppointment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	svc := services.NewBookingService(config.DB)
	flash, err := svc.Cancel(userID, appointmentUUID)
	c.JSON(flashStatus(flash, err), gin.H{"level": flash.Level, "message": flash.Message})
}
