// controllers/payment.go
package controllers

import (
	"net/http"

	"glamour-salon-backend/config"
	"glamour-salon-backend/models"
	"glamour-salon-backend/services"
	"glamour-salon-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PayInput struct {
	Mode            string `json:"mode" binding:"required"` // "salon" or "online"
	SimulateSuccess *bool  `json:"simulateSuccess"`         // online only; defaults to success
}

type AddCardInput struct {
	LastFour string `json:"lastFour" binding:"required"`
	CardType string `json:"cardType"`
	Nickname string `json:"nickname"`
}

// PayAppointment runs a payment attempt for the user's appointment. The
// online gateway is simulated; "salon" records a pay-at-counter payment.
func PayAppointment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input PayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	mode := services.PaymentMode(input.Mode)
	if mode != services.PayModeSalon && mode != services.PayModeOnline {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown payment mode")
		return
	}
	simulateSuccess := true
	if input.SimulateSuccess != nil {
		simulateSuccess = *input.SimulateSuccess
	}

	svc := services.NewPaymentService(config.DB, services.NewNotifier())
	payment, flash, err := svc.Attempt(userID, appointmentUUID, mode, simulateSuccess)

	status := flashStatus(flash, err)
	body := gin.H{"level": flash.Level, "message": flash.Message}
	if payment != nil {
		body["payment"] = payment
	}
	c.JSON(status, body)
}

// --- Saved cards (demo) ---

func ListCards(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	svc := services.NewCardService(config.DB)
	cards, err := svc.List(userID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payment methods")
		return
	}
	c.JSON(http.StatusOK, cards)
}

func AddCard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input AddCardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	svc := services.NewCardService(config.DB)
	card, flash, err := svc.AddCard(userID, input.LastFour, models.CardType(input.CardType), input.Nickname)

	status := flashStatus(flash, err)
	body := gin.H{"level": flash.Level, "message": flash.Message}
	if card != nil {
		body["card"] = card
		status = http.StatusCreated
	}
	c.JSON(status, body)
}

func SetDefaultCard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cardUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid card ID format")
		return
	}

	svc := services.NewCardService(config.DB)
	flash, err := svc.SetDefault(userID, cardUUID)
	c.JSON(flashStatus(flash, err), gin.H{"level": flash.Level, "message": flash.Message})
}

func RemoveCard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cardUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid card ID format")
		return
	}

	svc := services.NewCardService(config.DB)
	flash, err := svc.RemoveCard(userID, cardUUID)
	c.JSON(flashStatus(flash, err), gin.H{"level": flash.Level, "message": flash.Message})
}
