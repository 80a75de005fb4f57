package controllers

import (
	"net/http"
	"strings"

	"glamour-salon-backend/config"
	"glamour-salon-backend/models"
	"glamour-salon-backend/utils"

	"github.com/gin-gonic/gin"
)

type FeedbackInput struct {
	Rating  int    `json:"rating" binding:"required"`
	Message string `json:"message"`
}

func SubmitFeedback(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Rating < 1 || input.Rating > 5 {
		utils.RespondWithError(c, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	feedback := models.Feedback{
		UserID:  userID,
		Rating:  input.Rating,
		Message: strings.TrimSpace(input.Message),
	}
	if err := config.DB.Create(&feedback).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to submit feedback")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Thank you for your feedback!"})
}

// ListTestimonials returns the latest feedback with authors for the public
// testimonials section.
func ListTestimonials(c *gin.Context) {
	var feedbacks []models.Feedback
	err := config.DB.Preload("User").Order("created_at DESC").Limit(10).Find(&feedbacks).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve testimonials")
		return
	}

	testimonials := make([]gin.H, 0, len(feedbacks))
	for _, f := range feedbacks {
		username := ""
		if f.User != nil {
			username = f.User.Username
		}
		testimonials = append(testimonials, gin.H{
			"username":  username,
			"rating":    f.Rating,
			"message":   f.Message,
			"createdAt": f.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, testimonials)
}
