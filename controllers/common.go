package controllers

import (
	"errors"
	"net/http"

	"glamour-salon-backend/services"
	"glamour-salon-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentUserID extracts the authenticated user's id set by the auth
// middleware. Responds 401 itself when missing.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return uuid.Nil, false
	}
	raw, ok := v.(string)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid user ID format")
		return uuid.Nil, false
	}
	return userID, true
}

// flashStatus maps a service outcome to an HTTP status code.
func flashStatus(flash services.Flash, err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	case err != nil:
		return http.StatusInternalServerError
	case flash.Level == services.FlashError:
		return http.StatusBadRequest
	default:
		return http.StatusOK
	}
}
