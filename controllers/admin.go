// controllers/admin.go
// Management panel, separate from customer accounts. Login checks the
// credentials configured in the environment and issues a token carrying an
// explicit admin claim; no user row is involved.
package controllers

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"glamour-salon-backend/config"
	"glamour-salon-backend/models"
	"glamour-salon-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminLoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateAppointmentStatusInput struct {
	Status string `json:"status" binding:"required"`
}

func AdminLogin(c *gin.Context) {
	var input AdminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	username := os.Getenv("ADMIN_PANEL_USERNAME")
	password := os.Getenv("ADMIN_PANEL_PASSWORD")
	if username == "" || password == "" {
		utils.RespondWithError(c, http.StatusInternalServerError, "Admin panel is not configured")
		return
	}
	if strings.TrimSpace(input.Username) != username || input.Password != password {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid username or password.")
		return
	}

	token, err := utils.GenerateAdminToken(username)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetAdminDashboard returns the panel home totals.
func GetAdminDashboard(c *gin.Context) {
	var totalUsers int64
	config.DB.Model(&models.User{}).Count(&totalUsers)

	var totalBookings int64
	config.DB.Model(&models.Appointment{}).Count(&totalBookings)

	var totalServices int64
	config.DB.Model(&models.Service{}).Where("is_active = ?", true).Count(&totalServices)

	var totalPayments int64
	config.DB.Model(&models.Payment{}).Where("status = ?", models.PaymentStatusPaid).Count(&totalPayments)

	c.JSON(http.StatusOK, gin.H{
		"totalUsers":    totalUsers,
		"totalBookings": totalBookings,
		"totalServices": totalServices,
		"totalPayments": totalPayments,
	})
}

func AdminListAppointments(c *gin.Context) {
	var appointments []models.Appointment
	err := config.DB.Preload("Service").Preload("Staff").Preload("Payment").
		Order("date DESC, time DESC").
		Find(&appointments).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// UpdateAppointmentStatus lets staff move an appointment to any status,
// including the completed state customers cannot reach themselves.
func UpdateAppointmentStatus(c *gin.Context) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateAppointmentStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	status := models.AppointmentStatus(input.Status)
	switch status {
	case models.AppointmentStatusPending, models.AppointmentStatusConfirmed,
		models.AppointmentStatusCancelled, models.AppointmentStatusCompleted:
	default:
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown status")
		return
	}

	var appointment models.Appointment
	if err := config.DB.First(&appointment, "id = ?", appointmentUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Model(&appointment).Update("status", status).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment status updated"})
}

// AdminDeleteAppointment removes an appointment and its payment record.
func AdminDeleteAppointment(c *gin.Context) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Payment{}, "appointment_id = ?", appointmentUUID).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Appointment{}, "id = ?", appointmentUUID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}

func AdminListPayments(c *gin.Context) {
	var payments []models.Payment
	err := config.DB.Order("created_at DESC").Find(&payments).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payments")
		return
	}
	c.JSON(http.StatusOK, payments)
}
