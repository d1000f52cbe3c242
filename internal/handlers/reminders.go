package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"healio-server/internal/config"
	"healio-server/internal/scheduling"
)

// ReminderHandler exposes the reminder sweep to an external cron trigger.
type ReminderHandler struct {
	Service *scheduling.Service
	Cfg     *config.Config
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(service *scheduling.Service, cfg *config.Config) *ReminderHandler {
	return &ReminderHandler{Service: service, Cfg: cfg}
}

// SendReminders runs the next-day reminder sweep. The endpoint is guarded by
// a bearer token; a mismatch is rejected before any processing. The response
// shape mirrors what the invoking scheduler expects: a flat JSON summary.
func (h *ReminderHandler) SendReminders(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if h.Cfg.CronSecret == "" || authHeader != "Bearer "+h.Cfg.CronSecret {
		log.Println("Unauthorized cron request")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	log.Println("Starting appointment reminder cron job...")

	result, err := h.Service.RunReminderSweep(time.Now())
	if err != nil {
		log.Printf("Reminder cron job failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to send appointment reminders",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"totalAppointments": result.TotalAppointments,
		"successCount":      result.SuccessCount,
		"failureCount":      result.FailureCount,
		"timestamp":         result.Timestamp.Format(time.RFC3339),
	})
}
