package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healio-server/internal/config"
	"healio-server/internal/models"
	"healio-server/internal/notify"
	"healio-server/internal/scheduling"
)

// stubRepository serves a fixed set of tomorrow's appointments.
type stubRepository struct {
	appointments []models.Appointment
	listCalls    int
}

func (s *stubRepository) CreateAppointment(apt *models.Appointment) error { return nil }
func (s *stubRepository) GetAppointmentByID(id string) (*models.Appointment, error) {
	return nil, nil
}
func (s *stubRepository) SaveAppointment(apt *models.Appointment) error { return nil }
func (s *stubRepository) ListRecentAppointments() ([]models.Appointment, error) {
	return nil, nil
}
func (s *stubRepository) ListAppointmentsForUser(userID string) ([]models.Appointment, error) {
	return nil, nil
}
func (s *stubRepository) ListScheduledBetween(from, to time.Time) ([]models.Appointment, error) {
	s.listCalls++
	return s.appointments, nil
}
func (s *stubRepository) GetPatientByUserID(userID string) (*models.Patient, error) {
	return &models.Patient{UserID: userID, Name: "Jane Doe"}, nil
}
func (s *stubRepository) GetUserByID(id string) (*models.User, error) {
	return &models.User{BaseModel: models.BaseModel{ID: id}, Email: "jane@example.com"}, nil
}

// okMailer accepts every send.
type okMailer struct{}

func (okMailer) Send(to, subject, html, text string) bool { return true }

func reminderTestRouter(cfg *config.Config, repo scheduling.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	service := scheduling.NewService(repo, okMailer{}, notify.LogSMSSender{}, cfg.AppURL, "UTC")
	handler := NewReminderHandler(service, cfg)

	router := gin.New()
	router.GET("/api/v1/cron/reminders", handler.SendReminders)
	return router
}

func TestSendRemindersRejectsBadToken(t *testing.T) {
	repo := &stubRepository{}
	router := reminderTestRouter(&config.Config{CronSecret: "topsecret"}, repo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cron/reminders", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, repo.listCalls, "no processing on auth failure")
}

func TestSendRemindersRejectsMissingHeader(t *testing.T) {
	repo := &stubRepository{}
	router := reminderTestRouter(&config.Config{CronSecret: "topsecret"}, repo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cron/reminders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSendRemindersRejectsWhenSecretUnset(t *testing.T) {
	repo := &stubRepository{}
	router := reminderTestRouter(&config.Config{CronSecret: ""}, repo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cron/reminders", nil)
	req.Header.Set("Authorization", "Bearer ")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSendRemindersReportsCounts(t *testing.T) {
	repo := &stubRepository{
		appointments: []models.Appointment{
			{
				BaseModel:        models.BaseModel{ID: "apt-1"},
				UserID:           "user-1",
				PrimaryPhysician: "John Green",
				Schedule:         time.Now().UTC().AddDate(0, 0, 1),
				Status:           models.StatusScheduled,
			},
		},
	}
	router := reminderTestRouter(&config.Config{CronSecret: "topsecret"}, repo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cron/reminders", nil)
	req.Header.Set("Authorization", "Bearer topsecret")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success           bool   `json:"success"`
		TotalAppointments int    `json:"totalAppointments"`
		SuccessCount      int    `json:"successCount"`
		FailureCount      int    `json:"failureCount"`
		Timestamp         string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, 1, body.TotalAppointments)
	assert.Equal(t, 1, body.SuccessCount)
	assert.Equal(t, 0, body.FailureCount)
	assert.NotEmpty(t, body.Timestamp)
}
