package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"healio-server/internal/doctors"
	"healio-server/internal/middleware"
	"healio-server/internal/models"
	"healio-server/internal/scheduling"
	"healio-server/internal/utils"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	Service *scheduling.Service
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(service *scheduling.Service) *AppointmentHandler {
	return &AppointmentHandler{Service: service}
}

// CreateAppointmentRequest represents the request body for booking an appointment.
type CreateAppointmentRequest struct {
	PatientID        string    `json:"patientId" binding:"required,uuid"`
	PrimaryPhysician string    `json:"primaryPhysician" binding:"required"`
	Schedule         time.Time `json:"schedule" binding:"required"`
	Reason           string    `json:"reason"`
	Note             string    `json:"note"`
}

// CreateAppointment handles booking a new appointment. Initiated by a
// patient; the request enters the system as pending until the clinic
// schedules it.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User ID not found in token")
		return
	}

	if _, ok := doctors.FindByName(req.PrimaryPhysician); !ok {
		utils.BadRequest(c, "Unknown physician: "+req.PrimaryPhysician)
		return
	}

	if req.Schedule.Before(time.Now()) {
		utils.BadRequest(c, "Appointment date must be in the future.")
		return
	}

	appointment, err := h.Service.Create(scheduling.CreateParams{
		UserID:           userID,
		PatientID:        req.PatientID,
		PrimaryPhysician: req.PrimaryPhysician,
		Schedule:         req.Schedule,
		Reason:           req.Reason,
		Note:             req.Note,
		Status:           models.StatusPending,
	})
	if err != nil {
		utils.InternalServerError(c, "Failed to create appointment: "+err.Error())
		return
	}

	utils.Created(c, "Appointment created successfully", appointment)
}

// GetAppointmentsForUser handles fetching appointments for the logged-in
// user. Admins receive the full recent listing; patients receive their own.
// Both shapes carry status counts for the dashboard.
func (h *AppointmentHandler) GetAppointmentsForUser(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	userRole, _ := middleware.GetUserRoleFromContext(c)

	var list *scheduling.AppointmentList
	var err error
	if userRole == models.RoleAdmin {
		list, err = h.Service.RecentAppointments()
	} else {
		list, err = h.Service.PatientAppointments(userID)
	}
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	utils.Success(c, "Appointments fetched successfully", list)
}

// GetAppointmentByID handles fetching a single appointment by its ID.
// Accessible by the owning patient or an admin.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	appointment, err := h.Service.Get(c.Param("id"))
	if err != nil {
		utils.NotFound(c, "Appointment not found")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	userRole, _ := middleware.GetUserRoleFromContext(c)

	if userRole != models.RoleAdmin && userID != appointment.UserID {
		utils.Forbidden(c, "You are not authorized to view this appointment")
		return
	}

	utils.Success(c, "Appointment fetched successfully", appointment)
}

// UpdateAppointmentRequest represents the request body for scheduling or
// cancelling an appointment.
type UpdateAppointmentRequest struct {
	Type               string    `json:"type" binding:"required,oneof=schedule cancel"`
	PrimaryPhysician   string    `json:"primaryPhysician" binding:"required"`
	Schedule           time.Time `json:"schedule" binding:"required"`
	Reason             string    `json:"reason"`
	Note               string    `json:"note"`
	CancellationReason string    `json:"cancellationReason" binding:"required_if=Type cancel"`
}

// UpdateAppointment handles schedule and cancel operations. Scheduling is an
// admin action; patients may cancel their own appointments.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	appointmentID := c.Param("id")

	var req UpdateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appointment, err := h.Service.Get(appointmentID)
	if err != nil {
		utils.NotFound(c, "Appointment not found")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	userRole, _ := middleware.GetUserRoleFromContext(c)

	canUpdate := false
	if userRole == models.RoleAdmin {
		canUpdate = true
	} else if userID == appointment.UserID && req.Type == "cancel" {
		// Patients can only cancel, and only while the appointment is open
		canUpdate = appointment.Status != models.StatusCancelled
	}
	if !canUpdate {
		utils.Forbidden(c, "You are not authorized to perform this operation on the appointment.")
		return
	}

	updated, err := h.Service.Update(scheduling.UpdateParams{
		AppointmentID:      appointmentID,
		UserID:             appointment.UserID,
		Type:               scheduling.OperationType(req.Type),
		Schedule:           req.Schedule,
		PrimaryPhysician:   req.PrimaryPhysician,
		Reason:             req.Reason,
		Note:               req.Note,
		CancellationReason: req.CancellationReason,
	})
	if err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Failed to update appointment: "+err.Error())
		}
		return
	}

	utils.Success(c, "Appointment updated successfully", updated)
}
