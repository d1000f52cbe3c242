package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"healio-server/internal/middleware"
	"healio-server/internal/models"
	"healio-server/internal/utils"
)

// PatientHandler handles patient intake and lookup requests.
type PatientHandler struct {
	DB *gorm.DB
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(db *gorm.DB) *PatientHandler {
	return &PatientHandler{DB: db}
}

// RegisterPatientRequest represents the patient intake form.
type RegisterPatientRequest struct {
	Name                   string     `json:"name" binding:"required"`
	Email                  string     `json:"email" binding:"omitempty,email"`
	Phone                  string     `json:"phone" binding:"required"`
	BirthDate              *time.Time `json:"birthDate"`
	Gender                 string     `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	Address                string     `json:"address"`
	Occupation             string     `json:"occupation"`
	EmergencyContactName   string     `json:"emergencyContactName"`
	EmergencyContactNumber string     `json:"emergencyContactNumber"`
	PrimaryPhysician       string     `json:"primaryPhysician"`
	InsuranceProvider      string     `json:"insuranceProvider"`
	InsurancePolicyNumber  string     `json:"insurancePolicyNumber"`
	Allergies              string     `json:"allergies"`
	CurrentMedication      string     `json:"currentMedication"`
	FamilyMedicalHistory   string     `json:"familyMedicalHistory"`
	PastMedicalHistory     string     `json:"pastMedicalHistory"`
	IdentificationType     string     `json:"identificationType"`
	IdentificationNumber   string     `json:"identificationNumber"`
	TreatmentConsent       bool       `json:"treatmentConsent"`
	DisclosureConsent      bool       `json:"disclosureConsent"`
	PrivacyConsent         bool       `json:"privacyConsent"`
}

// RegisterPatient persists the intake form for the authenticated user. A
// repeated submission updates the existing record.
func (h *PatientHandler) RegisterPatient(c *gin.Context) {
	var req RegisterPatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User ID not found in token")
		return
	}

	patient := models.Patient{
		UserID:                 userID,
		Name:                   req.Name,
		Email:                  req.Email,
		Phone:                  req.Phone,
		BirthDate:              req.BirthDate,
		Gender:                 models.Gender(req.Gender),
		Address:                req.Address,
		Occupation:             req.Occupation,
		EmergencyContactName:   req.EmergencyContactName,
		EmergencyContactNumber: req.EmergencyContactNumber,
		PrimaryPhysician:       req.PrimaryPhysician,
		InsuranceProvider:      req.InsuranceProvider,
		InsurancePolicyNumber:  req.InsurancePolicyNumber,
		Allergies:              req.Allergies,
		CurrentMedication:      req.CurrentMedication,
		FamilyMedicalHistory:   req.FamilyMedicalHistory,
		PastMedicalHistory:     req.PastMedicalHistory,
		IdentificationType:     req.IdentificationType,
		IdentificationNumber:   req.IdentificationNumber,
		TreatmentConsent:       req.TreatmentConsent,
		DisclosureConsent:      req.DisclosureConsent,
		PrivacyConsent:         req.PrivacyConsent,
	}

	var existing models.Patient
	err := h.DB.First(&existing, "user_id = ?", userID).Error
	switch {
	case err == nil:
		patient.BaseModel = existing.BaseModel
		if err := h.DB.Save(&patient).Error; err != nil {
			utils.InternalServerError(c, "Failed to update patient record: "+err.Error())
			return
		}
		utils.Success(c, "Patient record updated successfully", patient)
	case err == gorm.ErrRecordNotFound:
		if err := h.DB.Create(&patient).Error; err != nil {
			utils.InternalServerError(c, "Failed to create patient record: "+err.Error())
			return
		}
		utils.Created(c, "Patient registered successfully", patient)
	default:
		utils.InternalServerError(c, "Database error: "+err.Error())
	}
}

// GetPatient fetches the intake record owned by a user. Accessible by the
// owner or an admin.
func (h *PatientHandler) GetPatient(c *gin.Context) {
	ownerID := c.Param("userId")

	userID, _ := middleware.GetUserIDFromContext(c)
	userRole, _ := middleware.GetUserRoleFromContext(c)
	if userRole != models.RoleAdmin && userID != ownerID {
		utils.Forbidden(c, "You are not authorized to view this patient record")
		return
	}

	var patient models.Patient
	if err := h.DB.First(&patient, "user_id = ?", ownerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	utils.Success(c, "Patient fetched successfully", patient)
}
