package models

import (
	"time"
)

// Gender enum
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Patient represents a registered patient intake record. Each patient is
// owned by exactly one user account.
type Patient struct {
	BaseModel
	UserID                 string     `gorm:"size:36;uniqueIndex" json:"userId"`
	Name                   string     `gorm:"size:100;not null" json:"name"`
	Email                  string     `gorm:"size:255" json:"email"`
	Phone                  string     `gorm:"size:20" json:"phone"`
	BirthDate              *time.Time `json:"birthDate,omitempty"`
	Gender                 Gender     `gorm:"size:10" json:"gender"`
	Address                string     `gorm:"size:255" json:"address,omitempty"`
	Occupation             string     `gorm:"size:100" json:"occupation,omitempty"`
	EmergencyContactName   string     `gorm:"size:100" json:"emergencyContactName,omitempty"`
	EmergencyContactNumber string     `gorm:"size:20" json:"emergencyContactNumber,omitempty"`
	PrimaryPhysician       string     `gorm:"size:100" json:"primaryPhysician"`
	InsuranceProvider      string     `gorm:"size:100" json:"insuranceProvider,omitempty"`
	InsurancePolicyNumber  string     `gorm:"size:100" json:"insurancePolicyNumber,omitempty"`
	Allergies              string     `gorm:"type:text" json:"allergies,omitempty"`
	CurrentMedication      string     `gorm:"type:text" json:"currentMedication,omitempty"`
	FamilyMedicalHistory   string     `gorm:"type:text" json:"familyMedicalHistory,omitempty"`
	PastMedicalHistory     string     `gorm:"type:text" json:"pastMedicalHistory,omitempty"`
	IdentificationType     string     `gorm:"size:100" json:"identificationType,omitempty"`
	IdentificationNumber   string     `gorm:"size:100" json:"identificationNumber,omitempty"`
	TreatmentConsent       bool       `gorm:"default:false" json:"treatmentConsent"`
	DisclosureConsent      bool       `gorm:"default:false" json:"disclosureConsent"`
	PrivacyConsent         bool       `gorm:"default:false" json:"privacyConsent"`

	// Relations (not always preloaded)
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"-"`
}
