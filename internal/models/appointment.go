package models

import (
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusPending   AppointmentStatus = "pending"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a booked (or requested) appointment with a physician.
// Appointments are never deleted; cancellation is a status change.
type Appointment struct {
	BaseModel
	UserID             string            `gorm:"size:36;index" json:"userId"`
	PatientID          string            `gorm:"size:36;index" json:"patientId"`
	PrimaryPhysician   string            `gorm:"size:100" json:"primaryPhysician"`
	Schedule           time.Time         `gorm:"index" json:"schedule"`
	Status             AppointmentStatus `gorm:"size:20;default:'pending';index" json:"status"`
	Reason             string            `gorm:"size:255" json:"reason"`
	Note               string            `gorm:"type:text" json:"note"`
	// Meaningful only while Status is cancelled; never cleared automatically
	// if the appointment is later re-scheduled.
	CancellationReason string `gorm:"size:255" json:"cancellationReason,omitempty"`

	// Relations
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}
