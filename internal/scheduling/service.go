package scheduling

import (
	"errors"
	"fmt"
	"log"
	"time"

	"healio-server/internal/models"
	"healio-server/internal/notify"
)

var (
	// ErrNotFound indicates the requested appointment does not exist.
	ErrNotFound = errors.New("appointment not found")
	// ErrPersistence indicates the store rejected a create or update.
	ErrPersistence = errors.New("failed to persist appointment")
)

// OperationType is the update operation requested by the caller. The derived
// notification classification may differ (see Classify).
type OperationType string

const (
	OpSchedule OperationType = "schedule"
	OpCancel   OperationType = "cancel"
)

// Classify derives the notification label for an update from the requested
// operation and a diff of the original and new schedule timestamps. Equality
// is exact; any difference in the instant counts as a reschedule.
func Classify(op OperationType, original, updated time.Time) notify.UpdateType {
	if op == OpCancel {
		return notify.UpdateCancelled
	}
	if original.Equal(updated) {
		return notify.UpdateScheduled
	}
	return notify.UpdateRescheduled
}

// EmailSender is the dispatcher boundary the service sends email through.
type EmailSender interface {
	Send(to, subject, html, text string) bool
}

// Service manages the appointment lifecycle: persistence plus conditional
// SMS/email dispatch. Notification failures never fail the operation that
// triggered them.
type Service struct {
	repo     Repository
	mailer   EmailSender
	sms      notify.SMSSender
	appURL   string
	timezone string
}

// NewService creates a new scheduling Service.
func NewService(repo Repository, mailer EmailSender, sms notify.SMSSender, appURL, timezone string) *Service {
	return &Service{
		repo:     repo,
		mailer:   mailer,
		sms:      sms,
		appURL:   appURL,
		timezone: timezone,
	}
}

// CreateParams is a proposed appointment record.
type CreateParams struct {
	UserID           string
	PatientID        string
	PrimaryPhysician string
	Schedule         time.Time
	Reason           string
	Note             string
	Status           models.AppointmentStatus
}

// Create persists a new appointment and dispatches the booking
// notifications: a best-effort SMS, and a confirmation email on a detached
// goroutine when the owning user has an email on file.
func (s *Service) Create(params CreateParams) (*models.Appointment, error) {
	status := params.Status
	if status == "" {
		status = models.StatusPending
	}

	apt := &models.Appointment{
		UserID:           params.UserID,
		PatientID:        params.PatientID,
		PrimaryPhysician: params.PrimaryPhysician,
		Schedule:         params.Schedule,
		Status:           status,
		Reason:           params.Reason,
		Note:             params.Note,
	}

	if err := s.repo.CreateAppointment(apt); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	parts := notify.FormatDateTime(apt.Schedule, s.timezone)
	smsBody := fmt.Sprintf(
		"Hi, it's Healio. Your appointment has been scheduled for %s with Dr. %s. Please check your email for more details.",
		parts.DateTime, apt.PrimaryPhysician)
	if err := s.sms.SendSMS(apt.UserID, smsBody); err != nil {
		log.Printf("Failed to send SMS for appointment %s: %v", apt.ID, err)
	}

	if data, to, ok := s.resolveEmail(apt); ok {
		msg, err := notify.ConfirmationEmail(data)
		if err != nil {
			log.Printf("Error preparing appointment confirmation email: %v", err)
		} else {
			s.dispatchEmail(to, msg)
		}
	}

	return apt, nil
}

// UpdateParams carries an update request: the mutated appointment fields
// plus the requested operation type.
type UpdateParams struct {
	AppointmentID      string
	UserID             string
	Type               OperationType
	Schedule           time.Time
	PrimaryPhysician   string
	Reason             string
	Note               string
	CancellationReason string
}

// Update mutates an appointment, classifies the transition against the
// original record, and dispatches the matching notifications. Persistence
// failure is returned as an error; notification failure is not.
func (s *Service) Update(params UpdateParams) (*models.Appointment, error) {
	// The original record is read first so a reschedule can capture the
	// previous date/time before it is overwritten.
	original, err := s.repo.GetAppointmentByID(params.AppointmentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	apt := *original
	apt.PrimaryPhysician = params.PrimaryPhysician
	apt.Reason = params.Reason
	apt.Note = params.Note

	switch params.Type {
	case OpCancel:
		apt.Status = models.StatusCancelled
		apt.CancellationReason = params.CancellationReason
	default:
		apt.Schedule = params.Schedule
		apt.Status = models.StatusScheduled
	}

	if err := s.repo.SaveAppointment(&apt); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	updateType := Classify(params.Type, original.Schedule, apt.Schedule)

	parts := notify.FormatDateTime(apt.Schedule, s.timezone)
	var smsBody string
	switch updateType {
	case notify.UpdateRescheduled:
		smsBody = fmt.Sprintf(
			"Hi, it's Healio. Your appointment has been rescheduled to %s with Dr. %s. Please check your email for more details.",
			parts.DateTime, apt.PrimaryPhysician)
	case notify.UpdateCancelled:
		smsBody = fmt.Sprintf(
			"Hi, it's Healio. We regret to inform you that your appointment has been cancelled for the following reason: %s. Please check your email for more details.",
			apt.CancellationReason)
	default:
		smsBody = fmt.Sprintf(
			"Hi, it's Healio. Your appointment has been scheduled for %s with Dr. %s. Please check your email for more details.",
			parts.DateTime, apt.PrimaryPhysician)
	}
	if err := s.sms.SendSMS(params.UserID, smsBody); err != nil {
		log.Printf("Failed to send SMS for appointment %s: %v", apt.ID, err)
	}

	if data, to, ok := s.resolveEmail(&apt); ok {
		data.UpdateType = updateType
		if updateType == notify.UpdateRescheduled {
			prev := notify.FormatDateTime(original.Schedule, s.timezone)
			data.PreviousDate = prev.DateOnly
			data.PreviousTime = prev.TimeOnly
		}
		if updateType == notify.UpdateCancelled {
			data.CancellationReason = apt.CancellationReason
		}
		msg, err := notify.UpdateEmail(data)
		if err != nil {
			log.Printf("Error preparing appointment update email: %v", err)
		} else {
			s.dispatchEmail(to, msg)
		}
	}

	return &apt, nil
}

// Get fetches a single appointment.
func (s *Service) Get(id string) (*models.Appointment, error) {
	apt, err := s.repo.GetAppointmentByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return apt, nil
}

// RecentAppointments returns the admin listing: all appointments newest
// first with status counts.
func (s *Service) RecentAppointments() (*AppointmentList, error) {
	appointments, err := s.repo.ListRecentAppointments()
	if err != nil {
		return nil, err
	}
	return newAppointmentList(appointments), nil
}

// PatientAppointments returns one user's appointments newest first with
// status counts.
func (s *Service) PatientAppointments(userID string) (*AppointmentList, error) {
	appointments, err := s.repo.ListAppointmentsForUser(userID)
	if err != nil {
		return nil, err
	}
	return newAppointmentList(appointments), nil
}

// resolveEmail looks up the owning patient and user and assembles the email
// payload. A missing patient record or empty email degrades to no email.
func (s *Service) resolveEmail(apt *models.Appointment) (notify.EmailData, string, bool) {
	patient, err := s.repo.GetPatientByUserID(apt.UserID)
	if err != nil || patient == nil {
		return notify.EmailData{}, "", false
	}
	user, err := s.repo.GetUserByID(apt.UserID)
	if err != nil || user == nil || user.Email == "" {
		return notify.EmailData{}, "", false
	}
	return s.emailData(apt, patient.Name), user.Email, true
}

func (s *Service) emailData(apt *models.Appointment, patientName string) notify.EmailData {
	parts := notify.FormatDateTime(apt.Schedule, s.timezone)
	reason := apt.Reason
	if reason == "" {
		reason = "General consultation"
	}
	return notify.EmailData{
		PatientName:     patientName,
		DoctorName:      apt.PrimaryPhysician,
		AppointmentDate: parts.DateOnly,
		AppointmentTime: parts.TimeOnly,
		Reason:          reason,
		AppointmentID:   apt.ID,
		DetailsURL:      fmt.Sprintf("%s/patients/%s/appointments", s.appURL, apt.UserID),
	}
}

// dispatchEmail sends on a detached goroutine so transport latency never
// blocks the calling operation. The caller holds no reference to its
// completion; a false result is only logged by the dispatcher.
func (s *Service) dispatchEmail(to string, msg notify.EmailMessage) {
	go func() {
		if !s.mailer.Send(to, msg.Subject, msg.HTML, msg.Text) {
			log.Printf("Failed to send appointment email to %s", to)
		}
	}()
}
