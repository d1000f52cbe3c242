package scheduling

import (
	"log"
	"time"

	"healio-server/internal/models"
	"healio-server/internal/notify"
)

// SweepResult summarizes one reminder run. SuccessCount and FailureCount
// always sum to TotalAppointments.
type SweepResult struct {
	TotalAppointments int       `json:"totalAppointments"`
	SuccessCount      int       `json:"successCount"`
	FailureCount      int       `json:"failureCount"`
	Timestamp         time.Time `json:"timestamp"`
}

// TomorrowWindow returns the inclusive UTC calendar-day bounds for the day
// after now: 00:00:00.000 through 23:59:59.999.
func TomorrowWindow(now time.Time) (time.Time, time.Time) {
	day := now.UTC().AddDate(0, 0, 1)
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}

// RunReminderSweep emails every patient with a scheduled appointment
// tomorrow. Each appointment is processed in isolation: one failure is
// tallied and the sweep continues. Sends are awaited sequentially because
// the result reports their outcomes.
func (s *Service) RunReminderSweep(now time.Time) (SweepResult, error) {
	start, end := TomorrowWindow(now)

	appointments, err := s.repo.ListScheduledBetween(start, end)
	if err != nil {
		return SweepResult{}, err
	}
	log.Printf("Found %d appointments for tomorrow", len(appointments))

	result := SweepResult{
		TotalAppointments: len(appointments),
		Timestamp:         time.Now().UTC(),
	}

	for i := range appointments {
		if s.sendReminder(&appointments[i]) {
			result.SuccessCount++
		} else {
			result.FailureCount++
		}
	}

	log.Printf("Reminder sweep completed. Success: %d, Failed: %d",
		result.SuccessCount, result.FailureCount)
	return result, nil
}

// sendReminder handles a single appointment. A missing patient record or an
// account without an email is a soft skip counted as a failure.
func (s *Service) sendReminder(apt *models.Appointment) bool {
	data, to, ok := s.resolveEmail(apt)
	if !ok {
		log.Printf("Missing patient or email for appointment %s", apt.ID)
		return false
	}

	msg, err := notify.ReminderEmail(data)
	if err != nil {
		log.Printf("Error preparing reminder email for appointment %s: %v", apt.ID, err)
		return false
	}

	if !s.mailer.Send(to, msg.Subject, msg.HTML, msg.Text) {
		log.Printf("Failed to send reminder for appointment %s", apt.ID)
		return false
	}

	log.Printf("Reminder sent successfully for appointment %s", apt.ID)
	return true
}
