package scheduling

import (
	"healio-server/internal/models"
)

// StatusCounts buckets appointments by status for dashboard display.
type StatusCounts struct {
	ScheduledCount int `json:"scheduledCount"`
	PendingCount   int `json:"pendingCount"`
	CancelledCount int `json:"cancelledCount"`
}

// CountByStatus is a pure fold over the list. Unknown statuses fall into no
// bucket; input ordering is irrelevant.
func CountByStatus(appointments []models.Appointment) StatusCounts {
	var counts StatusCounts
	for _, apt := range appointments {
		switch apt.Status {
		case models.StatusScheduled:
			counts.ScheduledCount++
		case models.StatusPending:
			counts.PendingCount++
		case models.StatusCancelled:
			counts.CancelledCount++
		}
	}
	return counts
}

// AppointmentList is the listing shape served to the admin dashboard and the
// per-patient appointment view.
type AppointmentList struct {
	TotalCount int                  `json:"totalCount"`
	StatusCounts
	Documents []models.Appointment `json:"documents"`
}

func newAppointmentList(appointments []models.Appointment) *AppointmentList {
	return &AppointmentList{
		TotalCount:   len(appointments),
		StatusCounts: CountByStatus(appointments),
		Documents:    appointments,
	}
}
