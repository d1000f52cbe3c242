package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEmailData() EmailData {
	return EmailData{
		PatientName:     "Jane Doe",
		DoctorName:      "John Green",
		AppointmentDate: "Jan 15, 2024",
		AppointmentTime: "10:00 AM",
		Reason:          "Checkup",
		AppointmentID:   "apt-123",
		DetailsURL:      "http://localhost:3000/patients/user-1/appointments",
	}
}

func TestConfirmationEmail(t *testing.T) {
	msg, err := ConfirmationEmail(sampleEmailData())
	require.NoError(t, err)

	assert.Equal(t, "Appointment Confirmed - Jan 15, 2024 with Dr. John Green", msg.Subject)
	assert.Contains(t, msg.HTML, "Jane Doe")
	assert.Contains(t, msg.HTML, "Dr. John Green")
	assert.Contains(t, msg.HTML, "apt-123")
	assert.Contains(t, msg.HTML, "Appointment Confirmed!")
	assert.Contains(t, msg.HTML, "patients/user-1/appointments")
	assert.Contains(t, msg.Text, "confirmed for Jan 15, 2024 at 10:00 AM")
}

func TestReminderEmail(t *testing.T) {
	msg, err := ReminderEmail(sampleEmailData())
	require.NoError(t, err)

	assert.Contains(t, msg.Subject, "Appointment Reminder")
	assert.Contains(t, msg.HTML, "Appointment Reminder")
	assert.Contains(t, msg.HTML, "upcoming appointment tomorrow")
	assert.Contains(t, msg.HTML, "Checkup")
	assert.Contains(t, msg.Text, "reminder for your appointment")
}

func TestUpdateEmailScheduled(t *testing.T) {
	data := sampleEmailData()
	data.UpdateType = UpdateScheduled

	msg, err := UpdateEmail(data)
	require.NoError(t, err)

	assert.Equal(t, "Appointment Scheduled - Jan 15, 2024 with Dr. John Green", msg.Subject)
	assert.Contains(t, msg.HTML, "Appointment Scheduled!")
	assert.Contains(t, msg.HTML, "Appointment Details")
	assert.NotContains(t, msg.HTML, "Previous Date")
}

func TestUpdateEmailRescheduledIncludesPreviousDetails(t *testing.T) {
	data := sampleEmailData()
	data.UpdateType = UpdateRescheduled
	data.PreviousDate = "Jan 10, 2024"
	data.PreviousTime = "9:00 AM"

	msg, err := UpdateEmail(data)
	require.NoError(t, err)

	assert.Equal(t, "Appointment Rescheduled - Jan 15, 2024 with Dr. John Green", msg.Subject)
	assert.Contains(t, msg.HTML, "Appointment Rescheduled")
	assert.Contains(t, msg.HTML, "Previous Date:</strong> Jan 10, 2024")
	assert.Contains(t, msg.HTML, "Previous Time:</strong> 9:00 AM")
	assert.Contains(t, msg.Text, "rescheduled to Jan 15, 2024 at 10:00 AM")
}

func TestUpdateEmailCancelledUsesCancelledBlock(t *testing.T) {
	data := sampleEmailData()
	data.UpdateType = UpdateCancelled
	data.CancellationReason = "Patient unavailable"

	msg, err := UpdateEmail(data)
	require.NoError(t, err)

	assert.Equal(t, "Appointment Cancelled - Dr. John Green", msg.Subject)
	assert.Contains(t, msg.HTML, "Cancelled Appointment Details")
	assert.Contains(t, msg.HTML, "Patient unavailable")
	// The cancelled variant drops the standard details block and arrival
	// checklist in favor of the cancelled-specific block.
	assert.NotContains(t, msg.HTML, "15 minutes early")
	assert.NotContains(t, msg.HTML, ">Appointment Details</h3>")
	assert.Contains(t, msg.Text, "has been cancelled")
}

func TestUpdateEmailCancelledWithoutReasonOmitsReasonRow(t *testing.T) {
	data := sampleEmailData()
	data.UpdateType = UpdateCancelled

	msg, err := UpdateEmail(data)
	require.NoError(t, err)

	assert.NotContains(t, msg.HTML, "Cancellation Reason")
}
