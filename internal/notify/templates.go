package notify

import (
	"bytes"
	"fmt"
	"html/template"
)

// UpdateType labels the lifecycle change a notification describes.
type UpdateType string

const (
	UpdateScheduled   UpdateType = "scheduled"
	UpdateRescheduled UpdateType = "rescheduled"
	UpdateCancelled   UpdateType = "cancelled"
)

// EmailData carries the appointment facts the email templates render. It is
// ephemeral and never persisted.
type EmailData struct {
	PatientName     string
	DoctorName      string
	AppointmentDate string
	AppointmentTime string
	Reason          string
	AppointmentID   string
	DetailsURL      string

	// Update-only fields
	UpdateType         UpdateType
	PreviousDate       string
	PreviousTime       string
	CancellationReason string
}

// EmailMessage is a fully rendered email ready for the dispatcher.
type EmailMessage struct {
	Subject string
	HTML    string
	Text    string
}

type templateContext struct {
	EmailData
	Title string
}

var emailTmpl = template.Must(template.New("email").Parse(emailTemplateSet))

func render(name, title string, data EmailData) (string, error) {
	var buf bytes.Buffer
	err := emailTmpl.ExecuteTemplate(&buf, name, templateContext{EmailData: data, Title: title})
	if err != nil {
		return "", fmt.Errorf("failed to render email template %q: %w", name, err)
	}
	return buf.String(), nil
}

// ConfirmationEmail renders the email sent when an appointment is first
// created.
func ConfirmationEmail(data EmailData) (EmailMessage, error) {
	html, err := render("confirmation", "Appointment Confirmation - Healio", data)
	if err != nil {
		return EmailMessage{}, err
	}
	return EmailMessage{
		Subject: fmt.Sprintf("Appointment Confirmed - %s with Dr. %s", data.AppointmentDate, data.DoctorName),
		HTML:    html,
		Text: fmt.Sprintf("Hello %s, your appointment with Dr. %s has been confirmed for %s at %s. Appointment ID: %s",
			data.PatientName, data.DoctorName, data.AppointmentDate, data.AppointmentTime, data.AppointmentID),
	}, nil
}

// ReminderEmail renders the next-day reminder. It reuses the confirmation
// details layout with reminder copy.
func ReminderEmail(data EmailData) (EmailMessage, error) {
	html, err := render("reminder", "Appointment Reminder - Healio", data)
	if err != nil {
		return EmailMessage{}, err
	}
	return EmailMessage{
		Subject: fmt.Sprintf("Appointment Reminder - %s with Dr. %s", data.AppointmentDate, data.DoctorName),
		HTML:    html,
		Text: fmt.Sprintf("Hello %s, this is a reminder for your appointment with Dr. %s tomorrow, %s at %s. Appointment ID: %s",
			data.PatientName, data.DoctorName, data.AppointmentDate, data.AppointmentTime, data.AppointmentID),
	}, nil
}

// UpdateEmail renders the schedule/reschedule/cancel notification, selecting
// copy and color coding by the update type.
func UpdateEmail(data EmailData) (EmailMessage, error) {
	var titleWord string
	switch data.UpdateType {
	case UpdateScheduled:
		titleWord = "Confirmed"
	case UpdateRescheduled:
		titleWord = "Rescheduled"
	case UpdateCancelled:
		titleWord = "Cancelled"
	default:
		titleWord = "Updated"
	}

	html, err := render("update", fmt.Sprintf("Appointment %s - Healio", titleWord), data)
	if err != nil {
		return EmailMessage{}, err
	}

	var subject, text string
	switch data.UpdateType {
	case UpdateScheduled:
		subject = fmt.Sprintf("Appointment Scheduled - %s with Dr. %s", data.AppointmentDate, data.DoctorName)
		text = fmt.Sprintf("Hello %s, your appointment with Dr. %s has been scheduled for %s at %s. Appointment ID: %s",
			data.PatientName, data.DoctorName, data.AppointmentDate, data.AppointmentTime, data.AppointmentID)
	case UpdateRescheduled:
		subject = fmt.Sprintf("Appointment Rescheduled - %s with Dr. %s", data.AppointmentDate, data.DoctorName)
		text = fmt.Sprintf("Hello %s, your appointment with Dr. %s has been rescheduled to %s at %s. Appointment ID: %s",
			data.PatientName, data.DoctorName, data.AppointmentDate, data.AppointmentTime, data.AppointmentID)
	case UpdateCancelled:
		subject = fmt.Sprintf("Appointment Cancelled - Dr. %s", data.DoctorName)
		text = fmt.Sprintf("Hello %s, your appointment with Dr. %s scheduled for %s has been cancelled. Appointment ID: %s",
			data.PatientName, data.DoctorName, data.AppointmentDate, data.AppointmentID)
	default:
		subject = fmt.Sprintf("Appointment Updated - Dr. %s", data.DoctorName)
		text = fmt.Sprintf("Hello %s, your appointment details have been updated. Appointment ID: %s",
			data.PatientName, data.AppointmentID)
	}

	return EmailMessage{Subject: subject, HTML: html, Text: text}, nil
}

// Shared layout plus one content template per email variant. Status color
// coding: green for scheduled/confirmed, amber for rescheduled, red for
// cancelled.
const emailTemplateSet = `
{{define "styles"}}
<style>
  body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #333; background-color: #f8f9fa; margin: 0; padding: 0; }
  .container { max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 10px; overflow: hidden; }
  .header { background: linear-gradient(135deg, #24AE7C 0%, #0D2A1F 100%); color: white; padding: 30px 20px; text-align: center; }
  .logo { font-size: 28px; font-weight: bold; margin-bottom: 10px; }
  .header-subtitle { font-size: 16px; opacity: 0.9; }
  .content { padding: 30px 20px; }
  .greeting { font-size: 18px; margin-bottom: 20px; color: #2c3e50; }
  .confirmation-box { background-color: #f8f9fa; border-left: 4px solid #24AE7C; padding: 20px; margin: 20px 0; border-radius: 5px; }
  .update-box { background-color: #fff3cd; border-left: 4px solid #ffc107; padding: 20px; margin: 20px 0; border-radius: 5px; }
  .cancellation-box { background-color: #f8d7da; border-left: 4px solid #dc3545; padding: 20px; margin: 20px 0; border-radius: 5px; }
  .info-box { background-color: #d1ecf1; border: 1px solid #bee5eb; border-radius: 5px; padding: 15px; margin: 20px 0; }
  .warning-box { background-color: #fff3cd; border: 1px solid #ffeaa7; border-radius: 5px; padding: 15px; margin: 20px 0; }
  .appointment-details { background-color: #ffffff; border: 1px solid #e9ecef; border-radius: 8px; padding: 20px; margin: 20px 0; }
  .detail-row { padding: 10px 0; border-bottom: 1px solid #f1f3f4; }
  .detail-row:last-child { border-bottom: none; }
  .detail-label { font-weight: 600; color: #555; }
  .highlight { color: #24AE7C; font-weight: 600; }
  .button { display: inline-block; background-color: #24AE7C; color: white; padding: 12px 25px; text-decoration: none; border-radius: 5px; font-weight: 600; margin: 20px 0; }
  .footer { background-color: #f8f9fa; padding: 20px; text-align: center; font-size: 14px; color: #666; border-top: 1px solid #e9ecef; }
</style>
{{end}}

{{define "header"}}
<div class="header">
  <div class="logo">Healio</div>
  <div class="header-subtitle">Your Healthcare Partner</div>
</div>
{{end}}

{{define "footer"}}
<div class="footer">
  <p>&copy; 2025 Healio. All rights reserved.</p>
  <p>Phone: +91 98765 43210 | Email: support@healio.com</p>
  <p style="margin-top: 15px; font-size: 12px; color: #888;">
    This is an automated message. Please do not reply to this email.
  </p>
</div>
{{end}}

{{define "details"}}
<div class="appointment-details">
  <h3 style="color: #2c3e50; margin-bottom: 15px;">Appointment Details</h3>
  <div class="detail-row"><span class="detail-label">Doctor:</span> Dr. {{.DoctorName}}</div>
  <div class="detail-row"><span class="detail-label">Date:</span> {{.AppointmentDate}}</div>
  <div class="detail-row"><span class="detail-label">Time:</span> {{.AppointmentTime}}</div>
  <div class="detail-row"><span class="detail-label">Reason:</span> {{.Reason}}</div>
  <div class="detail-row"><span class="detail-label">Appointment ID:</span> {{.AppointmentID}}</div>
</div>
{{end}}

{{define "checklist"}}
<p style="margin: 20px 0; color: #555;">
  Please arrive <strong>15 minutes early</strong> for your appointment. Don't forget to bring:
</p>
<ul style="margin-left: 20px; color: #555;">
  <li>Valid photo ID</li>
  <li>Insurance card (if applicable)</li>
  <li>List of current medications</li>
  <li>Any relevant medical records</li>
</ul>
{{end}}

{{define "layout_head"}}
<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
{{template "styles"}}
</head>
<body>
<div class="container">
{{template "header"}}
<div class="content">
<div class="greeting">Hello <span class="highlight">{{.PatientName}}</span>,</div>
{{end}}

{{define "layout_foot"}}
</div>
{{template "footer" .}}
</div>
</body>
</html>
{{end}}

{{define "confirmation"}}
{{template "layout_head" .}}
<div class="confirmation-box">
  <h2 style="color: #24AE7C; margin-bottom: 10px;">Appointment Confirmed!</h2>
  <p>Your appointment has been successfully scheduled. We look forward to seeing you.</p>
</div>
{{template "details" .}}
{{template "checklist"}}
<center><a href="{{.DetailsURL}}" class="button">View Appointment Details</a></center>
<div class="warning-box">
  <p style="margin: 0; color: #856404;">
    <strong>Need to reschedule or cancel?</strong><br>
    Please contact us at least 24 hours in advance to avoid any cancellation fees.
  </p>
</div>
{{template "layout_foot" .}}
{{end}}

{{define "reminder"}}
{{template "layout_head" .}}
<div class="info-box">
  <h2 style="color: #0c5460; margin-bottom: 10px;">Appointment Reminder</h2>
  <p>This is a friendly reminder about your upcoming appointment tomorrow.</p>
</div>
{{template "details" .}}
{{template "checklist"}}
<center><a href="{{.DetailsURL}}" class="button">View Appointment Details</a></center>
<div class="info-box">
  <p style="margin: 0; color: #0c5460;">
    <strong>Pro Tip:</strong> Prepare any questions you'd like to ask Dr. {{.DoctorName}} during your visit.
  </p>
</div>
{{template "layout_foot" .}}
{{end}}

{{define "update"}}
{{template "layout_head" .}}
{{if eq .UpdateType "cancelled"}}
<div class="cancellation-box">
  <h2 style="color: #721c24; margin-bottom: 10px;">Appointment Cancelled</h2>
  <p>Your appointment has been cancelled.</p>
</div>
<div class="appointment-details">
  <h3 style="color: #2c3e50; margin-bottom: 15px;">Cancelled Appointment Details</h3>
  <div class="detail-row"><span class="detail-label">Doctor:</span> Dr. {{.DoctorName}}</div>
  <div class="detail-row"><span class="detail-label">Original Date:</span> {{.AppointmentDate}}</div>
  <div class="detail-row"><span class="detail-label">Original Time:</span> {{.AppointmentTime}}</div>
  <div class="detail-row"><span class="detail-label">Appointment ID:</span> {{.AppointmentID}}</div>
  {{if .CancellationReason}}
  <div class="detail-row"><span class="detail-label">Cancellation Reason:</span> {{.CancellationReason}}</div>
  {{end}}
</div>
<div class="info-box">
  <p style="margin: 0; color: #0c5460;">
    <strong>Need a new appointment?</strong><br>
    We're here to help you reschedule. Please contact us or book online at your convenience.
  </p>
</div>
<center><a href="{{.DetailsURL}}" class="button">Book New Appointment</a></center>
{{else}}
{{if eq .UpdateType "rescheduled"}}
<div class="update-box">
  <h2 style="color: #856404; margin-bottom: 10px;">Appointment Rescheduled</h2>
  <p>Your appointment has been rescheduled to a new date and time.</p>
</div>
{{if and .PreviousDate .PreviousTime}}
<div class="info-box">
  <h4 style="margin-bottom: 10px; color: #0c5460;">Previous Appointment Details:</h4>
  <p><strong>Previous Date:</strong> {{.PreviousDate}}</p>
  <p><strong>Previous Time:</strong> {{.PreviousTime}}</p>
</div>
{{end}}
{{else}}
<div class="confirmation-box">
  <h2 style="color: #24AE7C; margin-bottom: 10px;">Appointment Scheduled!</h2>
  <p>Your appointment has been confirmed and scheduled by our team.</p>
</div>
{{end}}
{{template "details" .}}
{{template "checklist"}}
<center><a href="{{.DetailsURL}}" class="button">View Appointment Details</a></center>
{{end}}
<div class="warning-box">
  <p style="margin: 0; color: #856404;">
    <strong>Questions or concerns?</strong><br>
    Please don't hesitate to contact our support team. We're here to help!
  </p>
</div>
{{template "layout_foot" .}}
{{end}}
`
