package notify

import (
	"log"
)

// SMSSender delivers a text message to the phone number registered for a
// user account. The production gateway is an external collaborator reached
// through this interface.
type SMSSender interface {
	SendSMS(userID, content string) error
}

// LogSMSSender records outgoing messages in the process log. It stands in
// wherever no SMS gateway is configured.
type LogSMSSender struct{}

// SendSMS logs the message and reports success.
func (LogSMSSender) SendSMS(userID, content string) error {
	log.Printf("Sending SMS to user %s: %s", userID, content)
	return nil
}
