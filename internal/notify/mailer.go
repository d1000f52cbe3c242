package notify

import (
	"log"

	"gopkg.in/gomail.v2"

	"healio-server/internal/config"
)

// Mailer is the sole email I/O boundary. All templating happens before Send
// is called.
type Mailer struct {
	cfg  config.EmailConfig
	dial func() (gomail.SendCloser, error)
}

// NewMailer creates a Mailer backed by an SMTP dialer.
func NewMailer(cfg config.EmailConfig) *Mailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass)
	return &Mailer{
		cfg:  cfg,
		dial: func() (gomail.SendCloser, error) { return dialer.Dial() },
	}
}

// Send delivers a single email. It verifies the transport is configured and
// reachable before sending and converts every failure into a false result
// plus a logged diagnostic; it never returns an error to its caller.
func (m *Mailer) Send(to, subject, html, text string) bool {
	if m.cfg.From == "" || m.cfg.User == "" {
		log.Printf("Email service is not configured properly, skipping send to %s", to)
		return false
	}

	// Dialing doubles as the connection verification step; an unreachable
	// server means no partial send is attempted.
	conn, err := m.dial()
	if err != nil {
		log.Printf("Email server configuration error: %v", err)
		return false
	}
	defer conn.Close()

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.cfg.From, m.cfg.FromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", text)
	if html != "" {
		msg.AddAlternative("text/html", html)
	}

	if err := gomail.Send(conn, msg); err != nil {
		log.Printf("Email sending failed for %s: %v", to, err)
		return false
	}

	log.Printf("Email sent successfully to %s", to)
	return true
}
