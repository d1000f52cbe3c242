package notify

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/gomail.v2"

	"healio-server/internal/config"
)

type fakeSendCloser struct {
	sendErr   error
	sendCalls int
	closed    bool
}

func (f *fakeSendCloser) Send(from string, to []string, msg io.WriterTo) error {
	f.sendCalls++
	return f.sendErr
}

func (f *fakeSendCloser) Close() error {
	f.closed = true
	return nil
}

func testEmailConfig() config.EmailConfig {
	return config.EmailConfig{
		Host:     "smtp.example.com",
		Port:     587,
		User:     "noreply@example.com",
		Pass:     "secret",
		From:     "noreply@example.com",
		FromName: "Healio Healthcare",
	}
}

func TestMailerSendSuccess(t *testing.T) {
	conn := &fakeSendCloser{}
	m := &Mailer{
		cfg:  testEmailConfig(),
		dial: func() (gomail.SendCloser, error) { return conn, nil },
	}

	ok := m.Send("patient@example.com", "Subject", "<p>hi</p>", "hi")

	assert.True(t, ok)
	assert.Equal(t, 1, conn.sendCalls)
	assert.True(t, conn.closed)
}

func TestMailerSendReturnsFalseWhenUnconfigured(t *testing.T) {
	dialed := false
	cfg := testEmailConfig()
	cfg.From = ""
	m := &Mailer{
		cfg: cfg,
		dial: func() (gomail.SendCloser, error) {
			dialed = true
			return &fakeSendCloser{}, nil
		},
	}

	assert.False(t, m.Send("patient@example.com", "Subject", "", "hi"))
	assert.False(t, dialed, "no delivery should be attempted when unconfigured")
}

func TestMailerSendReturnsFalseWhenVerificationFails(t *testing.T) {
	m := &Mailer{
		cfg:  testEmailConfig(),
		dial: func() (gomail.SendCloser, error) { return nil, errors.New("connection refused") },
	}

	assert.False(t, m.Send("patient@example.com", "Subject", "", "hi"))
}

func TestMailerSendReturnsFalseWhenSendFails(t *testing.T) {
	conn := &fakeSendCloser{sendErr: errors.New("smtp 550")}
	m := &Mailer{
		cfg:  testEmailConfig(),
		dial: func() (gomail.SendCloser, error) { return conn, nil },
	}

	assert.False(t, m.Send("patient@example.com", "Subject", "", "hi"))
	assert.True(t, conn.closed)
}
