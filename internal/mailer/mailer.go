package mailer

import (
	"context"
	"fmt"
	"net/smtp"
)

// Mailer sends plain-text email over SMTP. It exists to carry
// password-reset links; callers treat delivery as best-effort.
type Mailer struct {
	addr string // host:port
	from string
	auth smtp.Auth
}

// New creates a Mailer. Username may be empty for unauthenticated relays.
func New(host string, port int, username, password, from string) *Mailer {
	m := &Mailer{
		addr: fmt.Sprintf("%s:%d", host, port),
		from: from,
	}
	if username != "" {
		m.auth = smtp.PlainAuth("", username, password, host)
	}
	return m
}

// Send delivers a single message. The body is never logged here since it
// can carry secrets such as reset links.
func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.from, to, subject, body)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
