package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"

	"github.com/daniilsolovey/site-admin/config"
)

// Email is one outbound message. Text is the plain-text alternative; when
// empty only the HTML part is sent.
type Email struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Mailer sends a single email. Implemented by the SMTP transport and by
// test fakes.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// SMTP sends mail through a configured SMTP server via gomail.
type SMTP struct {
	dialer *gomail.Dialer
	from   string
	log    *slog.Logger
}

func NewSMTP(cfg config.Email, log *slog.Logger) *SMTP {
	return &SMTP{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
		log:    log,
	}
}

// Verify dials the SMTP server once to check the configuration.
func (s *SMTP) Verify() error {
	closer, err := s.dialer.Dial()
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	return closer.Close()
}

func (s *SMTP) Send(ctx context.Context, email Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email.To)
	m.SetHeader("Subject", email.Subject)
	m.SetHeader("Reply-To", s.from)

	if email.Text != "" {
		m.SetBody("text/plain", email.Text)
		m.AddAlternative("text/html", email.HTML)
	} else {
		m.SetBody("text/html", email.HTML)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", email.To, err)
	}

	s.log.Debug("email sent", "to", email.To, "subject", email.Subject)
	return nil
}
