package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"github.com/prawat/portfolio/internal/config"
	"github.com/prawat/portfolio/internal/contact"
)

// SMTP delivers messages to the site owner's inbox with Reply-To set to the
// visitor.
type SMTP struct {
	cfg    config.SMTP
	logger *zap.Logger
	send   func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTP returns an SMTP sender.
func NewSMTP(cfg config.SMTP, logger *zap.Logger) *SMTP {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SMTP{cfg: cfg, logger: logger, send: smtp.SendMail}
}

// Send composes and sends the message. net/smtp has no context support, so
// cancellation releases the caller while the dial finishes in the background.
func (s *SMTP) Send(ctx context.Context, msg contact.Message) error {
	if s.cfg.User == "" || s.cfg.Pass == "" {
		return ErrNotConfigured
	}
	raw := s.compose(msg)
	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	errc := make(chan error, 1)
	go func() {
		errc <- s.send(addr, auth, s.cfg.User, []string{s.cfg.To}, raw)
	}()
	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("smtp send: %w", err)
		}
		s.logger.Info("email sent", zap.String("to", s.cfg.To))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// compose builds a text/plain message. Only header values are rewritten.
func (s *SMTP) compose(msg contact.Message) []byte {
	name := oneLine(msg.Get("name"))
	email := oneLine(msg.Get("email"))

	subject := fmt.Sprintf("Portfolio Contact: %s", name)
	if sub := oneLine(msg.Get("subject")); sub != "" {
		subject += " - " + sub
	}
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, name, email, msg.Get("message"))

	return []byte("To: " + s.cfg.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + s.cfg.User + "\r\n" +
		"Reply-To: " + email + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")
}

// oneLine keeps header values from injecting extra headers.
func oneLine(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '\r' || r == '\n' {
			r = ' '
		}
		out = append(out, r)
	}
	return string(out)
}
