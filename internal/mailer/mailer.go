// Package mailer implements the delivery capabilities behind the contact form.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/prawat/portfolio/internal/config"
	"github.com/prawat/portfolio/internal/contact"
)

// ErrNotConfigured is returned when a sender lacks its credentials.
var ErrNotConfigured = errors.New("mailer: delivery credentials not configured")

// StatusError is a non-2xx answer from a delivery service.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("mailer: service responded %d", e.Code)
	}
	return fmt.Sprintf("mailer: service responded %d: %s", e.Code, e.Body)
}

// Log only records the message at debug level. It is meant for local
// development.
type Log struct {
	logger *zap.Logger
}

// Send logs the message and succeeds.
func (l Log) Send(_ context.Context, msg contact.Message) error {
	fields := make([]zap.Field, 0, len(msg.Fields))
	for _, name := range msg.SortedNames() {
		fields = append(fields, zap.String(name, msg.Fields[name]))
	}
	l.logger.Debug("contact message (log delivery)", fields...)
	return nil
}

// New builds the sender selected by cfg.Provider.
func New(cfg config.Delivery, logger *zap.Logger) (contact.Sender, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	switch strings.ToLower(cfg.Provider) {
	case config.ProviderEmailJS:
		e := NewEmailJS(cfg.EmailJS.ServiceID, cfg.EmailJS.TemplateID, cfg.EmailJS.PublicKey, cfg.EmailJS.PrivateKey, nil, logger)
		if cfg.EmailJS.Endpoint != "" {
			e.Endpoint = cfg.EmailJS.Endpoint
		}
		return e, nil
	case config.ProviderSMTP:
		return NewSMTP(cfg.SMTP, logger), nil
	case config.ProviderLog:
		return Log{logger: logger}, nil
	default:
		return nil, fmt.Errorf("mailer: unknown provider %q", cfg.Provider)
	}
}
