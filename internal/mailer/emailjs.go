package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/prawat/portfolio/internal/contact"
)

// DefaultEmailJSEndpoint is the EmailJS REST send endpoint.
const DefaultEmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJS delivers messages through an EmailJS template. Server-side calls
// must be allowed in the EmailJS account ("API access from non-browser
// environments"), and a private key is needed when strict mode is on.
type EmailJS struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	PublicKey  string
	PrivateKey string

	client *http.Client
	logger *zap.Logger
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// NewEmailJS returns an EmailJS sender. A nil client uses a client with a
// 10 second timeout.
func NewEmailJS(serviceID, templateID, publicKey, privateKey string, client *http.Client, logger *zap.Logger) *EmailJS {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmailJS{
		Endpoint:   DefaultEmailJSEndpoint,
		ServiceID:  serviceID,
		TemplateID: templateID,
		PublicKey:  publicKey,
		PrivateKey: privateKey,
		client:     client,
		logger:     logger,
	}
}

// Send posts the form fields unchanged as template parameters. EmailJS escapes
// them when it renders the template.
func (e *EmailJS) Send(ctx context.Context, msg contact.Message) error {
	if e.ServiceID == "" || e.TemplateID == "" || e.PublicKey == "" {
		return ErrNotConfigured
	}
	body, err := json.Marshal(emailJSRequest{
		ServiceID:      e.ServiceID,
		TemplateID:     e.TemplateID,
		UserID:         e.PublicKey,
		AccessToken:    e.PrivateKey,
		TemplateParams: msg.Fields,
	})
	if err != nil {
		return fmt.Errorf("encoding emailjs request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building emailjs request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &StatusError{Code: resp.StatusCode, Body: string(bytes.TrimSpace(text))}
	}
	e.logger.Info("emailjs accepted message",
		zap.String("service_id", e.ServiceID),
		zap.String("template_id", e.TemplateID))
	return nil
}
