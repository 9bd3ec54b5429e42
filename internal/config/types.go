package config

import (
	"time"

	"github.com/prawat/portfolio/internal/nav"
	"github.com/prawat/portfolio/internal/site"
)

// Delivery providers.
const (
	ProviderEmailJS = "emailjs"
	ProviderSMTP    = "smtp"
	ProviderLog     = "log"
)

// Config is the full site configuration.
type Config struct {
	Server  Server       `koanf:"server" yaml:"server"`
	Log     Log          `koanf:"log" yaml:"log"`
	Nav     Nav          `koanf:"nav" yaml:"nav"`
	Contact Contact      `koanf:"contact" yaml:"contact"`
	Site    site.Content `koanf:"site" yaml:"site"`
}

// Server configures the HTTP listener.
type Server struct {
	Port            int           `koanf:"port" yaml:"port"`
	Mode            string        `koanf:"mode" yaml:"mode"` // gin mode: debug, release, test
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" yaml:"shutdown_timeout"`
	StaticDir       string        `koanf:"static_dir" yaml:"static_dir"`
}

// Log configures zap.
type Log struct {
	Level       string `koanf:"level" yaml:"level"`
	Development bool   `koanf:"development" yaml:"development"`
}

// Nav configures the navigation menu and scroll tracking.
type Nav struct {
	ActivationOffset float64       `koanf:"activation_offset" yaml:"activation_offset"`
	Sections         []nav.Section `koanf:"sections" yaml:"sections"`
}

// Contact configures the contact form.
type Contact struct {
	Fields         []string      `koanf:"fields" yaml:"fields"`
	ResetDelay     time.Duration `koanf:"reset_delay" yaml:"reset_delay"`
	SendTimeout    time.Duration `koanf:"send_timeout" yaml:"send_timeout"`
	SuccessMessage string        `koanf:"success_message" yaml:"success_message"`
	FailureMessage string        `koanf:"failure_message" yaml:"failure_message"`
	SessionTTL     time.Duration `koanf:"session_ttl" yaml:"session_ttl"`
	// SubmitsPerMinute and SubmitBurst throttle each visitor.
	SubmitsPerMinute float64  `koanf:"submits_per_minute" yaml:"submits_per_minute"`
	SubmitBurst      int      `koanf:"submit_burst" yaml:"submit_burst"`
	Delivery         Delivery `koanf:"delivery" yaml:"delivery"`
}

// Delivery selects and configures the mail provider.
type Delivery struct {
	Provider string  `koanf:"provider" yaml:"provider"`
	EmailJS  EmailJS `koanf:"emailjs" yaml:"emailjs"`
	SMTP     SMTP    `koanf:"smtp" yaml:"smtp"`
}

// EmailJS holds the EmailJS service, template and keys.
type EmailJS struct {
	Endpoint   string `koanf:"endpoint" yaml:"endpoint,omitempty"`
	ServiceID  string `koanf:"service_id" yaml:"service_id"`
	TemplateID string `koanf:"template_id" yaml:"template_id"`
	PublicKey  string `koanf:"public_key" yaml:"public_key"`
	PrivateKey string `koanf:"private_key" yaml:"-"`
}

// SMTP holds relay settings.
type SMTP struct {
	Host string `koanf:"host" yaml:"host"`
	Port int    `koanf:"port" yaml:"port"`
	User string `koanf:"user" yaml:"user"`
	Pass string `koanf:"pass" yaml:"-"`
	To   string `koanf:"to" yaml:"to"`
}
