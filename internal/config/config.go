package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/prawat/portfolio/internal/nav"
)

// EnvPrefix namespaces environment overrides. A double underscore separates
// levels: PORTFOLIO_CONTACT__RESET_DELAY -> contact.reset_delay.
const EnvPrefix = "PORTFOLIO_"

// legacyEnv maps the plain variable names used by earlier deployments to
// config keys. They apply below PORTFOLIO_ overrides.
var legacyEnv = map[string]string{
	"PORT":      "server.port",
	"GIN_MODE":  "server.mode",
	"SMTP_HOST": "contact.delivery.smtp.host",
	"SMTP_PORT": "contact.delivery.smtp.port",
	"SMTP_USER": "contact.delivery.smtp.user",
	"SMTP_PASS": "contact.delivery.smtp.pass",
	"TO_EMAIL":  "contact.delivery.smtp.to",
}

// Load reads configuration from the given YAML file, then overlays the legacy
// environment variables and PORTFOLIO_* overrides. A missing file is not an
// error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	for name, key := range legacyEnv {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			if err := k.Set(key, v); err != nil {
				return nil, fmt.Errorf("applying %s: %w", name, err)
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the given YAML file path. Secrets tagged
// yaml:"-" are omitted.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validModes = map[string]bool{
	"debug":   true,
	"release": true,
	"test":    true,
}

var validProviders = map[string]bool{
	ProviderEmailJS: true,
	ProviderSMTP:    true,
	ProviderLog:     true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if !validModes[c.Server.Mode] {
		return fmt.Errorf("invalid server.mode %q: must be one of debug, release, test", c.Server.Mode)
	}

	if c.Nav.ActivationOffset < 0 {
		return fmt.Errorf("nav.activation_offset must be non-negative")
	}
	if len(c.Nav.Sections) == 0 {
		return fmt.Errorf("nav.sections must not be empty")
	}
	seen := make(map[string]bool, len(c.Nav.Sections))
	for i, s := range c.Nav.Sections {
		if s.ID == "" {
			return fmt.Errorf("nav.sections[%d]: id is required", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("nav.sections[%d]: duplicate id %q", i, s.ID)
		}
		seen[s.ID] = true
	}
	if !nav.Contains(c.Nav.Sections, "contact") {
		return fmt.Errorf("nav.sections must include the contact section")
	}

	if len(c.Contact.Fields) == 0 {
		return fmt.Errorf("contact.fields must not be empty")
	}
	if c.Contact.ResetDelay < 0 {
		return fmt.Errorf("contact.reset_delay must be non-negative")
	}
	if c.Contact.SessionTTL <= 0 {
		return fmt.Errorf("contact.session_ttl must be positive")
	}
	if c.Contact.SubmitsPerMinute <= 0 || c.Contact.SubmitBurst <= 0 {
		return fmt.Errorf("contact submit rate and burst must be positive")
	}

	d := c.Contact.Delivery
	if !validProviders[d.Provider] {
		return fmt.Errorf("invalid contact.delivery.provider %q: must be one of emailjs, smtp, log", d.Provider)
	}
	if d.Provider == ProviderEmailJS && (d.EmailJS.ServiceID == "" || d.EmailJS.TemplateID == "" || d.EmailJS.PublicKey == "") {
		return fmt.Errorf("emailjs delivery needs service_id, template_id and public_key")
	}
	if d.Provider == ProviderSMTP && (d.SMTP.Host == "" || d.SMTP.To == "") {
		return fmt.Errorf("smtp delivery needs host and to")
	}

	return nil
}
