package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, float64(100), cfg.Nav.ActivationOffset)
	require.Equal(t, 3*time.Second, cfg.Contact.ResetDelay)
	require.Equal(t, DefaultSections, cfg.Nav.Sections)
	require.Equal(t, []string{"name", "email", "message"}, cfg.Contact.Fields)
	require.Equal(t, ProviderLog, cfg.Contact.Delivery.Provider)
	require.NotEmpty(t, cfg.Site.Name)
}

func TestLoadYAMLReplacesLists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yml")
	yml := `
nav:
  activation_offset: 64
  sections:
    - {id: home, label: Home}
    - {id: contact, label: Contact}
contact:
  fields: [name, email, subject, message]
  reset_delay: 5s
  delivery:
    provider: emailjs
    emailjs:
      service_id: service_x
      template_id: template_y
      public_key: pub
site:
  name: Test Person
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Equal(t, float64(64), cfg.Nav.ActivationOffset)
	require.Len(t, cfg.Nav.Sections, 2)
	require.Equal(t, "contact", cfg.Nav.Sections[1].ID)
	require.Equal(t, []string{"name", "email", "subject", "message"}, cfg.Contact.Fields)
	require.Equal(t, 5*time.Second, cfg.Contact.ResetDelay)
	require.Equal(t, "service_x", cfg.Contact.Delivery.EmailJS.ServiceID)
	require.Equal(t, "Test Person", cfg.Site.Name)
	require.NotEmpty(t, cfg.Site.Projects)
}

func TestEnvOverridesTakePrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0644))

	t.Setenv("PORT", "9100")
	t.Setenv("SMTP_USER", "me@example.com")
	t.Setenv("PORTFOLIO_CONTACT__RESET_DELAY", "250ms")
	t.Setenv("PORTFOLIO_CONTACT__DELIVERY__PROVIDER", "smtp")
	t.Setenv("PORTFOLIO_CONTACT__DELIVERY__SMTP__TO", "owner@example.com")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9100, cfg.Server.Port)
	require.Equal(t, "me@example.com", cfg.Contact.Delivery.SMTP.User)
	require.Equal(t, 250*time.Millisecond, cfg.Contact.ResetDelay)
	require.Equal(t, ProviderSMTP, cfg.Contact.Delivery.Provider)
	require.NoError(t, cfg.Validate())

	t.Setenv("PORTFOLIO_SERVER__PORT", "9200")
	cfg, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, 9200, cfg.Server.Port)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := map[string]func(*Config){
		"port":             func(c *Config) { c.Server.Port = 0 },
		"mode":             func(c *Config) { c.Server.Mode = "prod" },
		"negative offset":  func(c *Config) { c.Nav.ActivationOffset = -1 },
		"duplicate":        func(c *Config) { c.Nav.Sections = append(c.Nav.Sections, c.Nav.Sections[0]) },
		"no contact":       func(c *Config) { c.Nav.Sections = c.Nav.Sections[:1] },
		"provider":         func(c *Config) { c.Contact.Delivery.Provider = "pigeon" },
		"emailjs keys":     func(c *Config) { c.Contact.Delivery.Provider = ProviderEmailJS },
		"negative delay":   func(c *Config) { c.Contact.ResetDelay = -time.Second },
		"zero session ttl": func(c *Config) { c.Contact.SessionTTL = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.applyDefaults()
			mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestSaveOmitsSecrets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yml")
	cfg := Sample()
	cfg.Contact.Delivery.SMTP.Pass = "hunter2"
	require.NoError(t, cfg.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "hunter2")

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.Nav.Sections, loaded.Nav.Sections)
	require.Equal(t, cfg.Contact.ResetDelay, loaded.Contact.ResetDelay)
	require.NoError(t, loaded.Validate())
}
