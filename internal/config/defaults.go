package config

import (
	"time"

	"github.com/prawat/portfolio/internal/contact"
	"github.com/prawat/portfolio/internal/nav"
	"github.com/prawat/portfolio/internal/site"
)

// DefaultSections is the page in document order.
var DefaultSections = []nav.Section{
	{ID: "home", Label: "Home"},
	{ID: "about", Label: "About"},
	{ID: "experience", Label: "Experience"},
	{ID: "projects", Label: "Projects"},
	{ID: "skills", Label: "Skills"},
	{ID: "contact", Label: "Contact"},
}

// DefaultConfig returns the configuration used when nothing is overridden.
// List values are left empty here and filled by applyDefaults after loading.
func DefaultConfig() *Config {
	return &Config{
		Server: Server{
			Port:            8080,
			Mode:            "release",
			ShutdownTimeout: 10 * time.Second,
		},
		Log: Log{
			Level: "info",
		},
		Nav: Nav{
			ActivationOffset: nav.DefaultActivationOffset,
		},
		Contact: Contact{
			ResetDelay:       contact.DefaultResetDelay,
			SendTimeout:      contact.DefaultSendTimeout,
			SuccessMessage:   contact.DefaultSuccessMessage,
			FailureMessage:   contact.DefaultFailureMessage,
			SessionTTL:       30 * time.Minute,
			SubmitsPerMinute: 2,
			SubmitBurst:      3,
			Delivery: Delivery{
				Provider: ProviderLog,
				SMTP: SMTP{
					Host: "smtp.gmail.com",
					Port: 587,
				},
			},
		},
	}
}

// Sample returns DefaultConfig with every list and the site content filled
// in, as written by "config init".
func Sample() *Config {
	c := DefaultConfig()
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if len(c.Nav.Sections) == 0 {
		c.Nav.Sections = append([]nav.Section(nil), DefaultSections...)
	}
	if len(c.Contact.Fields) == 0 {
		c.Contact.Fields = append([]string(nil), contact.DefaultFields...)
	}
	c.Site = c.Site.WithDefaults(site.Default())
}
