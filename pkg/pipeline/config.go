package pipeline

import (
	"net/http"
	"time"
)

const (
	DefaultGCLIDCookieName      = "gclid"
	DefaultGCLIDLifetime        = 30 * 24 * time.Hour
	DefaultLocaleCookieLifetime = 365 * 24 * time.Hour
)

// Config holds pipeline configuration.
type Config struct {
	RedirectCode         int           `env:"PIPELINE_REDIRECT_CODE" envDefault:"302"`
	GCLIDCookieName      string        `env:"PIPELINE_GCLID_COOKIE" envDefault:"gclid"`
	GCLIDLifetime        time.Duration `env:"PIPELINE_GCLID_LIFETIME" envDefault:"720h"`
	LocaleCookieLifetime time.Duration `env:"PIPELINE_LOCALE_COOKIE_LIFETIME" envDefault:"8760h"`
	SecureCookies        bool          `env:"PIPELINE_SECURE_COOKIES" envDefault:"true"`
}

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() Config {
	return Config{
		RedirectCode:         http.StatusFound,
		GCLIDCookieName:      DefaultGCLIDCookieName,
		GCLIDLifetime:        DefaultGCLIDLifetime,
		LocaleCookieLifetime: DefaultLocaleCookieLifetime,
		SecureCookies:        true,
	}
}

// normalize replaces unusable values with defaults.
func (c Config) normalize() Config {
	d := DefaultConfig()
	if c.RedirectCode < 300 || c.RedirectCode > 399 {
		c.RedirectCode = d.RedirectCode
	}
	if c.GCLIDCookieName == "" {
		c.GCLIDCookieName = d.GCLIDCookieName
	}
	if c.GCLIDLifetime <= 0 {
		c.GCLIDLifetime = d.GCLIDLifetime
	}
	if c.LocaleCookieLifetime <= 0 {
		c.LocaleCookieLifetime = d.LocaleCookieLifetime
	}
	return c
}
