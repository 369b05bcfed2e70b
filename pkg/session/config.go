package session

import "time"

const (
	DefaultCookieName = "session_id"
	DefaultLifetime   = 30 * 24 * time.Hour
)

// Config holds session cookie configuration
type Config struct {
	CookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"session_id"`
	Lifetime   time.Duration `env:"SESSION_LIFETIME" envDefault:"720h"`
	Secure     bool          `env:"SESSION_SECURE_COOKIE" envDefault:"true"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		CookieName: DefaultCookieName,
		Lifetime:   DefaultLifetime,
		Secure:     true,
	}
}

// NewFromConfig creates a new Manager from the provided Config.
func NewFromConfig(cookies CookieSigner, cfg Config, opts ...Option) *Manager {
	return New(cookies, append([]Option{WithConfig(cfg)}, opts...)...)
}
