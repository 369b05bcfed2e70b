package logger

import (
	"log/slog"

	"github.com/dmitrymomot/frontdoor/pkg/environment"
)

// Config is loaded from the environment.
// Level and Format override the APP_ENV preset when set.
type Config struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"APP_NAME" envDefault:"frontdoor"`
	Level   string `env:"LOG_LEVEL"`
	Format  string `env:"LOG_FORMAT"`
}

// NewFromConfig builds a logger from cfg. Extra options are applied last.
func NewFromConfig(cfg Config, opts ...Option) (*slog.Logger, error) {
	all := []Option{WithEnvironment(environment.Parse(cfg.Env), cfg.Service)}

	if cfg.Level != "" {
		lvl, err := ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		all = append(all, WithLevel(lvl))
	}
	if cfg.Format != "" {
		f := Format(cfg.Format)
		if f != FormatJSON && f != FormatText {
			return nil, ErrInvalidFormat
		}
		all = append(all, WithFormat(f))
	}

	return New(append(all, opts...)...), nil
}
