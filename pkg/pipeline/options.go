package pipeline

import "log/slog"

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithConfig replaces the default configuration. Invalid values fall back to defaults.
func WithConfig(cfg Config) Option {
	return func(p *Pipeline) {
		p.config = cfg.normalize()
	}
}

// WithLogger sets the pipeline logger. Nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithMetrics swaps the default unregistered collectors for m.
func WithMetrics(m *Metrics) Option {
	return func(p *Pipeline) {
		if m != nil {
			p.metrics = m
		}
	}
}
