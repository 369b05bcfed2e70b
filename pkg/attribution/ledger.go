package attribution

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/frontdoor/pkg/logger"
)

// Ledger records the gclid a session arrived with. It never fails the request.
type Ledger struct {
	store   Store
	logger  *slog.Logger
	metrics *Metrics
	now     func() time.Time
}

// LedgerOption configures a Ledger.
type LedgerOption func(*Ledger)

// WithLogger sets the logger for failed writes. Nil keeps slog.Default.
func WithLogger(l *slog.Logger) LedgerOption {
	return func(lg *Ledger) {
		if l != nil {
			lg.logger = l
		}
	}
}

// WithMetrics swaps the default unregistered collectors for m.
func WithMetrics(m *Metrics) LedgerOption {
	return func(lg *Ledger) {
		if m != nil {
			lg.metrics = m
		}
	}
}

// WithClock overrides the source of record timestamps.
func WithClock(now func() time.Time) LedgerOption {
	return func(lg *Ledger) {
		if now != nil {
			lg.now = now
		}
	}
}

// NewLedger creates a ledger writing to store.
func NewLedger(store Store, opts ...LedgerOption) *Ledger {
	if store == nil {
		panic("attribution: nil store")
	}
	l := &Ledger{
		store:   store,
		logger:  slog.Default(),
		metrics: NewMetrics(nil),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// RecordAttribution upserts gclid for sessionID. An empty gclid or session id
// is a no-op. Store errors are logged and dropped.
func (l *Ledger) RecordAttribution(ctx context.Context, sessionID, gclid string) {
	if gclid == "" || sessionID == "" {
		l.metrics.observe(resultSkipped)
		return
	}

	began := time.Now()
	err := l.store.Upsert(ctx, sessionID, Patch{GCLID: gclid, At: l.now().UTC()})
	l.metrics.Duration.Observe(time.Since(began).Seconds())

	if err != nil {
		l.metrics.observe(resultFailed)
		l.logger.ErrorContext(ctx, "failed to record attribution",
			logger.Component("attribution"),
			logger.SessionID(sessionID),
			logger.GCLID(gclid),
			logger.Error(err),
		)
		return
	}

	l.metrics.observe(resultRecorded)
	l.logger.DebugContext(ctx, "attribution recorded",
		logger.Component("attribution"),
		logger.SessionID(sessionID),
		logger.GCLID(gclid),
	)
}
