package attribution

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Write results reported by the ledger.
const (
	resultRecorded = "recorded"
	resultSkipped  = "skipped"
	resultFailed   = "failed"
)

// Metrics counts ledger writes.
type Metrics struct {
	Writes   *prometheus.CounterVec
	Duration prometheus.Histogram
}

// NewMetrics registers the ledger collectors with reg. A nil reg yields
// unregistered collectors, which is what tests want.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Writes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "frontdoor_attribution_writes_total",
			Help: "Attribution ledger writes by result (recorded, skipped, failed)",
		}, []string{"result"}),
		Duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "frontdoor_attribution_upsert_duration_seconds",
			Help:    "Latency of attribution store upserts",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) observe(result string) {
	m.Writes.WithLabelValues(result).Inc()
}
