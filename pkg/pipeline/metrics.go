package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts pipeline runs.
type Metrics struct {
	Runs     *prometheus.CounterVec
	Locales  *prometheus.CounterVec
	Duration prometheus.Histogram
}

// NewMetrics registers the pipeline collectors with reg. A nil reg yields
// unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "frontdoor_pipeline_runs_total",
			Help: "Pipeline runs by final state",
		}, []string{"state"}),
		Locales: f.NewCounterVec(prometheus.CounterOpts{
			Name: "frontdoor_pipeline_resolved_locales_total",
			Help: "Locales fixed for rendered requests",
		}, []string{"locale"}),
		Duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "frontdoor_pipeline_duration_seconds",
			Help:    "Time spent before handing off to the page handler",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
