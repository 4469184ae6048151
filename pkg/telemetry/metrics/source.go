package metrics

import (
	"time"

	"mercator-hq/sieve/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// SourceMetrics tracks record source loads.
//
// Metrics:
//   - sieve_criteria_source_loads_total: Loads by source and status
//   - sieve_criteria_source_load_duration_seconds: Load duration by source
//   - sieve_criteria_source_records: Records held after the last successful load
type SourceMetrics struct {
	loadsTotal   *prometheus.CounterVec
	loadDuration *prometheus.HistogramVec
	records      *prometheus.GaugeVec
}

// NewSourceMetrics creates and registers source metrics with the provided registry.
func NewSourceMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *SourceMetrics {
	sm := &SourceMetrics{
		loadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "source_loads_total",
				Help:      "Total number of record source loads",
			},
			[]string{"source", "status"},
		),

		loadDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "source_load_duration_seconds",
				Help:      "Duration of record source loads in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8), // 100µs to ~1.6s
			},
			[]string{"source"},
		),

		records: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "source_records",
				Help:      "Number of records held after the last successful load",
			},
			[]string{"source"},
		),
	}

	registry.MustRegister(
		sm.loadsTotal,
		sm.loadDuration,
		sm.records,
	)

	return sm
}

// RecordLoad records a load attempt.
func (sm *SourceMetrics) RecordLoad(source string, records int, duration time.Duration, err error) {
	sm.loadDuration.WithLabelValues(source).Observe(duration.Seconds())

	if err != nil {
		sm.loadsTotal.WithLabelValues(source, "error").Inc()
		return
	}

	sm.loadsTotal.WithLabelValues(source, "success").Inc()
	sm.records.WithLabelValues(source).Set(float64(records))
}
