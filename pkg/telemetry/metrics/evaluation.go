package metrics

import (
	"time"

	"mercator-hq/sieve/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// EvaluationMetrics tracks criteria evaluation.
//
// Metrics:
//   - sieve_criteria_evaluations_total: Evaluations by root criteria kind
//   - sieve_criteria_evaluation_duration_seconds: Evaluation duration by kind
//   - sieve_criteria_matched_records: Result view sizes by kind
//   - sieve_criteria_depth_rejections_total: Trees refused by the depth guard
//   - sieve_criteria_rejected_depth: Depth of the most recently refused tree
type EvaluationMetrics struct {
	evaluationsTotal   *prometheus.CounterVec
	evaluationDuration *prometheus.HistogramVec
	matchedRecords     *prometheus.HistogramVec
	depthRejections    prometheus.Counter
	rejectedDepth      prometheus.Gauge
}

// NewEvaluationMetrics creates and registers evaluation metrics with the provided registry.
func NewEvaluationMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *EvaluationMetrics {
	em := &EvaluationMetrics{
		evaluationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "evaluations_total",
				Help:      "Total number of criteria evaluations",
			},
			[]string{"kind"},
		),

		evaluationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "evaluation_duration_seconds",
				Help:      "Duration of criteria evaluation in seconds",
				Buckets:   cfg.DurationBuckets,
			},
			[]string{"kind"},
		),

		matchedRecords: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "matched_records",
				Help:      "Number of records in each evaluation result",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 8), // 1 to 16384
			},
			[]string{"kind"},
		),

		depthRejections: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "depth_rejections_total",
				Help:      "Total number of criteria trees rejected for exceeding the depth limit",
			},
		),

		rejectedDepth: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "rejected_depth",
				Help:      "Depth of the most recently rejected criteria tree",
			},
		),
	}

	registry.MustRegister(
		em.evaluationsTotal,
		em.evaluationDuration,
		em.matchedRecords,
		em.depthRejections,
		em.rejectedDepth,
	)

	return em
}

// RecordEvaluation records an evaluation of a tree whose root has the given kind.
func (em *EvaluationMetrics) RecordEvaluation(kind string, duration time.Duration, matched int) {
	em.evaluationsTotal.WithLabelValues(kind).Inc()
	em.evaluationDuration.WithLabelValues(kind).Observe(duration.Seconds())
	em.matchedRecords.WithLabelValues(kind).Observe(float64(matched))
}

// RecordDepthRejection records a refused tree.
func (em *EvaluationMetrics) RecordDepthRejection(depth int) {
	em.depthRejections.Inc()
	em.rejectedDepth.Set(float64(depth))
}
