package metrics

import (
	"time"

	"mercator-hq/sieve/pkg/config"
	"mercator-hq/sieve/pkg/criteria"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector owns every Prometheus metric sieve exports. It implements
// criteria.Recorder so an Evaluator can report to it directly.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	evaluationMetrics *EvaluationMetrics
	sourceMetrics     *SourceMetrics
}

var _ criteria.Recorder = (*Collector)(nil)

// NewCollector creates a collector and registers its metrics on registry.
// If registry is nil, a fresh registry is created.
//
// Example:
//
//	cfg := &config.MetricsConfig{Enabled: true}
//	collector := metrics.NewCollector(cfg, nil)
//	evaluator := criteria.NewEvaluator(logger, nil, criteria.WithRecorder(collector))
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = config.DefaultMetricsSubsystem
	}
	if len(cfg.DurationBuckets) == 0 {
		cfg.DurationBuckets = append([]float64(nil), config.DefaultDurationBuckets...)
	}

	return &Collector{
		config:            cfg,
		registry:          registry,
		evaluationMetrics: NewEvaluationMetrics(cfg, registry),
		sourceMetrics:     NewSourceMetrics(cfg, registry),
	}
}

// RecordEvaluation records one criteria evaluation.
func (c *Collector) RecordEvaluation(kind criteria.Kind, duration time.Duration, matched int) {
	if !c.config.Enabled {
		return
	}

	c.evaluationMetrics.RecordEvaluation(string(kind), duration, matched)
}

// RecordDepthRejection records a criteria tree refused for exceeding the depth limit.
func (c *Collector) RecordDepthRejection(depth int) {
	if !c.config.Enabled {
		return
	}

	c.evaluationMetrics.RecordDepthRejection(depth)
}

// RecordLoad records one record source load. A non-nil err counts as a failure
// and leaves the loaded-records gauge unchanged.
func (c *Collector) RecordLoad(source string, records int, duration time.Duration, err error) {
	if !c.config.Enabled {
		return
	}

	c.sourceMetrics.RecordLoad(source, records, duration, err)
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
