// Package metrics provides Prometheus metrics collection for sieve.
//
// # Metrics Categories
//
//   - Evaluation Metrics: evaluation count, duration and result size by
//     root criteria kind, plus depth-guard rejections
//   - Source Metrics: record source loads, load duration and record count
//
// # Usage
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//
//	evaluator := criteria.NewEvaluator(logger, &criteria.EvaluatorConfig{MaxDepth: 16},
//		criteria.WithRecorder(collector))
//
//	http.Handle(cfg.Telemetry.Metrics.Path, collector.Handler())
//
// When MetricsConfig.Enabled is false every Record call is a no-op, but the
// metrics stay registered so the endpoint still serves a stable schema.
package metrics
