package config

import "time"

// Config is the root configuration structure for sieve.
// It selects where records come from, how criteria are evaluated, how
// results are rendered, and how the process logs and exports metrics.
type Config struct {
	// Records selects and configures the record source.
	Records RecordsConfig `yaml:"records"`

	// Evaluation contains criteria evaluator settings.
	Evaluation EvaluationConfig `yaml:"evaluation"`

	// Output controls result rendering.
	Output OutputConfig `yaml:"output"`

	// Watch controls re-evaluation when the records file changes.
	Watch WatchConfig `yaml:"watch"`

	// Telemetry contains logging, metrics and tracing configuration.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// RecordsConfig selects the record source.
type RecordsConfig struct {
	// Source is the record source type.
	// Options: "demo", "file", "sqlite"
	// Default: "demo"
	Source string `yaml:"source"`

	// FilePath is the YAML or JSON records file for the "file" source.
	FilePath string `yaml:"file_path"`

	// SQLite configures the "sqlite" source.
	SQLite SQLiteConfig `yaml:"sqlite"`
}

// SQLiteConfig configures the read-only SQLite record source.
type SQLiteConfig struct {
	// Path is the database file path.
	Path string `yaml:"path"`

	// Table is the table holding name, gender and marital_status columns.
	// Default: "people"
	Table string `yaml:"table"`

	// Driver is the database/sql driver name.
	// Options: "sqlite" (pure Go), "sqlite3" (cgo)
	// Default: "sqlite"
	Driver string `yaml:"driver"`

	// BusyTimeout is how long to wait when the database is locked.
	// Default: 5s
	BusyTimeout time.Duration `yaml:"busy_timeout"`
}

// EvaluationConfig contains criteria evaluator settings.
type EvaluationConfig struct {
	// MaxDepth rejects criteria trees deeper than this. Zero disables the check.
	// Default: 0
	MaxDepth int `yaml:"max_depth"`

	// Queries lists the built-in queries to run, by name. Empty runs all.
	Queries []string `yaml:"queries"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	// Format is the output format.
	// Options: "text", "json", "csv"
	// Default: "text"
	Format string `yaml:"format"`
}

// WatchConfig controls re-evaluation: file watching for the "file" source
// and scheduled reloads for any source.
type WatchConfig struct {
	// Enabled re-runs queries whenever the records file changes.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Debounce is the quiet period before a change triggers a reload.
	// Default: 100ms
	Debounce time.Duration `yaml:"debounce"`

	// Schedule re-runs queries on a cron schedule ("*/5 * * * *" or
	// "@every 30s"). Works with every source. Empty disables it.
	Schedule string `yaml:"schedule"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging configures structured logging.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics configures Prometheus metrics.
	Metrics MetricsConfig `yaml:"metrics"`

	// Tracing configures OpenTelemetry spans around query runs.
	Tracing TracingConfig `yaml:"tracing"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level to emit.
	// Options: "debug", "info", "warn", "error"
	// Default: "warn"
	Level string `yaml:"level"`

	// Format controls the log output format.
	// Options: "json", "text", "console"
	// Default: "text"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log entries.
	// Default: false
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether evaluation metrics are collected.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Address is the listen address for the metrics endpoint in watch mode.
	// Empty disables the endpoint.
	Address string `yaml:"address"`

	// Path is the HTTP path for the metrics endpoint.
	// Default: "/metrics"
	Path string `yaml:"path"`

	// Namespace is the metric name prefix.
	// Default: "sieve"
	Namespace string `yaml:"namespace"`

	// Subsystem is the metric subsystem name.
	// Default: "criteria"
	Subsystem string `yaml:"subsystem"`

	// DurationBuckets defines histogram buckets for evaluation duration (seconds).
	// Default: exponential from 1µs to ~16ms
	DurationBuckets []float64 `yaml:"duration_buckets"`
}

// TracingConfig contains OpenTelemetry tracing configuration.
type TracingConfig struct {
	// Enabled turns on span export.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Exporter is the span exporter.
	// Options: "otlp"
	// Default: "otlp"
	Exporter string `yaml:"exporter"`

	// Endpoint is the OTLP gRPC collector address (host:port).
	// Default: "localhost:4317"
	Endpoint string `yaml:"endpoint"`

	// Insecure disables TLS on the collector connection.
	// Default: false
	Insecure bool `yaml:"insecure"`

	// Timeout bounds each export call.
	// Default: 10s
	Timeout time.Duration `yaml:"timeout"`

	// Sampler is the sampling strategy.
	// Options: "always", "never", "ratio"
	// Default: "always"
	Sampler string `yaml:"sampler"`

	// SampleRatio is the fraction of traces kept by the "ratio" sampler.
	// Default: 1.0
	SampleRatio float64 `yaml:"sample_ratio"`

	// ServiceName is reported as the service.name resource attribute.
	// Default: "sieve"
	ServiceName string `yaml:"service_name"`
}
