package config

import "time"

// Default values for configuration fields.
const (
	// Records defaults
	DefaultRecordsSource      = "demo"
	DefaultSQLiteTable        = "people"
	DefaultSQLiteDriver       = "sqlite"
	DefaultSQLiteBusyTimeout  = 5 * time.Second
	DefaultEvaluationMaxDepth = 0

	// Output defaults
	DefaultOutputFormat = "text"

	// Watch defaults
	DefaultWatchEnabled  = false
	DefaultWatchDebounce = 100 * time.Millisecond

	// Telemetry defaults
	DefaultLogLevel         = "warn"
	DefaultLogFormat        = "text"
	DefaultLogAddSource     = false
	DefaultMetricsEnabled   = true
	DefaultMetricsPath      = "/metrics"
	DefaultMetricsNamespace = "sieve"
	DefaultMetricsSubsystem = "criteria"
	DefaultTracingEnabled   = false
	DefaultTracingExporter  = "otlp"
	DefaultTracingEndpoint  = "localhost:4317"
	DefaultTracingTimeout   = 10 * time.Second
	DefaultTracingSampler   = "always"
	DefaultTracingRatio     = 1.0
	DefaultServiceName      = "sieve"
)

// DefaultDurationBuckets spans 1µs to ~16ms. Evaluations over in-memory
// stores are expected well under a millisecond.
var DefaultDurationBuckets = []float64{
	0.000001, 0.000002, 0.000004, 0.000008, 0.000016, 0.000032, 0.000064,
	0.000128, 0.000256, 0.000512, 0.001024, 0.002048, 0.004096, 0.008192, 0.016384,
}

// Default returns a configuration populated with every default value.
// LoadConfig decodes YAML on top of it, so boolean defaults survive fields
// the file omits.
func Default() *Config {
	cfg := &Config{
		Watch: WatchConfig{
			Enabled: DefaultWatchEnabled,
		},
		Telemetry: TelemetryConfig{
			Logging: LoggingConfig{
				AddSource: DefaultLogAddSource,
			},
			Metrics: MetricsConfig{
				Enabled: DefaultMetricsEnabled,
			},
			Tracing: TracingConfig{
				Enabled:     DefaultTracingEnabled,
				SampleRatio: DefaultTracingRatio,
			},
		},
		Evaluation: EvaluationConfig{
			MaxDepth: DefaultEvaluationMaxDepth,
		},
	}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills zero-valued fields with their defaults.
// Fields that already hold a value are left untouched.
func ApplyDefaults(cfg *Config) {
	// Records defaults
	if cfg.Records.Source == "" {
		cfg.Records.Source = DefaultRecordsSource
	}
	if cfg.Records.SQLite.Table == "" {
		cfg.Records.SQLite.Table = DefaultSQLiteTable
	}
	if cfg.Records.SQLite.Driver == "" {
		cfg.Records.SQLite.Driver = DefaultSQLiteDriver
	}
	if cfg.Records.SQLite.BusyTimeout == 0 {
		cfg.Records.SQLite.BusyTimeout = DefaultSQLiteBusyTimeout
	}

	// Output defaults
	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultOutputFormat
	}

	// Watch defaults
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = DefaultWatchDebounce
	}

	// Telemetry defaults
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLogLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLogFormat
	}
	if cfg.Telemetry.Metrics.Path == "" {
		cfg.Telemetry.Metrics.Path = DefaultMetricsPath
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Telemetry.Metrics.Subsystem == "" {
		cfg.Telemetry.Metrics.Subsystem = DefaultMetricsSubsystem
	}
	if len(cfg.Telemetry.Metrics.DurationBuckets) == 0 {
		cfg.Telemetry.Metrics.DurationBuckets = append([]float64(nil), DefaultDurationBuckets...)
	}
	if cfg.Telemetry.Tracing.Exporter == "" {
		cfg.Telemetry.Tracing.Exporter = DefaultTracingExporter
	}
	if cfg.Telemetry.Tracing.Endpoint == "" {
		cfg.Telemetry.Tracing.Endpoint = DefaultTracingEndpoint
	}
	if cfg.Telemetry.Tracing.Timeout == 0 {
		cfg.Telemetry.Tracing.Timeout = DefaultTracingTimeout
	}
	if cfg.Telemetry.Tracing.Sampler == "" {
		cfg.Telemetry.Tracing.Sampler = DefaultTracingSampler
	}
	if cfg.Telemetry.Tracing.ServiceName == "" {
		cfg.Telemetry.Tracing.ServiceName = DefaultServiceName
	}
}
