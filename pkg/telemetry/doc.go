// Package telemetry groups sieve's observability packages.
//
//   - logging: slog-based structured logging
//   - metrics: Prometheus evaluation and source metrics
//   - tracing: OpenTelemetry spans per query run
//   - health: liveness and readiness endpoints for watch mode
package telemetry
