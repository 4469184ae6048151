// Package tracing provides OpenTelemetry tracing for sieve.
//
// A run opens one span per query. Each span carries the query name, the
// criteria tree in text form, the root kind and depth, and the input and
// matched record counts. Spans are exported over OTLP gRPC.
//
// # Sampling Strategies
//
//   - always: Sample all traces
//   - never: Sample no traces
//   - ratio: Sample a fraction of traces by trace ID
//
// All samplers are parent-based.
//
// # Usage
//
//	tracer, err := tracing.New(&cfg.Telemetry.Tracing, version)
//	if err != nil {
//	    return err
//	}
//	defer tracer.Shutdown(context.Background())
//
//	ctx, span := tracer.Start(ctx, "sieve.query",
//	    trace.WithAttributes(tracing.QueryAttributes("males", "male", "male", 1)...))
//	defer span.End()
//
// When tracing is disabled, Start returns noop spans.
package tracing
