package report

import (
	"context"
	"fmt"
	"log/slog"

	"mercator-hq/sieve/pkg/criteria"
	"mercator-hq/sieve/pkg/person"
	"mercator-hq/sieve/pkg/telemetry/tracing"

	"go.opentelemetry.io/otel/trace"
)

// Runner evaluates queries against a store.
type Runner struct {
	evaluator *criteria.Evaluator
	tracer    *tracing.Tracer
	logger    *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithTracer opens a span per query.
func WithTracer(t *tracing.Tracer) RunnerOption {
	return func(r *Runner) {
		r.tracer = t
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRunner creates a Runner. A nil evaluator uses criteria defaults.
func NewRunner(evaluator *criteria.Evaluator, opts ...RunnerOption) *Runner {
	r := &Runner{
		evaluator: evaluator,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.evaluator == nil {
		r.evaluator = criteria.NewEvaluator(r.logger, nil)
	}
	return r
}

// Run evaluates every query against all records in store, in order. It
// stops at the first evaluation error or when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, store *person.Store, queries []Query) (rep *Report, err error) {
	if r.tracer != nil {
		var span trace.Span
		ctx, span = r.tracer.Start(ctx, "sieve.run", trace.WithAttributes(
			tracing.StoreAttributes(store.ID(), store.Len(), len(queries))...,
		))
		defer func() {
			tracing.SetStatus(span, err)
			span.End()
		}()
	}

	all := store.All()
	rep = &Report{
		Session:  store.ID(),
		Records:  store.Len(),
		Sections: make([]Section, 0, len(queries)),
	}

	for _, q := range queries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		matched, err := r.runQuery(ctx, q, all)
		if err != nil {
			return nil, fmt.Errorf("query %q: %w", q.Name, err)
		}
		rep.Sections = append(rep.Sections, Section{Query: q, Matched: matched})
	}

	r.logger.Info("queries evaluated",
		"session", rep.Session,
		"records", rep.Records,
		"queries", len(queries),
	)

	return rep, nil
}

func (r *Runner) runQuery(ctx context.Context, q Query, in person.View) (person.View, error) {
	if r.tracer != nil {
		_, span := r.tracer.Start(ctx, "sieve.query", trace.WithAttributes(
			tracing.QueryAttributes(q.Name, criteria.String(q.Criteria), string(criteria.KindOf(q.Criteria)), criteria.Depth(q.Criteria))...,
		))
		defer span.End()

		out, err := r.evaluator.Evaluate(q.Criteria, in)
		if err == nil {
			span.SetAttributes(tracing.ResultAttributes(in.Len(), out.Len())...)
		}
		tracing.SetStatus(span, err)
		return out, err
	}

	return r.evaluator.Evaluate(q.Criteria, in)
}

// Run evaluates queries with a default Runner around evaluator.
func Run(ctx context.Context, evaluator *criteria.Evaluator, store *person.Store, queries []Query) (*Report, error) {
	return NewRunner(evaluator).Run(ctx, store, queries)
}
