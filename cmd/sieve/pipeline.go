package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"mercator-hq/sieve/pkg/cli"
	"mercator-hq/sieve/pkg/person"
	"mercator-hq/sieve/pkg/report"
	"mercator-hq/sieve/pkg/source"
	"mercator-hq/sieve/pkg/telemetry/logging"
	"mercator-hq/sieve/pkg/telemetry/metrics"
)

// errNotLoaded is reported by the readiness check before the first load.
var errNotLoaded = errors.New("records not loaded yet")

// loadRecorder observes record loads.
type loadRecorder interface {
	RecordLoad(source string, records int, duration time.Duration, err error)
}

var _ loadRecorder = (*metrics.Collector)(nil)

// pipeline loads records, runs the selected queries and renders the report.
// Passes are serialised so that watch and schedule triggers never interleave
// their output.
type pipeline struct {
	source    source.Source
	runner    *report.Runner
	queries   []report.Query
	formatter cli.Formatter
	recorder  loadRecorder
	out       io.Writer
	logger    *slog.Logger

	mu      sync.Mutex
	lastErr error
	loaded  bool
}

// once performs a single load, evaluate and render pass.
func (p *pipeline) once(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.pass(ctx)
	p.lastErr = err
	if err == nil {
		p.loaded = true
	}
	return err
}

func (p *pipeline) pass(ctx context.Context) error {
	start := time.Now()
	records, err := p.source.Load(ctx)
	if p.recorder != nil {
		p.recorder.RecordLoad(p.source.Name(), len(records), time.Since(start), err)
	}
	if err != nil {
		return err
	}

	store := person.NewStore(records...)
	ctx = logging.WithSession(ctx, store.ID())
	p.logger.InfoContext(ctx, "records loaded",
		"session", store.ID(),
		"source", p.source.Name(),
		"count", store.Len(),
		"duration", time.Since(start),
	)

	rep, err := p.runner.Run(ctx, store, p.queries)
	if err != nil {
		return err
	}
	return p.formatter.FormatTo(p.out, rep)
}

// check reports the outcome of the most recent pass for the readiness probe.
func (p *pipeline) check(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.lastErr != nil {
		return p.lastErr
	}
	if !p.loaded {
		return errNotLoaded
	}
	return nil
}
