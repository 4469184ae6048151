package criteria

import (
	"fmt"
	"log/slog"
	"time"

	"mercator-hq/sieve/pkg/person"
)

// EvaluatorConfig contains configuration for the Evaluator.
type EvaluatorConfig struct {
	// MaxDepth rejects criteria trees higher than this many levels.
	// Zero disables the check.
	// Default: 0.
	MaxDepth int
}

// DefaultEvaluatorConfig returns the default evaluator configuration.
func DefaultEvaluatorConfig() *EvaluatorConfig {
	return &EvaluatorConfig{}
}

// Validate validates the evaluator configuration.
func (c *EvaluatorConfig) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must be >= 0, got %d", c.MaxDepth)
	}
	return nil
}

// Recorder receives one observation per evaluation.
type Recorder interface {
	RecordEvaluation(kind Kind, duration time.Duration, matched int)
	RecordDepthRejection(depth int)
}

type nopRecorder struct{}

func (nopRecorder) RecordEvaluation(Kind, time.Duration, int) {}
func (nopRecorder) RecordDepthRejection(int)                  {}

// Evaluator wraps Filter with a depth guard, logging and metrics.
// It keeps no state between calls and is safe for concurrent use.
type Evaluator struct {
	logger   *slog.Logger
	maxDepth int
	recorder Recorder
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(e *Evaluator) {
		if r != nil {
			e.recorder = r
		}
	}
}

// NewEvaluator creates an evaluator. A nil logger uses slog.Default and a
// nil config uses DefaultEvaluatorConfig.
func NewEvaluator(logger *slog.Logger, config *EvaluatorConfig, opts ...Option) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	if config == nil {
		config = DefaultEvaluatorConfig()
	}
	e := &Evaluator{
		logger:   logger,
		maxDepth: config.MaxDepth,
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate returns the records in "in" that satisfy c.
// The only error is a *DepthError when a depth limit is configured.
func (e *Evaluator) Evaluate(c Criteria, in person.View) (person.View, error) {
	if e.maxDepth > 0 {
		if depth := Depth(c); depth > e.maxDepth {
			e.recorder.RecordDepthRejection(depth)
			e.logger.Warn("criteria rejected",
				"criteria", String(c),
				"depth", depth,
				"max_depth", e.maxDepth,
			)
			return person.View{}, &DepthError{Depth: depth, MaxDepth: e.maxDepth}
		}
	}

	start := time.Now()
	out := Filter(c, in)
	elapsed := time.Since(start)

	kind := KindOf(c)
	e.recorder.RecordEvaluation(kind, elapsed, out.Len())

	e.logger.Debug("criteria evaluated",
		"criteria", String(c),
		"kind", kind,
		"input", in.Len(),
		"matched", out.Len(),
		"duration", elapsed,
	)

	return out, nil
}
