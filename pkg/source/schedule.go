package source

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs a reload callback on a cron schedule. It accepts standard
// five-field expressions and descriptors such as "@every 30s".
type Scheduler struct {
	spec   string
	cron   *cron.Cron
	logger *slog.Logger

	mu      sync.Mutex
	running bool
	done    chan struct{}

	// jobMu guards the callback separately from mu, which Stop holds while
	// waiting for a running job.
	jobMu    sync.Mutex
	ctx      context.Context
	onReload func() error
}

// NewScheduler validates spec and creates a stopped scheduler.
func NewScheduler(spec string, logger *slog.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Scheduler{
		spec: spec,
		// Overlapping runs are skipped rather than queued.
		cron:   cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger: logger,
	}
	if _, err := s.cron.AddFunc(spec, s.reload); err != nil {
		return nil, fmt.Errorf("invalid cron schedule %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) reload() {
	s.jobMu.Lock()
	ctx, onReload := s.ctx, s.onReload
	s.jobMu.Unlock()

	if onReload == nil || ctx.Err() != nil {
		return
	}
	if err := onReload(); err != nil {
		s.logger.Error("scheduled reload failed",
			"schedule", s.spec,
			"error", err,
		)
	}
}

// Start schedules onReload and returns. The scheduler stops when ctx is
// cancelled or Stop is called. A stopped scheduler may be started again.
func (s *Scheduler) Start(ctx context.Context, onReload func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrWatcherRunning
	}

	s.jobMu.Lock()
	s.ctx, s.onReload = ctx, onReload
	s.jobMu.Unlock()

	done := make(chan struct{})
	s.done = done
	s.cron.Start()
	s.running = true

	s.logger.Info("reload scheduler started", "schedule", s.spec)

	go func() {
		select {
		case <-ctx.Done():
			s.stop(done)
		case <-done:
		}
	}()

	return nil
}

// Stop stops the scheduler and waits for a running reload to finish.
func (s *Scheduler) Stop() {
	s.stop(nil)
}

// stop ends the run identified by done, or the current run when done is nil.
func (s *Scheduler) stop(done chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || (done != nil && done != s.done) {
		return
	}

	close(s.done)
	<-s.cron.Stop().Done()
	s.running = false
	s.logger.Info("reload scheduler stopped")
}

// Running reports whether the scheduler is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// NextRun returns the next scheduled reload, or the zero time when stopped.
func (s *Scheduler) NextRun() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.cron.Entries()
	if !s.running || len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}
