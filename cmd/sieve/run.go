package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"mercator-hq/sieve/pkg/cli"
	"mercator-hq/sieve/pkg/config"
	"mercator-hq/sieve/pkg/criteria"
	"mercator-hq/sieve/pkg/report"
	"mercator-hq/sieve/pkg/source"
	"mercator-hq/sieve/pkg/telemetry/health"
	"mercator-hq/sieve/pkg/telemetry/metrics"
	"mercator-hq/sieve/pkg/telemetry/tracing"
)

const shutdownTimeout = 5 * time.Second

var runFlags struct {
	records     string
	sqlite      string
	table       string
	driver      string
	queries     []string
	format      string
	maxDepth    int
	watch       bool
	schedule    string
	metricsAddr string
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run built-in queries over a record source",
	Long: `Load records, evaluate the selected built-in queries and print the matches.

Records come from the configured source unless --records or --sqlite is
given. Without --query every built-in query runs in its listed order.

With --watch (file source only) or --schedule the queries re-run after each
records change or on the cron schedule until SIGINT/SIGTERM. While running
that way --metrics-addr serves Prometheus metrics and health probes.

Examples:
  # All queries over a YAML file
  sieve run --records people.yaml

  # Two queries over a SQLite table as CSV
  sieve run --sqlite people.db --table staff -q single -q female --format csv

  # Re-run every five minutes
  sieve run --sqlite people.db --schedule "*/5 * * * *" --metrics-addr :9090`,
	Args: cobra.NoArgs,
	RunE: runQueries,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.records, "records", "r", "", "YAML or JSON records file")
	runCmd.Flags().StringVar(&runFlags.sqlite, "sqlite", "", "SQLite database to read records from")
	runCmd.Flags().StringVar(&runFlags.table, "table", "", "SQLite table name (default \"people\")")
	runCmd.Flags().StringVar(&runFlags.driver, "driver", "", "SQLite driver: sqlite (pure Go) or sqlite3 (cgo)")
	runCmd.Flags().StringArrayVarP(&runFlags.queries, "query", "q", nil, "built-in query to run (repeatable)")
	runCmd.Flags().StringVarP(&runFlags.format, "format", "f", "", "output format (text, json, csv)")
	runCmd.Flags().IntVar(&runFlags.maxDepth, "max-depth", -1, "reject criteria deeper than this (0 disables)")
	runCmd.Flags().BoolVarP(&runFlags.watch, "watch", "w", false, "re-run when the records file changes")
	runCmd.Flags().StringVar(&runFlags.schedule, "schedule", "", "re-run on a cron schedule (e.g. \"@every 30s\")")
	runCmd.Flags().StringVar(&runFlags.metricsAddr, "metrics-addr", "", "serve metrics and health probes on this address")

	runCmd.MarkFlagsMutuallyExclusive("records", "sqlite")
}

// applyRunFlags overrides cfg with the flags that were set.
func applyRunFlags(cfg *config.Config) {
	if runFlags.records != "" {
		cfg.Records.Source = "file"
		cfg.Records.FilePath = runFlags.records
	}
	if runFlags.sqlite != "" {
		cfg.Records.Source = "sqlite"
		cfg.Records.SQLite.Path = runFlags.sqlite
	}
	if runFlags.table != "" {
		cfg.Records.SQLite.Table = runFlags.table
	}
	if runFlags.driver != "" {
		cfg.Records.SQLite.Driver = runFlags.driver
	}
	if len(runFlags.queries) > 0 {
		cfg.Evaluation.Queries = runFlags.queries
	}
	if runFlags.format != "" {
		cfg.Output.Format = runFlags.format
	}
	if runFlags.maxDepth >= 0 {
		cfg.Evaluation.MaxDepth = runFlags.maxDepth
	}
	if runFlags.watch {
		cfg.Watch.Enabled = true
	}
	if runFlags.schedule != "" {
		cfg.Watch.Schedule = runFlags.schedule
	}
	if runFlags.metricsAddr != "" {
		cfg.Telemetry.Metrics.Address = runFlags.metricsAddr
	}
}

func runQueries(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	applyRunFlags(cfg)
	if err := config.Validate(cfg); err != nil {
		return joinConfigErrors(err)
	}
	config.SetConfig(cfg)

	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	tracer, err := tracing.New(&cfg.Telemetry.Tracing, Version)
	if err != nil {
		return cli.NewCommandError("run", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := tracer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("tracer shutdown failed", "error", err)
		}
	}()

	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, prometheus.NewRegistry())

	p, err := newPipeline(cfg, logger.Slog(), tracer, collector)
	if err != nil {
		return err
	}
	p.out = cmd.OutOrStdout()

	if !cfg.Watch.Enabled && cfg.Watch.Schedule == "" {
		if err := p.once(ctx); err != nil {
			return cli.NewCommandError("run", err)
		}
		return nil
	}

	return watchLoop(ctx, cfg, p, collector, logger.Slog())
}

// newPipeline wires the record source, evaluator, runner and formatter
// selected by cfg.
func newPipeline(cfg *config.Config, logger *slog.Logger, tracer *tracing.Tracer, collector *metrics.Collector) (*pipeline, error) {
	format, err := cli.ParseOutputFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	queries, err := report.Select(cfg.Evaluation.Queries)
	if err != nil {
		return nil, cli.NewConfigError("evaluation.queries", err.Error())
	}

	src, err := source.New(cfg.Records, logger)
	if err != nil {
		return nil, cli.NewConfigError("records", err.Error())
	}

	evaluator := criteria.NewEvaluator(logger,
		&criteria.EvaluatorConfig{MaxDepth: cfg.Evaluation.MaxDepth},
		criteria.WithRecorder(collector),
	)

	return &pipeline{
		source:    src,
		runner:    report.NewRunner(evaluator, report.WithTracer(tracer), report.WithLogger(logger)),
		queries:   queries,
		formatter: cli.NewFormatter(format),
		recorder:  collector,
		logger:    logger,
	}, nil
}

// watchLoop runs the pipeline once, then again on every records change or
// scheduled tick until the process is signalled.
func watchLoop(parent context.Context, cfg *config.Config, p *pipeline, collector *metrics.Collector, logger *slog.Logger) error {
	ctx, stop := cli.SetupSignalHandler(parent)
	defer stop()

	if err := p.once(ctx); err != nil {
		return cli.NewCommandError("run", err)
	}

	reload := func() error {
		if err := p.once(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		return nil
	}

	if addr := cfg.Telemetry.Metrics.Address; addr != "" {
		srv := newTelemetryServer(addr, cfg.Telemetry.Metrics.Path, collector, p)
		go func() {
			logger.Info("telemetry server listening", "address", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("telemetry server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("telemetry server shutdown failed", "error", err)
			}
		}()
	}

	if cfg.Watch.Schedule != "" {
		scheduler, err := source.NewScheduler(cfg.Watch.Schedule, logger)
		if err != nil {
			return cli.NewConfigError("watch.schedule", err.Error())
		}
		if err := scheduler.Start(ctx, reload); err != nil {
			return cli.NewCommandError("run", err)
		}
		defer scheduler.Stop()
		logger.Debug("next scheduled run", "at", scheduler.NextRun())
	}

	if cfg.Watch.Enabled {
		watcher, err := source.NewFileWatcher(cfg.Records.FilePath, cfg.Watch.Debounce, logger)
		if err != nil {
			return cli.NewCommandError("run", err)
		}
		defer watcher.Stop()

		// Watch returns once ctx is cancelled.
		if err := watcher.Watch(ctx, reload); err != nil {
			return cli.NewCommandError("run", err)
		}
	} else {
		<-ctx.Done()
	}

	logger.Info("shutting down", "reason", context.Cause(ctx))
	return nil
}

// newTelemetryServer serves metrics on metricsPath and the health probes.
// Readiness reflects the most recent pipeline pass.
func newTelemetryServer(addr, metricsPath string, collector *metrics.Collector, p *pipeline) *http.Server {
	checker := health.New(0)
	checker.RegisterCheck("records", p.check)

	mux := http.NewServeMux()
	mux.Handle(metricsPath, collector.Handler())
	health.Register(mux, checker, health.VersionInfo{
		Version:   Version,
		Commit:    GitCommit,
		BuildTime: BuildDate,
	})

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
