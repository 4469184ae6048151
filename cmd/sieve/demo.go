package main

import (
	"github.com/spf13/cobra"
	"mercator-hq/sieve/pkg/config"
	"mercator-hq/sieve/pkg/criteria"
	"mercator-hq/sieve/pkg/person"
	"mercator-hq/sieve/pkg/report"
	"mercator-hq/sieve/pkg/source"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print the built-in demo report",
	Long: `Evaluate the five built-in queries over the six demo records and print
the classic text report. The config file is ignored. Logs go to stderr at
warn level, or debug level with --verbose.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}
	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	store := person.NewStore(source.Demo()...)
	evaluator := criteria.NewEvaluator(logger.Slog(), nil)
	runner := report.NewRunner(evaluator, report.WithLogger(logger.Slog()))

	rep, err := runner.Run(cmd.Context(), store, report.DemoQueries())
	if err != nil {
		return err
	}
	return rep.WriteText(cmd.OutOrStdout())
}
