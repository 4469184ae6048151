package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"mercator-hq/sieve/pkg/cli"
	"mercator-hq/sieve/pkg/config"
	"mercator-hq/sieve/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sieve",
	Short: "Sieve - criteria evaluation over person records",
	Long: `Sieve filters person records with composable criteria.

Criteria select by gender (male, female) and marital status (single) and
combine with AND and OR. Built-in queries run against records loaded from
the demo set, a YAML/JSON file or a SQLite table.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "sieve.yaml", "config file path (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// loadConfig loads the optional config file with environment overrides and
// stores it as the process configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOptional(cfgFile)
	if err != nil {
		if len(cli.ConfigErrors(err)) > 0 {
			return nil, joinConfigErrors(err)
		}
		return nil, cli.NewConfigError(cfgFile, err.Error())
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}
	config.SetConfig(cfg)
	return cfg, nil
}

// joinConfigErrors flattens a validation failure into one ConfigError per
// invalid field. Other errors are returned unchanged.
func joinConfigErrors(err error) error {
	errs := cli.ConfigErrors(err)
	if len(errs) == 0 {
		return err
	}
	joined := make([]error, len(errs))
	for i, e := range errs {
		joined[i] = e
	}
	return errors.Join(joined...)
}

// newLogger builds the process logger and installs it as the slog default.
func newLogger(cfg *config.Config, w io.Writer) (*logging.Logger, error) {
	logger, err := logging.New(logging.FromConfig(cfg.Telemetry.Logging, w))
	if err != nil {
		return nil, cli.NewConfigError("telemetry.logging", err.Error())
	}
	slog.SetDefault(logger.Slog())
	return logger, nil
}
