// Package logging provides structured logging for sieve.
//
// The package wraps log/slog with:
//   - JSON, text and console (no timestamp) formats
//   - Configurable levels (debug, info, warn, error)
//   - Context helpers for the store session ID and query name
//
// # Usage
//
//	logger, err := logging.New(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	ctx := logging.WithSession(ctx, store.ID())
//	logger.InfoContext(ctx, "records loaded", "count", store.Len())
//
// Components that take a *slog.Logger receive logger.Slog().
// Logs go to stderr by default so that stdout carries only results.
package logging
