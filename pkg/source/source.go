package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mercator-hq/sieve/pkg/config"
	"mercator-hq/sieve/pkg/person"
)

// Source loads person records.
type Source interface {
	// Name identifies the source kind in logs and metrics ("demo", "file", "sqlite").
	Name() string

	// Load returns the records in source order.
	Load(ctx context.Context) ([]person.Person, error)
}

// ErrUnknownSource is returned by New for an unrecognised source type.
var ErrUnknownSource = errors.New("unknown record source")

// SourceError reports a failed source operation.
type SourceError struct {
	Source    string // Source kind ("file", "sqlite")
	Operation string // Operation that failed ("open", "read", "decode", "query", "scan")
	Cause     error  // Underlying error
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return fmt.Sprintf("source error [source=%s, operation=%s]: %v", e.Source, e.Operation, e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *SourceError) Unwrap() error {
	return e.Cause
}

func newSourceError(source, operation string, cause error) *SourceError {
	return &SourceError{Source: source, Operation: operation, Cause: cause}
}

// New creates the source selected by cfg. A nil logger uses slog.Default.
func New(cfg config.RecordsConfig, logger *slog.Logger) (Source, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.Source {
	case "demo", "":
		return NewDemoSource(), nil
	case "file":
		return NewFileSource(cfg.FilePath, logger), nil
	case "sqlite":
		return NewSQLiteSource(SQLiteConfig{
			Path:        cfg.SQLite.Path,
			Table:       cfg.SQLite.Table,
			Driver:      cfg.SQLite.Driver,
			BusyTimeout: cfg.SQLite.BusyTimeout,
		}, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source)
	}
}
