package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"mercator-hq/sieve/pkg/config"
	"mercator-hq/sieve/pkg/person"

	_ "github.com/mattn/go-sqlite3" // cgo SQLite driver ("sqlite3")
	_ "modernc.org/sqlite"          // pure Go SQLite driver ("sqlite")
)

// SQLiteConfig configures an SQLiteSource.
type SQLiteConfig struct {
	// Path is the database file.
	Path string

	// Table holds name, gender and marital_status text columns.
	// Default: "people"
	Table string

	// Driver is "sqlite" (modernc.org/sqlite) or "sqlite3" (mattn/go-sqlite3).
	// Default: "sqlite"
	Driver string

	// BusyTimeout is how long to wait for locks.
	// Default: 5s
	BusyTimeout time.Duration
}

// SQLiteSource imports records from an existing SQLite database. The
// database is opened read-only; rows are read in rowid order.
type SQLiteSource struct {
	config SQLiteConfig
	logger *slog.Logger
}

// NewSQLiteSource validates cfg and creates the source. The database is
// not opened until Load.
func NewSQLiteSource(cfg SQLiteConfig, logger *slog.Logger) (*SQLiteSource, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Path == "" {
		return nil, errors.New("db path cannot be empty")
	}
	if cfg.Table == "" {
		cfg.Table = config.DefaultSQLiteTable
	}
	if cfg.Driver == "" {
		cfg.Driver = config.DefaultSQLiteDriver
	}
	if cfg.BusyTimeout == 0 {
		cfg.BusyTimeout = config.DefaultSQLiteBusyTimeout
	}
	if !config.ValidIdentifier(cfg.Table) {
		return nil, fmt.Errorf("invalid table name %q", cfg.Table)
	}
	if cfg.Driver != "sqlite" && cfg.Driver != "sqlite3" {
		return nil, fmt.Errorf("unsupported sqlite driver %q", cfg.Driver)
	}

	return &SQLiteSource{config: cfg, logger: logger}, nil
}

// Name returns "sqlite".
func (s *SQLiteSource) Name() string {
	return "sqlite"
}

// dsn builds a read-only connection string for the configured driver. The
// path is escaped so that '?' and '#' stay part of the filename.
func (s *SQLiteSource) dsn() string {
	timeout := s.config.BusyTimeout.Milliseconds()

	params := url.Values{}
	params.Set("mode", "ro")
	if s.config.Driver == "sqlite3" {
		params.Set("_busy_timeout", strconv.FormatInt(timeout, 10))
	} else {
		params.Set("_pragma", fmt.Sprintf("busy_timeout(%d)", timeout))
	}

	u := url.URL{
		Scheme:   "file",
		OmitHost: true,
		Path:     s.config.Path,
		RawQuery: params.Encode(),
	}
	return u.String()
}

// Load reads every row of the table.
func (s *SQLiteSource) Load(ctx context.Context) ([]person.Person, error) {
	db, err := sql.Open(s.config.Driver, s.dsn())
	if err != nil {
		return nil, newSourceError("sqlite", "open", fmt.Errorf("failed to open database: %w", err))
	}
	defer db.Close()

	// The table name is validated as a plain identifier in NewSQLiteSource.
	query := fmt.Sprintf("SELECT name, gender, marital_status FROM %s ORDER BY rowid", s.config.Table)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, newSourceError("sqlite", "query", fmt.Errorf("failed to query table %q: %w", s.config.Table, err))
	}
	defer rows.Close()

	var records []person.Person
	for row := 0; rows.Next(); row++ {
		var entry recordEntry
		if err := rows.Scan(&entry.Name, &entry.Gender, &entry.MaritalStatus); err != nil {
			return nil, newSourceError("sqlite", "scan", fmt.Errorf("row %d: %w", row, err))
		}

		p, err := entry.toPerson()
		if err != nil {
			return nil, newSourceError("sqlite", "decode", fmt.Errorf("row %d: %w", row, err))
		}
		records = append(records, p)
	}
	if err := rows.Err(); err != nil {
		return nil, newSourceError("sqlite", "query", err)
	}

	s.logger.Info("loaded records from sqlite",
		"path", s.config.Path,
		"table", s.config.Table,
		"record_count", len(records),
	)

	return records, nil
}
