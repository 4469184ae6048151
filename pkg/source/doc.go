// Package source loads person records for a store.
//
// A Source yields records in a stable order; callers wrap the result in a
// person.Store. Every load produces fresh records, so a reload builds a new
// store instead of mutating the old one.
//
// # Sources
//
//   - MemorySource: literal records, including the six demo records
//   - FileSource: a YAML or JSON file with a top-level "people" list
//   - SQLiteSource: read-only import from an existing SQLite table
//
// New selects one from config.RecordsConfig:
//
//	src, err := source.New(cfg.Records, logger)
//	records, err := src.Load(ctx)
//	store := person.NewStore(records...)
//
// # Reloading
//
// FileWatcher re-runs a callback when the records file changes, after a
// debounce period. Scheduler re-runs a callback on a cron schedule, which
// also covers sources that cannot be watched.
package source
