// Package health serves liveness, readiness and version endpoints next to
// the metrics endpoint while sieve watches a records file.
//
// Readiness fails while the most recent records load failed, so a scraper
// can tell a stale result set from a fresh one.
//
//	checker := health.New(time.Second)
//	checker.RegisterCheck("records", func(ctx context.Context) error {
//	    return lastLoadErr()
//	})
//	health.Register(mux, checker, health.VersionInfo{Version: version})
package health
