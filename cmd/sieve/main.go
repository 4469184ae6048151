// Sieve evaluates composable gender and marital-status criteria over
// person records.
//
// Records come from the built-in demo set, a YAML or JSON file, or a
// read-only SQLite table. Each selected query is evaluated against every
// record and the matches are printed as text, JSON or CSV.
//
// Usage:
//
//	# Print the classic demo report
//	sieve demo
//
//	# Run every built-in query over a records file
//	sieve run --records people.yaml
//
//	# Run two queries over a SQLite table and emit JSON
//	sieve run --sqlite people.db --table staff --query single-male --query female --format json
//
//	# Re-run whenever the records file changes, serving metrics on :9090
//	sieve run --records people.yaml --watch --metrics-addr :9090
//
//	# List the built-in queries
//	sieve queries
package main

func main() {
	Execute()
}
