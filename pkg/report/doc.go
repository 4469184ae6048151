// Package report runs named criteria queries against a record store and
// renders the results.
//
// The five built-in queries reproduce the classic demo:
//
//	male              Males
//	female            Females
//	single            Single people
//	single-male       Single Males       (male AND single)
//	single-or-female  Single or Female   (female OR single)
//
// A Report renders as text (one titled section per query), JSON, or CSV
// rows via the cli formatters.
package report
