package report

import (
	"errors"
	"fmt"

	"mercator-hq/sieve/pkg/criteria"
)

// ErrUnknownQuery is returned for a query name with no built-in definition.
var ErrUnknownQuery = errors.New("unknown query")

// Query is a named criteria tree with a display title.
type Query struct {
	Name     string
	Title    string
	Criteria criteria.Criteria
}

// DemoQueries returns the built-in queries in display order.
func DemoQueries() []Query {
	return []Query{
		{Name: "male", Title: "Males", Criteria: criteria.Male()},
		{Name: "female", Title: "Females", Criteria: criteria.Female()},
		{Name: "single", Title: "Single people", Criteria: criteria.Single()},
		{Name: "single-male", Title: "Single Males", Criteria: criteria.And(criteria.Male(), criteria.Single())},
		{Name: "single-or-female", Title: "Single or Female", Criteria: criteria.Or(criteria.Female(), criteria.Single())},
	}
}

// Lookup returns the built-in query called name.
func Lookup(name string) (Query, error) {
	for _, q := range DemoQueries() {
		if q.Name == name {
			return q, nil
		}
	}
	return Query{}, fmt.Errorf("%w: %q", ErrUnknownQuery, name)
}

// Select resolves names in the given order. No names selects every
// built-in query.
func Select(names []string) ([]Query, error) {
	if len(names) == 0 {
		return DemoQueries(), nil
	}

	queries := make([]Query, 0, len(names))
	for _, name := range names {
		q, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}
	return queries, nil
}
