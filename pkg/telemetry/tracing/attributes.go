package tracing

import "go.opentelemetry.io/otel/attribute"

// Span attribute keys.
const (
	AttrSession       = "sieve.session"
	AttrQueries       = "sieve.queries"
	AttrQuery         = "sieve.query"
	AttrCriteria      = "sieve.criteria"
	AttrCriteriaKind  = "sieve.criteria.kind"
	AttrCriteriaDepth = "sieve.criteria.depth"
	AttrInput         = "sieve.records.input"
	AttrMatched       = "sieve.records.matched"
)

// QueryAttributes describes a query before it is evaluated.
func QueryAttributes(query, criteria, kind string, depth int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(AttrQuery, query),
		attribute.String(AttrCriteria, criteria),
		attribute.String(AttrCriteriaKind, kind),
		attribute.Int(AttrCriteriaDepth, depth),
	}
}

// ResultAttributes describes an evaluation result.
func ResultAttributes(input, matched int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int(AttrInput, input),
		attribute.Int(AttrMatched, matched),
	}
}

// StoreAttributes describes a run: the store it reads and how many queries it evaluates.
func StoreAttributes(session string, records, queries int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(AttrSession, session),
		attribute.Int(AttrInput, records),
		attribute.Int(AttrQueries, queries),
	}
}
