package logging

import "context"

// Context keys for common log fields.
type contextKey string

const (
	// SessionKey is the context key for the record store session ID.
	SessionKey contextKey = "session"

	// QueryKey is the context key for the query being evaluated.
	QueryKey contextKey = "query"
)

// WithSession adds a session identifier to the context.
func WithSession(ctx context.Context, session string) context.Context {
	return context.WithValue(ctx, SessionKey, session)
}

// GetSession retrieves the session identifier from the context.
func GetSession(ctx context.Context) string {
	if session, ok := ctx.Value(SessionKey).(string); ok {
		return session
	}
	return ""
}

// WithQuery adds a query name to the context.
func WithQuery(ctx context.Context, query string) context.Context {
	return context.WithValue(ctx, QueryKey, query)
}

// GetQuery retrieves the query name from the context.
func GetQuery(ctx context.Context) string {
	if query, ok := ctx.Value(QueryKey).(string); ok {
		return query
	}
	return ""
}

// extractContextFields returns the context's log fields as key-value pairs.
func extractContextFields(ctx context.Context) []any {
	var fields []any

	if session := GetSession(ctx); session != "" {
		fields = append(fields, "session", session)
	}
	if query := GetQuery(ctx); query != "" {
		fields = append(fields, "query", query)
	}

	return fields
}
