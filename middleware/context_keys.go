package middleware

type contextKey string

const (
	// UserIDKey holds the subject of the validated token.
	UserIDKey contextKey = "user_id"
	// AuthenticatedKey is true when the request carried a valid token.
	AuthenticatedKey contextKey = "authenticated"
	// RequestIDKey holds the per-request correlation ID.
	RequestIDKey contextKey = "request_id"
)
