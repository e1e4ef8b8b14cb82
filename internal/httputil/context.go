package httputil

import (
	"context"
	"net/http"
)

// Context key type to avoid collisions
type contextKey string

const (
	requestIDKey contextKey = "requestID"
)

// RequestIDHeader is echoed back on every response
const RequestIDHeader = "X-Request-ID"

// WithRequestID adds the request ID to the request context
func WithRequestID(r *http.Request, requestID string) *http.Request {
	ctx := context.WithValue(r.Context(), requestIDKey, requestID)
	return r.WithContext(ctx)
}

// GetRequestID retrieves the request ID from context, returns empty string if not found
func GetRequestID(r *http.Request) string {
	return RequestIDFromContext(r.Context())
}

// RequestIDFromContext retrieves the request ID from a context
func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDKey).(string)
	return requestID
}
