package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"cvpage/internal/httputil"
)

// maxRequestIDLength bounds client-supplied IDs before they reach the logs
const maxRequestIDLength = 128

// RequestID tags each request with an ID, reusing a well-formed
// X-Request-ID from the client when present.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(httputil.RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLength {
				id = uuid.NewString()
			}

			w.Header().Set(httputil.RequestIDHeader, id)
			next.ServeHTTP(w, httputil.WithRequestID(r, id))
		})
	}
}
