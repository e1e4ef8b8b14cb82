package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"cvpage/internal/httputil"
)

// RateLimit rejects requests with 429 once the shared token bucket is empty.
// Applied to the render API only; page reads are not limited.
func RateLimit(limiter *rate.Limiter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				httputil.RespondRequestError(w, r, http.StatusTooManyRequests, "render rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
