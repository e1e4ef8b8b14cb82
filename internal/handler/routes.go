package handler

import (
	"net/http"

	"cvpage/internal/middleware"
)

// RegisterRoutes wires the CV routes onto mux (Go 1.22+ patterns).
// Requests that match no route fall through to static, which serves
// cv.pdf and page assets.
func RegisterRoutes(mux *http.ServeMux, cv *CVHandler, static http.Handler, renderLimit middleware.Middleware) {
	mux.HandleFunc("GET /health", cv.HealthCheck)

	mux.HandleFunc("GET /{$}", cv.GetPage)
	mux.HandleFunc("GET /cv.md", cv.GetHeaderMarkdown)

	mux.HandleFunc("GET /api/header", cv.GetHeader)
	mux.Handle("POST /api/header/render", renderLimit(http.HandlerFunc(cv.RenderHeader)))

	mux.Handle("GET /", static)
}
