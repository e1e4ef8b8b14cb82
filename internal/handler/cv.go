package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"cvpage/internal/config"
	"cvpage/internal/domain"
	"cvpage/internal/domain/services"
	"cvpage/internal/httputil"
)

// CVHandler handles CV page and header HTTP requests
type CVHandler struct {
	cvService services.CVService
	logger    *slog.Logger
}

// NewCVHandler creates a new CV handler
func NewCVHandler(cvService services.CVService, logger *slog.Logger) *CVHandler {
	return &CVHandler{
		cvService: cvService,
		logger:    logger,
	}
}

// GetPage renders the CV page
// GET /{$}
func (h *CVHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.cvService.Page(r.Context())
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondHTML(w, http.StatusOK, page)
}

// GetHeader returns the CV header as JSON
// GET /api/header
func (h *CVHandler) GetHeader(w http.ResponseWriter, r *http.Request) {
	view, err := h.cvService.Header(r.Context())
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, view)
}

// GetHeaderMarkdown returns the CV header as markdown
// GET /cv.md
func (h *CVHandler) GetHeaderMarkdown(w http.ResponseWriter, r *http.Request) {
	markdown, err := h.cvService.HeaderMarkdown(r.Context())
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondMarkdown(w, http.StatusOK, markdown)
}

// RenderHeader renders a header fragment from metadata in the request body
// POST /api/header/render
func (h *CVHandler) RenderHeader(w http.ResponseWriter, r *http.Request) {
	var req services.RenderHeaderRequest
	if err := httputil.ParseJSON(w, r, &req, config.MaxRequestBodySize); err != nil {
		handleError(w, r, h.logger, wrapParseError(err))
		return
	}

	fragment, err := h.cvService.RenderHeader(r.Context(), &req)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondHTML(w, http.StatusOK, []byte(fragment))
}

// HealthCheck reports liveness
// GET /health
func (h *CVHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func wrapParseError(err error) error {
	if errors.Is(err, httputil.ErrBodyTooLarge) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrValidation, err)
}
