package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"cvpage/internal/domain"
	"cvpage/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondRequestError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondRequestError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, httputil.ErrBodyTooLarge):
		httputil.RespondRequestError(w, r, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to write
		logger.Debug("request canceled", "path", r.URL.Path)
	default:
		logger.Error("request failed",
			"path", r.URL.Path,
			"request_id", httputil.GetRequestID(r),
			"error", err,
		)
		httputil.RespondRequestError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
