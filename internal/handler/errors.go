package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"lawclerk/internal/domain"
	"lawclerk/internal/httputil"
)

// handleError maps domain errors to HTTP responses. Provider errors
// mirror the upstream status; anything unrecognized becomes a 500 with a
// generic message plus the underlying message for diagnostics.
func handleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		status := httpErr.StatusCode()

		var provErr *domain.ProviderError
		if errors.As(err, &provErr) {
			logger.Warn("provider call failed",
				"provider", provErr.Provider,
				"status", provErr.Status,
			)
			httputil.RespondError(w, status, "upstream provider error", provErr.Body)
			return
		}

		httputil.RespondError(w, status, httpErr.Error(), "")
		return
	}

	logger.Error("unexpected error", "error", err)
	httputil.RespondError(w, http.StatusInternalServerError, "internal server error", err.Error())
}
