package controllers

import (
	"log/slog"
	"net/http"

	"weddinginvite/internal/delivery/http/helpers"
	"weddinginvite/internal/domain"
)

// writeError writes err as a JSON error. Failures that are not the caller's
// fault are logged first.
func writeError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch domain.KindOf(err) {
	case domain.KindNotFound, domain.KindValidation, domain.KindUnauthorized:
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}
	helpers.WriteDomainError(w, err)
}
