package helpers

import (
	"net/http"

	"weddinginvite/internal/domain"
)

// StatusFor returns the HTTP status and error code for err's domain.Kind.
func StatusFor(err error) (int, string) {
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		return http.StatusNotFound, ErrCodeNotFound
	case domain.KindUnauthorized:
		return http.StatusUnauthorized, ErrCodeUnauthorized
	case domain.KindValidation:
		return http.StatusBadRequest, ErrCodeBadRequest
	case domain.KindUpstream:
		return http.StatusBadGateway, ErrCodeUpstream
	default:
		return http.StatusInternalServerError, ErrCodeInternalError
	}
}

// WriteDomainError writes err as a JSON error response. Not-found, unauthorized
// and validation errors carry their caller-facing message; upstream and
// unknown failures do not expose their cause.
func WriteDomainError(w http.ResponseWriter, err error) {
	status, code := StatusFor(err)
	var msg string
	switch status {
	case http.StatusBadGateway:
		msg = "upstream service failure"
		if op := domain.MessageOf(err); op != "" {
			msg = op + " failed"
		}
	case http.StatusInternalServerError:
		msg = "internal server error"
	default:
		msg = domain.MessageOf(err)
		if msg == "" {
			msg = http.StatusText(status)
		}
	}
	WriteJSONError(w, status, code, msg)
}
