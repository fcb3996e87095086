package http

import (
	"errors"
	"net/http"

	"multilingual-support/internal/support"
)

var errInvalidBody = errors.New("request body must be a JSON object with a text field")

// mapError translates use-case errors into an HTTP status. Anything that is
// not a validation error is reported as a generic internal failure.
func (h *handler) mapError(err error) (int, bool) {
	switch {
	case errors.Is(err, support.ErrEmptyQuery),
		errors.Is(err, support.ErrQueryTooLong),
		errors.Is(err, errInvalidBody):
		return http.StatusBadRequest, true
	default:
		return http.StatusInternalServerError, false
	}
}
