package http

import (
	"errors"
	"net/http"

	"agrotrace/internal/pkg/errs"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusFromError maps domain error sentinels onto HTTP status codes.
// Ordering matters: Unauthorized and NotFound are checked before the
// conflict family because wrapped errors may match more than one sentinel.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrSchedulingConflict),
		errors.Is(err, errs.ErrResourceUnavailable):
		return http.StatusConflict
	case errors.Is(err, errs.ErrMissingPrerequisite),
		errors.Is(err, errs.ErrCodeMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
