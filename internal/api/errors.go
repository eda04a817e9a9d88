package api

import (
	"errors"
	"net/http"

	"github.com/spendwise/advisor-api/internal/batch"
	"github.com/spendwise/advisor-api/internal/daterange"
	"github.com/spendwise/advisor-api/internal/recommend"
	"github.com/spendwise/advisor-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes based on
// the error type, never on message inspection.
func MapErrorToStatusCode(err error) int {
	switch {
	// Validation errors
	case errors.Is(err, daterange.ErrInvalidRange),
		errors.Is(err, recommend.ErrUnknownTaskType):
		return http.StatusBadRequest

	// Not found errors
	case store.IsNotFoundError(err),
		errors.Is(err, batch.ErrJobNotFound):
		return http.StatusNotFound

	// No transactional evidence for a data-dependent task
	case errors.Is(err, recommend.ErrNoData):
		return http.StatusUnprocessableEntity

	// Generative service failures (includes empty responses)
	case errors.Is(err, recommend.ErrUpstream):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the
// error so internal detail never leaks to clients.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, daterange.ErrInvalidRange):
		return "Invalid date range"

	case errors.Is(err, recommend.ErrUnknownTaskType):
		return "Unknown task type"

	case errors.Is(err, batch.ErrJobNotFound):
		return "Batch job not found"

	case store.IsNotFoundError(err):
		return "Entity not found"

	case errors.Is(err, recommend.ErrNoData):
		return "No transaction data available for the requested period"

	case errors.Is(err, recommend.ErrUpstream):
		return "Recommendation generation is temporarily unavailable"

	default:
		return "An unexpected error occurred"
	}
}
