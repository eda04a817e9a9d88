package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spendwise/advisor-api/internal/api"
	"github.com/spendwise/advisor-api/internal/batch"
	"github.com/spendwise/advisor-api/internal/daterange"
	"github.com/spendwise/advisor-api/internal/recommend"
	"github.com/spendwise/advisor-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid_range", daterange.ErrInvalidRange, http.StatusBadRequest},
		{"wrapped_invalid_date", fmt.Errorf("context: %w", daterange.ErrInvalidDate), http.StatusBadRequest},
		{"unknown_task_type", recommend.ErrUnknownTaskType, http.StatusBadRequest},
		{"profile_not_found", store.ErrProfileNotFound, http.StatusNotFound},
		{"job_not_found", batch.ErrJobNotFound, http.StatusNotFound},
		{"no_data", recommend.ErrNoData, http.StatusUnprocessableEntity},
		{"upstream", recommend.ErrUpstream, http.StatusBadGateway},
		{"empty_response_maps_like_upstream", recommend.ErrEmptyResponse, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{"nil", nil, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, api.MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Run("never_leaks_internal_detail", func(t *testing.T) {
		err := fmt.Errorf("%w: pq: connection refused on 10.0.0.3", recommend.ErrUpstream)
		msg := api.GetSafeErrorMessage(err)
		assert.NotContains(t, msg, "10.0.0.3")
		assert.Equal(t, "Recommendation generation is temporarily unavailable", msg)
	})

	t.Run("known_errors_get_specific_messages", func(t *testing.T) {
		assert.Equal(t, "Invalid date range", api.GetSafeErrorMessage(daterange.ErrInvalidRange))
		assert.Equal(t, "Unknown task type", api.GetSafeErrorMessage(recommend.ErrUnknownTaskType))
		assert.Equal(t, "Batch job not found", api.GetSafeErrorMessage(batch.ErrJobNotFound))
		assert.Equal(t, "Entity not found", api.GetSafeErrorMessage(store.ErrNotFound))
	})

	t.Run("unknown_and_nil_fall_back_to_generic", func(t *testing.T) {
		assert.Equal(t, "An unexpected error occurred", api.GetSafeErrorMessage(errors.New("boom")))
		assert.Equal(t, "An unexpected error occurred", api.GetSafeErrorMessage(nil))
	})
}
