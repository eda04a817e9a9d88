package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/spendwise/advisor-api/internal/api/shared"
	"github.com/spendwise/advisor-api/internal/daterange"
	"github.com/spendwise/advisor-api/internal/recommend"
)

// RecommendationHandler handles single-entity recommendation requests.
type RecommendationHandler struct {
	service *recommend.Service
	logger  *slog.Logger
}

// NewRecommendationHandler creates a RecommendationHandler.
func NewRecommendationHandler(service *recommend.Service, log *slog.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		service: service,
		logger:  log.With(slog.String("component", "recommendation_handler")),
	}
}

// GetRecommendations handles GET /api/entities/{id}/recommendations.
//
// Query parameters: exactly one of days/weeks/months (integer), or
// start/end (YYYY-MM-DD) for a custom window; none means the default
// trailing week. tasks is an optional comma-separated task-type list.
func (h *RecommendationHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	entityID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid entity ID")
		return
	}

	rangeSpec, err := parseRangeSpec(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}

	var taskTypes []string
	if tasks := r.URL.Query().Get("tasks"); tasks != "" {
		taskTypes = strings.Split(tasks, ",")
	}

	result, err := h.service.Recommendations(r.Context(), entityID, rangeSpec, taskTypes)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RecommendationsResponse{
		EntityID:        entityID.String(),
		Recommendations: result.Recommendations,
		Usage:           result.Usage,
		Fallback:        result.Fallback,
	})
}

// parseRangeSpec builds a date-range spec from query parameters. Returns
// nil when no range parameters are present so the service applies its
// default window. All failures wrap daterange.ErrInvalidRange so the error
// mapping classifies them as validation errors.
func parseRangeSpec(r *http.Request) (*daterange.Spec, error) {
	q := r.URL.Query()

	start, end := q.Get("start"), q.Get("end")
	if start != "" || end != "" {
		return &daterange.Spec{
			Kind:      daterange.KindCustom,
			StartDate: start,
			EndDate:   end,
		}, nil
	}

	kinds := []struct {
		param string
		kind  daterange.Kind
	}{
		{"days", daterange.KindDays},
		{"weeks", daterange.KindWeeks},
		{"months", daterange.KindMonths},
	}

	var spec *daterange.Spec
	for _, k := range kinds {
		raw := q.Get(k.param)
		if raw == "" {
			continue
		}
		if spec != nil {
			return nil, fmt.Errorf("%w: multiple range parameters", daterange.ErrInvalidRange)
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be an integer", daterange.ErrInvalidRange, k.param)
		}
		spec = &daterange.Spec{Kind: k.kind, Value: value}
	}

	return spec, nil
}
