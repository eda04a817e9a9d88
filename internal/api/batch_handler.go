package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/spendwise/advisor-api/internal/api/shared"
	"github.com/spendwise/advisor-api/internal/batch"
)

// BatchHandler handles batch lifecycle HTTP requests.
type BatchHandler struct {
	orchestrator *batch.Orchestrator
	registry     *batch.Registry
	logger       *slog.Logger
}

// NewBatchHandler creates a BatchHandler.
func NewBatchHandler(
	orchestrator *batch.Orchestrator,
	registry *batch.Registry,
	log *slog.Logger,
) *BatchHandler {
	return &BatchHandler{
		orchestrator: orchestrator,
		registry:     registry,
		logger:       log.With(slog.String("component", "batch_handler")),
	}
}

// StartBatch handles POST /api/recommendations/batch. An empty body starts
// a default run. Responds 202 Accepted: processing happens asynchronously
// and the caller polls the returned job ID.
func (h *BatchHandler) StartBatch(w http.ResponseWriter, r *http.Request) {
	var req StartBatchRequest
	if err := shared.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: unsupported task type")
		return
	}

	jobID, err := h.orchestrator.StartBatch(r.Context(), batch.BatchRequest{
		DateRange:     req.DateRange,
		TaskTypes:     req.TaskTypes,
		IncludeSample: req.IncludeSample,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusAccepted, StartBatchResponse{JobID: jobID.String()})
}

// GetBatchStatus handles GET /api/recommendations/batch/{jobID}. It is
// idempotent and side-effect-free; the snapshot it returns is always
// internally consistent.
func (h *BatchHandler) GetBatchStatus(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(chi.URLParam(r, "jobID"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := h.registry.Get(jobID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, jobToStatusResponse(job))
}
