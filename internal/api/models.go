package api

import (
	"github.com/spendwise/advisor-api/internal/batch"
	"github.com/spendwise/advisor-api/internal/daterange"
	"github.com/spendwise/advisor-api/internal/domain"
)

// RecommendationsResponse is the response body for the single-entity path.
type RecommendationsResponse struct {
	EntityID        string                  `json:"entity_id"`
	Recommendations []domain.Recommendation `json:"recommendations"`
	Usage           *domain.UsageStats      `json:"usage,omitempty"`
	Fallback        bool                    `json:"fallback"`
}

// StartBatchRequest is the request body for starting a batch run. All
// fields are optional; an empty body runs the default tasks over the
// default window.
type StartBatchRequest struct {
	DateRange     *daterange.Spec `json:"date_range,omitempty"`
	TaskTypes     []string        `json:"task_types,omitempty" validate:"omitempty,dive,oneof=weekly-report overall-report"`
	IncludeSample bool            `json:"include_sample,omitempty"`
}

// StartBatchResponse carries the ID the caller polls for status.
type StartBatchResponse struct {
	JobID string `json:"job_id"`
}

// BatchStatusResponse is the status snapshot for one batch job.
type BatchStatusResponse struct {
	JobID             string              `json:"job_id"`
	Status            string              `json:"status"`
	TotalEntities     int                 `json:"total_entities"`
	ProcessedEntities int                 `json:"processed_entities"`
	DurationSeconds   *float64            `json:"duration_seconds,omitempty"`
	Errors            []string            `json:"errors,omitempty"`
	Sample            *domain.DebugSample `json:"sample,omitempty"`
}

// jobToStatusResponse converts a batch.Job snapshot to its response form.
func jobToStatusResponse(job batch.Job) BatchStatusResponse {
	return BatchStatusResponse{
		JobID:             job.ID.String(),
		Status:            string(job.Status),
		TotalEntities:     job.TotalEntities,
		ProcessedEntities: job.ProcessedEntities,
		DurationSeconds:   job.DurationSeconds(),
		Errors:            job.Errors,
		Sample:            job.Sample,
	}
}
