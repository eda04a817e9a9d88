// Package batch manages population-wide recommendation runs: the in-memory
// job registry that status pollers read and the orchestrator that executes
// one detached run per job.
package batch

import (
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/advisor-api/internal/domain"
)

// Status represents the lifecycle state of a batch job.
type Status string

// Possible job status values. The legal transitions are
// pending -> running -> {completed, failed}; both completed and failed
// are terminal.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Terminal reports whether the status is a terminal state.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Job is the state of one batch run. It has exactly one writer (the
// orchestrator goroutine that owns it) and many readers; readers always
// receive copies taken under the registry lock.
//
// ProcessedEntities counts successful entities only, is monotonically
// non-decreasing, and never exceeds TotalEntities. EndTime is set exactly
// once, on entering a terminal state.
type Job struct {
	ID                uuid.UUID           `json:"id"`
	Status            Status              `json:"status"`
	StartTime         time.Time           `json:"start_time"`
	EndTime           *time.Time          `json:"end_time,omitempty"`
	TotalEntities     int                 `json:"total_entities"`
	ProcessedEntities int                 `json:"processed_entities"`
	Errors            []string            `json:"errors,omitempty"`
	Sample            *domain.DebugSample `json:"sample,omitempty"`
}

// DurationSeconds returns the elapsed seconds between start and end for
// terminal jobs, nil while the job is still in flight.
func (j *Job) DurationSeconds() *float64 {
	if j.EndTime == nil {
		return nil
	}
	seconds := j.EndTime.Sub(j.StartTime).Seconds()
	return &seconds
}

// clone deep-copies the job so registry readers never alias the writer's
// slices or sample.
func (j *Job) clone() Job {
	out := *j

	if j.EndTime != nil {
		end := *j.EndTime
		out.EndTime = &end
	}

	if j.Errors != nil {
		out.Errors = make([]string, len(j.Errors))
		copy(out.Errors, j.Errors)
	}

	if j.Sample != nil {
		sample := *j.Sample
		if j.Sample.Usage != nil {
			usage := *j.Sample.Usage
			sample.Usage = &usage
		}
		out.Sample = &sample
	}

	return out
}
