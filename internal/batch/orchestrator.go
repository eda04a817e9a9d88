package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/advisor-api/internal/daterange"
	"github.com/spendwise/advisor-api/internal/domain"
	"github.com/spendwise/advisor-api/internal/recommend"
	"github.com/spendwise/advisor-api/internal/store"
)

// BatchRequest configures one population-wide run.
type BatchRequest struct {
	// DateRange is the transaction window applied to every entity.
	// Nil means the default trailing window.
	DateRange *daterange.Spec

	// TaskTypes are the task flavors to run per entity. Empty means the
	// service default.
	TaskTypes []string

	// IncludeSample captures the first successfully processed entity's
	// prompt context, raw output, and usage into the job for debugging.
	IncludeSample bool
}

// Orchestrator runs batch jobs: it lists the population synchronously,
// registers a job, and processes every entity sequentially in a detached
// goroutine, recording per-entity failures without ever aborting the run.
type Orchestrator struct {
	service  *recommend.Service
	records  store.RecordStore
	registry *Registry
	logger   *slog.Logger
}

// NewOrchestrator creates a batch orchestrator.
func NewOrchestrator(
	service *recommend.Service,
	records store.RecordStore,
	registry *Registry,
	log *slog.Logger,
) (*Orchestrator, error) {
	if service == nil {
		return nil, errors.New("recommendation service cannot be nil")
	}
	if records == nil {
		return nil, errors.New("record store cannot be nil")
	}
	if registry == nil {
		return nil, errors.New("job registry cannot be nil")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Orchestrator{
		service:  service,
		records:  records,
		registry: registry,
		logger:   log.With(slog.String("component", "batch_orchestrator")),
	}, nil
}

// StartBatch begins a batch run and returns its job ID immediately.
//
// The date range is validated and the population listed synchronously:
// if either fails, the caller gets the error and no job is ever created.
// Everything after that happens in the background; callers observe
// progress by polling the registry.
func (o *Orchestrator) StartBatch(ctx context.Context, req BatchRequest) (uuid.UUID, error) {
	if _, err := daterange.Resolve(req.DateRange, time.Now().UTC()); err != nil {
		return uuid.Nil, err
	}

	entityIDs, err := o.records.ListEntityIDs(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to list entity population: %w", err)
	}

	job := o.registry.Create(len(entityIDs))
	o.logger.Info("batch job created",
		slog.String("job_id", job.ID.String()),
		slog.Int("total_entities", len(entityIDs)))

	go o.run(job.ID, entityIDs, req)

	return job.ID, nil
}

// run is the detached batch loop. It is the job's single writer. The
// request context is deliberately not inherited: the batch outlives the
// HTTP call that started it.
func (o *Orchestrator) run(jobID uuid.UUID, entityIDs []uuid.UUID, req BatchRequest) {
	ctx := context.Background()
	log := o.logger.With(slog.String("job_id", jobID.String()))

	// Error boundary: a panic anywhere in the loop still leaves the job in
	// a terminal state with the failure recorded, never silently lost.
	defer func() {
		if r := recover(); r != nil {
			log.Error("batch run panicked", slog.Any("panic", r))
			if err := o.registry.Update(jobID, func(job *Job) {
				job.Status = StatusFailed
				job.Errors = append(job.Errors, fmt.Sprintf("batch aborted: %v", r))
			}); err != nil {
				log.Error("failed to record batch panic", slog.String("error", err.Error()))
			}
		}
	}()

	for i, entityID := range entityIDs {
		if i == 0 {
			o.mustUpdate(log, jobID, func(job *Job) {
				job.Status = StatusRunning
			})
		}

		result, err := o.service.Generate(ctx, entityID, req.DateRange, req.TaskTypes)

		// One registry update per attempt, applied only after the attempt
		// has fully completed, so pollers never see in-flight state.
		o.mustUpdate(log, jobID, func(job *Job) {
			if err != nil {
				job.Errors = append(job.Errors, fmt.Sprintf("entity %s: %s", entityID, err.Error()))
				return
			}

			job.ProcessedEntities++

			if req.IncludeSample && job.Sample == nil {
				job.Sample = &domain.DebugSample{
					EntityID:      entityID.String(),
					PromptContext: result.PromptContext,
					RawOutput:     result.RawOutput,
					Usage:         result.Usage,
				}
			}
		})

		if err != nil {
			log.Warn("entity processing failed, continuing",
				slog.String("entity_id", entityID.String()),
				slog.String("error", err.Error()))
		}
	}

	// The loop finishing normally always completes the job, no matter how
	// many entities failed along the way.
	o.mustUpdate(log, jobID, func(job *Job) {
		job.Status = StatusCompleted
	})

	snapshot, err := o.registry.Get(jobID)
	if err != nil {
		log.Error("failed to read completed job", slog.String("error", err.Error()))
		return
	}
	log.Info("batch job completed",
		slog.Int("processed", snapshot.ProcessedEntities),
		slog.Int("total", snapshot.TotalEntities),
		slog.Int("failed", len(snapshot.Errors)))
}

// mustUpdate applies a registry update that is expected to succeed; a
// failure here means the registry and orchestrator disagree about the job's
// lifecycle, which is worth a loud log but not a crash.
func (o *Orchestrator) mustUpdate(log *slog.Logger, jobID uuid.UUID, mutate func(*Job)) {
	if err := o.registry.Update(jobID, mutate); err != nil {
		log.Error("job update failed", slog.String("error", err.Error()))
	}
}
