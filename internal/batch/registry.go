package batch

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry errors.
var (
	// ErrJobNotFound is returned when the requested job ID is unknown.
	ErrJobNotFound = errors.New("job not found")

	// ErrJobTerminal is returned when an update targets a job that has
	// already reached a terminal state. Terminal jobs are immutable.
	ErrJobTerminal = errors.New("job is in a terminal state")
)

// Registry is the in-memory store of batch-job state. All mutation goes
// through Update, which holds the lock for the duration of the mutator, so
// a concurrent Get never observes a partially-updated job.
//
// Completed jobs are never evicted: they stay queryable for the life of the
// process. That is the accepted behavior here — jobs are small and batches
// are operator-triggered, so unbounded growth is not a practical concern.
type Registry struct {
	mu   sync.RWMutex
	jobs map[uuid.UUID]*Job
}

// NewRegistry creates an empty job registry.
func NewRegistry() *Registry {
	return &Registry{jobs: make(map[uuid.UUID]*Job)}
}

// Create registers a new pending job for a population of the given size and
// returns a snapshot of it.
func (r *Registry) Create(totalEntities int) Job {
	job := &Job{
		ID:            uuid.New(),
		Status:        StatusPending,
		StartTime:     time.Now().UTC(),
		TotalEntities: totalEntities,
	}

	r.mu.Lock()
	r.jobs[job.ID] = job
	r.mu.Unlock()

	return job.clone()
}

// Get returns a consistent snapshot of the job.
// Returns ErrJobNotFound for unknown IDs.
func (r *Registry) Get(id uuid.UUID) (Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[id]
	if !ok {
		return Job{}, fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}

	return job.clone(), nil
}

// Update applies the mutator to the job under the registry lock. It
// enforces the structural invariants the rest of the system relies on:
// terminal jobs reject further mutation, ProcessedEntities never exceeds
// TotalEntities, and EndTime is stamped exactly once when the mutator moves
// the job into a terminal state.
func (r *Registry) Update(id uuid.UUID, mutate func(*Job)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}

	if job.Status.Terminal() {
		return fmt.Errorf("%w: %s", ErrJobTerminal, id)
	}

	mutate(job)

	if job.ProcessedEntities > job.TotalEntities {
		job.ProcessedEntities = job.TotalEntities
	}

	if job.Status.Terminal() && job.EndTime == nil {
		now := time.Now().UTC()
		job.EndTime = &now
	}

	return nil
}
