package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/spendwise/advisor-api/internal/domain"
)

// RecordStore provides read access to the entity population and its
// historical records. The advisor pipeline only ever reads; writes happen
// elsewhere (ingestion is out of scope for this service).
type RecordStore interface {
	// GetProfile retrieves the profile for an entity.
	// Returns ErrProfileNotFound if the entity has no profile.
	GetProfile(ctx context.Context, entityID uuid.UUID) (*domain.Profile, error)

	// ListTransactions returns the entity's transactions with dates in
	// [start, end] inclusive, ordered newest-first. Both bounds are
	// YYYY-MM-DD calendar-date strings. An entity with no transactions in
	// the window yields an empty slice, not an error.
	ListTransactions(ctx context.Context, entityID uuid.UUID, start, end string) ([]domain.Transaction, error)

	// ListEntityIDs returns the IDs of every entity in the population, in a
	// stable order. Batch jobs iterate this order.
	ListEntityIDs(ctx context.Context) ([]uuid.UUID, error)
}
