package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/spendwise/advisor-api/internal/domain"
	"github.com/spendwise/advisor-api/internal/store"
)

// MockRecordStore implements store.RecordStore for testing. Each method
// uses the corresponding Fn override when set and falls back to the default
// field values otherwise. Call counts are tracked under a mutex so
// concurrent batch tests can assert on them safely.
type MockRecordStore struct {
	GetProfileFn       func(ctx context.Context, entityID uuid.UUID) (*domain.Profile, error)
	ListTransactionsFn func(ctx context.Context, entityID uuid.UUID, start, end string) ([]domain.Transaction, error)
	ListEntityIDsFn    func(ctx context.Context) ([]uuid.UUID, error)

	// Default responses when no Fn override is set.
	Profile      *domain.Profile
	Transactions []domain.Transaction
	EntityIDs    []uuid.UUID
	Err          error

	mu                    sync.Mutex
	GetProfileCalls       int
	ListTransactionsCalls int
	ListEntityIDsCalls    int

	// TransactionWindows records the (start, end) pair of every
	// ListTransactions call for window assertions.
	TransactionWindows [][2]string
}

var _ store.RecordStore = (*MockRecordStore)(nil)

// GetProfile implements store.RecordStore.
func (m *MockRecordStore) GetProfile(ctx context.Context, entityID uuid.UUID) (*domain.Profile, error) {
	m.mu.Lock()
	m.GetProfileCalls++
	m.mu.Unlock()

	if m.GetProfileFn != nil {
		return m.GetProfileFn(ctx, entityID)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Profile == nil {
		return nil, store.ErrProfileNotFound
	}
	return m.Profile, nil
}

// ListTransactions implements store.RecordStore.
func (m *MockRecordStore) ListTransactions(
	ctx context.Context,
	entityID uuid.UUID,
	start, end string,
) ([]domain.Transaction, error) {
	m.mu.Lock()
	m.ListTransactionsCalls++
	m.TransactionWindows = append(m.TransactionWindows, [2]string{start, end})
	m.mu.Unlock()

	if m.ListTransactionsFn != nil {
		return m.ListTransactionsFn(ctx, entityID, start, end)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Transactions, nil
}

// ListEntityIDs implements store.RecordStore.
func (m *MockRecordStore) ListEntityIDs(ctx context.Context) ([]uuid.UUID, error) {
	m.mu.Lock()
	m.ListEntityIDsCalls++
	m.mu.Unlock()

	if m.ListEntityIDsFn != nil {
		return m.ListEntityIDsFn(ctx)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.EntityIDs, nil
}
