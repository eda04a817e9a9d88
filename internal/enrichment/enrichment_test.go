package enrichment_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendwise/advisor-api/internal/daterange"
	"github.com/spendwise/advisor-api/internal/domain"
	"github.com/spendwise/advisor-api/internal/enrichment"
	"github.com/spendwise/advisor-api/internal/mocks"
)

var testClock = func() time.Time {
	return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(t *testing.T, records *mocks.MockRecordStore) *enrichment.Service {
	t.Helper()
	svc, err := enrichment.NewService(records, testLogger())
	require.NoError(t, err)
	return svc.WithClock(testClock)
}

func sampleTransactions(entityID uuid.UUID) []domain.Transaction {
	mood := 3
	return []domain.Transaction{
		{
			ID:        uuid.New(),
			EntityID:  entityID,
			Amount:    42.10,
			Category:  "Food",
			Date:      "2026-08-29",
			MoodScore: &mood,
		},
		{
			ID:       uuid.New(),
			EntityID: entityID,
			Amount:   120.00,
			Category: "Shopping",
			Date:     "2026-08-25",
		},
	}
}

func TestEnrich(t *testing.T) {
	entityID := uuid.New()

	t.Run("fetches_profile_and_transactions", func(t *testing.T) {
		profile, err := domain.NewProfile("Ada", "Engineer", 5000, 700)
		require.NoError(t, err)

		records := &mocks.MockRecordStore{
			Profile:      profile,
			Transactions: sampleTransactions(entityID),
		}
		svc := newService(t, records)

		ec, err := svc.Enrich(context.Background(), entityID, enrichment.Config{
			IncludeProfile: true,
			DateRange:      &daterange.Spec{Kind: daterange.KindDays, Value: 7},
		})
		require.NoError(t, err)

		assert.Equal(t, profile, ec.Profile)
		assert.Len(t, ec.Transactions, 2)
		assert.Equal(t, daterange.Range{Start: "2026-08-23", End: "2026-08-30"}, ec.Range)

		require.Len(t, records.TransactionWindows, 1)
		assert.Equal(t, [2]string{"2026-08-23", "2026-08-30"}, records.TransactionWindows[0])
	})

	t.Run("profile_fetch_failure_is_soft", func(t *testing.T) {
		records := &mocks.MockRecordStore{
			GetProfileFn: func(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
				return nil, errors.New("connection reset")
			},
			Transactions: sampleTransactions(entityID),
		}
		svc := newService(t, records)

		ec, err := svc.Enrich(context.Background(), entityID, enrichment.Config{IncludeProfile: true})
		require.NoError(t, err)
		assert.Nil(t, ec.Profile)
		assert.Len(t, ec.Transactions, 2)
	})

	t.Run("profile_skipped_when_not_requested", func(t *testing.T) {
		records := &mocks.MockRecordStore{Transactions: sampleTransactions(entityID)}
		svc := newService(t, records)

		ec, err := svc.Enrich(context.Background(), entityID, enrichment.Config{})
		require.NoError(t, err)
		assert.Nil(t, ec.Profile)
		assert.Zero(t, records.GetProfileCalls)
	})

	t.Run("mood_score_stripped_by_default", func(t *testing.T) {
		records := &mocks.MockRecordStore{Transactions: sampleTransactions(entityID)}
		svc := newService(t, records)

		ec, err := svc.Enrich(context.Background(), entityID, enrichment.Config{})
		require.NoError(t, err)
		for _, tx := range ec.Transactions {
			assert.Nil(t, tx.MoodScore)
		}
	})

	t.Run("mood_score_kept_on_opt_in", func(t *testing.T) {
		records := &mocks.MockRecordStore{Transactions: sampleTransactions(entityID)}
		svc := newService(t, records)

		ec, err := svc.Enrich(context.Background(), entityID, enrichment.Config{IncludeMoodScore: true})
		require.NoError(t, err)
		require.NotNil(t, ec.Transactions[0].MoodScore)
		assert.Equal(t, 3, *ec.Transactions[0].MoodScore)
	})

	t.Run("invalid_range_fails_before_any_fetch", func(t *testing.T) {
		records := &mocks.MockRecordStore{Transactions: sampleTransactions(entityID)}
		svc := newService(t, records)

		_, err := svc.Enrich(context.Background(), entityID, enrichment.Config{
			IncludeProfile: true,
			DateRange:      &daterange.Spec{Kind: daterange.KindCustom, StartDate: "not-a-date"},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, daterange.ErrInvalidDate)
		assert.Zero(t, records.GetProfileCalls)
		assert.Zero(t, records.ListTransactionsCalls)
	})

	t.Run("transaction_fetch_failure_aborts", func(t *testing.T) {
		records := &mocks.MockRecordStore{
			ListTransactionsFn: func(ctx context.Context, id uuid.UUID, start, end string) ([]domain.Transaction, error) {
				return nil, errors.New("query timeout")
			},
		}
		svc := newService(t, records)

		_, err := svc.Enrich(context.Background(), entityID, enrichment.Config{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list transactions")
	})
}

func TestRender(t *testing.T) {
	entityID := uuid.New()

	t.Run("empty_transactions_renders_sentinel", func(t *testing.T) {
		out := enrichment.Render(&enrichment.Context{
			Range: daterange.Range{Start: "2026-08-23", End: "2026-08-30"},
		})
		assert.Equal(t, enrichment.NoDataSentinel, out)
	})

	t.Run("nil_context_renders_sentinel", func(t *testing.T) {
		assert.Equal(t, enrichment.NoDataSentinel, enrichment.Render(nil))
	})

	t.Run("transactions_render_as_counted_block", func(t *testing.T) {
		out := enrichment.Render(&enrichment.Context{
			Transactions: sampleTransactions(entityID),
			Range:        daterange.Range{Start: "2026-08-23", End: "2026-08-30"},
		})
		assert.Contains(t, out, "Transactions from 2026-08-23 to 2026-08-30 (2 records, newest first, JSON):")
		assert.Contains(t, out, `"Food"`)
		assert.NotContains(t, out, enrichment.NoDataSentinel)
	})

	t.Run("profile_renders_as_labeled_block", func(t *testing.T) {
		profile, err := domain.NewProfile("Ada", "Engineer", 5000, 700)
		require.NoError(t, err)

		out := enrichment.Render(&enrichment.Context{
			Profile:      profile,
			Transactions: sampleTransactions(entityID),
			Range:        daterange.Range{Start: "2026-08-23", End: "2026-08-30"},
		})
		assert.Contains(t, out, "Entity profile (JSON):")
		assert.Contains(t, out, `"Ada"`)
	})
}
