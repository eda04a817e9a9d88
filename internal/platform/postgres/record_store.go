// Package postgres contains the PostgreSQL-backed implementation of the
// store interfaces, accessed through pgx's database/sql driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/spendwise/advisor-api/internal/domain"
	"github.com/spendwise/advisor-api/internal/platform/logger"
	"github.com/spendwise/advisor-api/internal/store"
)

// RecordStore implements the store.RecordStore interface using a PostgreSQL
// database as the storage backend.
type RecordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewRecordStore creates a PostgreSQL implementation of store.RecordStore.
// The connection (or transaction) is managed by the caller. If log is nil,
// the default logger is used.
func NewRecordStore(db store.DBTX, log *slog.Logger) *RecordStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &RecordStore{
		db:     db,
		logger: log.With(slog.String("component", "record_store")),
	}
}

var _ store.RecordStore = (*RecordStore)(nil)

// GetProfile implements store.RecordStore.GetProfile.
// Returns store.ErrProfileNotFound if the entity has no profile.
func (s *RecordStore) GetProfile(ctx context.Context, entityID uuid.UUID) (*domain.Profile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, occupation, monthly_income, savings_goal, created_at
		FROM profiles
		WHERE id = $1
	`

	var profile domain.Profile
	err := s.db.QueryRowContext(ctx, query, entityID).Scan(
		&profile.ID,
		&profile.Name,
		&profile.Occupation,
		&profile.MonthlyIncome,
		&profile.SavingsGoal,
		&profile.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", store.ErrProfileNotFound, entityID)
		}

		log.Error("failed to get profile",
			slog.String("entity_id", entityID.String()),
			slog.String("error", err.Error()))
		return nil, err
	}

	return &profile, nil
}

// ListTransactions implements store.RecordStore.ListTransactions.
// The window is inclusive on both sides and results come back newest-first;
// ties on the same date break on ID so the ordering is deterministic for
// prompt construction.
func (s *RecordStore) ListTransactions(
	ctx context.Context,
	entityID uuid.UUID,
	start, end string,
) ([]domain.Transaction, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, entity_id, amount, category, description,
		       to_char(tx_date, 'YYYY-MM-DD'), mood_score
		FROM transactions
		WHERE entity_id = $1
		  AND tx_date >= $2::date
		  AND tx_date <= $3::date
		ORDER BY tx_date DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, entityID, start, end)
	if err != nil {
		log.Error("failed to list transactions",
			slog.String("entity_id", entityID.String()),
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close transaction rows", slog.String("error", cerr.Error()))
		}
	}()

	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		var tx domain.Transaction
		var description sql.NullString
		var moodScore sql.NullInt64

		if err := rows.Scan(
			&tx.ID,
			&tx.EntityID,
			&tx.Amount,
			&tx.Category,
			&description,
			&tx.Date,
			&moodScore,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}

		tx.Description = description.String
		if moodScore.Valid {
			score := int(moodScore.Int64)
			tx.MoodScore = &score
		}

		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transaction rows: %w", err)
	}

	return transactions, nil
}

// ListEntityIDs implements store.RecordStore.ListEntityIDs. Ordering by
// creation time keeps batch iteration order stable across runs.
func (s *RecordStore) ListEntityIDs(ctx context.Context) ([]uuid.UUID, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT id FROM profiles ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list entity IDs", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close entity rows", slog.String("error", cerr.Error()))
		}
	}()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan entity ID: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entity IDs: %w", err)
	}

	return ids, nil
}
