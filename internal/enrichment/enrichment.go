// Package enrichment attaches profile and time-windowed transaction
// evidence to an entity ahead of prompt construction. The profile is a soft
// dependency: a failed profile lookup degrades the context rather than
// aborting the pipeline.
package enrichment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/spendwise/advisor-api/internal/daterange"
	"github.com/spendwise/advisor-api/internal/domain"
	"github.com/spendwise/advisor-api/internal/platform/logger"
	"github.com/spendwise/advisor-api/internal/store"
)

// Config governs what Enrich fetches and redacts for one call.
type Config struct {
	// IncludeProfile controls whether the entity profile is fetched.
	IncludeProfile bool

	// DateRange selects the transaction window. Nil means the default
	// trailing window (see daterange.Resolve).
	DateRange *daterange.Spec

	// IncludeMoodScore keeps the sensitive emotional-valence field on
	// transactions. It is stripped by default.
	IncludeMoodScore bool
}

// Context is the ephemeral enrichment result for one entity. It is produced
// per call, rendered into prompt text, and never persisted.
type Context struct {
	Profile      *domain.Profile
	Transactions []domain.Transaction
	Range        daterange.Range
}

// Service fetches and assembles enrichment context from the record store.
type Service struct {
	records store.RecordStore
	logger  *slog.Logger
	now     func() time.Time
}

// NewService creates an enrichment Service. The clock defaults to UTC now;
// tests override it via WithClock.
func NewService(records store.RecordStore, log *slog.Logger) (*Service, error) {
	if records == nil {
		return nil, errors.New("record store cannot be nil")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Service{
		records: records,
		logger:  log.With(slog.String("component", "enrichment")),
		now:     func() time.Time { return time.Now().UTC() },
	}, nil
}

// WithClock replaces the service's reference clock and returns the service
// for chaining. Intended for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Enrich assembles the enrichment context for one entity.
//
// The date range is resolved before any store access so malformed input
// fails fast without touching the record store. A profile fetch failure is
// logged and leaves Profile nil; a transaction fetch failure aborts the
// call. Transactions come back newest-first from the store and have the
// mood score stripped unless cfg.IncludeMoodScore is set.
func (s *Service) Enrich(ctx context.Context, entityID uuid.UUID, cfg Config) (*Context, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rng, err := daterange.Resolve(cfg.DateRange, s.now())
	if err != nil {
		return nil, err
	}

	ec := &Context{Range: rng}

	if cfg.IncludeProfile {
		profile, err := s.records.GetProfile(ctx, entityID)
		if err != nil {
			log.Warn("profile fetch failed, continuing without profile",
				slog.String("entity_id", entityID.String()),
				slog.String("error", err.Error()))
		} else {
			ec.Profile = profile
		}
	}

	transactions, err := s.records.ListTransactions(ctx, entityID, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for entity %s: %w", entityID, err)
	}

	if !cfg.IncludeMoodScore {
		for i := range transactions {
			transactions[i] = transactions[i].Redacted()
		}
	}
	ec.Transactions = transactions

	log.Debug("entity enriched",
		slog.String("entity_id", entityID.String()),
		slog.String("window_start", rng.Start),
		slog.String("window_end", rng.End),
		slog.Bool("has_profile", ec.Profile != nil),
		slog.Int("transaction_count", len(transactions)))

	return ec, nil
}
