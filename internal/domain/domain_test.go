package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendwise/advisor-api/internal/domain"
)

func TestNewProfile(t *testing.T) {
	t.Run("valid_profile", func(t *testing.T) {
		profile, err := domain.NewProfile("Ada", "Engineer", 5200, 800)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, profile.ID)
		assert.Equal(t, "Ada", profile.Name)
		assert.False(t, profile.CreatedAt.IsZero())
	})

	t.Run("empty_name_fails", func(t *testing.T) {
		_, err := domain.NewProfile("", "Engineer", 5200, 800)
		assert.ErrorIs(t, err, domain.ErrEmptyProfileName)
	})

	t.Run("negative_income_fails", func(t *testing.T) {
		_, err := domain.NewProfile("Ada", "Engineer", -1, 800)
		assert.ErrorIs(t, err, domain.ErrNegativeIncome)
	})
}

func TestNewTransaction(t *testing.T) {
	entityID := uuid.New()
	mood := 4

	t.Run("valid_transaction", func(t *testing.T) {
		tx, err := domain.NewTransaction(entityID, 12.50, "Food", "lunch", "2026-08-20", &mood)
		require.NoError(t, err)
		assert.Equal(t, entityID, tx.EntityID)
		require.NotNil(t, tx.MoodScore)
		assert.Equal(t, 4, *tx.MoodScore)
	})

	t.Run("missing_category_fails", func(t *testing.T) {
		_, err := domain.NewTransaction(entityID, 12.50, "", "lunch", "2026-08-20", nil)
		assert.ErrorIs(t, err, domain.ErrEmptyTransactionCategory)
	})

	t.Run("missing_date_fails", func(t *testing.T) {
		_, err := domain.NewTransaction(entityID, 12.50, "Food", "lunch", "", nil)
		assert.ErrorIs(t, err, domain.ErrEmptyTransactionDate)
	})

	t.Run("missing_entity_fails", func(t *testing.T) {
		_, err := domain.NewTransaction(uuid.Nil, 12.50, "Food", "lunch", "2026-08-20", nil)
		assert.ErrorIs(t, err, domain.ErrEmptyTransactionEntityID)
	})
}

func TestTransactionRedacted(t *testing.T) {
	mood := 2
	tx, err := domain.NewTransaction(uuid.New(), 30, "Shopping", "", "2026-08-21", &mood)
	require.NoError(t, err)

	redacted := tx.Redacted()
	assert.Nil(t, redacted.MoodScore)
	// The original must be untouched.
	require.NotNil(t, tx.MoodScore)
	assert.Equal(t, 2, *tx.MoodScore)
}

func TestUsageStatsAdd(t *testing.T) {
	total := &domain.UsageStats{}

	total.Add(&domain.UsageStats{PromptTokens: 100, CompletionTokens: 40, TotalTokens: 140})
	total.Add(&domain.UsageStats{PromptTokens: 60, CompletionTokens: 25, TotalTokens: 85})
	total.Add(nil)

	assert.Equal(t, 160, total.PromptTokens)
	assert.Equal(t, 65, total.CompletionTokens)
	assert.Equal(t, 225, total.TotalTokens)
}
