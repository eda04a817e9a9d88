package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Common validation errors for Transaction
var (
	ErrEmptyTransactionID       = errors.New("transaction ID cannot be empty")
	ErrEmptyTransactionEntityID = errors.New("transaction entity ID cannot be empty")
	ErrEmptyTransactionDate     = errors.New("transaction date cannot be empty")
	ErrEmptyTransactionCategory = errors.New("transaction category cannot be empty")
)

// Transaction is a single spending record for an entity. MoodScore is the
// emotional-valence score the user attached at purchase time; it is treated
// as a sensitive field and stripped from prompt context unless the caller
// opts in.
type Transaction struct {
	ID          uuid.UUID `json:"id"`
	EntityID    uuid.UUID `json:"entity_id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Date        string    `json:"date"`
	MoodScore   *int      `json:"mood_score,omitempty"`
}

// NewTransaction creates a new Transaction with a generated ID.
// Date must be a YYYY-MM-DD calendar-date string; the caller is expected to
// have resolved it already. Returns an error if validation fails.
func NewTransaction(
	entityID uuid.UUID,
	amount float64,
	category, description, date string,
	moodScore *int,
) (*Transaction, error) {
	tx := &Transaction{
		ID:          uuid.New(),
		EntityID:    entityID,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
		MoodScore:   moodScore,
	}

	if err := tx.Validate(); err != nil {
		return nil, err
	}

	return tx, nil
}

// Validate checks if the Transaction has valid data.
func (t *Transaction) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTransactionID
	}

	if t.EntityID == uuid.Nil {
		return ErrEmptyTransactionEntityID
	}

	if t.Category == "" {
		return ErrEmptyTransactionCategory
	}

	if t.Date == "" {
		return ErrEmptyTransactionDate
	}

	return nil
}

// Redacted returns a copy of the transaction with the sensitive
// emotional-valence score removed.
func (t Transaction) Redacted() Transaction {
	t.MoodScore = nil
	return t
}
