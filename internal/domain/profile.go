package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Profile
var (
	ErrEmptyProfileID   = errors.New("profile ID cannot be empty")
	ErrEmptyProfileName = errors.New("profile name cannot be empty")
	ErrNegativeIncome   = errors.New("monthly income cannot be negative")
)

// Profile describes the entity a recommendation is generated for.
// It is read-only from the pipeline's point of view: the advisor enriches
// prompts with it but never mutates it.
type Profile struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Occupation    string    `json:"occupation,omitempty"`
	MonthlyIncome float64   `json:"monthly_income"`
	SavingsGoal   float64   `json:"savings_goal"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewProfile creates a new Profile with a generated ID and creation timestamp.
// Returns an error if validation fails.
func NewProfile(name, occupation string, monthlyIncome, savingsGoal float64) (*Profile, error) {
	profile := &Profile{
		ID:            uuid.New(),
		Name:          name,
		Occupation:    occupation,
		MonthlyIncome: monthlyIncome,
		SavingsGoal:   savingsGoal,
		CreatedAt:     time.Now().UTC(),
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	return profile, nil
}

// Validate checks if the Profile has valid data.
func (p *Profile) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyProfileID
	}

	if p.Name == "" {
		return ErrEmptyProfileName
	}

	if p.MonthlyIncome < 0 {
		return ErrNegativeIncome
	}

	return nil
}
