package recommend

import "github.com/spendwise/advisor-api/internal/domain"

// FallbackRecommendations returns the deterministic, non-generated set
// served when upstream generation is skipped or fails. It always contains
// a Budgeting and a Savings entry.
func FallbackRecommendations() []domain.Recommendation {
	return []domain.Recommendation{
		{
			Category: "Budgeting",
			Advice: "Set a weekly spending limit for your three largest categories and " +
				"review it every Sunday.",
		},
		{
			Category: "Savings",
			Advice: "Move a fixed amount into savings on payday, before any " +
				"discretionary spending.",
		},
		{
			Category: "General",
			Advice: "Record every purchase for a full week to build an accurate picture " +
				"of where your money goes.",
		},
	}
}
