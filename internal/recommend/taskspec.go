package recommend

// Task type identifiers.
const (
	TaskWeeklyReport  = "weekly-report"
	TaskOverallReport = "overall-report"
)

// TaskSpec describes how to build the prompt pair for one task type. Specs
// are static: constructed once at startup and never mutated.
type TaskSpec struct {
	Type                 string
	Role                 string
	Background           string
	Guidelines           []string
	Instruction          string
	ResponseShape        string
	RequiresTransactions bool
}

// responseShapeJSON is the expected-output-shape text appended to user
// prompts so the model answers in a parseable form.
const responseShapeJSON = `Respond with a JSON array of objects, each with a "category" field ` +
	`(one of: Budgeting, Savings, Food, Shopping, Wellbeing, General) and an "advice" field ` +
	`containing one or two concrete sentences. Do not wrap the array in any other structure.`

// DefaultTaskSpecs returns the task specs known to the advisor, keyed by
// type. Both report flavors require transactional evidence: without it the
// executor refuses the upstream call.
func DefaultTaskSpecs() map[string]TaskSpec {
	role := "You are a personal finance advisor helping people build healthier spending habits."
	background := "You receive an entity's profile and a window of their transaction history. " +
		"Transactions are listed newest first. Amounts are in the entity's home currency."
	guidelines := []string{
		"Ground every piece of advice in the transaction data provided.",
		"Be specific: reference categories and amounts, not generalities.",
		"Keep a supportive, non-judgmental tone.",
		"Never invent transactions or profile details that were not provided.",
	}

	return map[string]TaskSpec{
		TaskWeeklyReport: {
			Type:       TaskWeeklyReport,
			Role:       role,
			Background: background,
			Guidelines: guidelines,
			Instruction: "Review the spending between {start} and {end} and produce " +
				"personalized recommendations for the coming week.",
			ResponseShape:        responseShapeJSON,
			RequiresTransactions: true,
		},
		TaskOverallReport: {
			Type:       TaskOverallReport,
			Role:       role,
			Background: background,
			Guidelines: guidelines,
			Instruction: "Review the full spending history from {start} to {end} and produce " +
				"recommendations about long-term habits and progress toward the savings goal.",
			ResponseShape:        responseShapeJSON,
			RequiresTransactions: true,
		},
	}
}

// appendixFor returns the task-specific instruction appendix for the given
// task type. A pure lookup: unknown types get no appendix.
func appendixFor(taskType string) string {
	switch taskType {
	case TaskWeeklyReport:
		return "Weight recent transactions more heavily than older ones within the window."
	case TaskOverallReport:
		return "Comment on the trend across the whole window, not individual purchases."
	default:
		return ""
	}
}
