package domain

// Recommendation is the unit of advisor output: a short category label and
// the advice text generated (or deterministically produced) for it.
type Recommendation struct {
	Category string `json:"category"`
	Advice   string `json:"advice"`
}

// UsageStats accumulates token usage across the generative calls made while
// serving one logical request.
type UsageStats struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Add accumulates another call's usage into the receiver. A nil argument is
// a no-op so callers can pass through absent upstream metadata unchecked.
func (u *UsageStats) Add(other *UsageStats) {
	if other == nil {
		return
	}

	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalTokens += other.TotalTokens
}

// DebugSample is an opt-in snapshot of the first successfully processed
// entity in a batch: the prompt context it was enriched with, the raw model
// output, and the usage of that call. It exists purely for operator
// visibility into what a batch actually sent and received.
type DebugSample struct {
	EntityID      string      `json:"entity_id"`
	PromptContext string      `json:"prompt_context"`
	RawOutput     string      `json:"raw_output"`
	Usage         *UsageStats `json:"usage,omitempty"`
}
