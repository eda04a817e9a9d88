package recommend

import (
	"context"

	"github.com/spendwise/advisor-api/internal/domain"
)

// Completion is one response from the generative service. Usage is nil when
// the upstream provider returned no metadata for the call.
type Completion struct {
	Content string
	Usage   *domain.UsageStats
}

// Generator is the boundary to the generative-text service. Implementations
// make exactly one upstream call per Complete invocation; retry and timeout
// policy belong to the implementation, not to callers.
type Generator interface {
	Complete(ctx context.Context, system, user string) (*Completion, error)
}
