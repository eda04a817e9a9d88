package mocks

import (
	"context"
	"sync"

	"github.com/spendwise/advisor-api/internal/recommend"
)

// MockGenerator implements recommend.Generator for testing.
type MockGenerator struct {
	// CompleteFn allows test cases to mock the Complete behavior.
	CompleteFn func(ctx context.Context, system, user string) (*recommend.Completion, error)

	// Default response values when CompleteFn is unset.
	Completion *recommend.Completion
	Err        error

	// Call tracking for verification.
	mu            sync.Mutex
	CompleteCalls int
	SystemPrompts []string
	UserPrompts   []string
}

var _ recommend.Generator = (*MockGenerator)(nil)

// Complete implements the recommend.Generator interface.
func (m *MockGenerator) Complete(
	ctx context.Context,
	system, user string,
) (*recommend.Completion, error) {
	m.mu.Lock()
	m.CompleteCalls++
	m.SystemPrompts = append(m.SystemPrompts, system)
	m.UserPrompts = append(m.UserPrompts, user)
	m.mu.Unlock()

	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, system, user)
	}
	return m.Completion, m.Err
}

// Calls returns the number of Complete invocations so far.
func (m *MockGenerator) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CompleteCalls
}

// NewMockGeneratorWithContent creates a MockGenerator returning the given
// content with no usage metadata.
func NewMockGeneratorWithContent(content string) *MockGenerator {
	return &MockGenerator{Completion: &recommend.Completion{Content: content}}
}

// NewMockGeneratorWithError creates a MockGenerator that fails every call.
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Err: err}
}
