package recommend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spendwise/advisor-api/internal/domain"
	"github.com/spendwise/advisor-api/internal/enrichment"
)

// TaskResult is the typed outcome of executing one task.
type TaskResult struct {
	// Content is the model output used for parsing.
	Content string

	// Usage carries the token accounting for this single call, nil when the
	// upstream returned none.
	Usage *domain.UsageStats

	// Raw is the unmodified upstream content, kept for debug sampling.
	Raw string
}

// Executor builds the system/user prompt pair for a task and invokes the
// generative service exactly once per Execute call.
type Executor struct {
	generator Generator
	logger    *slog.Logger
}

// NewExecutor creates an Executor.
func NewExecutor(generator Generator, log *slog.Logger) (*Executor, error) {
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Executor{
		generator: generator,
		logger:    log.With(slog.String("component", "task_executor")),
	}, nil
}

// Execute runs one task against the enriched context.
//
// Cost guard: when the task requires transactional evidence and the window
// is empty, Execute returns ErrNoData without calling upstream — there is
// no point paying for a call that cannot produce grounded output.
// Upstream failures come back as ErrUpstream wrapping the original cause;
// a response with no usable content is ErrEmptyResponse. No retries.
func (e *Executor) Execute(
	ctx context.Context,
	spec TaskSpec,
	ec *enrichment.Context,
	vars map[string]string,
) (*TaskResult, error) {
	if spec.RequiresTransactions && (ec == nil || len(ec.Transactions) == 0) {
		e.logger.Info("skipping generative call, no transactional evidence",
			slog.String("task_type", spec.Type))
		return nil, fmt.Errorf("%w: task %q", ErrNoData, spec.Type)
	}

	system := buildSystemPrompt(spec)
	user := buildUserPrompt(spec, ec, vars)

	completion, err := e.generator.Complete(ctx, system, user)
	if err != nil {
		if errors.Is(err, ErrEmptyResponse) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if completion == nil || strings.TrimSpace(completion.Content) == "" {
		return nil, fmt.Errorf("%w: task %q", ErrEmptyResponse, spec.Type)
	}

	e.logger.Debug("task executed",
		slog.String("task_type", spec.Type),
		slog.Int("content_length", len(completion.Content)))

	return &TaskResult{
		Content: completion.Content,
		Usage:   completion.Usage,
		Raw:     completion.Content,
	}, nil
}

// buildSystemPrompt assembles role, background, guidelines, and the
// task-specific appendix into one system message.
func buildSystemPrompt(spec TaskSpec) string {
	var b strings.Builder

	b.WriteString(spec.Role)
	if spec.Background != "" {
		b.WriteString("\n\n")
		b.WriteString(spec.Background)
	}

	if len(spec.Guidelines) > 0 {
		b.WriteString("\n\nGuidelines:")
		for _, g := range spec.Guidelines {
			b.WriteString("\n- ")
			b.WriteString(g)
		}
	}

	if appendix := appendixFor(spec.Type); appendix != "" {
		b.WriteString("\n\n")
		b.WriteString(appendix)
	}

	return b.String()
}

// buildUserPrompt assembles the task instruction, the rendered enrichment
// context, and the expected-output-shape text into one user message.
func buildUserPrompt(spec TaskSpec, ec *enrichment.Context, vars map[string]string) string {
	var b strings.Builder

	b.WriteString(expandVars(spec.Instruction, vars))
	b.WriteString("\n\n")
	b.WriteString(enrichment.Render(ec))

	if spec.ResponseShape != "" {
		b.WriteString("\n\n")
		b.WriteString(spec.ResponseShape)
	}

	return b.String()
}

// expandVars substitutes {name} placeholders in s with the given values.
func expandVars(s string, vars map[string]string) string {
	for name, value := range vars {
		s = strings.ReplaceAll(s, "{"+name+"}", value)
	}
	return s
}
