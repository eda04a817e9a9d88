package recommend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/spendwise/advisor-api/internal/daterange"
	"github.com/spendwise/advisor-api/internal/domain"
	"github.com/spendwise/advisor-api/internal/enrichment"
)

// Result is the caller-visible outcome of one recommendation request.
type Result struct {
	Recommendations []domain.Recommendation

	// Usage aggregates token accounting across every task executed for this
	// request. Nil when no upstream call reported usage.
	Usage *domain.UsageStats

	// Fallback marks results served from the deterministic set instead of
	// the generative service.
	Fallback bool

	// PromptContext and RawOutput feed batch debug sampling. PromptContext
	// is the rendered enrichment block, RawOutput the unparsed model text.
	PromptContext string
	RawOutput     string
}

// Service is the synchronous single-entity pipeline: resolve range, enrich,
// execute each requested task, parse, aggregate usage.
type Service struct {
	enricher *enrichment.Service
	executor *Executor
	specs    map[string]TaskSpec
	logger   *slog.Logger
}

// NewService creates the recommendation service facade.
func NewService(
	enricher *enrichment.Service,
	executor *Executor,
	specs map[string]TaskSpec,
	log *slog.Logger,
) (*Service, error) {
	if enricher == nil {
		return nil, errors.New("enrichment service cannot be nil")
	}
	if executor == nil {
		return nil, errors.New("executor cannot be nil")
	}
	if len(specs) == 0 {
		return nil, errors.New("task specs cannot be empty")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Service{
		enricher: enricher,
		executor: executor,
		specs:    specs,
		logger:   log.With(slog.String("component", "recommend_service")),
	}, nil
}

// Generate runs the strict pipeline: any upstream or no-data failure is
// surfaced to the caller as a typed error. The batch orchestrator uses this
// form so per-entity failures are recorded rather than masked by fallback.
//
// An empty taskTypes slice defaults to the weekly report.
func (s *Service) Generate(
	ctx context.Context,
	entityID uuid.UUID,
	rangeSpec *daterange.Spec,
	taskTypes []string,
) (*Result, error) {
	if len(taskTypes) == 0 {
		taskTypes = []string{TaskWeeklyReport}
	}

	// Resolve task specs up front so an unknown type fails before any fetch.
	specs := make([]TaskSpec, 0, len(taskTypes))
	for _, taskType := range taskTypes {
		spec, ok := s.specs[taskType]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTaskType, taskType)
		}
		specs = append(specs, spec)
	}

	ec, err := s.enricher.Enrich(ctx, entityID, enrichment.Config{
		IncludeProfile: true,
		DateRange:      rangeSpec,
	})
	if err != nil {
		return nil, err
	}

	vars := map[string]string{
		"start": ec.Range.Start,
		"end":   ec.Range.End,
	}

	result := &Result{PromptContext: enrichment.Render(ec)}
	usage := &domain.UsageStats{}
	sawUsage := false
	var rawParts []string

	for _, spec := range specs {
		taskResult, err := s.executor.Execute(ctx, spec, ec, vars)
		if err != nil {
			return nil, err
		}

		result.Recommendations = append(result.Recommendations,
			ParseRecommendations(taskResult.Content)...)
		rawParts = append(rawParts, taskResult.Raw)

		if taskResult.Usage != nil {
			usage.Add(taskResult.Usage)
			sawUsage = true
		}
	}

	if sawUsage {
		result.Usage = usage
	}
	result.RawOutput = strings.Join(rawParts, "\n")

	return result, nil
}

// Recommendations is the degrading form used by the synchronous caller
// path: no-data, upstream, and empty-response failures are absorbed and the
// deterministic fallback set is served instead. Validation and not-found
// errors still propagate.
func (s *Service) Recommendations(
	ctx context.Context,
	entityID uuid.UUID,
	rangeSpec *daterange.Spec,
	taskTypes []string,
) (*Result, error) {
	result, err := s.Generate(ctx, entityID, rangeSpec, taskTypes)
	if err != nil {
		if IsDegradable(err) {
			s.logger.Info("serving fallback recommendations",
				slog.String("entity_id", entityID.String()),
				slog.String("reason", err.Error()))
			return &Result{
				Recommendations: FallbackRecommendations(),
				Fallback:        true,
			}, nil
		}
		return nil, err
	}

	return result, nil
}
