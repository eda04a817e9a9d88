package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/spendwise/advisor-api/internal/config"
	"github.com/spendwise/advisor-api/internal/domain"
	"github.com/spendwise/advisor-api/internal/recommend"
)

// ErrInvalidConfig indicates the generator was constructed with unusable
// configuration.
var ErrInvalidConfig = errors.New("invalid gemini configuration")

// Generator implements recommend.Generator against the Gemini API. Each
// Complete call maps to exactly one GenerateContent request; retry policy
// deliberately lives with the caller's fallback handling, not here.
type Generator struct {
	logger *slog.Logger
	client *genai.Client
	model  string
}

var _ recommend.Generator = (*Generator)(nil)

// NewGenerator creates a Gemini-backed generator from LLM configuration.
func NewGenerator(ctx context.Context, log *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: API key cannot be empty", ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create client: %v", ErrInvalidConfig, err)
	}

	return &Generator{
		logger: log.With(slog.String("component", "gemini_generator")),
		client: client,
		model:  cfg.ModelName,
	}, nil
}

// Complete implements recommend.Generator. The system text becomes the
// model's system instruction and the user text the single content turn.
// A response with no candidates or no extractable text is reported as
// recommend.ErrEmptyResponse so callers can treat it like any other
// unusable upstream outcome.
func (g *Generator) Complete(ctx context.Context, system, user string) (*recommend.Completion, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(user), cfg)
	if err != nil {
		g.logger.Error("gemini call failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("gemini call failed: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidates returned", recommend.ErrEmptyResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return nil, fmt.Errorf("%w: candidate has no content", recommend.ErrEmptyResponse)
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		text.WriteString(part.Text)
	}
	if text.Len() == 0 {
		return nil, fmt.Errorf("%w: candidate has no text parts", recommend.ErrEmptyResponse)
	}

	completion := &recommend.Completion{Content: text.String()}
	if resp.UsageMetadata != nil {
		completion.Usage = &domain.UsageStats{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}

	g.logger.Debug("gemini call succeeded",
		slog.Int("content_length", len(completion.Content)))

	return completion, nil
}
