package gemini_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spendwise/advisor-api/internal/config"
	"github.com/spendwise/advisor-api/internal/platform/gemini"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewGeneratorConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LLMConfig
	}{
		{
			name: "missing_api_key",
			cfg:  config.LLMConfig{ModelName: "gemini-2.0-flash"},
		},
		{
			name: "missing_model_name",
			cfg:  config.LLMConfig{GeminiAPIKey: "key"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gemini.NewGenerator(context.Background(), testLogger(), tt.cfg)
			assert.ErrorIs(t, err, gemini.ErrInvalidConfig)
		})
	}
}

func TestNewGeneratorNilLogger(t *testing.T) {
	_, err := gemini.NewGenerator(context.Background(), nil, config.LLMConfig{
		GeminiAPIKey: "key",
		ModelName:    "gemini-2.0-flash",
	})
	assert.Error(t, err)
}
