package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendwise/advisor-api/internal/config"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ADVISOR_DATABASE_URL", "postgres://localhost:5432/advisor")
	t.Setenv("ADVISOR_LLM_GEMINI_API_KEY", "test-key")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/advisor", cfg.Database.URL)
	assert.Equal(t, "test-key", cfg.LLM.GeminiAPIKey)
	// Defaults apply for everything not overridden.
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.ModelName)
}

func TestLoadEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("ADVISOR_DATABASE_URL", "postgres://localhost:5432/advisor")
	t.Setenv("ADVISOR_LLM_GEMINI_API_KEY", "test-key")
	t.Setenv("ADVISOR_SERVER_PORT", "9090")
	t.Setenv("ADVISOR_SERVER_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
}

func TestLoadValidation(t *testing.T) {
	t.Run("missing_api_key_fails", func(t *testing.T) {
		t.Setenv("ADVISOR_DATABASE_URL", "postgres://localhost:5432/advisor")

		_, err := config.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("missing_database_url_fails", func(t *testing.T) {
		t.Setenv("ADVISOR_LLM_GEMINI_API_KEY", "test-key")

		_, err := config.Load()
		require.Error(t, err)
	})

	t.Run("bad_log_level_fails", func(t *testing.T) {
		t.Setenv("ADVISOR_DATABASE_URL", "postgres://localhost:5432/advisor")
		t.Setenv("ADVISOR_LLM_GEMINI_API_KEY", "test-key")
		t.Setenv("ADVISOR_SERVER_LOG_LEVEL", "verbose")

		_, err := config.Load()
		require.Error(t, err)
	})
}
