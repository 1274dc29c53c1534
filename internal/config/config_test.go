package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "LLM_PROVIDER", "LLM_API_KEY", "GROQ_API_KEY", "LLM_MODEL", "LLM_BASE_URL",
		"LLM_TEMPERATURE", "LLM_CONTEXT_TOKENS", "MAX_FILE_SIZE", "MIN_RESUME_CHARS",
		"COMPLETION_PHRASES", "SESSION_IDLE_TTL", "SESSION_SWEEP_INTERVAL", "LOG_JSON", "LOG_DEBUG",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "groq", cfg.LLM.Provider)
	assert.Empty(t, cfg.LLM.APIKey)
	assert.Equal(t, 0.7, cfg.LLM.Temperature)
	assert.Equal(t, 8192, cfg.LLM.ContextTokens)
	assert.Equal(t, int64(5_000_000), cfg.Ingestion.MaxFileSize)
	assert.Equal(t, 100, cfg.Ingestion.MinResumeChars)
	assert.True(t, cfg.Interview.CompletionPhrases)
	assert.Equal(t, 2*time.Hour, cfg.Session.IdleTTL)
	assert.Equal(t, 5*time.Minute, cfg.Session.SweepInterval)
	assert.True(t, cfg.Log.Debug)
	assert.False(t, cfg.Log.JSON)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "gem-key")
	t.Setenv("LLM_TEMPERATURE", "0.2")
	t.Setenv("MAX_FILE_SIZE", "1000")
	t.Setenv("COMPLETION_PHRASES", "false")
	t.Setenv("SESSION_IDLE_TTL", "30m")
	t.Setenv("SESSION_SWEEP_INTERVAL", "not-a-duration")
	t.Setenv("LOG_DEBUG", "")
	t.Setenv("LOG_JSON", "true")

	cfg := Load()

	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "gem-key", cfg.LLM.APIKey)
	assert.Equal(t, 0.2, cfg.LLM.Temperature)
	assert.Equal(t, int64(1000), cfg.Ingestion.MaxFileSize)
	assert.False(t, cfg.Interview.CompletionPhrases)
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleTTL)
	assert.Equal(t, 5*time.Minute, cfg.Session.SweepInterval)
	assert.False(t, cfg.Log.Debug)
	assert.True(t, cfg.Log.JSON)
}

func TestLoad_GenericKeyWins(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "groq")
	t.Setenv("LLM_API_KEY", "generic")
	t.Setenv("GROQ_API_KEY", "groq-key")

	assert.Equal(t, "generic", Load().LLM.APIKey)
}

func TestInitLogger(t *testing.T) {
	logger, err := InitLogger(&Config{Log: LogConfig{JSON: true}})
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.False(t, logger.Core().Enabled(-1))
}
