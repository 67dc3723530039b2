package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "autopecas-api", cfg.ServiceName)
	assert.Equal(t, 3000, cfg.HTTPPort)
	assert.Equal(t, ProviderGemini, cfg.CompletionProvider)
	assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
	assert.Equal(t, 15*time.Second, cfg.CompletionTimeout)
	assert.Equal(t, 20, cfg.HistoryLimit)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, ":9091", cfg.MetricsAddr())
}

func TestLoadMissingGeminiKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("COMPLETION_PROVIDER", "gemini")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoadOpenAIProvider(t *testing.T) {
	t.Setenv("COMPLETION_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, cfg.CompletionProvider)
}

func TestLoadMissingOpenAIKey(t *testing.T) {
	t.Setenv("COMPLETION_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestLoadUnknownProvider(t *testing.T) {
	t.Setenv("COMPLETION_PROVIDER", "llama-at-home")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COMPLETION_PROVIDER")
}

func TestLoadRejectsBadLimits(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("HISTORY_LIMIT", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HISTORY_LIMIT")
}
