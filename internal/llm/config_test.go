package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: "MCQGEN_ANTHROPIC_API_KEY",
		},
		{
			name: "anthropic with key",
			cfg:  Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}},
		},
		{
			name:    "gemini without key",
			cfg:     Config{Provider: "gemini"},
			wantErr: "MCQGEN_GEMINI_API_KEY",
		},
		{
			name: "openrouter with key",
			cfg:  Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "sk-or-test"}},
		},
		{
			name: "mock needs no key",
			cfg:  Config{Provider: "mock"},
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "bedrock"},
			wantErr: "unknown LLM provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigFromEnv_OverridesDefaults(t *testing.T) {
	t.Setenv("MCQGEN_LLM_PROVIDER", "openai")
	t.Setenv("MCQGEN_OPENAI_API_KEY", "sk-env")
	t.Setenv("MCQGEN_OPENAI_MODEL", "gpt-4o")
	t.Setenv("MCQGEN_LLM_RATE_LIMIT", "2.5")

	cfg := ConfigFromEnv()

	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "sk-env", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.InDelta(t, 2.5, cfg.RateLimit, 1e-9)

	// Untouched sections keep their defaults.
	assert.Equal(t, "claude-haiku", cfg.Anthropic.Model)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
}

func TestConfigFromEnv_IgnoresBadRateLimit(t *testing.T) {
	t.Setenv("MCQGEN_LLM_RATE_LIMIT", "fast")

	cfg := ConfigFromEnv()
	assert.Zero(t, cfg.RateLimit)
}

func TestDiscoverConfig_ProbeOrder(t *testing.T) {
	clearProviderKeys(t)

	_, ok := DiscoverConfig()
	require.False(t, ok, "no keys set")

	// With several keys present the earliest probe wins.
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("OPENAI_API_KEY", "sk-oai")

	cfg, ok := DiscoverConfig()
	require.True(t, ok)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "sk-oai", cfg.OpenAI.APIKey)

	t.Setenv("GEMINI_API_KEY", "sk-gem")

	cfg, ok = DiscoverConfig()
	require.True(t, ok)
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "sk-gem", cfg.Gemini.APIKey)
}

func clearProviderKeys(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestPipelineRetryConfig_SingleFixedRetry(t *testing.T) {
	cfg := PipelineRetryConfig()

	assert.Equal(t, 2, cfg.MaxAttempts)
	assert.Equal(t, cfg.InitialWait, cfg.MaxWait, "pipeline backoff is flat")
	assert.InDelta(t, 1.0, cfg.Multiplier, 1e-9)
}

func TestDefaultConfig_TimeoutCoversBatchCompletions(t *testing.T) {
	cfg := DefaultConfig()
	assert.GreaterOrEqual(t, cfg.Timeout, time.Minute)
}
