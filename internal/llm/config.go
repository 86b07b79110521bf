package llm

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config selects and tunes a model provider. DefaultConfig supplies
// the baseline; ConfigFromEnv and DiscoverConfig build one from the
// environment.
type Config struct {
	// Provider picks the backend: "anthropic", "openai", "gemini",
	// "openrouter" or "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single request, retries included.
	Timeout time.Duration

	// RateLimit caps outbound requests per second across the process.
	// Zero disables pacing.
	RateLimit float64

	// RateBurst is the token bucket size when RateLimit is set.
	RateBurst int
}

// AnthropicConfig configures the Anthropic backend.
type AnthropicConfig struct {
	APIKey string
	Model  string // alias or exact ID, default "claude-haiku"
}

// OpenAIConfig configures the OpenAI backend. BaseURL points the same
// adapter at any OpenAI-compatible endpoint.
type OpenAIConfig struct {
	APIKey  string
	Model   string // alias or exact ID, default "gpt-4o-mini"
	BaseURL string
}

// GeminiConfig configures the Google Gemini backend.
type GeminiConfig struct {
	APIKey string
	Model  string // alias or exact ID, default "gemini-flash"
}

// OpenRouterConfig configures the OpenRouter backend. Models use the
// "vendor/model" form and pass through unmapped.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // default "google/gemini-2.0-flash-exp"
	BaseURL string // default "https://openrouter.ai/api/v1"
}

// RetryConfig is the retry policy for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the baseline configuration.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		// Generous enough for a full batch completion on a slow model.
		Timeout: 2 * time.Minute,
	}
}

// PipelineRetryConfig returns the retry profile for batch pipeline
// runs: one retry after a short fixed delay, then the failure is fatal
// for the run. Interactive surfaces keep the default multi-attempt
// backoff.
func PipelineRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 2,
		InitialWait: 2 * time.Second,
		MaxWait:     2 * time.Second,
		Multiplier:  1.0,
	}
}

// ConfigFromEnv reads MCQGEN_* variables over the defaults. Unset
// variables leave the default in place.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	overrideFromEnv(&cfg.Provider, "MCQGEN_LLM_PROVIDER")

	overrideFromEnv(&cfg.Anthropic.APIKey, "MCQGEN_ANTHROPIC_API_KEY")
	overrideFromEnv(&cfg.Anthropic.Model, "MCQGEN_ANTHROPIC_MODEL")

	overrideFromEnv(&cfg.OpenAI.APIKey, "MCQGEN_OPENAI_API_KEY")
	overrideFromEnv(&cfg.OpenAI.Model, "MCQGEN_OPENAI_MODEL")
	overrideFromEnv(&cfg.OpenAI.BaseURL, "MCQGEN_OPENAI_BASE_URL")

	overrideFromEnv(&cfg.Gemini.APIKey, "MCQGEN_GEMINI_API_KEY")
	overrideFromEnv(&cfg.Gemini.Model, "MCQGEN_GEMINI_MODEL")

	overrideFromEnv(&cfg.OpenRouter.APIKey, "MCQGEN_OPENROUTER_API_KEY")
	overrideFromEnv(&cfg.OpenRouter.Model, "MCQGEN_OPENROUTER_MODEL")

	if v := os.Getenv("MCQGEN_LLM_RATE_LIMIT"); v != "" {
		if rps, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RateLimit = rps
		}
	}

	return cfg
}

func overrideFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DiscoverConfig probes the conventional API key variables and returns
// a Config for the first provider that has one set. The probe order
// fixes which provider wins when several keys are present.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	probes := []struct {
		env      string
		provider string
		key      *string
	}{
		{"GEMINI_API_KEY", "gemini", &cfg.Gemini.APIKey},
		{"OPENAI_API_KEY", "openai", &cfg.OpenAI.APIKey},
		{"ANTHROPIC_API_KEY", "anthropic", &cfg.Anthropic.APIKey},
		{"OPENROUTER_API_KEY", "openrouter", &cfg.OpenRouter.APIKey},
	}
	for _, p := range probes {
		if k := os.Getenv(p.env); k != "" {
			cfg.Provider = p.provider
			*p.key = k
			return cfg, true
		}
	}

	return Config{}, false
}

// Validate checks that the selected provider has its API key set.
func (c Config) Validate() error {
	if c.Provider == "mock" {
		return nil
	}

	required := map[string]struct {
		key string
		env string
	}{
		"anthropic":  {c.Anthropic.APIKey, "MCQGEN_ANTHROPIC_API_KEY"},
		"openai":     {c.OpenAI.APIKey, "MCQGEN_OPENAI_API_KEY"},
		"gemini":     {c.Gemini.APIKey, "MCQGEN_GEMINI_API_KEY"},
		"openrouter": {c.OpenRouter.APIKey, "MCQGEN_OPENROUTER_API_KEY"},
	}

	req, ok := required[c.Provider]
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if req.key == "" {
		return fmt.Errorf("%s is required for the %s provider", req.env, c.Provider)
	}
	return nil
}
