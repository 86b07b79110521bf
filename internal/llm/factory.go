package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/arjun/mcqgen/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware order: caller -> timeout -> retry -> rate limit ->
	// logging -> base. The limiter sits inside retry so every attempt
	// pays for a token, outside logging so recorded latency covers the
	// provider only, and the timeout sits outermost so it bounds the
	// whole request including backoff waits.
	wrapped := base
	if eventRepo != nil {
		wrapped = WithLogging(wrapped, cfg.Provider, eventRepo)
	}
	wrapped = WithRateLimit(wrapped, cfg.RateLimit, cfg.RateBurst)
	wrapped = WithRetry(wrapped, cfg.Retry)
	wrapped = withTimeout(wrapped, cfg.Timeout)

	return wrapped, nil
}

// NewProviderFromEnv builds a fully wrapped Provider from the environment.
// An explicit MCQGEN_LLM_PROVIDER wins; otherwise the standard API key env
// vars are probed in priority order. A nil eventRepo disables request
// logging, for commands that run without a database.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg, err := envConfig()
	if err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, eventRepo)
}

// NewPipelineProviderFromEnv is NewProviderFromEnv with the pipeline retry
// profile: one retry after a fixed delay, then the failure aborts the run.
func NewPipelineProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg, err := envConfig()
	if err != nil {
		return nil, err
	}
	cfg.Retry = PipelineRetryConfig()
	return NewProvider(ctx, cfg, eventRepo)
}

func envConfig() (Config, error) {
	var cfg Config
	if os.Getenv("MCQGEN_LLM_PROVIDER") != "" {
		cfg = ConfigFromEnv()
	} else {
		discovered, ok := DiscoverConfig()
		if !ok {
			return Config{}, fmt.Errorf("no LLM provider configured: set MCQGEN_LLM_PROVIDER or one of GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY")
		}
		cfg = discovered
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
