package llm

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimitedProvider is a decorator that paces requests through a token
// bucket, so batch runs stay under provider request-per-second limits
// instead of bouncing off 429 responses.
type RateLimitedProvider struct {
	inner   Provider
	limiter *rate.Limiter
}

// WithRateLimit wraps a Provider with a requests-per-second cap.
// A non-positive rps disables pacing and returns the provider unwrapped.
func WithRateLimit(p Provider, rps float64, burst int) Provider {
	if rps <= 0 {
		return p
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimitedProvider{
		inner:   p,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitedProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	// Wait blocks until a token is available or the context ends, so
	// every retry attempt pays for its own token.
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return r.inner.Generate(ctx, req)
}

func (r *RateLimitedProvider) ModelID() string {
	return r.inner.ModelID()
}
