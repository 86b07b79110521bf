package llm

import (
	"context"
	"time"
)

// timeoutProvider bounds every request with a deadline. It sits
// outermost in the middleware stack so the bound covers retries and
// rate limit waits, not just the provider call.
type timeoutProvider struct {
	inner Provider
	limit time.Duration
}

// withTimeout wraps p with a per-request deadline. A non-positive
// limit returns p unwrapped.
func withTimeout(p Provider, limit time.Duration) Provider {
	if limit <= 0 {
		return p
	}
	return &timeoutProvider{inner: p, limit: limit}
}

func (t *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.limit)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

func (t *timeoutProvider) ModelID() string { return t.inner.ModelID() }
