package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slowProvider waits before answering, honoring cancellation.
type slowProvider struct {
	wait time.Duration
}

func (s slowProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.wait):
		return &Response{Content: json.RawMessage(`{}`), Model: "slow", StopReason: "end"}, nil
	}
}

func (s slowProvider) ModelID() string { return "slow" }

func TestWithTimeout_CutsOffSlowRequests(t *testing.T) {
	p := withTimeout(slowProvider{wait: time.Second}, 5*time.Millisecond)

	_, err := p.Generate(context.Background(), Request{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestWithTimeout_FastRequestsPass(t *testing.T) {
	p := withTimeout(slowProvider{wait: time.Millisecond}, time.Second)

	resp, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, "slow", resp.Model)
	assert.Equal(t, "slow", p.ModelID())
}

func TestWithTimeout_ZeroLimitIsANoOp(t *testing.T) {
	mock := NewMockProvider()
	assert.Same(t, mock, withTimeout(mock, 0))
}
