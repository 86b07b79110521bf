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

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

var stemJSON = json.RawMessage(`{"stem":"Differentiate x^2 + 3x.","correct_answer":"2x + 3"}`)

func TestRetry_FirstAttemptSucceeds(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: stemJSON})
	p := WithRetry(mock, fastRetry())

	resp, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.JSONEq(t, string(stemJSON), string(resp.Content))
	assert.Equal(t, 1, mock.CallCount())
}

func TestRetry_OutageThenRecovery(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("upstream 503")}},
		MockResponse{Content: stemJSON},
	)
	p := WithRetry(mock, fastRetry())

	resp, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.JSONEq(t, string(stemJSON), string(resp.Content))
	assert.Equal(t, 2, mock.CallCount())
}

func TestRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	down := MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("upstream 503")}}
	mock := NewMockProvider(down, down, down)
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Request{})
	require.Error(t, err)
	assert.Equal(t, 3, mock.CallCount())
}

func TestRetry_TruncationFailsImmediately(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{"stem":"Find the deriv`)}},
		MockResponse{Content: stemJSON}, // never reached
	)
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Request{})
	var truncated *ErrMaxTokensExceeded
	require.ErrorAs(t, err, &truncated)
	assert.Equal(t, 1, mock.CallCount(), "truncation must not retry")
}

func TestRetry_InvalidResponseGetsExactlyOneRetry(t *testing.T) {
	bad := MockResponse{Err: &ErrInvalidResponse{
		Content: json.RawMessage(`{"stem":"q"}`),
		Err:     errors.New("missing correct_answer"),
	}}
	mock := NewMockProvider(bad, bad, MockResponse{Content: stemJSON})
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Request{})
	require.Error(t, err)
	assert.Equal(t, 2, mock.CallCount(), "one retry, then the error surfaces")
}

func TestRetry_InvalidResponseRecoversOnRetry(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad JSON")}},
		MockResponse{Content: stemJSON},
	)
	p := WithRetry(mock, fastRetry())

	resp, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.JSONEq(t, string(stemJSON), string(resp.Content))
}

func TestRetry_CanceledContextStops(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("upstream 503")}},
		MockResponse{Content: stemJSON},
	)
	p := WithRetry(mock, fastRetry())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{})
	require.Error(t, err)
}

func TestRetry_HonorsRetryAfterHint(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}},
		MockResponse{Content: stemJSON},
	)
	p := WithRetry(mock, fastRetry())

	start := time.Now()
	resp, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), time.Millisecond)
	assert.JSONEq(t, string(stemJSON), string(resp.Content))
	assert.Equal(t, 2, mock.CallCount())
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetry())
	assert.Equal(t, "mock", p.ModelID())
}
