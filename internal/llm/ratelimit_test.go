package llm

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestRateLimit_DisabledPassesThrough(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithRateLimit(mock, 0, 0)

	if p != Provider(mock) {
		t.Fatal("rps=0 should return the provider unwrapped")
	}
	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestRateLimit_PacesSecondRequest(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	// 50 rps, burst 1: the second call must wait ~20ms for a token.
	p := WithRateLimit(mock, 50, 1)

	start := time.Now()
	for i := 0; i < 2; i++ {
		if _, err := p.Generate(context.Background(), Request{}); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Fatalf("two calls at 50rps finished in %v, limiter not pacing", elapsed)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRateLimit_CancelledContext(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	// Exhaust the burst token, then cancel while the next call waits.
	p := WithRateLimit(mock, 0.001, 1)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("first call: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected context error while waiting for a token")
	}
	if mock.CallCount() != 1 {
		t.Fatalf("cancelled call must not reach the provider, got %d calls", mock.CallCount())
	}
}

func TestRateLimit_ModelIDDelegates(t *testing.T) {
	mock := NewMockProvider()
	p := WithRateLimit(mock, 1, 1)
	if p.ModelID() != "mock" {
		t.Fatalf("ModelID = %q, want mock", p.ModelID())
	}
}
