package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one scripted reply for MockProvider. A non-nil Err
// is returned instead of a response, which is how tests script
// provider failures.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays a script of responses in order and records
// every request it receives. Once the script runs out it reports
// ErrProviderUnavailable, so a test that makes more calls than it
// scripted fails loudly instead of looping. Safe for concurrent use.
type MockProvider struct {
	mu     sync.Mutex
	script []MockResponse
	played int

	// Calls holds every request in arrival order. Read it only after
	// the code under test has returned.
	Calls []Request
}

// NewMockProvider scripts a provider with the given replies.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{script: responses}
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if m.played >= len(m.script) {
		return nil, &ErrProviderUnavailable{}
	}
	next := m.script[m.played]
	m.played++

	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

// AddResponse appends another reply to the script.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, resp)
}

// CallCount reports how many requests have been made so far.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
