package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubAnthropic(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
	)
	return &AnthropicProvider{client: &client, model: "claude-haiku-4-5-20251001"}
}

func anthropicReply(text string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":   "msg_01",
			"type": "message",
			"role": "assistant",
			"content": []map[string]any{
				{"type": "text", "text": text},
			},
			"model":       "claude-haiku-4-5-20251001",
			"stop_reason": "end_turn",
			"usage": map[string]any{
				"input_tokens":  64,
				"output_tokens": 22,
			},
		})
	}
}

func anthropicFailure(status int, errType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": errType, "message": "stubbed failure"},
		})
	}
}

func TestAnthropicProvider_Generate(t *testing.T) {
	p := stubAnthropic(t, anthropicReply(`{"stem":"Differentiate \\ln(x^2).","correct_answer":"\\frac{2}{x}"}`))

	resp, err := p.Generate(context.Background(), Request{
		System:    "You write calculus multiple-choice items.",
		Messages:  []Message{{Role: RoleUser, Content: "One item on logarithmic differentiation."}},
		MaxTokens: 512,
	})
	require.NoError(t, err)

	assert.Contains(t, string(resp.Content), `\\ln(x^2)`)
	assert.Equal(t, 64, resp.Usage.InputTokens)
	assert.Equal(t, 22, resp.Usage.OutputTokens)
	assert.Equal(t, 86, resp.Usage.TotalTokens)
	assert.Equal(t, "end", resp.StopReason)
	assert.Equal(t, "claude-haiku-4-5-20251001", resp.Model)
}

func TestAnthropicProvider_RateLimitMapsTo429Error(t *testing.T) {
	p := stubAnthropic(t, anthropicFailure(http.StatusTooManyRequests, "rate_limit_error"))

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "one item"}},
		MaxTokens: 256,
	})
	var rl *ErrRateLimit
	require.ErrorAs(t, err, &rl)
}

func TestAnthropicProvider_ServerErrorMapsToUnavailable(t *testing.T) {
	p := stubAnthropic(t, anthropicFailure(http.StatusInternalServerError, "api_error"))

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "one item"}},
		MaxTokens: 256,
	})
	var unavailable *ErrProviderUnavailable
	require.ErrorAs(t, err, &unavailable)
}

func TestAnthropicProvider_NewRequiresKey(t *testing.T) {
	_, err := NewAnthropicProvider(AnthropicConfig{Model: "claude-haiku"})
	require.Error(t, err)
}

func TestAnthropicAliases(t *testing.T) {
	assert.Equal(t, "claude-sonnet-4-20250514", canonicalModel("claude-sonnet", anthropicAliases))
	assert.Equal(t, "claude-haiku-4-5-20251001", canonicalModel("claude-haiku", anthropicAliases))

	// Exact IDs pass through.
	assert.Equal(t, "claude-opus-4-5-20251101", canonicalModel("claude-opus-4-5-20251101", anthropicAliases))
}
