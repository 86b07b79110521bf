package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubOpenAI(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = server.URL + "/v1"

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  "gpt-4o-mini",
	}
}

func openaiReply(content, finishReason string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-01",
			"object":  "chat.completion",
			"created": 1760000000,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index":         0,
					"message":       map[string]any{"role": "assistant", "content": content},
					"finish_reason": finishReason,
				},
			},
			"usage": map[string]any{
				"prompt_tokens":     48,
				"completion_tokens": 19,
				"total_tokens":      67,
			},
		})
	}
}

func openaiFailure(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"type": "server_error", "message": "stubbed failure"},
		})
	}
}

func TestOpenAIProvider_Generate(t *testing.T) {
	p := stubOpenAI(t, openaiReply(`{"stem":"Evaluate \\int_0^1 3x^2\\,dx.","correct_answer":"1"}`, "stop"))

	resp, err := p.Generate(context.Background(), Request{
		System:    "You write calculus multiple-choice items.",
		Messages:  []Message{{Role: RoleUser, Content: "One definite integral item."}},
		MaxTokens: 512,
	})
	require.NoError(t, err)

	assert.Contains(t, string(resp.Content), `\\int_0^1`)
	assert.Equal(t, 48, resp.Usage.InputTokens)
	assert.Equal(t, 19, resp.Usage.OutputTokens)
	assert.Equal(t, 67, resp.Usage.TotalTokens)
	assert.Equal(t, "end", resp.StopReason)
}

func TestOpenAIProvider_TruncatedCompletionReportsMaxTokens(t *testing.T) {
	p := stubOpenAI(t, openaiReply(`{"stem":"Evaluate`, "length"))

	resp, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "one item"}},
		MaxTokens: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, "max_tokens", resp.StopReason)
}

func TestOpenAIProvider_RateLimitMapsTo429Error(t *testing.T) {
	p := stubOpenAI(t, openaiFailure(http.StatusTooManyRequests))

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "one item"}},
		MaxTokens: 256,
	})
	var rl *ErrRateLimit
	require.ErrorAs(t, err, &rl)
}

func TestOpenAIProvider_ServerErrorMapsToUnavailable(t *testing.T) {
	p := stubOpenAI(t, openaiFailure(http.StatusInternalServerError))

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "one item"}},
		MaxTokens: 256,
	})
	var unavailable *ErrProviderUnavailable
	require.ErrorAs(t, err, &unavailable)
}

func TestOpenAIProvider_NewRequiresKey(t *testing.T) {
	_, err := NewOpenAIProvider(OpenAIConfig{Model: "gpt-4o-mini"})
	require.Error(t, err)
}

func TestOpenAIProvider_CustomBaseURL(t *testing.T) {
	p, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-4o",
		BaseURL: "https://openrouter.ai/api/v1",
	})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", p.ModelID())
}
