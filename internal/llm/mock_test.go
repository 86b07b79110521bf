package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMockProvider_ReplaysScriptInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"stem":"Differentiate x^3.","correct_answer":"3x^2"}`),
			Usage:   Usage{InputTokens: 12, OutputTokens: 9, TotalTokens: 21},
		},
		MockResponse{Content: json.RawMessage(`{"stem":"Integrate 2x dx.","correct_answer":"x^2 + C"}`)},
	)

	first, err := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "one derivative item"}},
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"stem":"Differentiate x^3.","correct_answer":"3x^2"}`, string(first.Content))
	require.Equal(t, 12, first.Usage.InputTokens)
	require.Equal(t, "end", first.StopReason)
	require.Equal(t, "mock", first.Model)

	second, err := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "one integral item"}},
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"stem":"Integrate 2x dx.","correct_answer":"x^2 + C"}`, string(second.Content))
}

func TestMockProvider_ExhaustedScriptFailsLoudly(t *testing.T) {
	mock := NewMockProvider()

	_, err := mock.Generate(context.Background(), Request{})
	require.Error(t, err)

	var unavailable *ErrProviderUnavailable
	require.ErrorAs(t, err, &unavailable)
}

func TestMockProvider_RecordsEveryRequest(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	_, _ = mock.Generate(context.Background(), Request{
		System:      "You write calculus questions.",
		Messages:    []Message{{Role: RoleUser, Content: "chain rule, medium"}},
		MaxTokens:   512,
		Temperature: 0.4,
	})

	require.Equal(t, 1, mock.CallCount())
	require.Equal(t, "You write calculus questions.", mock.Calls[0].System)
	require.Equal(t, 512, mock.Calls[0].MaxTokens)
	require.InDelta(t, 0.4, mock.Calls[0].Temperature, 1e-9)
}

func TestMockProvider_ScriptedErrorIsReturnedAsIs(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{Err: errors.New("scripted 429")}},
	)

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	require.ErrorAs(t, err, &rl)
}

func TestMockProvider_AddResponseExtendsScript(t *testing.T) {
	mock := NewMockProvider()
	mock.AddResponse(MockResponse{Content: json.RawMessage(`{"stem":"What is lim x->0 sin(x)/x?","correct_answer":"1"}`)})

	resp, err := mock.Generate(context.Background(), Request{})
	require.NoError(t, err)
	require.Contains(t, string(resp.Content), "sin(x)/x")
	require.Equal(t, "mock", mock.ModelID())
}
