package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftItemSchema() *Schema {
	return &Schema{
		Name:        "draft-item",
		Description: "A draft multiple-choice calculus item",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"stem":           map[string]any{"type": "string"},
				"correct_answer": map[string]any{"type": "string"},
				"difficulty":     map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
				"max_marks":      map[string]any{"type": "integer", "minimum": 1},
			},
			"required": []any{"stem", "correct_answer"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{
			name: "complete item",
			raw:  `{"stem":"Differentiate sin(2x).","correct_answer":"2\\cos(2x)","difficulty":"medium","max_marks":2}`,
		},
		{
			name: "optional fields omitted",
			raw:  `{"stem":"Integrate x dx.","correct_answer":"\\frac{x^2}{2} + C"}`,
		},
		{
			name:    "missing correct answer",
			raw:     `{"stem":"Differentiate x^4."}`,
			wantErr: true,
		},
		{
			name:    "marks below minimum",
			raw:     `{"stem":"q","correct_answer":"a","max_marks":0}`,
			wantErr: true,
		},
		{
			name:    "difficulty outside enum",
			raw:     `{"stem":"q","correct_answer":"a","difficulty":"impossible"}`,
			wantErr: true,
		},
		{
			name:    "stem has wrong type",
			raw:     `{"stem":7,"correct_answer":"a"}`,
			wantErr: true,
		},
		{
			name:    "not JSON at all",
			raw:     `Here is your question: what is 2+2?`,
			wantErr: true,
		},
		{
			name:    "empty response",
			raw:     ``,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(draftItemSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)

			var invalid *ErrInvalidResponse
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.raw, string(invalid.Content), "payload travels with the error")
		})
	}
}

func TestValidateResponse_NilSchemaAcceptsAnything(t *testing.T) {
	err := validateResponse(nil, json.RawMessage(`plain prose, not JSON`))
	assert.NoError(t, err)
}

func TestValidateResponse_NestedDistractorList(t *testing.T) {
	schema := &Schema{
		Name: "distractor-list",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"candidates": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"option_text": map[string]any{"type": "string"},
							"error_type":  map[string]any{"type": "string"},
						},
						"required": []any{"option_text"},
					},
				},
			},
			"required": []any{"candidates"},
		},
	}

	ok := json.RawMessage(`{"candidates":[{"option_text":"\\cos(2x)","error_type":"forgot-chain-rule"},{"option_text":"2\\sin(2x)"}]}`)
	assert.NoError(t, validateResponse(schema, ok))

	bad := json.RawMessage(`{"candidates":[{"error_type":"forgot-chain-rule"}]}`)
	assert.Error(t, validateResponse(schema, bad), "candidate without option_text")
}

func TestValidateResponse_CacheServesRepeatCalls(t *testing.T) {
	// Two validations against the same schema name exercise the cached
	// compile path.
	schema := draftItemSchema()
	raw := json.RawMessage(`{"stem":"s","correct_answer":"a"}`)

	require.NoError(t, validateResponse(schema, raw))
	require.NoError(t, validateResponse(schema, raw))
}
