package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiAliases(t *testing.T) {
	assert.Equal(t, "gemini-2.0-flash", canonicalModel("gemini-flash", geminiAliases))
	assert.Equal(t, "gemini-2.0-pro", canonicalModel("gemini-pro", geminiAliases))

	// Exact IDs pass through.
	assert.Equal(t, "gemini-2.5-flash", canonicalModel("gemini-2.5-flash", geminiAliases))
}

func TestGeminiSchema_ConvertsDraftItemDefinition(t *testing.T) {
	schema := geminiSchema(map[string]any{
		"type":        "object",
		"description": "one draft item",
		"properties": map[string]any{
			"stem":           map[string]any{"type": "string"},
			"correct_answer": map[string]any{"type": "string"},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"easy", "medium", "hard"},
			},
			"distractors": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"stem", "correct_answer"},
	})

	assert.Equal(t, "OBJECT", string(schema.Type))
	assert.Equal(t, "one draft item", schema.Description)
	require.Len(t, schema.Properties, 4)

	assert.Equal(t, "STRING", string(schema.Properties["stem"].Type))
	assert.ElementsMatch(t, []string{"easy", "medium", "hard"}, schema.Properties["difficulty"].Enum)

	distractors := schema.Properties["distractors"]
	assert.Equal(t, "ARRAY", string(distractors.Type))
	require.NotNil(t, distractors.Items)
	assert.Equal(t, "STRING", string(distractors.Items.Type))

	assert.ElementsMatch(t, []string{"stem", "correct_answer"}, schema.Required)
}

func TestGeminiSchema_NumericTypes(t *testing.T) {
	schema := geminiSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"max_marks": map[string]any{"type": "integer"},
			"score":     map[string]any{"type": "number"},
			"verified":  map[string]any{"type": "boolean"},
		},
	})

	assert.Equal(t, "INTEGER", string(schema.Properties["max_marks"].Type))
	assert.Equal(t, "NUMBER", string(schema.Properties["score"].Type))
	assert.Equal(t, "BOOLEAN", string(schema.Properties["verified"].Type))
}

func TestGeminiProvider_NewRequiresKey(t *testing.T) {
	_, err := NewGeminiProvider(t.Context(), GeminiConfig{Model: "gemini-flash"})
	require.Error(t, err)
}
