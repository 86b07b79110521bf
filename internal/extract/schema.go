package extract

import "github.com/arjun/mcqgen/internal/llm"

// ConceptListSchema defines the JSON schema for LLM concept extraction
// responses. Per-entry requirements stay loose so one malformed concept
// degrades to a record-level drop instead of failing the whole payload.
var ConceptListSchema = &llm.Schema{
	Name:        "concept-list",
	Description: "Atomic integration concepts extracted from source material",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"concepts": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"concept_id": map[string]any{
							"type":        "string",
							"description": "Unique identifier in snake_case",
						},
						"concept_name": map[string]any{
							"type":        "string",
							"description": "Human readable name",
						},
						"formula": map[string]any{
							"type":        "string",
							"description": "Representative integrand in plain calculator notation, e.g. x^2 or sin(2*x)",
						},
						"difficulty": map[string]any{
							"type":        "string",
							"description": "easy (recall), medium (application) or hard (multi-step)",
						},
						"prerequisites": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "IDs of concepts required beforehand",
						},
						"context": map[string]any{
							"type":        "string",
							"description": "2-3 sentences explaining the concept and when to use it",
						},
						"worked_example": map[string]any{
							"type":        "string",
							"description": "Optional worked problem demonstrating the concept",
						},
					},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"concepts"},
		"additionalProperties": false,
	},
}
