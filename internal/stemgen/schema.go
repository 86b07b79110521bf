package stemgen

import "github.com/arjun/mcqgen/internal/llm"

// StemSchema defines the JSON schema for LLM stem generation responses.
var StemSchema = &llm.Schema{
	Name:        "integral-stem",
	Description: "A single integration question stem with its correct answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"stem": map[string]any{
				"type":        "string",
				"description": "The question text with $LaTeX$ math expressions",
			},
			"correct_answer": map[string]any{
				"type":        "string",
				"description": "The correct antiderivative as a $LaTeX$ expression, including + C for indefinite integrals",
			},
			"integral_type": map[string]any{
				"type":        "string",
				"description": "The technique the question exercises, e.g. power_rule, substitution, by_parts, trigonometric, exponential",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "Brief explanation of why the answer is correct",
			},
		},
		"required":             []any{"stem", "correct_answer", "integral_type", "reasoning"},
		"additionalProperties": false,
	},
}
