package distractor

import (
	"github.com/arjun/mcqgen/internal/llm"
	"github.com/arjun/mcqgen/internal/taxonomy"
)

// CandidateSchema defines the JSON schema for LLM distractor responses.
// The error_type enum is built from the taxonomy so the model cannot
// invent ids the ranker has never seen.
var CandidateSchema = &llm.Schema{
	Name:        "distractor-candidates",
	Description: "Plausible wrong answers for a calculus multiple-choice question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"distractors": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"option_text": map[string]any{
							"type":        "string",
							"description": "The wrong answer in the same LaTeX format as the correct answer",
						},
						"error_type": map[string]any{
							"type":        "string",
							"enum":        errorTypeIDs(),
							"description": "Id of the single simulated error type",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "The mistake that produces this option, phrased for an instructor",
						},
						"plausibility_score": map[string]any{
							"type":        "number",
							"minimum":     0,
							"maximum":     1,
							"description": "How likely a real student is to make this exact mistake",
						},
					},
					"required":             []any{"option_text", "error_type", "explanation", "plausibility_score"},
					"additionalProperties": false,
				},
				"description": "The requested number of distinct wrong answers",
			},
		},
		"required":             []any{"distractors"},
		"additionalProperties": false,
	},
}

func errorTypeIDs() []any {
	all := taxonomy.All()
	ids := make([]any, len(all))
	for i, et := range all {
		ids[i] = et.ID
	}
	return ids
}
