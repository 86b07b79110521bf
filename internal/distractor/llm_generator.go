package distractor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/arjun/mcqgen/internal/llm"
	"github.com/arjun/mcqgen/internal/stemgen"
	"github.com/arjun/mcqgen/internal/taxonomy"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// candidateOutput is the raw LLM response shape before mapping.
type candidateOutput struct {
	OptionText   string  `json:"option_text"`
	ErrorType    string  `json:"error_type"`
	Explanation  string  `json:"explanation"`
	Plausibility float64 `json:"plausibility_score"`
}

type distractorOutput struct {
	Distractors []candidateOutput `json:"distractors"`
}

// Candidates proposes wrong answers for the item, one error type each.
func (g *LLMGenerator) Candidates(ctx context.Context, item stemgen.ValidatedItem, guidance []*taxonomy.ErrorType) ([]Candidate, error) {
	ctx = llm.WithPurpose(ctx, "distractor-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(item, guidance, g.config)},
		},
		Schema:      CandidateSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM distractor generation failed: %w", err)
	}

	var raw distractorOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	out := make([]Candidate, 0, len(raw.Distractors))
	for _, d := range raw.Distractors {
		if strings.TrimSpace(d.OptionText) == "" {
			continue
		}
		// An option equal to the correct answer would give the
		// assembled question two correct labels.
		if d.OptionText == item.Answer {
			continue
		}
		score := d.Plausibility
		if score == 0 {
			score = 0.7
		}
		if score < 0 {
			score = 0
		}
		if score > 1 {
			score = 1
		}
		out = append(out, Candidate{
			Text:         d.OptionText,
			ErrorTypeID:  d.ErrorType,
			Plausibility: score,
			Explanation:  d.Explanation,
		})
	}
	return out, nil
}
