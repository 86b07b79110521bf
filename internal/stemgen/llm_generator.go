package stemgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/arjun/mcqgen/internal/concept"
	"github.com/arjun/mcqgen/internal/llm"
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

// stemOutput is the raw LLM response before validation.
type stemOutput struct {
	Stem          string `json:"stem"`
	CorrectAnswer string `json:"correct_answer"`
	IntegralType  string `json:"integral_type"`
	Reasoning     string `json:"reasoning"`
}

// Generate produces a single stem candidate for the given concept.
func (g *LLMGenerator) Generate(ctx context.Context, c concept.Concept) (*StemCandidate, error) {
	ctx = llm.WithPurpose(ctx, "stem-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(c)},
		},
		Schema:      StemSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM stem generation failed: %w", err)
	}

	var raw stemOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	integralType := raw.IntegralType
	if integralType == "" {
		integralType = "unknown"
	}

	stemOK, _ := CheckLatex(raw.Stem)
	answerOK, _ := CheckLatex(raw.CorrectAnswer)

	cand := &StemCandidate{
		ID:           uuid.NewString(),
		ConceptID:    c.ID,
		Stem:         raw.Stem,
		Answer:       raw.CorrectAnswer,
		Difficulty:   c.Difficulty,
		IntegralType: integralType,
		Reasoning:    raw.Reasoning,
		LatexValid:   stemOK && answerOK,
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(cand, c); verr != nil {
			return nil, verr
		}
	}

	return cand, nil
}
