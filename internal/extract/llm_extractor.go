package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/arjun/mcqgen/internal/concept"
	"github.com/arjun/mcqgen/internal/llm"
)

// LLMExtractor implements Extractor using the LLM provider.
type LLMExtractor struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMExtractor with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMExtractor {
	return &LLMExtractor{provider: provider, config: cfg}
}

// conceptOutput is one raw extracted concept before field defaulting.
type conceptOutput struct {
	ConceptID     string   `json:"concept_id"`
	ConceptName   string   `json:"concept_name"`
	Formula       string   `json:"formula"`
	Difficulty    string   `json:"difficulty"`
	Prerequisites []string `json:"prerequisites"`
	Context       string   `json:"context"`
	WorkedExample string   `json:"worked_example"`
}

// conceptListOutput is the raw LLM response envelope.
type conceptListOutput struct {
	Concepts []conceptOutput `json:"concepts"`
}

// Extract parses the source text and returns the concepts found.
func (e *LLMExtractor) Extract(ctx context.Context, sourceText string) ([]concept.Concept, error) {
	ctx = llm.WithPurpose(ctx, "concept-extract")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(sourceText, e.config.Source)},
		},
		Schema:      ConceptListSchema,
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM concept extraction failed: %w", err)
	}

	var raw conceptListOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	concepts := make([]concept.Concept, 0, len(raw.Concepts))
	for i, rc := range raw.Concepts {
		concepts = append(concepts, mapConcept(rc, i))
	}
	return concepts, nil
}

// mapConcept applies the field defaults of the extraction contract:
// a positional ID when the model omitted one, medium difficulty when
// absent, and canonical difficulty casing when recognizable. Anything
// still malformed is left for per-record validation downstream.
func mapConcept(rc conceptOutput, i int) concept.Concept {
	id := strings.TrimSpace(rc.ConceptID)
	if id == "" {
		id = fmt.Sprintf("concept_%d", i+1)
	}

	diff := strings.TrimSpace(rc.Difficulty)
	if diff == "" {
		diff = string(concept.DifficultyMedium)
	} else if parsed, err := concept.ParseDifficulty(diff); err == nil {
		diff = string(parsed)
	}

	return concept.Concept{
		ID:            id,
		Name:          strings.TrimSpace(rc.ConceptName),
		Formula:       strings.TrimSpace(rc.Formula),
		Difficulty:    concept.Difficulty(diff),
		Prerequisites: rc.Prerequisites,
		Context:       strings.TrimSpace(rc.Context),
		WorkedExample: strings.TrimSpace(rc.WorkedExample),
	}
}
