package extract

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/arjun/mcqgen/internal/concept"
	"github.com/arjun/mcqgen/internal/llm"
)

func conceptsJSON() json.RawMessage {
	return json.RawMessage(`{
		"concepts": [
			{
				"concept_id": "power_rule_basic",
				"concept_name": "Power rule for integration",
				"formula": "x^2",
				"difficulty": "easy",
				"prerequisites": [],
				"context": "The integral of x^n is x^(n+1)/(n+1) for n != -1.",
				"worked_example": "For x^3 the answer is x^4/4 + C."
			},
			{
				"concept_name": "Integration by substitution",
				"formula": "2*x*cos(x^2)",
				"difficulty": "MEDIUM",
				"prerequisites": ["power_rule_basic"],
				"context": "Substitute u for an inner function whose derivative appears as a factor."
			}
		]
	}`)
}

func TestExtract_MapsAndDefaults(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: conceptsJSON()})
	ex := New(mock, DefaultConfig())

	got, err := ex.Extract(context.Background(), "chapter text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 concepts, got %d", len(got))
	}

	first := got[0]
	if first.ID != "power_rule_basic" {
		t.Errorf("unexpected ID %q", first.ID)
	}
	if first.Name != "Power rule for integration" {
		t.Errorf("unexpected name %q", first.Name)
	}
	if first.Difficulty != concept.DifficultyEasy {
		t.Errorf("unexpected difficulty %q", first.Difficulty)
	}
	if first.WorkedExample == "" {
		t.Error("expected worked example carried over")
	}

	second := got[1]
	if second.ID != "concept_2" {
		t.Errorf("expected positional default ID, got %q", second.ID)
	}
	if second.Difficulty != concept.DifficultyMedium {
		t.Errorf("expected MEDIUM normalized to medium, got %q", second.Difficulty)
	}
	if len(second.Prerequisites) != 1 || second.Prerequisites[0] != "power_rule_basic" {
		t.Errorf("unexpected prerequisites %v", second.Prerequisites)
	}
}

func TestExtract_MissingDifficultyDefaultsToMedium(t *testing.T) {
	raw := json.RawMessage(`{
		"concepts": [
			{"concept_id": "c1", "concept_name": "N", "formula": "x", "context": "Some context."}
		]
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	ex := New(mock, DefaultConfig())

	got, err := ex.Extract(context.Background(), "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Difficulty != concept.DifficultyMedium {
		t.Errorf("expected medium default, got %q", got[0].Difficulty)
	}
}

func TestExtract_UnknownDifficultyKept(t *testing.T) {
	raw := json.RawMessage(`{
		"concepts": [
			{"concept_id": "c1", "concept_name": "N", "formula": "x", "difficulty": "brutal", "context": "Some context."}
		]
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	ex := New(mock, DefaultConfig())

	got, err := ex.Extract(context.Background(), "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Left as-is so per-record validation rejects it later.
	if got[0].Difficulty != concept.Difficulty("brutal") {
		t.Errorf("expected unknown difficulty preserved, got %q", got[0].Difficulty)
	}
	if got[0].Validate() == nil {
		t.Error("expected downstream validation to reject the unknown difficulty")
	}
}

func TestExtract_PromptModes(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: conceptsJSON()},
		llm.MockResponse{Content: conceptsJSON()},
	)

	chapterCfg := DefaultConfig()
	if _, err := New(mock, chapterCfg).Extract(context.Background(), "SOURCE-A"); err != nil {
		t.Fatalf("chapter extract: %v", err)
	}

	mcqCfg := DefaultConfig()
	mcqCfg.Source = SourceMCQs
	if _, err := New(mock, mcqCfg).Extract(context.Background(), "SOURCE-B"); err != nil {
		t.Fatalf("mcq extract: %v", err)
	}

	chapterMsg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(chapterMsg, "chapter content") || !strings.Contains(chapterMsg, "SOURCE-A") {
		t.Errorf("chapter prompt missing mode framing: %q", chapterMsg)
	}
	mcqMsg := mock.Calls[1].Messages[0].Content
	if !strings.Contains(mcqMsg, "existing MCQs") || !strings.Contains(mcqMsg, "SOURCE-B") {
		t.Errorf("mcq prompt missing mode framing: %q", mcqMsg)
	}

	if mock.Calls[0].Schema != ConceptListSchema {
		t.Error("expected the concept list schema on the request")
	}
}

func TestExtract_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("API error")})
	ex := New(mock, DefaultConfig())

	_, err := ex.Extract(context.Background(), "text")
	if err == nil {
		t.Fatal("expected error from provider")
	}
	if !strings.Contains(err.Error(), "LLM concept extraction failed") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestExtract_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`[not an envelope]`)})
	ex := New(mock, DefaultConfig())

	_, err := ex.Extract(context.Background(), "text")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "failed to parse LLM response") {
		t.Errorf("unexpected error message: %v", err)
	}
}
