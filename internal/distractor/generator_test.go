package distractor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/arjun/mcqgen/internal/concept"
	"github.com/arjun/mcqgen/internal/llm"
	"github.com/arjun/mcqgen/internal/stemgen"
	"github.com/arjun/mcqgen/internal/taxonomy"
)

func testItem() stemgen.ValidatedItem {
	return stemgen.ValidatedItem{
		StemCandidate: stemgen.StemCandidate{
			ID:           "q-1",
			ConceptID:    "power-rule-basic",
			Stem:         `Evaluate $\int x^2 \, dx$`,
			Answer:       `$\frac{x^3}{3} + C$`,
			Difficulty:   concept.DifficultyEasy,
			IntegralType: "power_rule",
			LatexValid:   true,
		},
		Score: 1.0,
	}
}

func candidatesJSON() json.RawMessage {
	return json.RawMessage(`{
		"distractors": [
			{"option_text": "$\\frac{x^3}{2} + C$", "error_type": "alg_exp_error", "explanation": "Divided by the old exponent instead of the new one.", "plausibility_score": 0.8},
			{"option_text": "$-\\frac{x^3}{3} + C$", "error_type": "alg_sign_flip", "explanation": "Sign flipped during integration.", "plausibility_score": 0},
			{"option_text": "$\\frac{x^3}{3} + C$", "error_type": "not_const_omitted", "explanation": "Identical to the correct answer.", "plausibility_score": 0.9},
			{"option_text": "", "error_type": "conc_deriv_instead", "explanation": "Empty option.", "plausibility_score": 0.9},
			{"option_text": "$2x$", "error_type": "conc_deriv_instead", "explanation": "Differentiated instead of integrating.", "plausibility_score": 0.3}
		]
	}`)
}

func TestGenerate_MapsAndFiltersCandidates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: candidatesJSON()})
	gen := New(mock, DefaultConfig())

	guidance := taxonomy.Applicable("power_rule", concept.DifficultyEasy)
	got, err := gen.Candidates(context.Background(), testItem(), guidance)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The duplicate of the correct answer and the empty option are
	// dropped, leaving three usable candidates.
	if len(got) != 3 {
		t.Fatalf("expected 3 candidates, got %d: %+v", len(got), got)
	}
	if got[0].ErrorTypeID != "alg_exp_error" || got[0].Plausibility != 0.8 {
		t.Errorf("unexpected first candidate: %+v", got[0])
	}
	if got[1].Plausibility != 0.7 {
		t.Errorf("unscored candidate should default to 0.7, got %v", got[1].Plausibility)
	}
	if got[2].Text != "$2x$" {
		t.Errorf("unexpected last candidate: %+v", got[2])
	}
}

func TestGenerate_PromptCarriesGuidanceAndItem(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: candidatesJSON()})
	gen := New(mock, DefaultConfig())

	guidance := taxonomy.Applicable("power_rule", concept.DifficultyEasy)
	if _, err := gen.Candidates(context.Background(), testItem(), guidance); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected one provider call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != CandidateSchema {
		t.Error("request must carry the candidate schema")
	}
	user := req.Messages[0].Content
	if !strings.Contains(user, `Evaluate $\int x^2 \, dx$`) {
		t.Errorf("prompt missing stem: %q", user)
	}
	if !strings.Contains(user, "alg_exp_error") {
		t.Errorf("prompt missing applicable error id: %q", user)
	}
	if !strings.Contains(user, "Difficulty: easy") {
		t.Errorf("prompt missing difficulty: %q", user)
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")},
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Candidates(context.Background(), testItem(), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Errorf("expected ErrProviderUnavailable in chain, got %v", err)
	}
}

func TestGenerate_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"distractors": "not an array"}`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Candidates(context.Background(), testItem(), nil)
	if err == nil || !strings.Contains(err.Error(), "failed to parse LLM response") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestBuildGuidance_TruncatesAndFallsBack(t *testing.T) {
	many := taxonomy.All()
	if len(many) <= 8 {
		t.Fatalf("taxonomy seed should exceed the guidance cap, got %d", len(many))
	}

	text := buildGuidance(many, 8)
	if got := strings.Count(text, "\n") + 1; got != 8 {
		t.Errorf("expected 8 guidance lines, got %d", got)
	}

	if text := buildGuidance(nil, 8); !strings.Contains(text, "any common student error") {
		t.Errorf("empty guidance should fall back to a generic line, got %q", text)
	}
}
