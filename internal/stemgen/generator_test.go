package stemgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/arjun/mcqgen/internal/concept"
	"github.com/arjun/mcqgen/internal/llm"
)

func testConcept() concept.Concept {
	return concept.Concept{
		ID:         "power-rule-basic",
		Name:       "Power rule for integration",
		Formula:    "x^2",
		Difficulty: concept.DifficultyEasy,
		Context:    "The integral of x^n is x^(n+1)/(n+1) for n != -1.",
	}
}

func validStemJSON() json.RawMessage {
	return json.RawMessage(`{
		"stem": "Evaluate $\\int x^2 \\, dx$",
		"correct_answer": "$\\frac{x^3}{3} + C$",
		"integral_type": "power_rule",
		"reasoning": "Raise the exponent by one and divide by the new exponent."
	}`)
}

func TestGenerate_MapsFields(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validStemJSON()})
	gen := New(mock, DefaultConfig())

	cand, err := gen.Generate(context.Background(), testConcept())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cand.ID == "" {
		t.Error("expected a generated candidate ID")
	}
	if cand.ConceptID != "power-rule-basic" {
		t.Errorf("unexpected concept ID %q", cand.ConceptID)
	}
	if cand.Stem != `Evaluate $\int x^2 \, dx$` {
		t.Errorf("unexpected stem: %q", cand.Stem)
	}
	if cand.Answer != `$\frac{x^3}{3} + C$` {
		t.Errorf("unexpected answer: %q", cand.Answer)
	}
	if cand.Difficulty != concept.DifficultyEasy {
		t.Errorf("expected difficulty inherited from concept, got %q", cand.Difficulty)
	}
	if cand.IntegralType != "power_rule" {
		t.Errorf("unexpected integral type %q", cand.IntegralType)
	}
	if !cand.LatexValid {
		t.Error("expected LatexValid for well-formed math")
	}
}

func TestGenerate_DistinctIDs(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validStemJSON()},
		llm.MockResponse{Content: validStemJSON()},
	)
	gen := New(mock, DefaultConfig())

	a, err := gen.Generate(context.Background(), testConcept())
	if err != nil {
		t.Fatalf("first generate: %v", err)
	}
	b, err := gen.Generate(context.Background(), testConcept())
	if err != nil {
		t.Fatalf("second generate: %v", err)
	}
	if a.ID == b.ID {
		t.Errorf("candidates share ID %q", a.ID)
	}
}

func TestGenerate_MissingIntegralTypeDefaults(t *testing.T) {
	raw := json.RawMessage(`{
		"stem": "Evaluate $\\int x \\, dx$",
		"correct_answer": "$\\frac{x^2}{2} + C$",
		"integral_type": "",
		"reasoning": "Power rule with n = 1."
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	cand, err := gen.Generate(context.Background(), testConcept())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cand.IntegralType != "unknown" {
		t.Errorf("expected integral type to default to unknown, got %q", cand.IntegralType)
	}
}

func TestGenerate_BrokenLatexFlagged(t *testing.T) {
	raw := json.RawMessage(`{
		"stem": "Evaluate $\\int \\frac{1}{x \\, dx$",
		"correct_answer": "$\\ln|x| + C$",
		"integral_type": "logarithmic",
		"reasoning": "The antiderivative of 1/x is ln of absolute x."
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	cand, err := gen.Generate(context.Background(), testConcept())
	if err != nil {
		t.Fatalf("broken LaTeX should flag, not fail: %v", err)
	}
	if cand.LatexValid {
		t.Error("expected LatexValid=false for unbalanced braces")
	}
}

func TestGenerate_PromptCarriesConcept(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validStemJSON()})
	gen := New(mock, DefaultConfig())

	c := testConcept()
	c.WorkedExample = "For x^3 the answer is x^4/4 + C."
	_, err := gen.Generate(context.Background(), c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != StemSchema {
		t.Error("expected the stem schema on the request")
	}
	userMsg := req.Messages[0].Content
	for _, want := range []string{"Power rule for integration", "x^2", "Difficulty: easy", c.Context, c.WorkedExample} {
		if !strings.Contains(userMsg, want) {
			t.Errorf("expected user message to contain %q", want)
		}
	}
}

func TestGenerate_ConfigOverrides(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validStemJSON()})
	cfg := DefaultConfig()
	cfg.MaxTokens = 256
	cfg.Temperature = 0.2
	gen := New(mock, cfg)

	_, err := gen.Generate(context.Background(), testConcept())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.Calls[0].MaxTokens != 256 {
		t.Errorf("expected MaxTokens 256, got %d", mock.Calls[0].MaxTokens)
	}
	if mock.Calls[0].Temperature != 0.2 {
		t.Errorf("expected Temperature 0.2, got %f", mock.Calls[0].Temperature)
	}
}

func TestGenerate_StructuralFailure(t *testing.T) {
	raw := json.RawMessage(`{
		"stem": "",
		"correct_answer": "$x + C$",
		"integral_type": "power_rule",
		"reasoning": "Constant rule."
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testConcept())
	if err == nil {
		t.Fatal("expected validation error")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if valErr.Validator != "structural" {
		t.Errorf("expected structural validator, got %q", valErr.Validator)
	}
	if !valErr.Retryable {
		t.Error("empty stem should be retryable")
	}
}

// alwaysRejectValidator always rejects.
type alwaysRejectValidator struct{ name string }

func (v *alwaysRejectValidator) Name() string { return v.name }
func (v *alwaysRejectValidator) Validate(*StemCandidate, concept.Concept) *ValidationError {
	return &ValidationError{Validator: v.name, Message: "rejected", Retryable: true}
}

// trackingValidator records whether it was called.
type trackingValidator struct {
	called bool
}

func (v *trackingValidator) Name() string { return "tracking" }
func (v *trackingValidator) Validate(*StemCandidate, concept.Concept) *ValidationError {
	v.called = true
	return nil
}

func TestGenerate_ValidatorOrder(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validStemJSON()})
	tracker := &trackingValidator{}
	cfg := Config{
		Validators:  []Validator{&alwaysRejectValidator{name: "first"}, tracker},
		MaxTokens:   768,
		Temperature: 0.5,
	}
	gen := New(mock, cfg)

	_, err := gen.Generate(context.Background(), testConcept())
	if err == nil {
		t.Fatal("expected first validator to reject")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if valErr.Validator != "first" {
		t.Errorf("expected error from 'first', got %q", valErr.Validator)
	}
	if tracker.called {
		t.Error("second validator should not have been called")
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: errors.New("API error"),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testConcept())
	if err == nil {
		t.Fatal("expected error from provider")
	}
	if !strings.Contains(err.Error(), "LLM stem generation failed") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestGenerate_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"stem": `),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testConcept())
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "failed to parse LLM response") {
		t.Errorf("unexpected error message: %v", err)
	}
}
