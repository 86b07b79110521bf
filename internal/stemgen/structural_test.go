package stemgen

import (
	"strings"
	"testing"

	"github.com/arjun/mcqgen/internal/concept"
)

func validCandidate() *StemCandidate {
	return &StemCandidate{
		ID:           "q-1",
		ConceptID:    "power-rule-basic",
		Stem:         `Evaluate $\int x^2 \, dx$`,
		Answer:       `$\frac{x^3}{3} + C$`,
		Difficulty:   concept.DifficultyEasy,
		IntegralType: "power_rule",
		Reasoning:    "Raise the exponent by one and divide by the new exponent.",
		LatexValid:   true,
	}
}

func TestStructural_ValidCandidate(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(validCandidate(), testConcept()); err != nil {
		t.Errorf("expected valid candidate to pass, got: %v", err)
	}
}

func TestStructural_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StemCandidate)
		want   string
	}{
		{"empty stem", func(c *StemCandidate) { c.Stem = "  " }, "stem is empty"},
		{"oversized stem", func(c *StemCandidate) { c.Stem = strings.Repeat("x", 601) }, "600 characters"},
		{"empty answer", func(c *StemCandidate) { c.Answer = "" }, "correct_answer is empty"},
		{"empty reasoning", func(c *StemCandidate) { c.Reasoning = "" }, "reasoning is empty"},
		{"wrong concept", func(c *StemCandidate) { c.ConceptID = "other" }, "wrong concept"},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		cand := validCandidate()
		tt.mutate(cand)
		err := v.Validate(cand, testConcept())
		if err == nil {
			t.Errorf("%s: expected rejection", tt.name)
			continue
		}
		if !strings.Contains(err.Message, tt.want) {
			t.Errorf("%s: message %q does not mention %q", tt.name, err.Message, tt.want)
		}
	}
}
