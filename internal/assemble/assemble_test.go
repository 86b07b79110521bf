package assemble

import (
	"math/rand/v2"
	"testing"

	"github.com/arjun/mcqgen/internal/concept"
	"github.com/arjun/mcqgen/internal/distractor"
	"github.com/arjun/mcqgen/internal/stemgen"
)

func seededAssembler() *Assembler {
	return New(rand.New(rand.NewPCG(42, 1)))
}

func validatedItem() stemgen.ValidatedItem {
	return stemgen.ValidatedItem{
		StemCandidate: stemgen.StemCandidate{
			ID:           "q-1",
			ConceptID:    "power-rule-basic",
			Stem:         `Evaluate $\int x^2 \, dx$`,
			Answer:       `$\frac{x^3}{3} + C$`,
			Difficulty:   concept.DifficultyMedium,
			IntegralType: "power_rule",
			Reasoning:    "Raise the exponent by one and divide by the new exponent.",
		},
		Score: 0.95,
	}
}

func threeDistractors() []distractor.Candidate {
	return []distractor.Candidate{
		{Text: `$\frac{x^3}{2} + C$`, ErrorTypeID: "alg_exp_error", Plausibility: 0.8, Explanation: "Divided by the old exponent."},
		{Text: `$x^3 + C$`, ErrorTypeID: "alg_coeff_error", Plausibility: 0.7, Explanation: "Forgot to divide by the new exponent."},
		{Text: `$2x$`, ErrorTypeID: "conc_deriv_instead", Plausibility: 0.4, Explanation: "Differentiated instead of integrating."},
	}
}

func TestAssemble_NoDistractorsPadsWithFiller(t *testing.T) {
	got := seededAssembler().Assemble(1, validatedItem(), nil)

	if len(got.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(got.Options))
	}
	if got.CorrectLabel == "" {
		t.Fatal("correct label must be set")
	}
	if got.Options[got.CorrectLabel] != validatedItem().Answer {
		t.Errorf("correct label holds %q, want the correct answer", got.Options[got.CorrectLabel])
	}

	fillers := map[string]bool{}
	for label, text := range got.Options {
		if label == got.CorrectLabel {
			continue
		}
		if fillers[text] {
			t.Errorf("filler %q repeated", text)
		}
		fillers[text] = true
		if got.Explanations[label] != fillerExplanation {
			t.Errorf("filler under %s should carry the filler explanation, got %q", label, got.Explanations[label])
		}
	}
	if len(fillers) != 3 {
		t.Errorf("expected 3 distinct fillers, got %d", len(fillers))
	}
}

func TestAssemble_ExactlyOneCorrectForAnyDistractorCount(t *testing.T) {
	a := seededAssembler()
	pool := append(threeDistractors(),
		distractor.Candidate{Text: `$3x^2$`, ErrorTypeID: "alg_sign_flip", Explanation: "extra"},
		distractor.Candidate{Text: `$\frac{x^2}{2} + C$`, ErrorTypeID: "alg_exp_error", Explanation: "extra"},
	)

	for n := 0; n <= len(pool); n++ {
		got := a.Assemble(n+1, validatedItem(), pool[:n])
		if len(got.Options) != 4 {
			t.Fatalf("n=%d: expected 4 options, got %d", n, len(got.Options))
		}
		correct := 0
		for label, text := range got.Options {
			if text == validatedItem().Answer {
				if label != got.CorrectLabel {
					t.Errorf("n=%d: answer text under label %s but CorrectLabel=%s", n, label, got.CorrectLabel)
				}
				correct++
			}
		}
		if correct != 1 {
			t.Errorf("n=%d: expected the correct answer under exactly one label, found %d", n, correct)
		}
	}
}

func TestAssemble_SurplusDistractorsNeverDisplaceCorrect(t *testing.T) {
	a := seededAssembler()
	pool := append(threeDistractors(),
		distractor.Candidate{Text: `$3x^2$`, ErrorTypeID: "alg_sign_flip", Explanation: "extra"},
		distractor.Candidate{Text: `$\frac{x^2}{2} + C$`, ErrorTypeID: "alg_exp_error", Explanation: "extra"},
	)

	for i := 0; i < 50; i++ {
		got := a.Assemble(i+1, validatedItem(), pool)
		if got.Options[got.CorrectLabel] != validatedItem().Answer {
			t.Fatalf("run %d: correct answer displaced by surplus distractors", i)
		}
		for _, text := range got.Options {
			if text == `$\frac{x^2}{2} + C$` {
				t.Fatalf("run %d: surplus distractor should have been truncated", i)
			}
		}
	}
}

func TestAssemble_LabelDistributionIsUniform(t *testing.T) {
	a := seededAssembler()
	counts := map[string]int{}
	for i := 0; i < 1000; i++ {
		got := a.Assemble(i+1, validatedItem(), threeDistractors())
		counts[got.CorrectLabel]++
	}

	for _, label := range Labels() {
		n := counts[label]
		// 250 expected per label; 200..300 is well beyond 3 standard
		// deviations for a fair shuffle.
		if n < 200 || n > 300 {
			t.Errorf("label %s was correct %d times out of 1000, outside [200,300]", label, n)
		}
	}
}

func TestAssemble_ExplanationsCarried(t *testing.T) {
	got := seededAssembler().Assemble(3, validatedItem(), threeDistractors())

	if got.QuestionNumber != 3 {
		t.Errorf("question number = %d, want 3", got.QuestionNumber)
	}
	if got.Explanations[got.CorrectLabel] != "This is the correct answer." {
		t.Errorf("correct label explanation = %q", got.Explanations[got.CorrectLabel])
	}
	want := "This is the correct answer. Raise the exponent by one and divide by the new exponent."
	if got.Explanations["correct"] != want {
		t.Errorf("correct entry = %q, want %q", got.Explanations["correct"], want)
	}

	found := 0
	for label, text := range got.Options {
		if text == `$2x$` {
			found++
			if got.Explanations[label] != "Differentiated instead of integrating." {
				t.Errorf("distractor explanation lost, got %q", got.Explanations[label])
			}
		}
	}
	if found != 1 {
		t.Errorf("distractor $2x$ should appear exactly once, found %d", found)
	}
}

func TestAssemble_CarriesProvenance(t *testing.T) {
	got := seededAssembler().Assemble(1, validatedItem(), threeDistractors())

	if got.ConceptID != "power-rule-basic" || got.IntegralType != "power_rule" {
		t.Errorf("provenance lost: %+v", got)
	}
	if got.Difficulty != concept.DifficultyMedium || got.Score != 0.95 || got.WasCorrected {
		t.Errorf("metadata lost: %+v", got)
	}
}

func TestAssemble_MissingReasoningFallsBack(t *testing.T) {
	item := validatedItem()
	item.Reasoning = ""
	got := seededAssembler().Assemble(1, item, threeDistractors())

	want := "This is the correct answer. Apply the appropriate integration technique."
	if got.Explanations["correct"] != want {
		t.Errorf("correct entry = %q, want fallback reasoning", got.Explanations["correct"])
	}
}
