package taxonomy

import (
	"testing"

	"github.com/arjun/mcqgen/internal/concept"
)

func TestRegistry_SeedShape(t *testing.T) {
	all := All()
	if len(all) != 13 {
		t.Fatalf("taxonomy should hold 13 error types, got %d", len(all))
	}

	seen := make(map[string]bool)
	for _, e := range all {
		if e.ID == "" || e.Name == "" || e.Description == "" {
			t.Errorf("error type %q has empty display fields", e.ID)
		}
		if seen[e.ID] {
			t.Errorf("duplicate error type ID %q", e.ID)
		}
		seen[e.ID] = true
		if e.Frequency < 0 || e.Frequency > 1 {
			t.Errorf("error type %q frequency out of range: %f", e.ID, e.Frequency)
		}
		if len(e.Applicability) == 0 {
			t.Errorf("error type %q has no applicability tags", e.ID)
		}
	}

	for _, cat := range AllCategories() {
		if len(ByCategory(cat)) == 0 {
			t.Errorf("category %q has no error types", cat)
		}
	}
}

func TestGet_KnownAndUnknown(t *testing.T) {
	e := Get("alg_sign_flip")
	if e == nil {
		t.Fatal("alg_sign_flip should be registered")
	}
	if e.Category != CategoryAlgebraic {
		t.Errorf("alg_sign_flip category = %q", e.Category)
	}
	if !e.AppliesTo("by_parts") {
		t.Error("an \"all\" error type should apply to any tag")
	}

	if Get("no_such_error") != nil {
		t.Error("unknown ID should return nil")
	}
}

func TestApplicable_TagFilter(t *testing.T) {
	got := Applicable("substitution", concept.DifficultyHard)
	ids := make(map[string]bool, len(got))
	for _, e := range got {
		ids[e.ID] = true
	}
	for _, want := range []string{"alg_sign_flip", "alg_coeff_error", "calc_chain_forgotten"} {
		if !ids[want] {
			t.Errorf("substitution/hard should include %s, got %v", want, ids)
		}
	}
	if ids["calc_parts_error"] {
		t.Error("by_parts-only error must not apply to substitution")
	}
}

func TestApplicable_DifficultyFloor(t *testing.T) {
	// substitution matches alg_sign_flip (0.7), alg_coeff_error (0.8),
	// calc_chain_forgotten (0.9); all pass every floor.
	if got := len(Applicable("substitution", concept.DifficultyEasy)); got != 3 {
		t.Errorf("substitution/easy should keep 3 types, got %d", got)
	}

	// definite_integral matches alg_sign_flip (0.7) and
	// calc_limits_reversed (0.4); the latter is below the easy floor.
	easy := Applicable("definite_integral", concept.DifficultyEasy)
	if len(easy) != 1 || easy[0].ID != "alg_sign_flip" {
		t.Errorf("definite_integral/easy should keep only alg_sign_flip, got %v", idsOf(easy))
	}
	medium := Applicable("definite_integral", concept.DifficultyMedium)
	if len(medium) != 2 {
		t.Errorf("definite_integral/medium should keep 2 types, got %v", idsOf(medium))
	}

	// basic_integral matches alg_sign_flip (0.7) and conc_deriv_instead
	// (0.3); the latter survives only on hard.
	if got := idsOf(Applicable("basic_integral", concept.DifficultyMedium)); len(got) != 1 {
		t.Errorf("basic_integral/medium should drop the 0.3 entry, got %v", got)
	}
	if got := idsOf(Applicable("basic_integral", concept.DifficultyHard)); len(got) != 2 {
		t.Errorf("basic_integral/hard should keep both, got %v", got)
	}
}

func TestApplicable_StableOrder(t *testing.T) {
	first := idsOf(Applicable("trigonometric", concept.DifficultyHard))
	second := idsOf(Applicable("trigonometric", concept.DifficultyHard))
	if len(first) == 0 {
		t.Fatal("trigonometric/hard should match error types")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Applicable order unstable: %v vs %v", first, second)
		}
	}
}

func TestApplicable_MostFrequentFirst(t *testing.T) {
	got := Applicable("substitution", concept.DifficultyHard)
	if len(got) < 2 {
		t.Fatalf("substitution/hard should match several types, got %v", idsOf(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Frequency > got[i-1].Frequency {
			t.Fatalf("guidance not ordered by frequency: %v", idsOf(got))
		}
	}
	if got[0].ID != "calc_chain_forgotten" {
		t.Errorf("substitution guidance should lead with the 0.9 entry, got %s", got[0].ID)
	}
}

func idsOf(types []*ErrorType) []string {
	ids := make([]string, 0, len(types))
	for _, e := range types {
		ids = append(ids, e.ID)
	}
	return ids
}
