package distractor

import "testing"

func cand(text, errType string, score float64) Candidate {
	return Candidate{
		Text:         text,
		ErrorTypeID:  errType,
		Plausibility: score,
		Explanation:  "explanation for " + text,
	}
}

func TestSelect_PrefersDistinctErrorTypes(t *testing.T) {
	candidates := []Candidate{
		cand("a", "alg_sign_flip", 0.9),
		cand("b", "alg_sign_flip", 0.8),
		cand("c", "calc_chain_forgotten", 0.7),
		cand("d", "calc_chain_forgotten", 0.6),
		cand("e", "not_const_omitted", 0.5),
	}

	got := RankAndSelect(candidates, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 selected, got %d", len(got))
	}

	types := map[string]bool{}
	for _, c := range got {
		types[c.ErrorTypeID] = true
	}
	if len(types) < 2 {
		t.Errorf("selection covers %d error types, want at least 2", len(types))
	}
	// Exact walk: a leads on score, b is skipped as a repeat while
	// diversity still binds, c brings a new type, d fills the relaxed
	// final slot.
	want := []string{"a", "c", "d"}
	for i, w := range want {
		if got[i].Text != w {
			t.Errorf("selected[%d] = %q, want %q", i, got[i].Text, w)
		}
	}
}

func TestSelect_SortsBeforeWalking(t *testing.T) {
	candidates := []Candidate{
		cand("e", "not_const_omitted", 0.5),
		cand("b", "alg_sign_flip", 0.8),
		cand("a", "alg_sign_flip", 0.9),
		cand("d", "calc_chain_forgotten", 0.6),
		cand("c", "calc_chain_forgotten", 0.7),
	}

	got := RankAndSelect(candidates, 3)
	if len(got) != 3 || got[0].Text != "a" {
		t.Fatalf("highest-scored candidate must lead regardless of input order, got %+v", got)
	}

	if candidates[0].Text != "e" || candidates[4].Text != "c" {
		t.Error("Select must not reorder its input slice")
	}
}

func TestSelect_BackfillsWhenTypesExhausted(t *testing.T) {
	candidates := []Candidate{
		cand("w", "alg_sign_flip", 0.9),
		cand("x", "alg_sign_flip", 0.8),
		cand("y", "alg_sign_flip", 0.7),
		cand("z", "alg_sign_flip", 0.6),
	}

	got := RankAndSelect(candidates, 3)
	if len(got) != 3 {
		t.Fatalf("expected backfill to 3, got %d", len(got))
	}
	want := []string{"w", "x", "y"}
	for i, w := range want {
		if got[i].Text != w {
			t.Errorf("selected[%d] = %q, want %q", i, got[i].Text, w)
		}
	}
}

func TestSelect_FewerCandidatesThanK(t *testing.T) {
	candidates := []Candidate{
		cand("a", "alg_sign_flip", 0.4),
		cand("b", "trig_inverse_error", 0.9),
	}

	got := RankAndSelect(candidates, 3)
	if len(got) != 2 {
		t.Fatalf("expected all %d candidates back, got %d", len(candidates), len(got))
	}
}

func TestSelect_NonPositiveK(t *testing.T) {
	candidates := []Candidate{cand("a", "alg_sign_flip", 0.9)}
	if got := RankAndSelect(candidates, 0); len(got) != 0 {
		t.Errorf("k=0 must select nothing, got %d", len(got))
	}
	if got := RankAndSelect(candidates, -1); len(got) != 0 {
		t.Errorf("negative k must select nothing, got %d", len(got))
	}
}
