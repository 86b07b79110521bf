package verify

import (
	"strings"
	"testing"
)

func TestVerify_DirectMatch(t *testing.T) {
	v := New()

	r := v.Verify("x", "x^2/2", "x")
	if !r.OK || r.Confidence != ConfidenceDirect {
		t.Fatalf("expected direct match, got %+v", r)
	}
	if r.Note != "" {
		t.Fatalf("success must not carry a note, got %q", r.Note)
	}

	r = v.Verify("sin(x)", "-cos(x)", "x")
	if !r.OK || r.Confidence != ConfidenceDirect {
		t.Fatalf("expected direct match for -cos(x), got %+v", r)
	}
}

func TestVerify_WrongAnswerSuggestsCorrection(t *testing.T) {
	v := New()

	r := v.Verify("x", "x^2", "x")
	if r.OK || r.Confidence != 0 {
		t.Fatalf("x^2 must not verify against integrand x, got %+v", r)
	}
	if r.Suggestion != "1/2*x^2" {
		t.Fatalf("suggestion = %q, want 1/2*x^2", r.Suggestion)
	}
	if !strings.Contains(r.Note, "1/2*x^2 + C") {
		t.Fatalf("note should carry the corrected antiderivative, got %q", r.Note)
	}
}

func TestVerify_ExpandedEquivalence(t *testing.T) {
	v := New()

	// d/dx (x+1)^3 = 3(x+1)^2, which only matches the expanded
	// integrand after multiplying out.
	r := v.Verify("3*x^2 + 6*x + 3", "(x+1)^3", "x")
	if !r.OK || r.Confidence != ConfidenceExpanded {
		t.Fatalf("expected expanded-tier match, got %+v", r)
	}
}

func TestVerify_TrigEquivalence(t *testing.T) {
	v := New()

	// d/dx sin(x)cos(x) = cos^2(x) - sin^2(x) = cos(2x).
	r := v.Verify("cos(2*x)", "sin(x)*cos(x)", "x")
	if !r.OK || r.Confidence != ConfidenceTrig {
		t.Fatalf("expected trig-tier match, got %+v", r)
	}
}

func TestVerify_ParseFailureNotes(t *testing.T) {
	v := New()

	r := v.Verify("x +* 2", "x^2/2", "x")
	if r.OK || !strings.Contains(r.Note, "parse failure: integrand") {
		t.Fatalf("want integrand parse note, got %+v", r)
	}

	r = v.Verify("x", "x^^2", "x")
	if r.OK || !strings.Contains(r.Note, "parse failure: answer") {
		t.Fatalf("want answer parse note, got %+v", r)
	}
}

func TestVerify_UncorrectableMismatch(t *testing.T) {
	v := New()

	// No integration rule covers sin(x)cos(x), so the note can only
	// name the mismatched pair.
	r := v.Verify("sin(x)*cos(x)", "sin(x)", "x")
	if r.OK {
		t.Fatalf("expected mismatch, got %+v", r)
	}
	if r.Suggestion != "" {
		t.Fatalf("no suggestion expected, got %q", r.Suggestion)
	}
	if !strings.Contains(r.Note, "does not match integrand") {
		t.Fatalf("note should name the mismatch, got %q", r.Note)
	}
}

func TestVerify_VariableHandling(t *testing.T) {
	v := New()

	if r := v.Verify("x", "x^2/2", ""); !r.OK {
		t.Fatalf("empty variable should default to x, got %+v", r)
	}
	// With respect to t, x is a constant and x^2/2 differentiates to 0.
	if r := v.Verify("x", "x^2/2", "t"); r.OK {
		t.Fatalf("same strings under a different variable must not verify, got %+v", r)
	}
}

func TestVerify_CachedResultIsStable(t *testing.T) {
	v := New()

	first := v.Verify("cos(x)", "sin(x)", "x")
	second := v.Verify("cos(x)", "sin(x)", "x")
	if first != second {
		t.Fatalf("cached call diverged: %+v vs %+v", first, second)
	}
	if !first.OK || first.Confidence != ConfidenceDirect {
		t.Fatalf("unexpected result %+v", first)
	}
}
