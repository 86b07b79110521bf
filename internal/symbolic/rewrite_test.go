package symbolic

import "testing"

func TestExpand_Binomials(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(x+1)^2", "x^2 + 2*x + 1"},
		{"(x+1)*(x-1)", "x^2 - 1"},
		{"(x+2)^3", "x^3 + 6*x^2 + 12*x + 8"},
		{"x*(x+3)", "x^2 + 3*x"},
	}
	for _, tc := range tests {
		got := Expand(MustParse(tc.input))
		want := MustParse(tc.want)
		if !IsZero(Subtract(got, want)) {
			t.Fatalf("Expand(%s) = %s, want %s", tc.input, got.String(), tc.want)
		}
	}
}

func TestExpand_DescendsIntoFunctionArgs(t *testing.T) {
	got := Expand(MustParse("sin((x+1)^2)"))
	want := MustParse("sin(x^2 + 2*x + 1)")
	if !IsZero(Subtract(got, want)) {
		t.Fatalf("expansion should reach call arguments, got %s", got.String())
	}
}

func TestExpand_LargePowerStaysFolded(t *testing.T) {
	got := Expand(MustParse("(x+1)^20"))
	if _, ok := got.(*Power); !ok {
		t.Fatalf("powers above the expansion bound should stay folded, got %s", got.String())
	}
}

func TestCanonicalize_EquatesRearrangedPolynomials(t *testing.T) {
	a := MustParse("(x+1)^3")
	b := MustParse("x^3 + 3*x^2 + 3*x + 1")
	if !IsZero(Canonicalize(Subtract(a, b))) {
		t.Fatalf("expanded binomial should match, diff %s", Canonicalize(Subtract(a, b)).String())
	}
}

func TestTrigCanonical_PythagoreanIdentity(t *testing.T) {
	got := TrigCanonical(MustParse("sin^2(x) + cos^2(x)"))
	n, ok := got.(*Number)
	if !ok || !n.IsOne() {
		t.Fatalf("sin^2 + cos^2 should collapse to 1, got %s", got.String())
	}

	diff := Subtract(MustParse("1 - sin^2(x)"), MustParse("cos^2(x)"))
	if !IsZero(TrigCanonical(diff)) {
		t.Fatalf("1 - sin^2 should equal cos^2, got %s", TrigCanonical(diff).String())
	}
}

func TestTrigCanonical_DoubleAngle(t *testing.T) {
	diff := Subtract(MustParse("sin(2*x)"), MustParse("2*sin(x)*cos(x)"))
	if !IsZero(TrigCanonical(diff)) {
		t.Fatalf("sin(2x) should equal 2 sin x cos x, got %s", TrigCanonical(diff).String())
	}

	diff = Subtract(MustParse("cos(2*x)"), MustParse("cos^2(x) - sin^2(x)"))
	if !IsZero(TrigCanonical(diff)) {
		t.Fatalf("cos(2x) should equal cos^2 - sin^2, got %s", TrigCanonical(diff).String())
	}
}

func TestTrigCanonical_ReducesQuotientForms(t *testing.T) {
	diff := Subtract(MustParse("tan(x)*cos(x)"), MustParse("sin(x)"))
	if !IsZero(TrigCanonical(diff)) {
		t.Fatalf("tan*cos should reduce to sin, got %s", TrigCanonical(diff).String())
	}

	diff = Subtract(MustParse("sec(x)"), MustParse("1/cos(x)"))
	if !IsZero(TrigCanonical(diff)) {
		t.Fatalf("sec should reduce to 1/cos, got %s", TrigCanonical(diff).String())
	}
}

func TestTrigCanonical_ScaledPair(t *testing.T) {
	got := TrigCanonical(MustParse("3*sin^2(x) + 3*cos^2(x)"))
	n, ok := got.(*Number)
	if !ok || n.String() != "3" {
		t.Fatalf("scaled Pythagorean pair should collapse to its coefficient, got %s", got.String())
	}
}

func TestTrigCanonical_LeavesUnrelatedTermsAlone(t *testing.T) {
	got := TrigCanonical(MustParse("sin^2(x) + cos^2(y)"))
	if _, ok := got.(*Number); ok {
		t.Fatalf("pairs with different arguments must not collapse, got %s", got.String())
	}
}
