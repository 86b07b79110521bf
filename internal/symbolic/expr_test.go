package symbolic

import "testing"

func TestSimplify_CollectsLikeTerms(t *testing.T) {
	x := Var("x")

	e := NewSum(x, Neg(x))
	if !IsZero(e) {
		t.Fatalf("x - x should simplify to 0, got %s", e.String())
	}

	e = NewSum(NewPower(x, Int(2)), Neg(NewPower(x, Int(2))))
	if !IsZero(e) {
		t.Fatalf("x^2 - x^2 should simplify to 0, got %s", e.String())
	}

	e = NewSum(NewProduct(Int(3), x), NewProduct(Int(2), x))
	if got := e.String(); got != "5*x" {
		t.Fatalf("3x + 2x should collect to 5*x, got %s", got)
	}
}

func TestSimplify_MergesPowers(t *testing.T) {
	x := Var("x")

	e := NewProduct(x, x)
	if got := e.String(); got != "x^2" {
		t.Fatalf("x*x should merge to x^2, got %s", got)
	}

	e = NewProduct(x, NewPower(x, Int(-1)))
	n, ok := e.(*Number)
	if !ok || !n.IsOne() {
		t.Fatalf("x * x^-1 should cancel to 1, got %s", e.String())
	}

	e = NewProduct(Exp(x), Exp(x))
	if got := e.String(); got != "exp(2*x)" {
		t.Fatalf("exp(x)*exp(x) should merge to exp(2*x), got %s", got)
	}
}

func TestSimplify_NumericFolding(t *testing.T) {
	e := NewSum(Frac(1, 2), Frac(1, 3))
	n, ok := e.(*Number)
	if !ok {
		t.Fatalf("constant sum should fold, got %s", e.String())
	}
	if n.String() != "5/6" {
		t.Fatalf("1/2 + 1/3 should be 5/6, got %s", n.String())
	}

	e = NewPower(Int(2), Int(10))
	if got := e.String(); got != "1024" {
		t.Fatalf("2^10 should fold to 1024, got %s", got)
	}

	e = NewPower(Int(2), Int(-2))
	if got := e.String(); got != "1/4" {
		t.Fatalf("2^-2 should fold to 1/4, got %s", got)
	}
}

func TestSimplify_Idempotent(t *testing.T) {
	exprs := []Expr{
		MustParse("x^2/2 + 3*x - 1"),
		MustParse("sin(x)*cos(x) + tan(x)"),
		MustParse("2*exp(3*x) - ln(x)/x"),
		MustParse("(x+1)*(x-1)"),
	}
	for _, e := range exprs {
		once := e.Simplify()
		twice := once.Simplify()
		if once.String() != twice.String() {
			t.Fatalf("simplify not idempotent: %s vs %s", once.String(), twice.String())
		}
		if !once.Equal(twice) {
			t.Fatalf("simplified trees differ structurally for %s", e.String())
		}
	}
}

func TestDiff_PowerRule(t *testing.T) {
	e := MustParse("x^3").Diff("x").Simplify()
	if got := e.String(); got != "3*x^2" {
		t.Fatalf("d/dx x^3 should be 3*x^2, got %s", got)
	}

	e = MustParse("x^2/2").Diff("x").Simplify()
	if got := e.String(); got != "x" {
		t.Fatalf("d/dx x^2/2 should be x, got %s", got)
	}
}

func TestDiff_ChainRule(t *testing.T) {
	d := MustParse("sin(2*x)").Diff("x").Simplify()
	want := MustParse("2*cos(2*x)").Simplify()
	if !IsZero(Subtract(d, want)) {
		t.Fatalf("d/dx sin(2x) should be 2*cos(2x), got %s", d.String())
	}

	d = MustParse("exp(x^2)").Diff("x").Simplify()
	want = MustParse("2*x*exp(x^2)").Simplify()
	if !IsZero(Subtract(d, want)) {
		t.Fatalf("d/dx exp(x^2) should be 2x*exp(x^2), got %s", d.String())
	}
}

func TestDiff_LogAbsolute(t *testing.T) {
	d := MustParse("ln(|x|)").Diff("x").Simplify()
	want := MustParse("1/x").Simplify()
	if !IsZero(Subtract(d, want)) {
		t.Fatalf("d/dx ln|x| should be 1/x, got %s", d.String())
	}
}

func TestDiff_ConstantSymbol(t *testing.T) {
	// An integration constant differentiates away without being assumed
	// zero anywhere else.
	x := Var("x")
	e := NewSum(NewProduct(Frac(1, 2), NewPower(x, Int(2))), Var("C"))
	d := e.Diff("x").Simplify()
	if got := d.String(); got != "x" {
		t.Fatalf("d/dx (x^2/2 + C) should be x, got %s", got)
	}

	kept := MustParse("C + x").Simplify()
	if kept.String() == "x" {
		t.Fatal("non-trailing constant symbol must not be dropped by simplification")
	}
}

func TestDiff_Quotient(t *testing.T) {
	// d/dx (1/x) = -1/x^2
	d := MustParse("1/x").Diff("x").Simplify()
	want := MustParse("-1/x^2").Simplify()
	if !IsZero(Subtract(d, want)) {
		t.Fatalf("d/dx 1/x should be -x^-2, got %s", d.String())
	}
}

func TestSubstitute(t *testing.T) {
	e := MustParse("x^2 + y").Substitute("x", Int(3)).Simplify()
	want := MustParse("9 + y").Simplify()
	if !IsZero(Subtract(e, want)) {
		t.Fatalf("substitution should give y + 9, got %s", e.String())
	}
}

func TestString_RoundTrips(t *testing.T) {
	inputs := []string{
		"x^2/2 + 3*x",
		"sin(x)*cos(x)",
		"-cos(2*x)",
		"exp(x) + ln(|x|)",
		"x^(1/2)",
	}
	for _, in := range inputs {
		first := MustParse(in).Simplify()
		second, err := Parse(first.String())
		if err != nil {
			t.Fatalf("rendering of %q did not re-parse: %v", in, err)
		}
		if first.String() != second.Simplify().String() {
			t.Fatalf("round trip changed %q: %s vs %s", in, first.String(), second.Simplify().String())
		}
	}
}
