package symbolic

import "testing"

func TestIntegrate_AnchorForms(t *testing.T) {
	got, ok := Integrate(Var("x"), "x")
	if !ok {
		t.Fatal("x should be integrable")
	}
	if got.Simplify().String() != "1/2*x^2" {
		t.Fatalf("integral of x should be x^2/2, got %s", got.Simplify().String())
	}

	got, ok = Integrate(Sin(Var("x")), "x")
	if !ok {
		t.Fatal("sin(x) should be integrable")
	}
	if got.Simplify().String() != "-cos(x)" {
		t.Fatalf("integral of sin(x) should be -cos(x), got %s", got.Simplify().String())
	}
}

func TestIntegrate_DerivativeRecoversIntegrand(t *testing.T) {
	inputs := []string{
		"x^3",
		"5",
		"1/x",
		"1/(2*x+1)",
		"x^(1/2)",
		"sin(2*x)",
		"cos(x)",
		"exp(3*x)",
		"sec(x)^2",
		"sec(x)*tan(x)",
		"csc(x)*cot(x)",
		"1/(1+x^2)",
		"1/sqrt(1-x^2)",
		"ln(x)",
		"atan(x)",
		"2*x + cos(x)",
		"2^x",
		"tan(x)",
	}
	for _, in := range inputs {
		integrand := MustParse(in)
		anti, ok := Integrate(integrand, "x")
		if !ok {
			t.Fatalf("Integrate(%s) should find a rule", in)
		}
		diff := Subtract(anti.Diff("x"), integrand)
		if !IsZero(Canonicalize(diff)) && !IsZero(TrigCanonical(diff)) {
			t.Fatalf("d/dx of integral of %s should recover it, got %s",
				in, anti.Diff("x").Simplify().String())
		}
	}
}

func TestIntegrate_LinearInnerPicksUpSlope(t *testing.T) {
	anti, ok := Integrate(MustParse("cos(3*x)"), "x")
	if !ok {
		t.Fatal("cos(3x) should be integrable")
	}
	want := MustParse("sin(3*x)/3")
	if !IsZero(Subtract(anti, want)) {
		t.Fatalf("integral of cos(3x) should be sin(3x)/3, got %s", anti.Simplify().String())
	}
}

func TestIntegrate_UnsupportedForms(t *testing.T) {
	inputs := []string{
		"exp(x^2)",
		"ln(x)/x",
		"sin(x)*cos(x)",
		"x*exp(x)",
		"sin(x^2)",
	}
	for _, in := range inputs {
		if anti, ok := Integrate(MustParse(in), "x"); ok {
			t.Fatalf("Integrate(%s) should report no rule, got %s", in, anti.Simplify().String())
		}
	}
}

func TestIntegrate_OtherSymbolsAreConstants(t *testing.T) {
	anti, ok := Integrate(Var("k"), "x")
	if !ok {
		t.Fatal("a free symbol should integrate as a constant")
	}
	want := NewProduct(Var("k"), Var("x"))
	if !IsZero(Subtract(anti, want)) {
		t.Fatalf("integral of k dx should be k*x, got %s", anti.Simplify().String())
	}
}
