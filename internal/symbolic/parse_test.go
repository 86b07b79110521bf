package symbolic

import (
	"errors"
	"testing"
)

func TestParse_PlainGrammar(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"x^2/2", "1/2*x^2"},
		{"3x", "3*x"},
		{"2sin(x)", "2*sin(x)"},
		{"x(x+1)", "x*(x + 1)"},
		{"-x^2", "-x^2"},
		{"1/x", "x^(-1)"},
		{"sin(x)cos(x)", "cos(x)*sin(x)"},
		{"0.5x", "1/2*x"},
	}
	for _, tc := range tests {
		e, err := Parse(tc.input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tc.input, err)
		}
		if got := e.Simplify().String(); got != tc.want {
			t.Fatalf("Parse(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestParse_LatexForms(t *testing.T) {
	tests := []struct {
		latex string
		plain string
	}{
		{`\frac{x^2}{2}`, "x^2/2"},
		{`\frac{1}{2}x^2`, "x^2/2"},
		{`\sqrt{x}`, "x^(1/2)"},
		{`\sin(x) + \cos(x)`, "sin(x) + cos(x)"},
		{`\sin^{-1}(x)`, "asin(x)"},
		{`arctan(x)`, "atan(x)"},
		{`\ln(x)`, "ln(x)"},
		{`\log(x)`, "ln(x)"},
		{`e^x`, "exp(x)"},
		{`e^{2x}`, "exp(2x)"},
		{`2\cdot x`, "2*x"},
		{`x^{3}`, "x^3"},
		{`$\frac{x^3}{3} + C$`, "x^3/3"},
		{`$-\cos(2x) + C$`, "-cos(2x)"},
	}
	for _, tc := range tests {
		fromLatex, err := Parse(tc.latex)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tc.latex, err)
		}
		fromPlain, err := Parse(tc.plain)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tc.plain, err)
		}
		if !IsZero(Subtract(fromLatex, fromPlain)) {
			t.Fatalf("Parse(%q) = %s, want equivalent of %s",
				tc.latex, fromLatex.Simplify().String(), fromPlain.Simplify().String())
		}
	}
}

func TestParse_AbsoluteValue(t *testing.T) {
	e := MustParse("ln(|x|)")
	call, ok := e.(*Call)
	if !ok || call.FuncName() != FuncLn {
		t.Fatalf("ln(|x|) should parse as ln call, got %s", e.String())
	}
	inner, ok := call.Arg().(*Call)
	if !ok || inner.FuncName() != FuncAbs {
		t.Fatalf("argument should be abs, got %s", call.Arg().String())
	}

	e = MustParse("|x+1| + 2|x|")
	if _, err := Parse(e.String()); err != nil {
		t.Fatalf("abs rendering should re-parse: %v", err)
	}
}

func TestParse_StripsIntegrationConstant(t *testing.T) {
	with := MustParse("x^2/2 + C")
	without := MustParse("x^2/2")
	if !IsZero(Subtract(with, without)) {
		t.Fatalf("trailing + C should be stripped, got %s", with.Simplify().String())
	}

	// Only the trailing constant is stripped; interior C survives.
	interior := MustParse("C*x + 1").Simplify()
	found := false
	if p, ok := interior.(*Sum); ok {
		for _, term := range p.Terms() {
			if term.String() == "C*x" {
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("interior C should survive, got %s", interior.String())
	}
}

func TestParse_Errors(t *testing.T) {
	bad := []string{
		"",
		"x +",
		"sin()",
		"(x + 1",
		"x^",
		"|x",
		"x & y",
		"1.2.3",
	}
	for _, input := range bad {
		_, err := Parse(input)
		if err == nil {
			t.Fatalf("Parse(%q) should fail", input)
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("Parse(%q) error should be *ParseError, got %T", input, err)
		}
	}
}

func TestParse_FunctionPowerNotation(t *testing.T) {
	e := MustParse("sin^2(x)")
	want := NewPower(Sin(Var("x")), Int(2))
	if !IsZero(Subtract(e, want)) {
		t.Fatalf("sin^2(x) should mean (sin(x))^2, got %s", e.Simplify().String())
	}
}

func TestNormalize_InverseTrigBeforeTrig(t *testing.T) {
	got := Normalize(`\sin^{-1}(x) + \sin(x)`)
	if got != "asin(x) + sin(x)" {
		t.Fatalf("normalize produced %q", got)
	}
}
