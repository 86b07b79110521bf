package verify

import "testing"

func TestIntegrandFromStem(t *testing.T) {
	tests := []struct {
		name string
		stem string
		want string
		ok   bool
	}{
		{"indefinite", `Evaluate $\int x^2 \, dx$`, "x^2", true},
		{"spacing command stripped", `Find $\int \frac{1}{x}\, dx$`, `\frac{1}{x}`, true},
		{"product integrand", `Evaluate $\int x \cdot e^x \, dx$`, `x \cdot e^x`, true},
		{"bounded", `Compute $\int_{0}^{1} 3x^2 \, dx$`, "3x^2", true},
		{"unicode", "What is ∫ sin(x) dx?", "sin(x)", true},
		{"surrounding prose", `Let u = 2x. Then evaluate $\int cos(2x) \, dx$ using substitution.`, "cos(2x)", true},
		{"no integral", "What is the derivative of x^2?", "", false},
		{"empty stem", "", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := IntegrandFromStem(tc.stem, "x")
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if got != tc.want {
				t.Errorf("integrand = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestIntegrandFromStemOtherVariable(t *testing.T) {
	got, ok := IntegrandFromStem(`Evaluate $\int t^2 \, dt$`, "t")
	if !ok || got != "t^2" {
		t.Fatalf("integrand = %q ok=%v, want t^2", got, ok)
	}
	if _, ok := IntegrandFromStem(`Evaluate $\int t^2 \, dt$`, "x"); ok {
		t.Error("dx extraction should not match a dt stem")
	}
}

func TestCorrectedAnswer(t *testing.T) {
	got := CorrectedAnswer("x^3/3")
	want := `$\frac{1}{3} x^{3} + C$`
	if got != want {
		t.Errorf("corrected answer = %q, want %q", got, want)
	}
}

func TestCorrectedAnswerUnparseable(t *testing.T) {
	got := CorrectedAnswer("???")
	if got != "$??? + C$" {
		t.Errorf("unparseable suggestion should pass through, got %q", got)
	}
}
