package stemgen

import (
	"strings"
	"testing"
)

func TestCheckLatex_WellFormed(t *testing.T) {
	valid := []string{
		`Evaluate $\int x^2 \, dx$`,
		`$\frac{x^3}{3} + C$`,
		`$\sqrt{x}$ and $\sqrt[3]{x}$`,
		`$\int_0^1 \sin(x) \, dx$`,
		`plain text with no math at all`,
		`$x^{2n}$ with $a_{ij}$ subscripts`,
	}
	for _, text := range valid {
		if ok, report := CheckLatex(text); !ok {
			t.Errorf("expected %q to pass, got: %s", text, report)
		}
	}
}

func TestCheckLatex_Problems(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{`$\frac{x^3}{3 + C$`, "unclosed brace"},
		{`$x^3} + C$`, "unmatched closing brace"},
		{`$\sqrt[3{x}$`, "unclosed bracket"},
		{`$\frac{1}$`, `malformed \frac`},
		{`$\sqrt x$`, `malformed \sqrt`},
		{`$x^^2$`, "double superscript"},
		{`$a__b$`, "double subscript"},
	}
	for _, tt := range tests {
		ok, report := CheckLatex(tt.text)
		if ok {
			t.Errorf("expected %q to fail", tt.text)
			continue
		}
		if !strings.Contains(report, tt.want) {
			t.Errorf("report for %q = %q, want mention of %q", tt.text, report, tt.want)
		}
	}
}

func TestMathSpans(t *testing.T) {
	spans := mathSpans(`Compute $a+b$ then $c$.`)
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d: %v", len(spans), spans)
	}
	if spans[0] != "a+b" || spans[1] != "c" {
		t.Errorf("unexpected spans: %v", spans)
	}

	if got := mathSpans("no math here"); len(got) != 0 {
		t.Errorf("expected no spans, got %v", got)
	}
}
