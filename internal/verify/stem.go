package verify

import (
	"regexp"
	"strings"

	"github.com/arjun/mcqgen/internal/symbolic"
)

// IntegrandFromStem pulls the integrand out of a question stem written
// with $\int ... d<variable>$ notation, with or without bounds, or the
// unicode ∫ form. ok is false when the stem has no recognizable
// integral. The indefinite pattern requires whitespace after \int so a
// bounded integral falls through to its own pattern.
func IntegrandFromStem(stem, variable string) (string, bool) {
	if variable == "" {
		variable = "x"
	}
	d := "d" + regexp.QuoteMeta(variable)
	patterns := []string{
		`\$\s*\\int\s+(.+?)\s*` + d + `\s*\$`,
		`\$\s*\\int_\{[^}]*\}\s*\^\s*\{[^}]*\}\s*(.+?)\s*` + d + `\s*\$`,
		`∫\s*(.+?)\s*` + d,
	}
	for _, p := range patterns {
		m := regexp.MustCompile(p).FindStringSubmatch(stem)
		if m == nil {
			continue
		}
		integrand := strings.TrimSpace(m[1])
		integrand = strings.TrimSpace(strings.TrimSuffix(integrand, `\,`))
		if integrand != "" {
			return integrand, true
		}
	}
	return "", false
}

// CorrectedAnswer renders an integrator suggestion as a display answer
// in the notation stems use. Falls back to the plain form when the
// suggestion does not round-trip through the parser.
func CorrectedAnswer(suggestion string) string {
	expr, err := symbolic.Parse(suggestion)
	if err != nil {
		return "$" + suggestion + " + C$"
	}
	return "$" + expr.Simplify().LaTeX() + " + C$"
}
