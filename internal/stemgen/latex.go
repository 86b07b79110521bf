package stemgen

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	inlineMathRe = regexp.MustCompile(`\$([^$]+)\$`)
	fracRe       = regexp.MustCompile(`\\frac`)
	wellFracRe   = regexp.MustCompile(`\\frac\s*\{[^}]*\}\s*\{[^}]*\}`)
	sqrtRe       = regexp.MustCompile(`\\sqrt`)
	wellSqrtRe   = regexp.MustCompile(`\\sqrt(\[[^\]]*\])?\s*\{[^}]*\}`)
	doubleSupRe  = regexp.MustCompile(`\^\^`)
	doubleSubRe  = regexp.MustCompile(`__`)
)

// mathSpans extracts the expressions inside $-delimited math in text.
func mathSpans(text string) []string {
	var spans []string
	for _, m := range inlineMathRe.FindAllStringSubmatch(text, -1) {
		spans = append(spans, m[1])
	}
	return spans
}

// CheckLatex runs delimiter and command sanity checks on every math span
// in text. ok is false when any span fails; the report lists the problems
// found. Text without math spans passes vacuously.
func CheckLatex(text string) (ok bool, report string) {
	var problems []string
	for _, span := range mathSpans(text) {
		problems = append(problems, checkSpan(span)...)
	}
	if len(problems) == 0 {
		return true, ""
	}
	return false, strings.Join(problems, "; ")
}

// checkSpan validates a single LaTeX expression without rendering it.
func checkSpan(expr string) []string {
	var problems []string

	problems = append(problems, checkBalance(expr, '{', '}', "brace")...)
	problems = append(problems, checkBalance(expr, '[', ']', "bracket")...)

	if len(fracRe.FindAllString(expr, -1)) != len(wellFracRe.FindAllString(expr, -1)) {
		problems = append(problems, `malformed \frac command (needs two arguments in braces)`)
	}
	if len(sqrtRe.FindAllString(expr, -1)) != len(wellSqrtRe.FindAllString(expr, -1)) {
		problems = append(problems, `malformed \sqrt command`)
	}
	if doubleSupRe.MatchString(expr) {
		problems = append(problems, "double superscript (^^) without braces")
	}
	if doubleSubRe.MatchString(expr) {
		problems = append(problems, "double subscript (__) without braces")
	}

	return problems
}

// checkBalance verifies that open/close pairs nest properly in expr.
func checkBalance(expr string, open, close rune, name string) []string {
	depth := 0
	for i, r := range expr {
		switch r {
		case open:
			depth++
		case close:
			depth--
		}
		if depth < 0 {
			return []string{fmt.Sprintf("unmatched closing %s at position %d", name, i)}
		}
	}
	if depth > 0 {
		return []string{fmt.Sprintf("unclosed %ss: %d remaining", name, depth)}
	}
	return nil
}
