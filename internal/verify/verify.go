package verify

import (
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/arjun/mcqgen/internal/symbolic"
)

// Result is the outcome of checking a candidate antiderivative against an
// integrand. Confidence encodes which equivalence tier succeeded; 0 means
// the answer could not be verified.
type Result struct {
	OK         bool
	Confidence float64

	// Note explains a failure: which side failed to parse, a suggested
	// correction, or the unmatched derivative/integrand pair. Empty on
	// success.
	Note string

	// Suggestion is the canonical antiderivative in the plain grammar
	// when the rule integrator could produce one for a failed answer.
	// Callers may adopt it as the corrected answer.
	Suggestion string
}

// Fixed confidence per equivalence tier. Symbolic equivalence across
// rewritten forms is undecidable in general; the tiers trade completeness
// for bounded, explainable effort.
const (
	ConfidenceDirect   = 1.0
	ConfidenceExpanded = 0.95
	ConfidenceTrig     = 0.90
)

// Verifier checks proposed integration answers by differentiating and
// comparing. Results are cached per (integrand, answer, variable) triple
// since generated batches repeat formulas across concepts.
type Verifier struct {
	cache *gocache.Cache
}

// New returns a Verifier with an hour-scale result cache.
func New() *Verifier {
	return &Verifier{cache: gocache.New(time.Hour, 10*time.Minute)}
}

// Verify reports whether d/dvariable(answer) is equivalent to integrand.
// Both inputs are textual math in the plain or LaTeX-flavored grammar.
func (v *Verifier) Verify(integrand, answer, variable string) Result {
	if variable == "" {
		variable = "x"
	}
	key := strings.Join([]string{variable, integrand, answer}, "\x1f")
	if cached, found := v.cache.Get(key); found {
		return cached.(Result)
	}
	result := check(integrand, answer, variable)
	v.cache.Set(key, result, gocache.DefaultExpiration)
	return result
}

func check(integrand, answer, variable string) Result {
	integrandExpr, err := symbolic.Parse(integrand)
	if err != nil {
		return Result{Note: fmt.Sprintf("parse failure: integrand: %v", err)}
	}
	answerExpr, err := symbolic.Parse(answer)
	if err != nil {
		return Result{Note: fmt.Sprintf("parse failure: answer: %v", err)}
	}

	derivative := answerExpr.Diff(variable).Simplify()
	diff := symbolic.Subtract(derivative, integrandExpr)

	if symbolic.IsZero(diff) {
		return Result{OK: true, Confidence: ConfidenceDirect}
	}
	if symbolic.IsZero(symbolic.Canonicalize(diff)) {
		return Result{OK: true, Confidence: ConfidenceExpanded}
	}
	if symbolic.IsZero(symbolic.TrigCanonical(diff)) {
		return Result{OK: true, Confidence: ConfidenceTrig}
	}

	if anti, ok := symbolic.Integrate(integrandExpr, variable); ok {
		suggestion := anti.Simplify().String()
		return Result{
			Note:       fmt.Sprintf("derivative of answer does not match integrand; suggested correct answer: %s + C", suggestion),
			Suggestion: suggestion,
		}
	}
	return Result{
		Note: fmt.Sprintf("derivative %s does not match integrand %s",
			derivative.String(), integrandExpr.Simplify().String()),
	}
}
