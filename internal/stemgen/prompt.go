package stemgen

import (
	"fmt"
	"strings"

	"github.com/arjun/mcqgen/internal/concept"
)

const systemPrompt = `You are an expert mathematics educator creating MCQ questions for calculus integration.

Rules:
- Generate exactly ONE question with its correct answer for the given concept.
- The question must directly test the specific concept provided, at the requested difficulty.
- Easy means direct formula application or recall. Medium means one-step problem solving such as a single substitution. Hard means multi-step work: integration by parts, composite substitutions.
- Use proper LaTeX inside $...$ for all math. Use \frac{a}{b} for fractions, \int for the integral sign, ^{} for superscripts, \sin \cos \tan for trig, \sin^{-1} for inverse trig, \ln|x| with absolute value bars where appropriate.
- Always include + C in the answer for indefinite integrals.
- The correct answer must be mathematically accurate. The reasoning should briefly justify it.
- The question must be clear, unambiguous, and have exactly one correct answer.`

// buildUserMessage constructs the user message from the source concept.
func buildUserMessage(c concept.Concept) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Concept: %s\n", c.Name)
	fmt.Fprintf(&b, "Formula: %s\n", c.Formula)
	fmt.Fprintf(&b, "Difficulty: %s\n", c.Difficulty)
	fmt.Fprintf(&b, "Context: %s\n", c.Context)
	if c.WorkedExample != "" {
		fmt.Fprintf(&b, "Example: %s\n", c.WorkedExample)
	}

	fmt.Fprintf(&b, "\nCreate a %s-level question that tests understanding of this concept.", c.Difficulty)

	return b.String()
}
