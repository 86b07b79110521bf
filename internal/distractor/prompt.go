package distractor

import (
	"fmt"
	"strings"

	"github.com/arjun/mcqgen/internal/stemgen"
	"github.com/arjun/mcqgen/internal/taxonomy"
)

const systemPrompt = `You are an expert at writing plausible wrong answers (distractors) for calculus multiple-choice questions.

Rules:
- Generate exactly the requested number of distinct wrong answers.
- Each distractor must simulate ONE specific student error from the provided list, identified by its id.
- Never stack multiple errors in one distractor; it becomes too obviously wrong.
- Distractors must look correct at first glance and require careful checking to reject.
- Use the same LaTeX notation and format as the correct answer.
- Never return the correct answer itself, or a trivially equivalent form of it.
- plausibility_score estimates how likely a real student is to make that exact mistake, from 0 to 1.
- The explanation states the mistake that produces the option, phrased for an instructor.`

// buildUserMessage constructs the user message from the item and the
// applicable error-type guidance, respecting Config limits.
func buildUserMessage(item stemgen.ValidatedItem, guidance []*taxonomy.ErrorType, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question: %s\n", item.Stem)
	fmt.Fprintf(&b, "Correct answer: %s\n", item.Answer)
	fmt.Fprintf(&b, "Difficulty: %s\n", item.Difficulty)
	fmt.Fprintf(&b, "Distractors requested: %d\n", cfg.Requested)

	b.WriteString("\nError types to simulate (most applicable first):\n")
	b.WriteString(buildGuidance(guidance, cfg.MaxGuidance))

	return b.String()
}

// buildGuidance formats error types for the prompt, keeping the first N.
func buildGuidance(guidance []*taxonomy.ErrorType, max int) string {
	if len(guidance) == 0 {
		return "- any common student error for this kind of integral"
	}
	if max > 0 && len(guidance) > max {
		guidance = guidance[:max]
	}

	var b strings.Builder
	for _, et := range guidance {
		fmt.Fprintf(&b, "- %s (%s): %s\n", et.ID, et.Name, et.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}
