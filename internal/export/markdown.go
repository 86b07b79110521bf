package export

import (
	"fmt"
	"strings"

	"github.com/arjun/mcqgen/internal/assemble"
	"github.com/arjun/mcqgen/internal/concept"
)

const defaultTitle = "Generated MCQs"

// MarkdownOptions control the exam-sheet rendering.
type MarkdownOptions struct {
	// Title heads the document. Empty means "Generated MCQs".
	Title string

	// IncludeExplanations adds the per-question answer-key section.
	IncludeExplanations bool
}

// Markdown renders the exam-sheet document: title, numbered questions
// with lettered options (correct one bold), optional explanation blocks,
// and a footer with the question count and difficulty distribution.
func Markdown(questions []Question, opts MarkdownOptions) string {
	title := opts.Title
	if title == "" {
		title = defaultTitle
	}

	lines := []string{
		"### " + title,
		"#### PRACTICE EXERCISE",
		"",
	}
	for _, q := range questions {
		lines = append(lines, questionLines(q, opts.IncludeExplanations)...)
	}

	lines = append(lines,
		"",
		"---",
		fmt.Sprintf("**Generated Questions:** %d", len(questions)),
		"**Difficulty Distribution:**",
	)
	counts := make(map[string]int)
	for _, q := range questions {
		counts[q.Difficulty]++
	}
	for _, d := range concept.AllDifficulties() {
		if n := counts[string(d)]; n > 0 {
			lines = append(lines, fmt.Sprintf("- %s: %d questions", capitalize(string(d)), n))
		}
	}

	return strings.Join(lines, "\n")
}

func questionLines(q Question, includeExplanations bool) []string {
	lines := []string{fmt.Sprintf("**%d. %s**", q.Number, q.Stem)}

	for _, label := range assemble.Labels() {
		text := q.Options[label]
		if label == q.CorrectLabel {
			lines = append(lines, fmt.Sprintf("   *   **(%s) %s**", label, text))
		} else {
			lines = append(lines, fmt.Sprintf("   *   (%s) %s", label, text))
		}
	}

	if includeExplanations && len(q.Explanations) > 0 {
		lines = append(lines, "", "   **Explanation:**")
		lines = append(lines, fmt.Sprintf("   - **Correct (%s):** %s", q.CorrectLabel, q.Explanations["correct"]))
		for _, label := range assemble.Labels() {
			if label == q.CorrectLabel {
				continue
			}
			lines = append(lines, fmt.Sprintf("   - **(%s):** %s", label, q.Explanations[label]))
		}
	}

	lines = append(lines, "")
	return lines
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
