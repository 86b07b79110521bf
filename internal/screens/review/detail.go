package review

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjun/mcqgen/internal/export"
	"github.com/arjun/mcqgen/internal/router"
	"github.com/arjun/mcqgen/internal/screen"
	"github.com/arjun/mcqgen/internal/ui/components"
	"github.com/arjun/mcqgen/internal/ui/layout"
	"github.com/arjun/mcqgen/internal/ui/theme"
)

// DetailScreen shows one question: options to answer or reveal, then the
// explanation panel. Left/right moves through the set without popping
// back to the list.
type DetailScreen struct {
	questions []export.Question
	index     int
	labels    []string
	choice    components.MultiChoice
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

func newDetail(questions []export.Question, index int) *DetailScreen {
	d := &DetailScreen{questions: questions}
	d.load(index)
	return d
}

// load resets the screen onto the question at index.
func (d *DetailScreen) load(index int) {
	d.index = index
	q := d.questions[index]

	labels := make([]string, 0, len(q.Options))
	for label := range q.Options {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	d.labels = labels

	options := make([]string, 0, len(labels))
	correct := 0
	for i, label := range labels {
		options = append(options, q.Options[label])
		if label == q.CorrectLabel {
			correct = i
		}
	}

	d.choice = components.NewMultiChoice(q.Stem, options, correct)
}

func (d *DetailScreen) Init() tea.Cmd {
	return nil
}

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch kmsg.String() {
	case "n", "right":
		if d.index < len(d.questions)-1 {
			d.load(d.index + 1)
		}
		return d, nil
	case "p", "left":
		if d.index > 0 {
			d.load(d.index - 1)
		}
		return d, nil
	case "r":
		d.choice = d.choice.Reveal()
		return d, nil
	case "q":
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	d.choice, cmd = d.choice.Update(msg)
	return d, cmd
}

func (d *DetailScreen) View(width, height int) string {
	q := d.questions[d.index]

	contentWidth := width - 8
	if contentWidth > 76 {
		contentWidth = 76
	}

	var b strings.Builder

	// Info line: position, difficulty, score, correction marker.
	info := fmt.Sprintf("  Question %d of %d    %s    score %.2f",
		d.index+1, len(d.questions),
		difficultyStyle(q.Difficulty).Render(q.Difficulty),
		q.Score)
	if q.WasCorrected {
		info += lipgloss.NewStyle().Foreground(theme.Accent).Render("    answer corrected")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(info))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", contentWidth)))
	b.WriteString("\n\n")

	// Question + options.
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(d.choice.View()))
	b.WriteString("\n")

	if d.choice.Submitted {
		if d.choice.ChosenIndex >= 0 {
			if d.choice.IsCorrect() {
				b.WriteString(lipgloss.NewStyle().
					Foreground(theme.Success).
					Bold(true).
					PaddingLeft(2).
					Render("Correct!"))
			} else {
				b.WriteString(lipgloss.NewStyle().
					Foreground(theme.Error).
					Bold(true).
					PaddingLeft(2).
					Render(fmt.Sprintf("Not quite. The answer is (%s).", q.CorrectLabel)))
			}
			b.WriteString("\n\n")
		}
		b.WriteString(d.renderExplanations(q, contentWidth))
	}

	// Metadata footer.
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  concept: %s    type: %s", q.ConceptID, q.IntegralType)))

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top,
		"\n"+b.String())
}

func (d *DetailScreen) Title() string {
	return fmt.Sprintf("Question %d/%d", d.index+1, len(d.questions))
}

// KeyHints returns the key binding hints for the footer.
func (d *DetailScreen) KeyHints() []layout.KeyHint {
	if d.choice.Submitted {
		return []layout.KeyHint{
			{Key: "←→", Description: "Question"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Option"},
		{Key: "Enter", Description: "Answer"},
		{Key: "R", Description: "Reveal"},
		{Key: "←→", Description: "Question"},
		{Key: "Esc", Description: "Back"},
	}
}

// renderExplanations renders the explanation panel: the correct answer
// first, then why each distractor is wrong.
func (d *DetailScreen) renderExplanations(q export.Question, contentWidth int) string {
	if len(q.Explanations) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		PaddingLeft(2).
		Render("Explanation"))
	b.WriteString("\n")

	if text, ok := q.Explanations[q.CorrectLabel]; ok {
		b.WriteString(lipgloss.NewStyle().
			Width(contentWidth).
			Foreground(theme.Success).
			PaddingLeft(2).
			Render(fmt.Sprintf("● (%s) %s", q.CorrectLabel, text)))
		b.WriteString("\n")
	}
	for _, label := range d.labels {
		if label == q.CorrectLabel {
			continue
		}
		text, ok := q.Explanations[label]
		if !ok {
			continue
		}
		b.WriteString(lipgloss.NewStyle().
			Width(contentWidth).
			Foreground(theme.TextDim).
			PaddingLeft(2).
			Render(fmt.Sprintf("○ (%s) %s", label, text)))
		b.WriteString("\n")
	}
	return b.String()
}
