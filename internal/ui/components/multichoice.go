package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjun/mcqgen/internal/ui/theme"
)

// MultiChoice renders one assembled question with keyboard selection.
// The zero value is unusable; construct with NewMultiChoice.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

// NewMultiChoice returns an unanswered selector over options.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Update moves the cursor and records the answer on enter. Input after
// submission is ignored.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.Submitted {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	}
	return m, nil
}

// Reveal submits with no answer recorded, so only the correct option
// highlights. Used when showing an item without quizzing.
func (m MultiChoice) Reveal() MultiChoice {
	m.Submitted = true
	m.ChosenIndex = -1
	return m
}

// IsCorrect reports whether the submitted answer matched.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}

// View renders the question stem above its lettered options.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		cursor := "  "
		if !m.Submitted && i == m.Selected {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s(%c)  %s", cursor, 'a'+i, opt)
		b.WriteString(m.lineStyle(i).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (m MultiChoice) lineStyle(i int) lipgloss.Style {
	if !m.Submitted {
		if i == m.Selected {
			return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		return lipgloss.NewStyle().Foreground(theme.Text)
	}
	switch i {
	case m.CorrectIndex:
		return lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	case m.ChosenIndex:
		return lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim)
}
