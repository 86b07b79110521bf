// Package review implements the question-set browser: a filterable list
// of generated questions and a per-question detail view with answer
// reveal.
package review

import (
	"fmt"
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

// ListScreen displays the questions of a generated set, one row each.
// "/" opens a live filter over stems, concepts and difficulty.
type ListScreen struct {
	title        string
	questions    []export.Question
	cursor       int
	scrollOffset int
	filtering    bool
	filter       components.FilterInput
	query        string
}

var _ screen.Screen = (*ListScreen)(nil)
var _ screen.KeyHintProvider = (*ListScreen)(nil)

// NewList creates the list screen over a question set.
func NewList(title string, questions []export.Question) *ListScreen {
	return &ListScreen{title: title, questions: questions}
}

func (s *ListScreen) Init() tea.Cmd {
	return nil
}

func (s *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.filtering {
		switch kmsg.String() {
		case "enter":
			s.filtering = false
		case "esc":
			s.filtering = false
			s.query = ""
		default:
			var cmd tea.Cmd
			s.filter, cmd = s.filter.Update(msg)
			s.query = strings.TrimSpace(s.filter.Value())
			s.clampCursor()
			return s, cmd
		}
		s.clampCursor()
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.visible())-1 {
			s.cursor++
		}
	case "enter":
		return s, s.openQuestion()
	case "/":
		s.filtering = true
		s.filter = components.NewFilterInput("stem, concept or difficulty")
		s.query = ""
		s.cursor = 0
		s.scrollOffset = 0
		return s, s.filter.Init()
	case "esc":
		if s.query != "" {
			s.query = ""
			s.clampCursor()
			return s, nil
		}
		return s, tea.Quit
	case "q":
		return s, tea.Quit
	}
	return s, nil
}

func (s *ListScreen) View(width, height int) string {
	if len(s.questions) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No questions in this set.")
	}

	rows := s.visible()

	var lines []string
	listHeight := height
	if s.filtering || s.query != "" {
		lines = append(lines, s.renderFilterBar(len(rows)))
		lines = append(lines, "")
		listHeight -= 2
	}

	if len(rows) == 0 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  No questions match."))
		return strings.Join(lines, "\n")
	}

	s.adjustScroll(listHeight)

	shown := 0
	for i := s.scrollOffset; i < len(rows); i++ {
		if shown >= listHeight {
			break
		}
		lines = append(lines, s.renderRow(s.questions[rows[i]], i == s.cursor, width))
		shown++
	}

	return strings.Join(lines, "\n")
}

func (s *ListScreen) Title() string {
	return s.title
}

// KeyHints returns the key binding hints for the footer.
func (s *ListScreen) KeyHints() []layout.KeyHint {
	if s.filtering {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if s.query != "" {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Open"},
			{Key: "/", Description: "Filter"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "/", Description: "Filter"},
		{Key: "Q", Description: "Quit"},
	}
}

// visible returns the indexes of questions matching the current filter.
func (s *ListScreen) visible() []int {
	if s.query == "" {
		all := make([]int, len(s.questions))
		for i := range all {
			all[i] = i
		}
		return all
	}
	needle := strings.ToLower(s.query)
	var matched []int
	for i, q := range s.questions {
		haystack := strings.ToLower(q.Stem + " " + q.ConceptID + " " + q.Difficulty + " " + q.IntegralType)
		if strings.Contains(haystack, needle) {
			matched = append(matched, i)
		}
	}
	return matched
}

// clampCursor keeps the cursor inside the filtered row range.
func (s *ListScreen) clampCursor() {
	rows := len(s.visible())
	if s.cursor >= rows {
		s.cursor = rows - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.scrollOffset > s.cursor {
		s.scrollOffset = s.cursor
	}
}

// openQuestion pushes the detail screen for the question under the cursor.
func (s *ListScreen) openQuestion() tea.Cmd {
	rows := s.visible()
	if s.cursor < 0 || s.cursor >= len(rows) {
		return nil
	}
	detail := newDetail(s.questions, rows[s.cursor])
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

// adjustScroll ensures the cursor row is visible within the viewport.
func (s *ListScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

// renderFilterBar renders the filter line with a match count.
func (s *ListScreen) renderFilterBar(matches int) string {
	var left string
	if s.filtering {
		left = s.filter.View()
	} else {
		left = lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render("/ " + s.query)
	}
	count := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("   %d of %d", matches, len(s.questions)))
	return "  " + left + count
}

// renderRow renders a single question row. Narrow terminals drop the
// corrected column and give the freed width to the stem.
func (s *ListScreen) renderRow(q export.Question, selected bool, width int) string {
	padding := 2
	numWidth := 5
	diffWidth := 8
	scoreWidth := 6
	flagWidth := 10
	spacing := 8
	if layout.IsCompactWidth(width) {
		flagWidth = 0
		spacing = 6
	}
	stemWidth := width - padding - numWidth - diffWidth - scoreWidth - flagWidth - spacing
	if stemWidth < 10 {
		stemWidth = 10
	}

	stem := q.Stem
	if len(stem) > stemWidth {
		stem = stem[:stemWidth-1] + "…"
	}

	flag := ""
	if q.WasCorrected && flagWidth > 0 {
		flag = "corrected"
	}

	var numStyle, stemStyle, scoreStyle, flagStyle lipgloss.Style
	diffStyle := difficultyStyle(q.Difficulty)
	if selected {
		numStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		stemStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		scoreStyle = lipgloss.NewStyle().Foreground(theme.Primary)
		flagStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	} else {
		numStyle = lipgloss.NewStyle().Foreground(theme.Text)
		stemStyle = lipgloss.NewStyle().Foreground(theme.Text)
		scoreStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		flagStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	return fmt.Sprintf("  %s%s  %s  %s  %s  %s",
		cursor,
		numStyle.Render(fmt.Sprintf("Q%-3d", q.Number)),
		diffStyle.Render(fmt.Sprintf("%-8s", q.Difficulty)),
		scoreStyle.Render(fmt.Sprintf("%.2f", q.Score)),
		stemStyle.Render(fmt.Sprintf("%-*s", stemWidth, stem)),
		flagStyle.Render(flag),
	)
}

// difficultyStyle maps a difficulty to its display color.
func difficultyStyle(difficulty string) lipgloss.Style {
	switch difficulty {
	case "easy":
		return lipgloss.NewStyle().Foreground(theme.Success)
	case "medium":
		return lipgloss.NewStyle().Foreground(theme.Accent)
	case "hard":
		return lipgloss.NewStyle().Foreground(theme.Error)
	}
	return lipgloss.NewStyle().Foreground(theme.Text)
}
