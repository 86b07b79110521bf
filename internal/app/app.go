// Package app hosts the Bubble Tea program behind the review command.
package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/arjun/mcqgen/internal/export"
	"github.com/arjun/mcqgen/internal/router"
	"github.com/arjun/mcqgen/internal/screen"
	"github.com/arjun/mcqgen/internal/screens/review"
	"github.com/arjun/mcqgen/internal/ui/layout"
)

// Options configures the review UI.
type Options struct {
	Title     string
	Questions []export.Question
}

// model is the root Bubble Tea model: a router over review screens
// plus the window size and the header status text.
type model struct {
	nav    *router.Router
	status string
	width  int
	height int
}

func newModel(opts Options) model {
	return model{
		nav:    router.New(review.NewList(opts.Title, opts.Questions)),
		status: fmt.Sprintf("%d questions", len(opts.Questions)),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// At the root the list screen handles esc itself, clearing
			// its filter or quitting. Above the root esc means back.
			if m.nav.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	return m, m.nav.Update(msg)
}

func (m model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.nav.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status, m.width)
	footer := layout.RenderFooter(m.hints(active), m.width)
	body := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(footer))

	content := m.nav.View(m.width, body)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// hints asks the active screen for its key bindings, with stack-aware
// defaults for screens that publish none.
func (m model) hints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.nav.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the review UI over the question set and blocks until the
// user quits.
func Run(opts Options) error {
	if _, err := tea.NewProgram(newModel(opts)).Run(); err != nil {
		return fmt.Errorf("run review ui: %w", err)
	}
	return nil
}
