package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// FilterInput wraps bubbles/textinput as a single-line filter box.
type FilterInput struct {
	Model textinput.Model
}

// NewFilterInput creates a focused filter input.
func NewFilterInput(placeholder string) FilterInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Focus()
	return FilterInput{Model: ti}
}

// Init returns the initial command.
func (f FilterInput) Init() tea.Cmd {
	return f.Model.Focus()
}

// Update handles messages.
func (f FilterInput) Update(msg tea.Msg) (FilterInput, tea.Cmd) {
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// View renders the filter input.
func (f FilterInput) View() string {
	return f.Model.View()
}

// Value returns the current filter text.
func (f FilterInput) Value() string {
	return f.Model.Value()
}
