// Package screen defines the contract between the app shell and the
// individual review screens it hosts.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/arjun/mcqgen/internal/ui/layout"
)

// Screen is one full-window view managed by the router. Update follows
// the bubbletea shape but returns a Screen so implementations can swap
// themselves out without the router knowing their concrete type.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders only the content region. The shell adds the header
	// and footer around it.
	View(width, height int) string

	// Title labels the screen in the header bar.
	Title() string
}

// KeyHintProvider lets a screen publish its own footer key hints.
// Screens without it get the shell's default hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
