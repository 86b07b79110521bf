// Package router keeps the screen stack for the review TUI. Screens
// navigate by emitting push/pop messages from their Update methods
// rather than holding references to each other.
package router

import (
	"github.com/arjun/mcqgen/internal/screen"

	tea "charm.land/bubbletea/v2"
)

// PushScreenMsg asks the router to open a screen on top of the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg asks the router to close the active screen.
type PopScreenMsg struct{}

// Router owns the screen stack. The bottom screen is never popped.
type Router struct {
	stack []screen.Screen
}

// New returns a router with initial as its only screen.
func New(initial screen.Screen) *Router {
	return &Router{stack: []screen.Screen{initial}}
}

// Push opens s on top of the stack and runs its Init.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the active screen. Popping the last screen does nothing.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) > 1 {
		r.stack = r.stack[:len(r.stack)-1]
	}
	return nil
}

// Active returns the screen currently shown, or nil for an empty stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns how many screens are stacked.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update routes navigation messages, and forwards everything else to
// the active screen, storing whatever screen value it returns.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	}

	if len(r.stack) == 0 {
		return nil
	}
	top := len(r.stack) - 1
	next, cmd := r.stack[top].Update(msg)
	r.stack[top] = next
	return cmd
}

// View renders the active screen at the given size.
func (r *Router) View(width, height int) string {
	s := r.Active()
	if s == nil {
		return ""
	}
	return s.View(width, height)
}
