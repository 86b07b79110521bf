// Package layout renders the chrome shared by every review screen:
// the header bar, the footer key hints, and the frame that stacks
// them around screen content.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/arjun/mcqgen/internal/ui/theme"
)

const (
	// Below these dimensions screens are replaced with a resize prompt.
	MinWidth  = 80
	MinHeight = 24

	// Below this width screens may drop side-by-side panes.
	CompactWidthThreshold = 100
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactWidth reports whether screens should use their narrow layout.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsTooSmall reports whether the terminal is below the minimum usable size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the terminal with a resize prompt.
func RenderMinSizeMessage(width, height int) string {
	text := fmt.Sprintf(
		"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
		MinWidth, MinHeight, width, height,
	)
	return lipgloss.NewStyle().
		Foreground(theme.Text).
		Align(lipgloss.Center).
		Width(width).
		Height(height).
		Render(text)
}

// bar is the boxed style shared by the header and footer.
func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// RenderHeader draws the top bar: app name on the left, screen title
// in the middle, status (counts, run IDs) on the right. Pass "" to
// leave the status slot empty.
func RenderHeader(title, status string, width int) string {
	brand := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  mcqgen")

	right := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(status)

	// The border consumes two columns; pad the rest between the three parts.
	middleWidth := width - 2 - lipgloss.Width(brand) - lipgloss.Width(right) - 2
	if middleWidth < 0 {
		middleWidth = 0
	}
	middle := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(middleWidth).
		Align(lipgloss.Center).
		Render(title)

	return bar(width).Render(brand + middle + right + "  ")
}

// RenderFooter draws the bottom bar listing the active key bindings.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString("  ")
	for i, h := range hints {
		if i > 0 {
			b.WriteString("   ")
		}
		b.WriteString(keyStyle.Render(h.Key))
		b.WriteString(" ")
		b.WriteString(descStyle.Render(h.Description))
	}

	return bar(width).Render(b.String())
}

// RenderFrame stacks header, content, and footer into one view,
// stretching the content region to fill the leftover height.
func RenderFrame(header, content, footer string, width, height int) string {
	body := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if body < 0 {
		body = 0
	}
	middle := lipgloss.NewStyle().
		Width(width).
		Height(body).
		Render(content)

	return header + "\n" + middle + "\n" + footer
}
