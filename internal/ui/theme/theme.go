// Package theme holds the shared color palette for the review TUI.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Dark palette. Every screen pulls from these so the app stays
// visually consistent without per-screen style definitions.
var (
	Primary   = lipgloss.Color("#6366F1") // indigo
	Secondary = lipgloss.Color("#06B6D4") // cyan
	Accent    = lipgloss.Color("#F59E0B") // amber
	Success   = lipgloss.Color("#10B981") // emerald
	Error     = lipgloss.Color("#EF4444") // red
	Text      = lipgloss.Color("#E5E7EB") // light gray
	TextDim   = lipgloss.Color("#9CA3AF") // muted gray
	BgCard    = lipgloss.Color("#1F2937") // panel background
	Border    = lipgloss.Color("#374151") // panel border
)
