package base

import "github.com/charmbracelet/lipgloss"

// ColorPalette holds the colours of one theme. Surface, Raised and Border
// are background shades from darkest to lightest.
type ColorPalette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Error     lipgloss.Color
	Muted     lipgloss.Color

	Text    lipgloss.Color
	TextDim lipgloss.Color
	Surface lipgloss.Color
	Raised  lipgloss.Color
	Border  lipgloss.Color
}

// DarkPalette is the default dark theme palette
var DarkPalette = ColorPalette{
	Primary:   lipgloss.Color("#7C3AED"), // Purple
	Secondary: lipgloss.Color("#06B6D4"), // Cyan
	Accent:    lipgloss.Color("#10B981"), // Emerald
	Error:     lipgloss.Color("#EF4444"), // Red
	Muted:     lipgloss.Color("#94A3B8"), // Slate

	Text:    lipgloss.Color("#F8FAFC"),
	TextDim: lipgloss.Color("#CBD5E1"),
	Surface: lipgloss.Color("#0F172A"),
	Raised:  lipgloss.Color("#1E293B"),
	Border:  lipgloss.Color("#334155"),
}
