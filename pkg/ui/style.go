package ui

import (
	"rowdb/pkg/ui/base"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// styles groups the lipgloss styles of each view region.
type styles struct {
	app lipgloss.Style

	// header line
	title    lipgloss.Style
	rowCount lipgloss.Style
	counters lipgloss.Style
	rule     lipgloss.Style

	// history and prompt
	emptyHistory lipgloss.Style
	prompt       lipgloss.Style
	cursorLine   lipgloss.Style
	placeholder  lipgloss.Style
	inputText    lipgloss.Style

	// outcome of the last command
	caption   lipgloss.Style
	rawRows   lipgloss.Style
	okTag     lipgloss.Style
	okText    lipgloss.Style
	errorBox  lipgloss.Style
	errorTag  lipgloss.Style
	errorText lipgloss.Style

	status      lipgloss.Style
	statusReady lipgloss.Style
	statusHint  lipgloss.Style
	helpBox     lipgloss.Style

	table table.Styles
}

func newStyles(p base.ColorPalette) styles {
	s := styles{
		app: lipgloss.NewStyle().Background(p.Surface).Foreground(p.Text).Padding(1, 2),

		title:    lipgloss.NewStyle().Background(p.Primary).Foreground(p.Text).Bold(true).Padding(0, 1),
		rowCount: lipgloss.NewStyle().Background(p.Secondary).Foreground(p.Surface).Padding(0, 1),
		counters: lipgloss.NewStyle().Foreground(p.TextDim),
		rule:     lipgloss.NewStyle().Foreground(p.Border),

		emptyHistory: lipgloss.NewStyle().Foreground(p.Muted).Italic(true),
		prompt:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Primary).Padding(0, 1),
		cursorLine:   lipgloss.NewStyle().Background(p.Border),
		placeholder:  lipgloss.NewStyle().Foreground(p.Muted),
		inputText:    lipgloss.NewStyle().Foreground(p.Text),

		caption:   lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		rawRows:   lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(p.Border).Padding(0, 1),
		okTag:     lipgloss.NewStyle().Background(p.Accent).Foreground(p.Surface).Bold(true).Padding(0, 1),
		okText:    lipgloss.NewStyle().Foreground(p.Accent),
		errorBox:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Error).Padding(0, 1),
		errorTag:  lipgloss.NewStyle().Background(p.Error).Foreground(p.Text).Bold(true).Padding(0, 1),
		errorText: lipgloss.NewStyle().Foreground(p.Error),

		status:      lipgloss.NewStyle().Background(p.Raised).Foreground(p.TextDim).Padding(0, 1),
		statusReady: lipgloss.NewStyle().Foreground(p.Accent),
		statusHint:  lipgloss.NewStyle().Foreground(p.Muted),
		helpBox:     lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(p.Primary).Background(p.Raised).Padding(1, 2),
	}

	s.table = table.DefaultStyles()
	s.table.Header = s.table.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(p.Primary).
		BorderBottom(true).
		Bold(true).
		Foreground(p.Primary)
	s.table.Selected = s.table.Selected.
		Foreground(p.Surface).
		Background(p.Secondary).
		Bold(false)

	return s
}

var theme = newStyles(base.DarkPalette)
