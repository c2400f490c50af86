package ui

import (
	"rowdb/pkg/command"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CommandHighlighter colours an input line for the history pane.
type CommandHighlighter struct {
	keywords     map[string]bool
	keywordStyle lipgloss.Style
	metaStyle    lipgloss.Style
	numberStyle  lipgloss.Style
	emailStyle   lipgloss.Style
}

func NewCommandHighlighter() *CommandHighlighter {
	h := &CommandHighlighter{
		keywords: map[string]bool{
			command.Insert.Keyword(): true,
			command.Select.Keyword(): true,
		},
	}

	h.keywordStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF79C6")).
		Bold(true)

	h.metaStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8BE9FD")).
		Bold(true)

	h.numberStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#BD93F9"))

	h.emailStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F1FA8C"))

	return h
}

// Highlight styles each whitespace-separated word. Words are re-joined with
// single spaces.
func (h *CommandHighlighter) Highlight(line string) string {
	words := strings.Fields(line)
	highlighted := make([]string, 0, len(words))

	for i, word := range words {
		switch {
		case i == 0 && strings.HasPrefix(word, command.MetaPrefix):
			highlighted = append(highlighted, h.metaStyle.Render(word))
		case i == 0 && h.keywords[word]:
			highlighted = append(highlighted, h.keywordStyle.Render(word))
		case isNumeric(word):
			highlighted = append(highlighted, h.numberStyle.Render(word))
		case strings.Contains(word, "@"):
			highlighted = append(highlighted, h.emailStyle.Render(word))
		default:
			highlighted = append(highlighted, word)
		}
	}

	return strings.Join(highlighted, " ")
}

func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}
