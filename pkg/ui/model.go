package ui

import (
	"fmt"
	"rowdb/pkg/database"
	"rowdb/pkg/ui/base"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxHistory = 50

// Model is the bubbletea model of the terminal UI. Commands run
// synchronously inside Update, so the database is only ever touched from
// bubbletea's event loop.
type Model struct {
	database    *database.Database
	input       textarea.Model
	resultView  viewport.Model
	resultTable table.Model
	columns     []table.Column
	help        help.Model
	highlighter *CommandHighlighter

	width    int
	height   int
	showHelp bool
	showRaw  bool
	exited   bool

	history     []string
	lastResult  database.Result
	hasResult   bool
	lastRunTime time.Duration

	keys keyMap
}

func NewModel(db *database.Database) Model {
	ta := textarea.New()
	ta.Placeholder = "insert 1 cstack foo@bar.com"
	ta.Prompt = "db> "
	ta.CharLimit = 1024
	ta.ShowLineNumbers = false
	ta.SetHeight(1)
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.Focus()

	ta.FocusedStyle.CursorLine = theme.cursorLine
	ta.FocusedStyle.Placeholder = theme.placeholder
	ta.FocusedStyle.Text = theme.inputText

	columns := columnsFor(80)

	vp := viewport.New(80, 10)
	vp.Style = theme.rawRows

	t := table.New(
		table.WithColumns(columns),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(10),
		table.WithStyles(theme.table),
	)

	return Model{
		database:    db,
		input:       ta,
		resultView:  vp,
		resultTable: t,
		columns:     columns,
		help:        help.New(),
		highlighter: NewCommandHighlighter(),
		keys:        keys,
		width:       80,
		height:      24,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Exited reports whether the user ran the exit meta-command, as opposed to
// quitting with a key binding.
func (m Model) Exited() bool {
	return m.exited
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Execute):
			line := m.input.Value()
			m.input.Reset()
			if m.run(line) {
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			m.lastResult = database.Result{}
			m.hasResult = false
			m.resultView.SetContent("")
			m.resultTable.SetRows([]table.Row{})
			return m, nil

		case key.Matches(msg, m.keys.ShowRaw):
			m.showRaw = !m.showRaw
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.resultView, cmd = m.resultView.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// run executes one line and records the outcome. It reports whether the
// program should quit.
func (m *Model) run(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}

	start := time.Now()
	res := m.database.Execute(line)
	m.lastRunTime = time.Since(start)

	m.history = append(m.history, line)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}

	m.lastResult = res
	m.hasResult = true
	m.resultView.SetContent(res.Display())

	if res.Rows != nil {
		m.fillResultTable()
	}

	if res.Exit {
		m.exited = true
		return true
	}
	return false
}

// fillResultTable loads the last selected rows into the table, clipping each
// cell to its column width.
func (m *Model) fillResultTable() {
	rows := database.FormatRows(m.lastResult.Rows)

	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		cells := make(table.Row, len(r))
		for j, cell := range r {
			cells[j] = base.TruncateString(cell, m.columns[j].Width)
		}
		tableRows[i] = cells
	}
	m.resultTable.SetRows(tableRows)
}

func (m Model) View() string {
	var sections []string

	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderHistory())
	sections = append(sections, theme.prompt.Render(m.input.View()))

	switch {
	case !m.hasResult:
	case m.lastResult.Err != nil:
		sections = append(sections, m.renderError())
	case m.lastResult.Rows != nil && !m.showRaw:
		sections = append(sections, m.renderResultTable())
	case m.lastResult.Rows != nil:
		sections = append(sections, m.resultView.View())
	default:
		sections = append(sections, m.renderMessage())
	}

	sections = append(sections, m.renderStatusBar())

	if m.showHelp {
		sections = append(sections, m.renderHelp())
	}

	return theme.app.Render(strings.Join(sections, "\n"))
}

func (m Model) renderHeader() string {
	info := m.database.GetStatistics()

	header := lipgloss.JoinHorizontal(lipgloss.Left,
		theme.title.Render("rowdb"),
		" ",
		theme.rowCount.Render(fmt.Sprintf("%d rows", info.RowCount)),
		"  ",
		theme.counters.Render(fmt.Sprintf("Statements: %d | Errors: %d",
			info.StatementsExecuted, info.ErrorCount)),
	)

	return header + "\n" + theme.rule.Render(base.Rule(m.width-4))
}

func (m Model) renderHistory() string {
	if len(m.history) == 0 {
		return theme.emptyHistory.Render("No commands yet.")
	}

	limit := base.Clamp(m.height/4, 1, maxHistory)
	start := max(len(m.history)-limit, 0)

	lines := make([]string, 0, limit)
	for _, line := range m.history[start:] {
		lines = append(lines, m.highlighter.Highlight(line))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderError() string {
	return theme.errorBox.Render(
		theme.errorTag.Render("ERROR") + " " + theme.errorText.Render(m.lastResult.Display()))
}

func (m Model) renderResultTable() string {
	caption := theme.caption.Render(fmt.Sprintf("%d row(s) in %v", len(m.lastResult.Rows), m.lastRunTime))
	return caption + "\n" + m.resultTable.View()
}

func (m Model) renderMessage() string {
	message := m.lastResult.Display()
	if message == "" {
		message = "OK"
	}
	return theme.okTag.Render("✓") + " " + theme.okText.Render(message)
}

func (m Model) renderStatusBar() string {
	hint := " | " + m.help.ShortHelpView(m.keys.ShortHelp())
	if m.lastRunTime > 0 {
		hint = fmt.Sprintf(" | Last command: %v", m.lastRunTime) + hint
	}

	content := theme.statusReady.Render("● Ready") + theme.statusHint.Render(hint)
	return theme.status.Width(max(m.width-4, 0)).Render(content)
}

func (m Model) renderHelp() string {
	return theme.helpBox.Render(m.help.FullHelpView(m.keys.FullHelp()))
}

// updateLayout adjusts component sizes based on window size
func (m *Model) updateLayout() {
	resultHeight := max(m.height-14, 3)
	innerWidth := max(m.width-6, 20)

	m.input.SetWidth(innerWidth)
	m.resultView.Width = innerWidth
	m.resultView.Height = resultHeight
	m.resultTable.SetHeight(resultHeight)
	m.columns = columnsFor(innerWidth)
	m.resultTable.SetColumns(m.columns)
	if m.hasResult && m.lastResult.Rows != nil {
		m.fillResultTable()
	}
}

// columnsFor splits width between id and the two text columns.
func columnsFor(width int) []table.Column {
	idWidth := 5
	textWidth := base.Clamp((width-idWidth)/2, 10, 34)
	return []table.Column{
		{Title: database.Columns[0], Width: idWidth},
		{Title: database.Columns[1], Width: textWidth},
		{Title: database.Columns[2], Width: textWidth},
	}
}
