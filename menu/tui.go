// Package menu provides the selection engine for VPN Switcher.
// This file contains the built-in terminal presenter: a fuzzy-filtered
// list driven by Bubble Tea, used when the tool runs on an interactive
// terminal instead of a desktop launcher.
package menu

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yllada/vpn-switcher/common"
)

// maxVisibleRows caps how many rows the list renders at once.
const maxVisibleRows = 15

// TUI is the built-in terminal presenter.
type TUI struct {
	theme string
}

// NewTUI creates the terminal presenter with the given theme
// (common.ThemeAuto, ThemeLight, ThemeDark).
func NewTUI(theme string) *TUI {
	return &TUI{theme: theme}
}

// Pick runs the fuzzy-select UI and blocks until the user confirms a row
// or dismisses the menu with esc/ctrl+c (which yields "").
func (t *TUI) Pick(prompt string, rows []Row) (string, error) {
	m := newTUIModel(prompt, rows, newTUIStyles(t.theme))
	p := tea.NewProgram(m, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", common.WrapError(err, "menu failed")
	}
	return final.(tuiModel).picked, nil
}

type tuiStyles struct {
	prompt   lipgloss.Style
	cursor   lipgloss.Style
	row      lipgloss.Style
	inactive lipgloss.Style
}

func newTUIStyles(theme string) tuiStyles {
	accent := lipgloss.AdaptiveColor{Light: "5", Dark: "6"}
	faint := lipgloss.AdaptiveColor{Light: "8", Dark: "8"}
	switch theme {
	case common.ThemeLight:
		accent = lipgloss.AdaptiveColor{Light: "5", Dark: "5"}
	case common.ThemeDark:
		accent = lipgloss.AdaptiveColor{Light: "6", Dark: "6"}
	}
	return tuiStyles{
		prompt:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		cursor:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		row:      lipgloss.NewStyle(),
		inactive: lipgloss.NewStyle().Foreground(faint),
	}
}

type tuiModel struct {
	prompt  string
	rows    []Row
	input   textinput.Model
	visible []int // indices into rows
	cursor  int   // index into visible; always on a selectable row
	picked  string
	styles  tuiStyles
}

func newTUIModel(prompt string, rows []Row, styles tuiStyles) tuiModel {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "type to filter"
	input.Focus()

	m := tuiModel{
		prompt: prompt,
		rows:   rows,
		input:  input,
		styles: styles,
	}
	m.recomputeFilter()
	return m
}

func (m tuiModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.picked = ""
			return m, tea.Quit
		case "enter":
			if row, ok := m.current(); ok {
				m.picked = row.Label
				return m, tea.Quit
			}
			return m, nil
		case "up", "ctrl+p":
			m.move(-1)
			return m, nil
		case "down", "ctrl+n":
			m.move(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.recomputeFilter()
	}
	return m, cmd
}

func (m tuiModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.prompt.Render(m.prompt))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	shown := 0
	for pos, idx := range m.visible {
		if shown >= maxVisibleRows {
			b.WriteString(m.styles.inactive.Render("  …"))
			b.WriteString("\n")
			break
		}
		row := m.rows[idx]
		switch {
		case !row.Selectable():
			b.WriteString(m.styles.inactive.Render("  " + row.Label))
		case pos == m.cursor:
			b.WriteString(m.styles.cursor.Render("▸ " + row.Label))
		default:
			b.WriteString(m.styles.row.Render("  " + row.Label))
		}
		b.WriteString("\n")
		shown++
	}
	return b.String()
}

// current returns the row under the cursor, if it is selectable.
func (m tuiModel) current() (Row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return Row{}, false
	}
	row := m.rows[m.visible[m.cursor]]
	return row, row.Selectable()
}

// move advances the cursor to the next selectable visible row.
func (m *tuiModel) move(delta int) {
	for next := m.cursor + delta; next >= 0 && next < len(m.visible); next += delta {
		if m.rows[m.visible[next]].Selectable() {
			m.cursor = next
			return
		}
	}
}

// recomputeFilter rebuilds the visible row set from the current query.
// With no query every row shows, decorative ones included; a query keeps
// only selectable rows matching the fuzzy subsequence.
func (m *tuiModel) recomputeFilter() {
	query := strings.ToLower(strings.TrimSpace(m.input.Value()))
	m.visible = m.visible[:0]
	for i, row := range m.rows {
		if query == "" {
			m.visible = append(m.visible, i)
			continue
		}
		if row.Selectable() && fuzzyMatch(strings.ToLower(row.Label), query) {
			m.visible = append(m.visible, i)
		}
	}

	m.cursor = -1
	m.move(1) // land on the first selectable row, if any
	if m.cursor == -1 {
		m.cursor = 0
	}
}

// fuzzyMatch reports whether query is a subsequence of label.
func fuzzyMatch(label, query string) bool {
	j := 0
	for i := 0; i < len(label) && j < len(query); i++ {
		if label[i] == query[j] {
			j++
		}
	}
	return j == len(query)
}
