// Package tui provides the BubbleTea-based reveal screen.
//
// The drawn order starts hidden and is uncovered one name at a time, which
// is how a draw gets announced at the party.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/whiteelephant/internal/model"
	"github.com/jmylchreest/whiteelephant/internal/render"
)

const hiddenName = "? ? ?"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9")).
			MarginBottom(1)
	nameStyle   = lipgloss.NewStyle()
	latestStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))
	hiddenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			MarginTop(1)
)

// Model is the reveal screen model.
type Model struct {
	draw     *model.Draw
	revealed int

	keys     KeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// New creates a reveal model with every name hidden.
func New(d *model.Draw) Model {
	return Model{
		draw: d,
		keys: DefaultKeyMap(),
		help: help.New(),
	}
}

// Revealed returns how many names are currently uncovered.
func (m Model) Revealed() int {
	return m.revealed
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey handles key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Next):
		if m.revealed < m.draw.Count() {
			m.revealed++
		}
	case key.Matches(msg, m.keys.Prev):
		if m.revealed > 0 {
			m.revealed--
		}
	case key.Matches(msg, m.keys.All):
		m.revealed = m.draw.Count()
	case key.Matches(msg, m.keys.Reset):
		m.revealed = 0
	}
	return m, nil
}

// View renders the TUI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(render.Title))
	sb.WriteString("\n")

	if m.draw.Count() == 0 {
		sb.WriteString(hiddenStyle.Render("Nobody to draw."))
		sb.WriteString("\n")
	}

	width := len(fmt.Sprint(m.draw.Count()))
	for i, name := range m.draw.Names {
		prefix := fmt.Sprintf("%*d. ", width, i+1)
		switch {
		case i >= m.revealed:
			sb.WriteString(hiddenStyle.Render(prefix + hiddenName))
		case i == m.revealed-1:
			sb.WriteString(latestStyle.Render(prefix + name))
		default:
			sb.WriteString(nameStyle.Render(prefix + name))
		}
		sb.WriteString("\n")
	}

	footer := fmt.Sprintf("%d of %d revealed · drawn %s (%s)",
		m.revealed, m.draw.Count(), m.draw.RelativeTime(), render.FormatTimestamp(m.draw.DrawnAt))
	sb.WriteString(footerStyle.Render(footer))
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))

	return sb.String()
}

// Run starts the reveal screen and blocks until the user quits.
func Run(d *model.Draw, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(New(d), opts...)
	_, err := p.Run()
	return err
}
