package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/whiteelephant/internal/model"
)

func testDraw() *model.Draw {
	return &model.Draw{
		ID:      "01JFZ8Q6X0000000000000000",
		DrawnAt: time.Now().Add(-2 * time.Minute),
		Names:   []string{"Carol", "Alice", "Bob"},
		Total:   3,
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m
}

func TestModel_StartsHidden(t *testing.T) {
	m := New(testDraw())
	assert.Equal(t, 0, m.Revealed())

	view := m.View()
	assert.NotContains(t, view, "Carol")
	assert.Contains(t, view, hiddenName)
	assert.Contains(t, view, "0 of 3 revealed")
}

func TestModel_RevealNext(t *testing.T) {
	m := press(t, New(testDraw()), runes("n"))
	assert.Equal(t, 1, m.Revealed())

	view := m.View()
	assert.Contains(t, view, "Carol")
	assert.NotContains(t, view, "Alice")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 3, m.Revealed())
	assert.Contains(t, m.View(), "Bob")
}

func TestModel_RevealNeverExceedsDraw(t *testing.T) {
	m := press(t, New(testDraw()), runes("n"), runes("n"), runes("n"), runes("n"), runes("n"))
	assert.Equal(t, 3, m.Revealed())
}

func TestModel_HideNeverBelowZero(t *testing.T) {
	m := press(t, New(testDraw()), runes("n"), tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, 0, m.Revealed())
}

func TestModel_AllAndReset(t *testing.T) {
	m := press(t, New(testDraw()), runes("a"))
	assert.Equal(t, 3, m.Revealed())
	assert.Contains(t, m.View(), "3 of 3 revealed")

	m = press(t, m, runes("r"))
	assert.Equal(t, 0, m.Revealed())
}

func TestModel_Quit(t *testing.T) {
	m := New(testDraw())

	updated, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, updated.View())
}

func TestModel_HelpToggle(t *testing.T) {
	m := New(testDraw())
	short := m.View()

	m = press(t, m, runes("?"))
	full := m.View()

	assert.Contains(t, full, "hide all")
	assert.NotContains(t, short, "hide all")
}

func TestModel_EmptyDraw(t *testing.T) {
	m := press(t, New(&model.Draw{DrawnAt: time.Now()}), runes("n"), runes("a"))
	assert.Equal(t, 0, m.Revealed())
	assert.Contains(t, m.View(), "Nobody to draw.")
}

func TestModel_WindowSize(t *testing.T) {
	m := press(t, New(testDraw()), tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, 80, m.width)
	assert.Equal(t, 24, m.height)
	assert.True(t, strings.Contains(m.View(), "drawn 2 minutes ago"))
}
