package shell

import (
	"bytes"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"stagelist.dev/stagelist/internal/engine"
	"stagelist.dev/stagelist/internal/runtime"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func newTestModel() (Model, *runtime.Context) {
	captured := &bytes.Buffer{}
	ctx := runtime.NewTestContext(captured)
	return New(ctx, captured), ctx
}

func enter(t *testing.T, m Model, line string) Model {
	t.Helper()
	m.input.SetValue(line)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestShellExecutesCommands(t *testing.T) {
	m, ctx := newTestModel()

	m = enter(t, m, "insert 0 a")
	m = enter(t, m, "insert 1 b")
	m = enter(t, m, "commit")
	m = enter(t, m, "delete 0")

	require.Equal(t, []string{"a", "b"}, ctx.Engine.Render(engine.Saved))
	require.Equal(t, []string{"b"}, ctx.Engine.Render(engine.Working))
	require.Equal(t, 1, m.Summary().Commits)
	require.Equal(t, "", m.input.Value())

	history := m.History()
	require.Contains(t, history[0], `Inserted "a" at position 0`)
	require.Contains(t, history[len(history)-1], `Deleted "a" at position 0`)

	view := m.View()
	require.Contains(t, view, "Saved list (2)")
	require.Contains(t, view, "Working list (1)")
	require.Contains(t, view, "batch: 1 attempted, 1 succeeded")
}

func TestShellReportsParseErrors(t *testing.T) {
	m, ctx := newTestModel()

	m = enter(t, m, "push 1")
	require.Len(t, m.History(), 1)
	require.Contains(t, m.History()[0], `unknown command "push"`)
	require.False(t, ctx.Engine.Dirty())
}

func TestShellHistoryIsBounded(t *testing.T) {
	m, _ := newTestModel()

	for i := 0; i < maxHistory+3; i++ {
		m = enter(t, m, "help")
	}
	require.Len(t, m.History(), maxHistory)
}

func TestShellQuit(t *testing.T) {
	for _, line := range []string{"quit", "exit"} {
		m, _ := newTestModel()
		m.input.SetValue(line)

		next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		require.NotNil(t, cmd)
		require.IsType(t, tea.QuitMsg{}, cmd())
		require.Empty(t, strings.TrimSpace(next.View()))
	}

	m, _ := newTestModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.IsType(t, tea.QuitMsg{}, cmd())
}
