// Package shell provides the interactive stagelist shell, a bubbletea program
// that reads batch script commands one line at a time and shows both lists
// after every command.
package shell

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"stagelist.dev/stagelist/internal/actions"
	"stagelist.dev/stagelist/internal/engine"
	"stagelist.dev/stagelist/internal/output"
	"stagelist.dev/stagelist/internal/runtime"
	"stagelist.dev/stagelist/internal/script"
)

const maxHistory = 8

const helpText = "insert <pos> <value> · delete <pos> · commit · rollback · quit"

// Model is the bubbletea model for the shell
type Model struct {
	ctx      *runtime.Context
	captured *bytes.Buffer
	input    textinput.Model
	history  []string
	summary  actions.RunSummary
	quitting bool
	styles   shellStyles
}

type shellStyles struct {
	box     lipgloss.Style
	prompt  lipgloss.Style
	errText lipgloss.Style
	dim     lipgloss.Style
}

// New creates a shell model. The context's Splog must write its console
// output to captured so that messages can be shown inside the view.
func New(ctx *runtime.Context, captured *bytes.Buffer) Model {
	styles := shellStyles{
		box:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MarginRight(1),
		prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		errText: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}

	ti := textinput.New()
	ti.Placeholder = "insert 0 hello"
	ti.Prompt = "› "
	ti.PromptStyle = styles.prompt
	ti.CharLimit = 512
	ti.Focus()

	return Model{
		ctx:      ctx,
		captured: captured,
		input:    ti,
		styles:   styles,
	}
}

// Summary returns what the shell session did
func (m Model) Summary() actions.RunSummary {
	return m.summary
}

// History returns the messages currently shown in the view, oldest first
func (m Model) History() []string {
	return append([]string(nil), m.history...)
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "quit" || line == "exit" {
				m.quitting = true
				return m, tea.Quit
			}
			m.execute(line)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// execute runs one line. Parse errors are shown and never reach the engine.
func (m *Model) execute(line string) {
	if line == "" {
		return
	}
	if line == "help" {
		m.push(helpText)
		return
	}

	cmd, ok, err := script.ParseLine(line)
	if err != nil {
		m.push(m.styles.errText.Render(err.Error()))
		return
	}
	if !ok {
		return
	}
	if cmd.Op == script.OpShow {
		// both lists are always on screen
		return
	}

	m.captured.Reset()
	if err := actions.ExecuteCommand(m.ctx, cmd, actions.RunOptions{}, &m.summary); err != nil {
		m.push(m.styles.errText.Render(err.Error()))
	}
	for _, l := range strings.Split(strings.TrimRight(m.captured.String(), "\n"), "\n") {
		if l != "" {
			m.push(l)
		}
	}
	m.captured.Reset()
}

func (m *Model) push(line string) {
	m.history = append(m.history, line)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	eng := m.ctx.Engine
	lists := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.box.Render(strings.TrimRight(output.RenderList(engine.Saved, eng.Render(engine.Saved)), "\n")),
		m.styles.box.Render(strings.TrimRight(output.RenderList(engine.Working, eng.Render(engine.Working)), "\n")),
	)

	var b strings.Builder
	b.WriteString(lists)
	b.WriteString("\n")
	b.WriteString(output.RenderCounters(eng.Counters()))
	b.WriteString("\n\n")
	for _, line := range m.history {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.styles.dim.Render("type help for commands · Esc to leave"))
	b.WriteString("\n")
	return b.String()
}

// Run starts the shell program and returns the final model
func Run(ctx *runtime.Context, captured *bytes.Buffer) (Model, error) {
	p := tea.NewProgram(New(ctx, captured))
	final, err := p.Run()
	if err != nil {
		return Model{}, fmt.Errorf("shell failed: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return Model{}, fmt.Errorf("unexpected model type %T", final)
	}
	return m, nil
}
