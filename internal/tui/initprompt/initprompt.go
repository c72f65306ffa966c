package initprompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	boxStyle    = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("4")).Padding(0, 1)
)

// Model prompts for the default journal path during init.
type Model struct {
	input     textinput.Model
	err       string
	value     string
	cancelled bool
	done      bool
}

// New creates the prompt model.
func New() *Model {
	ti := textinput.New()
	ti.Placeholder = "/home/you/journal"
	ti.Focus()
	ti.CharLimit = 256
	return &Model{input: ti}
}

// Value returns the confirmed path, "" when cancelled.
func (m *Model) Value() string {
	return m.value
}

// Cancelled reports whether the user aborted the prompt.
func (m *Model) Cancelled() bool {
	return m.cancelled
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if err := validatePath(m.input.Value()); err != nil {
				m.err = err.Error()
				return m, nil
			}
			m.value = strings.TrimSpace(m.input.Value())
			m.done = true
			return m, tea.Quit

		case "esc", "ctrl+c":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.err = ""
	return m, cmd
}

// View implements tea.Model
func (m *Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(promptStyle.Render("Default journal path:"))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(m.input.View()))
	b.WriteString("\n")
	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}
	b.WriteString("(enter to confirm, esc to cancel)\n")
	return b.String()
}

func validatePath(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("path cannot be empty")
	}
	return nil
}

// Run shows the prompt and returns the entered path.
func Run() (string, error) {
	m := New()
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return "", fmt.Errorf("running prompt: %w", err)
	}
	if m.Cancelled() {
		return "", errors.New("cancelled")
	}
	return m.Value(), nil
}
