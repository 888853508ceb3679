package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrAborted is returned when the user leaves the composer without saving.
var ErrAborted = errors.New("composition aborted")

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Composer is an in-terminal editor used when no external editor is available.
type Composer struct {
	Input  io.Reader
	Output io.Writer
}

// NewComposer binds the composer to the process's standard streams.
func NewComposer() *Composer {
	return &Composer{Input: os.Stdin, Output: os.Stdout}
}

// Edit runs the composer until the user saves or aborts.
func (c *Composer) Edit(ctx context.Context, initial string) (string, error) {
	program := tea.NewProgram(
		NewModel(initial),
		tea.WithContext(ctx),
		tea.WithInput(c.Input),
		tea.WithOutput(c.Output),
	)
	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("run composer: %w", err)
	}

	m, ok := final.(Model)
	if !ok || m.aborted {
		return "", ErrAborted
	}
	return m.Value(), nil
}

// Model owns Bubble Tea state for the entry composer.
type Model struct {
	textarea textarea.Model
	saved    bool
	aborted  bool
}

// NewModel seeds the composer with initial text and focuses it.
func NewModel(initial string) Model {
	ta := textarea.New()
	ta.Placeholder = "Write your entry..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetValue(initial)
	ta.Focus()

	return Model{textarea: ta}
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles save/abort keys and forwards everything else to the textarea.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.textarea.SetWidth(msg.Width)
		m.textarea.SetHeight(max(msg.Height-4, 3))
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlD:
			m.saved = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// View renders the frame. Nothing is left on screen once the composer exits.
func (m Model) View() string {
	if m.saved || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("New entry"))
	b.WriteString("\n\n")
	b.WriteString(m.textarea.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("ctrl+d save  esc cancel"))
	return b.String()
}

// Value returns the text typed so far.
func (m Model) Value() string {
	return m.textarea.Value()
}

// Saved reports whether the user asked to keep the entry.
func (m Model) Saved() bool {
	return m.saved
}

// Aborted reports whether the user cancelled.
func (m Model) Aborted() bool {
	return m.aborted
}
