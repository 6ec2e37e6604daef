// Package textinput provides the single-line entry used to type a slider
// value.
package textinput

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/slider/internal/ui"
	"github.com/llehouerou/slider/internal/ui/styles"
)

// charLimit bounds the entry, long enough for any float64 literal.
const charLimit = 32

const hint = "enter: confirm, esc: cancel"

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.T().Primary)
}

func hintStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

// Model is a one-line text entry.
type Model struct {
	ui.Base
	title   string
	input   textinput.Model
	context any // passed through to Result action
	active  bool
}

// New creates a new text input model.
func New() Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = charLimit
	return Model{input: ti}
}

// Start opens the entry with a title and initial text. The returned command
// starts the cursor blink.
func (m *Model) Start(title, initialText string, context any, width int) tea.Cmd {
	m.title = title
	m.context = context
	m.active = true
	m.SetSize(width, 1)

	m.input.Width = max(width-lipgloss.Width(title)-lipgloss.Width(hint)-lipgloss.Width(m.input.Prompt)-4, 1)
	m.input.SetValue(initialText)
	m.input.CursorEnd()
	return m.input.Focus()
}

// Reset closes the entry and clears its state.
func (m *Model) Reset() {
	m.title = ""
	m.context = nil
	m.active = false
	m.input.Reset()
	m.input.Blur()
}

// Active reports whether the entry is open.
func (m *Model) Active() bool {
	return m.active
}

// Value returns the current text.
func (m *Model) Value() string {
	return m.input.Value()
}

// Update handles a message while the entry is open.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.active {
		return nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			ctx := m.context
			return func() tea.Msg {
				return ActionMsg(Result{Canceled: true, Context: ctx})
			}

		case "enter":
			text := m.input.Value()
			ctx := m.context
			return func() tea.Msg {
				return ActionMsg(Result{Text: text, Context: ctx})
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// View renders the entry on a single line.
func (m *Model) View() string {
	if !m.active || m.Width() == 0 {
		return ""
	}
	return titleStyle().Render(m.title) + " " + m.input.View() + "  " + hintStyle().Render(hint)
}
