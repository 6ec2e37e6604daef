// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/slider/internal/app/handler"
	"github.com/llehouerou/slider/internal/ui/action"
	"github.com/llehouerou/slider/internal/ui/slider"
	"github.com/llehouerou/slider/internal/ui/textinput"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.Quitting {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.broadcastPointer(func(s *slider.Model) handler.Result {
			return s.HandleMouse(msg)
		})

	case slider.TouchMsg:
		return m, m.broadcastPointer(func(s *slider.Model) handler.Result {
			return s.HandleTouch(msg)
		})

	case action.Msg:
		return m.handleAction(msg)
	}

	// Timer, flush and resize messages carry the ID of their owner; each
	// slider ignores the ones that are not its own.
	cmd := tea.Batch(m.Entry.Update(msg), m.broadcast(msg))
	return m, cmd
}

// handleWindowSize resizes the layout and notifies the sliders. A repeated
// size (terminals resend it on focus or reattach) is dropped so the sliders
// do not re-measure for nothing.
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if last, ok := m.Hub.Last(); ok && last == msg {
		return m, nil
	}
	m.Layout.SetSize(msg.Width, msg.Height)
	m.Help.Width = msg.Width
	m.Hub.Publish(msg)
	return m, nil
}

// broadcastPointer offers a pointer event to every slider. Only the one
// under the pointer, or the one already dragging, handles it.
func (m Model) broadcastPointer(fn func(*slider.Model) handler.Result) tea.Cmd {
	handlers := make([]handler.Handler, 0, len(m.Sliders))
	for _, s := range m.Sliders {
		handlers = append(handlers, func() handler.Result { return fn(s) })
	}
	return handler.Broadcast(handlers...).Cmd
}

func (m Model) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.Sliders))
	for _, s := range m.Sliders {
		cmds = append(cmds, s.Update(msg))
	}
	return tea.Batch(cmds...)
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case slider.Changed:
		// The binding already persisted the value.
		m.ErrorMsg = ""
	case slider.Focused:
		if i := m.sliderIndex(a.Name); i >= 0 {
			m.focus(i)
		}
	case textinput.Result:
		return m.handleEntryResult(a)
	}
	return m, nil
}
