// internal/app/keys.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/slider/internal/app/handler"
	"github.com/llehouerou/slider/internal/errmsg"
	"github.com/llehouerou/slider/internal/keymap"
)

// handleKey offers a key to the value entry, then to the focused slider,
// then to the global bindings. Keys consumed early never reach the later
// handlers.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	handled, cmd := handler.Chain(
		func() handler.Result { return m.entryKey(msg) },
		func() handler.Result { return m.sliderKey(msg) },
	)
	if handled {
		return m, cmd
	}
	return m.globalKey(msg)
}

func (m *Model) entryKey(msg tea.KeyMsg) handler.Result {
	if !m.Entry.Active() {
		return handler.NotHandled
	}
	return handler.Handled(m.Entry.Update(msg))
}

func (m *Model) sliderKey(msg tea.KeyMsg) handler.Result {
	s := m.focused()
	if s == nil {
		return handler.NotHandled
	}
	return s.HandleKey(msg)
}

func (m Model) globalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return m.quit()
	case keymap.ActionFocusNext:
		m.cycleFocus(1)
	case keymap.ActionFocusPrev:
		m.cycleFocus(-1)
	case keymap.ActionHelp:
		m.Help.ShowAll = !m.Help.ShowAll
	case keymap.ActionEnterValue:
		cmd := m.startEntry()
		return m, cmd
	}
	return m, nil
}

// quit tears every slider down and writes pending values before exiting.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.destroySliders()
	if err := m.StateMgr.Flush(); err != nil {
		m.setError(errmsg.Format(errmsg.OpStateSave, err))
	}
	m.Quitting = true
	return m, tea.Quit
}
