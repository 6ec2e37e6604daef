// internal/app/focus.go
package app

import "github.com/llehouerou/slider/internal/errmsg"

// cycleFocus moves focus by delta sliders.
func (m *Model) cycleFocus(delta int) {
	if len(m.Sliders) == 0 {
		return
	}
	m.Layout.Cycle(delta)
	m.focusChanged()
}

// focus moves focus to slider i, as after a press on its track.
func (m *Model) focus(i int) {
	if i == m.Layout.Focus() && m.Sliders[i].IsFocused() {
		return
	}
	m.Layout.Jump(i)
	m.focusChanged()
}

// focusChanged syncs every slider with the cursor. Focus may have scrolled
// the stack, so every slider re-measures.
func (m *Model) focusChanged() {
	current := m.Layout.Focus()
	for i, s := range m.Sliders {
		s.SetFocused(i == current)
		s.RefreshGeometry()
	}
	m.SaveFocus()
}

// SaveFocus persists the focused slider.
func (m *Model) SaveFocus() {
	s := m.focused()
	if s == nil {
		return
	}
	if err := m.StateMgr.SaveFocus(s.Name()); err != nil {
		m.setError(errmsg.FormatWith(errmsg.OpStateFocusSave, s.Name(), err))
	}
}
