// internal/app/entry.go
package app

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/slider/internal/errmsg"
	"github.com/llehouerou/slider/internal/ui/textinput"
)

// startEntry opens the value entry for the focused slider.
func (m *Model) startEntry() tea.Cmd {
	s := m.focused()
	if s == nil || s.Disabled() {
		return nil
	}
	return m.Entry.Start(s.Label(), s.ValueText(), s.Name(), m.Layout.Width())
}

// handleEntryResult applies a typed value. It goes through SetValue like any
// other input, so it is clamped and snapped to a step.
func (m Model) handleEntryResult(r textinput.Result) (tea.Model, tea.Cmd) {
	m.Entry.Reset()
	if r.Canceled {
		return m, nil
	}

	name, _ := r.Context.(string)
	i := m.sliderIndex(name)
	if i < 0 {
		return m, nil
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(r.Text), 64)
	if err != nil {
		m.setError(errmsg.FormatWith(errmsg.OpValueParse, r.Text, err))
		return m, nil
	}
	return m, m.Sliders[i].SetValue(v)
}
