package slider

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/slider/internal/app/handler"
	"github.com/llehouerou/slider/internal/keymap"
)

// DefaultPageSteps is how many steps pgup/pgdown move.
const DefaultPageSteps = 10

// HandleKey applies a keyboard action to a focused, enabled slider. Handled
// keys must not fall through to the host's own bindings.
func (m *Model) HandleKey(msg tea.KeyMsg) handler.Result {
	if m.destroyed || m.disabled || !m.IsFocused() {
		return handler.NotHandled
	}

	current := m.binding.Get()
	step := m.rng.Step
	page := step * float64(m.pageSteps)

	var target float64
	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionDecrease:
		target = current - step
	case keymap.ActionIncrease:
		target = current + step
	case keymap.ActionPageDecrease:
		target = current - page
	case keymap.ActionPageIncrease:
		target = current + page
	case keymap.ActionJumpMin:
		target = m.rng.Min
	case keymap.ActionJumpMax:
		target = m.rng.Max
	default:
		return handler.NotHandled
	}

	return handler.Handled(m.SetValue(target))
}
