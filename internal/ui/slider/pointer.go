package slider

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/slider/internal/app/handler"
)

// PointerSource selects which event stream drives gestures. Only one source
// is honored per slider so a device reporting both cannot start two gestures.
type PointerSource int

const (
	PointerMouse PointerSource = iota
	PointerTouch
)

func (p PointerSource) String() string {
	switch p {
	case PointerMouse:
		return "mouse"
	case PointerTouch:
		return "touch"
	default:
		return fmt.Sprintf("PointerSource(%d)", int(p))
	}
}

// ParsePointerSource parses "mouse" or "touch". Empty means mouse.
func ParsePointerSource(s string) (PointerSource, error) {
	switch s {
	case "", "mouse":
		return PointerMouse, nil
	case "touch":
		return PointerTouch, nil
	}
	return PointerMouse, fmt.Errorf("unknown pointer source %q", s)
}

// PointerState is the gesture state of a slider.
type PointerState int

const (
	Idle PointerState = iota
	Dragging
)

func (s PointerState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// gesture lives from pointer down to pointer up or cancel.
// moving is only ever set while active.
type gesture struct {
	active bool
	moving bool
}

// Indicators are the visual state flags derived from interaction.
type Indicators struct {
	Active  bool // a gesture is in progress
	Panning bool // the gesture has moved at least once
	AtMin   bool // the rendered value sits at the range minimum
}

// HandleMouse feeds a mouse event to the pointer state machine.
func (m *Model) HandleMouse(msg tea.MouseMsg) handler.Result {
	if m.destroyed || m.source != PointerMouse {
		return handler.NotHandled
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return handler.NotHandled
		}
		return m.pointerDown(msg.X, msg.Y)
	case tea.MouseActionMotion:
		return m.pointerMove(msg.X)
	case tea.MouseActionRelease:
		return m.pointerUp()
	}
	return handler.NotHandled
}

// HandleTouch feeds a touch event to the pointer state machine.
func (m *Model) HandleTouch(msg TouchMsg) handler.Result {
	if m.destroyed || m.source != PointerTouch {
		return handler.NotHandled
	}
	switch msg.Phase {
	case TouchStart:
		return m.pointerDown(msg.X, msg.Y)
	case TouchMove:
		return m.pointerMove(msg.X)
	case TouchEnd, TouchCancel:
		return m.pointerUp()
	}
	return handler.NotHandled
}

func (m *Model) pointerDown(x, y int) handler.Result {
	if m.disabled {
		return handler.NotHandled
	}
	if m.gesture.active {
		return handler.HandledNoCmd
	}

	// Never start a gesture against stale geometry.
	m.geometry.Refresh()
	if !m.geometry.Box().Contains(x, y) {
		return handler.NotHandled
	}

	m.gesture = gesture{active: true}
	m.indicators.Active = true
	focus := m.focus()

	return handler.Handled(tea.Batch(focus, m.moves.Schedule(x)))
}

func (m *Model) pointerMove(x int) handler.Result {
	if !m.gesture.active {
		return handler.NotHandled
	}
	if !m.gesture.moving {
		m.gesture.moving = true
		m.indicators.Panning = true
	}
	return handler.Handled(m.moves.Schedule(x))
}

// pointerUp ends the gesture unconditionally and drops any position that was
// queued but not yet applied.
func (m *Model) pointerUp() handler.Result {
	wasActive := m.gesture.active
	m.gesture = gesture{}
	m.indicators.Active = false
	m.indicators.Panning = false
	m.moves.Cancel()
	if !wasActive {
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

// applyPosition converts the coalesced pointer column into a value using the
// cached geometry, which Refresh may have replaced since the event arrived.
func (m *Model) applyPosition(x int) tea.Cmd {
	if !m.gesture.active {
		return nil
	}
	fraction, ok := m.geometry.Box().Fraction(x)
	if !ok {
		return nil
	}
	return m.SetValue(m.rng.ValueAt(fraction))
}
