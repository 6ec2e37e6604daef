package testutil

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultCmdTimeout is how long Run waits for a command before treating it
// as a pending timer and abandoning it. Run the test inside a synctest bubble
// so the wait is measured on the fake clock.
const DefaultCmdTimeout = 30 * time.Millisecond

// Component is anything driven by messages through Update.
type Component interface {
	Update(msg tea.Msg) tea.Cmd
}

// Harness drives a component the way the program loop would: it executes
// commands, feeds their messages back through Update and records every
// message it saw.
//
// Commands that do not return within the timeout (timers waiting on a long
// delay, subscriptions waiting for an event) are abandoned. Their goroutines
// exit when the component cancels them, so tear the component down at the end
// of the test.
type Harness struct {
	c       Component
	timeout time.Duration
	msgs    []tea.Msg
}

// NewHarness wraps c.
func NewHarness(c Component) *Harness {
	return &Harness{c: c, timeout: DefaultCmdTimeout}
}

// WithTimeout changes how long each round of commands may run.
func (h *Harness) WithTimeout(d time.Duration) *Harness {
	h.timeout = d
	return h
}

// Send delivers msg to the component and runs the resulting commands.
func (h *Harness) Send(msg tea.Msg) {
	h.Run(h.c.Update(msg))
}

// SendKey simulates a key press. Named keys ("left", "pgup", "home") are
// translated to their key type, anything else is sent as runes.
func (h *Harness) SendKey(key string) {
	h.Send(KeyMsg(key))
}

// Run executes cmd and every command spawned by the messages it produces,
// until only abandoned commands remain.
func (h *Harness) Run(cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		msgs := h.execute(queue)
		queue = nil
		for _, msg := range msgs {
			h.msgs = append(h.msgs, msg)
			if next := h.c.Update(msg); next != nil {
				queue = append(queue, next)
			}
		}
	}
}

// execute runs a round of commands concurrently and returns, in order, the
// messages of those that completed in time. Batches are flattened.
func (h *Harness) execute(cmds []tea.Cmd) []tea.Msg {
	results := make([]chan tea.Msg, 0, len(cmds))
	for _, cmd := range cmds {
		if cmd == nil {
			continue
		}
		ch := make(chan tea.Msg, 1)
		results = append(results, ch)
		go func() { ch <- cmd() }()
	}

	timer := time.NewTimer(h.timeout)
	defer timer.Stop()
	expired := false
	var msgs []tea.Msg
	for _, ch := range results {
		var msg tea.Msg
		if expired {
			// Only collect the ones that already completed.
			select {
			case msg = <-ch:
			default:
				continue
			}
		} else {
			select {
			case msg = <-ch:
			case <-timer.C:
				expired = true
				select {
				case msg = <-ch:
				default:
					continue
				}
			}
		}
		switch msg := msg.(type) {
		case nil:
		case tea.BatchMsg:
			msgs = append(msgs, h.execute(msg)...)
		default:
			msgs = append(msgs, msg)
		}
	}
	return msgs
}

// Messages returns every message delivered since creation or the last Reset.
func (h *Harness) Messages() []tea.Msg {
	return h.msgs
}

// Reset forgets the recorded messages.
func (h *Harness) Reset() {
	h.msgs = nil
}

// MessagesOf returns the recorded messages of type T.
func MessagesOf[T any](h *Harness) []T {
	var out []T
	for _, msg := range h.msgs {
		if m, ok := msg.(T); ok {
			out = append(out, m)
		}
	}
	return out
}

// ExecuteCmd runs a command and returns the resulting message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEscape,
	"backspace": tea.KeyBackspace,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"pgup":      tea.KeyPgUp,
	"pgdown":    tea.KeyPgDown,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"ctrl+c":    tea.KeyCtrlC,
}

// KeyMsg builds the tea.KeyMsg whose String() is key.
func KeyMsg(key string) tea.KeyMsg {
	if t, ok := namedKeys[key]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// Press builds a left-button press at (x, y).
func Press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// Motion builds a motion event with the left button held at (x, y).
func Motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

// Release builds a button release at (x, y).
func Release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}
