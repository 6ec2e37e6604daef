// Package handler provides the result type shared by input handlers.
//
// A Handled result means the event was consumed: the host must not apply its
// own default behavior (global shortcuts, focus movement) for that event.
package handler

import tea "github.com/charmbracelet/bubbletea"

// Result represents the outcome of a key or mouse handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled is returned when a handler doesn't handle the event.
var NotHandled = Result{}

// Handled creates a Result indicating the event was handled with a command.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// HandledNoCmd is a convenience for handlers that handle but return no command.
var HandledNoCmd = Result{Handled: true}

// Handler is a function that attempts to handle an event.
type Handler func() Result

// Chain runs handlers in order until one handles the event.
func Chain(handlers ...Handler) (bool, tea.Cmd) {
	for _, h := range handlers {
		if r := h(); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}

// Broadcast runs every handler and merges the results. The merged result is
// handled when any handler handled the event.
func Broadcast(handlers ...Handler) Result {
	var (
		handled bool
		cmds    []tea.Cmd
	)
	for _, h := range handlers {
		r := h()
		handled = handled || r.Handled
		if r.Cmd != nil {
			cmds = append(cmds, r.Cmd)
		}
	}
	return Result{Handled: handled, Cmd: tea.Batch(cmds...)}
}
