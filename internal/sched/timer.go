// Package sched provides the two scheduling primitives bubbletea components
// need for deferred work: a cancelable debounce timer and a task coalescer.
//
// Both hand their work to the program loop as tea.Cmd values and recognize
// their own messages by ID and sequence number, so a message that was already
// in flight when the work was reset or canceled is ignored on arrival.
package sched

import (
	"context"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// FiredMsg is sent when a Timer elapses without being reset or canceled.
type FiredMsg struct {
	ID  int
	Seq int
}

// Timer is a restartable one-shot timer.
//
// Every Reset invalidates the previous tick: its goroutine is released through
// context cancellation and its FiredMsg, if already queued, no longer matches.
// A Timer is not safe for concurrent use; it is driven from Update.
type Timer struct {
	id     int
	seq    int
	cancel context.CancelFunc
}

// NewTimer creates an idle timer.
func NewTimer() *Timer {
	return &Timer{id: nextID()}
}

// ID returns the identifier carried by this timer's messages.
func (t *Timer) ID() int {
	return t.id
}

// Start is an alias for Reset, reading better for the first arm.
func (t *Timer) Start(d time.Duration) tea.Cmd {
	return t.Reset(d)
}

// Reset cancels any pending tick and arms a new one firing after d.
func (t *Timer) Reset(d time.Duration) tea.Cmd {
	t.stop()
	t.seq++

	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	id, seq := t.id, t.seq

	return func() tea.Msg {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
			return FiredMsg{ID: id, Seq: seq}
		case <-ctx.Done():
			return nil
		}
	}
}

// Cancel releases the pending tick, if any. Safe to call repeatedly.
func (t *Timer) Cancel() {
	t.stop()
	t.seq++
}

// Pending reports whether a tick is armed and not yet consumed.
func (t *Timer) Pending() bool {
	return t.cancel != nil
}

// Fired reports whether msg is the live tick of this timer and consumes it.
func (t *Timer) Fired(msg tea.Msg) bool {
	fired, ok := msg.(FiredMsg)
	if !ok || fired.ID != t.id || fired.Seq != t.seq || t.cancel == nil {
		return false
	}
	t.stop()
	return true
}

func (t *Timer) stop() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}
