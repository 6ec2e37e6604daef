package sched

import tea "github.com/charmbracelet/bubbletea"

// FlushMsg asks the owner of a Coalescer to apply its pending payload.
type FlushMsg struct {
	ID  int
	Seq int
}

// Coalescer merges bursts of work into a single deferred execution.
//
// Schedule stores the latest payload and only returns a command when nothing
// is pending yet, so any number of calls before the flush message comes back
// through Update result in one Take carrying the last payload.
type Coalescer[T any] struct {
	id      int
	seq     int
	pending bool
	payload T
}

// NewCoalescer creates an empty coalescer.
func NewCoalescer[T any]() *Coalescer[T] {
	return &Coalescer[T]{id: nextID()}
}

// Schedule replaces the pending payload with v. It returns the flush command
// when this call opened a new window, nil when one is already open.
func (c *Coalescer[T]) Schedule(v T) tea.Cmd {
	c.payload = v
	if c.pending {
		return nil
	}
	c.pending = true
	id, seq := c.id, c.seq
	return func() tea.Msg {
		return FlushMsg{ID: id, Seq: seq}
	}
}

// Take returns the pending payload when msg is this coalescer's live flush.
func (c *Coalescer[T]) Take(msg tea.Msg) (T, bool) {
	var zero T
	flush, ok := msg.(FlushMsg)
	if !ok || flush.ID != c.id || flush.Seq != c.seq || !c.pending {
		return zero, false
	}
	v := c.payload
	c.reset()
	return v, true
}

// Cancel drops the pending payload. A flush already in flight becomes stale.
func (c *Coalescer[T]) Cancel() {
	if c.pending {
		c.reset()
	}
}

// Pending reports whether a flush is outstanding.
func (c *Coalescer[T]) Pending() bool {
	return c.pending
}

func (c *Coalescer[T]) reset() {
	var zero T
	c.pending = false
	c.payload = zero
	c.seq++
}
