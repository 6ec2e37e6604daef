// Package cursor tracks which row of a scrollable stack has focus.
package cursor

// Cursor holds the focused row and the first visible row of a stack whose
// length and viewport height are passed to each method, since both change
// with configuration and terminal size.
type Cursor struct {
	pos    int // focused row (0-indexed)
	offset int // first visible row
}

// New creates a cursor on the first row.
func New() Cursor {
	return Cursor{}
}

// Pos returns the focused row.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the first visible row.
func (c Cursor) Offset() int {
	return c.offset
}

// Cycle moves focus by delta rows, wrapping around both ends, and scrolls
// so the focused row stays visible. No-op on an empty stack.
func (c *Cursor) Cycle(delta, n, height int) {
	if n == 0 {
		return
	}
	c.pos = ((c.pos+delta)%n + n) % n
	c.EnsureVisible(n, height)
}

// Jump focuses row pos, clamped to the stack.
func (c *Cursor) Jump(pos, n, height int) {
	if n == 0 {
		return
	}
	c.pos = clamp(pos, n-1)
	c.EnsureVisible(n, height)
}

// EnsureVisible adjusts the offset so the focused row is inside the viewport,
// and so the viewport is never scrolled past the last row.
func (c *Cursor) EnsureVisible(n, height int) {
	if height <= 0 || n == 0 {
		return
	}
	if c.pos < c.offset {
		c.offset = c.pos
	}
	if c.pos >= c.offset+height {
		c.offset = c.pos - height + 1
	}
	c.offset = clamp(c.offset, max(n-height, 0))
}

// VisibleRange returns the visible rows [start, end).
func (c Cursor) VisibleRange(n, height int) (start, end int) {
	if n == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, n)
}

// Slot returns the viewport slot of row i, or -1 when i is scrolled out.
func (c Cursor) Slot(i, n, height int) int {
	start, end := c.VisibleRange(n, height)
	if i < start || i >= end {
		return -1
	}
	return i - start
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
