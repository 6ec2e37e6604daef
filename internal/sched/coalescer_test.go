package sched

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoalescer_BurstYieldsOneFlushWithLastPayload(t *testing.T) {
	c := NewCoalescer[int]()

	var cmds []tea.Cmd
	for i := 1; i <= 5; i++ {
		if cmd := c.Schedule(i); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	require.Len(t, cmds, 1, "only the first schedule opens a window")

	v, ok := c.Take(cmds[0]())
	require.True(t, ok)
	assert.Equal(t, 5, v)
	assert.False(t, c.Pending())
}

func TestCoalescer_NewWindowAfterTake(t *testing.T) {
	c := NewCoalescer[string]()
	first := c.Schedule("a")
	flush := first()
	_, ok := c.Take(flush)
	require.True(t, ok)

	second := c.Schedule("b")
	require.NotNil(t, second)

	_, ok = c.Take(flush)
	assert.False(t, ok, "old flush must not consume the new window")

	v, ok := c.Take(second())
	require.True(t, ok)
	assert.Equal(t, "b", v)
}

func TestCoalescer_CancelMakesFlushStale(t *testing.T) {
	c := NewCoalescer[float64]()
	cmd := c.Schedule(42)
	c.Cancel()

	_, ok := c.Take(cmd())
	assert.False(t, ok)
	assert.False(t, c.Pending())
}

func TestCoalescer_IgnoresForeignMessages(t *testing.T) {
	a := NewCoalescer[int]()
	b := NewCoalescer[int]()
	cmdA := a.Schedule(1)
	b.Schedule(2)

	_, ok := b.Take(cmdA())
	assert.False(t, ok)
	_, ok = b.Take(tea.KeyMsg{})
	assert.False(t, ok)
	assert.True(t, b.Pending())
}
