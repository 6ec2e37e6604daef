package slider

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/slider/internal/ui/testutil"
)

func TestBox_Contains(t *testing.T) {
	b := Box{Left: 2, Top: 1, Width: 10, Height: 1}

	tests := []struct {
		x, y int
		want bool
	}{
		{2, 1, true},
		{11, 1, true},
		{12, 1, false},
		{1, 1, false},
		{5, 0, false},
		{5, 2, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.Contains(tt.x, tt.y), "(%d, %d)", tt.x, tt.y)
	}

	assert.False(t, Box{}.Contains(0, 0))
}

func TestBox_Fraction(t *testing.T) {
	b := Box{Left: 0, Width: 101, Height: 1}

	f, ok := b.Fraction(24)
	require.True(t, ok)
	assert.InDelta(t, 0.24, f, 1e-12)

	f, ok = b.Fraction(-10)
	require.True(t, ok)
	assert.InDelta(t, -0.1, f, 1e-12)

	f, ok = b.Fraction(150)
	require.True(t, ok)
	assert.InDelta(t, 1.5, f, 1e-12)

	f, ok = Box{Left: 5, Width: 11}.Fraction(10)
	require.True(t, ok)
	assert.InDelta(t, 0.5, f, 1e-12)

	f, ok = Box{Left: 3, Width: 1}.Fraction(3)
	require.True(t, ok)
	assert.Zero(t, f)

	_, ok = Box{}.Fraction(3)
	assert.False(t, ok)
}

func TestBox_Column(t *testing.T) {
	b := Box{Width: 101}

	assert.Equal(t, 0, b.Column(0))
	assert.Equal(t, 24, b.Column(0.24))
	assert.Equal(t, 100, b.Column(1))
	assert.Equal(t, 0, b.Column(-1))
	assert.Equal(t, 100, b.Column(2))
	assert.Equal(t, 0, Box{Width: 1}.Column(0.7))

	// Column and Fraction round-trip on every cell.
	for col := range 101 {
		f, _ := b.Fraction(col)
		assert.Equal(t, col, b.Column(f))
	}
}

func TestTracker_GetUsesCache(t *testing.T) {
	calls := 0
	box := Box{Width: 20, Height: 1}
	tr := NewTracker(func() Box { calls++; return box }, time.Hour)
	defer tr.Stop()

	tr.Refresh()
	require.Equal(t, 1, calls)

	box.Width = 40
	got, cmd := tr.Get()

	assert.Equal(t, 20, got.Width, "Get returns the cached box")
	assert.Equal(t, 1, calls, "Get does not measure")
	assert.NotNil(t, cmd)
	assert.True(t, tr.RefreshPending())
}

func TestTracker_BackgroundRefresh(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		box := Box{Width: 20, Height: 1}
		tr := NewTracker(func() Box { return box }, time.Millisecond)
		tr.Refresh()

		_, cmd := tr.Get()
		box.Width = 40
		msg := testutil.ExecuteCmd(cmd)

		require.True(t, tr.Handle(msg))
		assert.Equal(t, 40, tr.Box().Width)
		assert.False(t, tr.RefreshPending())
		assert.False(t, tr.Handle(msg), "a fire is consumed once")
	})
}

func TestTracker_GetPushesRefreshBack(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		tr := NewTracker(func() Box { return Box{Width: 1} }, 20*time.Millisecond)

		_, first := tr.Get()
		_, second := tr.Get()

		assert.Nil(t, testutil.ExecuteCmd(first), "superseded timer is released")
		assert.True(t, tr.Handle(testutil.ExecuteCmd(second)))
	})
}

func TestTracker_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		tr := NewTracker(func() Box { return Box{Width: 1} }, time.Hour)

		_, cmd := tr.Get()
		tr.Stop()

		assert.Nil(t, testutil.ExecuteCmd(cmd))
		assert.False(t, tr.RefreshPending())
	})
}

func TestTracker_NilMeasurer(t *testing.T) {
	tr := NewTracker(nil, 0)
	tr.Refresh()
	assert.Equal(t, Box{}, tr.Box())
	assert.Equal(t, DefaultRefreshInterval, tr.interval)
}
