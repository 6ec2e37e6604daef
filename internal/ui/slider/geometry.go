package slider

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/slider/internal/sched"
)

// DefaultRefreshInterval is the quiet period after the last read of the
// geometry before the tracker re-measures it in the background.
const DefaultRefreshInterval = 5 * time.Second

// Box is the on-screen area of a slider track, in terminal cells.
type Box struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Contains reports whether the cell (x, y) lies inside the box.
func (b Box) Contains(x, y int) bool {
	return x >= b.Left && x < b.Left+b.Width &&
		y >= b.Top && y < b.Top+b.Height
}

// Fraction maps column x to a position along the track: 0 on the first cell
// and 1 on the last one. Columns outside the box give fractions outside
// [0, 1]. It reports false when the box has not been measured.
func (b Box) Fraction(x int) (float64, bool) {
	switch {
	case b.Width <= 0:
		return 0, false
	case b.Width == 1:
		return 0, true
	}
	return float64(x-b.Left) / float64(b.Width-1), true
}

// Column is the inverse of Fraction for the thumb: the cell index, relative
// to Left, closest to fraction. Fractions are clamped to the track.
func (b Box) Column(fraction float64) int {
	if b.Width <= 1 {
		return 0
	}
	f := min(max(fraction, 0), 1)
	return int(f*float64(b.Width-1) + 0.5)
}

// Measurer reads the live layout of a track.
type Measurer func() Box

// Tracker caches the track geometry.
//
// Refresh is the only writer. Get returns the cached box immediately and
// pushes back a background refresh, so the cache heals after layout drift
// without measuring on every event.
type Tracker struct {
	measure  Measurer
	box      Box
	interval time.Duration
	timer    *sched.Timer
}

// NewTracker creates a tracker. A nil measure leaves the box empty.
func NewTracker(measure Measurer, interval time.Duration) *Tracker {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Tracker{
		measure:  measure,
		interval: interval,
		timer:    sched.NewTimer(),
	}
}

// Refresh re-measures the track and replaces the cached box.
func (t *Tracker) Refresh() {
	if t.measure != nil {
		t.box = t.measure()
	}
}

// Box returns the cached box without scheduling anything.
func (t *Tracker) Box() Box {
	return t.box
}

// Get returns the cached box and restarts the background refresh timer.
func (t *Tracker) Get() (Box, tea.Cmd) {
	return t.box, t.timer.Reset(t.interval)
}

// Handle refreshes the box when msg is the background refresh firing.
func (t *Tracker) Handle(msg tea.Msg) bool {
	if !t.timer.Fired(msg) {
		return false
	}
	t.Refresh()
	return true
}

// RefreshPending reports whether a background refresh is scheduled.
func (t *Tracker) RefreshPending() bool {
	return t.timer.Pending()
}

// Stop cancels the background refresh.
func (t *Tracker) Stop() {
	t.timer.Cancel()
}
