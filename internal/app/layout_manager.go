// internal/app/layout_manager.go
package app

import (
	"github.com/llehouerou/slider/internal/ui/cursor"
	"github.com/llehouerou/slider/internal/ui/layout"
	"github.com/llehouerou/slider/internal/ui/slider"
)

// LayoutManager owns the window size and the focus cursor of the slider
// stack. It is shared by pointer between the model and each slider's
// Measurer, so a slider always measures against the current layout.
type LayoutManager struct {
	size   layout.Size
	cursor cursor.Cursor
	count  int
}

// NewLayoutManager creates a layout for count sliders.
func NewLayoutManager(count int) *LayoutManager {
	return &LayoutManager{cursor: cursor.New(), count: count}
}

// --- Dimensions ---

// SetSize updates the window dimensions and keeps the focused slider visible.
func (l *LayoutManager) SetSize(width, height int) {
	l.size = layout.Size{Width: width, Height: height}
	l.cursor.EnsureVisible(l.count, l.Rows())
}

// Width returns the window width.
func (l *LayoutManager) Width() int {
	return l.size.Width
}

// Height returns the window height.
func (l *LayoutManager) Height() int {
	return l.size.Height
}

// IsNarrowMode returns true if the terminal width is below the narrow threshold.
// In narrow mode, labels are shortened.
func (l *LayoutManager) IsNarrowMode() bool {
	return layout.IsNarrowMode(l.size.Width)
}

// Rows returns how many sliders fit on screen.
func (l *LayoutManager) Rows() int {
	return layout.VisibleRows(l.size.Height)
}

// --- Focus ---

// Focus returns the index of the focused slider.
func (l *LayoutManager) Focus() int {
	return l.cursor.Pos()
}

// Cycle moves focus by delta sliders, wrapping around.
func (l *LayoutManager) Cycle(delta int) {
	l.cursor.Cycle(delta, l.count, l.Rows())
}

// Jump focuses slider i.
func (l *LayoutManager) Jump(i int) {
	l.cursor.Jump(i, l.count, l.Rows())
}

// Visible returns the range [start, end) of sliders on screen.
func (l *LayoutManager) Visible() (start, end int) {
	return l.cursor.VisibleRange(l.count, l.Rows())
}

// --- Geometry ---

// Slot returns the on-screen slot of slider i, or -1 when it is scrolled out.
func (l *LayoutManager) Slot(i int) int {
	return l.cursor.Slot(i, l.count, l.Rows())
}

// TrackBox returns the on-screen track box of slider i.
func (l *LayoutManager) TrackBox(i int) slider.Box {
	return layout.TrackBox(l.size, l.Slot(i))
}

// Measurer returns the Measurer of slider i.
func (l *LayoutManager) Measurer(i int) slider.Measurer {
	return func() slider.Box { return l.TrackBox(i) }
}
