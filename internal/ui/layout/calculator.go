// Package layout provides pure functions for the mixer's screen geometry.
//
// The same functions drive rendering and each slider's Measurer, so what is
// drawn and what a pointer hits never disagree.
package layout

import (
	"github.com/llehouerou/slider/internal/ui"
	"github.com/llehouerou/slider/internal/ui/slider"
)

// NarrowThreshold is the terminal width below which labels are shortened.
const NarrowThreshold = 48

// NarrowLabelWidth is the label column in narrow mode.
const NarrowLabelWidth = 8

const (
	// HeaderHeight is the title line above the panel.
	HeaderHeight = 1

	// HelpHeight is the key help line below the panel.
	HelpHeight = 1

	// RowHeight is one slider: the sign line followed by the track line.
	RowHeight = ui.RowGap + 1
)

// Size is the terminal size.
type Size struct {
	Width  int
	Height int
}

// IsNarrowMode returns true if the terminal width is below the narrow threshold.
func IsNarrowMode(width int) bool {
	return width < NarrowThreshold
}

// LabelWidth returns the label column width for a terminal width.
func LabelWidth(windowWidth int) int {
	if IsNarrowMode(windowWidth) {
		return NarrowLabelWidth
	}
	return ui.LabelWidth
}

// ContentWidth is the width inside the panel border.
func ContentWidth(windowWidth int) int {
	return max(windowWidth-ui.BorderWidth, 0)
}

// TrackWidth is the number of cells of every track: what remains of the
// content width after the label, the value readout and a space on each side
// of the track.
func TrackWidth(windowWidth int) int {
	w := ContentWidth(windowWidth) - LabelWidth(windowWidth) - ui.ValueWidth - 2
	return max(w, ui.MinTrackWidth)
}

// TrackLeft is the 0-based column of the first track cell.
func TrackLeft(windowWidth int) int {
	return ui.BorderWidth/2 + LabelWidth(windowWidth) + 1
}

// VisibleRows returns how many sliders fit between the header and the help
// line.
func VisibleRows(windowHeight int) int {
	inner := windowHeight - HeaderHeight - HelpHeight - ui.BorderHeight
	return max(inner/RowHeight, 0)
}

// PanelHeight returns the panel height, border included, for rows sliders.
func PanelHeight(rows int) int {
	return rows*RowHeight + ui.BorderHeight
}

// TrackRow is the 0-based screen row of the track in the given visible slot.
func TrackRow(slot int) int {
	return HeaderHeight + ui.BorderHeight/2 + slot*RowHeight + ui.RowGap
}

// TrackBox is the on-screen box of the track in the given visible slot. Slots
// that do not fit get an empty box, which never receives pointer input.
func TrackBox(size Size, slot int) slider.Box {
	if size.Width <= 0 || slot < 0 || slot >= VisibleRows(size.Height) {
		return slider.Box{}
	}
	return slider.Box{
		Left:   TrackLeft(size.Width),
		Top:    TrackRow(slot),
		Width:  TrackWidth(size.Width),
		Height: 1,
	}
}
