// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// BorderWidth is the horizontal space consumed by a standard panel border.
	BorderWidth = 2

	// LabelWidth is the column reserved for slider labels.
	LabelWidth = 16

	// ValueWidth is the column reserved for the value readout right of a track.
	ValueWidth = 8

	// MinTrackWidth is the narrowest usable slider track.
	MinTrackWidth = 5

	// RowGap is the number of blank rows between two sliders.
	RowGap = 1
)
