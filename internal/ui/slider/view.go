package slider

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/slider/internal/icons"
	"github.com/llehouerou/slider/internal/ui/styles"
)

// maxDecimals bounds the precision of the value readout.
const maxDecimals = 6

// View renders the track across the cached geometry width.
func (m *Model) View() string {
	width := m.geometry.Box().Width
	if width <= 0 {
		return ""
	}

	glyphs := icons.Current()
	thumb := min(m.frame.Thumb, width-1)
	tickCols := m.tickColumns(width)

	cells := make([]string, width)
	for col := range cells {
		switch {
		case tickCols[col]:
			cells[col] = icons.Tick(col < thumb)
		case col < thumb:
			cells[col] = glyphs.Fill
		default:
			cells[col] = glyphs.Empty
		}
	}

	s := styles.T().S()
	t := styles.T()

	if m.disabled {
		cells[thumb] = glyphs.Disabled
		return s.Disabled.Render(strings.Join(cells, ""))
	}

	var b strings.Builder
	if thumb > 0 {
		filled := strings.Join(cells[:thumb], "")
		if m.IsFocused() || m.indicators.Active {
			b.WriteString(styles.ApplyGradient(filled, t.Primary, t.Secondary))
		} else {
			b.WriteString(s.Muted.Render(filled))
		}
	}

	thumbStyle := s.Thumb
	switch {
	case m.indicators.Active:
		thumbStyle = s.ThumbActive
	case m.IsFocused():
		thumbStyle = s.ThumbFocus
	}
	b.WriteString(thumbStyle.Render(icons.Thumb(m.indicators.Active, m.indicators.AtMin)))

	for col := thumb + 1; col < width; col++ {
		if tickCols[col] {
			b.WriteString(s.Tick.Render(cells[col]))
		} else {
			b.WriteString(s.Track.Render(cells[col]))
		}
	}
	return b.String()
}

// tickColumns maps each tick to the column it is drawn on. Ticks closer than
// one cell share a column.
func (m *Model) tickColumns(width int) map[int]bool {
	if len(m.ticks) == 0 {
		return nil
	}
	box := Box{Width: width}
	cols := make(map[int]bool, len(m.ticks))
	for _, tick := range m.ticks {
		fraction, err := m.rng.Fraction(tick)
		if err != nil {
			return nil
		}
		cols[box.Column(fraction)] = true
	}
	return cols
}

// ValueText formats the rendered value with as many decimals as the step has.
func (m *Model) ValueText() string {
	return FormatValue(m.frame.Value, m.rng.Step)
}

// Sign returns the value bubble shown above the thumb while dragging a
// discrete slider, or an empty string.
func (m *Model) Sign() string {
	if !m.discrete || !m.indicators.Active {
		return ""
	}
	return styles.T().S().ThumbActive.Render(m.ValueText())
}

// FormatValue formats v with the precision implied by step.
func FormatValue(v, step float64) string {
	return humanize.FtoaWithDigits(v, stepDecimals(step))
}

func stepDecimals(step float64) int {
	return min(decimals(step), maxDecimals)
}
