// internal/app/view.go
package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/slider/internal/ui"
	"github.com/llehouerou/slider/internal/ui/headerbar"
	"github.com/llehouerou/slider/internal/ui/layout"
	"github.com/llehouerou/slider/internal/ui/render"
	"github.com/llehouerou/slider/internal/ui/slider"
	"github.com/llehouerou/slider/internal/ui/styles"
)

const emptyMessage = "No sliders configured"

// View renders the application UI. Rows are placed exactly where
// layout.TrackBox says, since the same boxes drive pointer hit-testing.
func (m Model) View() string {
	if m.Quitting || m.Layout.Width() == 0 {
		return ""
	}

	tabs := make([]headerbar.Tab, len(m.Sliders))
	for i, s := range m.Sliders {
		tabs[i] = headerbar.Tab{Label: s.Label(), Disabled: s.Disabled()}
	}
	header := headerbar.Render(tabs, m.Layout.Focus(), m.Layout.Width())

	footer := m.Help.View(m.HelpKeys)
	if m.Entry.Active() {
		footer = m.Entry.View()
	}

	parts := []string{header, m.renderPanel(), footer}
	if m.ErrorMsg != "" {
		parts = append(parts, styles.T().S().Error.Render(m.ErrorMsg))
	}
	return strings.Join(parts, "\n")
}

func (m Model) renderPanel() string {
	width := m.Layout.Width()
	contentWidth := layout.ContentWidth(width)

	var lines []string
	start, end := m.Layout.Visible()
	for i := start; i < end; i++ {
		lines = append(lines, m.renderSlider(m.Sliders[i], width)...)
	}
	if len(m.Sliders) == 0 {
		lines = append(lines, render.Label(emptyMessage, contentWidth))
	}
	if len(lines) == 0 {
		return ""
	}

	// Fill the screen so the help line stays at the bottom.
	inner := layout.PanelHeight(m.Layout.Rows()) - ui.BorderHeight
	return styles.PanelStyle(true).Height(inner).Render(strings.Join(lines, "\n"))
}

// renderSlider returns the sign line and the track line of one slider.
func (m Model) renderSlider(s *slider.Model, width int) []string {
	st := styles.T().S()
	labelWidth := layout.LabelWidth(width)
	trackWidth := layout.TrackWidth(width)

	labelStyle := st.Base
	switch {
	case s.Disabled():
		labelStyle = st.Subtle
	case s.IsFocused():
		labelStyle = st.Title
	}

	label := labelStyle.Render(render.Label(s.Label(), labelWidth))
	track := fit(s.View(), trackWidth)
	value := st.Value.Render(render.AlignRight(s.ValueText(), ui.ValueWidth))

	signCol := labelWidth + 1 + s.Frame().Thumb
	sign := render.Overlay(layout.ContentWidth(width), signCol, s.Sign())

	return []string{sign, render.Row(label, track, value)}
}

// fit pads or cuts a styled track to width cells. The track is drawn with
// the geometry cached at the last measurement, which lags behind a resize
// until the slider re-measures.
func fit(track string, width int) string {
	track = ansi.Truncate(track, width, "")
	if w := lipgloss.Width(track); w < width {
		track += strings.Repeat(" ", width-w)
	}
	return track
}
