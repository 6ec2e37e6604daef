// internal/ui/headerbar/headerbar.go
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/slider/internal/icons"
	"github.com/llehouerou/slider/internal/ui/render"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// minWidth is the narrowest terminal the header is drawn on.
const minWidth = 20

// Styles
var (
	activeNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	inactiveNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250"))

	disabledNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Faint(true)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Tab is one slider shown in the header.
type Tab struct {
	Label    string
	Disabled bool
}

// Render returns the header bar string for the given width: one tab per
// slider, the active one highlighted and marked with the volume icon,
// centered and cut to width.
func Render(tabs []Tab, active, width int) string {
	if width < minWidth || len(tabs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(tabs))
	separator := separatorStyle.Render(" │ ")

	for i, t := range tabs {
		var style lipgloss.Style
		switch {
		case i == active:
			style = activeNameStyle
		case t.Disabled:
			style = disabledNameStyle
		default:
			style = inactiveNameStyle
		}
		label := render.Sanitize(t.Label)
		if i == active {
			label = icons.FormatLabel(label)
		}
		parts = append(parts, style.Render(label))
	}

	content := ansi.Truncate(strings.Join(parts, separator), width, "…")

	// Center the content
	contentWidth := lipgloss.Width(content)
	if contentWidth < width {
		padLeft := (width - contentWidth) / 2
		content = strings.Repeat(" ", padLeft) + content
	}

	return content
}
