// Package render provides text layout helpers for the mixer rows.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Sanitize removes control characters (except tab) and invalid UTF-8 bytes.
// Labels come from a user-edited config file and must not break the row.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
		case r != '\t' && unicode.IsControl(r):
		case r == '\u00a0':
			b.WriteByte(' ')
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// Label fits a plain label into exactly width cells: sanitized, truncated
// with a single-cell ellipsis, then padded on the right.
func Label(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(Sanitize(s), width, "…"), width)
}

// AlignRight pads a plain string on the left to width cells.
func AlignRight(s string, width int) string {
	return runewidth.FillLeft(runewidth.Truncate(s, width, ""), width)
}

// Overlay returns a blank line of width cells with text (which may be
// styled) centered on column col. The text is shifted to stay inside the
// line, and cut when it is wider than the line.
func Overlay(width, col int, text string) string {
	if width <= 0 {
		return ""
	}
	text = ansi.Truncate(text, width, "")
	w := lipgloss.Width(text)
	if w == 0 {
		return strings.Repeat(" ", width)
	}
	start := min(max(col-w/2, 0), width-w)
	return strings.Repeat(" ", start) + text + strings.Repeat(" ", width-start-w)
}

// Row joins the cells of a slider row with single spaces.
func Row(cells ...string) string {
	return strings.Join(cells, " ")
}
