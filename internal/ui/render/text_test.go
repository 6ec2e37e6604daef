package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Volume", "Volume"},
		{"control characters", "Vol\x1b[2Jume\n", "Vol[2Jume"},
		{"tab kept", "a\tb", "a\tb"},
		{"invalid utf-8", "Bass\xff", "Bass"},
		{"non-breaking space", "Mid\u00a0Range", "Mid Range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			if got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"padded", "Bass", 8, "Bass    "},
		{"exact fit", "Treble", 6, "Treble"},
		{"truncated", "Master volume", 8, "Master …"},
		{"wide characters", "音量調整", 6, "音量… "},
		{"zero width", "Bass", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Label(tt.input, tt.width)
			if got != tt.want {
				t.Errorf("Label(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
			if w := lipgloss.Width(got); w != tt.width {
				t.Errorf("Label(%q, %d) width = %d", tt.input, tt.width, w)
			}
		})
	}
}

func TestAlignRight(t *testing.T) {
	if got := AlignRight("42", 5); got != "   42" {
		t.Errorf("AlignRight = %q, want %q", got, "   42")
	}
	if got := AlignRight("123456", 4); got != "1234" {
		t.Errorf("AlignRight overflow = %q, want %q", got, "1234")
	}
}

func TestOverlay(t *testing.T) {
	tests := []struct {
		name  string
		width int
		col   int
		text  string
		want  string
	}{
		{"centered", 10, 5, "70", "    70    "},
		{"shifted at left edge", 10, 0, "100", "100       "},
		{"shifted at right edge", 10, 9, "100", "       100"},
		{"empty text", 4, 2, "", "    "},
		{"wider than line", 3, 1, "12345", "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlay(tt.width, tt.col, tt.text)
			if got != tt.want {
				t.Errorf("Overlay(%d, %d, %q) = %q, want %q", tt.width, tt.col, tt.text, got, tt.want)
			}
		})
	}
}

func TestOverlay_Styled(t *testing.T) {
	styled := "\x1b[1m70\x1b[0m"
	got := Overlay(6, 3, styled)

	if w := lipgloss.Width(got); w != 6 {
		t.Errorf("width = %d, want 6", w)
	}
	if plain := ansi.Strip(got); plain != "  70  " {
		t.Errorf("plain = %q, want %q", plain, "  70  ")
	}
}

func TestRow(t *testing.T) {
	if got := Row("Bass    ", "==O--", "  40"); got != "Bass     ==O--   40" {
		t.Errorf("Row = %q", got)
	}
}
