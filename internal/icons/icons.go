package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the glyphs used to draw a slider track for the current style.
type Icons struct {
	Fill        string // track cell left of the thumb
	Empty       string // track cell right of the thumb
	Tick        string // discrete step marker on the empty track
	TickFilled  string // discrete step marker on the filled track
	Thumb       string
	ThumbActive string // while a pointer gesture is in progress
	ThumbMin    string // value sits at the range minimum
	Disabled    string
	Volume      string
}

var (
	nerdIcons = Icons{
		Fill:        "━",
		Empty:       "─",
		Tick:        "┼",
		TickFilled:  "╋",
		Thumb:       "", // nf-fa-circle
		ThumbActive: "", // nf-fa-dot_circle_o
		ThumbMin:    "", // nf-fa-circle_o
		Disabled:    "", // nf-fa-ban
		Volume:      "", // nf-fa-volume_up
	}

	unicodeIcons = Icons{
		Fill:        "━",
		Empty:       "─",
		Tick:        "┼",
		TickFilled:  "╋",
		Thumb:       "●",
		ThumbActive: "◉",
		ThumbMin:    "○",
		Disabled:    "⊘",
		Volume:      "🔊",
	}

	noneIcons = Icons{
		Fill:        "=",
		Empty:       "-",
		Tick:        "+",
		TickFilled:  "#",
		Thumb:       "O",
		ThumbActive: "@",
		ThumbMin:    "o",
		Disabled:    "x",
		Volume:      "",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// Current returns the active glyph set.
func Current() Icons {
	return current
}

// Thumb returns the thumb glyph for the given slider state.
// Active wins over the at-minimum marker, as a dragged thumb is always filled.
func Thumb(active, atMin bool) string {
	switch {
	case active:
		return current.ThumbActive
	case atMin:
		return current.ThumbMin
	default:
		return current.Thumb
	}
}

// Tick returns the tick marker glyph for a filled or empty track cell.
func Tick(filled bool) string {
	if filled {
		return current.TickFilled
	}
	return current.Tick
}

// FormatLabel prefixes a label with the volume icon when one is available.
func FormatLabel(label string) string {
	if current.Volume == "" {
		return label
	}
	return current.Volume + " " + label
}
