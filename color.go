package nxcube

import (
	"strconv"
	"strings"
)

// Color identifies a sticker color. On a solved cube face i carries Color(i).
type Color uint8

const (
	Red    Color = 0 // Front face when solved
	White  Color = 1 // Up face when solved
	Green  Color = 2 // Left face when solved
	Yellow Color = 3 // Down face when solved
	Blue   Color = 4 // Right face when solved
	Orange Color = 5 // Back face when solved
)

// NumColors is the number of distinct sticker colors.
const NumColors = 6

// Colors lists every color in identifier order.
var Colors = [NumColors]Color{Red, White, Green, Yellow, Blue, Orange}

var colorNames = [NumColors]string{"red", "white", "green", "yellow", "blue", "orange"}

// Valid reports whether c is one of the six cube colors.
func (c Color) Valid() bool {
	return c < NumColors
}

// String returns the single-letter abbreviation used in nets and facelet strings.
func (c Color) String() string {
	switch c {
	case Red:
		return "R"
	case White:
		return "W"
	case Green:
		return "G"
	case Yellow:
		return "Y"
	case Blue:
		return "B"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Name returns the lower-case color name.
func (c Color) Name() string {
	if !c.Valid() {
		return "unknown"
	}
	return colorNames[c]
}

// ParseColor accepts a color name ("red"), its first letter ("r") or its
// numeric identifier ("0"), case-insensitively.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range colorNames {
		if s == name || s == name[:1] {
			return Color(i), nil
		}
	}
	if id, err := strconv.Atoi(s); err == nil && id >= 0 && id < NumColors {
		return Color(id), nil
	}
	return 0, ErrUnrecognizedColor
}
