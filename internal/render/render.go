// Package render draws a cube as a cross-shaped net for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/nxcube"
)

// Style selects how stickers are drawn.
type Style int

const (
	// StyleBlocks draws each sticker as a colored block.
	StyleBlocks Style = iota
	// StyleLetters draws each sticker as its color letter, uncolored.
	StyleLetters
)

const block = "■"

// ParseStyle accepts "blocks" or "letters".
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blocks", "":
		return StyleBlocks, nil
	case "letters":
		return StyleLetters, nil
	default:
		return 0, fmt.Errorf("render: unknown style %q", s)
	}
}

func (s Style) String() string {
	if s == StyleLetters {
		return "letters"
	}
	return "blocks"
}

// Sticker colors, as 256-color terminal codes.
var palette = [nxcube.NumColors]lipgloss.Color{
	nxcube.Red:    lipgloss.Color("196"),
	nxcube.White:  lipgloss.Color("255"),
	nxcube.Green:  lipgloss.Color("34"),
	nxcube.Yellow: lipgloss.Color("226"),
	nxcube.Blue:   lipgloss.Color("27"),
	nxcube.Orange: lipgloss.Color("208"),
}

// Renderer draws cubes in one style.
type Renderer struct {
	style    Style
	stickers [nxcube.NumColors]lipgloss.Style
}

// New creates a renderer for the given style.
func New(style Style) *Renderer {
	r := &Renderer{style: style}
	for i, c := range palette {
		r.stickers[i] = lipgloss.NewStyle().Foreground(c)
	}
	return r
}

func (r *Renderer) sticker(c nxcube.Color) string {
	if r.style == StyleLetters || !c.Valid() {
		return c.String()
	}
	return r.stickers[c].Render(block)
}

func (r *Renderer) row(c *nxcube.Cube, f nxcube.Face, row int) string {
	var b strings.Builder
	for col := 0; col < c.Size(); col++ {
		b.WriteString(r.sticker(c.At(f, row, col)))
	}
	return b.String()
}

// Render returns the net with Up above Front, Left Front Right Back across
// the middle and Down below. Bands are separated by a blank line.
func (r *Renderer) Render(c *nxcube.Cube) string {
	n := c.Size()
	pad := strings.Repeat(" ", n+1)

	var b strings.Builder
	for row := 0; row < n; row++ {
		b.WriteString(pad + r.row(c, nxcube.FaceUp, row) + "\n")
	}
	b.WriteString("\n")

	middle := []nxcube.Face{nxcube.FaceLeft, nxcube.FaceFront, nxcube.FaceRight, nxcube.FaceBack}
	for row := 0; row < n; row++ {
		parts := make([]string, len(middle))
		for i, f := range middle {
			parts[i] = r.row(c, f, row)
		}
		b.WriteString(strings.Join(parts, " ") + "\n")
	}
	b.WriteString("\n")

	for row := 0; row < n; row++ {
		b.WriteString(pad + r.row(c, nxcube.FaceDown, row) + "\n")
	}
	return b.String()
}
