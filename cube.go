package nxcube

import (
	"fmt"
	"strings"
)

// Cube is the sticker state of an N×N×N cube.
// Each face is stored row-major, so sticker (row, col) lives at row*N+col:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// A Cube is not safe for concurrent mutation. Independent cubes share
// nothing and may be used from different goroutines; use Clone to fork one.
type Cube struct {
	n     int
	faces [NumFaces][]Color
}

// New creates a solved cube with the given edge length.
func New(n int) (*Cube, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDimension, n)
	}
	c := &Cube{n: n}
	for f := range c.faces {
		c.faces[f] = make([]Color, n*n)
	}
	c.Reset()
	return c, nil
}

// MustNew is like New but panics on an invalid edge length.
func MustNew(n int) *Cube {
	c, err := New(n)
	if err != nil {
		panic(err)
	}
	return c
}

// Size returns the edge length N.
func (c *Cube) Size() int {
	return c.n
}

// ActionCount returns the number of legal actions for this cube.
func (c *Cube) ActionCount() int {
	return ActionCount(c.n)
}

// Reset returns every face to its solved color.
func (c *Cube) Reset() {
	for f := range c.faces {
		color := Face(f).SolvedColor()
		for i := range c.faces[f] {
			c.faces[f][i] = color
		}
	}
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := &Cube{n: c.n}
	for f := range c.faces {
		clone.faces[f] = make([]Color, len(c.faces[f]))
		copy(clone.faces[f], c.faces[f])
	}
	return clone
}

// Equal reports whether both cubes have the same size and every sticker matches.
func (c *Cube) Equal(other *Cube) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.n != other.n {
		return false
	}
	for f := range c.faces {
		a, b := c.faces[f], other.faces[f]
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
	}
	return true
}

// At returns the sticker at (row, col) of face f. It panics if the
// position is outside the cube, like a slice index would.
func (c *Cube) At(f Face, row, col int) Color {
	if !c.contains(Position{Face: f, Row: row, Col: col}) {
		panic(fmt.Sprintf("nxcube: position %s outside %dx%d cube", Position{f, row, col}, c.n, c.n))
	}
	return c.faces[f][row*c.n+col]
}

// Face returns a copy of face f as N rows of N stickers.
func (c *Cube) Face(f Face) [][]Color {
	grid := make([][]Color, c.n)
	for r := range grid {
		grid[r] = make([]Color, c.n)
		copy(grid[r], c.faces[f][r*c.n:(r+1)*c.n])
	}
	return grid
}

// IsSolved returns true if every face shows a single color.
func (c *Cube) IsSolved() bool {
	for f := range c.faces {
		first := c.faces[f][0]
		for _, color := range c.faces[f] {
			if color != first {
				return false
			}
		}
	}
	return true
}

// ColorCounts returns how many stickers of each color the cube carries.
// Rotations never change it.
func (c *Cube) ColorCounts() [NumColors]int {
	var counts [NumColors]int
	for f := range c.faces {
		for _, color := range c.faces[f] {
			if color.Valid() {
				counts[color]++
			}
		}
	}
	return counts
}

// Facelets encodes the cube as 6·N² color letters, face by face in
// identifier order, each face row-major.
func (c *Cube) Facelets() string {
	var b strings.Builder
	b.Grow(NumFaces * c.n * c.n)
	for f := range c.faces {
		for _, color := range c.faces[f] {
			b.WriteString(color.String())
		}
	}
	return b.String()
}

// FromFacelets rebuilds a cube from the encoding produced by Facelets.
func FromFacelets(s string) (*Cube, error) {
	n := 2
	for NumFaces*n*n < len(s) {
		n++
	}
	if NumFaces*n*n != len(s) {
		return nil, fmt.Errorf("%w: %d facelets do not form a cube", ErrInvalidDimension, len(s))
	}
	c, err := New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(s); i++ {
		color, err := ParseColor(s[i : i+1])
		if err != nil {
			return nil, fmt.Errorf("facelet %d: %w", i, err)
		}
		c.faces[i/(n*n)][i%(n*n)] = color
	}
	return c, nil
}

// String returns a text net of the cube: U on top, L F R B across, D below.
func (c *Cube) String() string {
	var b strings.Builder
	pad := strings.Repeat("  ", c.n)

	writeRow := func(f Face, row int) {
		for col := 0; col < c.n; col++ {
			b.WriteString(c.faces[f][row*c.n+col].String())
			b.WriteByte(' ')
		}
	}

	for row := 0; row < c.n; row++ {
		b.WriteString(pad)
		writeRow(FaceUp, row)
		b.WriteByte('\n')
	}
	for row := 0; row < c.n; row++ {
		for _, f := range []Face{FaceLeft, FaceFront, FaceRight, FaceBack} {
			writeRow(f, row)
		}
		b.WriteByte('\n')
	}
	for row := 0; row < c.n; row++ {
		b.WriteString(pad)
		writeRow(FaceDown, row)
		b.WriteByte('\n')
	}
	return b.String()
}
