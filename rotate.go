package nxcube

// line is an ordered run of sticker indices on one face.
type line struct {
	face  Face
	cells []int
}

// rowLine returns row r of face f, reversed if asked.
func (c *Cube) rowLine(f Face, r int, reversed bool) line {
	cells := make([]int, c.n)
	for k := range cells {
		col := k
		if reversed {
			col = c.n - 1 - k
		}
		cells[k] = r*c.n + col
	}
	return line{face: f, cells: cells}
}

// colLine returns column col of face f, reversed if asked.
func (c *Cube) colLine(f Face, col int, reversed bool) line {
	cells := make([]int, c.n)
	for k := range cells {
		r := k
		if reversed {
			r = c.n - 1 - k
		}
		cells[k] = r*c.n + col
	}
	return line{face: f, cells: cells}
}

func (c *Cube) edge(e edgeLine) line {
	index := 0
	if e.last {
		index = c.n - 1
	}
	if e.kind == lineRow {
		return c.rowLine(e.face, index, e.reversed)
	}
	return c.colLine(e.face, index, e.reversed)
}

// rotateFace turns the stickers of face f a quarter turn. Neighbouring
// faces are left to rotateEdges.
func (c *Cube) rotateFace(f Face, dir Direction) {
	n := c.n
	grid := c.faces[f]
	snapshot := make([]Color, len(grid))
	copy(snapshot, grid)

	for r := 0; r < n; r++ {
		for col := 0; col < n; col++ {
			if dir == Clockwise {
				grid[r*n+col] = snapshot[(n-1-col)*n+r]
			} else {
				grid[r*n+col] = snapshot[col*n+(n-1-r)]
			}
		}
	}
}

// rotateEdges moves the neighbour stickers bordering face f one side
// around it: clockwise carries up to right, right to down, down to left
// and left to up.
func (c *Cube) rotateEdges(f Face, dir Direction) {
	var lines [4]line
	for side, e := range adjacency[f] {
		lines[side] = c.edge(e)
	}
	c.cycleLines(lines, dir == Clockwise)
}

// rotateSlice turns inner layer `layer` (1..N-2). Row slices carry Front
// to Right to Back to Left; column slices carry Front to Up to Back to Down.
// The Back face is seen from behind, so its matching column is mirrored
// and runs bottom to top.
func (c *Cube) rotateSlice(axis SliceAxis, layer int, dir Direction) {
	var lines [4]line
	if axis == RowSlice {
		lines = [4]line{
			c.rowLine(FaceFront, layer, false),
			c.rowLine(FaceRight, layer, false),
			c.rowLine(FaceBack, layer, false),
			c.rowLine(FaceLeft, layer, false),
		}
	} else {
		lines = [4]line{
			c.colLine(FaceFront, layer, false),
			c.colLine(FaceUp, layer, false),
			c.colLine(FaceBack, c.n-1-layer, true),
			c.colLine(FaceDown, layer, false),
		}
	}
	c.cycleLines(lines, dir == Clockwise)
}

// cycleLines snapshots four equally long lines and then shifts them one
// step: forward writes line i from line i-1, otherwise from line i+1.
func (c *Cube) cycleLines(lines [4]line, forward bool) {
	var snapshot [4][]Color
	for i, l := range lines {
		snapshot[i] = make([]Color, len(l.cells))
		for k, idx := range l.cells {
			snapshot[i][k] = c.faces[l.face][idx]
		}
	}

	for i, l := range lines {
		src := (i + 1) % 4
		if forward {
			src = (i + 3) % 4
		}
		for k, idx := range l.cells {
			c.faces[l.face][idx] = snapshot[src][k]
		}
	}
}
