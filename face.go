package nxcube

// Face identifies one of the six sticker grids.
//
// Every grid is stored as seen from outside the cube, laid out on the
// cross-shaped net below, so row 0 is the edge nearest the top of the net:
//
//	      U
//	   L  F  R  B
//	      D
type Face int

const (
	FaceFront Face = 0 // F (Red)
	FaceUp    Face = 1 // U (White)
	FaceLeft  Face = 2 // L (Green)
	FaceDown  Face = 3 // D (Yellow)
	FaceRight Face = 4 // R (Blue)
	FaceBack  Face = 5 // B (Orange)
)

// NumFaces is the number of faces on a cube.
const NumFaces = 6

// Faces lists every face in identifier order.
var Faces = [NumFaces]Face{FaceFront, FaceUp, FaceLeft, FaceDown, FaceRight, FaceBack}

// Valid reports whether f is a face identifier.
func (f Face) Valid() bool {
	return f >= 0 && f < NumFaces
}

func (f Face) String() string {
	switch f {
	case FaceFront:
		return "F"
	case FaceUp:
		return "U"
	case FaceLeft:
		return "L"
	case FaceDown:
		return "D"
	case FaceRight:
		return "R"
	case FaceBack:
		return "B"
	default:
		return "?"
	}
}

// SolvedColor returns the color a face carries on a solved cube.
func (f Face) SolvedColor() Color {
	return Color(f)
}

// ParseFace converts a face letter (F, U, L, D, R, B) to a Face.
func ParseFace(letter byte) (Face, bool) {
	switch letter {
	case 'F':
		return FaceFront, true
	case 'U':
		return FaceUp, true
	case 'L':
		return FaceLeft, true
	case 'D':
		return FaceDown, true
	case 'R':
		return FaceRight, true
	case 'B':
		return FaceBack, true
	default:
		return 0, false
	}
}

// Side names an edge of a face, in clockwise order as seen from outside.
type Side int

const (
	SideUp    Side = 0
	SideRight Side = 1
	SideDown  Side = 2
	SideLeft  Side = 3
)

func (s Side) String() string {
	switch s {
	case SideUp:
		return "up"
	case SideRight:
		return "right"
	case SideDown:
		return "down"
	case SideLeft:
		return "left"
	default:
		return "?"
	}
}

type lineKind uint8

const (
	lineRow lineKind = iota
	lineCol
)

// edgeLine locates the neighbour stickers touching one side of a face.
// last selects row/column N-1 instead of 0. reversed is set when the line's
// natural index order runs counter-clockwise around the face being turned.
type edgeLine struct {
	face     Face
	kind     lineKind
	last     bool
	reversed bool
}

// adjacency holds, for each face, the neighbour lines on its up, right, down
// and left sides. Read with the reversal flags applied, all four lines run
// clockwise around the face, so a quarter turn is a plain shift of the lines.
var adjacency = [NumFaces][4]edgeLine{
	FaceFront: {
		{face: FaceUp, kind: lineRow, last: true},
		{face: FaceRight, kind: lineCol},
		{face: FaceDown, kind: lineRow, reversed: true},
		{face: FaceLeft, kind: lineCol, last: true, reversed: true},
	},
	FaceUp: {
		{face: FaceBack, kind: lineRow, reversed: true},
		{face: FaceRight, kind: lineRow, reversed: true},
		{face: FaceFront, kind: lineRow, reversed: true},
		{face: FaceLeft, kind: lineRow, reversed: true},
	},
	FaceLeft: {
		{face: FaceUp, kind: lineCol},
		{face: FaceFront, kind: lineCol},
		{face: FaceDown, kind: lineCol},
		{face: FaceBack, kind: lineCol, last: true, reversed: true},
	},
	FaceDown: {
		{face: FaceFront, kind: lineRow, last: true},
		{face: FaceRight, kind: lineRow, last: true},
		{face: FaceBack, kind: lineRow, last: true},
		{face: FaceLeft, kind: lineRow, last: true},
	},
	FaceRight: {
		{face: FaceUp, kind: lineCol, last: true, reversed: true},
		{face: FaceBack, kind: lineCol},
		{face: FaceDown, kind: lineCol, last: true, reversed: true},
		{face: FaceFront, kind: lineCol, last: true, reversed: true},
	},
	FaceBack: {
		{face: FaceUp, kind: lineRow, reversed: true},
		{face: FaceLeft, kind: lineCol},
		{face: FaceDown, kind: lineRow, last: true},
		{face: FaceRight, kind: lineCol, last: true, reversed: true},
	},
}

// Neighbor returns the face touching side s of face f.
func Neighbor(f Face, s Side) Face {
	return adjacency[f][s].face
}
