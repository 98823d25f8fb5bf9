package nxcube

import "fmt"

// Action selects one quarter turn. Actions 0..11 turn an outer face:
// the face is Action/2 and the direction Action%2. Cubes with N > 2 add
// 4·(N-2) inner-slice actions after those; see DecodeAction.
type Action int

// NumFaceActions is the number of outer-face actions on every cube.
const NumFaceActions = 12

// ActionCount returns the number of legal actions for edge length n:
// 12 face turns plus two directions for each of the N-2 inner rows and
// N-2 inner columns.
func ActionCount(n int) int {
	if n < 2 {
		return 0
	}
	return NumFaceActions + 4*(n-2)
}

// Inverse returns the action that undoes a. Both directions of a turn
// always differ only in the lowest bit.
func (a Action) Inverse() Action {
	return a ^ 1
}

// Direction is the sense of a quarter turn.
type Direction int

const (
	// Clockwise as seen from outside the turned face. For an inner row
	// slice it moves Front stickers to Right; for an inner column slice it
	// moves Front stickers to Up.
	Clockwise Direction = 0
	// CounterClockwise is the inverse of Clockwise.
	CounterClockwise Direction = 1
)

func (d Direction) String() string {
	if d == Clockwise {
		return "cw"
	}
	return "ccw"
}

// TurnKind distinguishes outer-face turns from inner-slice turns.
type TurnKind int

const (
	FaceTurn TurnKind = iota
	SliceTurn
)

// SliceAxis selects which inner layers a slice turn moves.
type SliceAxis int

const (
	// RowSlice cycles one row across Front, Right, Back and Left.
	RowSlice SliceAxis = 0
	// ColumnSlice cycles one column across Front, Up, Back and Down.
	ColumnSlice SliceAxis = 1
)

// Turn is the decoded form of an Action.
type Turn struct {
	Kind      TurnKind
	Face      Face      // FaceTurn only
	Axis      SliceAxis // SliceTurn only
	Layer     int       // SliceTurn only, 1..N-2
	Direction Direction
}

// Inverse returns the turn that undoes t.
func (t Turn) Inverse() Turn {
	t.Direction = 1 - t.Direction
	return t
}

// DecodeAction converts an action index into a Turn for edge length n.
func DecodeAction(n int, a Action) (Turn, error) {
	if a < 0 || int(a) >= ActionCount(n) {
		return Turn{}, &ActionError{Action: a, Size: n}
	}
	if a < NumFaceActions {
		return Turn{
			Kind:      FaceTurn,
			Face:      Face(a / 2),
			Direction: Direction(a % 2),
		}, nil
	}
	k := int(a) - NumFaceActions
	perAxis := (n - 2) * 2
	return Turn{
		Kind:      SliceTurn,
		Axis:      SliceAxis(k / perAxis),
		Layer:     1 + (k%perAxis)/2,
		Direction: Direction(k % 2),
	}, nil
}

// Action encodes t as an action index for edge length n.
func (t Turn) Action(n int) (Action, error) {
	if n < 2 || (t.Direction != Clockwise && t.Direction != CounterClockwise) {
		return 0, fmt.Errorf("%w: %+v", ErrInvalidAction, t)
	}
	switch t.Kind {
	case FaceTurn:
		if !t.Face.Valid() {
			return 0, fmt.Errorf("%w: face %d", ErrInvalidAction, int(t.Face))
		}
		return Action(int(t.Face)*2 + int(t.Direction)), nil
	case SliceTurn:
		if t.Axis != RowSlice && t.Axis != ColumnSlice {
			return 0, fmt.Errorf("%w: slice axis %d", ErrInvalidAction, int(t.Axis))
		}
		if t.Layer < 1 || t.Layer > n-2 {
			return 0, fmt.Errorf("%w: slice layer %d on edge length %d", ErrInvalidAction, t.Layer, n)
		}
		perAxis := (n - 2) * 2
		return Action(NumFaceActions + int(t.Axis)*perAxis + (t.Layer-1)*2 + int(t.Direction)), nil
	default:
		return 0, fmt.Errorf("%w: turn kind %d", ErrInvalidAction, int(t.Kind))
	}
}

// Apply performs one action. An out-of-range action returns an error
// wrapping ErrInvalidAction and leaves the cube untouched.
func (c *Cube) Apply(a Action) error {
	t, err := DecodeAction(c.n, a)
	if err != nil {
		return err
	}
	c.turn(t)
	return nil
}

// ApplyTurn performs a decoded turn after checking it is legal for this cube.
func (c *Cube) ApplyTurn(t Turn) error {
	if _, err := t.Action(c.n); err != nil {
		return err
	}
	c.turn(t)
	return nil
}

// ApplyAll validates every action first and then applies them in order,
// so either the whole sequence runs or the cube is left untouched.
func (c *Cube) ApplyAll(actions []Action) error {
	turns := make([]Turn, len(actions))
	for i, a := range actions {
		t, err := DecodeAction(c.n, a)
		if err != nil {
			return fmt.Errorf("action #%d: %w", i, err)
		}
		turns[i] = t
	}
	for _, t := range turns {
		c.turn(t)
	}
	return nil
}

func (c *Cube) turn(t Turn) {
	switch t.Kind {
	case FaceTurn:
		c.rotateFace(t.Face, t.Direction)
		c.rotateEdges(t.Face, t.Direction)
	case SliceTurn:
		c.rotateSlice(t.Axis, t.Layer, t.Direction)
	}
}
