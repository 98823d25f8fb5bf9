package nxcube

import (
	"fmt"
	"strconv"
	"strings"
)

// Notation returns the move notation for t.
// Face turns use the face letter: F, U, L, D, R, B.
// Inner slices use H<layer> for rows and V<layer> for columns.
// A trailing ' marks a counter-clockwise turn.
// Examples: F, F', H1, V2'
func (t Turn) Notation() string {
	var s string
	switch t.Kind {
	case FaceTurn:
		s = t.Face.String()
	case SliceTurn:
		prefix := "H"
		if t.Axis == ColumnSlice {
			prefix = "V"
		}
		s = prefix + strconv.Itoa(t.Layer)
	}
	if t.Direction == CounterClockwise {
		s += "'"
	}
	return s
}

// String returns the notation string (alias for Notation).
func (t Turn) String() string {
	return t.Notation()
}

// Notation returns the notation of action a on edge length n, or "?" if the
// action is out of range.
func (a Action) Notation(n int) string {
	t, err := DecodeAction(n, a)
	if err != nil {
		return "?"
	}
	return t.Notation()
}

// ParseMove parses one notation token into the actions it stands for.
// A "2" suffix is a half turn and yields the same action twice.
// Examples: R, R', R2, H1, V2'
func ParseMove(n int, s string) ([]Action, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return nil, ErrInvalidNotation
	}

	var t Turn
	rest := s[1:]
	switch s[0] {
	case 'H', 'h', 'V', 'v':
		t.Kind = SliceTurn
		t.Axis = RowSlice
		if s[0] == 'V' || s[0] == 'v' {
			t.Axis = ColumnSlice
		}
		digits := 0
		for digits < len(rest) && rest[digits] >= '0' && rest[digits] <= '9' {
			digits++
		}
		if digits == 0 {
			return nil, fmt.Errorf("%w: %q has no slice layer", ErrInvalidNotation, s)
		}
		layer, err := strconv.Atoi(rest[:digits])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
		t.Layer = layer
		rest = rest[digits:]
	default:
		face, ok := ParseFace(strings.ToUpper(s[:1])[0])
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
		t.Kind = FaceTurn
		t.Face = face
	}

	repeat := 1
	switch rest {
	case "":
	case "'", "`":
		t.Direction = CounterClockwise
	case "2", "2'", "2`":
		repeat = 2
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	a, err := t.Action(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidNotation, s, err)
	}
	actions := make([]Action, repeat)
	for i := range actions {
		actions[i] = a
	}
	return actions, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U' H1"
// Unlike a loader, it is strict: the first invalid token fails the parse.
func ParseMoves(n int, s string) ([]Action, error) {
	parts := strings.Fields(s)
	actions := make([]Action, 0, len(parts))

	for i, part := range parts {
		move, err := ParseMove(n, part)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		actions = append(actions, move...)
	}

	return actions, nil
}

// FormatActions formats actions as a space-separated notation string.
func FormatActions(n int, actions []Action) string {
	if len(actions) == 0 {
		return ""
	}

	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = a.Notation(n)
	}

	return strings.Join(parts, " ")
}
