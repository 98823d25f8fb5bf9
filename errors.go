package nxcube

import (
	"errors"
	"fmt"
)

// Sentinel errors for the nxcube package.
var (
	// Construction errors
	ErrInvalidDimension = errors.New("nxcube: edge length must be at least 2")

	// Action errors
	ErrInvalidAction     = errors.New("nxcube: action out of range")
	ErrInvalidIterations = errors.New("nxcube: scramble iterations must not be negative")
	ErrNothingToUndo     = errors.New("nxcube: no action to undo")

	// Parsing errors
	ErrInvalidNotation = errors.New("nxcube: invalid move notation")

	// Load errors, reported per entry
	ErrUnrecognizedColor    = errors.New("nxcube: unrecognized color")
	ErrUnrecognizedPosition = errors.New("nxcube: unrecognized position")
)

// ActionError reports an action index that is not valid for a cube size.
type ActionError struct {
	Action Action
	Size   int
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("nxcube: action %d out of range [0, %d) for edge length %d",
		int(e.Action), ActionCount(e.Size), e.Size)
}

func (e *ActionError) Unwrap() error { return ErrInvalidAction }

// EntryError describes one rejected entry of a bulk sticker load.
// Key is the entry as the caller named it; Err is ErrUnrecognizedColor or
// ErrUnrecognizedPosition.
type EntryError struct {
	Key   string
	Value string
	Err   error
}

func (e *EntryError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("%s=%q: %v", e.Key, e.Value, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }
