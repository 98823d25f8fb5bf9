package nxcube

import "sync"

// Tracker wraps a Cube, records the actions applied to it and reports
// when the cube becomes solved. It is safe for concurrent use.
type Tracker struct {
	mu             sync.Mutex
	cube           *Cube
	start          *Cube
	history        []Action
	solved         bool
	solvedCallback func(moves int)
}

// NewTracker creates a tracker around a solved cube of edge length n.
func NewTracker(n int) (*Tracker, error) {
	c, err := New(n)
	if err != nil {
		return nil, err
	}
	return NewTrackerFrom(c), nil
}

// NewTrackerFrom creates a tracker starting from a copy of c.
// Reset returns to that starting state.
func NewTrackerFrom(c *Cube) *Tracker {
	return &Tracker{
		cube:   c.Clone(),
		start:  c.Clone(),
		solved: c.IsSolved(),
	}
}

// SetSolvedCallback sets a callback that fires whenever an action takes the
// cube from unsolved to solved. It receives the number of recorded actions.
func (t *Tracker) SetSolvedCallback(cb func(moves int)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.solvedCallback = cb
}

// Apply applies an action and records it.
func (t *Tracker) Apply(a Action) error {
	return t.ApplyAll([]Action{a})
}

// ApplyAll applies and records a sequence of actions. Nothing is applied if
// any action is out of range.
func (t *Tracker) ApplyAll(actions []Action) error {
	t.mu.Lock()
	if err := t.cube.ApplyAll(actions); err != nil {
		t.mu.Unlock()
		return err
	}
	t.history = append(t.history, actions...)
	notify := t.checkSolved()
	t.mu.Unlock()

	notify()
	return nil
}

// Scramble scrambles the cube and records the generated actions.
func (t *Tracker) Scramble(iterations int, opts ...ScrambleOption) ([]Action, error) {
	t.mu.Lock()
	actions, err := t.cube.Scramble(iterations, opts...)
	if err != nil {
		t.mu.Unlock()
		return nil, err
	}
	t.history = append(t.history, actions...)
	notify := t.checkSolved()
	t.mu.Unlock()

	notify()
	return actions, nil
}

// Undo reverts the most recent action and removes it from the history.
func (t *Tracker) Undo() (Action, error) {
	t.mu.Lock()
	if len(t.history) == 0 {
		t.mu.Unlock()
		return 0, ErrNothingToUndo
	}
	last := t.history[len(t.history)-1]
	if err := t.cube.Apply(last.Inverse()); err != nil {
		t.mu.Unlock()
		return 0, err
	}
	t.history = t.history[:len(t.history)-1]
	notify := t.checkSolved()
	t.mu.Unlock()

	notify()
	return last, nil
}

// Reset restores the starting state and clears the history.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cube = t.start.Clone()
	t.history = nil
	t.solved = t.cube.IsSolved()
}

// checkSolved updates the solved flag and returns the callback to run once
// the lock is released. Only the unsolved to solved transition notifies.
func (t *Tracker) checkSolved() func() {
	now := t.cube.IsSolved()
	was := t.solved
	t.solved = now
	if now && !was && t.solvedCallback != nil {
		cb, moves := t.solvedCallback, len(t.history)
		return func() { cb(moves) }
	}
	return func() {}
}

// History returns a copy of the recorded actions.
func (t *Tracker) History() []Action {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Action, len(t.history))
	copy(out, t.history)
	return out
}

// Moves returns the number of recorded actions.
func (t *Tracker) Moves() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.history)
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cube.IsSolved()
}

// Size returns the tracked cube's edge length.
func (t *Tracker) Size() int {
	return t.start.Size()
}

// Cube returns a snapshot of the tracked cube.
func (t *Tracker) Cube() *Cube {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cube.Clone()
}

// CubeString returns a string representation of the cube.
func (t *Tracker) CubeString() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cube.String()
}
