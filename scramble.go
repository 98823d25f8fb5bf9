package nxcube

import (
	"fmt"
	"math/rand/v2"
)

// DefaultScrambleIterations is large enough to decorrelate a cube from the
// solved state for any practical edge length.
const DefaultScrambleIterations = 25000

// Scramble applies iterations uniformly sampled actions and returns them in
// the order they were applied. Zero iterations leaves the cube unchanged.
func (c *Cube) Scramble(iterations int, opts ...ScrambleOption) ([]Action, error) {
	if iterations < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidIterations, iterations)
	}

	cfg := defaultScrambleConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	rng := rand.New(cfg.source)

	actions := make([]Action, iterations)
	for i := range actions {
		a, err := RandomAction(c.n, rng)
		if err != nil {
			return nil, err
		}
		t, _ := DecodeAction(c.n, a)
		c.turn(t)
		actions[i] = a
	}
	return actions, nil
}

// RandomAction picks one legal action for edge length n from rng, uniformly
// over [0, ActionCount(n)). It returns ErrInvalidDimension when n < 2.
func RandomAction(n int, rng *rand.Rand) (Action, error) {
	count := ActionCount(n)
	if count == 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidDimension, n)
	}
	return Action(rng.IntN(count)), nil
}
