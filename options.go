package nxcube

import "math/rand/v2"

// ScrambleOption configures Scramble.
type ScrambleOption func(*scrambleConfig)

type scrambleConfig struct {
	source rand.Source
}

func defaultScrambleConfig() *scrambleConfig {
	return &scrambleConfig{
		source: rand.NewPCG(rand.Uint64(), rand.Uint64()),
	}
}

// WithSeed makes a scramble reproducible: the same seed on the same edge
// length always yields the same action sequence.
func WithSeed(seed uint64) ScrambleOption {
	return func(c *scrambleConfig) {
		c.source = rand.NewPCG(seed, seed)
	}
}

// WithSource draws actions from the given random source.
// The source is used from the calling goroutine only.
func WithSource(src rand.Source) ScrambleOption {
	return func(c *scrambleConfig) {
		if src != nil {
			c.source = src
		}
	}
}
