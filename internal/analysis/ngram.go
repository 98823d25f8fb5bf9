// Package analysis mines repeated patterns from recorded action sequences.
package analysis

import (
	"slices"
	"sort"

	"github.com/SeamusWaldron/nxcube"
)

// maxOccurrences caps the sample positions kept per pattern.
const maxOccurrences = 10

// NGram is a move sequence that occurs more than once.
type NGram struct {
	N           int             `json:"n"`
	Actions     []nxcube.Action `json:"actions"`
	Notation    string          `json:"notation"`
	Count       int             `json:"count"`
	Occurrences []int           `json:"occurrences"`
}

// NGramReport holds the most frequent patterns, keyed by length.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams"`
}

// RollingHash is a Rabin-Karp hash over a fixed-size window of actions.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1)
	window []nxcube.Action
	n      int
}

// NewRollingHash creates a rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   1_000_003,
		n:      n,
		window: make([]nxcube.Action, 0, n),
	}
	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}
	return rh
}

// Roll adds a token, dropping the oldest once the window is full.
func (rh *RollingHash) Roll(a nxcube.Action) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, a)
		rh.hash = rh.hash*rh.base + uint64(a)
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(a)
	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = a
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Window returns a copy of the current window.
func (rh *RollingHash) Window() []nxcube.Action {
	return slices.Clone(rh.window)
}

// Ready reports whether the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

type ngramEntry struct {
	actions     []nxcube.Action
	count       int
	occurrences []int
}

// MineNGrams finds the topK most frequent repeated patterns for each length
// in [minN, maxN] within actions on an edge-length-n cube. Ties are broken
// by first occurrence.
func MineNGrams(n int, actions []nxcube.Action, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{TopNGrams: make(map[int][]NGram)}
	if minN < 1 {
		minN = 1
	}

	for size := minN; size <= maxN && size <= len(actions); size++ {
		if ngrams := mineNGramsForN(n, actions, size, topK); len(ngrams) > 0 {
			report.TopNGrams[size] = ngrams
		}
	}
	return report
}

func mineNGramsForN(n int, actions []nxcube.Action, size, topK int) []NGram {
	// Entries sharing a hash are kept in a bucket to survive collisions.
	buckets := make(map[uint64][]*ngramEntry)
	var order []*ngramEntry
	rh := NewRollingHash(size)

	for i, a := range actions {
		rh.Roll(a)
		if !rh.Ready() {
			continue
		}
		start := i - size + 1
		window := actions[start : i+1]

		var entry *ngramEntry
		for _, e := range buckets[rh.Hash()] {
			if slices.Equal(e.actions, window) {
				entry = e
				break
			}
		}
		if entry == nil {
			entry = &ngramEntry{actions: rh.Window()}
			buckets[rh.Hash()] = append(buckets[rh.Hash()], entry)
			order = append(order, entry)
		}
		entry.count++
		if len(entry.occurrences) < maxOccurrences {
			entry.occurrences = append(entry.occurrences, start)
		}
	}

	var repeated []*ngramEntry
	for _, e := range order {
		if e.count >= 2 {
			repeated = append(repeated, e)
		}
	}
	sort.SliceStable(repeated, func(i, j int) bool {
		return repeated[i].count > repeated[j].count
	})
	if len(repeated) > topK {
		repeated = repeated[:topK]
	}

	result := make([]NGram, len(repeated))
	for i, e := range repeated {
		result[i] = NGram{
			N:           size,
			Actions:     e.actions,
			Notation:    nxcube.FormatActions(n, e.actions),
			Count:       e.count,
			Occurrences: e.occurrences,
		}
	}
	return result
}
