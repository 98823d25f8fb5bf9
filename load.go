package nxcube

import (
	"errors"
	"fmt"
	"sort"
)

// Position addresses a single sticker.
type Position struct {
	Face Face
	Row  int
	Col  int
}

func (p Position) String() string {
	return fmt.Sprintf("%s[%d,%d]", p.Face, p.Row, p.Col)
}

func (c *Cube) contains(p Position) bool {
	return p.Face.Valid() && p.Row >= 0 && p.Row < c.n && p.Col >= 0 && p.Col < c.n
}

// LoadReport summarizes a bulk sticker overwrite.
type LoadReport struct {
	Applied  int
	Rejected []*EntryError
}

// OK reports whether every entry was applied.
func (r *LoadReport) OK() bool {
	return len(r.Rejected) == 0
}

// Err joins the rejected entries into one error, or returns nil.
func (r *LoadReport) Err() error {
	if r.OK() {
		return nil
	}
	errs := make([]error, len(r.Rejected))
	for i, e := range r.Rejected {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// Reject records an entry that could not be applied.
func (r *LoadReport) Reject(key, value string, err error) {
	r.Rejected = append(r.Rejected, &EntryError{Key: key, Value: value, Err: err})
}

// Overwrite sets the given stickers directly, leaving every other position
// unchanged. It does not check that the result is a reachable cube state.
// Entries with a position outside the cube or an unknown color are skipped
// and reported; the remaining entries are still applied. Entries are
// processed in face, row, column order.
func (c *Cube) Overwrite(stickers map[Position]Color) *LoadReport {
	positions := make([]Position, 0, len(stickers))
	for p := range stickers {
		positions = append(positions, p)
	}
	sort.Slice(positions, func(i, j int) bool {
		a, b := positions[i], positions[j]
		if a.Face != b.Face {
			return a.Face < b.Face
		}
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		return a.Col < b.Col
	})

	report := &LoadReport{}
	for _, p := range positions {
		color := stickers[p]
		switch {
		case !c.contains(p):
			report.Reject(p.String(), color.Name(), ErrUnrecognizedPosition)
		case !color.Valid():
			report.Reject(p.String(), fmt.Sprint(uint8(color)), ErrUnrecognizedColor)
		default:
			c.faces[p.Face][p.Row*c.n+p.Col] = color
			report.Applied++
		}
	}
	return report
}
