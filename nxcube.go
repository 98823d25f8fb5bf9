// Package nxcube models the sticker state of an N×N×N Rubik's cube and the
// quarter turns that permute it.
//
// # Features
//
//   - Any edge length from 2 upwards
//   - Outer-face turns and inner-slice turns, addressed by a dense action index
//   - Reproducible scrambles from a seeded random source
//   - Move notation parsing and formatting
//   - Bulk sticker overwrite with per-entry error reporting
//   - Action history with undo via Tracker
//
// # Quick Start
//
//	cube, err := nxcube.New(4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Apply predefined face turns
//	cube.ApplyAll(nxcube.SexyMove)
//
//	// Or from notation, including inner slices
//	actions, _ := nxcube.ParseMoves(4, "F U' H1 V2'")
//	cube.ApplyAll(actions)
//
//	fmt.Println("Solved:", cube.IsSolved())
//
// # Action Space
//
// A cube of edge length N has ActionCount(N) = 12 + 4·(N-2) actions.
// Actions 0..11 turn face Action/2 in direction Action%2 (0 clockwise,
// 1 counter-clockwise, as seen from outside that face). The remaining
// actions turn inner rows, then inner columns, each layer in both
// directions.
//
// # Scrambling
//
//	actions, _ := cube.Scramble(nxcube.DefaultScrambleIterations, nxcube.WithSeed(42))
//
// The same seed and edge length always yield the same actions.
package nxcube
