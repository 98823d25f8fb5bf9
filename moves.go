package nxcube

// Predefined outer-face actions, valid on every cube size.
//
// Example:
//
//	cube.ApplyAll([]nxcube.Action{nxcube.R, nxcube.U, nxcube.RPrime, nxcube.UPrime})
const (
	F      Action = 0  // Front clockwise
	FPrime Action = 1  // Front counter-clockwise
	U      Action = 2  // Up clockwise
	UPrime Action = 3  // Up counter-clockwise
	L      Action = 4  // Left clockwise
	LPrime Action = 5  // Left counter-clockwise
	D      Action = 6  // Down clockwise
	DPrime Action = 7  // Down counter-clockwise
	R      Action = 8  // Right clockwise
	RPrime Action = 9  // Right counter-clockwise
	B      Action = 10 // Back clockwise
	BPrime Action = 11 // Back counter-clockwise
)

// SexyMove is R U R' U'; six repetitions return any cube to its start.
var SexyMove = []Action{R, U, RPrime, UPrime}

// InverseSexyMove is U R U' R'.
var InverseSexyMove = []Action{U, R, UPrime, RPrime}

// TPerm swaps two corners and two edges of the top layer.
var TPerm = []Action{R, U, RPrime, UPrime, RPrime, F, R, R, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
