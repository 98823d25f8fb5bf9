// nxcube - CLI for scrambling, turning and recording N×N×N cubes.
package main

import (
	"github.com/SeamusWaldron/nxcube/internal/cli"
)

func main() {
	cli.Execute()
}
