package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

var applyCmd = &cobra.Command{
	Use:   "apply [moves...]",
	Short: "Apply moves or raw action indices to a cube",
	Long: `Apply a sequence of moves to a solved cube (or to --facelets) and render the result.

Moves use face letters F U L D R B, H<k> for row slices and V<k> for column
slices (k = 1..N-2), with ' for counter-clockwise and 2 for a double turn.
Raw action indices can be given with --index. Nothing is applied if any
move is invalid.

Usage:
  nxcube apply R U "R'" "U'"
  nxcube apply -n 4 "F V1 H2'"
  nxcube apply -n 3 --index 0,8,1`,
	RunE: runApply,
}

var (
	applySize     int
	applyFacelets string
	applyIndices  []int
	applySave     bool
	applyNotes    string
)

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().IntVarP(&applySize, "size", "n", 0, "Edge length (default from config)")
	applyCmd.Flags().StringVar(&applyFacelets, "facelets", "", "Start from this facelet string instead of a solved cube")
	applyCmd.Flags().IntSliceVar(&applyIndices, "index", nil, "Raw action indices, applied after any moves")
	applyCmd.Flags().BoolVar(&applySave, "save", false, "Save the result to the session history")
	applyCmd.Flags().StringVar(&applyNotes, "notes", "", "Notes stored with a saved session")
}

func runApply(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if applySave && applyFacelets != "" {
		return fmt.Errorf("--save needs a solved starting cube; drop --facelets")
	}

	var c *nxcube.Cube
	var err error
	if applyFacelets != "" {
		c, err = nxcube.FromFacelets(applyFacelets)
	} else {
		c, err = nxcube.New(cubeSize(applySize))
	}
	if err != nil {
		return fmt.Errorf("failed to build cube: %w", err)
	}
	n := c.Size()

	actions, err := nxcube.ParseMoves(n, strings.Join(args, " "))
	if err != nil {
		return err
	}
	for _, idx := range applyIndices {
		actions = append(actions, nxcube.Action(idx))
	}

	if err := c.ApplyAll(actions); err != nil {
		return err
	}
	logger.Debug().Int("size", n).Int("actions", len(actions)).Msg("applied")

	printCube(out, c)
	fmt.Fprintf(out, "Moves: %s\n", nxcube.FormatActions(n, actions))

	if applySave {
		_, err := saveSession(out, storage.NewSession{
			EdgeLength: n,
			Source:     storage.SourceApply,
			Actions:    actions,
			FinalState: c.Facelets(),
			Notes:      applyNotes,
		})
		if err != nil {
			return err
		}
	}

	return nil
}
