package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/layout"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

var loadCmd = &cobra.Command{
	Use:   "load <layout-file>",
	Short: "Overwrite stickers from a TOML, YAML or JSON layout",
	Long: `Load a sparse sticker layout onto a solved cube.

Keys name a face letter and a 1-based row-major sticker index, values name
a color:

  U1 = "green"
  F5 = "o"
  R9 = 4

Entries with an unknown position or color are reported and skipped.
The resulting cube is not checked for reachability.`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

var (
	loadSize   int
	loadStrict bool
	loadSave   bool
)

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().IntVarP(&loadSize, "size", "n", 0, "Edge length (default from config)")
	loadCmd.Flags().BoolVar(&loadStrict, "strict", false, "Fail if any entry is rejected")
	loadCmd.Flags().BoolVar(&loadSave, "save", false, "Save the loaded cube to the session history")
}

func runLoad(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	c, err := nxcube.New(cubeSize(loadSize))
	if err != nil {
		return err
	}

	report, err := layout.ApplyFile(c, args[0])
	if err != nil {
		return err
	}
	for _, rej := range report.Rejected {
		logger.Warn().Str("key", rej.Key).Str("value", rej.Value).Err(rej.Err).Msg("layout entry rejected")
	}
	if loadStrict && !report.OK() {
		return fmt.Errorf("layout %s: %w", args[0], report.Err())
	}

	printCube(out, c)
	fmt.Fprintf(out, "Applied: %d  Rejected: %d\n", report.Applied, len(report.Rejected))

	if loadSave {
		_, err := saveSession(out, storage.NewSession{
			EdgeLength: c.Size(),
			Source:     storage.SourceLoad,
			FinalState: c.Facelets(),
			Notes:      args[0],
		})
		if err != nil {
			return err
		}
	}

	return nil
}
