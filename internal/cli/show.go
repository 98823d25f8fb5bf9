package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render a solved cube or a facelet string",
	Long: `Render a cube as a cross-shaped net.

Without --facelets a solved cube of the configured size is shown.
A facelet string lists 6·N² color letters face by face in F U L D R B order.`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

var (
	showSize     int
	showFacelets string
)

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntVarP(&showSize, "size", "n", 0, "Edge length (default from config)")
	showCmd.Flags().StringVar(&showFacelets, "facelets", "", "Facelet string to render")
}

func runShow(cmd *cobra.Command, args []string) error {
	var c *nxcube.Cube
	var err error
	if showFacelets != "" {
		c, err = nxcube.FromFacelets(showFacelets)
	} else {
		c, err = nxcube.New(cubeSize(showSize))
	}
	if err != nil {
		return fmt.Errorf("failed to build cube: %w", err)
	}

	printCube(cmd.OutOrStdout(), c)
	return nil
}
