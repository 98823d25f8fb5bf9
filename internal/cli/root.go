// Package cli implements the command-line interface for nxcube.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube/internal/config"
	"github.com/SeamusWaldron/nxcube/internal/observability"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool
	logLevel   string
	styleFlag  string

	// Resolved in PersistentPreRunE
	cfg    config.Config
	logger zerolog.Logger
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "nxcube",
	Short: "N×N×N cube simulator",
	Long: `nxcube - A simulator for N×N×N twisty cubes.

Scramble cubes of any size, apply face and slice turns, load sticker
layouts from TOML, YAML or JSON files, play interactively in the
terminal, and keep a replayable history of sessions in SQLite.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.nxcube/config.toml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.nxcube/nxcube.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&styleFlag, "style", "", "Render style (blocks, letters)")
}

// loadSettings reads the config file and applies global flag overrides.
func loadSettings(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	if dbPath != "" {
		loaded.DBPath = dbPath
	}
	if logLevel != "" {
		loaded.LogLevel = logLevel
	}
	if verbose {
		loaded.LogLevel = "debug"
	}
	if styleFlag != "" {
		loaded.RenderStyle = styleFlag
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	cfg = loaded
	logger = observability.NewLogger(cmd.ErrOrStderr(), "nxcube", cfg.LogLevel)
	logger.Debug().Str("config", configPath).Int("size", cfg.Size).Msg("settings loaded")
	return nil
}
