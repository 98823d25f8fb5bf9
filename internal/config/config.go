// Package config loads nxcube tool settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/SeamusWaldron/nxcube"
)

// ErrInvalidConfig is returned for settings that are present but unusable.
var ErrInvalidConfig = errors.New("config: invalid value")

// Render styles.
const (
	StyleBlocks  = "blocks"
	StyleLetters = "letters"
)

// Config holds the tool settings.
type Config struct {
	Size               int
	ScrambleIterations int
	Seed               uint64
	HasSeed            bool
	DBPath             string
	LogLevel           string
	RenderStyle        string
}

type fileConfig struct {
	Size               int    `toml:"size"`
	ScrambleIterations int    `toml:"scramble_iterations"`
	Seed               uint64 `toml:"seed"`
	DBPath             string `toml:"db_path"`
	LogLevel           string `toml:"log_level"`
	RenderStyle        string `toml:"render_style"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Size:               3,
		ScrambleIterations: nxcube.DefaultScrambleIterations,
		LogLevel:           "info",
		RenderStyle:        StyleBlocks,
	}
}

// Dir returns the per-user nxcube directory. It does not create it;
// storage.Open creates the database directory on first use.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".nxcube"), nil
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the file at path and overlays its defined keys on Default.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undecoded[0].String())
	}

	if meta.IsDefined("size") {
		cfg.Size = raw.Size
	}
	if meta.IsDefined("scramble_iterations") {
		cfg.ScrambleIterations = raw.ScrambleIterations
	}
	if meta.IsDefined("seed") {
		cfg.Seed = raw.Seed
		cfg.HasSeed = true
	}
	if meta.IsDefined("db_path") {
		cfg.DBPath = strings.TrimSpace(raw.DBPath)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("render_style") {
		cfg.RenderStyle = strings.ToLower(strings.TrimSpace(raw.RenderStyle))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault loads path, or the default path when path is empty. A
// missing default file is not an error; a missing explicit file is.
func LoadOrDefault(path string) (Config, error) {
	if path != "" {
		return Load(path)
	}

	def, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	if _, err := os.Stat(def); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Load(def)
}

// Validate checks the settings.
func (c Config) Validate() error {
	if c.Size < 2 {
		return fmt.Errorf("%w: size %d is below 2", ErrInvalidConfig, c.Size)
	}
	if c.ScrambleIterations < 0 {
		return fmt.Errorf("%w: scramble_iterations %d is negative", ErrInvalidConfig, c.ScrambleIterations)
	}
	switch c.RenderStyle {
	case StyleBlocks, StyleLetters:
	default:
		return fmt.Errorf("%w: render_style %q", ErrInvalidConfig, c.RenderStyle)
	}
	return nil
}

// ResolveDBPath returns DBPath, or nxcube.db in the user directory.
func (c Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "nxcube.db"), nil
}
