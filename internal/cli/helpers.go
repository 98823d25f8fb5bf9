package cli

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/render"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

// cubeSize returns the --size flag, or the configured size when unset.
func cubeSize(flag int) int {
	if flag > 0 {
		return flag
	}
	return cfg.Size
}

// resolveSeed picks the scramble seed: the --seed flag, then the config
// file, then a fresh random seed. The seed is always known so that a
// scramble can be reproduced.
func resolveSeed(cmd *cobra.Command, flag uint64) uint64 {
	if cmd.Flags().Changed("seed") {
		return flag
	}
	if cfg.HasSeed {
		return cfg.Seed
	}
	return rand.Uint64()
}

func newRenderer() *render.Renderer {
	style, err := render.ParseStyle(cfg.RenderStyle)
	if err != nil {
		style = render.StyleBlocks
	}
	return render.New(style)
}

// printCube writes the rendered net and the solved status.
func printCube(w io.Writer, c *nxcube.Cube) {
	fmt.Fprint(w, newRenderer().Render(c))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Size: %dx%dx%d  Solved: %v\n", c.Size(), c.Size(), c.Size(), c.IsSolved())
}

// openSessions opens the session store. Callers must close the DB.
func openSessions() (*storage.DB, *storage.SessionRepository, error) {
	path, err := cfg.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}

	db, err := storage.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	logger.Debug().Str("db", db.Path()).Msg("session store opened")

	return db, storage.NewSessionRepository(db), nil
}

// saveSession stores one session and logs its ID.
func saveSession(w io.Writer, s storage.NewSession) (string, error) {
	db, repo, err := openSessions()
	if err != nil {
		return "", err
	}
	defer db.Close()

	id, err := repo.Create(s)
	if err != nil {
		return "", err
	}

	logger.Info().Str("session", id).Str("source", s.Source).Int("actions", len(s.Actions)).Msg("session saved")
	fmt.Fprintf(w, "Saved session: %s\n", id)
	return id, nil
}
