package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/nxcube"
)

// resetFlags restores every flag to its default so commands can be run
// repeatedly in one process.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func executeCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestShowSolvedLetters(t *testing.T) {
	out, err := executeCLI(t, "show", "-n", "2", "--style", "letters")
	require.NoError(t, err)
	assert.Contains(t, out, "GG RR BB OO\nGG RR BB OO\n")
	assert.Contains(t, out, "Solved: true")
}

func TestShowFacelets(t *testing.T) {
	c := nxcube.MustNew(3)
	require.NoError(t, c.Apply(nxcube.R))

	out, err := executeCLI(t, "show", "--facelets", c.Facelets(), "--style", "letters")
	require.NoError(t, err)
	assert.Contains(t, out, "Size: 3x3x3  Solved: false")
}

func TestApplyAndInverse(t *testing.T) {
	out, err := executeCLI(t, "apply", "-n", "4", "--style", "letters", "R", "V1", "V1'", "R'")
	require.NoError(t, err)
	assert.Contains(t, out, "Solved: true")
	assert.Contains(t, out, "Moves: R V1 V1' R'")
}

func TestApplyIndices(t *testing.T) {
	out, err := executeCLI(t, "apply", "-n", "3", "--style", "letters", "--index", "0,1")
	require.NoError(t, err)
	assert.Contains(t, out, "Moves: F F'")
	assert.Contains(t, out, "Solved: true")
}

func TestApplyRejectsBadInput(t *testing.T) {
	_, err := executeCLI(t, "apply", "-n", "3", "R", "Q")
	assert.ErrorIs(t, err, nxcube.ErrInvalidNotation)

	_, err = executeCLI(t, "apply", "-n", "3", "--index", "16")
	assert.ErrorIs(t, err, nxcube.ErrInvalidAction)
}

func TestScrambleIsReproducible(t *testing.T) {
	args := []string{"scramble", "-n", "3", "-i", "50", "--seed", "42", "--moves", "--style", "letters"}
	first, err := executeCLI(t, args...)
	require.NoError(t, err)
	second, err := executeCLI(t, args...)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "Seed: 42  Actions: 50")
}

func TestScrambleSaveAndReplay(t *testing.T) {
	db := filepath.Join(t.TempDir(), "sessions.db")

	out, err := executeCLI(t, "--db", db, "scramble", "-n", "5", "-i", "80", "--seed", "9", "--save", "--notes", "five")
	require.NoError(t, err)
	id := regexp.MustCompile(`Saved session: (\S+)`).FindStringSubmatch(out)
	require.Len(t, id, 2)

	out, err = executeCLI(t, "--db", db, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, id[1])
	assert.Contains(t, out, "five")

	out, err = executeCLI(t, "--db", db, "history", "show", id[1])
	require.NoError(t, err)
	assert.Contains(t, out, "Seed:    9")
	assert.Contains(t, out, "Actions: 80")

	out, err = executeCLI(t, "--db", db, "--style", "letters", "history", "replay")
	require.NoError(t, err)
	assert.Contains(t, out, "Replay matches stored state")
}

func TestHistoryEmpty(t *testing.T) {
	db := filepath.Join(t.TempDir(), "empty.db")

	out, err := executeCLI(t, "--db", db, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions recorded")

	_, err = executeCLI(t, "--db", db, "history", "replay")
	assert.Error(t, err)
}

func TestLoadLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.toml")
	require.NoError(t, os.WriteFile(path, []byte("U1 = \"green\"\nX9 = \"red\"\n"), 0o644))

	out, err := executeCLI(t, "load", "-n", "3", "--style", "letters", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Applied: 1  Rejected: 1")

	_, err = executeCLI(t, "load", "-n", "3", "--strict", path)
	assert.ErrorIs(t, err, nxcube.ErrUnrecognizedPosition)
}

func TestConfigFileSetsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("size = 2\nrender_style = \"letters\"\n"), 0o644))

	out, err := executeCLI(t, "--config", path, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "   WW\n")
	assert.Contains(t, out, "Size: 2x2x2")
}

func TestScrambleBatchMatchesSequential(t *testing.T) {
	results, err := scrambleBatch(context.Background(), 4, 60, 6, 3, 100)
	require.NoError(t, err)
	require.Len(t, results, 6)

	for i, r := range results {
		assert.Equal(t, uint64(100+i), r.Seed)

		want := nxcube.MustNew(4)
		actions, err := want.Scramble(60, nxcube.WithSeed(r.Seed))
		require.NoError(t, err)
		assert.Equal(t, actions, r.Actions)
		assert.True(t, want.Equal(r.Cube), "cube %d", i)
	}
}

func TestScrambleBatchErrors(t *testing.T) {
	_, err := scrambleBatch(context.Background(), 1, 10, 2, 2, 0)
	assert.ErrorIs(t, err, nxcube.ErrInvalidDimension)

	_, err = scrambleBatch(context.Background(), 3, -1, 2, 2, 0)
	assert.ErrorIs(t, err, nxcube.ErrInvalidIterations)
}

func press(m *playModel, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func TestPlayTurnsAndSolvedNotice(t *testing.T) {
	m, err := newPlayModel(3, 10, 1)
	require.NoError(t, err)

	press(m, "r", "u")
	assert.Equal(t, []nxcube.Action{nxcube.R, nxcube.U}, m.tracker.History())
	assert.False(t, m.tracker.IsSolved())

	press(m, "U", "R")
	assert.True(t, m.tracker.IsSolved())
	assert.True(t, m.justSolved)
	assert.Equal(t, 4, m.solvedIn)
}

func TestPlayUndoResetAndScramble(t *testing.T) {
	m, err := newPlayModel(4, 10, 7)
	require.NoError(t, err)

	press(m, "s")
	assert.Len(t, m.tracker.History(), 10)

	press(m, "z", "backspace")
	assert.Len(t, m.tracker.History(), 8)

	press(m, "x")
	assert.Empty(t, m.tracker.History())
	assert.True(t, m.tracker.IsSolved())

	// Undo on an empty history is not an error.
	press(m, "z")
	assert.NoError(t, m.lastErr)
}

func TestPlaySliceLayers(t *testing.T) {
	m, err := newPlayModel(5, 10, 0)
	require.NoError(t, err)

	press(m, "[")
	assert.Equal(t, 1, m.layer)
	press(m, "]", "]", "]")
	assert.Equal(t, 3, m.layer)

	press(m, "v")
	want, err := nxcube.ParseMoves(5, "V3")
	require.NoError(t, err)
	assert.Equal(t, want, m.tracker.History())

	small, err := newPlayModel(2, 10, 0)
	require.NoError(t, err)
	press(small, "h")
	assert.ErrorIs(t, small.lastErr, nxcube.ErrInvalidAction)
	assert.Empty(t, small.tracker.History())
}

func TestPlayViewAndQuit(t *testing.T) {
	m, err := newPlayModel(3, 10, 0)
	require.NoError(t, err)
	press(m, "f")

	view := m.View()
	assert.Contains(t, view, "nxcube 3x3x3")
	assert.Contains(t, view, "Moves: 1")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.NotNil(t, cmd)
	assert.True(t, m.quitting)
}

func TestHistoryShowAnalyze(t *testing.T) {
	db := filepath.Join(t.TempDir(), "analyze.db")

	_, err := executeCLI(t, "--db", db, "apply", "-n", "3", "--save", "R U R' U' R U R' U' F F'")
	require.NoError(t, err)

	out, err := executeCLI(t, "--db", db, "history", "show", "--analyze")
	require.NoError(t, err)
	assert.Contains(t, out, "Actions: 10")
	assert.Contains(t, out, "x2   R U R' U'")
}
