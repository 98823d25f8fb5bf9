package cli

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

// Styles for the interactive view.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Turn a cube interactively in the terminal",
	Long: `Play with a cube in the terminal.

Keys:
  f u l d r b     turn a face clockwise (shift for counter-clockwise)
  h / H           turn the selected row slice (N > 2)
  v / V           turn the selected column slice (N > 2)
  [ / ]           select the slice layer
  s               scramble
  z / backspace   undo
  x               reset
  q / esc         quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var (
	playSize     int
	playScramble int
	playSeed     uint64
	playSave     bool
)

// recentMoves is how many moves the view lists.
const recentMoves = 20

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVarP(&playSize, "size", "n", 0, "Edge length (default from config)")
	playCmd.Flags().IntVar(&playScramble, "scramble", 30, "Random actions applied by the s key")
	playCmd.Flags().Uint64Var(&playSeed, "seed", 0, "Seed for the first scramble")
	playCmd.Flags().BoolVar(&playSave, "save", false, "Save the session when quitting")
}

func runPlay(cmd *cobra.Command, args []string) error {
	n := cubeSize(playSize)
	model, err := newPlayModel(n, playScramble, resolveSeed(cmd, playSeed))
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}

	out := cmd.OutOrStdout()
	history := model.tracker.History()
	fmt.Fprintf(out, "Moves: %d  Solved: %v\n", len(history), model.tracker.IsSolved())

	if playSave && len(history) > 0 {
		c := model.tracker.Cube()
		_, err := saveSession(out, storage.NewSession{
			EdgeLength: n,
			Source:     storage.SourcePlay,
			Actions:    history,
			FinalState: c.Facelets(),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

type playModel struct {
	tracker    *nxcube.Tracker
	n          int
	layer      int
	scramble   int
	seed       uint64
	scrambles  int
	solvedIn   int
	justSolved bool
	lastErr    error
	quitting   bool
}

func newPlayModel(n, scramble int, seed uint64) (*playModel, error) {
	tracker, err := nxcube.NewTracker(n)
	if err != nil {
		return nil, err
	}

	m := &playModel{
		tracker:  tracker,
		n:        n,
		layer:    1,
		scramble: scramble,
		seed:     seed,
	}
	tracker.SetSolvedCallback(func(moves int) {
		m.justSolved = true
		m.solvedIn = moves
	})
	return m, nil
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

var faceKeys = map[string]nxcube.Face{
	"f": nxcube.FaceFront,
	"u": nxcube.FaceUp,
	"l": nxcube.FaceLeft,
	"d": nxcube.FaceDown,
	"r": nxcube.FaceRight,
	"b": nxcube.FaceBack,
}

// keyTurn maps a key to a turn. Upper case reverses the direction.
func (m *playModel) keyTurn(key string) (nxcube.Turn, bool) {
	lower := strings.ToLower(key)
	dir := nxcube.Clockwise
	if key != lower {
		dir = nxcube.CounterClockwise
	}

	if face, ok := faceKeys[lower]; ok {
		return nxcube.Turn{Kind: nxcube.FaceTurn, Face: face, Direction: dir}, true
	}
	switch lower {
	case "h":
		return nxcube.Turn{Kind: nxcube.SliceTurn, Axis: nxcube.RowSlice, Layer: m.layer, Direction: dir}, true
	case "v":
		return nxcube.Turn{Kind: nxcube.SliceTurn, Axis: nxcube.ColumnSlice, Layer: m.layer, Direction: dir}, true
	}
	return nxcube.Turn{}, false
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.lastErr = nil
	m.justSolved = false

	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "z", "backspace":
		if _, err := m.tracker.Undo(); err != nil && !errors.Is(err, nxcube.ErrNothingToUndo) {
			m.lastErr = err
		}

	case "x":
		m.tracker.Reset()

	case "s":
		seed := m.seed + uint64(m.scrambles)
		m.scrambles++
		if _, err := m.tracker.Scramble(m.scramble, nxcube.WithSeed(seed)); err != nil {
			m.lastErr = err
		}

	case "[":
		if m.layer > 1 {
			m.layer--
		}

	case "]":
		if m.layer < m.n-2 {
			m.layer++
		}

	default:
		turn, ok := m.keyTurn(key.String())
		if !ok {
			return m, nil
		}
		a, err := turn.Action(m.n)
		if err != nil {
			m.lastErr = err
			return m, nil
		}
		if err := m.tracker.Apply(a); err != nil {
			m.lastErr = err
		}
	}

	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("nxcube %dx%dx%d", m.n, m.n, m.n)))
	b.WriteString("\n\n")
	b.WriteString(newRenderer().Render(m.tracker.Cube()))
	b.WriteString("\n")

	history := m.tracker.History()
	b.WriteString(statusStyle.Render(fmt.Sprintf("Moves: %d", len(history))))
	if m.n > 2 {
		b.WriteString(statusStyle.Render(fmt.Sprintf("  Slice layer: %d/%d", m.layer, m.n-2)))
	}
	b.WriteString("\n")

	if m.justSolved {
		b.WriteString(solvedStyle.Render(fmt.Sprintf("SOLVED after %d moves!", m.solvedIn)))
		b.WriteString("\n")
	} else if m.tracker.IsSolved() {
		b.WriteString(solvedStyle.Render("Solved"))
		b.WriteString("\n")
	}

	if len(history) > 0 {
		b.WriteString("Recent: ")
		start := 0
		if len(history) > recentMoves {
			start = len(history) - recentMoves
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(nxcube.FormatActions(m.n, history[start:])))
		b.WriteString("\n")
	}

	if m.lastErr != nil {
		b.WriteString(errorStyle.Render(m.lastErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "fuldrb=turn  FULDRB=reverse  s=scramble  z=undo  x=reset  q=quit"
	if m.n > 2 {
		help = "fuldrb/hv=turn  shift=reverse  [/]=layer  s=scramble  z=undo  x=reset  q=quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}
