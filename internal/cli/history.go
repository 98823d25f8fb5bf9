package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/analysis"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect saved sessions",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [session-id]",
	Short: "Show a session and its moves (default: the most recent)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistoryShow,
}

var historyReplayCmd = &cobra.Command{
	Use:   "replay [session-id]",
	Short: "Re-apply a session's actions and verify the stored state",
	Long: `Rebuild a saved session by applying its stored actions to a solved cube,
then compare the result with the facelets saved alongside it.

Sessions created from a layout file have no actions and are only rendered.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistoryReplay,
}

var (
	historyLimit   int
	historyAnalyze bool
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyReplayCmd)
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of sessions to list")
	historyShowCmd.Flags().BoolVar(&historyAnalyze, "analyze", false, "Show repeated move patterns")
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	db, repo, err := openSessions()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := repo.List(historyLimit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded")
		return nil
	}

	fmt.Fprintf(out, "%-36s  %-20s  %-4s  %-8s  %s\n", "ID", "CREATED", "SIZE", "SOURCE", "NOTES")
	for _, s := range sessions {
		notes := ""
		if s.Notes != nil {
			notes = *s.Notes
		}
		fmt.Fprintf(out, "%-36s  %-20s  %-4d  %-8s  %s\n",
			s.SessionID, s.CreatedAt.Local().Format(time.DateTime), s.EdgeLength, s.Source, notes)
	}
	return nil
}

// findSession returns the named session, or the most recent one.
func findSession(repo *storage.SessionRepository, args []string) (*storage.Session, error) {
	var s *storage.Session
	var err error
	if len(args) == 1 {
		s, err = repo.Get(args[0])
	} else {
		s, err = repo.GetLast()
	}
	if err != nil {
		return nil, err
	}
	if s == nil {
		if len(args) == 1 {
			return nil, fmt.Errorf("session %s not found", args[0])
		}
		return nil, fmt.Errorf("no sessions recorded")
	}
	return s, nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	db, repo, err := openSessions()
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := findSession(repo, args)
	if err != nil {
		return err
	}
	records, err := repo.Actions(s.SessionID)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Session: %s\n", s.SessionID)
	fmt.Fprintf(out, "Created: %s\n", s.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(out, "Size:    %d\n", s.EdgeLength)
	fmt.Fprintf(out, "Source:  %s\n", s.Source)
	if s.Seed != nil {
		fmt.Fprintf(out, "Seed:    %d\n", *s.Seed)
	}
	if s.Notes != nil {
		fmt.Fprintf(out, "Notes:   %s\n", *s.Notes)
	}
	fmt.Fprintf(out, "Actions: %d\n", len(records))
	if len(records) > 0 {
		actions := make([]nxcube.Action, len(records))
		for i, rec := range records {
			actions[i] = rec.Action
		}
		fmt.Fprintf(out, "Moves:   %s\n", nxcube.FormatActions(s.EdgeLength, actions))
		if historyAnalyze {
			printAnalysis(out, s.EdgeLength, actions)
		}
	}
	return nil
}

func printAnalysis(out io.Writer, n int, actions []nxcube.Action) {
	fmt.Fprintln(out)
	report := analysis.MineNGrams(n, actions, 4, 8, 3)
	if len(report.TopNGrams) == 0 {
		fmt.Fprintln(out, "No repeated patterns")
		return
	}
	fmt.Fprintln(out, "Repeated patterns:")
	for size := 4; size <= 8; size++ {
		for _, ng := range report.TopNGrams[size] {
			fmt.Fprintf(out, "  x%-3d %s\n", ng.Count, ng.Notation)
		}
	}
}

func runHistoryReplay(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	db, repo, err := openSessions()
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := findSession(repo, args)
	if err != nil {
		return err
	}

	if s.Source == storage.SourceLoad {
		c, err := nxcube.FromFacelets(s.FinalState)
		if err != nil {
			return err
		}
		printCube(out, c)
		return nil
	}

	c, ok, err := repo.Replay(s)
	if err != nil {
		return err
	}
	printCube(out, c)
	if !ok {
		logger.Error().Str("session", s.SessionID).Msg("replayed state differs from stored state")
		return fmt.Errorf("session %s: replay does not match stored state", s.SessionID)
	}
	fmt.Fprintln(out, "Replay matches stored state")
	return nil
}
