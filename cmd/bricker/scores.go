package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bricker/internal/storage"
)

var (
	flagRecent  bool
	flagLimit   int
	flagRoundID string
	flagClear   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best or latest rounds",
	Long: `Display the top rounds by score, or the latest rounds with --recent.

Examples:
  bricker scores
  bricker scores --recent --limit 5
  bricker scores --id 0b6c7c1e-2a4f-4a55-9d43-6f1c5f0a2b11
  bricker scores --clear
  bricker scores --db ./rounds.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest rounds instead of the best")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().StringVar(&flagRoundID, "id", "", "Show a single round by ID")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded rounds")
	scoresCmd.MarkFlagsMutuallyExclusive("id", "clear", "recent")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening rounds database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	switch {
	case flagClear:
		if err := store.ClearRounds(); err != nil {
			return err
		}
		fmt.Fprintln(out, "All rounds deleted.")
		return nil
	case flagRoundID != "":
		return printRound(out, store, flagRoundID)
	}
	return printRounds(out, store)
}

func printRound(out io.Writer, store *storage.Store, id string) error {
	r, err := store.RoundByID(id)
	if err != nil {
		return fmt.Errorf("retrieving round: %w", err)
	}
	if r == nil {
		return fmt.Errorf("no round with id %q", id)
	}
	best, err := store.HighScore()
	if err != nil {
		return fmt.Errorf("retrieving high score: %w", err)
	}

	fmt.Fprintf(out, "Round %s\n\n", r.ID)
	fmt.Fprintf(out, "  Player:  %s\n", r.Player)
	fmt.Fprintf(out, "  Result:  %s\n", r.Outcome)
	fmt.Fprintf(out, "  Score:   %d (best %d)\n", r.Score, best)
	fmt.Fprintf(out, "  Bricks:  %d/%d\n", r.BricksDestroyed, r.BricksTotal)
	fmt.Fprintf(out, "  Lives:   %d\n", r.LivesLeft)
	fmt.Fprintf(out, "  Ticks:   %d\n", r.Ticks)
	fmt.Fprintf(out, "  Layout:  %s\n", r.Layout)
	fmt.Fprintf(out, "  Seed:    %d\n", r.Seed)
	fmt.Fprintf(out, "  Played:  %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}

func printRounds(out io.Writer, store *storage.Store) error {
	title := "High Scores"
	var rounds []storage.Round
	var err error
	if flagRecent {
		title = "Recent Rounds"
		rounds, err = store.RecentRounds(flagLimit)
	} else {
		rounds, err = store.TopRounds(flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving rounds: %w", err)
	}

	fmt.Fprintf(out, "%s - Bricker\n\n", title)

	if len(rounds) == 0 {
		fmt.Fprintln(out, "No rounds recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'bricker play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-7s  %-6s  %-7s  %-10s  %-12s  %s\n", "Rank", "Score", "Result", "Bricks", "Layout", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-7s  %-6s  %-7s  %-10s  %-12s  %s\n", "----", "-----", "------", "------", "------", "------", "----")

	for i, r := range rounds {
		bricks := fmt.Sprintf("%d/%d", r.BricksDestroyed, r.BricksTotal)
		fmt.Fprintf(out, "  %-4d  %-7d  %-6s  %-7s  %-10s  %-12s  %s\n",
			i+1, r.Score, r.Outcome, bricks, r.Layout, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Rounds: %d  Won: %d  Best: %d  Avg: %.0f  Bricks: %d\n",
			stats.Rounds, stats.Wins, stats.HighScore, stats.AvgScore, stats.Bricks)
	}
	return nil
}
