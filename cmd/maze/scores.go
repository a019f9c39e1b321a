package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var (
	flagScoresPlayer string
	flagScoresLimit  int
	flagScoresTUI    bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best finished runs, highest score first.

Examples:
  maze scores
  maze scores --player alice --limit 20
  maze scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show runs of this player")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", storage.DefaultLimit, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the whole run history")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	exitOnError("opening run database", err)
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearRuns(); err != nil {
			store.Close()
			exitOnError("clearing runs", err)
		}
		fmt.Println("Run history cleared.")
	case flagScoresTUI:
		rt := runtimeConfig()
		if err := tui.RunScoreboard(store, flagScoresPlayer, rt.ScreenW, rt.ScreenH); err != nil {
			store.Close()
			exitOnError("scoreboard", err)
		}
	default:
		if err := printScores(os.Stdout, store, flagScoresPlayer, flagScoresLimit); err != nil {
			store.Close()
			exitOnError("retrieving runs", err)
		}
	}
}

// printScores writes the run table. With a player it lists that player's
// recent runs, otherwise the global top runs.
func printScores(w io.Writer, store *storage.Store, player string, limit int) error {
	var (
		runs []storage.Run
		err  error
	)
	if player != "" {
		runs, err = store.RecentRuns(player, limit)
	} else {
		runs, err = store.TopRuns(limit)
	}
	if err != nil {
		return err
	}

	if player != "" {
		fmt.Fprintf(w, "Recent Runs - %s\n", player)
	} else {
		fmt.Fprintln(w, "High Scores")
	}
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'maze play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-12s  %-8s  %-5s  %-6s  %-5s  %s\n", "Rank", "Player", "Outcome", "Level", "Score", "Moves", "Date")
	fmt.Fprintf(w, "  %-4s  %-12s  %-8s  %-5s  %-6s  %-5s  %s\n", "----", "------", "-------", "-----", "-----", "-----", "----")
	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-12s  %-8s  %-5d  %-6d  %-5d  %s\n",
			i+1, truncate(r.Player, 12), r.Outcome, r.LevelReached, r.Score, r.Moves,
			r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	best, err := store.BestScore(player)
	if err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %d\n", best)
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
