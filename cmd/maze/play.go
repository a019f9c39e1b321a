package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"
)

var (
	flagPlain  bool
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Play the campaign from the configured start level.

Controls: w/a/s/d or arrow keys to move, q to quit.
The plain mode reads single key presses and redraws the screen without
a full-screen interface, which is handy for slow links and recordings.`,
	Example: `  maze play
  maze play --seed 42 --start 3
  maze play --difficulty hard
  maze play --plain`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Use the plain line renderer instead of the full-screen UI")
	playCmd.Flags().StringVar(&flagPlayer, "name", "", "Player name stored with the run (default: login name)")
}

func runPlay(cmd *cobra.Command, args []string) {
	e, err := loadEnv(cmd, flagPlayer, true, false)
	exitOnError("config", err)
	defer e.close()

	var report maze.Report
	if flagPlain {
		report, err = tui.RunPlain(e.setup, flagSeed, os.Stdin, os.Stdout)
	} else {
		report, err = tui.Run(e.setup, runtimeConfig())
	}
	if err != nil {
		var loadErr *maze.LoadError
		if errors.As(err, &loadErr) {
			e.logger.Error("level load failed", "level", loadErr.Level, "source", loadErr.Source, "error", loadErr.Err)
		}
		e.close()
		exitOnError("game", err)
	}
	printReport(report)
}

// runtimeConfig sizes the run to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}
