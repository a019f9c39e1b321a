package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/maze/levels"
)

// errCheckFailed marks a check run that found unloadable levels.
var errCheckFailed = errors.New("level check failed")

var checkCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Validate level files",
	Long: `Load every level of the campaign and report its size, markers and
warnings. Exits with status 1 when any level cannot be loaded.

Without a directory the configured level source is checked.`,
	Example: `  maze check
  maze check ./my-levels --count 3`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		o := collectOverrides(cmd)
		if len(args) == 1 {
			o.levelsDir = &args[0]
		}
		cfg, err := resolveConfig(flagConfig, o)
		exitOnError("config", err)

		if err := checkLevels(os.Stdout, levelSource(cfg), cfg.Levels.Count); err != nil {
			exitOnError("check", err)
		}
	},
}

// checkLevels loads levels 1..count and prints a report for each.
func checkLevels(w io.Writer, src *levels.Dir, count int) error {
	failed := 0
	for n := 1; n <= count; n++ {
		data, err := src.Level(n)
		if err == nil {
			var layout *maze.Layout
			layout, err = maze.Load(data.Rows)
			if err == nil {
				reportLevel(w, data, layout)
				continue
			}
		}
		failed++
		fmt.Fprintf(w, "FAIL  level %d (%s): %v\n", n, src.Location(n), err)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d levels", errCheckFailed, failed, count)
	}
	fmt.Fprintf(w, "All %d levels OK\n", count)
	return nil
}

func reportLevel(w io.Writer, data maze.LevelData, layout *maze.Layout) {
	status := "ok  "
	if len(layout.Warnings) > 0 {
		status = "warn"
	}
	fmt.Fprintf(w, "%s  level %d (%s): %dx%d, %d wanderers, %d collectibles\n",
		status, data.Number, data.Name,
		layout.Grid.Width(), layout.Grid.Height(),
		len(layout.Wanderers), layout.Grid.Count(maze.CellCollectible))
	for _, warn := range layout.Warnings {
		fmt.Fprintf(w, "        warning: %s\n", warn)
	}
}
