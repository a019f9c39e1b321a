package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/maze/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List configured levels",
	Long:  "List the levels of the configured campaign with their size and wanderer count.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveConfig(flagConfig, collectOverrides(cmd))
		exitOnError("config", err)

		listLevels(os.Stdout, levelSource(cfg), cfg.Levels.Count)
	},
}

// listLevels prints one line per level up to count. Levels that cannot be
// read or parsed are shown with their error.
func listLevels(w io.Writer, src *levels.Dir, count int) {
	fmt.Fprintln(w, "Levels:")
	fmt.Fprintln(w)
	for n := 1; n <= count; n++ {
		data, err := src.Level(n)
		if err != nil {
			fmt.Fprintf(w, "  %2d  %-16s  missing\n", n, src.Location(n))
			continue
		}
		layout, err := maze.Load(data.Rows)
		if err != nil {
			fmt.Fprintf(w, "  %2d  %-16s  invalid: %v\n", n, data.Name, err)
			continue
		}
		fmt.Fprintf(w, "  %2d  %-16s  %dx%d, %d wanderers\n",
			n, data.Name, layout.Grid.Width(), layout.Grid.Height(), len(layout.Wanderers))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Playable in a row from level 1: %d of %d\n", len(src.Available(count)), count)
}
