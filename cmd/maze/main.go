// maze is a turn-based maze game for the terminal.
//
// Usage:
//
//	maze                 - Start menu (difficulty, start level, scores)
//	maze play            - Play the campaign straight away
//	maze levels          - List the configured levels
//	maze check [dir]     - Validate level files
//	maze scores          - Show the run history
//	maze serve           - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>   - Config file (default search: ~/.maze/configs, ./configs)
//	--levels <dir>    - Level directory (default: built-in campaign)
//	--seed <value>    - Set RNG seed for reproducible wanderers
//	--db <path>       - Set database path (default: ~/.maze/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagLevelsDir  string
	flagPattern    string
	flagCount      int
	flagStart      int
	flagSeed       int64
	flagDifficulty string
	flagDBPath     string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Maze - a turn-based maze game in your terminal",
	Long: `Maze is a single-player, turn-based maze game. Walk the player 'P'
to the exit 'E' of each level, pick up '*' for points, and do not share a
cell with a wandering enemy 'X'. Enemies move after every step you take.

Available commands:
  play     - Play the campaign directly
  menu     - Interactive start menu (also the default)
  levels   - List configured levels
  check    - Validate level files
  scores   - View run history
  serve    - Start SSH server for remote play

Examples:
  maze
  maze play --seed 42
  maze play --levels ./my-levels --count 3
  maze play --plain
  maze check ./my-levels
  maze serve --ssh :2222`,
	Run: runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	pf.StringVar(&flagLevelsDir, "levels", "", "Directory with level files (default: built-in campaign)")
	pf.StringVar(&flagPattern, "pattern", "", "Level file name pattern, e.g. level%d.txt")
	pf.IntVar(&flagCount, "count", 0, "Number of levels in the campaign")
	pf.IntVar(&flagStart, "start", 0, "Level to start from")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagDBPath, "db", "~/.maze/runs.db", "Path to run history database")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file (default: ~/.maze/maze.log, '-' for stderr)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
