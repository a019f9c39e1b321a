package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/maze/levels"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

// overrides are the command-line values that win over the config file.
type overrides struct {
	levelsDir  *string
	pattern    *string
	count      *int
	start      *int
	difficulty string
}

// collectOverrides keeps only the flags the user actually set.
func collectOverrides(cmd *cobra.Command) overrides {
	var o overrides
	flags := cmd.Flags()
	if flags.Changed("levels") {
		o.levelsDir = &flagLevelsDir
	}
	if flags.Changed("pattern") {
		o.pattern = &flagPattern
	}
	if flags.Changed("count") {
		o.count = &flagCount
	}
	if flags.Changed("start") {
		o.start = &flagStart
	}
	o.difficulty = flagDifficulty
	return o
}

// resolveConfig loads the config file and applies flag overrides.
func resolveConfig(path string, o overrides) (config.MazeConfig, error) {
	cfg, err := config.LoadMaze(path)
	if err != nil {
		return cfg, err
	}

	if o.levelsDir != nil {
		cfg.Levels.Dir = *o.levelsDir
	}
	if o.pattern != nil {
		cfg.Levels.Pattern = *o.pattern
	}
	if o.count != nil {
		cfg.Levels.Count = *o.count
	}
	if o.start != nil {
		cfg.Levels.Start = *o.start
	}

	preset, err := config.ParsePreset(o.difficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyMazePreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// levelSource returns the directory source or the embedded campaign.
func levelSource(cfg config.MazeConfig) *levels.Dir {
	if cfg.Levels.Dir == "" {
		return levels.Embedded()
	}
	return levels.NewDir(expandHome(cfg.Levels.Dir), cfg.Levels.Pattern)
}

// newLogger builds the logger. Interactive commands log to a file because
// the terminal belongs to the game; "-" logs to stderr.
func newLogger(path, level string, defaultStderr bool) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer
	)
	if path == "" && !defaultStderr {
		if dir := config.UserDir(); dir != "" {
			path = filepath.Join(dir, "maze.log")
		}
	}
	if path != "" && path != "-" {
		path = expandHome(path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "maze",
		Level:           lvl,
	})
	return logger, closer, nil
}

// openStore opens the run history. A failure is a warning: the game still
// runs without history.
func openStore(path string, logger *log.Logger) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		logger.Warn("could not open run database", "path", path, "error", err)
		return nil
	}
	return store
}

// playerName defaults to the login name.
func playerName(flag string) string {
	if flag != "" {
		return flag
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}

// env is everything a command needs; close releases it.
type env struct {
	setup  tui.Setup
	logger *log.Logger
	closer io.Closer
}

func (e env) close() {
	if e.setup.Store != nil {
		e.setup.Store.Close()
	}
	if e.closer != nil {
		e.closer.Close()
	}
}

// loadEnv wires config, level source, logger and store for a command.
// withStore opens the run database.
func loadEnv(cmd *cobra.Command, player string, withStore, logToStderr bool) (env, error) {
	cfg, err := resolveConfig(flagConfig, collectOverrides(cmd))
	if err != nil {
		return env{}, err
	}

	logger, closer, err := newLogger(flagLogFile, flagLogLevel, logToStderr)
	if err != nil {
		return env{}, err
	}

	e := env{
		setup: tui.Setup{
			Source: levelSource(cfg),
			Config: cfg,
			Logger: logger,
			Player: playerName(player),
		},
		logger: logger,
		closer: closer,
	}
	if dir := config.UserDir(); dir != "" {
		e.setup.ScreenshotDir = filepath.Join(dir, "screenshots")
	}
	if withStore {
		e.setup.Store = openStore(flagDBPath, logger)
	}
	return e, nil
}

// expandHome expands a leading ~ to the home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// exitOnError prints err and exits with status 1.
func exitOnError(prefix string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", prefix, err)
	os.Exit(1)
}

// printReport prints the end-of-run summary after the screen closes.
func printReport(r maze.Report) {
	switch r.Outcome() {
	case "victory":
		fmt.Printf("Congratulations! You beat the game! Final Score: %d, Total Moves: %d\n", r.Score, r.Moves)
	case "caught", "quit":
		fmt.Printf("GAME OVER on level %d. Final Score: %d, Moves: %d\n", r.Level, r.Score, r.Moves)
	}
}
