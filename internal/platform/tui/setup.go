package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

// Setup is what every front end needs to start runs.
type Setup struct {
	Source        maze.LevelSource
	Config        config.MazeConfig
	Store         *storage.Store // optional, nil disables run history
	Logger        *log.Logger    // optional, nil discards
	Player        string         // name stored with each run
	ScreenshotDir string         // empty disables ctrl+s
}

func (s Setup) logger() *log.Logger {
	if s.Logger == nil {
		return log.New(io.Discard)
	}
	return s.Logger
}

// ControllerOptions translates configuration into controller options.
func ControllerOptions(cfg config.MazeConfig, seed int64) maze.Options {
	return maze.Options{
		MaxLevels:  cfg.Levels.Count,
		StartLevel: cfg.Levels.Start,
		Rules: maze.Rules{
			CollectiblePoints:   cfg.Scoring.CollectiblePoints,
			WanderAttempts:      cfg.Wanderers.MaxAttempts,
			InvalidAdvancesTurn: cfg.Rules.InvalidKeyAdvancesTurn,
		},
		KeepProgress: cfg.Rules.KeepProgressBetweenLevels,
		Seed:         seed,
	}
}

// resolveSeed picks a clock seed for 0.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// newController builds a controller for one run and loads its first level.
// A load failure leaves the controller aborted, which front ends display.
func (s Setup) newController(seed int64) (*maze.Controller, error) {
	ctrl, err := maze.NewController(s.Source, ControllerOptions(s.Config, seed), s.logger())
	if err != nil {
		return nil, err
	}
	_ = ctrl.Start()
	return ctrl, nil
}

// saveRun stores a finished run. Aborted or unfinished runs are not stored.
// Failures are logged; the game goes on without history.
func (s Setup) saveRun(r maze.Report, seed int64) {
	if s.Store == nil || !r.Phase.Finished() || r.Phase == maze.PhaseAborted {
		return
	}
	run, err := s.Store.SaveRun(storage.Run{
		Player:        s.Player,
		Outcome:       r.Outcome(),
		LevelReached:  r.Level,
		LevelsCleared: r.LevelsCleared,
		Score:         r.Score,
		Moves:         r.Moves,
		Seed:          seed,
	})
	if err != nil {
		s.logger().Warn("could not save run", "error", err)
		return
	}
	s.logger().Info("run saved", "run_id", run.RunID, "player", run.Player, "outcome", run.Outcome)
}

// clampScreen keeps a usable minimum size.
func clampScreen(rt core.RuntimeConfig) core.RuntimeConfig {
	def := core.DefaultConfig()
	if rt.ScreenW <= 0 {
		rt.ScreenW = def.ScreenW
	}
	if rt.ScreenH <= 0 {
		rt.ScreenH = def.ScreenH
	}
	return rt
}
