package maze

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// LevelData is one level as provided by a level source.
type LevelData struct {
	Number int
	Name   string // file or resource name, for messages
	Rows   []string
}

// LevelSource provides raw level rows by 1-based level number.
type LevelSource interface {
	Level(n int) (LevelData, error)
}

// InputSource blocks until the next command is available.
type InputSource interface {
	Next() (Command, error)
}

// Renderer draws a frame of the current run.
type Renderer interface {
	Render(v View) error
}

// Phase is where the controller stands in the level sequence.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseLevelCleared // won a level, next one not loaded yet
	PhaseVictory      // won the last level
	PhaseGameOver     // caught or quit
	PhaseAborted      // a level failed to load
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseLevelCleared:
		return "level_cleared"
	case PhaseVictory:
		return "victory"
	case PhaseGameOver:
		return "game_over"
	case PhaseAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Finished reports whether the run is over.
func (p Phase) Finished() bool {
	return p == PhaseVictory || p == PhaseGameOver || p == PhaseAborted
}

// ErrBadOptions is returned by NewController for unusable options.
var ErrBadOptions = errors.New("maze: invalid controller options")

// Options configure a run.
type Options struct {
	MaxLevels    int   // total levels in the campaign
	StartLevel   int   // first level to load, 1-based
	Rules        Rules // turn resolution constants
	KeepProgress bool  // carry score and moves into the next level
	Seed         int64 // fixes every wanderer's random source
}

// Report summarises a run at any point; it is final once the phase is
// finished.
type Report struct {
	Phase         Phase
	Reason        EndReason
	Level         int
	MaxLevels     int
	LevelsCleared int
	Score         int
	Moves         int
	Err           error
}

// Quit reports whether the run ended because the player quit.
func (r Report) Quit() bool {
	return r.Phase == PhaseGameOver && r.Reason == ReasonQuit
}

// Outcome returns a short stable label for storage and logs.
func (r Report) Outcome() string {
	switch {
	case r.Phase == PhaseVictory:
		return "victory"
	case r.Quit():
		return "quit"
	case r.Phase == PhaseGameOver:
		return "caught"
	case r.Phase == PhaseAborted:
		return "aborted"
	default:
		return "in_progress"
	}
}

// Controller sequences level sessions from the start level to the last one.
type Controller struct {
	source  LevelSource
	opts    Options
	engine  *Engine
	seeds   *rand.Rand
	logger  *log.Logger
	level   int
	cleared int
	session *Session
	phase   Phase
	err     error
}

// NewController validates opts and prepares a run. A nil logger discards.
func NewController(source LevelSource, opts Options, logger *log.Logger) (*Controller, error) {
	if source == nil {
		return nil, fmt.Errorf("%w: no level source", ErrBadOptions)
	}
	if opts.MaxLevels < 1 {
		return nil, fmt.Errorf("%w: max levels %d", ErrBadOptions, opts.MaxLevels)
	}
	if opts.StartLevel == 0 {
		opts.StartLevel = 1
	}
	if opts.StartLevel < 1 || opts.StartLevel > opts.MaxLevels {
		return nil, fmt.Errorf("%w: start level %d outside 1..%d", ErrBadOptions, opts.StartLevel, opts.MaxLevels)
	}
	if opts.Rules.WanderAttempts < 1 {
		return nil, fmt.Errorf("%w: wander attempts %d", ErrBadOptions, opts.Rules.WanderAttempts)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Controller{
		source: source,
		opts:   opts,
		engine: NewEngine(opts.Rules, logger),
		seeds:  rand.New(rand.NewSource(opts.Seed)),
		logger: logger,
		level:  opts.StartLevel,
	}, nil
}

// Start loads the first level.
func (c *Controller) Start() error {
	if c.phase != PhaseIdle {
		return nil
	}
	return c.load(c.opts.StartLevel)
}

// Handle feeds one command to the active level. On the level-cleared screen
// CmdQuit ends the run; other commands outside the playing phase are ignored.
func (c *Controller) Handle(cmd Command) TurnResult {
	if c.phase == PhaseLevelCleared && cmd == CmdQuit {
		c.quitCleared()
		return TurnResult{Command: cmd, Reason: ReasonQuit}
	}
	if c.phase != PhasePlaying {
		return TurnResult{Command: cmd}
	}

	res := c.engine.Turn(c.session, cmd)
	switch res.State {
	case StateWon:
		c.cleared++
		c.logger.Info("level cleared",
			"level", c.level,
			"score", c.session.player.score,
			"moves", c.session.player.moves,
		)
		if c.level < c.opts.MaxLevels {
			c.phase = PhaseLevelCleared
		} else {
			c.phase = PhaseVictory
			c.logFinish()
		}
	case StateLost:
		c.phase = PhaseGameOver
		c.logFinish()
	}
	return res
}

// quitCleared ends the run between levels. The cleared level still counts.
func (c *Controller) quitCleared() {
	c.session.reason = ReasonQuit
	c.phase = PhaseGameOver
	c.logFinish()
}

// Advance loads the next level after a cleared one. Calling it in any other
// phase is a no-op.
func (c *Controller) Advance() error {
	if c.phase != PhaseLevelCleared {
		return nil
	}
	return c.load(c.level + 1)
}

// load replaces the session with a fresh one for level n.
func (c *Controller) load(n int) error {
	data, err := c.source.Level(n)
	if err == nil {
		var layout *Layout
		layout, err = Load(data.Rows)
		if err == nil {
			c.install(n, data.Name, layout)
			return nil
		}
	}

	loadErr := &LoadError{Level: n, Source: data.Name, Err: err}
	var le *LoadError
	if errors.As(err, &le) {
		loadErr = le
	}
	c.level = n
	c.phase = PhaseAborted
	c.err = loadErr
	c.logger.Error("level load failed", "level", n, "error", err)
	return loadErr
}

// install swaps in a new session for level n.
func (c *Controller) install(n int, name string, layout *Layout) {
	var score, moves int
	if c.opts.KeepProgress && c.session != nil {
		score, moves = c.session.player.score, c.session.player.moves
	}

	session := NewSession(n, name, layout, c.seeds.Int63())
	session.carryProgress(score, moves)

	c.level = n
	c.session = session
	c.phase = PhasePlaying

	c.logger.Info("level loaded",
		"level", n,
		"source", name,
		"width", layout.Grid.Width(),
		"height", layout.Grid.Height(),
		"wanderers", len(layout.Wanderers),
		"collectibles", layout.Grid.Count(CellCollectible),
	)
	for _, w := range layout.Warnings {
		c.logger.Warn("level warning", "level", n, "source", name, "warning", w.Message)
	}
}

func (c *Controller) logFinish() {
	r := c.Report()
	c.logger.Info("run finished",
		"outcome", r.Outcome(),
		"level", r.Level,
		"score", r.Score,
		"moves", r.Moves,
	)
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Level returns the current level number.
func (c *Controller) Level() int {
	return c.level
}

// MaxLevels returns the configured level count.
func (c *Controller) MaxLevels() int {
	return c.opts.MaxLevels
}

// Session returns the active session, nil before the first load.
func (c *Controller) Session() *Session {
	return c.session
}

// Err returns the load error that aborted the run, if any.
func (c *Controller) Err() error {
	return c.err
}

// Report summarises the run so far.
func (c *Controller) Report() Report {
	r := Report{
		Phase:         c.phase,
		Level:         c.level,
		MaxLevels:     c.opts.MaxLevels,
		LevelsCleared: c.cleared,
		Err:           c.err,
	}
	if c.session != nil {
		r.Reason = c.session.reason
		r.Score = c.session.player.score
		r.Moves = c.session.player.moves
	}
	return r
}

// Run plays the whole campaign as a blocking loop: render, wait for a command,
// resolve, repeat. After a cleared level CmdQuit ends the run and any other
// command continues to the next.
// It returns the final report; the error is non-nil when a level failed to
// load or reading input failed.
func (c *Controller) Run(in InputSource, out Renderer) (Report, error) {
	if err := c.Start(); err != nil {
		return c.Report(), err
	}

	for {
		if err := out.Render(c.View()); err != nil {
			return c.Report(), fmt.Errorf("maze: render: %w", err)
		}

		switch c.phase {
		case PhaseVictory, PhaseGameOver:
			return c.Report(), nil
		case PhaseAborted:
			return c.Report(), c.err
		}

		cmd, err := in.Next()
		if err != nil {
			return c.Report(), fmt.Errorf("maze: read input: %w", err)
		}

		if c.phase == PhaseLevelCleared && cmd != CmdQuit {
			if err := c.Advance(); err != nil {
				_ = out.Render(c.View())
				return c.Report(), err
			}
			continue
		}
		c.Handle(cmd)
	}
}
