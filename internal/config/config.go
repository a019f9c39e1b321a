// Package config provides YAML-based configuration loading and difficulty
// presets for the maze game.
package config

import (
	"errors"
	"fmt"
)

// MazeConfig contains all configuration for the maze game.
type MazeConfig struct {
	Levels    LevelsConfig    `yaml:"levels"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Wanderers WanderersConfig `yaml:"wanderers"`
	Rules     RulesConfig     `yaml:"rules"`
	Display   DisplayConfig   `yaml:"display"`
}

// LevelsConfig selects where levels come from and how many there are.
type LevelsConfig struct {
	Dir     string `yaml:"dir"`     // empty = embedded campaign
	Pattern string `yaml:"pattern"` // fmt pattern, e.g. level%d.txt
	Count   int    `yaml:"count"`
	Start   int    `yaml:"start"`
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	CollectiblePoints int `yaml:"collectible_points"`
}

// WanderersConfig defines enemy movement parameters.
type WanderersConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // random draws per turn before staying put
}

// RulesConfig toggles optional rule variants.
type RulesConfig struct {
	InvalidKeyAdvancesTurn    bool `yaml:"invalid_key_advances_turn"`
	KeepProgressBetweenLevels bool `yaml:"keep_progress_between_levels"`
}

// DisplayConfig defines how the board is drawn.
type DisplayConfig struct {
	DoubleWidth       bool `yaml:"double_width"`
	LevelClearDelayMS int  `yaml:"level_clear_delay_ms"` // 0 = wait for a key
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid maze config")

// Validate checks values that would make a run impossible.
func (c MazeConfig) Validate() error {
	switch {
	case c.Levels.Count < 1:
		return fmt.Errorf("%w: levels.count must be at least 1, got %d", ErrInvalidConfig, c.Levels.Count)
	case c.Levels.Start < 1 || c.Levels.Start > c.Levels.Count:
		return fmt.Errorf("%w: levels.start must be in 1..%d, got %d", ErrInvalidConfig, c.Levels.Count, c.Levels.Start)
	case c.Scoring.CollectiblePoints < 0:
		return fmt.Errorf("%w: scoring.collectible_points must not be negative, got %d", ErrInvalidConfig, c.Scoring.CollectiblePoints)
	case c.Wanderers.MaxAttempts < 1:
		return fmt.Errorf("%w: wanderers.max_attempts must be at least 1, got %d", ErrInvalidConfig, c.Wanderers.MaxAttempts)
	case c.Display.LevelClearDelayMS < 0:
		return fmt.Errorf("%w: display.level_clear_delay_ms must not be negative, got %d", ErrInvalidConfig, c.Display.LevelClearDelayMS)
	}
	return nil
}
