package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the default maze configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Levels: LevelsConfig{
			Pattern: "level%d.txt",
			Count:   6,
			Start:   1,
		},
		Scoring: ScoringConfig{
			CollectiblePoints: 10,
		},
		Wanderers: WanderersConfig{
			MaxAttempts: 10,
		},
		Display: DisplayConfig{
			DoubleWidth:       true,
			LevelClearDelayMS: 2000,
		},
	}
}
