package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the accepted preset names in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalidConfig, s)
	}
}

// ApplyMazePreset modifies the config based on a difficulty preset.
//
// Wanderer attempts control how often enemies actually move: with one draw
// an enemy facing walls on three sides mostly stands still. Hard also makes
// every keypress cost a turn.
func ApplyMazePreset(cfg *MazeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Wanderers.MaxAttempts = 1
		cfg.Rules.InvalidKeyAdvancesTurn = false
	case DifficultyHard:
		cfg.Wanderers.MaxAttempts = 20
		cfg.Rules.InvalidKeyAdvancesTurn = true
	}
}
