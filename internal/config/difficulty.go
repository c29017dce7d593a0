package config

import "time"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Valid reports whether p names a known preset.
func (p DifficultyPreset) Valid() bool {
	switch p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// ApplyPreset sets the time limit and mismatch delay for a preset. Harder
// presets give less time and hide mismatched cards sooner. Unknown presets
// leave cfg unchanged.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Game.TimeLimit = 120
		cfg.Timing.MismatchDelay = 800 * time.Millisecond
	case DifficultyNormal:
		cfg.Game.TimeLimit = 60
		cfg.Timing.MismatchDelay = 500 * time.Millisecond
	case DifficultyHard:
		cfg.Game.TimeLimit = 30
		cfg.Timing.MismatchDelay = 300 * time.Millisecond
	default:
		return
	}
	cfg.Game.Difficulty = preset
}
