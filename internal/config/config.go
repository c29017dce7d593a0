// Package config provides YAML-based settings loading for the game: board
// and timer defaults, difficulty presets, audio, storage and the SSH server.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains every setting the game reads at startup.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Timing  TimingConfig  `yaml:"timing"`
	Audio   AudioConfig   `yaml:"audio"`
	Display DisplayConfig `yaml:"display"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
}

// GameConfig is the initial menu selection.
type GameConfig struct {
	BoardSize  int              `yaml:"board_size"` // 16 or 36
	TimeLimit  int              `yaml:"time_limit"` // seconds, 10..300 in steps of 10
	Difficulty DifficultyPreset `yaml:"difficulty"` // overrides time_limit and mismatch_delay when set
}

// TimingConfig holds presentation delays and the frame rate.
type TimingConfig struct {
	MismatchDelay time.Duration `yaml:"mismatch_delay"`
	GameOverDelay time.Duration `yaml:"game_over_delay"`
	FPS           int           `yaml:"fps"`
}

// AudioConfig shapes the card tones.
type AudioConfig struct {
	Enabled    bool          `yaml:"enabled"`
	SampleRate int           `yaml:"sample_rate"`
	Duration   time.Duration `yaml:"duration"`
	Amplitude  float64       `yaml:"amplitude"`
}

// DisplayConfig controls what the board shows.
type DisplayConfig struct {
	ShowRevealedNotes bool `yaml:"show_revealed_notes"` // print the note on revealed, unmatched cards
}

// StorageConfig locates the results database. Empty path means
// ~/.tonememory/results.db.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig configures `tonememory serve`.
type ServerConfig struct {
	Addr    string `yaml:"addr"`
	HostKey string `yaml:"host_key"`
}

// Allowed ranges.
const (
	MinTimeLimit = 10
	MaxTimeLimit = 300
	TimeStep     = 10
	MaxFPS       = 120
)

// Validate reports every out-of-range value.
func (c Config) Validate() error {
	var errs []error

	if c.Game.BoardSize != 16 && c.Game.BoardSize != 36 {
		errs = append(errs, fmt.Errorf("game.board_size must be 16 or 36, got %d", c.Game.BoardSize))
	}
	if c.Game.TimeLimit < MinTimeLimit || c.Game.TimeLimit > MaxTimeLimit || c.Game.TimeLimit%TimeStep != 0 {
		errs = append(errs, fmt.Errorf("game.time_limit must be a multiple of %d in [%d, %d], got %d",
			TimeStep, MinTimeLimit, MaxTimeLimit, c.Game.TimeLimit))
	}
	if c.Game.Difficulty != "" && !c.Game.Difficulty.Valid() {
		errs = append(errs, fmt.Errorf("game.difficulty %q is not one of easy, normal, hard", c.Game.Difficulty))
	}
	if c.Timing.MismatchDelay <= 0 {
		errs = append(errs, fmt.Errorf("timing.mismatch_delay must be positive, got %s", c.Timing.MismatchDelay))
	}
	if c.Timing.GameOverDelay <= 0 {
		errs = append(errs, fmt.Errorf("timing.game_over_delay must be positive, got %s", c.Timing.GameOverDelay))
	}
	if c.Timing.FPS <= 0 || c.Timing.FPS > MaxFPS {
		errs = append(errs, fmt.Errorf("timing.fps must be in [1, %d], got %d", MaxFPS, c.Timing.FPS))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate))
	}
	if c.Audio.Duration <= 0 {
		errs = append(errs, fmt.Errorf("audio.duration must be positive, got %s", c.Audio.Duration))
	}
	if c.Audio.Amplitude < 0 || c.Audio.Amplitude > 1 {
		errs = append(errs, fmt.Errorf("audio.amplitude must be in [0, 1], got %v", c.Audio.Amplitude))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
