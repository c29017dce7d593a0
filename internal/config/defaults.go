package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tonememory.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			BoardSize: 16,
			TimeLimit: 60,
		},
		Timing: TimingConfig{
			MismatchDelay: 500 * time.Millisecond,
			GameOverDelay: 2 * time.Second,
			FPS:           30,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Duration:   time.Second,
			Amplitude:  0.5,
		},
		Server: ServerConfig{
			Addr: ":23235",
		},
	}
}
