package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tone-memory/internal/audio"
	"github.com/vovakirdan/tone-memory/internal/audio/speaker"
	"github.com/vovakirdan/tone-memory/internal/config"
	"github.com/vovakirdan/tone-memory/internal/memory"
	"github.com/vovakirdan/tone-memory/internal/platform/tui"
	"github.com/vovakirdan/tone-memory/internal/scene"
	"github.com/vovakirdan/tone-memory/internal/storage"
)

var (
	flagBoard      int
	flagTimeLimit  int
	flagDifficulty string
	flagMute       bool
	flagShowNotes  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Tone Memory",
	Long: `Start the game at the main menu.

Mouse:
  Click a board size, "Adjust time" or "Start" in the menu.
  Click cards to turn them over; two matching notes stay face up.
  Click "Pause" in the corner to freeze the timer, then "Menu" to give up.

Keys:
  Enter      - Start / confirm
  P, Space   - Pause or resume
  M, Esc     - Back to menu (while paused)
  +/-        - Change the time limit on the time screen
  Ctrl+S     - Save a text screenshot
  Q, Ctrl+C  - Quit

Difficulty presets:
  easy   - 120 s, mismatches stay visible for 800 ms
  normal - 60 s, 500 ms
  hard   - 30 s, 300 ms

Examples:
  tonememory play
  tonememory play --board 36 --time-limit 120
  tonememory play --difficulty hard --mute`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers play flags on cmd. The root command shares them
// because play is its default action.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagBoard, "board", 0, "Board size in cards: 16 or 36 (0 = from config)")
	cmd.Flags().IntVar(&flagTimeLimit, "time-limit", 0, "Time limit in seconds, 10..300 in steps of 10 (0 = from config)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	cmd.Flags().BoolVar(&flagShowNotes, "show-notes", false, "Print note names on revealed cards")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, err := newLogger("tonememory")
	if err != nil {
		return err
	}

	cfg, err := playConfig()
	if err != nil {
		return err
	}

	var player memory.TonePlayer = audio.Silent{}
	if cfg.Audio.Enabled {
		sp := speaker.New(audio.Tone{
			SampleRate: cfg.Audio.SampleRate,
			Duration:   cfg.Audio.Duration,
			Amplitude:  cfg.Audio.Amplitude,
		})
		if err := sp.Open(); err != nil {
			logger.Warn("sound unavailable, playing silently", "error", err)
		} else {
			defer sp.Close()
			player = sp
		}
	}

	// Open results storage; the game still works without it
	var saver tui.ResultSaver
	store, err := storage.Open(cfg.DatabasePath())
	if err != nil {
		logger.Warn("could not open results database", "error", err)
	} else {
		defer store.Close()
		saver = store
	}

	ctrl := scene.New(scene.Options{
		Metrics:  scene.TerminalMetrics(),
		Settings: sceneSettings(cfg),
		Player:   player,
		Recorder: tui.NewStoreRecorder(saver, logger, ""),
		Seed:     flagSeed,
	})

	// The TUI owns the terminal from here on; keep log lines out of the frame
	restore, err := logToFile(logger, config.UserPath(logFile), os.Stderr)
	if err != nil {
		logger.Warn("could not open log file, discarding game logs", "error", err)
		logger.SetOutput(io.Discard)
		defer logger.SetOutput(os.Stderr)
	} else {
		defer restore()
	}

	if err := tui.Run(ctrl, cfg.Timing.FPS); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// playConfig loads the config and applies play flag overrides.
func playConfig() (config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		if !preset.Valid() {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagBoard != 0 {
		cfg.Game.BoardSize = flagBoard
	}
	if flagTimeLimit != 0 {
		cfg.Game.TimeLimit = flagTimeLimit
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	if flagShowNotes {
		cfg.Display.ShowRevealedNotes = true
	}
	return cfg, cfg.Validate()
}

// sceneSettings maps the loaded config onto the menu defaults.
func sceneSettings(cfg config.Config) scene.Settings {
	return scene.Settings{
		BoardSize:         cfg.Game.BoardSize,
		TimeLimit:         cfg.Game.TimeLimit,
		MismatchDelay:     cfg.Timing.MismatchDelay,
		GameOverDelay:     cfg.Timing.GameOverDelay,
		ShowRevealedNotes: cfg.Display.ShowRevealedNotes,
	}
}
