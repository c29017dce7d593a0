// tonememory is a musical memory-matching game for the terminal.
//
// Usage:
//
//	tonememory [play]        - Play (default command)
//	tonememory notes         - Print the note table
//	tonememory scores        - Show best times
//	tonememory serve         - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.tonememory/config.yaml, ./configs/tonememory.yaml)
//	--db <path>         - Results database (default: ~/.tonememory/results.db)
//	--fps <rate>        - Frame rate
//	--seed <value>      - RNG seed for reproducible decks
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tone-memory/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tonememory",
	Short: "Tone Memory - match pairs of cards by their sound",
	Long: `Tone Memory is a concentration game played with the mouse in your
terminal. Every card hides a musical note; turn two cards over, listen,
and find all the matching pairs before the timer runs out.

Available commands:
  play     - Start the game (default)
  notes    - Show the notes and their frequencies
  scores   - View best times
  serve    - Start SSH server for remote play

Examples:
  tonememory
  tonememory play --board 36 --time-limit 120
  tonememory scores --board 16
  tonememory serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (default ~/.tonememory/results.db)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the process logger from --log-level.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// logFile receives log output while the game screen is up.
const logFile = "tonememory.log"

// logToFile appends logger output to path until the returned func is called,
// which switches the logger back to restore and closes the file.
func logToFile(logger *log.Logger, path string, restore io.Writer) (func(), error) {
	if path == "" {
		return nil, fmt.Errorf("no home directory for %s", logFile)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	logger.SetOutput(f)
	return func() {
		logger.SetOutput(restore)
		_ = f.Close()
	}, nil
}

// loadConfig reads the config file and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagFPS > 0 {
		cfg.Timing.FPS = flagFPS
	}
	return cfg, cfg.Validate()
}
