package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Dir is the per-user directory holding config.yaml and results.db.
const Dir = ".tonememory"

// Load reads the configuration.
// Search order: customPath -> ~/.tonememory/config.yaml -> ./configs/tonememory.yaml -> embedded default.
//
// Files are decoded over Default(), so a file only needs the keys it changes.
// An explicit customPath that cannot be read or parsed is an error; the
// implicit locations are skipped when missing or broken.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Config{}, err
		}
		return finish(cfg)
	}

	candidates := []string{UserPath("config.yaml"), filepath.Join("configs", "tonememory.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return finish(cfg)
		}
	}

	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return finish(Default()) // Fallback to hardcoded if embed fails
	}
	return finish(cfg)
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func finish(cfg Config) (Config, error) {
	if cfg.Game.Difficulty != "" {
		ApplyPreset(&cfg, cfg.Game.Difficulty)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// UserPath returns ~/.tonememory/<filename>, or empty if home is unavailable.
func UserPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, Dir, filename)
}

// DatabasePath returns the configured results database, defaulting to
// ~/.tonememory/results.db.
func (c Config) DatabasePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	return UserPath("results.db")
}
