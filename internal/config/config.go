// Package config loads game configuration from YAML.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Game holds all configuration for a farming session.
type Game struct {
	// World
	Seed       int64   `yaml:"seed"`        // 0 = random per session
	NoiseScale float64 `yaml:"noise_scale"` // Tiles per noise unit
	LevelPath  string  `yaml:"level_path"`
	LevelIndex int     `yaml:"level_index"`

	// Simulation
	TPS       int           `yaml:"tps"`
	DayLength time.Duration `yaml:"day_length"`
	Workers   int           `yaml:"workers"`    // Derivation parallelism, 0 = GOMAXPROCS
	AutoSleep bool          `yaml:"auto_sleep"` // Headless runner sleeps as soon as evening comes

	// Journal (empty path disables it)
	JournalPath string `yaml:"journal_path"`

	// Presentation
	Scale    int    `yaml:"scale"`
	LogLevel string `yaml:"log_level"`
}

// Default returns Game config with sensible defaults.
func Default() Game {
	return Game{
		Seed:        0,
		NoiseScale:  256,
		LevelPath:   "assets/levels.ldtk",
		LevelIndex:  0,
		TPS:         60,
		DayLength:   240 * time.Second,
		Workers:     0,
		AutoSleep:   true,
		JournalPath: "data/journal.db",
		Scale:       3,
		LogLevel:    "info",
	}
}

// Load loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Game, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.TPS <= 0 {
		return cfg, fmt.Errorf("config %s: tps must be positive, got %d", path, cfg.TPS)
	}
	if cfg.DayLength <= 0 {
		return cfg, fmt.Errorf("config %s: day_length must be positive, got %s", path, cfg.DayLength)
	}

	return cfg, nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to Info.
func (g Game) SlogLevel() slog.Level {
	switch strings.ToLower(g.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
