package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "farmer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
seed: 1234
level_path: levels/farm.ldtk
tps: 30
day_length: 2m
workers: 4
journal_path: ""
log_level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, "levels/farm.ldtk", cfg.LevelPath)
	assert.Equal(t, 30, cfg.TPS)
	assert.Equal(t, 2*time.Minute, cfg.DayLength)
	assert.Equal(t, 4, cfg.Workers)
	assert.Empty(t, cfg.JournalPath)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	// Untouched fields keep defaults.
	assert.Equal(t, 256.0, cfg.NoiseScale)
	assert.True(t, cfg.AutoSleep)
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, "seed: [unclosed"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "tps: 0"))
	assert.ErrorContains(t, err, "tps")

	_, err = Load(writeConfig(t, "day_length: -1s"))
	assert.ErrorContains(t, err, "day_length")
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, Game{LogLevel: in}.SlogLevel(), in)
	}
}
