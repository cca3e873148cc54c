//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/yarml/farmer/internal/app"
	"github.com/yarml/farmer/internal/config"
	"github.com/yarml/farmer/internal/engine"
	"github.com/yarml/farmer/internal/level"
	"github.com/yarml/farmer/internal/world"
)

func main() {
	configPath := flag.String("config", "farmer.yaml", "path to YAML config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	lvl, err := level.Load(cfg.LevelPath, cfg.LevelIndex)
	if err != nil {
		slog.Error("failed to load level", "error", err)
		os.Exit(1)
	}

	sess := engine.NewSession(engine.SessionConfig{
		Gen:       world.GenConfig{Seed: cfg.Seed, Scale: cfg.NoiseScale},
		DayLength: cfg.DayLength,
		Workers:   cfg.Workers,
	})
	sess.LevelSpawned(lvl.Cells)
	sess.LevelTransformed()

	game := app.New(sess, lvl.Width, lvl.Height, cfg.Scale, cfg.TPS)

	ebiten.SetWindowTitle("Farmer")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowSize(lvl.Width*int(world.TileSize)*cfg.Scale, lvl.Height*int(world.TileSize)*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("game exited", "error", err)
		os.Exit(1)
	}
}
