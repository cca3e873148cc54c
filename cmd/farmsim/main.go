// Command farmsim runs a farming session headless: the level is loaded,
// the clock runs, crops grow overnight, and events go to the journal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/yarml/farmer/internal/config"
	"github.com/yarml/farmer/internal/engine"
	"github.com/yarml/farmer/internal/interact"
	"github.com/yarml/farmer/internal/journal"
	"github.com/yarml/farmer/internal/level"
	"github.com/yarml/farmer/internal/world"
)

func main() {
	configPath := flag.String("config", "farmer.yaml", "path to YAML config")
	maxTicks := flag.Uint64("ticks", 0, "stop after this many ticks (0 = run until interrupted)")
	speed := flag.Float64("speed", 1, "simulation speed multiplier")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// ── Level ─────────────────────────────────────────────────────────
	lvl, err := level.Load(cfg.LevelPath, cfg.LevelIndex)
	if err != nil {
		slog.Error("failed to load level", "error", err)
		os.Exit(1)
	}
	slog.Info("level loaded", "name", lvl.Name, "width", lvl.Width, "height", lvl.Height, "cells", len(lvl.Cells))

	// ── Session ───────────────────────────────────────────────────────
	sess := engine.NewSession(engine.SessionConfig{
		Gen:       world.GenConfig{Seed: cfg.Seed, Scale: cfg.NoiseScale},
		DayLength: cfg.DayLength,
		Workers:   cfg.Workers,
	})
	sess.LevelSpawned(lvl.Cells)
	sess.LevelTransformed()

	for t, c := range sess.Index.TypeCounts() {
		slog.Info("terrain", "type", t, "count", c)
	}
	slog.Info("session ready", "seed", sess.Generator.Seed(), "shore", len(sess.Shore))

	// ── Journal ───────────────────────────────────────────────────────
	var db *journal.DB
	var sessionID int64
	if cfg.JournalPath != "" {
		os.MkdirAll(filepath.Dir(cfg.JournalPath), 0755)
		db, err = journal.Open(cfg.JournalPath)
		if err != nil {
			slog.Error("failed to open journal", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		sessionID, err = db.StartSession(sess.Generator.Seed(), lvl.Name)
		if err != nil {
			slog.Error("failed to start journal session", "error", err)
			os.Exit(1)
		}
		slog.Info("journal opened", "path", cfg.JournalPath, "session", sessionID)
	}

	flush := func() {
		if db == nil {
			sess.DrainEvents()
			return
		}
		if err := db.Flush(sessionID, sess); err != nil {
			slog.Error("journal flush failed", "error", err)
		}
	}

	// ── Engine ────────────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eng := engine.NewEngine(cfg.TPS)
	eng.Speed = *speed
	eng.OnTick = func(tick uint64, dt time.Duration) {
		day := sess.Day.Day
		in := interact.Input{Sleep: cfg.AutoSleep && sess.Day.Mode == engine.ModePending}
		sess.Step(tick, dt, in)

		if sess.Day.Day != day {
			report(sess)
			flush()
		}
		if *maxTicks > 0 && tick >= *maxTicks {
			eng.Stop()
		}
	}

	fmt.Printf("\nFarm is alive: %d grass tiles on a %dx%d map.\n", sess.Field.Len(), lvl.Width, lvl.Height)
	fmt.Println("Starting simulation... (Ctrl+C to stop)")

	eng.Run(ctx)

	report(sess)
	flush()
	fmt.Println("Simulation stopped.")
}

func report(sess *engine.Session) {
	st := sess.Report()
	slog.Info("daily report",
		"clock", sess.Day.Clock(),
		"tiles", st.Tiles,
		"arable", st.Arable,
		"cultivated", st.Cultivated,
		"planted", st.Planted,
		"ripening", st.Ripening,
		"harvested", st.Harvested,
		"reverted", st.Reverted,
	)
}
