// Package engine provides the fixed-tick simulation loop and the session
// that runs the farming passes each tick.
package engine

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// DefaultTPS is the simulation rate when none is configured.
const DefaultTPS = 60

// Engine drives a session forward at a fixed tick rate.
type Engine struct {
	Tick     uint64        // Current tick counter (monotonic, never resets)
	Speed    float64       // Multiplier: 1.0 = real-time, 0 = paused
	Interval time.Duration // Simulated time per tick
	running  atomic.Bool

	// Called once per tick with the fixed simulated step.
	OnTick func(tick uint64, dt time.Duration)
}

// NewEngine creates an engine running at tps ticks per second.
func NewEngine(tps int) *Engine {
	if tps <= 0 {
		tps = DefaultTPS
	}
	return &Engine{
		Speed:    1.0,
		Interval: time.Second / time.Duration(tps),
	}
}

// Run starts the simulation loop. Blocks until ctx is done or Stop is called.
func (e *Engine) Run(ctx context.Context) {
	e.running.Store(true)
	slog.Info("simulation engine started", "tick", e.Tick, "speed", e.Speed, "interval", e.Interval)

	for e.running.Load() && ctx.Err() == nil {
		if e.Speed <= 0 {
			// Paused — sleep briefly and check again.
			sleepCtx(ctx, 100*time.Millisecond)
			continue
		}

		start := time.Now()

		e.Step()

		// Sleep for the remainder of the tick interval, adjusted for speed.
		elapsed := time.Since(start)
		target := time.Duration(float64(e.Interval) / e.Speed)
		if elapsed < target {
			sleepCtx(ctx, target-elapsed)
		}
	}

	e.running.Store(false)
	slog.Info("simulation engine stopped", "tick", e.Tick)
}

// Running reports whether Run is looping.
func (e *Engine) Running() bool {
	return e.running.Load()
}

// Stop halts the simulation loop after the current tick.
func (e *Engine) Stop() {
	e.running.Store(false)
}

// Step advances the simulation by one tick.
func (e *Engine) Step() {
	e.Tick++
	if e.OnTick != nil {
		e.OnTick(e.Tick, e.Interval)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
