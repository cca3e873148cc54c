package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/yarml/farmer/internal/farm"
	"github.com/yarml/farmer/internal/interact"
	"github.com/yarml/farmer/internal/level"
	"github.com/yarml/farmer/internal/tools"
	"github.com/yarml/farmer/internal/world"
)

// maxEvents bounds the event buffer between flushes.
const maxEvents = 1000

// Event is a notable occurrence in the session.
type Event struct {
	Tick        uint64 `json:"tick" db:"tick"`
	Description string `json:"description" db:"description"`
	Category    string `json:"category" db:"category"` // "level", "farm", "harvest", "day", "tool"
}

// SessionStats tracks aggregate farming statistics.
type SessionStats struct {
	farm.Census
	Day         int `json:"day"`
	Harvested   int `json:"harvested"`   // Crops collected this session
	Reverted    int `json:"reverted"`    // Tiles decultivated by the consistency guard
	LevelLoads  int `json:"level_loads"` // Level spawned notifications handled
	ShoreLength int `json:"shore_length"`
}

// SessionConfig holds per-session parameters.
type SessionConfig struct {
	Gen       world.GenConfig
	DayLength time.Duration
	Workers   int // Derivation parallelism (0 = GOMAXPROCS)
}

// Session is the explicit context of one game: every piece of shared
// state the passes need, held by reference.
type Session struct {
	Generator *world.Generator
	Index     *world.Index
	Field     *farm.Field
	Tools     *tools.Selector
	Resolver  *interact.Resolver
	Day       *DayCycle
	Shore     []world.GridCoord // Land tiles bordering water

	Events   []Event
	LastTick uint64
	Stats    SessionStats

	workers int
}

// NewSession creates a session with an empty world.
func NewSession(cfg SessionConfig) *Session {
	s := &Session{
		Generator: world.NewGenerator(cfg.Gen),
		Index:     world.NewIndex(),
		Field:     farm.NewField(),
		Tools:     tools.NewSelector(),
		Resolver:  interact.NewResolver(),
		Day:       NewDayCycle(cfg.DayLength),
		workers:   cfg.Workers,
	}
	s.updateStats()
	return s
}

// LevelSpawned handles the level loader's "fully spawned" notification:
// the spatial index is rebuilt from scratch and the field is resynced to
// the level's grass tiles. New tiles get their arability on the next Step.
func (s *Session) LevelSpawned(cells []level.Cell) {
	entries := make([]world.Entry, len(cells))
	var grass []farm.Placement
	for i, c := range cells {
		entries[i] = c.Entry
		if c.Type == world.TileGrass {
			grass = append(grass, farm.Placement{Entity: c.Entity, Coord: c.Coord, Sprite: c.Sprite})
		}
	}

	s.Index.Rebuild(entries)
	s.Field.Spawn(grass)
	s.Stats.LevelLoads++

	s.record("level", fmt.Sprintf("level spawned: %d tiles, %d grass", len(entries), len(grass)))
	slog.Info("level spawned", "tiles", len(entries), "grass", len(grass), "index_version", s.Index.Version())
}

// LevelTransformed recomputes the shoreline after the level's transforms
// are final.
func (s *Session) LevelTransformed() {
	s.Shore = world.WaterBoundary(s.Index)
	s.Stats.ShoreLength = len(s.Shore)
	slog.Debug("shoreline computed", "tiles", len(s.Shore))
}

// Step runs one tick. Pass order: arability generation, interaction,
// day cycle, then atlas derivation, so newly spawned tiles are arable
// before anything selects or renders them.
func (s *Session) Step(tick uint64, dt time.Duration, in interact.Input) interact.Result {
	s.LastTick = tick

	if n := s.Field.AssignArability(s.Generator); n > 0 {
		slog.Info("arability generated", "tiles", n, "seed", s.Generator.Seed())
	}

	res := s.Resolver.Resolve(in, s.Index, s.Field, s.Tools)
	s.recordInteraction(res)

	if in.Sleep {
		s.Day.Sleep()
	}
	if s.Day.Advance(dt) {
		grown := s.Field.Grow()
		s.record("day", fmt.Sprintf("day %d began, %d crops grew", s.Day.Day, grown))
	}

	if reverted := s.Field.Refresh(s.workers); reverted > 0 {
		s.Stats.Reverted += reverted
		s.record("farm", fmt.Sprintf("%d inconsistent plots reverted to grass", reverted))
	}

	return res
}

func (s *Session) recordInteraction(res interact.Result) {
	if res.Cycled {
		s.record("tool", "selected "+res.Tool.Name())
	}
	if res.Selection == nil {
		return
	}
	c := res.Selection.Coord
	if res.Activated.Changed {
		if res.Activated.Yield > 0 {
			s.Stats.Harvested += res.Activated.Yield
			s.record("harvest", fmt.Sprintf("harvested %d at (%d,%d)", res.Activated.Yield, c.X, c.Y))
		} else {
			s.record("farm", fmt.Sprintf("%s at (%d,%d)", res.Tool.Name(), c.X, c.Y))
		}
	}
	if res.Deactivated.Changed {
		s.record("farm", fmt.Sprintf("decultivate at (%d,%d)", c.X, c.Y))
	}
}

func (s *Session) record(category, desc string) {
	s.Events = append(s.Events, Event{Tick: s.LastTick, Description: desc, Category: category})
	// Trim old events to prevent unbounded growth.
	if len(s.Events) > maxEvents {
		s.Events = s.Events[len(s.Events)-maxEvents:]
	}
}

// DrainEvents returns buffered events and clears the buffer.
func (s *Session) DrainEvents() []Event {
	out := s.Events
	s.Events = nil
	return out
}

// Report refreshes and returns the session statistics.
func (s *Session) Report() SessionStats {
	s.updateStats()
	return s.Stats
}

func (s *Session) updateStats() {
	s.Stats.Census = s.Field.Census()
	s.Stats.Day = s.Day.Day
}
