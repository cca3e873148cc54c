package farm

import (
	"log/slog"

	"github.com/yarml/farmer/internal/world"
)

// Placement describes a grass tile entity created by the level.
type Placement struct {
	Entity world.Entity
	Coord  world.GridCoord
	Sprite int
}

// ArabilitySource supplies the static arability of a coordinate.
type ArabilitySource interface {
	Arability(x, y int) float64
}

// Field owns the farming records of every grass tile in the loaded level.
type Field struct {
	tiles map[world.Entity]*Tile
	order []*Tile // Spawn order, for deterministic passes
}

// NewField creates an empty field.
func NewField() *Field {
	return &Field{tiles: make(map[world.Entity]*Tile)}
}

// Spawn replaces the field's tiles with placements. Records for entities
// that persist at the same coordinate are kept, so respawning an identical
// level changes nothing; all others are dropped.
func (f *Field) Spawn(placements []Placement) {
	tiles := make(map[world.Entity]*Tile, len(placements))
	order := make([]*Tile, 0, len(placements))
	kept := 0

	for _, p := range placements {
		if _, dup := tiles[p.Entity]; dup {
			continue
		}
		t, ok := f.tiles[p.Entity]
		if ok && t.Coord == p.Coord {
			kept++
		} else {
			t = NewTile(p.Entity, p.Coord, p.Sprite)
		}
		tiles[p.Entity] = t
		order = append(order, t)
	}

	f.tiles = tiles
	f.order = order
	slog.Debug("field spawned", "tiles", len(order), "kept", kept)
}

// Get returns the tile record of entity e.
func (f *Field) Get(e world.Entity) (*Tile, bool) {
	t, ok := f.tiles[e]
	return t, ok
}

// Tiles returns every tile in spawn order. The slice must not be modified.
func (f *Field) Tiles() []*Tile {
	return f.order
}

// Len returns the number of tiles.
func (f *Field) Len() int {
	return len(f.order)
}

// AssignArability gives every uninitialized tile its arability and returns
// how many were assigned. Tiles that are already arable are skipped.
func (f *Field) AssignArability(src ArabilitySource) int {
	n := 0
	for _, t := range f.order {
		if t.Arable {
			continue
		}
		v := src.Arability(t.Coord.X, t.Coord.Y)
		t.AssignArability(v)
		slog.Debug("arability assigned", "x", t.Coord.X, "y", t.Coord.Y, "arability", v)
		n++
	}
	return n
}

// Grow runs the overnight growth step: every watered crop advances one
// stage and all farmland dries out. It returns the number of tiles that
// advanced.
func (f *Field) Grow() int {
	grown := 0
	for _, t := range f.order {
		if t.Farmland == nil || !t.Farmland.Watered {
			continue
		}
		if t.Advance() {
			grown++
		}
		t.Farmland.Watered = false
	}
	return grown
}

// Census counts tiles by farming state.
type Census struct {
	Tiles      int `json:"tiles"`
	Arable     int `json:"arable"`
	Cultivated int `json:"cultivated"`
	Planted    int `json:"planted"`
	Watered    int `json:"watered"`
	Ripening   int `json:"ripening"`
}

// Census returns the current tile counts.
func (f *Field) Census() Census {
	c := Census{Tiles: len(f.order)}
	for _, t := range f.order {
		if t.Arable {
			c.Arable++
		}
		if t.Farmland == nil {
			continue
		}
		c.Cultivated++
		if t.Farmland.Stage != StageEmpty {
			c.Planted++
		}
		if t.Farmland.Stage == StageRipening {
			c.Ripening++
		}
		if t.Farmland.Watered {
			c.Watered++
		}
	}
	return c
}
