package farm

import "github.com/yarml/farmer/internal/world"

// Farmland is the cultivation overlay of a grass tile.
type Farmland struct {
	Stage   FarmStage
	Watered bool
}

// Tile is the farming record of one grass tile entity.
//
// A tile starts uninitialized, becomes arable once its arability is
// assigned, and is then either natural (Farmland == nil) or cultivated.
// Transitions that do not apply to the current state are no-ops and report
// false; none of them fail.
type Tile struct {
	Entity    world.Entity
	Coord     world.GridCoord
	Arability float64
	Arable    bool
	Farmland  *Farmland // nil = natural grass
	Index     int       // Atlas index rendered last tick
}

// NewTile creates an uninitialized tile showing sprite.
func NewTile(e world.Entity, c world.GridCoord, sprite int) *Tile {
	return &Tile{Entity: e, Coord: c, Index: sprite}
}

// Cultivated reports whether the tile carries farmland.
func (t *Tile) Cultivated() bool {
	return t.Farmland != nil
}

// AssignArability sets the tile's arability once. Later calls are ignored.
func (t *Tile) AssignArability(v float64) bool {
	if t.Arable {
		return false
	}
	t.Arability = v
	t.Arable = true
	return true
}

// Cultivate turns natural arable grass into empty, dry farmland.
func (t *Tile) Cultivate() bool {
	if !t.Arable || t.Farmland != nil {
		return false
	}
	t.Farmland = &Farmland{Stage: StageEmpty}
	return true
}

// Plant sows an empty plot.
func (t *Tile) Plant() bool {
	if t.Farmland == nil || t.Farmland.Stage != StageEmpty {
		return false
	}
	t.Farmland.Stage = StageSprout
	return true
}

// Advance moves a planted crop one growth stage forward.
func (t *Tile) Advance() bool {
	if t.Farmland == nil {
		return false
	}
	next := t.Farmland.Stage.Next()
	if next == t.Farmland.Stage {
		return false
	}
	t.Farmland.Stage = next
	return true
}

// Water marks farmland as watered. Natural grass is unaffected.
func (t *Tile) Water() bool {
	if t.Farmland == nil || t.Farmland.Watered {
		return false
	}
	t.Farmland.Watered = true
	return true
}

// Decultivate reverts the tile to natural grass, dropping any crop and
// watering.
func (t *Tile) Decultivate() bool {
	if t.Farmland == nil {
		return false
	}
	t.Farmland = nil
	return true
}

// Harvest collects a ripe crop, leaving the plot empty, and returns the
// yield: 1 plus up to 3 more for fertile soil. Unripe or natural tiles
// yield nothing.
func (t *Tile) Harvest() int {
	if t.Farmland == nil || t.Farmland.Stage != StageRipening {
		return 0
	}
	t.Farmland.Stage = StageEmpty
	return Yield(t.Arability)
}

// Yield returns the crops produced by a harvest on soil of arability a.
func Yield(a float64) int {
	if a < 0 {
		a = 0
	}
	return 1 + int(a*3)
}
