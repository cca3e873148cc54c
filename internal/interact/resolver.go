// Package interact turns resolved player input into tool applications on
// the tile under the cursor.
package interact

import (
	"math"

	"github.com/yarml/farmer/internal/farm"
	"github.com/yarml/farmer/internal/tools"
	"github.com/yarml/farmer/internal/world"
)

// Input is one tick of already-polled player input.
type Input struct {
	// Cursor position in world units. Ignored unless HasCursor is set,
	// which the host clears when it has no window or camera this tick.
	CursorX, CursorY float64
	HasCursor        bool

	Primary   bool // Primary action button held
	Secondary bool // Secondary action button held
	CycleTool bool // Cycle key pressed this tick (edge, not level)
	Reverse   bool // Modifier held: cycle backward instead
	Sleep     bool // Sleep key pressed this tick
}

// Selection is the grass tile under the cursor.
type Selection struct {
	Coord world.GridCoord
	Tile  *farm.Tile
}

// Result reports what one Resolve call did.
type Result struct {
	Selection   *Selection
	Tool        tools.Tool // Tool in effect after any cycling
	Cycled      bool
	Activated   tools.Outcome
	Deactivated tools.Outcome
}

// Resolver tracks the cursor across ticks and applies tools.
type Resolver struct {
	cursorX, cursorY float64
	selection        *Selection
}

// NewResolver creates a resolver with the cursor at the world origin.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Cursor returns the last known cursor position.
func (r *Resolver) Cursor() (x, y float64) {
	return r.cursorX, r.cursorY
}

// Selected returns the tile selected by the last Resolve call.
func (r *Resolver) Selected() (*Selection, bool) {
	return r.selection, r.selection != nil
}

// Select looks up the grass tile under the current cursor. Any other tile
// type, or a coordinate outside the level, selects nothing.
func (r *Resolver) Select(idx *world.Index, field *farm.Field) *Selection {
	coord := world.CoordAt(r.cursorX, r.cursorY)
	e, ok := idx.Lookup(coord)
	if !ok || e.Type != world.TileGrass {
		return nil
	}
	tile, ok := field.Get(e.Entity)
	if !ok {
		return nil
	}
	return &Selection{Coord: coord, Tile: tile}
}

// Resolve applies one tick of input: the tool cycles at most once, then
// held buttons apply the selected tool to the selected tile once each.
func (r *Resolver) Resolve(in Input, idx *world.Index, field *farm.Field, sel *tools.Selector) Result {
	if in.HasCursor {
		r.cursorX, r.cursorY = in.CursorX, in.CursorY
	}

	var res Result
	if in.CycleTool {
		if in.Reverse {
			sel.CycleBackward()
		} else {
			sel.CycleForward()
		}
		res.Cycled = true
	}
	res.Tool = sel.Current()

	r.selection = r.Select(idx, field)
	res.Selection = r.selection
	if r.selection == nil {
		return res
	}

	if in.Primary {
		res.Activated = res.Tool.Activate(r.selection.Tile)
	}
	if in.Secondary {
		res.Deactivated = res.Tool.Deactivate(r.selection.Tile)
	}
	return res
}

// SelectorPos returns where the HUD draws the tile selector for the
// current cursor.
func (r *Resolver) SelectorPos() (x, y float64) {
	return math.Ceil(r.cursorX/world.TileSize)*world.TileSize - world.TileOffset,
		math.Ceil(r.cursorY/world.TileSize)*world.TileSize - world.TileOffset
}

// ArabilityPercent returns the selected tile's arability rounded to a whole
// percentage, for the HUD readout.
func (r *Resolver) ArabilityPercent() (int, bool) {
	if r.selection == nil || !r.selection.Tile.Arable {
		return 0, false
	}
	return int(math.Round(r.selection.Tile.Arability * 100)), true
}
