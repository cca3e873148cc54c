// Package world provides the tile grid, terrain generation, and the
// coordinate-keyed spatial index of level entities.
// Coordinates are y-up grid cells; one cell is TileSize world units wide.
package world

import "math"

// Tile-to-world mapping used by the level and the cursor.
const (
	TileSize   = 16.0 // World units per tile edge
	TileOffset = 8.0  // World position of a tile's center relative to its corner
)

// GridCoord identifies exactly one tile cell.
type GridCoord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Entity is an opaque handle to a tile entity created by the level loader.
type Entity uint32

// NeighborDirections defines the four axis-aligned neighbor offsets.
var NeighborDirections = [4]GridCoord{
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
}

// Neighbors returns the four axis-aligned adjacent coordinates.
func (c GridCoord) Neighbors() [4]GridCoord {
	var result [4]GridCoord
	for i, dir := range NeighborDirections {
		result[i] = GridCoord{X: c.X + dir.X, Y: c.Y + dir.Y}
	}
	return result
}

// Add returns c offset by d.
func (c GridCoord) Add(d GridCoord) GridCoord {
	return GridCoord{X: c.X + d.X, Y: c.Y + d.Y}
}

// CoordAt resolves a world position to the tile containing it:
// round((p - TileOffset) / TileSize) on each axis.
func CoordAt(x, y float64) GridCoord {
	return GridCoord{
		X: int(math.Round((x - TileOffset) / TileSize)),
		Y: int(math.Round((y - TileOffset) / TileSize)),
	}
}

// WorldPos returns the world position of the tile's center.
func (c GridCoord) WorldPos() (x, y float64) {
	return float64(c.X)*TileSize + TileOffset, float64(c.Y)*TileSize + TileOffset
}

// Distance returns the Manhattan distance between two coordinates.
func Distance(a, b GridCoord) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
