// Package level loads the LDtk world asset and turns its worldmap layer
// into indexable tile entities.
package level

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/yarml/farmer/internal/world"
)

// DefaultSprite is the bare-grass atlas index used when a cell has no tile.
const DefaultSprite = 31

var (
	// ErrLevelNotFound is returned when the requested level index is absent.
	ErrLevelNotFound = errors.New("level not found")
	// ErrLayerNotFound is returned when the level has no worldmap layer.
	ErrLayerNotFound = errors.New("worldmap layer not found")
)

// Only the fields the loader reads are declared.
type ldtkProject struct {
	Levels []ldtkLevel `json:"levels"`
}

type ldtkLevel struct {
	Identifier     string          `json:"identifier"`
	LayerInstances []ldtkLayerInst `json:"layerInstances"`
}

type ldtkLayerInst struct {
	Identifier     string     `json:"__identifier"`
	Width          int        `json:"__cWid"`
	Height         int        `json:"__cHei"`
	GridSize       int        `json:"__gridSize"`
	IntGridCSV     []int      `json:"intGridCsv"`
	AutoLayerTiles []ldtkTile `json:"autoLayerTiles"`
	GridTiles      []ldtkTile `json:"gridTiles"`
}

type ldtkTile struct {
	Px [2]int `json:"px"`
	T  int    `json:"t"`
}

// Cell is one spawned tile entity.
type Cell struct {
	world.Entry
	Sprite int // Initial atlas index from the level's tile layer
}

// Level is a loaded worldmap layer.
type Level struct {
	Name   string
	Width  int
	Height int
	Cells  []Cell
}

// Entries returns the index entries for every cell.
func (l *Level) Entries() []world.Entry {
	out := make([]world.Entry, len(l.Cells))
	for i, c := range l.Cells {
		out[i] = c.Entry
	}
	return out
}

// Load reads the level at index from the LDtk project file at path.
func Load(path string, index int) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open level %s: %w", path, err)
	}
	defer f.Close()

	lvl, err := Parse(f, index)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", path, err)
	}
	return lvl, nil
}

// Parse decodes an LDtk project and extracts the worldmap layer of the
// level at index. Rows are flipped so that y grows upward, matching world
// positions. Entity handles are assigned in cell order starting at 1, so
// identical input always yields identical entries.
func Parse(r io.Reader, index int) (*Level, error) {
	var proj ldtkProject
	if err := json.NewDecoder(r).Decode(&proj); err != nil {
		return nil, fmt.Errorf("decode ldtk: %w", err)
	}
	if index < 0 || index >= len(proj.Levels) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrLevelNotFound, index, len(proj.Levels))
	}
	src := proj.Levels[index]

	var layer *ldtkLayerInst
	for i := range src.LayerInstances {
		if src.LayerInstances[i].Identifier == world.LayerName {
			layer = &src.LayerInstances[i]
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("%w: level %q", ErrLayerNotFound, src.Identifier)
	}
	if len(layer.IntGridCSV) != layer.Width*layer.Height {
		return nil, fmt.Errorf("worldmap layer: %d cells for %dx%d grid",
			len(layer.IntGridCSV), layer.Width, layer.Height)
	}

	sprites := spriteTable(layer)

	lvl := &Level{Name: src.Identifier, Width: layer.Width, Height: layer.Height}
	next := world.Entity(1)
	for i, code := range layer.IntGridCSV {
		if code == 0 {
			continue
		}
		tt, ok := world.TileTypeFromCode(code)
		if !ok {
			slog.Debug("skipping unknown worldmap code", "code", code, "cell", i)
			continue
		}
		col, row := i%layer.Width, i/layer.Width
		sprite, ok := sprites[i]
		if !ok {
			sprite = DefaultSprite
		}
		lvl.Cells = append(lvl.Cells, Cell{
			Entry: world.Entry{
				Coord:  world.GridCoord{X: col, Y: layer.Height - 1 - row},
				Entity: next,
				Type:   tt,
			},
			Sprite: sprite,
		})
		next++
	}

	return lvl, nil
}

// spriteTable maps cell index to the atlas index drawn there. Auto-layer
// tiles take precedence over hand-placed grid tiles.
func spriteTable(layer *ldtkLayerInst) map[int]int {
	sprites := make(map[int]int)
	if layer.GridSize <= 0 {
		return sprites
	}
	add := func(tiles []ldtkTile) {
		for _, t := range tiles {
			col, row := t.Px[0]/layer.GridSize, t.Px[1]/layer.GridSize
			if col < 0 || col >= layer.Width || row < 0 || row >= layer.Height {
				continue
			}
			sprites[row*layer.Width+col] = t.T
		}
	}
	add(layer.GridTiles)
	add(layer.AutoLayerTiles)
	return sprites
}
