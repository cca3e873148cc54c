package farm

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/yarml/farmer/internal/world"
)

// minChunk keeps small fields on a single goroutine.
const minChunk = 256

// Change is a state update produced by the derivation pass.
type Change struct {
	Entity      world.Entity
	Index       int
	Decultivate bool
}

// DeriveAll evaluates Derive for every tile using up to workers goroutines
// (0 = GOMAXPROCS). It only reads the tiles; changes are returned in tile
// order for Apply. Tiles whose index is unchanged and need no
// decultivation produce no Change.
func DeriveAll(tiles []*Tile, workers int) []Change {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := (len(tiles) + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}

	parts := make([][]Change, (len(tiles)+chunk-1)/chunk)
	var g errgroup.Group
	g.SetLimit(workers)
	for i := range parts {
		i := i
		lo := i * chunk
		hi := min(lo+chunk, len(tiles))
		g.Go(func() error {
			parts[i] = deriveRange(tiles[lo:hi])
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	var out []Change
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func deriveRange(tiles []*Tile) []Change {
	var out []Change
	for _, t := range tiles {
		index, decultivate := Derive(t.Farmland, t.Index)
		if index == t.Index && !decultivate {
			continue
		}
		out = append(out, Change{Entity: t.Entity, Index: index, Decultivate: decultivate})
	}
	return out
}

// Apply writes derivation results back to the field and returns the
// number of tiles that were decultivated.
func (f *Field) Apply(changes []Change) int {
	reverted := 0
	for _, c := range changes {
		t, ok := f.tiles[c.Entity]
		if !ok {
			continue
		}
		if c.Decultivate && t.Decultivate() {
			reverted++
		}
		t.Index = c.Index
	}
	return reverted
}

// Refresh recomputes every tile's atlas index: a parallel read-only
// derivation followed by a single-threaded apply.
func (f *Field) Refresh(workers int) int {
	return f.Apply(DeriveAll(f.order, workers))
}
