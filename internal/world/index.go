package world

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// Entry is one indexed tile: the entity at a coordinate and its type.
type Entry struct {
	Coord  GridCoord
	Entity Entity
	Type   TileType
}

// IndexEntry is the value stored per coordinate.
type IndexEntry struct {
	Entity Entity
	Type   TileType
}

// snapshot is an immutable view of the index. Readers hold one for the
// duration of a query; Rebuild swaps in a new one.
type snapshot struct {
	version uint64
	tiles   map[GridCoord]IndexEntry
}

// Index maps grid coordinates to tile entities. It is authoritative only
// between level loads: every Rebuild replaces the whole mapping, so lookups
// observe either the old or the new level, never a mix.
type Index struct {
	current atomic.Pointer[snapshot]
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	idx := &Index{}
	idx.current.Store(&snapshot{tiles: map[GridCoord]IndexEntry{}})
	return idx
}

// Rebuild atomically replaces the index with entries. If a coordinate
// appears more than once, the last entry wins.
func (idx *Index) Rebuild(entries []Entry) {
	next := &snapshot{
		version: idx.current.Load().version + 1,
		tiles:   make(map[GridCoord]IndexEntry, len(entries)),
	}
	for _, e := range entries {
		next.tiles[e.Coord] = IndexEntry{Entity: e.Entity, Type: e.Type}
	}
	idx.current.Store(next)
}

// Lookup returns the entry at coord, if any.
func (idx *Index) Lookup(coord GridCoord) (IndexEntry, bool) {
	e, ok := idx.current.Load().tiles[coord]
	return e, ok
}

// Version returns the number of rebuilds applied so far.
func (idx *Index) Version() uint64 {
	return idx.current.Load().version
}

// Len returns the number of indexed tiles.
func (idx *Index) Len() int {
	return len(idx.current.Load().tiles)
}

// Entries returns every indexed tile in row-major order (y, then x).
func (idx *Index) Entries() []Entry {
	snap := idx.current.Load()
	out := make([]Entry, 0, len(snap.tiles))
	for c, e := range snap.tiles {
		out = append(out, Entry{Coord: c, Entity: e.Entity, Type: e.Type})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Coord.Y != out[j].Coord.Y {
			return out[i].Coord.Y < out[j].Coord.Y
		}
		return out[i].Coord.X < out[j].Coord.X
	})
	return out
}

// TypeCounts returns a summary of tile type distribution.
func (idx *Index) TypeCounts() map[TileType]int {
	counts := make(map[TileType]int)
	for _, e := range idx.current.Load().tiles {
		counts[e.Type]++
	}
	return counts
}

// String returns a summary of the index.
func (idx *Index) String() string {
	snap := idx.current.Load()
	return fmt.Sprintf("Index(version=%d, tiles=%d)", snap.version, len(snap.tiles))
}
