package world

import "sort"

// WaterBoundary returns the land tiles that have at least one water tile
// among their four neighbours, in row-major order. The host turns these into
// shoreline colliders after the level is transformed.
func WaterBoundary(idx *Index) []GridCoord {
	snap := idx.current.Load()

	var shore []GridCoord
	for coord, e := range snap.tiles {
		if e.Type == TileWater {
			continue
		}
		for _, neighbor := range coord.Neighbors() {
			ne, ok := snap.tiles[neighbor]
			if ok && ne.Type == TileWater {
				shore = append(shore, coord)
				break
			}
		}
	}

	sort.Slice(shore, func(i, j int) bool {
		if shore[i].Y != shore[j].Y {
			return shore[i].Y < shore[j].Y
		}
		return shore[i].X < shore[j].X
	})
	return shore
}
