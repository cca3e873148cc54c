package world

// LayerName is the level layer holding tile classification codes.
const LayerName = "worldmap"

// TileType classifies a tile entity. Fixed for the entity's lifetime.
type TileType uint8

const (
	TileWater   TileType = iota + 1 // Layer code 1
	TileGrass                       // Layer code 2, the only farmable type
	TileHousing                     // Layer code 3
	TileRoad                        // Layer code 4
)

// TileTypeFromCode maps a worldmap layer cell code to its tile type.
// Changing this table breaks compatibility with existing level assets.
func TileTypeFromCode(code int) (TileType, bool) {
	switch code {
	case 1:
		return TileWater, true
	case 2:
		return TileGrass, true
	case 3:
		return TileHousing, true
	case 4:
		return TileRoad, true
	default:
		return 0, false
	}
}

// Code returns the worldmap layer cell code for t.
func (t TileType) Code() int {
	return int(t)
}

// String returns a human-readable name for a tile type.
func (t TileType) String() string {
	switch t {
	case TileWater:
		return "Water"
	case TileGrass:
		return "Grass"
	case TileHousing:
		return "Housing"
	case TileRoad:
		return "Road"
	default:
		return "Unknown"
	}
}
