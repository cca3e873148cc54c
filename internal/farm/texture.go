package farm

// Atlas layout of the grass tileset.
const (
	SpriteBareGrass = 31 // Natural grass with nothing drawn on it
	CultivatedMin   = 50 // First atlas index of the farmland sprites
	WateredOffset   = 5  // Distance from a dry farmland sprite to its wet variant
)

// Derive computes a tile's atlas index from its farmland and the index
// rendered last tick. It also reports whether the tile must be
// decultivated: cultivated tiles whose previous sprite is neither bare
// grass nor farmland were reached through an inconsistent transition and
// revert to natural grass.
func Derive(land *Farmland, prev int) (index int, decultivate bool) {
	if land != nil && prev != SpriteBareGrass && prev < CultivatedMin {
		return naturalIndex(prev), true
	}
	if land == nil {
		return naturalIndex(prev), false
	}
	index = land.Stage.AtlasBase()
	if land.Watered {
		index += WateredOffset
	}
	return index, false
}

// naturalIndex keeps decorative grass sprites and collapses any stale
// farmland sprite back to bare grass.
func naturalIndex(prev int) int {
	if prev < CultivatedMin {
		return prev
	}
	return SpriteBareGrass
}
