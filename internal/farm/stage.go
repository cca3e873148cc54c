// Package farm holds per-tile farming state: arability, cultivation,
// growth staging and watering, and the atlas index derived from them.
package farm

// FarmStage is the growth phase of a cultivated tile.
type FarmStage uint8

const (
	StageEmpty      FarmStage = iota // Tilled, nothing planted
	StageSprout                      // Freshly planted
	StageVegetative                  // Growing
	StageRipening                    // Ready to harvest
)

// Next returns the stage reached by advancing s. Empty and Ripening are
// absorbing: Empty only leaves through planting, Ripening through harvest.
func (s FarmStage) Next() FarmStage {
	switch s {
	case StageSprout:
		return StageVegetative
	case StageVegetative:
		return StageRipening
	default:
		return s
	}
}

// AtlasBase returns the first atlas index of the stage's dry sprite.
func (s FarmStage) AtlasBase() int {
	switch s {
	case StageSprout:
		return 120
	case StageVegetative, StageRipening:
		return 160
	default:
		return 80
	}
}

// String returns a human-readable stage name.
func (s FarmStage) String() string {
	switch s {
	case StageEmpty:
		return "Empty"
	case StageSprout:
		return "Sprout"
	case StageVegetative:
		return "Vegetative"
	case StageRipening:
		return "Ripening"
	default:
		return "Unknown"
	}
}
