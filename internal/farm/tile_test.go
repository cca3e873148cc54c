package farm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yarml/farmer/internal/world"
)

func arableTile(a float64) *Tile {
	t := NewTile(1, world.GridCoord{X: 3, Y: 5}, SpriteBareGrass)
	t.AssignArability(a)
	return t
}

func TestFarmStage_Next(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from, want FarmStage
	}{
		{StageEmpty, StageEmpty},
		{StageSprout, StageVegetative},
		{StageVegetative, StageRipening},
		{StageRipening, StageRipening},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.Next(), "from %s", tt.from)
	}
	assert.Equal(t, "Unknown", FarmStage(9).String())
}

func TestTile_AssignArabilityOnce(t *testing.T) {
	t.Parallel()

	tile := NewTile(1, world.GridCoord{}, SpriteBareGrass)
	assert.False(t, tile.Arable)

	assert.True(t, tile.AssignArability(0.4))
	assert.False(t, tile.AssignArability(0.9), "second assignment must be ignored")
	assert.Equal(t, 0.4, tile.Arability)
	assert.True(t, tile.Arable)
}

func TestTile_CultivateRequiresArability(t *testing.T) {
	t.Parallel()

	tile := NewTile(1, world.GridCoord{}, SpriteBareGrass)
	assert.False(t, tile.Cultivate())
	assert.False(t, tile.Cultivated())
}

func TestTile_CultivateIdempotent(t *testing.T) {
	t.Parallel()

	tile := arableTile(0.5)
	require.True(t, tile.Cultivate())
	tile.Plant()
	tile.Water()
	before := *tile.Farmland

	assert.False(t, tile.Cultivate())
	assert.Equal(t, before, *tile.Farmland, "re-cultivating must not reset the plot")
}

func TestTile_PlantOnlyEmpty(t *testing.T) {
	t.Parallel()

	natural := arableTile(0.5)
	assert.False(t, natural.Plant())
	assert.Nil(t, natural.Farmland)

	tile := arableTile(0.5)
	tile.Cultivate()
	assert.True(t, tile.Plant())
	assert.Equal(t, StageSprout, tile.Farmland.Stage)
	assert.False(t, tile.Plant())
	assert.Equal(t, StageSprout, tile.Farmland.Stage)
}

func TestTile_AdvanceMonotonic(t *testing.T) {
	t.Parallel()

	tile := arableTile(0.5)
	tile.Cultivate()
	assert.False(t, tile.Advance(), "empty plot never advances")
	assert.Equal(t, StageEmpty, tile.Farmland.Stage)

	tile.Plant()
	var seen []FarmStage
	for i := 0; i < 5; i++ {
		tile.Advance()
		seen = append(seen, tile.Farmland.Stage)
	}
	assert.Equal(t, []FarmStage{
		StageVegetative, StageRipening, StageRipening, StageRipening, StageRipening,
	}, seen)

	natural := arableTile(0.5)
	assert.False(t, natural.Advance())
}

func TestTile_WaterIdempotent(t *testing.T) {
	t.Parallel()

	natural := arableTile(0.5)
	assert.False(t, natural.Water())
	assert.Nil(t, natural.Farmland)

	tile := arableTile(0.5)
	tile.Cultivate()
	assert.True(t, tile.Water())
	assert.False(t, tile.Water())
	assert.True(t, tile.Farmland.Watered)
	assert.Equal(t, StageEmpty, tile.Farmland.Stage)
}

func TestTile_DecultivateClearsWatered(t *testing.T) {
	t.Parallel()

	tile := arableTile(0.5)
	tile.Cultivate()
	tile.Water()
	assert.True(t, tile.Decultivate())
	assert.Nil(t, tile.Farmland)
	assert.False(t, tile.Decultivate())

	tile.Cultivate()
	assert.False(t, tile.Farmland.Watered, "fresh farmland starts dry")
}

func TestTile_Harvest(t *testing.T) {
	t.Parallel()

	tile := arableTile(0.7)
	assert.Zero(t, tile.Harvest(), "natural grass")

	tile.Cultivate()
	tile.Plant()
	tile.Water()
	assert.Zero(t, tile.Harvest(), "sprout is not ripe")

	tile.Advance()
	tile.Advance()
	require.Equal(t, StageRipening, tile.Farmland.Stage)

	assert.Equal(t, 3, tile.Harvest())
	assert.Equal(t, StageEmpty, tile.Farmland.Stage)
	assert.True(t, tile.Farmland.Watered, "watering is orthogonal to harvest")
	assert.Zero(t, tile.Harvest(), "already harvested")
}

func TestYield(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arability float64
		want      int
	}{
		{0, 1},
		{0.2, 1},
		{0.34, 2},
		{0.5, 2},
		{0.67, 3},
		{0.99, 3},
		{1, 4},
		{-0.1, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Yield(tt.arability), "arability %v", tt.arability)
	}
}
