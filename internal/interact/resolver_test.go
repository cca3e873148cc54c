package interact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yarml/farmer/internal/farm"
	"github.com/yarml/farmer/internal/tools"
	"github.com/yarml/farmer/internal/world"
)

type fixture struct {
	idx   *world.Index
	field *farm.Field
	sel   *tools.Selector
	r     *Resolver
}

// Grass at (1,1) and (2,1), road at (0,1).
func newFixture(t *testing.T) *fixture {
	t.Helper()

	idx := world.NewIndex()
	idx.Rebuild([]world.Entry{
		{Coord: world.GridCoord{X: 1, Y: 1}, Entity: 1, Type: world.TileGrass},
		{Coord: world.GridCoord{X: 2, Y: 1}, Entity: 2, Type: world.TileGrass},
		{Coord: world.GridCoord{X: 0, Y: 1}, Entity: 3, Type: world.TileRoad},
	})
	field := farm.NewField()
	field.Spawn([]farm.Placement{
		{Entity: 1, Coord: world.GridCoord{X: 1, Y: 1}, Sprite: farm.SpriteBareGrass},
		{Entity: 2, Coord: world.GridCoord{X: 2, Y: 1}, Sprite: farm.SpriteBareGrass},
	})
	for _, tile := range field.Tiles() {
		tile.AssignArability(0.456)
	}
	return &fixture{idx: idx, field: field, sel: tools.NewSelector(), r: NewResolver()}
}

func (f *fixture) resolve(in Input) Result {
	return f.r.Resolve(in, f.idx, f.field, f.sel)
}

func at(x, y float64) Input {
	return Input{CursorX: x, CursorY: y, HasCursor: true}
}

func TestResolve_SelectsGrassUnderCursor(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	res := f.resolve(at(20, 20))
	require.NotNil(t, res.Selection)
	assert.Equal(t, world.GridCoord{X: 1, Y: 1}, res.Selection.Coord)
	assert.Equal(t, world.Entity(1), res.Selection.Tile.Entity)

	sel, ok := f.r.Selected()
	assert.True(t, ok)
	assert.Same(t, res.Selection, sel)
}

func TestResolve_NonGrassAndMissSelectNothing(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	in := at(8, 24) // road at (0,1)
	in.Primary = true
	res := f.resolve(in)
	assert.Nil(t, res.Selection)
	assert.Equal(t, tools.Outcome{}, res.Activated)

	res = f.resolve(at(500, 500))
	assert.Nil(t, res.Selection)
	_, ok := f.r.Selected()
	assert.False(t, ok)
}

func TestResolve_PrimaryActivatesEveryTick(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	in := at(20, 20)
	in.Primary = true

	res := f.resolve(in)
	assert.True(t, res.Activated.Changed)
	tile := res.Selection.Tile
	require.True(t, tile.Cultivated())

	// Held button repeats, but cultivating again is a no-op.
	res = f.resolve(in)
	assert.False(t, res.Activated.Changed)
	assert.Equal(t, farm.Farmland{Stage: farm.StageEmpty}, *tile.Farmland)
}

func TestResolve_SecondaryDeactivates(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	in := at(20, 20)
	in.Primary = true
	f.resolve(in)

	in = at(20, 20)
	in.Secondary = true
	res := f.resolve(in)
	assert.True(t, res.Deactivated.Changed)
	assert.False(t, res.Selection.Tile.Cultivated())
}

func TestResolve_CycleIsEdgeTriggered(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	res := f.resolve(Input{CycleTool: true})
	assert.True(t, res.Cycled)
	assert.Equal(t, tools.Plant, res.Tool)

	res = f.resolve(Input{})
	assert.False(t, res.Cycled)
	assert.Equal(t, tools.Plant, res.Tool)

	res = f.resolve(Input{CycleTool: true, Reverse: true})
	assert.Equal(t, tools.Cultivate, res.Tool)
	res = f.resolve(Input{CycleTool: true, Reverse: true})
	assert.Equal(t, tools.Harvest, res.Tool)
}

func TestResolve_CycleAppliesBeforeActivation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	in := at(20, 20)
	in.Primary = true
	f.resolve(in) // cultivate

	in.CycleTool = true
	res := f.resolve(in)
	assert.Equal(t, tools.Plant, res.Tool)
	assert.True(t, res.Activated.Changed)
	assert.Equal(t, farm.StageSprout, res.Selection.Tile.Farmland.Stage)
}

func TestResolve_CursorPersistsWithoutWindow(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.resolve(at(36, 20))

	res := f.resolve(Input{Primary: true})
	require.NotNil(t, res.Selection)
	assert.Equal(t, world.GridCoord{X: 2, Y: 1}, res.Selection.Coord)
	x, y := f.r.Cursor()
	assert.Equal(t, 36.0, x)
	assert.Equal(t, 20.0, y)
}

func TestResolver_HUD(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	_, ok := f.r.ArabilityPercent()
	assert.False(t, ok)

	f.resolve(at(20, 20))
	pct, ok := f.r.ArabilityPercent()
	assert.True(t, ok)
	assert.Equal(t, 46, pct)

	x, y := f.r.SelectorPos()
	assert.Equal(t, 24.0, x)
	assert.Equal(t, 24.0, y)
}
