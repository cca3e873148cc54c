//go:build ebiten

// Package app adapts a farming session to the ebiten.Game interface.
package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/yarml/farmer/internal/engine"
	"github.com/yarml/farmer/internal/farm"
	"github.com/yarml/farmer/internal/interact"
	"github.com/yarml/farmer/internal/world"
)

// Game drives a session from ebiten's update loop.
type Game struct {
	sess   *engine.Session
	tick   uint64
	dt     time.Duration
	scale  int
	width  int // Level size in tiles
	height int

	pixel *ebiten.Image
}

// New constructs a Game for a session whose level is width×height tiles.
func New(sess *engine.Session, width, height, scale, tps int) *Game {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	if tps <= 0 {
		tps = engine.DefaultTPS
	}
	return &Game{
		sess:   sess,
		dt:     time.Second / time.Duration(tps),
		scale:  scale,
		width:  width,
		height: height,
		pixel:  pixel,
	}
}

// Update polls input and advances the session by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.tick++
	g.sess.Step(g.tick, g.dt, g.input())
	return nil
}

// input converts screen-space polling into world-space signals. Screen y
// grows downward; world y grows upward from the level's bottom edge.
func (g *Game) input() interact.Input {
	sx, sy := ebiten.CursorPosition()
	levelH := float64(g.height) * world.TileSize
	return interact.Input{
		CursorX:   float64(sx) / float64(g.scale),
		CursorY:   levelH - float64(sy)/float64(g.scale),
		HasCursor: ebiten.IsFocused(),
		Primary:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Secondary: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		CycleTool: inpututil.IsKeyJustPressed(ebiten.KeyTab),
		Reverse:   ebiten.IsKeyPressed(ebiten.KeyShift),
		Sleep:     inpututil.IsKeyJustPressed(ebiten.KeyZ),
	}
}

// Draw renders every indexed tile as a flat quad colored by its type and,
// for grass, its derived atlas index.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	size := world.TileSize * float64(g.scale)

	for _, e := range g.sess.Index.Entries() {
		c := tileColor(e.Type, farm.SpriteBareGrass)
		if e.Type == world.TileGrass {
			if t, ok := g.sess.Field.Get(e.Entity); ok {
				c = tileColor(e.Type, t.Index)
			}
		}
		g.quad(screen, e.Coord, size, c)
	}

	if sel, ok := g.sess.Resolver.Selected(); ok {
		g.quad(screen, sel.Coord, size, color.RGBA{255, 255, 255, 90})
	}

	hud := fmt.Sprintf("%s  tool: %s", g.sess.Day.Clock(), g.sess.Tools.Current())
	if pct, ok := g.sess.Resolver.ArabilityPercent(); ok {
		hud += fmt.Sprintf("  arability: %d%%", pct)
	}
	ebitenutil.DebugPrint(screen, hud)
}

func (g *Game) quad(screen *ebiten.Image, c world.GridCoord, size float64, col color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(float64(c.X)*size, float64(g.height-1-c.Y)*size)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(g.pixel, op)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	px := int(world.TileSize) * g.scale
	return g.width * px, g.height * px
}

func tileColor(t world.TileType, index int) color.Color {
	switch t {
	case world.TileWater:
		return color.RGBA{40, 90, 200, 255}
	case world.TileHousing:
		return color.RGBA{150, 60, 50, 255}
	case world.TileRoad:
		return color.RGBA{140, 130, 110, 255}
	}
	switch {
	case index >= 160:
		return wet(color.RGBA{200, 180, 40, 255}, index-160)
	case index >= 120:
		return wet(color.RGBA{110, 170, 60, 255}, index-120)
	case index >= farm.CultivatedMin:
		return wet(color.RGBA{130, 90, 50, 255}, index-80)
	case index == farm.SpriteBareGrass:
		return color.RGBA{70, 160, 70, 255}
	default:
		return color.RGBA{80, 170, 90, 255}
	}
}

// wet darkens the watered variant of a farmland sprite.
func wet(c color.RGBA, offset int) color.Color {
	if offset < farm.WateredOffset {
		return c
	}
	return color.RGBA{darken(c.R), darken(c.G), darken(c.B), 255}
}

func darken(v uint8) uint8 {
	return uint8(int(v) * 2 / 3)
}
