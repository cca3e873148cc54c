// Terrain generation: a single static arability field sampled from
// simplex noise, seeded once per session.
package world

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenConfig holds terrain generation parameters.
type GenConfig struct {
	Seed  int64   // Random seed (0 = random)
	Scale float64 // Tiles per noise unit; larger values vary more slowly
}

// DefaultGenConfig returns the standard generation configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Seed:  0,
		Scale: 256,
	}
}

// Generator maps grid coordinates to arability. It holds no mutable state
// after construction and is safe for concurrent use.
type Generator struct {
	noise opensimplex.Noise
	seed  int64
	scale float64
}

// NewGenerator creates a generator for the given configuration.
func NewGenerator(cfg GenConfig) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	scale := cfg.Scale
	if scale <= 0 {
		scale = DefaultGenConfig().Scale
	}
	return &Generator{
		noise: opensimplex.New(seed),
		seed:  seed,
		scale: scale,
	}
}

// Seed returns the effective session seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Arability returns the fertility of the tile at (x, y) in [0, 1).
// tanh compresses the raw noise and the absolute value removes its sign,
// so neighbouring tiles vary smoothly and never go negative.
func (g *Generator) Arability(x, y int) float64 {
	v := g.noise.Eval2(float64(x)/g.scale, float64(y)/g.scale)
	return math.Abs(math.Tanh(v))
}
