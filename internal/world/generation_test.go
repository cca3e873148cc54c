package world

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Range(t *testing.T) {
	t.Parallel()

	g := NewGenerator(GenConfig{Seed: 12345, Scale: 256})
	for y := -300; y < 300; y += 7 {
		for x := -300; x < 300; x += 7 {
			v := g.Arability(x, y)
			if v < 0 || v >= 1 {
				t.Fatalf("arability at (%d,%d) = %f, out of [0,1)", x, y, v)
			}
		}
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	t.Parallel()

	a := NewGenerator(GenConfig{Seed: 99999, Scale: 256})
	b := NewGenerator(GenConfig{Seed: 99999, Scale: 256})

	v := a.Arability(3, 5)
	assert.Equal(t, v, a.Arability(3, 5), "repeated call")
	assert.Equal(t, v, b.Arability(3, 5), "fresh generator, same seed")
	assert.Equal(t, int64(99999), a.Seed())
}

func TestGenerator_Smooth(t *testing.T) {
	t.Parallel()

	g := NewGenerator(GenConfig{Seed: 7, Scale: 256})
	for x := 0; x < 64; x++ {
		d := g.Arability(x, 10) - g.Arability(x+1, 10)
		if d < 0 {
			d = -d
		}
		assert.Less(t, d, 0.05, "adjacent tiles at x=%d differ too much", x)
	}
}

func TestGenerator_ConcurrentReads(t *testing.T) {
	t.Parallel()

	g := NewGenerator(GenConfig{Seed: 42})
	want := make([]float64, 100)
	for i := range want {
		want[i] = g.Arability(i, -i)
	}

	var wg sync.WaitGroup
	got := make([][]float64, 8)
	for w := range got {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			row := make([]float64, len(want))
			for i := range row {
				row[i] = g.Arability(i, -i)
			}
			got[w] = row
		}(w)
	}
	wg.Wait()

	for _, row := range got {
		require.Equal(t, want, row)
	}
}

func TestNewGenerator_RandomSeedAndDefaultScale(t *testing.T) {
	t.Parallel()

	g := NewGenerator(GenConfig{})
	assert.NotZero(t, g.Seed())
	assert.Equal(t, DefaultGenConfig().Scale, g.scale)
}
