package montecarlo_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/netarea/core"
	"github.com/katalvlaran/netarea/extrema"
	"github.com/katalvlaran/netarea/montecarlo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_InsideRectangle(t *testing.T) {
	s, err := montecarlo.Generate(-3, 5, -1, 16, 20000, montecarlo.WithSeed(3))
	require.NoError(t, err)
	require.Len(t, s, 20000)

	rect := montecarlo.Rect{X0: -3, X1: 5, Y0: -1, Y1: 16}
	for _, p := range s {
		require.True(t, rect.Contains(p), "%+v", p)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := montecarlo.Generate(0, 1, 0, 1, 100, montecarlo.WithSeed(11))
	require.NoError(t, err)
	b, err := montecarlo.Generate(0, 1, 0, 1, 100, montecarlo.WithSeed(11))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := montecarlo.Generate(0, 1, 0, 1, 100, montecarlo.WithSeed(12))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

// Seed 0 and no seed at all both use the default stream.
func TestGenerate_DefaultSeed(t *testing.T) {
	a, err := montecarlo.Generate(0, 1, 0, 1, 50)
	require.NoError(t, err)
	b, err := montecarlo.Generate(0, 1, 0, 1, 50, montecarlo.WithSeed(0))
	require.NoError(t, err)
	c, err := montecarlo.Generate(0, 1, 0, 1, 50, montecarlo.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
}

// A flat function yields a degenerate y range; every y equals the value.
func TestGenerate_DegenerateRange(t *testing.T) {
	s, err := montecarlo.Generate(0, 1, 2, 2, 10)
	require.NoError(t, err)
	for _, p := range s {
		assert.Equal(t, 2.0, p.Y)
	}
}

func TestGenerate_Errors(t *testing.T) {
	_, err := montecarlo.Generate(0, 1, 0, 1, 0)
	assert.ErrorIs(t, err, montecarlo.ErrNonPositiveCount)

	_, err = montecarlo.Generate(1, 1, 0, 1, 10)
	assert.ErrorIs(t, err, core.ErrInvertedBounds)

	_, err = montecarlo.Generate(0, math.Inf(1), 0, 1, 10)
	assert.ErrorIs(t, err, core.ErrNonFiniteBound)

	_, err = montecarlo.Generate(0, 1, 2, 1, 10)
	assert.ErrorIs(t, err, montecarlo.ErrBadRange)

	_, err = montecarlo.Generate(0, 1, math.NaN(), 1, 10)
	assert.ErrorIs(t, err, montecarlo.ErrBadRange)
}

func TestBounds_ContainsAxis(t *testing.T) {
	iv := core.Interval{Lower: 1, Upper: 5}
	tests := []struct {
		r      extrema.Range
		y0, y1 float64
	}{
		{extrema.Range{Min: 2, Max: 7}, 0, 7},
		{extrema.Range{Min: -5, Max: -1}, -5, 0},
		{extrema.Range{Min: -3, Max: 4}, -3, 4},
	}
	for _, tc := range tests {
		b := montecarlo.Bounds(iv, tc.r)
		assert.Equal(t, montecarlo.Rect{X0: 1, X1: 5, Y0: tc.y0, Y1: tc.y1}, b)
	}
	assert.Equal(t, 20.0, montecarlo.Bounds(iv, extrema.Range{Min: -5, Max: -1}).Area())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { montecarlo.WithRand(nil) })
	assert.Panics(t, func() { montecarlo.WithExtremaStep(0) })
}
