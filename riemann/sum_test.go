package riemann_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/netarea/core"
	"github.com/katalvlaran/netarea/expr"
	"github.com/katalvlaran/netarea/riemann"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var identity = core.Func(func(x float64) float64 { return x })

func TestSum_Endpoints(t *testing.T) {
	iv := core.Interval{Lower: 0, Upper: 1}
	tests := []struct {
		endpoint riemann.Endpoint
		want     float64
	}{
		{riemann.Left, 0.375},
		{riemann.Right, 0.625},
		{riemann.Midpoint, 0.5},
	}
	for _, tc := range tests {
		t.Run(tc.endpoint.String(), func(t *testing.T) {
			got, err := riemann.Sum(identity, iv, 4, tc.endpoint)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func TestSum_KnownIntegrals(t *testing.T) {
	sq := expr.MustParse("x^2", "x")
	got, err := riemann.Sum(sq, core.Interval{Lower: 0, Upper: 4}, 1000, riemann.Right)
	require.NoError(t, err)
	assert.InDelta(t, 64.0/3, got, 0.1)

	got, err = riemann.Sum(core.Func(math.Sin), core.Interval{Lower: 0, Upper: math.Pi}, 1000, riemann.Left)
	require.NoError(t, err)
	assert.InDelta(t, 2, got, 0.1)

	got, err = riemann.Sum(sq, core.Interval{Lower: 0, Upper: 4}, 1000, riemann.Midpoint)
	require.NoError(t, err)
	assert.InDelta(t, 64.0/3, got, 1e-4)
}

// For an increasing function Left < exact < Right.
func TestSum_Bracketing(t *testing.T) {
	f := expr.MustParse("x^3 + x", "x")
	iv := core.Interval{Lower: -2, Upper: 3}
	exact := (math.Pow(3, 4)-math.Pow(-2, 4))/4 + (9.0-4.0)/2

	left, err := riemann.Sum(f, iv, 200, riemann.Left)
	require.NoError(t, err)
	right, err := riemann.Sum(f, iv, 200, riemann.Right)
	require.NoError(t, err)
	assert.Less(t, left, exact)
	assert.Greater(t, right, exact)
}

func TestSum_SingleRectangle(t *testing.T) {
	got, err := riemann.Sum(identity, core.Interval{Lower: 2, Upper: 5}, 1, riemann.Right)
	require.NoError(t, err)
	assert.Equal(t, 15.0, got)
}

func TestPartition_MatchesSum(t *testing.T) {
	f := expr.MustParse("sinx + x/3", "x")
	iv := core.Interval{Lower: -1, Upper: 5}
	for _, ep := range []riemann.Endpoint{riemann.Left, riemann.Right, riemann.Midpoint} {
		rects, err := riemann.Partition(f, iv, 37, ep)
		require.NoError(t, err)
		require.Len(t, rects, 37)
		assert.Equal(t, iv.Lower, rects[0].X0)
		assert.Equal(t, iv.Upper, rects[36].X1)

		var total float64
		for i, r := range rects {
			assert.GreaterOrEqual(t, r.SampleX, r.X0)
			assert.LessOrEqual(t, r.SampleX, r.X1)
			if i > 0 {
				assert.InDelta(t, rects[i-1].X1, r.X0, 1e-12)
			}
			total += r.Area()
		}
		sum, err := riemann.Sum(f, iv, 37, ep)
		require.NoError(t, err)
		assert.InDelta(t, sum, total, 1e-9, ep.String())
	}
}

func TestSum_Errors(t *testing.T) {
	iv := core.Interval{Lower: 0, Upper: 1}

	_, err := riemann.Sum(identity, iv, 0, riemann.Left)
	assert.ErrorIs(t, err, riemann.ErrNonPositiveCount)

	_, err = riemann.Sum(identity, iv, 4, riemann.Endpoint(9))
	assert.ErrorIs(t, err, riemann.ErrUnknownEndpoint)

	_, err = riemann.Sum(identity, core.Interval{Lower: 1, Upper: 0}, 4, riemann.Left)
	assert.ErrorIs(t, err, core.ErrInvertedBounds)

	_, err = riemann.Partition(nil, iv, 4, riemann.Left)
	assert.ErrorIs(t, err, core.ErrNilIntegrand)

	_, err = riemann.Sum(expr.MustParse("1/x", "x"), core.Interval{Lower: -1, Upper: 1}, 2, riemann.Right)
	assert.ErrorIs(t, err, expr.ErrDivisionByZero)
}

func TestParseEndpoint(t *testing.T) {
	tests := []struct {
		in      string
		want    riemann.Endpoint
		wantErr bool
	}{
		{"Left", riemann.Left, false},
		{"RIGHT", riemann.Right, false},
		{" midpoint ", riemann.Midpoint, false},
		{"mid", riemann.Midpoint, false},
		{"", 0, true},
		{"center", 0, true},
	}
	for _, tc := range tests {
		got, err := riemann.ParseEndpoint(tc.in)
		if tc.wantErr {
			assert.ErrorIs(t, err, riemann.ErrUnknownEndpoint, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}
	assert.Equal(t, "Endpoint(?)", riemann.Endpoint(42).String())
}
