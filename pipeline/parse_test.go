package pipeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDouble(t *testing.T) {
	ok := []struct {
		in   string
		want float64
	}{
		{"1", 1},
		{"-2.5", -2.5},
		{"  3.25\t", 3.25},
		{"+4", 4},
		{".5", 0.5},
		{"1e3", 1000},
		{"2d", 2},
		{"2.5F", 2.5},
		{"0x1p3", 8},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{"1e400", math.Inf(1)},
		{"-1e400", math.Inf(-1)},
		{"1e-400", 0},
	}
	for _, tc := range ok {
		got, err := parseDouble(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	got, err := parseDouble("NaN")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))

	for _, in := range []string{"", "  ", "abc", "1..2", "inf", "nan", "1_000", "--1", "1 2", "d"} {
		_, err := parseDouble(in)
		assert.Error(t, err, "%q", in)
	}
}

func TestGroupThousands(t *testing.T) {
	tests := map[int]string{
		0:        "0",
		7:        "7",
		999:      "999",
		1000:     "1,000",
		100000:   "100,000",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for n, want := range tests {
		assert.Equal(t, want, groupThousands(n))
	}
}

func TestMessages_DefaultLimits(t *testing.T) {
	assert.Equal(t, "Bounds must be in between [-1000 to 1000]", boundsMessage(DefaultBoundLimit))
	assert.Equal(t, "Number of points must be between 1 and 100,000", pointsMessage(DefaultMaxPoints))
	assert.Equal(t, "Bounds must be in between [-2.5 to 2.5]", boundsMessage(2.5))
}

func TestParseNumbers_Endpoint(t *testing.T) {
	cfg := defaultConfig()
	in := Input{Method: "riemann sum", Endpoint: "midpoint", Lower: "0", Upper: "1", Points: "3"}
	nums, rej := parseNumbers(in, cfg)
	require.Nil(t, rej)
	assert.Equal(t, RiemannSum, nums.method)
	assert.Equal(t, 3, nums.points)

	// Endpoint text is ignored for Monte Carlo.
	in.Method, in.Endpoint = "Monte Carlo", "sideways"
	_, rej = parseNumbers(in, cfg)
	assert.Nil(t, rej)
}
