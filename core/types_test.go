package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/netarea/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewInterval_Validation covers the ordering and finiteness checks.
func TestNewInterval_Validation(t *testing.T) {
	tests := []struct {
		name         string
		lower, upper float64
		wantErr      error
	}{
		{"ordered", -1, 1, nil},
		{"equal bounds", 1, 1, core.ErrInvertedBounds},
		{"inverted", 5, 4, core.ErrInvertedBounds},
		{"nan lower", math.NaN(), 1, core.ErrInvertedBounds},
		{"nan upper", 0, math.NaN(), core.ErrInvertedBounds},
		{"infinite lower", math.Inf(-1), 1, core.ErrNonFiniteBound},
		{"infinite upper", 0, math.Inf(1), core.ErrNonFiniteBound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			iv, err := core.NewInterval(tc.lower, tc.upper)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, core.Interval{}, iv, "failed construction returns the zero interval")

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.upper-tc.lower, iv.Width())
		})
	}
}

// TestInterval_Contains checks both closed ends.
func TestInterval_Contains(t *testing.T) {
	iv := core.Interval{Lower: 0, Upper: 2}
	assert.True(t, iv.Contains(0))
	assert.True(t, iv.Contains(2))
	assert.True(t, iv.Contains(1.5))
	assert.False(t, iv.Contains(-0.0001))
	assert.False(t, iv.Contains(2.0001))
}

// TestFunc_Evaluate verifies the adapter is a transparent call.
func TestFunc_Evaluate(t *testing.T) {
	sq := core.Func(func(x float64) float64 { return x * x })
	v, err := sq.Evaluate(3)
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)
}

// TestValidateIntegrand rejects untyped and typed nils.
func TestValidateIntegrand(t *testing.T) {
	var nilFunc core.Func
	assert.ErrorIs(t, core.ValidateIntegrand(nil), core.ErrNilIntegrand)
	assert.ErrorIs(t, core.ValidateIntegrand(nilFunc), core.ErrNilIntegrand)
	assert.NoError(t, core.ValidateIntegrand(core.Func(math.Sin)))
}

// TestIsFinite covers the three special values.
func TestIsFinite(t *testing.T) {
	assert.True(t, core.IsFinite(0))
	assert.True(t, core.IsFinite(-1e308))
	assert.False(t, core.IsFinite(math.NaN()))
	assert.False(t, core.IsFinite(math.Inf(1)))
	assert.False(t, core.IsFinite(math.Inf(-1)))
}
