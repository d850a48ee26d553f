package angle

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnit(t *testing.T) {
	table := []struct {
		s    string
		unit Unit
	}{
		{"rad", Radians},
		{"Radians", Radians},
		{" deg ", Degrees},
		{"DEGREE", Degrees},
		{"degrees", Degrees},
	}
	for i, test := range table {
		u, err := ParseUnit(test.s)
		require.NoError(t, err, "%d) %q", i+1, test.s)
		assert.Equal(t, test.unit, u, "%d) %q", i+1, test.s)
	}

	for _, s := range []string{"", "grad", "turns"} {
		_, err := ParseUnit(s)
		assert.True(t, errors.Is(err, ErrInvalidUnit), "%q", s)
	}
}

func TestConversion(t *testing.T) {
	assert.InDelta(t, math.Pi/2, ToRadians(90, Degrees), 1e-12)
	assert.InDelta(t, math.Pi/6, ToRadians(30, Degrees), 1e-12)
	assert.InDelta(t, 1.25, ToRadians(1.25, Radians), 1e-12)
	assert.InDelta(t, 180.0, FromRadians(math.Pi, Degrees), 1e-12)
	assert.InDelta(t, 0.5, FromRadians(0.5, Radians), 1e-12)

	for _, deg := range []float64{0, 5.5, 29.75, 77.05, 120, 285, 359.9} {
		rad := ToRadians(deg, Degrees)
		assert.InDelta(t, deg, FromRadians(rad, Degrees), 1e-9)
	}
}

func TestWrap(t *testing.T) {
	table := []struct{ in, out float64 }{
		{0, 0},
		{1, 1},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{2 * math.Pi, 0},
		{5*math.Pi + 0.25, math.Pi + 0.25},
	}
	for i, test := range table {
		assert.InDelta(t, test.out, Wrap(test.in), 1e-12, "%d)", i+1)
	}
}

func TestDelta(t *testing.T) {
	assert.InDelta(t, 0.5, Delta(1, 1.5), 1e-12)
	assert.InDelta(t, -0.5, Delta(1.5, 1), 1e-12)
	// 350 deg -> 10 deg crosses north clockwise.
	d := Delta(ToRadians(350, Degrees), ToRadians(10, Degrees))
	assert.InDelta(t, ToRadians(20, Degrees), d, 1e-12)
	d = Delta(1.3447759945, 4.97418765)
	assert.InDelta(t, 4.97418765-1.3447759945-2*math.Pi, d, 1e-12)
}

func TestUnwrap(t *testing.T) {
	rads := []float64{0.785398, 1.3447759945, 1.3447759945, 4.97418765}
	Unwrap(rads)
	assert.InDelta(t, 4.97418765-2*math.Pi, rads[3], 1e-12)
	for i := 1; i < len(rads); i++ {
		assert.LessOrEqual(t, math.Abs(rads[i]-rads[i-1]), math.Pi)
	}
}
