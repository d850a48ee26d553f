package survey

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/wellpath/angle"
)

// SPE 84246 reference survey, in degrees.
var (
	speMDs  = []float64{214.13724, 598.800936, 1550.31948, 3018.032064}
	speIncs = []float64{5.5, 29.75, 29.75, 120}
	speAzms = []float64{45, 77.05, 77.05, 285}
)

func speStations(t *testing.T) *Stations {
	st, err := FromArrays(speMDs, speIncs, speAzms, angle.Degrees)
	require.NoError(t, err)
	return st
}

func TestNewSortsAndDedups(t *testing.T) {
	st, err := New(
		NewVertex(30, 3, 3, angle.Degrees),
		NewVertex(10, 1, 1, angle.Degrees),
		NewVertex(20, 2, 2, angle.Degrees),
		NewVertex(10, 9, 9, angle.Degrees),
	)
	require.NoError(t, err)

	assert.Equal(t, 3, st.Size())
	assert.Equal(t, []float64{10, 20, 30}, st.Positions())
	assert.InDelta(t, 9.0, st.At(0).Inclination(angle.Degrees), 1e-12,
		"later duplicate must replace earlier one")
	assert.Equal(t, 10.0, st.Min())
	assert.Equal(t, 30.0, st.Max())
}

func TestNewRejectsInvalid(t *testing.T) {
	_, err := New(
		NewVertex(10, 1, 1, angle.Degrees),
		NewVertex(-5, 1, 1, angle.Degrees),
	)
	assert.True(t, errors.Is(err, ErrInvalidStation))

	_, err = FromArrays([]float64{1, 2}, []float64{0}, []float64{0, 0}, angle.Radians)
	assert.True(t, errors.Is(err, ErrInvalidStation))
}

func TestFromRecords(t *testing.T) {
	st, err := FromRecords([]Record{
		{Position: 598.800936, Inclination: 29.75, Azimuth: 77.05, Unit: "deg"},
		{Position: 214.13724, Inclination: 0.095993095, Azimuth: 0.78539805, Unit: "rad"},
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{214.13724, 598.800936}, st.Positions())
	assert.InDelta(t, 5.5, st.At(0).Inclination(angle.Degrees), 1e-5)

	_, err = FromRecords([]Record{{Position: 1, Unit: "gradians"}})
	assert.True(t, errors.Is(err, angle.ErrInvalidUnit))
}

func TestInsert(t *testing.T) {
	st := speStations(t)

	require.NoError(t, st.Insert(NewVertex(1000, 29.75, 77.05, angle.Degrees)))
	assert.Equal(t, 5, st.Size())
	assert.Equal(t, 1000.0, st.At(2).Position())

	require.NoError(t, st.Insert(NewVertex(1000, 10, 10, angle.Degrees)))
	assert.Equal(t, 5, st.Size())
	assert.InDelta(t, 10.0, st.At(2).Inclination(angle.Degrees), 1e-12)

	require.NoError(t, st.Insert(NewVertex(0, 0, 0, angle.Degrees)))
	require.NoError(t, st.Insert(NewVertex(4000, 90, 0, angle.Degrees)))
	assert.Equal(t, 7, st.Size())
	assert.Equal(t, 0.0, st.Min())
	assert.Equal(t, 4000.0, st.Max())

	assert.Error(t, st.Insert(NewVertex(-1, 0, 0, angle.Degrees)))
	assert.Equal(t, 7, st.Size())
}

func TestSet(t *testing.T) {
	st := speStations(t)
	require.NoError(t, st.Set(
		NewVertex(5, 0, 0, angle.Radians),
		NewVertex(1, 0, 0, angle.Radians),
	))
	assert.Equal(t, []float64{1, 5}, st.Positions())
}

func TestRoundTrip(t *testing.T) {
	// Shuffled input must come back sorted, in both units.
	order := []int{3, 1, 0, 2}
	vs := make([]Vertex, len(order))
	for i, j := range order {
		vs[i] = NewVertex(speMDs[j], speIncs[j], speAzms[j], angle.Degrees)
	}
	st, err := New(vs...)
	require.NoError(t, err)

	approx := cmpopts.EquateApprox(0, 1e-9)
	assert.True(t, cmp.Equal(speMDs, st.Positions(), approx))
	assert.True(t, cmp.Equal(speIncs, st.Inclinations(angle.Degrees), approx))
	assert.True(t, cmp.Equal(speAzms, st.Azimuths(angle.Degrees), approx))

	rads := make([]float64, len(speIncs))
	for i := range rads {
		rads[i] = angle.ToRadians(speIncs[i], angle.Degrees)
	}
	assert.True(t, cmp.Equal(rads, st.Inclinations(angle.Radians), approx))
}

func TestApproxEqualAcrossUnits(t *testing.T) {
	deg := speStations(t)

	incs := make([]float64, len(speIncs))
	azms := make([]float64, len(speAzms))
	for i := range incs {
		incs[i] = angle.ToRadians(speIncs[i], angle.Degrees)
		azms[i] = angle.ToRadians(speAzms[i], angle.Degrees)
	}
	rad, err := FromArrays(speMDs, incs, azms, angle.Radians)
	require.NoError(t, err)

	assert.True(t, deg.ApproxEqual(rad, 1e-9))
	assert.True(t, rad.ApproxEqual(deg, 1e-9))

	require.NoError(t, rad.Insert(NewVertex(2000, 0, 0, angle.Radians)))
	assert.False(t, deg.ApproxEqual(rad, 1e-9))

	var none *Stations
	assert.False(t, deg.ApproxEqual(nil, 1e-9))
	assert.False(t, none.ApproxEqual(deg, 1e-9))
}

func TestCloneIsIndependent(t *testing.T) {
	st := speStations(t)
	c := st.Clone()
	require.NoError(t, c.Insert(NewVertex(100, 0, 0, angle.Radians)))

	assert.Equal(t, 4, st.Size())
	assert.Equal(t, 5, c.Size())

	vs := st.Vertices()
	vs[0] = NewVertex(0, 0, 0, angle.Radians)
	assert.Equal(t, speMDs[0], st.At(0).Position())
}

func TestSlidingWindow(t *testing.T) {
	st := speStations(t)

	require.NoError(t, st.AddAndDrop(NewVertex(100, 1, 1, angle.Degrees)))
	assert.Equal(t, 4, st.Size())
	assert.Equal(t, []float64{100, 214.13724, 598.800936, 1550.31948}, st.Positions())

	require.NoError(t, st.DropAndAdd(NewVertex(2000, 1, 1, angle.Degrees)))
	assert.Equal(t, 4, st.Size())
	assert.Equal(t, []float64{214.13724, 598.800936, 1550.31948, 2000}, st.Positions())

	// Replacing an existing depth must not shrink the window.
	require.NoError(t, st.AddAndDrop(NewVertex(2000, 5, 5, angle.Degrees)))
	assert.Equal(t, 4, st.Size())
	assert.InDelta(t, 5.0, st.At(3).Inclination(angle.Degrees), 1e-12)
}
