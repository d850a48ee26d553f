package trajectory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/wellpath/angle"
)

func TestSamplePositions(t *testing.T) {
	ip := speInterpolator(t, Linear)
	assert.Nil(t, ip.SamplePositions(0))
	assert.Equal(t, []float64{speMDs[0]}, ip.SamplePositions(1))

	qs := ip.SamplePositions(11)
	require.Len(t, qs, 11)
	assert.Equal(t, speMDs[0], qs[0])
	assert.Equal(t, speMDs[3], qs[10])
	for i := 1; i < len(qs); i++ {
		assert.InDelta(t, (speMDs[3]-speMDs[0])/10, qs[i]-qs[i-1], 1e-9)
	}
}

func TestSampleWorkerIndependence(t *testing.T) {
	for _, s := range Strategies() {
		ip := speInterpolator(t, s)

		serial, err := ip.Sample(257, 1)
		require.NoError(t, err)
		require.Len(t, serial, 257)
		for i := 1; i < len(serial); i++ {
			assert.True(t, serial[i-1].Less(serial[i]), "%s %d) Expected sorted output", s, i)
		}

		for _, workers := range []int{0, 3, 8, 1000} {
			par, err := ip.Sample(257, workers)
			require.NoError(t, err)
			assert.Equal(t, serial, par, "%s: %d workers", s, workers)
		}

		pos, err := ip.SampleProjections(257, 1)
		require.NoError(t, err)
		par, err := ip.SampleProjections(257, 5)
		require.NoError(t, err)
		assert.Equal(t, pos, par, "%s", s)
	}
}

func TestSampleMatchesQueries(t *testing.T) {
	ip := speInterpolator(t, MinimumCurvature)
	qs := ip.SamplePositions(9)
	vs, err := ip.Sample(9, 4)
	require.NoError(t, err)
	ps, err := ip.SampleProjections(9, 4)
	require.NoError(t, err)

	for i, q := range qs {
		v, err := ip.VertexAt(q)
		require.NoError(t, err)
		p, err := ip.PositionAt(q)
		require.NoError(t, err)
		assert.Equal(t, v, vs[i])
		assert.Equal(t, p, ps[i])
		assert.Equal(t, q, vs[i].Position())
	}

	last := vs[len(vs)-1]
	assert.Equal(t, speIncs[3], last.Inclination(angle.Radians))
}

func TestParallelReportsFirstError(t *testing.T) {
	ip := speInterpolator(t, Linear)
	sentinel := errors.New("boom")
	err := ip.parallel(make([]float64, 20), 4, func(i int) error {
		if i == 7 || i == 13 {
			return sentinel
		}
		return nil
	})
	assert.True(t, errors.Is(err, sentinel))
	assert.Contains(t, err.Error(), "sample 7")
}

func BenchmarkSample(b *testing.B) {
	ip := speInterpolator(b, Cubic, WithSubsteps(8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ip.SampleProjections(1000, 0)
	}
}
