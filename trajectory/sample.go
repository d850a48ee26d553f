package trajectory

import (
	"fmt"
	"runtime"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"

	"github.com/phil-mansfield/wellpath/survey"
)

// SamplePositions returns n evenly spaced measured depths running from Min()
// to Max() inclusive.
func (ip *Interpolator) SamplePositions(n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{ip.Min()}
	}
	qs := floats.Span(make([]float64, n), ip.Min(), ip.Max())
	// Guard the end points against rounding so they stay in range.
	qs[0], qs[n-1] = ip.Min(), ip.Max()
	return qs
}

// Sample evaluates VertexAt at n evenly spaced positions using the given
// number of worker goroutines. If workers <= 0, runtime.NumCPU() is used.
// Results are in order of increasing position.
func (ip *Interpolator) Sample(n, workers int) ([]survey.Vertex, error) {
	qs := ip.SamplePositions(n)
	out := make([]survey.Vertex, len(qs))
	err := ip.parallel(qs, workers, func(i int) error {
		var err error
		out[i], err = ip.VertexAt(qs[i])
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SampleProjections is Sample for positions instead of vertices.
func (ip *Interpolator) SampleProjections(n, workers int) ([]r3.Vector, error) {
	qs := ip.SamplePositions(n)
	out := make([]r3.Vector, len(qs))
	err := ip.parallel(qs, workers, func(i int) error {
		var err error
		out[i], err = ip.PositionAt(qs[i])
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// parallel calls f on every index of qs, striping the indices across worker
// goroutines. It returns the first error in index order.
func (ip *Interpolator) parallel(
	qs []float64, workers int, f func(i int) error,
) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(qs) {
		workers = len(qs)
	}
	if workers == 0 {
		return nil
	}

	errs := make([]error, len(qs))
	out := make(chan int, workers)
	work := func(id int) {
		for i := id; i < len(qs); i += workers {
			errs[i] = f(i)
		}
		out <- id
	}

	for id := 0; id < workers-1; id++ {
		go work(id)
	}
	work(workers - 1)

	for i := 0; i < workers; i++ {
		<-out
	}

	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("sample %d at %g: %w", i, qs[i], err)
		}
	}
	return nil
}
