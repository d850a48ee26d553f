package survey

import (
	"fmt"
	"sort"

	"github.com/phil-mansfield/wellpath/angle"
)

// Record is a raw survey tuple as it arrives from a file or caller, with the
// angle unit still in string form.
type Record struct {
	Position, Inclination, Azimuth float64
	Unit                           string
}

// Stations is an ordered set of survey stations with strictly increasing
// measured depth. Inserting a station at an existing depth replaces the old
// one.
//
// Stations is not safe for concurrent mutation. Interpolators take their own
// copy of the stations when they are built, so editing a Stations afterwards
// does not affect them.
type Stations struct {
	vs []Vertex
}

// New builds a Stations from vertices in any order. If several vertices share
// a measured depth, the last one wins.
func New(vs ...Vertex) (*Stations, error) {
	st := &Stations{}
	if err := st.Set(vs...); err != nil {
		return nil, err
	}
	return st, nil
}

// FromRecords builds a Stations from raw tuples, each carrying its own angle
// unit.
func FromRecords(rs []Record) (*Stations, error) {
	vs := make([]Vertex, len(rs))
	for i, r := range rs {
		unit, err := angle.ParseUnit(r.Unit)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		vs[i] = NewVertex(r.Position, r.Inclination, r.Azimuth, unit)
	}
	return New(vs...)
}

// FromArrays builds a Stations from parallel arrays of measured depths,
// inclinations, and azimuths.
func FromArrays(positions, incs, azms []float64, unit angle.Unit) (*Stations, error) {
	if len(positions) != len(incs) || len(positions) != len(azms) {
		return nil, fmt.Errorf(
			"%w: len(positions) = %d, but len(incs) = %d and len(azms) = %d",
			ErrInvalidStation, len(positions), len(incs), len(azms),
		)
	}
	vs := make([]Vertex, len(positions))
	for i := range positions {
		vs[i] = NewVertex(positions[i], incs[i], azms[i], unit)
	}
	return New(vs...)
}

// Set replaces the contents of st with vs.
func (st *Stations) Set(vs ...Vertex) error {
	for i := range vs {
		if err := vs[i].Validate(); err != nil {
			return err
		}
	}

	sorted := make([]Vertex, len(vs))
	copy(sorted, vs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Less(sorted[j])
	})

	// Stable sorting keeps input order within a run of equal depths, so the
	// last element of each run is the most recent write.
	out := sorted[:0]
	for i := range sorted {
		if len(out) > 0 && out[len(out)-1].SamePosition(sorted[i]) {
			out[len(out)-1] = sorted[i]
		} else {
			out = append(out, sorted[i])
		}
	}

	st.vs = out
	return nil
}

// Insert adds v, replacing any station at the same measured depth.
func (st *Stations) Insert(v Vertex) error {
	if err := v.Validate(); err != nil {
		return err
	}

	i := st.lowerBound(v.position)
	if i < len(st.vs) && st.vs[i].SamePosition(v) {
		st.vs[i] = v
		return nil
	}

	st.vs = append(st.vs, Vertex{})
	copy(st.vs[i+1:], st.vs[i:])
	st.vs[i] = v
	return nil
}

// AddAndDrop inserts v and then removes the deepest station, so the number of
// stations stays the same unless v replaced an existing station.
func (st *Stations) AddAndDrop(v Vertex) error {
	n := len(st.vs)
	if err := st.Insert(v); err != nil {
		return err
	}
	if len(st.vs) > n {
		st.vs = st.vs[:len(st.vs)-1]
	}
	return nil
}

// DropAndAdd removes the shallowest station and then inserts v.
func (st *Stations) DropAndAdd(v Vertex) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if len(st.vs) > 0 {
		st.vs = st.vs[1:]
	}
	return st.Insert(v)
}

// lowerBound returns the index of the first station at or below md.
func (st *Stations) lowerBound(md float64) int {
	return sort.Search(len(st.vs), func(i int) bool {
		return st.vs[i].position >= md
	})
}

// Size returns the number of unique stations.
func (st *Stations) Size() int { return len(st.vs) }

// At returns the i-th shallowest station.
func (st *Stations) At(i int) Vertex { return st.vs[i] }

// Min returns the shallowest measured depth. It panics if st is empty.
func (st *Stations) Min() float64 { return st.vs[0].position }

// Max returns the deepest measured depth. It panics if st is empty.
func (st *Stations) Max() float64 { return st.vs[len(st.vs)-1].position }

// Vertices returns a copy of the stations in order of increasing depth.
func (st *Stations) Vertices() []Vertex {
	out := make([]Vertex, len(st.vs))
	copy(out, st.vs)
	return out
}

// Clone returns an independent copy of st.
func (st *Stations) Clone() *Stations {
	return &Stations{vs: st.Vertices()}
}

// Positions returns the measured depths in increasing order.
func (st *Stations) Positions() []float64 {
	out := make([]float64, len(st.vs))
	for i := range st.vs {
		out[i] = st.vs[i].position
	}
	return out
}

// Inclinations returns the inclinations in order of increasing depth.
func (st *Stations) Inclinations(unit angle.Unit) []float64 {
	out := make([]float64, len(st.vs))
	for i := range st.vs {
		out[i] = st.vs[i].Inclination(unit)
	}
	return out
}

// Azimuths returns the azimuths in order of increasing depth.
func (st *Stations) Azimuths(unit angle.Unit) []float64 {
	out := make([]float64, len(st.vs))
	for i := range st.vs {
		out[i] = st.vs[i].Azimuth(unit)
	}
	return out
}

// ApproxEqual returns true if st and other contain the same number of
// stations and every aligned pair agrees to within tol. A nil set equals
// nothing.
func (st *Stations) ApproxEqual(other *Stations, tol float64) bool {
	if st == nil || other == nil {
		return false
	}
	if len(st.vs) != len(other.vs) {
		return false
	}
	for i := range st.vs {
		if !st.vs[i].ApproxEqual(other.vs[i], tol) {
			return false
		}
	}
	return true
}
