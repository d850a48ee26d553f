/*
package survey contains the directional survey data model: single survey
stations (Vertex) and ordered, de-duplicated collections of them (Stations).
*/
package survey

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/phil-mansfield/wellpath/angle"
)

// ErrInvalidStation is returned for stations with a negative or non-finite
// measured depth or non-finite angles.
var ErrInvalidStation = errors.New("invalid survey station")

// Vertex is a single survey station. Angles are stored in radians.
type Vertex struct {
	position    float64
	inclination float64
	azimuth     float64
}

// NewVertex creates a Vertex at the given measured depth. inclination and
// azimuth are given in unit.
func NewVertex(position, inclination, azimuth float64, unit angle.Unit) Vertex {
	return Vertex{
		position:    position,
		inclination: angle.ToRadians(inclination, unit),
		azimuth:     angle.ToRadians(azimuth, unit),
	}
}

// Position returns the measured depth of the vertex.
func (v Vertex) Position() float64 { return v.position }

// Inclination returns the angle from vertical in the requested unit.
func (v Vertex) Inclination(unit angle.Unit) float64 {
	return angle.FromRadians(v.inclination, unit)
}

// Azimuth returns the compass heading in the requested unit.
func (v Vertex) Azimuth(unit angle.Unit) float64 {
	return angle.FromRadians(v.azimuth, unit)
}

// Less orders vertices by measured depth only.
func (v Vertex) Less(u Vertex) bool { return v.position < u.position }

// SamePosition reports whether two vertices are duplicates.
func (v Vertex) SamePosition(u Vertex) bool { return v.position == u.position }

// ApproxEqual returns true if the positions and both angles of v and u agree
// to within tol. Angles are compared in radians.
func (v Vertex) ApproxEqual(u Vertex, tol float64) bool {
	return scalar.EqualWithinAbs(v.position, u.position, tol) &&
		scalar.EqualWithinAbs(v.inclination, u.inclination, tol) &&
		scalar.EqualWithinAbs(v.azimuth, u.azimuth, tol)
}

// Tangent returns the unit direction of the wellbore at v as
// (north, east, down) components.
func (v Vertex) Tangent() r3.Vector {
	return Tangent(v.inclination, v.azimuth)
}

// Tangent returns the unit direction for an inclination and azimuth given in
// radians.
func Tangent(inc, azm float64) r3.Vector {
	sinInc, cosInc := math.Sincos(inc)
	sinAzm, cosAzm := math.Sincos(azm)
	return r3.Vector{X: sinInc * cosAzm, Y: sinInc * sinAzm, Z: cosInc}
}

// Validate checks that v could have come from a real survey.
func (v Vertex) Validate() error {
	switch {
	case math.IsNaN(v.position) || math.IsInf(v.position, 0):
		return fmt.Errorf("%w: measured depth %g is not finite",
			ErrInvalidStation, v.position)
	case v.position < 0:
		return fmt.Errorf("%w: measured depth %g is negative",
			ErrInvalidStation, v.position)
	case !isFinite(v.inclination) || !isFinite(v.azimuth):
		return fmt.Errorf("%w: angles at measured depth %g are not finite",
			ErrInvalidStation, v.position)
	}
	return nil
}

func (v Vertex) String() string {
	return fmt.Sprintf("md=%g inc=%g azm=%g", v.position,
		v.Inclination(angle.Degrees), v.Azimuth(angle.Degrees))
}

func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
