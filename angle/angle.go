/*
package angle converts survey angles between the units callers supply and
the radians used everywhere inside wellpath.
*/
package angle

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/golang/geo/s1"
)

// ErrInvalidUnit is returned when an angle unit tag cannot be recognized.
var ErrInvalidUnit = errors.New("invalid angle unit")

// Unit identifies the unit an angle is expressed in.
type Unit int

const (
	// Radians is the canonical unit. Zero value.
	Radians Unit = iota
	Degrees
)

func (u Unit) String() string {
	switch u {
	case Radians:
		return "rad"
	case Degrees:
		return "deg"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// ParseUnit returns the Unit named by s. Matching is case insensitive and
// ignores surrounding whitespace.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rad", "radian", "radians":
		return Radians, nil
	case "deg", "degree", "degrees":
		return Degrees, nil
	}
	return Radians, fmt.Errorf("%w: '%s' is not one of [rad | deg]",
		ErrInvalidUnit, s)
}

func (u Unit) scale() s1.Angle {
	if u == Degrees {
		return s1.Degree
	}
	return s1.Radian
}

// ToRadians converts v, given in unit u, to radians.
func ToRadians(v float64, u Unit) float64 {
	return (s1.Angle(v) * u.scale()).Radians()
}

// FromRadians converts rad to unit u.
func FromRadians(rad float64, u Unit) float64 {
	if u == Degrees {
		return s1.Angle(rad).Degrees()
	}
	return rad
}

// Wrap maps rad into [0, 2π).
func Wrap(rad float64) float64 {
	rad = math.Mod(rad, 2*math.Pi)
	if rad < 0 {
		rad += 2 * math.Pi
	}
	if rad >= 2*math.Pi {
		return 0
	}
	return rad
}

// Delta returns the signed shortest arc from a0 to a1, in (-π, π].
func Delta(a0, a1 float64) float64 {
	return s1.Angle(a1 - a0).Normalized().Radians()
}

// Unwrap rewrites a sequence of headings so that consecutive values never
// jump by more than π. Values are modified in place and returned.
func Unwrap(rads []float64) []float64 {
	for i := 1; i < len(rads); i++ {
		rads[i] = rads[i-1] + Delta(rads[i-1], rads[i])
	}
	return rads
}
