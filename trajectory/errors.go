package trajectory

import (
	"errors"
	"fmt"

	"github.com/phil-mansfield/wellpath/angle"
)

var (
	// ErrOutOfRange is returned for queries outside the surveyed interval.
	// The concrete error is always a *RangeError.
	ErrOutOfRange = errors.New("position outside surveyed range")
	// ErrInsufficientStations is returned when a strategy is given fewer
	// stations than it needs.
	ErrInsufficientStations = errors.New("insufficient survey stations")
	// ErrDegenerateSegment is returned if a bracket has zero width or its
	// angles evaluate to non-finite values. Valid station sets never
	// trigger it.
	ErrDegenerateSegment = errors.New("degenerate survey segment")
	// ErrInvalidAngleUnit is returned for unrecognized angle unit tags.
	ErrInvalidAngleUnit = angle.ErrInvalidUnit
	// ErrUnknownStrategy is returned by ParseStrategy and NewByName.
	ErrUnknownStrategy = errors.New("unknown interpolation strategy")
)

// RangeError records a query position which fell outside [Min, Max].
type RangeError struct {
	Position, Min, Max float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %g not in [%g, %g]",
		ErrOutOfRange, e.Position, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }
