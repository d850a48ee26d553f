package trajectory

import (
	"fmt"
	"strings"
)

// Strategy selects how angles and positions are interpolated between survey
// stations.
type Strategy int

const (
	Linear Strategy = iota
	MinimumCurvature
	Cubic
)

var strategyNames = [...]string{
	Linear:           "linear",
	MinimumCurvature: "minimum_curvature",
	Cubic:            "cubic",
}

// Strategies lists every supported strategy.
func Strategies() []Strategy {
	return []Strategy{Linear, MinimumCurvature, Cubic}
}

// ValidStrategy returns true if s is one of the supported strategies.
func ValidStrategy(s Strategy) bool {
	return s >= Linear && s <= Cubic
}

// String returns the stable lowercase identifier of s.
func (s Strategy) String() string {
	if !ValidStrategy(s) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// ParseStrategy returns the Strategy with the given identifier. Matching
// ignores case and surrounding whitespace.
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, s := range Strategies() {
		if strategyNames[s] == key {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: '%s' is not one of [%s]", ErrUnknownStrategy,
		name, strings.Join(strategyNames[:], " | "))
}
