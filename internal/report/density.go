package report

import "ca-stages/internal/core"

// Density classifies the ON population of a state relative to one half.
type Density int

const (
	DensityBelowHalf Density = iota - 1
	DensityHalf
	DensityAboveHalf
)

// String returns the comparison operator used in the trace.
func (d Density) String() string {
	switch d {
	case DensityAboveHalf:
		return ">"
	case DensityBelowHalf:
		return "<"
	default:
		return "="
	}
}

// Classify inspects only the first two cells. After rule 184 followed by
// rule 232 a ring settles into all ON, all OFF, or alternating cells, so the
// prefix decides the class. This does not hold for arbitrary states.
// The second cell is read circularly so a single-cell ring compares cell 0
// with itself.
func Classify(s core.State) Density {
	first, second := s.IsOn(0), s.IsOn(1%len(s))
	switch {
	case first && second:
		return DensityAboveHalf
	case !first && !second:
		return DensityBelowHalf
	default:
		return DensityHalf
	}
}
