package geom2d

import "github.com/gazed/playground2d/lin2"

// Projection is a 1D interval produced by projecting a shape's vertices
// onto an axis. Min is always ≤ Max.
type Projection struct {
	Min float64
	Max float64
}

// NewProjection returns the interval [min, max], swapping the arguments
// if they arrive reversed.
func NewProjection(min, max float64) Projection {
	if min > max {
		min, max = max, min
	}
	return Projection{Min: min, Max: max}
}

// Shift returns the projection translated by offset along the axis it
// was computed on — SAT callers use this to move one shape's
// projection into the other's frame by offset·axis before testing for
// overlap.
func (p Projection) Shift(offset float64) Projection {
	return Projection{Min: p.Min + offset, Max: p.Max + offset}
}

// Overlaps reports whether p and q overlap by more than lin2.Epsilon —
// shapes that merely touch are not considered overlapping.
func (p Projection) Overlaps(q Projection) bool {
	return p.Min < q.Max-lin2.Epsilon && q.Min < p.Max-lin2.Epsilon
}

// OverlapAmount returns how far p and q overlap. A positive result means
// genuine overlap; zero or negative means touching or separated.
func (p Projection) OverlapAmount(q Projection) float64 {
	return min(p.Max, q.Max) - max(p.Min, q.Min)
}
