package geom2d

import "github.com/gazed/playground2d/lin2"

// Overlaps is the static SAT overlap test (spec.md §4.3.2, boolean
// form). For each candidate axis it projects both shapes, shifts A's
// projection by offset·axis, and checks interval overlap with ε
// tolerance — touching is not overlap. The first separating axis
// aborts the scan.
func Overlaps(a Shape, posA lin2.Coord2, b Shape, posB lin2.Coord2) bool {
	offset := posA.Sub(posB)
	for _, axis := range SeparatingAxes(a, posA, b, posB) {
		projA := a.GetProjection(axis).Shift(offset.Dot(axis))
		projB := b.GetProjection(axis)
		if !projA.Overlaps(projB) {
			return false
		}
	}
	return true
}

// OverlapsMTV is the static SAT overlap test with minimum translation
// vector (spec.md §4.3.2, "boolean with MTV" form): it tracks the axis
// with the smallest positive overlap and, on completion, returns the
// normal that pushes A out of B along with the overlap distance. ok is
// false if any axis separates the shapes (no overlap at all).
func OverlapsMTV(a Shape, posA lin2.Coord2, b Shape, posB lin2.Coord2) (normal lin2.Coord2, dist float64, ok bool) {
	offset := posA.Sub(posB)
	best := -1.0
	found := false
	for _, axis := range SeparatingAxes(a, posA, b, posB) {
		projA := a.GetProjection(axis).Shift(offset.Dot(axis))
		projB := b.GetProjection(axis)
		if !projA.Overlaps(projB) {
			return lin2.Coord2{}, 0, false
		}
		amount := projA.OverlapAmount(projB)
		if !found || amount < best {
			found = true
			best = amount
			// Orient the normal to push A out of B: when A's interval
			// starts before B's on this axis, A must move in the
			// negative-axis direction to separate.
			if projA.Min < projB.Min {
				normal = axis.Neg().Normalize()
			} else {
				normal = axis.Normalize()
			}
		}
	}
	return normal, best, found
}
