// Package sat implements the Hybrid Separating Axis Theorem engine
// (spec.md §4.3): a single pass over a pair of shapes' candidate axes
// that returns either no collision, a minimum translation vector for
// shapes already overlapping, or a swept time-of-impact with contact
// normal for shapes that will collide within the step.
//
// Package sat is provided as part of the playground2d collision core.
package sat

import (
	"github.com/gazed/playground2d/geom2d"
	"github.com/gazed/playground2d/lin2"
)

// Result is the three-way outcome of a Hybrid SAT query.
type Result int

const (
	None Result = iota
	MTV
	Sweep
)

func (r Result) String() string {
	switch r {
	case MTV:
		return "mtv"
	case Sweep:
		return "sweep"
	default:
		return "none"
	}
}

// maxTime bounds the swept time interval, per spec.md §4.3.3.
const maxTime = 1.0

// Collide runs Hybrid SAT for a moving against b stationary: a travels
// deltaA over the step, b does not move. Returns the outcome plus a
// normal and a distance-or-time whose meaning depends on the outcome
// (MTV: push-out normal and distance; Sweep: contact normal and
// t ∈ [0,1]; None: both zero).
func Collide(a geom2d.Shape, posA, deltaA lin2.Coord2, b geom2d.Shape, posB lin2.Coord2) (Result, lin2.Coord2, float64) {
	if deltaA.IsZero() {
		if normal, dist, ok := geom2d.OverlapsMTV(a, posA, b, posB); ok {
			return MTV, normal, dist
		}
		return None, lin2.Coord2{}, 0
	}

	offset := posA.Sub(posB)
	ca, aIsCircle := a.(geom2d.Circle)
	cb, bIsCircle := b.(geom2d.Circle)
	if aIsCircle && bIsCircle {
		return circleCircle(ca, cb, offset, deltaA)
	}

	// A circle paired with anything else is approximated by its
	// CirclePolygonSegments-gon and run through the same generic axis
	// path as every other shape pair, rather than freezing the nearest
	// polygon feature at the sweep's start position: polygon face
	// normals are constant under translation, so performHybridSAT's
	// enter/exit tracking stays correct for the whole sweep even when
	// the true nearest polygon feature changes partway through it.
	aShape, bShape := a, b
	if aIsCircle {
		aShape = ca.ToPolygon()
	}
	if bIsCircle {
		bShape = cb.ToPolygon()
	}

	axes := geom2d.SeparatingAxes(aShape, posA, bShape, posB)
	return performHybridSAT(aShape, bShape, axes, offset, deltaA)
}

// CollideMoving runs Hybrid SAT for two moving shapes by reducing to
// one moving shape: it subtracts b's delta from a's and treats b as
// stationary, per spec.md §4.3.4. The returned normal and time are in
// a's frame.
func CollideMoving(a geom2d.Shape, posA, deltaA lin2.Coord2, b geom2d.Shape, posB, deltaB lin2.Coord2) (Result, lin2.Coord2, float64) {
	return Collide(a, posA, deltaA.Sub(deltaB), b, posB)
}

// performHybridSAT is the generalized per-axis enter/exit time tracking
// loop, spec.md §4.3.3 steps 1-4.
func performHybridSAT(a, b geom2d.Shape, axes []lin2.Coord2, offset, relVel lin2.Coord2) (Result, lin2.Coord2, float64) {
	currentlyOverlapping := true
	mtvDist := -1.0
	var mtvNorm lin2.Coord2
	enterTime, exitTime := -1.0, maxTime
	var sweepNorm lin2.Coord2

	for _, axis := range axes {
		projA := a.GetProjection(axis).Shift(offset.Dot(axis))
		projB := b.GetProjection(axis)
		overlap1 := projA.Max - projB.Min - lin2.Epsilon
		overlap2 := projB.Max - projA.Min - lin2.Epsilon
		speed := relVel.Dot(axis)

		if overlap1 < 0 || overlap2 < 0 {
			currentlyOverlapping = false
			if speed == 0 {
				return None, lin2.Coord2{}, 0
			}
			var testEnter, testExit float64
			if overlap1 < 0 {
				testEnter = -overlap1 / speed
				testExit = overlap2 / speed
			} else {
				testEnter = overlap2 / speed
				testExit = -overlap1 / speed
			}
			if testEnter < 0 {
				return None, lin2.Coord2{}, 0
			}
			if testEnter > enterTime {
				enterTime = testEnter
				if projA.Min < projB.Min {
					sweepNorm = axis.Neg()
				} else {
					sweepNorm = axis
				}
			}
			if testExit < exitTime {
				exitTime = testExit
			}
			if enterTime > maxTime || enterTime > exitTime {
				return None, lin2.Coord2{}, 0
			}
		} else {
			if speed != 0 {
				var testExit float64
				if speed < 0 {
					testExit = -overlap1 / speed
				} else {
					testExit = overlap2 / speed
				}
				if testExit < exitTime {
					exitTime = testExit
				}
				if enterTime > exitTime {
					return None, lin2.Coord2{}, 0
				}
			}
			if currentlyOverlapping {
				var testDist float64
				var testNorm lin2.Coord2
				if projA.Min < projB.Min {
					testDist = overlap1 + lin2.Epsilon
					testNorm = axis.Neg()
				} else {
					testDist = overlap2 + lin2.Epsilon
					testNorm = axis
				}
				if mtvDist == -1 || testDist < mtvDist {
					mtvDist = testDist
					mtvNorm = testNorm
				}
			}
		}
	}

	if currentlyOverlapping {
		return MTV, mtvNorm.Normalize(), mtvDist
	}
	return Sweep, sweepNorm.Normalize(), enterTime
}
