package sat

import (
	"math"

	"github.com/gazed/playground2d/geom2d"
	"github.com/gazed/playground2d/lin2"
)

// circleCircle is the circle-circle Hybrid SAT specialization
// (spec.md §4.3.3): it bypasses axis enumeration entirely, computing
// the distance from b's center to the closest point on the delta ray
// from a's center and comparing against the radius sum.
func circleCircle(a, b geom2d.Circle, offset, relVel lin2.Coord2) (Result, lin2.Coord2, float64) {
	firstPos := a.Center.Add(offset)
	separation := firstPos.Sub(b.Center)
	dist2 := separation.Magnitude2()
	fullRad := a.Radius + b.Radius - lin2.Epsilon
	fullRad2 := fullRad * fullRad

	if dist2 <= fullRad2 {
		dist := math.Sqrt(dist2)
		if dist < lin2.Epsilon {
			// Exactly coincident centers: the pushout direction is
			// arbitrary (spec.md §8 boundary behavior); (0,1) matches
			// the circle-circle axis builder's own coincident-center
			// convention.
			return MTV, lin2.Coord2{X: 0, Y: 1}, a.Radius + b.Radius
		}
		return MTV, separation.Scale(1 / dist), a.Radius + b.Radius - dist
	}

	closestTo := lin2.ClosestPointOnLine(firstPos, firstPos.Add(relVel), b.Center)
	closestDist2 := b.Center.Sub(closestTo).Magnitude2()
	if closestDist2 >= fullRad2 {
		return None, lin2.Coord2{}, 0
	}

	distFromClosestToCollision := math.Sqrt(fullRad2 - closestDist2)
	deltaLen2 := relVel.Magnitude2()
	deltaLen := math.Sqrt(deltaLen2)
	deltaDir := relVel.Scale(1 / deltaLen)
	collisionPoint := closestTo.Sub(deltaDir.Scale(distFromClosestToCollision))
	if collisionPoint.Sub(firstPos).Dot(relVel) < 0 {
		return None, lin2.Coord2{}, 0
	}
	distFromFirst2 := collisionPoint.Sub(firstPos).Magnitude2()
	if distFromFirst2 > deltaLen2 {
		return None, lin2.Coord2{}, 0
	}
	t := math.Sqrt(distFromFirst2) / deltaLen
	normal := collisionPoint.Sub(b.Center).Normalize()
	return Sweep, normal, t
}
