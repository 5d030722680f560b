package geom2d

import (
	"math"

	"github.com/gazed/playground2d/lin2"
)

// CirclePolygonSegments is the vertex count used whenever a Circle must
// be approximated by a polygon (the Hybrid SAT sweep of a circle against
// a non-circle in geom2d/sat, the ray-ShapeRef fallback for an unknown
// tag, and debug rendering). It is a tuning constant, not a
// physical quantity.
const CirclePolygonSegments = 20

// Circle is (center, radius) with radius ≥ 0, expressed in local space.
type Circle struct {
	Center lin2.Coord2
	Radius float64
}

// NewCircle returns the circle at center with the given radius. A
// negative radius is clamped to zero.
func NewCircle(center lin2.Coord2, radius float64) Circle {
	if radius < 0 {
		radius = 0
	}
	return Circle{Center: center, Radius: radius}
}

// Kind implements Shape.
func (c Circle) Kind() ShapeKind { return KindCircle }

// AABB implements Shape.
func (c Circle) AABB() Rect {
	return NewRect(c.Center.X-c.Radius, c.Center.Y-c.Radius, 2*c.Radius, 2*c.Radius)
}

// GetProjection implements Shape: a circle projects to an interval
// centered on its center's projection, radius wide on each side.
func (c Circle) GetProjection(axis lin2.Coord2) Projection {
	unit := axis.Normalize()
	d := c.Center.Dot(unit)
	return Projection{Min: d - c.Radius, Max: d + c.Radius}
}

// ClosestPoint implements Shape: the point on the circle's boundary
// nearest p, or the center itself if p coincides with the center.
func (c Circle) ClosestPoint(p lin2.Coord2) lin2.Coord2 {
	dir := p.Sub(c.Center)
	if dir.AeqZ() {
		return c.Center
	}
	return c.Center.Add(dir.Normalize().Scale(c.Radius))
}

// ToPolygon approximates the circle by a regular CirclePolygonSegments-gon,
// used only where a polygon representation is unavoidable (sat.Collide
// for a circle paired with a non-circle, ray-ShapeRef fallback for an
// unrecognized tag, debug rendering).
func (c Circle) ToPolygon() Polygon {
	vs := make([]lin2.Coord2, CirclePolygonSegments)
	for i := range vs {
		// Walking theta backwards keeps the vertex order wound the
		// same way as every other polygon this package builds
		// (Rect.vertices(), isConvexCCW's expected winding).
		theta := -2 * math.Pi * float64(i) / float64(CirclePolygonSegments)
		vs[i] = lin2.Coord2{
			X: c.Center.X + c.Radius*math.Cos(theta),
			Y: c.Center.Y + c.Radius*math.Sin(theta),
		}
	}
	p, err := NewPolygon(vs)
	if err != nil {
		return Polygon{vertices: vs, bounds: c.AABB()}
	}
	return p
}
