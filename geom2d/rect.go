package geom2d

import "github.com/gazed/playground2d/lin2"

// Rect is an axis-aligned rectangle (x, y, w, h) with w, h ≥ 0. By the
// convention this package inherits from its ray-demo collaborator, y
// increases downward, so Top() ≤ Bottom().
type Rect struct {
	X, Y, W, H float64
}

// NewRect returns the rectangle with top-left corner (x, y) and the
// given width and height. Negative w or h are clamped to zero.
func NewRect(x, y, w, h float64) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left, Right, Top, Bottom are the rectangle's four sides.
func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Kind implements Shape.
func (r Rect) Kind() ShapeKind { return KindRect }

// AABB implements Shape; a rect is its own bounding box.
func (r Rect) AABB() Rect { return r }

// vertices returns the rectangle's four corners in CCW winding,
// starting at the top-left (in the downward-y convention, "top-left"
// is the smallest-x, smallest-y corner).
func (r Rect) vertices() [4]lin2.Coord2 {
	return [4]lin2.Coord2{
		{X: r.Left(), Y: r.Top()},
		{X: r.Left(), Y: r.Bottom()},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.Right(), Y: r.Top()},
	}
}

// GetProjection implements Shape.
func (r Rect) GetProjection(axis lin2.Coord2) Projection {
	vs := r.vertices()
	min, max := vs[0].Dot(axis), vs[0].Dot(axis)
	for _, v := range vs[1:] {
		d := v.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return Projection{Min: min, Max: max}
}

// ClosestPoint implements Shape by clamping p to the rectangle's bounds.
func (r Rect) ClosestPoint(p lin2.Coord2) lin2.Coord2 {
	return lin2.Coord2{
		X: lin2.Clamp(r.Left(), r.Right(), p.X),
		Y: lin2.Clamp(r.Top(), r.Bottom(), p.Y),
	}
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() lin2.Coord2 {
	return lin2.Coord2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// ToPolygon converts the rect to an equivalent 4-vertex CCW polygon,
// the spec.md §8 round-trip law: its Overlaps behavior against any
// third shape must match the original Rect.
func (r Rect) ToPolygon() Polygon {
	vs := r.vertices()
	p, err := NewPolygon(vs[:])
	if err != nil {
		// A well-formed, non-degenerate rect is always convex and
		// simple; this can only fail for a zero-area rect, for which
		// the polygon is built directly with the four axis-aligned
		// normals rather than erroring a conversion spec.md treats as
		// total.
		return Polygon{vertices: vs[:], normals: []lin2.Coord2{{X: -1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}}, bounds: r}
	}
	return p
}
