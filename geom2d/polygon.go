package geom2d

import (
	"math"

	"github.com/gazed/playground2d/lin2"
)

// Polygon is an ordered, counter-clockwise sequence of vertices
// together with a parallel sequence of unit edge normals (edge i
// connects vertex i to vertex (i+1)%n, and normals[i] is its outward
// unit normal) and a cached local AABB. Per spec.md §5's resolution of
// the cache-sharing design note, normals and bounds are computed once,
// eagerly, at construction — there is no lazy per-query mutation, so a
// Polygon value is safe to share read-only across goroutines.
type Polygon struct {
	vertices []lin2.Coord2
	normals  []lin2.Coord2
	bounds   Rect
}

// NewPolygon validates vertices (at least three, convex, simple) and
// returns the polygon with its edge normals and AABB computed.
// ErrInvalidPolygon is returned without allocating a usable Polygon on
// failure.
func NewPolygon(vertices []lin2.Coord2) (Polygon, error) {
	if len(vertices) < 3 {
		return Polygon{}, ErrInvalidPolygon
	}
	if !isConvexCCW(vertices) {
		return Polygon{}, ErrInvalidPolygon
	}
	vs := append([]lin2.Coord2(nil), vertices...)
	return Polygon{
		vertices: vs,
		normals:  computeNormals(vs),
		bounds:   boundsOf(vs),
	}, nil
}

// NewPolygonWithNormals is the trusted fast path (spec.md §6): the
// caller supplies vertices and their matching outward unit normals
// directly, skipping convexity validation, for a caller that already
// knows its vertices are convex and CCW.
func NewPolygonWithNormals(vertices, normals []lin2.Coord2) Polygon {
	vs := append([]lin2.Coord2(nil), vertices...)
	ns := append([]lin2.Coord2(nil), normals...)
	return Polygon{vertices: vs, normals: ns, bounds: boundsOf(vs)}
}

// Vertices returns the polygon's vertices. The returned slice must not
// be mutated by the caller.
func (p Polygon) Vertices() []lin2.Coord2 { return p.vertices }

// EdgeNormal returns the outward unit normal of edge i (connecting
// vertex i to vertex (i+1)%n).
func (p Polygon) EdgeNormal(i int) lin2.Coord2 { return p.normals[i%len(p.normals)] }

// Kind implements Shape.
func (p Polygon) Kind() ShapeKind { return KindPolygon }

// AABB implements Shape.
func (p Polygon) AABB() Rect { return p.bounds }

// GetProjection implements Shape (spec.md §4.2 get_projection): 1D
// projection of every vertex onto axis. axis need not be unit length.
func (p Polygon) GetProjection(axis lin2.Coord2) Projection {
	min, max := p.vertices[0].Dot(axis), p.vertices[0].Dot(axis)
	for _, v := range p.vertices[1:] {
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

// ClosestPoint implements Shape: the point on the polygon's boundary
// closest to p. Used by the circle/non-circle separating axis
// (spec.md §4.3.1).
func (p Polygon) ClosestPoint(q lin2.Coord2) lin2.Coord2 {
	best := p.vertices[0]
	bestDist := math.MaxFloat64
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		a, b := p.vertices[i], p.vertices[(i+1)%n]
		c := lin2.ClosestPointOnSegment(a, b, q)
		if d := c.Sub(q).Magnitude2(); d < bestDist {
			bestDist, best = d, c
		}
	}
	return best
}

// Centroid returns the arithmetic mean of the polygon's vertices. Used
// as a cheap representative point where an exact centroid isn't
// required (e.g. debug rendering).
func (p Polygon) Centroid() lin2.Coord2 {
	sum := lin2.Coord2{}
	for _, v := range p.vertices {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float64(len(p.vertices)))
}

// Translate returns a copy of p shifted by delta. Edge normals are
// unchanged; bounds are recomputed.
func (p Polygon) Translate(delta lin2.Coord2) Polygon {
	vs := make([]lin2.Coord2, len(p.vertices))
	for i, v := range p.vertices {
		vs[i] = v.Add(delta)
	}
	return Polygon{vertices: vs, normals: p.normals, bounds: boundsOf(vs)}
}

// Expand offsets every edge outward by amount along its normal: each
// vertex moves along the normalized sum of its two incident edge
// normals (the miter bisector), scaled so the perpendicular distance to
// each incident edge is exactly amount, not just the bisector's own
// length. Negative amounts are rejected since they can self-intersect a
// convex polygon.
func (p Polygon) Expand(amount float64) (Polygon, error) {
	if amount < 0 {
		return Polygon{}, ErrInvalidPolygon
	}
	if amount == 0 {
		return p, nil
	}
	n := len(p.vertices)
	vs := make([]lin2.Coord2, n)
	for i := range p.vertices {
		prev := p.normals[(i-1+n)%n]
		curr := p.normals[i]
		dir := prev.Add(curr).Normalize()
		if dir.IsZero() {
			// Opposite normals (a degenerate two-edge case) move
			// straight out along either one.
			dir = curr
		}
		cos := dir.Dot(curr)
		miter := amount
		if cos > lin2.Epsilon {
			miter = amount / cos
		}
		vs[i] = p.vertices[i].Add(dir.Scale(miter))
	}
	return Polygon{vertices: vs, normals: p.normals, bounds: boundsOf(vs)}, nil
}

// angleClass classifies the angle between an edge normal and a
// direction, mirroring the original source's AngleResult.
type angleClass int

const (
	angleObtuse angleClass = iota
	angleAcute
	anglePerp
)

func classifyAngle(normal, dir lin2.Coord2) angleClass {
	d := normal.Dot(dir)
	switch {
	case lin2.AeqZ(d):
		return anglePerp
	case d > 0:
		return angleAcute
	default:
		return angleObtuse
	}
}

// FindExtendRange returns the contiguous CCW arc of vertex indices
// [first, last] whose incident edge normals have at least one acute
// angle with dir, plus dupeFirst/dupeLast flags reporting whether Extend
// must duplicate that endpoint to stay convex: a flag is true unless the
// edge just outside the arc at that end is exactly perpendicular to dir.
// Fails with ErrInvalidPolygon if the polygon has fewer than
// three vertices.
func (p Polygon) FindExtendRange(dir lin2.Coord2) (first, last int, dupeFirst, dupeLast bool, err error) {
	n := len(p.vertices)
	if n < 3 {
		return 0, 0, false, false, ErrInvalidPolygon
	}
	classes := make([]angleClass, n)
	for i := range p.normals {
		classes[i] = classifyAngle(p.normals[i], dir)
	}
	// Find a transition from not-acute to acute to anchor the scan;
	// a polygon extended along dir always has at least one acute edge
	// unless dir is the zero vector.
	start := -1
	for i := 0; i < n; i++ {
		prev := classes[(i-1+n)%n]
		if classes[i] == angleAcute && prev != angleAcute {
			start = i
			break
		}
	}
	if start == -1 {
		// No edge is acute (e.g. the zero vector, against which every
		// edge is perpendicular); the whole polygon is the range.
		return 0, n - 1, false, false, nil
	}
	end := start
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		if classes[idx] != angleAcute {
			break
		}
		end = idx
	}
	first = start
	last = (end + 1) % n
	dupeFirst = classes[(first-1+n)%n] != anglePerp
	dupeLast = classes[last] != anglePerp
	return first, last, dupeFirst, dupeLast, nil
}

// Extend produces a new polygon by translating every vertex in the
// extend-range [first,last] (per FindExtendRange(dir)) by dir·dist,
// duplicating the arc endpoints where the boundary edge isn't exactly
// perpendicular to dir so the result stays convex and CCW. Used for
// swept-volume construction (spec.md §4.2).
func (p Polygon) Extend(dir lin2.Coord2, dist float64) (Polygon, error) {
	first, last, dupeFirst, dupeLast, err := p.FindExtendRange(dir)
	if err != nil {
		return Polygon{}, err
	}
	offset := dir.Normalize().Scale(dist)
	n := len(p.vertices)
	inRange := func(i int) bool {
		if first <= last {
			return i >= first && i <= last
		}
		return i >= first || i <= last
	}

	var vs []lin2.Coord2
	for i := 0; i < n; i++ {
		v := p.vertices[i]
		if i == first && dupeFirst {
			vs = append(vs, v, v.Add(offset))
			continue
		}
		if i == last && dupeLast && i != first {
			vs = append(vs, v, v.Add(offset))
			continue
		}
		if inRange(i) {
			vs = append(vs, v.Add(offset))
		} else {
			vs = append(vs, v)
		}
	}
	return NewPolygon(vs)
}

// ClipExtend is like Extend but discards the trailing (un-swept)
// portion of the polygon, keeping only the swept strip itself. Used as
// a cheap bounding hull for swept-collision shortcuts (spec.md §4.2).
// The strip is the facing arc moved by dir·dist followed by the
// original arc in reverse; when the arc spans more than one edge that
// outline is not convex and ErrInvalidPolygon is returned.
func (p Polygon) ClipExtend(dir lin2.Coord2, dist float64) (Polygon, error) {
	first, last, _, _, err := p.FindExtendRange(dir)
	if err != nil {
		return Polygon{}, err
	}
	offset := dir.Normalize().Scale(dist)
	n := len(p.vertices)

	var strip []lin2.Coord2
	idx := first
	for {
		strip = append(strip, p.vertices[idx].Add(offset))
		if idx == last {
			break
		}
		idx = (idx + 1) % n
	}
	idx = last
	for {
		strip = append(strip, p.vertices[idx])
		if idx == first {
			break
		}
		idx = (idx - 1 + n) % n
	}
	return NewPolygon(strip)
}

// isConvexCCW reports whether vertices describe a strictly convex,
// simple polygon wound the way this package's own shape builders wind
// one (Rect.vertices(), Circle.ToPolygon): every consecutive cross
// product non-positive, at least one strictly negative. Since this
// package's y axis increases downward, that raw-cross-product sign is
// the counter-clockwise winding on screen.
func isConvexCCW(vertices []lin2.Coord2) bool {
	n := len(vertices)
	if n < 3 {
		return false
	}
	sawTurn := false
	for i := 0; i < n; i++ {
		a, b, c := vertices[i], vertices[(i+1)%n], vertices[(i+2)%n]
		cross := b.Sub(a).Cross(c.Sub(b))
		if cross > lin2.Epsilon {
			return false
		}
		if cross < -lin2.Epsilon {
			sawTurn = true
		}
	}
	return sawTurn
}

func computeNormals(vertices []lin2.Coord2) []lin2.Coord2 {
	n := len(vertices)
	normals := make([]lin2.Coord2, n)
	for i := 0; i < n; i++ {
		edge := vertices[(i+1)%n].Sub(vertices[i])
		normals[i] = edge.PerpCW().Normalize()
	}
	return normals
}

func boundsOf(vertices []lin2.Coord2) Rect {
	minX, maxX := vertices[0].X, vertices[0].X
	minY, maxY := vertices[0].Y, vertices[0].Y
	for _, v := range vertices[1:] {
		minX = math.Min(minX, v.X)
		maxX = math.Max(maxX, v.X)
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}
	return NewRect(minX, minY, maxX-minX, maxY-minY)
}
