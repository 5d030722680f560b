package geom2d

import "github.com/gazed/playground2d/lin2"

// direction classifies the turn from (a,b) to (a,c): with y increasing
// downward, positive is CW and negative is CCW on screen (the winding
// isConvexCCW accepts), zero is colinear. Mirrors the original source's
// _compute_direction helper used by the fast boolean segment test.
func direction(a, b, c lin2.Coord2) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// SegmentsIntersect is the boolean-only (fast path) segment-segment
// test: CCW/CW turn-direction signs for each endpoint against the
// opposite segment, with colinear endpoints accepted via an
// on-segment bounding test.
func SegmentsIntersect(a, b LineSegment) bool {
	d1 := direction(b.Start, b.End, a.Start)
	d2 := direction(b.Start, b.End, a.End)
	d3 := direction(a.Start, a.End, b.Start)
	d4 := direction(a.Start, a.End, b.End)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	if lin2.AeqZ(d1) && PointOnSegment(a.Start, b) {
		return true
	}
	if lin2.AeqZ(d2) && PointOnSegment(a.End, b) {
		return true
	}
	if lin2.AeqZ(d3) && PointOnSegment(b.Start, a) {
		return true
	}
	if lin2.AeqZ(d4) && PointOnSegment(b.End, a) {
		return true
	}
	return false
}

// SegmentIntersection is the parametric segment-segment test with
// intersection point. Parallel non-collinear pairs return ok=false.
// Collinear overlapping pairs return the point of the overlap interval
// closest to a.Start (or a.Start itself, if the overlap covers it).
// Zero-length segments collapse to the point-containment tests.
func SegmentIntersection(a, b LineSegment) (point lin2.Coord2, ok bool) {
	if a.IsPoint() {
		if PointOnSegment(a.Start, b) {
			return a.Start, true
		}
		return lin2.Coord2{}, false
	}
	if b.IsPoint() {
		if PointOnSegment(b.Start, a) {
			return b.Start, true
		}
		return lin2.Coord2{}, false
	}

	r := a.Vector()
	s := b.Vector()
	denom := r.Cross(s)
	qp := b.Start.Sub(a.Start)

	if lin2.AeqZ(denom) {
		// Parallel. Collinear iff qp × r is also zero.
		if !lin2.AeqZ(qp.Cross(r)) {
			return lin2.Coord2{}, false
		}
		return collinearOverlap(a, b)
	}

	t := qp.Cross(s) / denom
	u := qp.Cross(r) / denom
	if t < -lin2.Epsilon || t > 1+lin2.Epsilon || u < -lin2.Epsilon || u > 1+lin2.Epsilon {
		return lin2.Coord2{}, false
	}
	return a.Start.Add(r.Scale(t)), true
}

// collinearOverlap computes the overlap interval of two collinear
// segments and returns the point within it closest to a.Start.
func collinearOverlap(a, b LineSegment) (point lin2.Coord2, ok bool) {
	r := a.Vector()
	len2 := r.Magnitude2()
	if len2 < lin2.Epsilon {
		return lin2.Coord2{}, false
	}
	// Project every endpoint onto r to get a shared 1D parameterization.
	t0 := 0.0
	t1 := 1.0
	t2 := b.Start.Sub(a.Start).Dot(r) / len2
	t3 := b.End.Sub(a.Start).Dot(r) / len2
	lo2, hi2 := minMax(t2, t3)

	lo := max(t0, lo2)
	hi := min(t1, hi2)
	if lo > hi+lin2.Epsilon {
		return lin2.Coord2{}, false
	}
	t := lo
	if t < 0 {
		t = 0
	}
	return a.Start.Add(r.Scale(t)), true
}

// RaySegmentIntersection is ray-segment intersection using the same
// parametric machinery as SegmentIntersection, with the A-segment
// replaced by an infinite forward ray. The returned t is the distance
// along the ray to the intersection (0 if the origin lies on the
// segment).
func RaySegmentIntersection(r Ray, s LineSegment) (t float64, ok bool) {
	return raySegment(r, s, false)
}

// RaySegmentIntersectionIgnoreParallel is RaySegmentIntersection but
// early-rejects exactly colinear and exactly parallel cases. Required
// by the ray-polygon and ray-rect edge sweeps to avoid counting the
// "grazing along an edge" case as a hit.
func RaySegmentIntersectionIgnoreParallel(r Ray, s LineSegment) (t float64, ok bool) {
	return raySegment(r, s, true)
}

func raySegment(r Ray, s LineSegment, ignoreParallel bool) (t float64, ok bool) {
	if s.IsPoint() {
		if PointOnRay(s.Start, r) {
			return s.Start.Sub(r.Origin).Magnitude(), true
		}
		return 0, false
	}
	edge := s.Vector()
	denom := r.Dir.Cross(edge)
	qp := s.Start.Sub(r.Origin)

	if lin2.AeqZ(denom) {
		if ignoreParallel {
			return 0, false
		}
		if !lin2.AeqZ(qp.Cross(r.Dir)) {
			return 0, false
		}
		// Colinear: project both endpoints onto the ray direction and
		// take the smallest non-negative one.
		t0 := s.Start.Sub(r.Origin).Dot(r.Dir)
		t1 := s.End.Sub(r.Origin).Dot(r.Dir)
		lo, hi := minMax(t0, t1)
		if hi < -lin2.Epsilon {
			return 0, false
		}
		if lo < 0 {
			lo = 0
		}
		return lo, true
	}

	tRay := qp.Cross(edge) / denom
	u := qp.Cross(r.Dir) / denom
	if tRay < -lin2.Epsilon || u < -lin2.Epsilon || u > 1+lin2.Epsilon {
		return 0, false
	}
	if tRay < 0 {
		tRay = 0
	}
	return tRay, true
}
