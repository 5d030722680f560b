package geom2d

import "github.com/gazed/playground2d/lin2"

// rectSide names one of the four sides of a rect, used to pick the
// outward normal for a hit.
type rectSide int

const (
	sideLeft rectSide = iota
	sideRight
	sideTop
	sideBottom
)

func (s rectSide) normal() lin2.Coord2 {
	switch s {
	case sideLeft:
		return lin2.Coord2{X: -1, Y: 0}
	case sideRight:
		return lin2.Coord2{X: 1, Y: 0}
	case sideTop:
		return lin2.Coord2{X: 0, Y: -1}
	default:
		return lin2.Coord2{X: 0, Y: 1}
	}
}

// rectBehind reports whether r lies entirely behind the ray on every
// axis that contributes motion: if the ray moves only in +x, a rect
// entirely at x < origin.x can never be hit, and likewise for the other
// three half-axes.
func rectBehind(ray Ray, r Rect) bool {
	if ray.Dir.X > lin2.Epsilon && r.Right() < ray.Origin.X {
		return true
	}
	if ray.Dir.X < -lin2.Epsilon && r.Left() > ray.Origin.X {
		return true
	}
	if ray.Dir.Y > lin2.Epsilon && r.Bottom() < ray.Origin.Y {
		return true
	}
	if ray.Dir.Y < -lin2.Epsilon && r.Top() > ray.Origin.Y {
		return true
	}
	return false
}

// rayRectHit is the shared implementation behind every IntersectsRayRect*
// variant: behind-check, origin-inside short circuit, then the two
// facing sides per axis via the ignore-parallel ray-segment test.
func rayRectHit(ray Ray, r Rect) (tEnter float64, nEnter lin2.Coord2, tExit float64, nExit lin2.Coord2, hit bool) {
	if rectBehind(ray, r) {
		return 0, lin2.Coord2{}, 0, lin2.Coord2{}, false
	}
	if PointInRect(ray.Origin, r) {
		tEnter, nEnter = 0, lin2.Coord2{}
		tExit, nExit, hit = sweepExit(ray, r)
		return tEnter, nEnter, tExit, nExit, true
	}

	type candidate struct {
		side rectSide
		seg  LineSegment
	}
	vs := r.vertices()
	candidates := []candidate{
		{sideLeft, LineSegment{vs[0], vs[1]}},
		{sideBottom, LineSegment{vs[1], vs[2]}},
		{sideRight, LineSegment{vs[2], vs[3]}},
		{sideTop, LineSegment{vs[3], vs[0]}},
	}

	bestT := 0.0
	found := false
	var bestSide rectSide
	for _, c := range candidates {
		if ray.Dir.Dot(c.side.normal()) >= 0 {
			continue // only sides facing the ray can be the entry side.
		}
		if t, ok := RaySegmentIntersectionIgnoreParallel(ray, c.seg); ok {
			if !found || t < bestT {
				bestT, bestSide, found = t, c.side, true
			}
		}
	}
	if !found {
		return 0, lin2.Coord2{}, 0, lin2.Coord2{}, false
	}
	tEnter, nEnter = bestT, bestSide.normal()
	tExit, nExit, _ = sweepExit(ray, r)
	return tEnter, nEnter, tExit, nExit, true
}

// sweepExit finds the farthest (exit) intersection of ray with r's
// boundary, used to fill in the *-with-exit output variants.
func sweepExit(ray Ray, r Rect) (t float64, normal lin2.Coord2, ok bool) {
	vs := r.vertices()
	sides := []struct {
		side rectSide
		seg  LineSegment
	}{
		{sideLeft, LineSegment{vs[0], vs[1]}},
		{sideBottom, LineSegment{vs[1], vs[2]}},
		{sideRight, LineSegment{vs[2], vs[3]}},
		{sideTop, LineSegment{vs[3], vs[0]}},
	}
	found := false
	for _, s := range sides {
		if tt, hit := RaySegmentIntersectionIgnoreParallel(ray, s.seg); hit {
			if !found || tt > t {
				t, normal, found = tt, s.side.normal(), true
			}
		}
	}
	return t, normal, found
}

// IntersectsRectBool is the boolean ray-rect intersection test.
func IntersectsRectBool(ray Ray, r Rect) bool {
	_, _, _, _, hit := rayRectHit(ray, r)
	return hit
}

// IntersectsRectT returns the entry distance along the ray.
func IntersectsRectT(ray Ray, r Rect) (t float64, ok bool) {
	tEnter, _, _, _, hit := rayRectHit(ray, r)
	return tEnter, hit
}

// IntersectsRectTNormal returns the entry distance and outward normal.
func IntersectsRectTNormal(ray Ray, r Rect) (t float64, normal lin2.Coord2, ok bool) {
	tEnter, nEnter, _, _, hit := rayRectHit(ray, r)
	return tEnter, nEnter, hit
}

// IntersectsRectEnterExit returns the entry and exit distances.
func IntersectsRectEnterExit(ray Ray, r Rect) (tEnter, tExit float64, ok bool) {
	te, _, tx, _, hit := rayRectHit(ray, r)
	return te, tx, hit
}

// IntersectsRectFull returns entry/exit distances and both normals.
func IntersectsRectFull(ray Ray, r Rect) (tEnter float64, nEnter lin2.Coord2, tExit float64, nExit lin2.Coord2, ok bool) {
	return rayRectHit(ray, r)
}
