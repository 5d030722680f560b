package geom2d

import "github.com/gazed/playground2d/lin2"

// polyBehind is the AABB behind-check for a polygon, reusing the rect
// behind-check against the polygon's cached bounds.
func polyBehind(ray Ray, p Polygon) bool {
	return rectBehind(ray, p.bounds)
}

// pointInPolygon reports whether q lies inside the convex polygon p,
// via the turn test on each edge. p's vertices wind the way
// isConvexCCW requires (matching Rect.vertices()/Circle.ToPolygon), so
// an interior point turns the same non-positive way relative to every
// edge; a point strictly on the positive side of any edge is outside.
func pointInPolygon(p Polygon, q lin2.Coord2) bool {
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		a, b := p.vertices[i], p.vertices[(i+1)%n]
		if direction(a, b, q) > lin2.Epsilon {
			return false
		}
	}
	return true
}

// sweepEdges sweeps every edge of p with the ignore-parallel
// ray-segment test and tracks the smallest and largest hit t along with
// the corresponding edge normals. edges restricts the sweep to a subset
// of edge indices; a nil edges sweeps every edge.
func sweepEdges(ray Ray, p Polygon, edges []int) (tEnter float64, nEnter lin2.Coord2, tExit float64, nExit lin2.Coord2, hit bool) {
	n := len(p.vertices)
	indices := edges
	if indices == nil {
		indices = make([]int, n)
		for i := range indices {
			indices[i] = i
		}
	}
	found := false
	for _, i := range indices {
		a, b := p.vertices[i], p.vertices[(i+1)%n]
		seg := LineSegment{a, b}
		if t, ok := RaySegmentIntersectionIgnoreParallel(ray, seg); ok {
			if !found {
				tEnter, nEnter = t, p.normals[i]
				tExit, nExit = t, p.normals[i]
				found = true
				continue
			}
			if t < tEnter {
				tEnter, nEnter = t, p.normals[i]
			}
			if t > tExit {
				tExit, nExit = t, p.normals[i]
			}
		}
	}
	return tEnter, nEnter, tExit, nExit, found
}

// rayPolygonHit is the shared full-sweep implementation: behind-check,
// origin-inside short circuit (t=0), else sweep every edge.
func rayPolygonHit(ray Ray, p Polygon) (tEnter float64, nEnter lin2.Coord2, tExit float64, nExit lin2.Coord2, hit bool) {
	if polyBehind(ray, p) {
		return 0, lin2.Coord2{}, 0, lin2.Coord2{}, false
	}
	if pointInPolygon(p, ray.Origin) {
		_, _, tExit, nExit, _ = sweepEdges(ray, p, nil)
		return 0, lin2.Coord2{}, tExit, nExit, true
	}
	return sweepEdges(ray, p, nil)
}

// rayPolygonHitSubRange is the supplemented (SPEC_FULL §4.7) sub-range
// variant: the original source left this stubbed, always returning
// false, with a comment sketching a getVerticesInDirection(-dir) scan.
// This completes it: FindExtendRange(-dir) identifies the contiguous
// arc of vertices facing the ray, and only that arc's edges are swept.
// If no hit is found in the arc (which should not normally happen for
// a convex polygon, since the facing arc is exactly where the ray can
// enter) the full edge list is swept as a fallback, so this never
// silently drops a hit the naive full sweep would have found.
func rayPolygonHitSubRange(ray Ray, p Polygon) (tEnter float64, nEnter lin2.Coord2, tExit float64, nExit lin2.Coord2, hit bool) {
	if polyBehind(ray, p) {
		return 0, lin2.Coord2{}, 0, lin2.Coord2{}, false
	}
	if pointInPolygon(p, ray.Origin) {
		_, _, tExit, nExit, _ = sweepEdges(ray, p, nil)
		return 0, lin2.Coord2{}, tExit, nExit, true
	}

	first, last, _, _, err := p.FindExtendRange(ray.Dir.Neg())
	if err != nil {
		return sweepEdges(ray, p, nil)
	}
	n := len(p.vertices)
	var edges []int
	i := first
	for {
		edges = append(edges, i)
		if i == last {
			break
		}
		i = (i + 1) % n
	}
	if tEnter, nEnter, tExit, nExit, hit = sweepEdges(ray, p, edges); hit {
		return tEnter, nEnter, tExit, nExit, hit
	}
	return sweepEdges(ray, p, nil)
}

// IntersectsPolygonBool is the boolean ray-polygon intersection test.
func IntersectsPolygonBool(ray Ray, p Polygon) bool {
	_, _, _, _, hit := rayPolygonHit(ray, p)
	return hit
}

// IntersectsPolygonT returns the entry distance along the ray, computed
// over the narrowed facing-arc sub-range (SPEC_FULL §4.7) rather than a
// full edge sweep.
func IntersectsPolygonT(ray Ray, p Polygon) (t float64, ok bool) {
	tEnter, _, _, _, hit := rayPolygonHitSubRange(ray, p)
	return tEnter, hit
}

// IntersectsPolygonTNormal returns the entry distance and edge normal.
func IntersectsPolygonTNormal(ray Ray, p Polygon) (t float64, normal lin2.Coord2, ok bool) {
	tEnter, nEnter, _, _, hit := rayPolygonHitSubRange(ray, p)
	return tEnter, nEnter, hit
}

// IntersectsPolygonEnterExit returns the entry and exit distances.
func IntersectsPolygonEnterExit(ray Ray, p Polygon) (tEnter, tExit float64, ok bool) {
	te, _, tx, _, hit := rayPolygonHit(ray, p)
	return te, tx, hit
}

// IntersectsPolygonFull returns entry/exit distances and both normals.
func IntersectsPolygonFull(ray Ray, p Polygon) (tEnter float64, nEnter lin2.Coord2, tExit float64, nExit lin2.Coord2, ok bool) {
	return rayPolygonHit(ray, p)
}
