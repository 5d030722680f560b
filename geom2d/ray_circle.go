package geom2d

import (
	"math"

	"github.com/gazed/playground2d/lin2"
)

// rayCircleHit solves the quadratic (dir·dir)t² − 2(v·dir)t + (v·v − r²) = 0
// where v = center − origin. A discriminant < 0 is a miss. When the
// smaller root is negative the ray's origin is inside the circle;
// tEnter is clamped to 0 and its normal to the zero vector (there is no
// meaningful entry surface). The exit normal is always the unit vector
// from the center to the exit point.
func rayCircleHit(ray Ray, c Circle) (tEnter float64, nEnter lin2.Coord2, tExit float64, nExit lin2.Coord2, hit bool) {
	v := c.Center.Sub(ray.Origin)
	if v.Dot(ray.Dir) < -c.Radius {
		return 0, lin2.Coord2{}, 0, lin2.Coord2{}, false
	}

	a := ray.Dir.Dot(ray.Dir)
	b := -2 * v.Dot(ray.Dir)
	cc := v.Dot(v) - c.Radius*c.Radius
	disc := b*b - 4*a*cc
	if disc < 0 {
		return 0, lin2.Coord2{}, 0, lin2.Coord2{}, false
	}
	sq := math.Sqrt(disc)
	t0 := (-b - sq) / (2 * a)
	t1 := (-b + sq) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	if t1 < -lin2.Epsilon {
		return 0, lin2.Coord2{}, 0, lin2.Coord2{}, false
	}

	exitPoint := ray.At(t1)
	nExit = exitPoint.Sub(c.Center).Normalize()
	tExit = t1

	if t0 < 0 {
		return 0, lin2.Coord2{}, tExit, nExit, true
	}
	enterPoint := ray.At(t0)
	nEnter = enterPoint.Sub(c.Center).Normalize()
	return t0, nEnter, tExit, nExit, true
}

// IntersectsCircleBool is the boolean ray-circle intersection test.
func IntersectsCircleBool(ray Ray, c Circle) bool {
	_, _, _, _, hit := rayCircleHit(ray, c)
	return hit
}

// IntersectsCircleT returns the entry distance along the ray.
func IntersectsCircleT(ray Ray, c Circle) (t float64, ok bool) {
	tEnter, _, _, _, hit := rayCircleHit(ray, c)
	return tEnter, hit
}

// IntersectsCircleTNormal returns the entry distance and normal.
func IntersectsCircleTNormal(ray Ray, c Circle) (t float64, normal lin2.Coord2, ok bool) {
	tEnter, nEnter, _, _, hit := rayCircleHit(ray, c)
	return tEnter, nEnter, hit
}

// IntersectsCircleEnterExit returns the entry and exit distances.
func IntersectsCircleEnterExit(ray Ray, c Circle) (tEnter, tExit float64, ok bool) {
	te, _, tx, _, hit := rayCircleHit(ray, c)
	return te, tx, hit
}

// IntersectsCircleFull returns entry/exit distances and both normals.
func IntersectsCircleFull(ray Ray, c Circle) (tEnter float64, nEnter lin2.Coord2, tExit float64, nExit lin2.Coord2, ok bool) {
	return rayCircleHit(ray, c)
}
