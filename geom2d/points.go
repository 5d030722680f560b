package geom2d

import "github.com/gazed/playground2d/lin2"

// PointInRect reports whether p lies within r, inclusive of the
// boundary within lin2.Epsilon.
func PointInRect(p lin2.Coord2, r Rect) bool {
	return p.X >= r.Left()-lin2.Epsilon && p.X <= r.Right()+lin2.Epsilon &&
		p.Y >= r.Top()-lin2.Epsilon && p.Y <= r.Bottom()+lin2.Epsilon
}

// PointOnSegment reports whether p lies on segment s, inclusive,
// within lin2.Epsilon. The point's bounding box must lie within the
// segment's AABB (expanded by ε); for non-degenerate segments the line
// equation is then verified within ε.
func PointOnSegment(p lin2.Coord2, s LineSegment) bool {
	if s.IsPoint() {
		return p.Aeq(s.Start)
	}
	minX, maxX := minMax(s.Start.X, s.End.X)
	minY, maxY := minMax(s.Start.Y, s.End.Y)
	if p.X < minX-lin2.Epsilon || p.X > maxX+lin2.Epsilon ||
		p.Y < minY-lin2.Epsilon || p.Y > maxY+lin2.Epsilon {
		return false
	}
	v := s.Vector()
	// Cross product of (p - start) and v is zero (within ε·|v|) iff p
	// lies on the infinite line through s.
	cross := p.Sub(s.Start).Cross(v)
	return cross*cross <= lin2.Epsilon*lin2.Epsilon*v.Magnitude2()
}

// PointOnRay reports whether p lies on ray r, inclusive, within
// lin2.Epsilon: p must lie on the infinite line through r and on the
// correct side of r.Origin along r.Dir.
func PointOnRay(p lin2.Coord2, r Ray) bool {
	toP := p.Sub(r.Origin)
	cross := toP.Cross(r.Dir)
	if cross*cross > lin2.Epsilon*lin2.Epsilon {
		return false
	}
	return toP.Dot(r.Dir) >= -lin2.Epsilon
}

func minMax(a, b float64) (min, max float64) {
	if a <= b {
		return a, b
	}
	return b, a
}
