package geom2d

import "github.com/gazed/playground2d/lin2"

// Ray is (origin, dir) with dir required to be unit-length and infinite
// forward extent.
type Ray struct {
	Origin lin2.Coord2
	Dir    lin2.Coord2
}

// NewRay returns the ray from origin in the direction dir, normalizing
// dir so callers need not pre-normalize.
func NewRay(origin, dir lin2.Coord2) Ray {
	return Ray{Origin: origin, Dir: dir.Normalize()}
}

// At returns the point origin + dir·t.
func (r Ray) At(t float64) lin2.Coord2 { return r.Origin.Add(r.Dir.Scale(t)) }

// LineSegment is (start, end). A zero-length segment (Start == End) is
// permitted and is treated as a point by every intersection test in
// this package.
type LineSegment struct {
	Start lin2.Coord2
	End   lin2.Coord2
}

// NewLineSegment returns the segment from start to end.
func NewLineSegment(start, end lin2.Coord2) LineSegment {
	return LineSegment{Start: start, End: end}
}

// Vector returns End - Start.
func (s LineSegment) Vector() lin2.Coord2 { return s.End.Sub(s.Start) }

// IsPoint reports whether the segment has zero length.
func (s LineSegment) IsPoint() bool { return s.Start.Aeq(s.End) }
