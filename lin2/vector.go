package lin2

import "math"

// Coord2 is a 2D vector. It is also used as a 2D point: a point is a
// vector from the origin. Unlike the 3D math used elsewhere in this
// family of packages, Coord2 is a small value type — callers pass and
// return it by value rather than mutating through a pointer, matching
// how the original playground's Coord2 class (operator overloads
// returning new values) reads.
type Coord2 struct {
	X float64
	Y float64
}

// NewCoord2 returns a vector with the given elements.
func NewCoord2(x, y float64) Coord2 { return Coord2{x, y} }

// GetS returns the float64 values of the vector.
func (v Coord2) GetS() (x, y float64) { return v.X, v.Y }

// Eq (==) returns true if v and a have exactly the same elements.
func (v Coord2) Eq(a Coord2) bool { return v.X == a.X && v.Y == a.Y }

// Aeq (~=) almost-equals returns true if v and a have essentially the
// same elements. Used where a direct comparison is unlikely to return
// true due to floating point drift.
func (v Coord2) Aeq(a Coord2) bool { return Aeq(v.X, a.X) && Aeq(v.Y, a.Y) }

// IsZero returns true if v is exactly the zero vector.
func (v Coord2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// AeqZ (~=) almost-equals-zero returns true if the square length of v is
// close enough to zero that it makes no difference.
func (v Coord2) AeqZ() bool { return v.Dot(v) < Epsilon }

// Add returns v + a.
func (v Coord2) Add(a Coord2) Coord2 { return Coord2{v.X + a.X, v.Y + a.Y} }

// Sub returns v - a.
func (v Coord2) Sub(a Coord2) Coord2 { return Coord2{v.X - a.X, v.Y - a.Y} }

// Neg returns -v.
func (v Coord2) Neg() Coord2 { return Coord2{-v.X, -v.Y} }

// Scale returns v scaled by s.
func (v Coord2) Scale(s float64) Coord2 { return Coord2{v.X * s, v.Y * s} }

// Dot returns the dot product of v and a.
func (v Coord2) Dot(a Coord2) float64 { return v.X*a.X + v.Y*a.Y }

// Cross returns the 2D "cross product" of v and a: the Z component of
// the 3D cross product of (v.X, v.Y, 0) and (a.X, a.Y, 0). With y
// increasing downward, its sign indicates whether a is clockwise
// (positive) or counter-clockwise (negative) from v on screen.
func (v Coord2) Cross(a Coord2) float64 { return v.X*a.Y - v.Y*a.X }

// Magnitude2 returns the squared length of v. Cheaper than Magnitude
// when only comparing lengths.
func (v Coord2) Magnitude2() float64 { return v.Dot(v) }

// Magnitude returns the length of v.
func (v Coord2) Magnitude() float64 { return math.Sqrt(v.Magnitude2()) }

// Normalize returns the unit vector in the direction of v. The zero
// vector normalizes to itself.
func (v Coord2) Normalize() Coord2 {
	m := v.Magnitude()
	if m < Epsilon {
		return Coord2{}
	}
	return Coord2{v.X / m, v.Y / m}
}

// PerpCW returns v rotated 90 degrees clockwise (in a coordinate system
// with y increasing downward, this turns (1,0) into (0,1)).
func (v Coord2) PerpCW() Coord2 { return Coord2{-v.Y, v.X} }

// PerpCCW returns v rotated 90 degrees counter-clockwise.
func (v Coord2) PerpCCW() Coord2 { return Coord2{v.Y, -v.X} }

// Project returns the projection of v onto the line through the origin
// in direction onto, scaled to have length dist in that direction (or
// the opposite direction, if v's component along onto is negative). If
// v has no component along onto, the result is the zero vector. onto
// need not be unit length; it is normalized internally.
func (v Coord2) Project(onto Coord2, dist float64) Coord2 {
	dir := onto.Normalize()
	d := v.Dot(dir)
	if AeqZ(d) {
		return Coord2{}
	}
	sign := 1.0
	if d < 0 {
		sign = -1.0
	}
	return dir.Scale(sign * dist)
}

// Lerp returns the linear interpolation between v and a by ratio t.
func (v Coord2) Lerp(a Coord2, t float64) Coord2 {
	return Coord2{v.X + (a.X-v.X)*t, v.Y + (a.Y-v.Y)*t}
}

// ClosestPointOnLine returns the point on the infinite line through a and
// b that is closest to p.
func ClosestPointOnLine(a, b, p Coord2) Coord2 {
	ab := b.Sub(a)
	len2 := ab.Magnitude2()
	if len2 < Epsilon {
		return a
	}
	t := p.Sub(a).Dot(ab) / len2
	return a.Add(ab.Scale(t))
}

// ClosestPointOnRay returns the point on the ray (origin, dir), treated
// as an infinite line, that is closest to p. dir is assumed unit length.
func ClosestPointOnRay(origin, dir, p Coord2) Coord2 {
	return origin.Add(dir.Scale(p.Sub(origin).Dot(dir)))
}

// ClosestPointOnSegment returns the point on the segment [a,b] (not the
// infinite line through them) closest to p.
func ClosestPointOnSegment(a, b, p Coord2) Coord2 {
	ab := b.Sub(a)
	len2 := ab.Magnitude2()
	if len2 < Epsilon {
		return a
	}
	t := Clamp(0, 1, p.Sub(a).Dot(ab)/len2)
	return a.Add(ab.Scale(t))
}

// Reflect returns v reflected about the surface with unit normal n.
func Reflect(v, n Coord2) Coord2 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}
