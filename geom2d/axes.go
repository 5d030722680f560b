package geom2d

import (
	"log/slog"

	"github.com/gazed/playground2d/lin2"
)

// separatingAxesOneSided implements spec.md §4.3.1's per-type builder:
// given a at posA and b at posB with offset = posA − posB, it appends
// the axes a's type contributes and reports whether the pair is a
// terminating special case (Rect-Rect, Circle-Circle) that already
// accounts for both shapes.
func separatingAxesOneSided(a Shape, b Shape, offset lin2.Coord2, axes []lin2.Coord2) ([]lin2.Coord2, bool) {
	switch s := a.(type) {
	case Rect:
		axes = append(axes, lin2.Coord2{X: 1, Y: 0}, lin2.Coord2{X: 0, Y: 1})
		if _, ok := b.(Rect); ok {
			return axes, true
		}
		return axes, false
	case Polygon:
		for i := range s.normals {
			axes = append(axes, s.normals[i])
		}
		return axes, false
	case Circle:
		aPos := s.Center.Add(offset)
		if bc, ok := b.(Circle); ok {
			axis := aPos.Sub(bc.Center)
			if axis.IsZero() {
				axis = lin2.Coord2{X: 0, Y: 1}
			} else {
				axis = axis.Normalize()
			}
			return append(axes, axis), true
		}
		axis := b.ClosestPoint(aPos).Sub(aPos)
		if !axis.IsZero() {
			axes = append(axes, axis.Normalize())
		}
		return axes, false
	default:
		slog.Warn("geom2d: unhandled shape type for SAT, converting to polygon", "kind", a.Kind())
		p := toApproxPolygon(a)
		for i := range p.normals {
			axes = append(axes, p.normals[i])
		}
		return axes, false
	}
}

// SeparatingAxes returns the full candidate axis set for the pair (a,
// b) at (posA, posB), per spec.md §4.3.1. All returned axes are unit
// length. Exported so geom2d/sat can reuse the exact same axis
// enumeration for the Hybrid SAT sweep.
func SeparatingAxes(a Shape, posA lin2.Coord2, b Shape, posB lin2.Coord2) []lin2.Coord2 {
	offset := posA.Sub(posB)
	axes, terminal := separatingAxesOneSided(a, b, offset, nil)
	if terminal {
		return axes
	}
	axes, _ = separatingAxesOneSided(b, a, offset.Neg(), axes)
	return axes
}
