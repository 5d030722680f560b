package geom2d

import (
	"log/slog"

	"github.com/gazed/playground2d/lin2"
)

// IntersectsShapeFull type-dispatches a ray/shape query over the
// shape's tag, positioning the shape at pos first (every shape is
// stored in local space; pos translates it into the ray's frame). For
// an unrecognized tag — there are only three today, but the mover's
// collaborator may eventually add more — it falls back to a polygon
// approximation and logs the fallback, mirroring spec.md §4.1's
// documented behavior.
func IntersectsShapeFull(ray Ray, shape Shape, pos lin2.Coord2) (tEnter float64, nEnter lin2.Coord2, tExit float64, nExit lin2.Coord2, ok bool) {
	localRay := Ray{Origin: ray.Origin.Sub(pos), Dir: ray.Dir}
	switch shape.Kind() {
	case KindRect:
		return IntersectsRectFull(localRay, shape.(Rect))
	case KindPolygon:
		return IntersectsPolygonFull(localRay, shape.(Polygon))
	case KindCircle:
		return IntersectsCircleFull(localRay, shape.(Circle))
	default:
		slog.Warn("geom2d: ray intersection against unrecognized shape kind, falling back to polygon approximation", "kind", shape.Kind())
		return IntersectsPolygonFull(localRay, toApproxPolygon(shape))
	}
}

// IntersectsShapeBool is the boolean form of IntersectsShapeFull.
func IntersectsShapeBool(ray Ray, shape Shape, pos lin2.Coord2) bool {
	_, _, _, _, hit := IntersectsShapeFull(ray, shape, pos)
	return hit
}

func toApproxPolygon(shape Shape) Polygon {
	switch s := shape.(type) {
	case Circle:
		return s.ToPolygon()
	case Rect:
		return s.ToPolygon()
	case Polygon:
		return s
	default:
		// No concrete case applies; approximate with the shape's AABB.
		return s.AABB().ToPolygon()
	}
}
