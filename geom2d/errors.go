package geom2d

import "errors"

// ErrInvalidPolygon is returned by authoring-time polygon operations
// (NewPolygon, FindExtendRange, Extend, ClipExtend) when the vertex list
// does not describe a convex, simple polygon with at least three
// vertices. It is never returned from the hot collision path: the only
// polygons a mover or SAT query builds on the fly come from
// Circle.ToPolygon and Rect.ToPolygon, which fall back to an
// unvalidated polygon instead of returning this error, so it only
// surfaces while a scene is being authored.
var ErrInvalidPolygon = errors.New("geom2d: polygon must be convex, simple, and have at least three vertices")
