package move2d

import (
	"github.com/google/uuid"

	"github.com/gazed/playground2d/lin2"
)

// ObstacleID is a stable identity assigned to each Collidable registered
// with a WorldMap, so CollisionInfo.HitID carries a usable identity
// without the caller needing to supply one.
type ObstacleID string

// WorldMap is the default CollisionMap implementation (spec.md §4.4):
// it returns the full registered world with no spatial acceleration.
// The core does not require more; a collaborator with a large scene is
// expected to supply its own spatially-indexed CollisionMap.
type WorldMap struct {
	obstacles []*identifiedCollidable
}

// identifiedCollidable wraps a registered Collidable with the
// ObstacleID WorldMap assigned it at Add time.
type identifiedCollidable struct {
	Collidable
	id ObstacleID
}

func (o *identifiedCollidable) ID() ObstacleID { return o.id }

// NewWorldMap returns an empty WorldMap.
func NewWorldMap() *WorldMap { return &WorldMap{} }

// Add registers c and returns the ObstacleID assigned to it.
func (w *WorldMap) Add(c Collidable) ObstacleID {
	id := ObstacleID(uuid.NewString())
	w.obstacles = append(w.obstacles, &identifiedCollidable{Collidable: c, id: id})
	return id
}

// Remove unregisters the obstacle previously returned by Add with id.
func (w *WorldMap) Remove(id ObstacleID) {
	for i, o := range w.obstacles {
		if o.id == id {
			w.obstacles = append(w.obstacles[:i], w.obstacles[i+1:]...)
			return
		}
	}
}

// GetColliding implements CollisionMap: every registered obstacle,
// regardless of delta — the contract (spec.md §4.4) permits a
// conservative list, and this map performs no spatial filtering at
// all. The moving collidable c is never itself registered as an
// obstacle (callers add obstacles with Add, and pass the mover's own
// collider to Move separately), so the "must not appear in the
// returned list" contract holds without an identity check here — one
// is deliberately not attempted, since a Collidable backed by a
// Polygon is not comparable with ==.
func (w *WorldMap) GetColliding(c Collidable, delta lin2.Coord2) []Collidable {
	_ = c
	_ = delta
	out := make([]Collidable, 0, len(w.obstacles))
	for _, o := range w.obstacles {
		out = append(out, o)
	}
	return out
}

// GetCollidingStatic implements CollisionMap as GetColliding with a
// zero delta.
func (w *WorldMap) GetCollidingStatic(c Collidable) []Collidable {
	return w.GetColliding(c, lin2.Coord2{})
}
