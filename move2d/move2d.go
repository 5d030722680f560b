// Package move2d implements the iterative deflection mover (spec.md
// §4.5): a bounded loop that consumes the Hybrid SAT engine to advance
// a shape along a delta while sliding along contact surfaces, detects
// wedge lock-in, and resolves accidental penetration through an
// MTV-based pushout recovery loop with oscillation detection.
//
// Package move2d is provided as part of the playground2d collision
// core.
package move2d

import (
	"errors"
	"log/slog"

	"github.com/gazed/playground2d/geom2d"
	"github.com/gazed/playground2d/geom2d/sat"
	"github.com/gazed/playground2d/lin2"
)

// Numeric constants, spec.md §6.
const (
	CollisionBuffer           = 1e-3
	WedgeMoveThresh           = 1e-4
	MaxDepth                  = 25
	CollisionDebugMaxAttempts = 3
)

// ErrUnsupportedPolicy is returned by Validate for a policy that is not
// a caller-facing behavior (_Debug), or — in the original source — was
// simply never finished (Reverse and Reflect are, however, implemented
// by this expansion; see SPEC_FULL §4.8). Move does not return it: it
// logs the error and returns the origin unchanged.
var ErrUnsupportedPolicy = errors.New("move2d: unsupported collision policy")

// CollisionType selects the mover's per-step behavior.
type CollisionType int

const (
	// None advances the mover by the full delta with no collision
	// response at all.
	None CollisionType = iota
	// Deflection slides the mover along contact surfaces, stopping
	// short of penetration (spec.md §4.5.2).
	Deflection
	// Reverse stops on first contact and inverts the remaining delta
	// (SPEC_FULL §4.8).
	Reverse
	// Reflect replaces the tangent projection with a physical
	// reflection and continues the deflection loop (SPEC_FULL §4.8).
	Reflect
	// debug is the MTV recovery sub-routine exposed as a policy in the
	// original source for internal testing only; it is not a
	// caller-facing behavior: Validate returns ErrUnsupportedPolicy for
	// it, and Move logs that error and returns the origin unchanged,
	// matching spec.md §7's error table.
	debug
)

// Collidable is anything with a current world position and a shape.
// The shape is expressed in local coordinates and translated by
// Position at query time.
type Collidable interface {
	Position() lin2.Coord2
	Shape() geom2d.Shape
}

// Identifiable is implemented by a Collidable that has a stable
// identity a caller can use to recognize "the same obstacle" across
// calls. CollisionInfo.HitID is populated from this when the collidable
// that was hit implements it.
type Identifiable interface {
	ID() ObstacleID
}

// CollisionMap is the obstacle-source trait (spec.md §4.4): the core
// never owns the world, so the caller supplies this to list candidates
// whose AABBs may overlap a collidable's swept (or static) AABB. The
// list may be conservative — false positives are fine, false negatives
// are a correctness bug — and must never include c itself.
type CollisionMap interface {
	// GetColliding returns candidates for c's swept AABB along delta.
	GetColliding(c Collidable, delta lin2.Coord2) []Collidable
	// GetCollidingStatic returns candidates for c's static AABB
	// (equivalent to GetColliding with a zero delta).
	GetCollidingStatic(c Collidable) []Collidable
}

// CollisionInfo is passed to the OnCollision callback (spec.md §4.5.4).
type CollisionInfo struct {
	Normal        lin2.Coord2
	Collider      geom2d.Shape
	Position      lin2.Coord2
	RemainingDist float64
	OriginalDir   lin2.Coord2
	CurrentDir    lin2.Coord2
	Hit           Collidable
	HitID         ObstacleID
}

// Mover carries a collision policy and an optional collision callback
// (spec.md §3, §4.5). It is not itself a Collidable: the shape and
// position are passed to each Move call, and per-step scratch state
// lives only for the duration of that call.
type Mover struct {
	Policy CollisionType

	// OnCollision is invoked on every contact during deflection
	// (spec.md §4.5.4). Returning false stops the step early — a
	// velocity-carrying caller can use this to project its velocity
	// along the contact tangent. A nil OnCollision always continues.
	OnCollision func(info CollisionInfo) bool
}

// NewMover returns a Mover using the given collision policy.
func NewMover(policy CollisionType) *Mover {
	return &Mover{Policy: policy}
}

// anonCollidable adapts a bare (shape, position) pair to Collidable so
// the mover itself can be passed to the caller's CollisionMap.
type anonCollidable struct {
	shape geom2d.Shape
	pos   lin2.Coord2
}

func (a anonCollidable) Position() lin2.Coord2 { return a.pos }
func (a anonCollidable) Shape() geom2d.Shape   { return a.shape }

// Validate reports ErrUnsupportedPolicy if m.Policy is not one of the
// caller-facing policies (None, Deflection, Reverse, Reflect). _Debug
// is the MTV recovery sub-routine exposed as a policy in the original
// source for internal testing only and is never a valid construction
// argument.
func (m *Mover) Validate() error {
	switch m.Policy {
	case None, Deflection, Reverse, Reflect:
		return nil
	default:
		return ErrUnsupportedPolicy
	}
}

// Move advances shape from origin by delta against cmap according to
// m.Policy, returning the resulting position (spec.md §4.5.1).
func (m *Mover) Move(shape geom2d.Shape, origin, delta lin2.Coord2, cmap CollisionMap) lin2.Coord2 {
	if delta.Magnitude() < lin2.Epsilon {
		return origin
	}
	if err := m.Validate(); err != nil {
		slog.Error("move2d: unsupported collision policy", "policy", m.Policy, "error", err)
		return origin
	}

	switch m.Policy {
	case None:
		return origin.Add(delta)
	case Deflection:
		return m.moveDeflection(shape, origin, delta, cmap)
	case Reverse:
		return m.moveReverse(shape, origin, delta, cmap)
	default: // Reflect
		return m.moveDeflectionPolicy(shape, origin, delta, cmap, true)
	}
}

// step holds the per-call mutable scratch state (spec.md §4.5.1).
type step struct {
	position      lin2.Coord2
	remainingDist float64
	originalDir   lin2.Coord2
	currentDir    lin2.Coord2
	moveDist      float64
	normal        lin2.Coord2
	isCollision   bool
	hit           Collidable
}

func (m *Mover) moveDeflection(shape geom2d.Shape, origin, delta lin2.Coord2, cmap CollisionMap) lin2.Coord2 {
	return m.moveDeflectionPolicy(shape, origin, delta, cmap, false)
}

// moveDeflectionPolicy runs the bounded deflection loop (spec.md
// §4.5.2). When reflect is true, step 6's tangent projection is
// replaced by a physical reflection of the original direction about the
// contact normal (SPEC_FULL §4.8's Reflect policy); everything else —
// wedge detection, pushout, MTV recovery — applies unchanged.
func (m *Mover) moveDeflectionPolicy(shape geom2d.Shape, origin, delta lin2.Coord2, cmap CollisionMap, reflect bool) lin2.Coord2 {
	total := delta.Magnitude()
	s := &step{
		position:      origin,
		remainingDist: total,
		originalDir:   delta.Scale(1 / total),
	}
	s.currentDir = s.originalDir

	prevAngle := 0.0
	for depth := 0; depth < MaxDepth; depth++ {
		result := m.findClosestCollision(shape, s, cmap)
		if result == sat.MTV {
			m.debugCollision(shape, s, cmap)
			return s.position
		}

		s.position = s.position.Add(s.currentDir.Scale(s.moveDist))
		if !s.isCollision {
			return s.position
		}
		s.remainingDist -= s.moveDist

		info := CollisionInfo{
			Normal:        s.normal,
			Collider:      shape,
			Position:      s.position,
			RemainingDist: s.remainingDist,
			OriginalDir:   s.originalDir,
			CurrentDir:    s.currentDir,
			Hit:           s.hit,
		}
		if id, ok := s.hit.(Identifiable); ok {
			info.HitID = id.ID()
		}
		if m.OnCollision != nil && !m.OnCollision(info) {
			return s.position
		}

		if s.remainingDist < lin2.Epsilon || s.normal.IsZero() {
			return s.position
		}

		var projected lin2.Coord2
		if reflect {
			projected = lin2.Reflect(s.originalDir, s.normal).Scale(s.remainingDist)
		} else {
			tangent := s.normal.PerpCW()
			projected = s.originalDir.Project(tangent, s.remainingDist)
		}
		s.remainingDist = projected.Magnitude()
		if s.remainingDist < lin2.Epsilon {
			return s.position
		}
		s.currentDir = projected.Scale(1 / s.remainingDist)

		currAngle := 0.0
		if s.moveDist < WedgeMoveThresh {
			dot := s.originalDir.Dot(s.currentDir)
			if s.originalDir.Cross(s.currentDir) < 0 {
				currAngle = -dot
			} else {
				currAngle = dot
			}
			if prevAngle != 0 {
				oscillating := currAngle <= prevAngle
				if prevAngle < 0 {
					oscillating = currAngle >= prevAngle
				}
				if oscillating {
					return s.position
				}
			}
		}
		prevAngle = currAngle
	}
	slog.Warn("move2d: maximum movement attempts used, stopping deflection", "maxDepth", MaxDepth)
	return s.position
}

// moveReverse implements the Reverse policy (SPEC_FULL §4.8): stop
// advancing on first contact and invert the remaining delta. Unlike
// Deflection/Reflect, this performs a single contact only — there is
// no loop continuation.
func (m *Mover) moveReverse(shape geom2d.Shape, origin, delta lin2.Coord2, cmap CollisionMap) lin2.Coord2 {
	total := delta.Magnitude()
	s := &step{
		position:      origin,
		remainingDist: total,
		originalDir:   delta.Scale(1 / total),
	}
	s.currentDir = s.originalDir

	result := m.findClosestCollision(shape, s, cmap)
	if result == sat.MTV {
		m.debugCollision(shape, s, cmap)
		return s.position
	}
	s.position = s.position.Add(s.currentDir.Scale(s.moveDist))
	if !s.isCollision {
		return s.position
	}
	s.remainingDist -= s.moveDist
	reversed := s.currentDir.Neg().Scale(s.remainingDist)
	return s.position.Add(reversed)
}

// findClosestCollision asks cmap for candidates against the current
// swept delta and runs Hybrid SAT against each, recording the nearest
// SWEEP or aborting early on MTV (spec.md §4.5.2 step 1).
func (m *Mover) findClosestCollision(shape geom2d.Shape, s *step, cmap CollisionMap) sat.Result {
	s.isCollision = false
	delta := s.currentDir.Scale(s.remainingDist)
	self := anonCollidable{shape: shape, pos: s.position}
	candidates := cmap.GetColliding(self, delta)

	interval := 1.0
	for _, obj := range candidates {
		result, normal, t := sat.Collide(shape, s.position, delta, obj.Shape(), obj.Position())
		switch result {
		case sat.Sweep:
			s.isCollision = true
			if interval > t {
				interval = t
				s.normal = normal
				s.hit = obj
			}
			if interval < lin2.Epsilon {
				s.moveDist = 0
				return sat.Sweep
			}
		case sat.MTV:
			s.isCollision = true
			s.moveDist = t
			s.normal = normal
			s.hit = obj
			return sat.MTV
		}
	}
	if !s.isCollision {
		s.moveDist = s.remainingDist
		return sat.None
	}
	s.moveDist = s.remainingDist*interval - pushoutDistance(s.currentDir, s.normal)
	if s.moveDist < 0 {
		s.moveDist = 0
	}
	return sat.Sweep
}

// pushoutDistance is the hypotenuse length that, subtracted along dir,
// leaves a perpendicular gap of CollisionBuffer to the contact surface
// (spec.md §4.5.2 step 2).
func pushoutDistance(dir, normal lin2.Coord2) float64 {
	d := normal.Dot(dir)
	if d < 0 {
		d = -d
	}
	if d < lin2.Epsilon {
		return 0
	}
	dist := CollisionBuffer / d
	if dist < 0 {
		return 0
	}
	return dist
}

// debugCollision is the MTV recovery sub-routine (spec.md §4.5.3): when
// SAT returns MTV, the mover is already penetrating, possibly due to
// numerical drift. It pushes out along the recorded normal and
// re-queries the map in overlap mode, up to CollisionDebugMaxAttempts
// times, aborting on detected oscillation.
func (m *Mover) debugCollision(shape geom2d.Shape, s *step, cmap CollisionMap) bool {
	slog.Debug("move2d: debugging MTV collision")
	history := make([]lin2.Coord2, 0, CollisionDebugMaxAttempts+1)
	history = append(history, s.position)
	s.position = s.position.Add(s.normal.Scale(s.moveDist + CollisionBuffer))
	history = append(history, s.position)

	for i := 1; i < CollisionDebugMaxAttempts; i++ {
		self := anonCollidable{shape: shape, pos: s.position}
		candidates := cmap.GetCollidingStatic(self)
		s.isCollision = false
		for _, obj := range candidates {
			if normal, dist, ok := geom2d.OverlapsMTV(shape, s.position, obj.Shape(), obj.Position()); ok {
				s.isCollision = true
				s.normal = normal
				s.moveDist = dist
				break
			}
		}
		if !s.isCollision {
			slog.Debug("move2d: MTV collision resolved", "attempts", i)
			return true
		}
		s.position = s.position.Add(s.normal.Scale(s.moveDist + CollisionBuffer))
		for _, p := range history {
			if p.Aeq(s.position) {
				slog.Warn("move2d: MTV collision could not be resolved, mover is oscillating between objects")
				return false
			}
		}
		history = append(history, s.position)
	}
	slog.Warn("move2d: max debug attempts used, MTV collision may not be resolved", "maxAttempts", CollisionDebugMaxAttempts)
	return false
}
