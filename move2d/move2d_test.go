package move2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gazed/playground2d/geom2d"
	"github.com/gazed/playground2d/geom2d/sat"
	"github.com/gazed/playground2d/lin2"
)

// staticBody is a fixed Collidable used as an obstacle in these tests.
type staticBody struct {
	shape geom2d.Shape
	pos   lin2.Coord2
}

func (s staticBody) Position() lin2.Coord2 { return s.pos }
func (s staticBody) Shape() geom2d.Shape   { return s.shape }

// fixedMap is a CollisionMap over a fixed obstacle list, ignoring delta.
type fixedMap struct {
	obstacles []Collidable
}

func (m fixedMap) GetColliding(c Collidable, delta lin2.Coord2) []Collidable {
	return m.obstacles
}

func (m fixedMap) GetCollidingStatic(c Collidable) []Collidable {
	return m.obstacles
}

func TestMoverValidateRejectsDebugPolicy(t *testing.T) {
	m := &Mover{Policy: debug}
	assert.ErrorIs(t, m.Validate(), ErrUnsupportedPolicy)
}

func TestMoverValidateAcceptsCallerFacingPolicies(t *testing.T) {
	for _, p := range []CollisionType{None, Deflection, Reverse, Reflect} {
		m := &Mover{Policy: p}
		assert.NoError(t, m.Validate())
	}
}

func TestMoveNonePolicyIgnoresObstacles(t *testing.T) {
	shape := geom2d.NewRect(0, 0, 10, 10)
	obstacle := staticBody{shape: geom2d.NewRect(20, 0, 10, 10)}
	cmap := fixedMap{obstacles: []Collidable{obstacle}}
	m := NewMover(None)
	end := m.Move(shape, lin2.Coord2{}, lin2.Coord2{X: 20, Y: 0}, cmap)
	assert.True(t, end.Aeq(lin2.Coord2{X: 20, Y: 0}))
}

func TestMoveZeroDeltaIsNoOp(t *testing.T) {
	shape := geom2d.NewRect(0, 0, 10, 10)
	m := NewMover(Deflection)
	start := lin2.Coord2{X: 3, Y: 4}
	end := m.Move(shape, start, lin2.Coord2{}, fixedMap{})
	assert.Equal(t, start, end)
}

// TestFindClosestCollisionStopsShortOfWall exercises move2d scenario 1
// (spec.md §8): a 10x10 mover runs straight into a flush 10x10 wall 20
// units away. The per-step sweep must report a stop just short of the
// wall's face, buffered by CollisionBuffer, with a normal pointing back
// at the mover.
func TestFindClosestCollisionStopsShortOfWall(t *testing.T) {
	shape := geom2d.NewRect(0, 0, 10, 10)
	wall := staticBody{shape: geom2d.NewRect(20, 0, 10, 10)}
	cmap := fixedMap{obstacles: []Collidable{wall}}

	m := NewMover(Deflection)
	s := &step{
		position:      lin2.Coord2{},
		remainingDist: 20,
		originalDir:   lin2.Coord2{X: 1, Y: 0},
		currentDir:    lin2.Coord2{X: 1, Y: 0},
	}
	result := m.findClosestCollision(shape, s, cmap)
	require.Equal(t, sat.Sweep, result)
	assert.True(t, s.normal.Aeq(lin2.Coord2{X: -1, Y: 0}))
	assert.InDelta(t, 9.999, s.moveDist, 1e-3)
}

func TestPushoutDistanceHeadOn(t *testing.T) {
	dist := pushoutDistance(lin2.Coord2{X: 1, Y: 0}, lin2.Coord2{X: -1, Y: 0})
	assert.True(t, lin2.Aeq(dist, CollisionBuffer))
}

func TestPushoutDistanceGlancing(t *testing.T) {
	// A direction exactly parallel to the wall face has no normal
	// component, so no distance along dir reaches the buffer; the helper
	// returns 0 rather than dividing by zero.
	dist := pushoutDistance(lin2.Coord2{X: 0, Y: 1}, lin2.Coord2{X: -1, Y: 0})
	assert.Equal(t, 0.0, dist)
}

// TestMoveDeflectionStopsBeforePenetratingWall is the full-loop version
// of scenario 1: after Move returns, the mover's shape must not overlap
// the wall at the final position.
func TestMoveDeflectionStopsBeforePenetratingWall(t *testing.T) {
	shape := geom2d.NewRect(0, 0, 10, 10)
	wall := staticBody{shape: geom2d.NewRect(20, 0, 10, 10)}
	cmap := fixedMap{obstacles: []Collidable{wall}}

	m := NewMover(Deflection)
	end := m.Move(shape, lin2.Coord2{}, lin2.Coord2{X: 20, Y: 0}, cmap)
	assert.False(t, geom2d.Overlaps(shape, end, wall.shape, wall.pos))
	// The mover should have made real forward progress before stopping.
	assert.True(t, end.X > 9)
}

// TestMoveDeflectionSlidesAroundCorner is scenario 2: a mover approaches
// the corner of a wall off-axis so that Hybrid SAT reports a single
// contact normal, and the remaining distance is redirected along the
// tangent rather than simply stopping.
func TestMoveDeflectionSlidesAroundCorner(t *testing.T) {
	shape := geom2d.NewRect(0, 0, 10, 10)
	wall := staticBody{shape: geom2d.NewRect(20, 5, 10, 20)}
	cmap := fixedMap{obstacles: []Collidable{wall}}

	m := NewMover(Deflection)
	end := m.Move(shape, lin2.Coord2{}, lin2.Coord2{X: 30, Y: 10}, cmap)
	assert.False(t, geom2d.Overlaps(shape, end, wall.shape, wall.pos))
	// Deflection redirects remaining distance along the tangent instead
	// of simply discarding it, so the mover travels further than a bare
	// stop-on-contact policy would.
	traveled := end.Sub(lin2.Coord2{}).Magnitude()
	assert.True(t, traveled > 10)
}

// TestMoveDeflectionWedgeLockTerminates is scenario 3: a mover is driven
// diagonally into the inside corner of a wall to its right and a floor
// below it, whose tangents point back at each other. The bounded loop
// (MaxDepth) and wedge-oscillation detection must guarantee termination
// rather than bouncing forever.
func TestMoveDeflectionWedgeLockTerminates(t *testing.T) {
	shape := geom2d.NewRect(0, 0, 4, 4)
	wall := staticBody{shape: geom2d.NewRect(10, -20, 20, 60)}
	floor := staticBody{shape: geom2d.NewRect(-20, 20, 60, 20)}
	cmap := fixedMap{obstacles: []Collidable{wall, floor}}

	m := NewMover(Deflection)
	end := m.Move(shape, lin2.Coord2{}, lin2.Coord2{X: 100, Y: 100}, cmap)
	assert.False(t, end.X != end.X) // not NaN
	assert.False(t, end.Y != end.Y)
}

// TestMoveDeflectionCorridorSlide is scenario 4: a mover travels down a
// corridor formed by two parallel walls on either side of its path. It
// should reach nearly the full forward delta since the walls are
// parallel to the direction of travel and never produce a stopping
// contact.
func TestMoveDeflectionCorridorSlide(t *testing.T) {
	shape := geom2d.NewRect(0, 0, 4, 4)
	south := staticBody{shape: geom2d.NewRect(-10, 10, 200, 10)}
	north := staticBody{shape: geom2d.NewRect(-10, -20, 200, 10)}
	cmap := fixedMap{obstacles: []Collidable{south, north}}

	m := NewMover(Deflection)
	end := m.Move(shape, lin2.Coord2{}, lin2.Coord2{X: 100, Y: 0}, cmap)
	assert.False(t, geom2d.Overlaps(shape, end, south.shape, south.pos))
	assert.False(t, geom2d.Overlaps(shape, end, north.shape, north.pos))
	assert.InDelta(t, 100, end.X, 1.0)
}

// TestMoveDeflectionDiagonalTriangleCorridor is scenario 5: the corridor
// walls are triangular polygons set at a diagonal. The north wall's
// apex juts to within 2 units of the travel line (less than the
// circle's radius of 3) at x=25, so the mover actually has to detect
// and deflect off a diagonal polygon edge partway through the sweep
// rather than complete an unobstructed straight-line move.
func TestMoveDeflectionDiagonalTriangleCorridor(t *testing.T) {
	lower, err := geom2d.NewPolygon([]lin2.Coord2{
		{X: 0, Y: 20}, {X: 0, Y: 40}, {X: 60, Y: 40},
	})
	require.NoError(t, err)
	upper, err := geom2d.NewPolygon([]lin2.Coord2{
		{X: 0, Y: -10}, {X: 25, Y: -2}, {X: 60, Y: -10},
	})
	require.NoError(t, err)

	shape := geom2d.NewCircle(lin2.Coord2{}, 3)
	south := staticBody{shape: lower}
	north := staticBody{shape: upper}
	cmap := fixedMap{obstacles: []Collidable{south, north}}

	m := NewMover(Deflection)
	end := m.Move(shape, lin2.Coord2{}, lin2.Coord2{X: 50, Y: 0}, cmap)
	assert.False(t, geom2d.Overlaps(shape, end, south.shape, south.pos))
	assert.False(t, geom2d.Overlaps(shape, end, north.shape, north.pos))
	assert.True(t, end.X > 0)
}

func TestMoveReversePolicyInvertsRemainingDelta(t *testing.T) {
	shape := geom2d.NewRect(0, 0, 10, 10)
	wall := staticBody{shape: geom2d.NewRect(20, 0, 10, 10)}
	cmap := fixedMap{obstacles: []Collidable{wall}}

	m := NewMover(Reverse)
	end := m.Move(shape, lin2.Coord2{}, lin2.Coord2{X: 20, Y: 0}, cmap)
	// Reverse stops at contact then inverts the *remaining* distance, so
	// it ends up back behind the origin rather than at the wall.
	assert.True(t, end.X < 1)
}

func TestMoveReflectPolicyBouncesOffNormal(t *testing.T) {
	shape := geom2d.NewRect(0, 0, 10, 10)
	wall := staticBody{shape: geom2d.NewRect(20, 5, 10, 10)}
	cmap := fixedMap{obstacles: []Collidable{wall}}

	m := NewMover(Reflect)
	end := m.Move(shape, lin2.Coord2{}, lin2.Coord2{X: 30, Y: 5}, cmap)
	assert.False(t, geom2d.Overlaps(shape, end, wall.shape, wall.pos))
}

func TestDebugCollisionResolvesOverlap(t *testing.T) {
	shape := geom2d.NewRect(0, 0, 10, 10)
	wall := staticBody{shape: geom2d.NewRect(5, 0, 10, 10)}
	cmap := fixedMap{obstacles: []Collidable{wall}}

	m := NewMover(Deflection)
	s := &step{position: lin2.Coord2{}}
	normal, dist, ok := geom2d.OverlapsMTV(shape, s.position, wall.shape, wall.pos)
	require.True(t, ok)
	s.normal, s.moveDist = normal, dist

	resolved := m.debugCollision(shape, s, cmap)
	assert.True(t, resolved)
	assert.False(t, geom2d.Overlaps(shape, s.position, wall.shape, wall.pos))
}

func TestCollisionInfoCarriesHitID(t *testing.T) {
	shape := geom2d.NewRect(0, 0, 10, 10)
	w := NewWorldMap()
	id := w.Add(staticBody{shape: geom2d.NewRect(20, 0, 10, 10)})

	var got CollisionInfo
	m := NewMover(Deflection)
	m.OnCollision = func(info CollisionInfo) bool {
		got = info
		return true
	}
	_ = m.Move(shape, lin2.Coord2{}, lin2.Coord2{X: 20, Y: 0}, w)
	assert.Equal(t, id, got.HitID)
	assert.True(t, got.Normal.Aeq(lin2.Coord2{X: -1, Y: 0}))
}

