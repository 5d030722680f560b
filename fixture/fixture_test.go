package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gazed/playground2d/geom2d"
)

func TestLoadDecodesObstaclesAndMover(t *testing.T) {
	data := []byte(`
name: straight-on-stop
obstacles:
  - name: wall
    kind: rect
    w: 10
    h: 10
    pos: {x: 20, y: 0}
mover:
  shape:
    kind: rect
    w: 10
    h: 10
  pos: {x: 0, y: 0}
  delta: {x: 20, y: 0}
  policy: deflection
expect:
  has_hit: true
  final_pos: {x: 9.999, y: 0}
`)
	scene, err := Load(data)
	require.NoError(t, err)

	assert.Equal(t, "straight-on-stop", scene.Name)
	require.Len(t, scene.Obstacles, 1)
	assert.Equal(t, "wall", scene.Obstacles[0].Name)
	assert.Equal(t, geom2d.NewRect(0, 0, 10, 10), scene.Obstacles[0].Shape)
	assert.Equal(t, 20.0, scene.Obstacles[0].Pos.X)

	require.NotNil(t, scene.Mover)
	assert.Equal(t, "deflection", scene.Mover.Policy)
	assert.Equal(t, 20.0, scene.Mover.Delta.X)

	assert.True(t, scene.Expect.HasHit)
	require.NotNil(t, scene.Expect.FinalPos)
	assert.InDelta(t, 9.999, scene.Expect.FinalPos.X, 1e-9)
}

func TestLoadDecodesRayScene(t *testing.T) {
	data := []byte(`
name: ray-only
obstacles:
  - name: target
    kind: circle
    radius: 5
    pos: {x: 20, y: 0}
ray:
  origin: {x: 0, y: 0}
  dir: {x: 1, y: 0}
expect:
  has_hit: true
  hit_t: 15
`)
	scene, err := Load(data)
	require.NoError(t, err)
	require.NotNil(t, scene.Ray)
	assert.Equal(t, 1.0, scene.Ray.Dir.X)
	assert.Nil(t, scene.Mover)
	require.NotNil(t, scene.Expect.HitT)
	assert.Equal(t, 15.0, *scene.Expect.HitT)
}

func TestLoadDecodesPolygonObstacle(t *testing.T) {
	data := []byte(`
name: polygon-obstacle
obstacles:
  - name: tri
    kind: polygon
    vertices:
      - {x: 0, y: 0}
      - {x: 0, y: 10}
      - {x: 10, y: 10}
    pos: {x: 0, y: 0}
expect:
  has_hit: false
`)
	scene, err := Load(data)
	require.NoError(t, err)
	require.Len(t, scene.Obstacles, 1)
	poly, ok := scene.Obstacles[0].Shape.(geom2d.Polygon)
	require.True(t, ok)
	assert.Len(t, poly.Vertices(), 3)
}

func TestLoadRejectsUnsupportedShapeKind(t *testing.T) {
	data := []byte(`
name: bad-kind
obstacles:
  - name: mystery
    kind: blob
`)
	_, err := Load(data)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load([]byte("not: [valid"))
	assert.Error(t, err)
}

func TestLoadWithNoMoverOrRayLeavesBothNil(t *testing.T) {
	data := []byte(`
name: empty-scene
obstacles: []
`)
	scene, err := Load(data)
	require.NoError(t, err)
	assert.Nil(t, scene.Mover)
	assert.Nil(t, scene.Ray)
	assert.Empty(t, scene.Obstacles)
}
