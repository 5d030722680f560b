package geom2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gazed/playground2d/lin2"
)

func TestIntersectsRectStraightOn(t *testing.T) {
	r := NewRect(10, 0, 10, 10)
	ray := NewRay(lin2.Coord2{X: 0, Y: 5}, lin2.Coord2{X: 1, Y: 0})
	tEnter, nEnter, tExit, nExit, ok := IntersectsRectFull(ray, r)
	require.True(t, ok)
	assert.True(t, lin2.Aeq(tEnter, 10))
	assert.True(t, nEnter.Aeq(lin2.Coord2{X: -1, Y: 0}))
	assert.True(t, lin2.Aeq(tExit, 20))
	assert.True(t, nExit.Aeq(lin2.Coord2{X: 1, Y: 0}))
}

func TestIntersectsRectMissBehind(t *testing.T) {
	r := NewRect(-20, 0, 10, 10)
	ray := NewRay(lin2.Coord2{X: 0, Y: 5}, lin2.Coord2{X: 1, Y: 0})
	assert.False(t, IntersectsRectBool(ray, r))
}

func TestIntersectsRectOriginInside(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	ray := NewRay(lin2.Coord2{X: 5, Y: 5}, lin2.Coord2{X: 1, Y: 0})
	tEnter, _, tExit, _, ok := IntersectsRectFull(ray, r)
	require.True(t, ok)
	assert.Equal(t, 0.0, tEnter)
	assert.True(t, lin2.Aeq(tExit, 5))
}

func TestIntersectsRectMissOffsetBelow(t *testing.T) {
	r := NewRect(0, 20, 10, 10)
	ray := NewRay(lin2.Coord2{X: -5, Y: 5}, lin2.Coord2{X: 1, Y: 0})
	assert.False(t, IntersectsRectBool(ray, r))
}

func TestIntersectsRectDiagonalCorner(t *testing.T) {
	r := NewRect(10, 10, 10, 10)
	ray := NewRay(lin2.Coord2{X: 0, Y: 0}, lin2.Coord2{X: 1, Y: 1})
	t_, _, ok := IntersectsRectT(ray, r)
	require.True(t, ok)
	assert.True(t, t_ > 0)
}
