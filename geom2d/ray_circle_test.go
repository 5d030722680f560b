package geom2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gazed/playground2d/lin2"
)

func TestIntersectsCircleStraightOn(t *testing.T) {
	c := NewCircle(lin2.Coord2{X: 20, Y: 0}, 5)
	ray := NewRay(lin2.Coord2{X: 0, Y: 0}, lin2.Coord2{X: 1, Y: 0})
	tEnter, nEnter, tExit, nExit, ok := IntersectsCircleFull(ray, c)
	require.True(t, ok)
	assert.True(t, lin2.Aeq(tEnter, 15))
	assert.True(t, nEnter.Aeq(lin2.Coord2{X: -1, Y: 0}))
	assert.True(t, lin2.Aeq(tExit, 25))
	assert.True(t, nExit.Aeq(lin2.Coord2{X: 1, Y: 0}))
}

func TestIntersectsCircleMiss(t *testing.T) {
	c := NewCircle(lin2.Coord2{X: 20, Y: 20}, 5)
	ray := NewRay(lin2.Coord2{X: 0, Y: 0}, lin2.Coord2{X: 1, Y: 0})
	assert.False(t, IntersectsCircleBool(ray, c))
}

func TestIntersectsCircleOriginInside(t *testing.T) {
	c := NewCircle(lin2.Coord2{X: 0, Y: 0}, 10)
	ray := NewRay(lin2.Coord2{X: 0, Y: 0}, lin2.Coord2{X: 1, Y: 0})
	tEnter, _, tExit, _, ok := IntersectsCircleFull(ray, c)
	require.True(t, ok)
	assert.Equal(t, 0.0, tEnter)
	assert.True(t, lin2.Aeq(tExit, 10))
}

func TestIntersectsCircleTangent(t *testing.T) {
	c := NewCircle(lin2.Coord2{X: 10, Y: 5}, 5)
	ray := NewRay(lin2.Coord2{X: 0, Y: 0}, lin2.Coord2{X: 1, Y: 0})
	// The ray at y=0 just grazes the top of a circle centered at
	// (10,5) with radius 5 (its smallest-y point is (10,0)): discriminant
	// is exactly zero, a tangent single-point hit.
	assert.True(t, IntersectsCircleBool(ray, c))
}
