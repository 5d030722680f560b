package geom2d

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gazed/playground2d/lin2"
)

func TestNewRectClampsNegativeSize(t *testing.T) {
	r := NewRect(0, 0, -4, -4)
	assert.Equal(t, 0.0, r.W)
	assert.Equal(t, 0.0, r.H)
}

func TestRectSides(t *testing.T) {
	r := NewRect(1, 2, 10, 20)
	assert.Equal(t, 1.0, r.Left())
	assert.Equal(t, 11.0, r.Right())
	assert.Equal(t, 2.0, r.Top())
	assert.Equal(t, 22.0, r.Bottom())
}

func TestRectAABBIsSelf(t *testing.T) {
	r := NewRect(1, 2, 10, 20)
	assert.Equal(t, r, r.AABB())
}

func TestRectProjection(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	proj := r.GetProjection(lin2.Coord2{X: 1, Y: 0})
	assert.True(t, lin2.Aeq(proj.Min, 0))
	assert.True(t, lin2.Aeq(proj.Max, 10))
}

func TestRectClosestPoint(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	assert.Equal(t, lin2.Coord2{X: 0, Y: 5}, r.ClosestPoint(lin2.Coord2{X: -5, Y: 5}))
	assert.Equal(t, lin2.Coord2{X: 5, Y: 5}, r.ClosestPoint(lin2.Coord2{X: 5, Y: 5}))
}

func TestRectCenter(t *testing.T) {
	r := NewRect(0, 0, 10, 20)
	assert.Equal(t, lin2.Coord2{X: 5, Y: 10}, r.Center())
}

func TestRectToPolygonPreservesProjection(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	p := r.ToPolygon()
	axis := lin2.Coord2{X: 1, Y: 1}
	rProj := r.GetProjection(axis)
	pProj := p.GetProjection(axis)
	assert.True(t, lin2.Aeq(rProj.Min, pProj.Min))
	assert.True(t, lin2.Aeq(rProj.Max, pProj.Max))
}

func TestRectToPolygonDegenerate(t *testing.T) {
	r := NewRect(0, 0, 0, 0)
	p := r.ToPolygon()
	assert.Len(t, p.Vertices(), 4)
}
