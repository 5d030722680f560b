// Package snapshot renders a collision scene — obstacles, a mover, a
// ray, and a contact normal — to a PNG for debugging and demoing ray
// and mover behavior. It reads shapes the same way load.Png in the
// teacher codebase reads textures (stdlib image/png), and rasterizes
// them with golang.org/x/image/vector, the same anti-aliasing package
// the teacher pulls in for its font/glyph pipeline (load/ttf.go).
//
// Package snapshot is provided as part of the playground2d collision
// core.
package snapshot

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"github.com/gazed/playground2d/geom2d"
	"github.com/gazed/playground2d/lin2"
)

// Canvas accumulates shapes and lines to render, then rasterizes them
// into a single PNG.
type Canvas struct {
	W, H int
	Bg   color.Color

	polys []coloredPoly
	lines []coloredLine
}

type coloredPoly struct {
	vertices []lin2.Coord2
	fill     color.Color
}

type coloredLine struct {
	a, b  lin2.Coord2
	width float32
	col   color.Color
}

// NewCanvas returns a blank canvas of size w×h with a white background.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{W: w, H: h, Bg: color.White}
}

// AddShape adds shape at pos, filled with col. Circles are approximated
// with geom2d.CirclePolygonSegments vertices, same as every other
// polygon-approximation fallback in this module.
func (c *Canvas) AddShape(shape geom2d.Shape, pos lin2.Coord2, col color.Color) {
	var poly geom2d.Polygon
	switch s := shape.(type) {
	case geom2d.Polygon:
		poly = s
	case geom2d.Rect:
		poly = s.ToPolygon()
	case geom2d.Circle:
		poly = s.ToPolygon()
	default:
		poly = shape.AABB().ToPolygon()
	}
	vs := make([]lin2.Coord2, len(poly.Vertices()))
	for i, v := range poly.Vertices() {
		vs[i] = v.Add(pos)
	}
	c.polys = append(c.polys, coloredPoly{vertices: vs, fill: col})
}

// AddLine adds a line segment from a to b with the given stroke width
// and color — used for rays and contact normals.
func (c *Canvas) AddLine(a, b lin2.Coord2, width float32, col color.Color) {
	c.lines = append(c.lines, coloredLine{a: a, b: b, width: width, col: col})
}

// Render rasterizes the accumulated shapes and lines and writes the
// result as a PNG to w.
func (c *Canvas) Render(w io.Writer) error {
	img := image.NewRGBA(image.Rect(0, 0, c.W, c.H))
	draw.Draw(img, img.Bounds(), image.NewUniform(c.Bg), image.Point{}, draw.Src)

	for _, p := range c.polys {
		rasterizePolygon(img, p.vertices, p.fill)
	}
	for _, l := range c.lines {
		rasterizeLine(img, l.a, l.b, l.width, l.col)
	}
	return png.Encode(w, img)
}

func rasterizePolygon(dst draw.Image, vs []lin2.Coord2, col color.Color) {
	if len(vs) < 3 {
		return
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(float32(vs[0].X), float32(vs[0].Y))
	for _, v := range vs[1:] {
		z.LineTo(float32(v.X), float32(v.Y))
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(col), image.Point{})
}

// rasterizeLine draws a thin quad between a and b, width wide, as a
// stand-in for a stroked line (vector.Rasterizer only fills paths).
func rasterizeLine(dst draw.Image, a, b lin2.Coord2, width float32, col color.Color) {
	dir := b.Sub(a)
	length := dir.Magnitude()
	if length < lin2.Epsilon {
		return
	}
	perp := dir.Normalize().PerpCW().Scale(float64(width) / 2)
	quad := []lin2.Coord2{a.Add(perp), b.Add(perp), b.Sub(perp), a.Sub(perp)}
	rasterizePolygon(dst, quad, col)
}
