// seehuhn.de/go/draw - an immediate-mode 2D shape drawing library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package draw

import (
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/draw/tess"
	"seehuhn.de/go/draw/vecmath"
)

// Polygon is a closed shape with a cached fill and stroke mesh.
//
// The meshes are rebuilt by [Polygon.RenderObjects] when a point, the
// stroke thickness, the stroke alignment or the antialiasing flag has
// changed since the previous build.
type Polygon struct {
	points []vec.Vec2

	fill   Mesh
	stroke Mesh
	dirs   []vec.Vec2

	dirty     bool
	thickness float64
	alignment StrokeAlignment
	antialias bool

	builds int
}

// NewPolygon returns a polygon with the given corners.
func NewPolygon(points ...vec.Vec2) *Polygon {
	p := &Polygon{}
	p.SetPoints(points)
	return p
}

// PointCount returns the number of corners.
func (p *Polygon) PointCount() int {
	return len(p.points)
}

// SetPointCount changes the number of corners. Existing corners are kept,
// new ones start at the origin.
func (p *Polygon) SetPointCount(n int) {
	n = max(n, 0)
	if n > len(p.points) {
		p.points = slices.Grow(p.points, n-len(p.points))
		clear(p.points[len(p.points):n])
	}
	p.points = p.points[:n]
	p.dirty = true
}

// SetPoint moves corner i. Out of range indices are ignored.
func (p *Polygon) SetPoint(i int, v vec.Vec2) {
	if i < 0 || i >= len(p.points) {
		return
	}
	p.points[i] = v
	p.dirty = true
}

// SetPoints replaces all corners.
func (p *Polygon) SetPoints(points []vec.Vec2) {
	p.points = append(p.points[:0], points...)
	p.dirty = true
}

// Point returns corner i, or the zero vector if i is out of range.
func (p *Polygon) Point(i int) vec.Vec2 {
	if i < 0 || i >= len(p.points) {
		return vec.Vec2{}
	}
	return p.points[i]
}

// Builds returns how often the meshes have been rebuilt.
func (p *Polygon) Builds() int {
	return p.builds
}

// RenderObjects returns the fill mesh and the stroke mesh for the given
// style, rebuilding them first if necessary. The meshes are owned by p
// and stay valid until the next call.
func (p *Polygon) RenderObjects(thickness float64, alignment StrokeAlignment, antialias bool) (fill, stroke *Mesh) {
	if thickness != p.thickness || alignment != p.alignment || antialias != p.antialias {
		p.thickness = thickness
		p.alignment = alignment
		p.antialias = antialias
		p.dirty = true
	}
	if p.dirty {
		p.build()
	}
	return &p.fill, &p.stroke
}

func (p *Polygon) build() {
	BuildPolygonMesh(&p.fill, p.points)
	p.dirs = buildPolygonStroke(&p.stroke, p.dirs, p.points, p.thickness, p.alignment, DefaultMiterLimit)
	p.dirty = false
	p.builds++
	Logger().Debug("polygon rebuilt",
		"points", len(p.points),
		"triangles", len(p.fill.Indices)/3)
}

// BuildPolygonMesh triangulates the polygon with the given corners into
// dst. The triangles run counter-clockwise. Fewer than three corners give
// an empty mesh.
func BuildPolygonMesh(dst *Mesh, points []vec.Vec2) {
	dst.reset()
	dst.Topology = Triangles
	if len(points) < 3 {
		return
	}

	idx := tess.Triangulate(points, nil)
	slices.Reverse(idx)

	dst.Vertices = append(dst.Vertices, points...)
	dst.Indices = append(dst.Indices, idx...)
	dst.updateBounds()
}

// BuildPolygonStroke builds the closed stroke band of a polygon into dst.
// The band follows the polygon boundary at the offsets given by the
// alignment, with mitered corners. Every edge contributes one quad with
// four vertices of its own.
func BuildPolygonStroke(dst *Mesh, points []vec.Vec2, thickness float64, alignment StrokeAlignment, miterLimit float64) {
	buildPolygonStroke(dst, nil, points, thickness, alignment, miterLimit)
}

func buildPolygonStroke(dst *Mesh, dirs, points []vec.Vec2, thickness float64, alignment StrokeAlignment, miterLimit float64) []vec.Vec2 {
	dst.reset()
	dst.Topology = Quads
	n := len(points)
	if n < 3 || !(thickness > 0) {
		return dirs
	}

	// outward normals point to the right of counter-clockwise edges
	sign := 1.0
	if vecmath.Area(points) < 0 {
		sign = -1
	}
	dirs = vecmath.Directions(dirs, points, true)
	normal := func(i int, o float64) vec.Vec2 {
		d := dirs[i]
		return vec.Vec2{X: d.Y, Y: -d.X}.Mul(sign * o)
	}
	corner := func(i int, o float64) vec.Vec2 {
		prev := (i + n - 1) % n
		next := (i + 1) % n
		return miterPoint(points[prev], points[i], points[next],
			normal(prev, o), normal(i, o), miterLimit)
	}

	lo := strokeOffsetMin(alignment, thickness)
	hi := lo + thickness

	dst.Vertices = slices.Grow(dst.Vertices, 4*n)
	dst.Segments = slices.Grow(dst.Segments, 4*n)
	dst.Indices = slices.Grow(dst.Indices, 4*n)
	outer0, inner0 := corner(0, hi), corner(0, lo)
	outerA, innerA := outer0, inner0
	for i := range n {
		j := (i + 1) % n
		outerB, innerB := outer0, inner0
		if j != 0 {
			outerB, innerB = corner(j, hi), corner(j, lo)
		}

		v0 := len(dst.Vertices)
		dst.Vertices = append(dst.Vertices, outerA, outerB, innerB, innerA)
		seg := Segment{A: points[i], B: points[j]}
		dst.Segments = append(dst.Segments, seg, seg, seg, seg)
		dst.Indices = append(dst.Indices, v0, v0+1, v0+2, v0+3)

		outerA, innerA = outerB, innerB
	}
	dst.updateBounds()
	return dirs
}
