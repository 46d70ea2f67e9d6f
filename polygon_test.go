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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/draw/vecmath"
)

func square(size float64) []vec.Vec2 {
	return []vec.Vec2{
		{X: 0, Y: 0}, {X: size, Y: 0}, {X: size, Y: size}, {X: 0, Y: size},
	}
}

func TestPolygonRebuildsOnlyWhenDirty(t *testing.T) {
	rec := &Recorder{}
	c := New(rec)
	poly := NewPolygon(square(1)...)

	c.Polygon(poly, 0, 0, 0)
	c.Polygon(poly, 0, 0, 0)
	assert.Equal(t, 1, poly.Builds())

	steps := []struct {
		name   string
		change func()
	}{
		{"point", func() { poly.SetPoint(2, vec.Vec2{X: 2, Y: 2}) }},
		{"thickness", func() { c.SetStrokeThickness(0.2) }},
		{"alignment", func() { c.SetStrokeAlignment(Edge) }},
		{"antialias", func() { c.SetAntialiasing(false) }},
		{"count", func() { poly.SetPointCount(5) }},
		{"points", func() { poly.SetPoints(square(3)) }},
	}
	for i, step := range steps {
		step.change()
		c.Polygon(poly, 1, 1, 0)
		c.Polygon(poly, 2, 2, 45)
		assert.Equal(t, i+2, poly.Builds(), step.name)
	}

	// out of range changes are ignored
	poly.SetPoint(17, vec.Vec2{})
	c.Polygon(poly, 0, 0, 0)
	assert.Equal(t, len(steps)+1, poly.Builds())
}

func TestPolygonRenderObjects(t *testing.T) {
	poly := NewPolygon(square(2)...)
	fill1, stroke1 := poly.RenderObjects(0.1, Inside, true)
	fill2, stroke2 := poly.RenderObjects(0.1, Inside, true)
	assert.Equal(t, 1, poly.Builds())
	assert.Same(t, fill1, fill2)
	assert.Same(t, stroke1, stroke2)

	assert.Equal(t, Triangles, fill1.Topology)
	assert.Len(t, fill1.Indices, 6)
	assert.Equal(t, rect.Rect{LLx: 0, LLy: 0, URx: 2, URy: 2}, fill1.Bounds)
}

func TestPolygonSubmissions(t *testing.T) {
	rec := &Recorder{}
	c := New(rec)
	poly := NewPolygon(square(1)...)

	c.Polygon(poly, 0, 0, 0)
	require.Len(t, rec.Submissions, 2)
	assert.Equal(t, KindPolygon, rec.Submissions[0].Kind)
	assert.Equal(t, KindPolygonStroke, rec.Submissions[1].Kind)

	rec.Reset()
	c.SetNoStroke()
	c.Polygon(poly, 0, 0, 0)
	require.Len(t, rec.Submissions, 1)
	assert.Equal(t, KindPolygon, rec.Submissions[0].Kind)

	rec.Reset()
	c.SetStrokeColor(Black)
	c.SetNoFill()
	c.Polygon(poly, 0, 0, 0)
	require.Len(t, rec.Submissions, 1)
	assert.Equal(t, KindPolygonStroke, rec.Submissions[0].Kind)

	rec.Reset()
	c.Polygon(NewPolygon(vec.Vec2{}, vec.Vec2{X: 1}), 0, 0, 0)
	c.Polygon(nil, 0, 0, 0)
	assert.Empty(t, rec.Submissions)
}

func TestPolygonMeshCounterClockwise(t *testing.T) {
	lShape := []vec.Vec2{
		{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 1},
		{X: 1, Y: 1}, {X: 1, Y: 3}, {X: 0, Y: 3},
	}
	reversed := make([]vec.Vec2, len(lShape))
	for i, p := range lShape {
		reversed[len(lShape)-1-i] = p
	}

	for _, points := range [][]vec.Vec2{lShape, reversed} {
		mesh := &Mesh{}
		BuildPolygonMesh(mesh, points)
		require.Len(t, mesh.Indices, 3*(len(points)-2))

		total := 0.0
		for _, face := range mesh.Faces() {
			a := vecmath.Area(face)
			assert.Greater(t, a, 0.0)
			total += a
		}
		assert.InDelta(t, 5, total, 1e-12)
	}
}

func TestPolygonStroke(t *testing.T) {
	for _, tc := range []struct {
		align  StrokeAlignment
		bounds rect.Rect
	}{
		{Inside, rect.Rect{LLx: 0, LLy: 0, URx: 2, URy: 2}},
		{Edge, rect.Rect{LLx: -0.05, LLy: -0.05, URx: 2.05, URy: 2.05}},
		{Outside, rect.Rect{LLx: -0.1, LLy: -0.1, URx: 2.1, URy: 2.1}},
	} {
		for _, points := range [][]vec.Vec2{
			square(2),
			{{X: 0, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 1}},
		} {
			mesh := &Mesh{}
			BuildPolygonStroke(mesh, points, 0.1, tc.align, DefaultMiterLimit)

			n := len(points)
			assert.Equal(t, Quads, mesh.Topology)
			assert.Len(t, mesh.Vertices, 4*n)
			assert.Len(t, mesh.Segments, 4*n)
			assert.Len(t, mesh.Indices, 4*n)
			assert.InDelta(t, tc.bounds.LLx, mesh.Bounds.LLx, 1e-12, tc.align.String())
			assert.InDelta(t, tc.bounds.LLy, mesh.Bounds.LLy, 1e-12, tc.align.String())
			assert.InDelta(t, tc.bounds.URx, mesh.Bounds.URx, 1e-12, tc.align.String())
			assert.InDelta(t, tc.bounds.URy, mesh.Bounds.URy, 1e-12, tc.align.String())
		}
	}

	mesh := &Mesh{}
	BuildPolygonStroke(mesh, square(2), 0, Inside, DefaultMiterLimit)
	assert.True(t, mesh.IsEmpty())
}

func TestPolygonPoints(t *testing.T) {
	poly := &Polygon{}
	poly.SetPointCount(3)
	poly.SetPoint(1, vec.Vec2{X: 1, Y: 2})
	assert.Equal(t, 3, poly.PointCount())
	assert.Equal(t, vec.Vec2{X: 1, Y: 2}, poly.Point(1))
	assert.Equal(t, vec.Vec2{}, poly.Point(-1))
	assert.Equal(t, vec.Vec2{}, poly.Point(3))

	poly.SetPointCount(1)
	poly.SetPointCount(2)
	assert.Equal(t, vec.Vec2{}, poly.Point(1))
}
