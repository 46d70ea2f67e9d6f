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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/draw/vecmath"
)

// Polyline is an open stroke through a sequence of points, with a cached
// quad strip mesh.
//
// The mesh is rebuilt by [Polyline.RenderObjects] when a point, the
// stroke thickness, a cap style or the miter limit has changed since the
// previous build.
type Polyline struct {
	points     []vec.Vec2
	begin, end graphics.LineCapStyle
	miterLimit float64

	mesh Mesh
	dirs []vec.Vec2

	dirty     bool
	thickness float64

	builds int
}

// NewPolyline returns a polyline through the given points, with butt caps
// and the default miter limit.
func NewPolyline(points ...vec.Vec2) *Polyline {
	l := &Polyline{miterLimit: DefaultMiterLimit}
	l.SetPoints(points)
	return l
}

// PointCount returns the number of points.
func (l *Polyline) PointCount() int {
	return len(l.points)
}

// SetPointCount changes the number of points. Existing points are kept,
// new ones start at the origin.
func (l *Polyline) SetPointCount(n int) {
	n = max(n, 0)
	if n > len(l.points) {
		l.points = slices.Grow(l.points, n-len(l.points))
		clear(l.points[len(l.points):n])
	}
	l.points = l.points[:n]
	l.dirty = true
}

// SetPoint moves point i. Out of range indices are ignored.
func (l *Polyline) SetPoint(i int, v vec.Vec2) {
	if i < 0 || i >= len(l.points) {
		return
	}
	l.points[i] = v
	l.dirty = true
}

// SetPoints replaces all points.
func (l *Polyline) SetPoints(points []vec.Vec2) {
	l.points = append(l.points[:0], points...)
	l.dirty = true
}

// Point returns point i, or the zero vector if i is out of range.
func (l *Polyline) Point(i int) vec.Vec2 {
	if i < 0 || i >= len(l.points) {
		return vec.Vec2{}
	}
	return l.points[i]
}

// SetBezierCurve replaces the points by resolution samples of the cubic
// Bézier curve from anchorA to anchorB. The resolution is at least 3.
func (l *Polyline) SetBezierCurve(anchorA, controlA, controlB, anchorB vec.Vec2, resolution int) {
	l.points = vecmath.SampleCubic(l.points, anchorA, controlA, controlB, anchorB, resolution)
	l.dirty = true
}

// SetPath replaces the points by a flattened version of the first subpath
// of p. Curves are approximated to within tolerance; a non-positive
// tolerance selects the default. A closing segment is kept as an explicit
// final point.
func (l *Polyline) SetPath(p path.Path, tolerance float64) {
	if !(tolerance > 0) {
		tolerance = defaultTolerance
	}

	l.points = l.points[:0]
	add := func(v vec.Vec2) { l.points = append(l.points, v) }
	var start, cur vec.Vec2
	started := false
loop:
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if started {
				break loop
			}
			started = true
			start, cur = pts[0], pts[0]
			add(cur)
		case path.CmdLineTo:
			add(pts[0])
			cur = pts[0]
		case path.CmdQuadTo:
			vecmath.FlattenQuadratic(cur, pts[0], pts[1], tolerance, add)
			cur = pts[1]
		case path.CmdCubeTo:
			vecmath.FlattenCubic(cur, pts[0], pts[1], pts[2], tolerance, add)
			cur = pts[2]
		case path.CmdClose:
			if cur != start {
				add(start)
			}
			break loop
		}
	}
	l.dirty = true
}

// SetCaps sets the cap styles at the first and at the last point.
func (l *Polyline) SetCaps(begin, end graphics.LineCapStyle) {
	if begin != l.begin || end != l.end {
		l.begin, l.end = begin, end
		l.dirty = true
	}
}

// Caps returns the cap styles at the first and at the last point.
func (l *Polyline) Caps() (begin, end graphics.LineCapStyle) {
	return l.begin, l.end
}

// SetMiterLimit sets the longest allowed distance between a join vertex
// and its point, in multiples of half the stroke thickness.
// Values below 1 are raised to 1.
func (l *Polyline) SetMiterLimit(limit float64) {
	limit = max(limit, 1)
	if limit != l.miterLimit {
		l.miterLimit = limit
		l.dirty = true
	}
}

// MiterLimit returns the miter limit.
func (l *Polyline) MiterLimit() float64 {
	return l.miterLimit
}

// Builds returns how often the mesh has been rebuilt.
func (l *Polyline) Builds() int {
	return l.builds
}

// RenderObjects returns the stroke mesh for the given thickness,
// rebuilding it first if necessary. The mesh is owned by l and stays
// valid until the next call.
func (l *Polyline) RenderObjects(thickness float64) *Mesh {
	if thickness != l.thickness {
		l.thickness = thickness
		l.dirty = true
	}
	if l.dirty {
		l.dirs = buildPolyline(&l.mesh, l.dirs, l.points, l.thickness, l.begin, l.end, l.miterLimit)
		l.dirty = false
		l.builds++
		Logger().Debug("polyline rebuilt",
			"points", len(l.points),
			"vertices", len(l.mesh.Vertices))
	}
	return &l.mesh
}

// BuildPolylineMesh builds the quad strip of a stroke through points
// into dst.
//
// The end points contribute two vertices each, every interior point
// contributes four, and each of the len(points)-1 segments is one quad.
// Round and square caps move the end vertices outwards by half the
// thickness. Fewer than two points give an empty mesh.
func BuildPolylineMesh(dst *Mesh, points []vec.Vec2, thickness float64, begin, end graphics.LineCapStyle, miterLimit float64) {
	buildPolyline(dst, nil, points, thickness, begin, end, miterLimit)
}

func buildPolyline(dst *Mesh, dirs, points []vec.Vec2, thickness float64, begin, end graphics.LineCapStyle, miterLimit float64) []vec.Vec2 {
	dst.reset()
	dst.Topology = Quads
	n := len(points)
	if n < 2 {
		return dirs
	}

	vertexCount := 4 + (n-2)*4
	dst.Vertices = slices.Grow(dst.Vertices, vertexCount)[:vertexCount]
	dst.Segments = slices.Grow(dst.Segments, vertexCount)[:vertexCount]
	dst.Indices = slices.Grow(dst.Indices, (n-1)*4)

	dirs = vecmath.Directions(dirs, points, false)
	h := thickness / 2

	v := 0
	var prev, prevOffset vec.Vec2
	for i, point := range points {
		v0 := v
		dir := dirs[i]
		offset := vec.Vec2{X: -dir.Y * h, Y: dir.X * h}
		var next vec.Vec2
		if i < n-1 {
			next = points[i+1]
		}

		switch i {
		case 0:
			base := point
			if begin != graphics.LineCapButt {
				base = base.Sub(dir.Mul(h))
			}
			dst.Vertices[v] = base.Add(offset)
			dst.Vertices[v+1] = base.Sub(offset)
			v += 2
		case n - 1:
			base := point
			if end != graphics.LineCapButt {
				base = base.Add(dir.Mul(h))
			}
			dst.Vertices[v] = base.Add(offset)
			dst.Vertices[v+1] = base.Sub(offset)
			v += 2
		default:
			plus := miterPoint(prev, point, next, prevOffset, offset, miterLimit)
			minus := miterPoint(prev, point, next, prevOffset.Mul(-1), offset.Mul(-1), miterLimit)
			dst.Vertices[v] = plus
			dst.Vertices[v+1] = minus
			dst.Vertices[v+2] = plus
			dst.Vertices[v+3] = minus
			v += 4
			v0 += 2
		}

		if i < n-1 {
			seg := Segment{
				A:          point,
				B:          next,
				RoundBegin: i == 0 && begin == graphics.LineCapRound,
				RoundEnd:   i == n-2 && end == graphics.LineCapRound,
			}
			for k := range 4 {
				dst.Segments[v0+k] = seg
			}
			dst.Indices = append(dst.Indices, v0, v0+2, v0+3, v0+1)
		}

		prev = point
		prevOffset = offset
	}
	dst.updateBounds()
	return dirs
}

// miterPoint intersects the line through prev and point, shifted by
// prevOffset, with the line through point and next, shifted by offset.
// Parallel lines give point+offset. A result further than miterLimit
// times |offset| from point is pulled back towards point.
func miterPoint(prev, point, next, prevOffset, offset vec.Vec2, miterLimit float64) vec.Vec2 {
	q, ok := vecmath.IntersectLines(prev.Add(prevOffset), point.Add(prevOffset), point.Add(offset), next.Add(offset))
	if !ok {
		return point.Add(offset)
	}
	if miterLimit > 0 {
		d := q.Sub(point)
		maxLen := miterLimit * offset.Length()
		if l := d.Length(); l > maxLen {
			if maxLen == 0 {
				return point
			}
			q = point.Add(d.Mul(maxLen / l))
		}
	}
	return q
}

const (
	// DefaultMiterLimit is the miter limit of new polylines and of
	// polygon strokes.
	DefaultMiterLimit = 10.0

	// defaultTolerance is the curve flattening tolerance of SetPath, in
	// canvas units.
	defaultTolerance = 0.01
)
