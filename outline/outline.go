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

// Package outline converts shape submissions into vector outlines.
//
// The outlines are given in world coordinates, with circular parts
// approximated by cubic Bézier curves. Filling an outline with the
// nonzero winding rule covers the same region as the shaded shape. This
// is used to write vector previews of drawings, and to check the software
// renderer against an independent scan conversion.
package outline

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/draw"
	"seehuhn.de/go/draw/vecmath"
)

// Fill returns the outline of the region painted with the fill color of
// s. The result is nil if s has no fill region.
func Fill(s *draw.Submission) *path.Data {
	p := &s.Params
	switch s.Kind {
	case draw.KindPolygon:
		b := newBuilder(s.Transform)
		meshFaces(b, s.Mesh, 0)
		return b.result()
	case draw.KindCircle:
		b := quadBuilder(s)
		circle(b, p.InnerRadiusRel*p.MeshExtents.X, false)
		return b.result()
	case draw.KindPie, draw.KindArc, draw.KindRect:
		b := quadBuilder(s)
		region(b, s.Kind, p, p.StrokeMin, false)
		return b.result()
	}
	return nil
}

// Stroke returns the outline of the region painted with the stroke color
// of s. For quad shapes this is the band between the fill region and the
// outer edge of the stroke. The result is nil if s has no stroke region.
func Stroke(s *draw.Submission) *path.Data {
	p := &s.Params
	switch s.Kind {
	case draw.KindPolygonStroke, draw.KindPolyline:
		b := newBuilder(s.Transform)
		meshFaces(b, s.Mesh, p.HalfStrokeThickness)
		return b.result()
	case draw.KindLine:
		b := quadBuilder(s)
		line(b, p)
		return b.result()
	}

	if !(p.StrokeThickness > 0) {
		return nil
	}
	switch s.Kind {
	case draw.KindCircle:
		b := quadBuilder(s)
		circle(b, p.MeshExtents.X, false)
		circle(b, p.InnerRadiusRel*p.MeshExtents.X, true)
		return b.result()
	case draw.KindPie, draw.KindArc, draw.KindRect:
		b := quadBuilder(s)
		region(b, s.Kind, p, p.StrokeMin+p.StrokeThickness, false)
		region(b, s.Kind, p, p.StrokeMin, true)
		return b.result()
	}
	return nil
}

// builder collects a path, mapping every point through m.
type builder struct {
	m matrix.Matrix
	p *path.Data
}

func newBuilder(m matrix.Matrix) *builder {
	return &builder{m: m, p: &path.Data{}}
}

// quadBuilder maps the local coordinates of a quad shape to world space.
func quadBuilder(s *draw.Submission) *builder {
	ext := s.Params.MeshExtents
	if !(ext.X > 0 && ext.Y > 0) {
		return newBuilder(s.Transform)
	}
	return newBuilder(draw.Concat(matrix.Scale(1/ext.X, 1/ext.Y), s.Transform))
}

func (b *builder) result() *path.Data {
	if len(b.p.Cmds) == 0 {
		return nil
	}
	return b.p
}

func (b *builder) moveTo(v vec.Vec2) { b.p.MoveTo(draw.Apply(b.m, v)) }
func (b *builder) lineTo(v vec.Vec2) { b.p.LineTo(draw.Apply(b.m, v)) }
func (b *builder) close()            { b.p.Close() }

// arc appends a circular arc around c from angle a0 to a1 (radians,
// negative direction if a1 < a0). The current point must be the start of
// the arc.
func (b *builder) arc(c vec.Vec2, r, a0, a1 float64) {
	n := int(math.Ceil(math.Abs(a1-a0) / (math.Pi / 2)))
	if n == 0 || r <= 0 {
		return
	}
	step := (a1 - a0) / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4) * r

	phi := a0
	for range n {
		s0, c0 := math.Sincos(phi)
		s1, c1 := math.Sincos(phi + step)
		p0 := vec.Vec2{X: c.X + r*c0, Y: c.Y + r*s0}
		p3 := vec.Vec2{X: c.X + r*c1, Y: c.Y + r*s1}
		p1 := p0.Add(vec.Vec2{X: -s0, Y: c0}.Mul(k))
		p2 := p3.Sub(vec.Vec2{X: -s1, Y: c1}.Mul(k))
		b.p.CubeTo(draw.Apply(b.m, p1), draw.Apply(b.m, p2), draw.Apply(b.m, p3))
		phi += step
	}
}

func polar(r, angle float64) vec.Vec2 {
	s, c := math.Sincos(angle)
	return vec.Vec2{X: r * c, Y: r * s}
}

// circle adds a full circle around the origin.
func circle(b *builder, r float64, reverse bool) {
	if !(r > 0) {
		return
	}
	end := 2 * math.Pi
	if reverse {
		end = -end
	}
	b.moveTo(vec.Vec2{X: r})
	b.arc(vec.Vec2{}, r, 0, end)
	b.close()
}

// region adds the contour of the set of points whose distance to the
// shape is at most k. Reversed contours cut holes under the nonzero rule.
func region(b *builder, kind draw.Kind, p *draw.Params, k float64, reverse bool) {
	switch kind {
	case draw.KindPie:
		pie(b, p.FillExtents.X+k, p.AngleExtents, k, reverse)
	case draw.KindArc:
		c, half := p.FillExtents.X, p.FillExtents.Y
		outer := c + half + k
		inner := c - half - k
		if p.AngleExtents >= math.Pi {
			circle(b, outer, reverse)
			circle(b, inner, !reverse)
			return
		}
		if inner <= math.Abs(k) {
			pie(b, outer, p.AngleExtents, k, reverse)
			return
		}
		ring(b, inner, outer, p.AngleExtents, k, reverse)
	case draw.KindRect:
		roundedBox(b, p.FillExtents, p.Roundedness, k, reverse)
	}
}

// edgeAngle returns the angle at which the line parallel to the edge of a
// wedge with half opening a, at distance k outside, meets the circle of
// radius r. The second result is false if they do not meet.
func edgeAngle(r, a, k float64) (float64, bool) {
	if r <= math.Abs(k) {
		return 0, false
	}
	return a + math.Atan2(k, math.Sqrt(r*r-k*k)), true
}

// pie adds the contour of a circular sector of radius r and half opening
// a around the positive x-axis, grown by k.
func pie(b *builder, r, a, k float64, reverse bool) {
	if a >= math.Pi {
		circle(b, r, reverse)
		return
	}
	end, ok := edgeAngle(r, a, k)
	if !ok || !(a > 0) {
		return
	}
	sin := math.Sin(a)
	apex := vec.Vec2{X: -k / sin}
	if k > 0 && a >= math.Pi/2 && -apex.X >= r {
		// the gap behind the apex closes
		circle(b, r, reverse)
		return
	}
	if k < 0 && apex.X >= r {
		return
	}

	var pts []vec.Vec2 // corner points, counter-clockwise, after the arc
	rounded := k > 0 && a < math.Pi/2
	if rounded {
		pts = append(pts, polar(k, a+math.Pi/2))
	} else {
		pts = append(pts, apex)
	}

	if !reverse {
		b.moveTo(polar(r, -end))
		b.arc(vec.Vec2{}, r, -end, end)
		b.lineTo(pts[0])
		if rounded {
			b.arc(vec.Vec2{}, k, a+math.Pi/2, 2*math.Pi-a-math.Pi/2)
		}
	} else {
		if rounded {
			b.moveTo(polar(k, -a-math.Pi/2))
			b.arc(vec.Vec2{}, k, 3*math.Pi/2-a, a+math.Pi/2)
		} else {
			b.moveTo(apex)
		}
		b.lineTo(polar(r, end))
		b.arc(vec.Vec2{}, r, end, -end)
	}
	b.close()
}

// ring adds the contour of an annular sector between the radii inner and
// outer with half opening a, grown by k.
func ring(b *builder, inner, outer, a, k float64, reverse bool) {
	endOut, ok := edgeAngle(outer, a, k)
	if !ok {
		return
	}
	endIn, _ := edgeAngle(inner, a, k)
	if !reverse {
		b.moveTo(polar(outer, -endOut))
		b.arc(vec.Vec2{}, outer, -endOut, endOut)
		b.lineTo(polar(inner, endIn))
		b.arc(vec.Vec2{}, inner, endIn, -endIn)
	} else {
		b.moveTo(polar(inner, -endIn))
		b.arc(vec.Vec2{}, inner, -endIn, endIn)
		b.lineTo(polar(outer, endOut))
		b.arc(vec.Vec2{}, outer, endOut, -endOut)
	}
	b.close()
}

// roundedBox adds the contour of a rounded rectangle with half size ext
// and corner radii rad (lower left, upper left, upper right, lower right),
// grown by k.
func roundedBox(b *builder, ext vec.Vec2, rad [4]float64, k float64, reverse bool) {
	w, h := ext.X+k, ext.Y+k
	if !(w > 0 && h > 0) {
		return
	}
	var r [4]float64
	for i := range r {
		r[i] = min(max(rad[i]+k, 0), w, h)
	}

	// corner centres and the angle at which each corner arc starts,
	// counter-clockwise from the lower right
	corners := [4]struct {
		c     vec.Vec2
		r, a0 float64
	}{
		{vec.Vec2{X: w - r[3], Y: -h + r[3]}, r[3], -math.Pi / 2},
		{vec.Vec2{X: w - r[2], Y: h - r[2]}, r[2], 0},
		{vec.Vec2{X: -w + r[1], Y: h - r[1]}, r[1], math.Pi / 2},
		{vec.Vec2{X: -w + r[0], Y: -h + r[0]}, r[0], math.Pi},
	}

	if !reverse {
		for i, c := range corners {
			start := c.c.Add(polar(c.r, c.a0))
			if i == 0 {
				b.moveTo(start)
			} else {
				b.lineTo(start)
			}
			b.arc(c.c, c.r, c.a0, c.a0+math.Pi/2)
		}
	} else {
		for i := range 4 {
			c := corners[3-i]
			start := c.c.Add(polar(c.r, c.a0+math.Pi/2))
			if i == 0 {
				b.moveTo(start)
			} else {
				b.lineTo(start)
			}
			b.arc(c.c, c.r, c.a0+math.Pi/2, c.a0)
		}
	}
	b.close()
}

// line adds the contour of a straight stroke along the x-axis.
func line(b *builder, p *draw.Params) {
	l, h := p.MeshExtents.X, p.MeshExtents.Y
	if !(l > 0 && h > 0) {
		return
	}

	if p.RoundedCaps[1] {
		b.moveTo(vec.Vec2{X: l - h, Y: -h})
		b.arc(vec.Vec2{X: l - h}, h, -math.Pi/2, math.Pi/2)
	} else {
		b.moveTo(vec.Vec2{X: l, Y: -h})
		b.lineTo(vec.Vec2{X: l, Y: h})
	}
	if p.RoundedCaps[0] {
		b.lineTo(vec.Vec2{X: -l + h, Y: h})
		b.arc(vec.Vec2{X: -l + h}, h, math.Pi/2, 3*math.Pi/2)
	} else {
		b.lineTo(vec.Vec2{X: -l, Y: h})
		b.lineTo(vec.Vec2{X: -l, Y: -h})
	}
	b.close()
}

// meshFaces adds every face of m as a counter-clockwise contour. Faces
// which end in a round cap are cut at the end point and completed by a
// disc of radius half.
func meshFaces(b *builder, m *draw.Mesh, half float64) {
	if m.IsEmpty() {
		return
	}
	size := m.Topology.FaceSize()
	face := make([]vec.Vec2, 0, size)
	for i, f := range m.Faces() {
		face = append(face[:0], f...)

		var seg *draw.Segment
		if k := m.Indices[i*size]; k < len(m.Segments) && size == 4 {
			seg = &m.Segments[k]
		}
		if seg != nil && (seg.RoundBegin || seg.RoundEnd) {
			off := vecmath.Unit(seg.B.Sub(seg.A))
			off = vec.Vec2{X: -off.Y * half, Y: off.X * half}
			// faces run plus(A), plus(B), minus(B), minus(A)
			if seg.RoundBegin {
				face[0] = seg.A.Add(off)
				face[3] = seg.A.Sub(off)
				disc(b, seg.A, half)
			}
			if seg.RoundEnd {
				face[1] = seg.B.Add(off)
				face[2] = seg.B.Sub(off)
				disc(b, seg.B, half)
			}
		}

		if vecmath.Area(face) < 0 {
			for j, k := 0, len(face)-1; j < k; j, k = j+1, k-1 {
				face[j], face[k] = face[k], face[j]
			}
		}
		b.moveTo(face[0])
		for _, v := range face[1:] {
			b.lineTo(v)
		}
		b.close()
	}
}

func disc(b *builder, c vec.Vec2, r float64) {
	if !(r > 0) {
		return
	}
	b.moveTo(c.Add(vec.Vec2{X: r}))
	b.arc(c, r, 0, 2*math.Pi)
	b.close()
}
