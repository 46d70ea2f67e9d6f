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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// hidden reports whether filled shapes would be invisible.
func (c *Context) hidden() bool {
	return !c.fillEnabled && !c.strokeEnabled
}

// params returns the style part of the parameter block.
func (c *Context) params() Params {
	p := Params{Antialias: c.antialias}
	if c.fillEnabled {
		p.FillColor = c.fillColor
	}
	if c.strokeEnabled {
		p.StrokeColor = c.strokeColor
		p.StrokeThickness = c.strokeThickness
		p.HalfStrokeThickness = c.halfStrokeThickness
		p.StrokeMin = strokeOffsetMin(c.alignment, c.strokeThickness)
	} else {
		// fade the edge towards the fill color instead of black
		p.StrokeColor = p.FillColor.WithAlpha(0)
	}
	return p
}

// strokeOffsetMin returns the signed distance from the nominal boundary
// at which a stroke of thickness t begins.
func strokeOffsetMin(a StrokeAlignment, t float64) float64 {
	switch a {
	case Inside:
		return -t
	case Edge:
		return -t / 2
	default:
		return 0
	}
}

// innerOuterRadius returns the radii where the stroke of a circle with
// nominal radius r begins and ends.
func (c *Context) innerOuterRadius(r float64) (inner, outer float64) {
	inner, outer = r, r
	if c.strokeEnabled {
		t := c.strokeThickness
		switch c.alignment {
		case Inside:
			inner -= t
		case Edge:
			inner -= t / 2
			outer += t / 2
		case Outside:
			outer += t
		}
	}
	if inner < 0 {
		outer -= inner
		inner = 0
		if outer > r {
			outer = r
		}
	}
	return inner, outer
}

// Circle draws a circle centred at (x, y), moved according to the pivot.
func (c *Context) Circle(x, y, diameter float64) {
	if c.hidden() || !(diameter >= 0) {
		return
	}

	r := diameter / 2
	inner, outer := c.innerOuterRadius(r)
	if outer <= 0 {
		return
	}

	p := c.params()
	p.InnerRadiusRel = inner / outer
	p.FillExtents = vec.Vec2{X: r, Y: r}
	p.MeshExtents = vec.Vec2{X: outer, Y: outer}

	m := c.model(
		matrix.Scale(outer, outer),
		c.pivotShift(p.FillExtents),
		translation(x, y),
	)
	c.submit(KindCircle, unitQuad, m, &p)
}

// Ring draws the band between two concentric circles.
func (c *Context) Ring(x, y, innerDiameter, outerDiameter float64) {
	c.arc(x, y, innerDiameter, outerDiameter, 0, 360, 0)
}

// Pie draws a circular sector from angleBegin to angleEnd, turned by a
// further rotation. If angleEnd is smaller than angleBegin, full turns
// are added to angleEnd. Spans of 360 degrees or more draw a full circle.
func (c *Context) Pie(x, y, diameter, angleBegin, angleEnd, rotation float64) {
	if c.hidden() || !(diameter >= 0) {
		return
	}
	angleEnd, ok := unwrapAngle(angleBegin, angleEnd)
	if !ok {
		return
	}
	ext := (angleEnd - angleBegin) / 2
	if ext >= 180 {
		c.Circle(x, y, diameter)
		return
	}

	r := diameter / 2
	p := c.params()
	mesh := r + p.StrokeMin + p.StrokeThickness
	if mesh <= 0 {
		return
	}
	p.FillExtents = vec.Vec2{X: r, Y: r}
	p.MeshExtents = vec.Vec2{X: mesh, Y: mesh}
	p.AngleExtents = ext * (math.Pi / 180)

	m := c.model(
		matrix.Scale(mesh, mesh),
		rotationMatrix(angleBegin+ext),
		c.pivotShift(p.FillExtents),
		rotationMatrix(rotation),
		translation(x, y),
	)
	c.submit(KindPie, unitQuad, m, &p)
}

// Arc draws the part of a ring between angleBegin and angleEnd, turned by
// a further rotation. Angles are unwrapped as for [Context.Pie]; spans of
// 360 degrees or more draw a full ring.
func (c *Context) Arc(x, y, innerDiameter, outerDiameter, angleBegin, angleEnd, rotation float64) {
	angleEnd, ok := unwrapAngle(angleBegin, angleEnd)
	if !ok {
		return
	}
	c.arc(x, y, innerDiameter, outerDiameter, angleBegin, min(angleEnd, angleBegin+360), rotation)
}

func (c *Context) arc(x, y, innerDiameter, outerDiameter, angleBegin, angleEnd, rotation float64) {
	if c.hidden() || !(outerDiameter >= 0) {
		return
	}
	innerDiameter = min(max(innerDiameter, 0), outerDiameter)
	ext := (angleEnd - angleBegin) / 2

	ri := innerDiameter / 2
	ro := outerDiameter / 2
	half := (ro - ri) / 2

	p := c.params()
	mesh := ro + p.StrokeMin + p.StrokeThickness
	if mesh <= 0 {
		return
	}
	p.FillExtents = vec.Vec2{X: ri + half, Y: half}
	p.MeshExtents = vec.Vec2{X: mesh, Y: mesh}
	p.AngleExtents = ext * (math.Pi / 180)

	m := c.model(
		matrix.Scale(mesh, mesh),
		rotationMatrix(angleBegin+ext),
		c.pivotShift(vec.Vec2{X: ro, Y: ro}),
		rotationMatrix(rotation),
		translation(x, y),
	)
	c.submit(KindArc, unitQuad, m, &p)
}

// unwrapAngle adds full turns to end until it is no smaller than begin.
func unwrapAngle(begin, end float64) (float64, bool) {
	if math.IsNaN(begin) || math.IsNaN(end) || math.IsInf(begin, 0) || math.IsInf(end, 0) {
		return 0, false
	}
	if begin > end {
		end += 360 * math.Ceil((begin-end)/360)
	}
	return end, true
}

// Rect draws a rectangle with sharp corners.
func (c *Context) Rect(x, y, width, height, rotation float64) {
	c.RoundedRect(x, y, width, height, 0, 0, 0, 0, rotation)
}

// RoundedRect draws a rectangle with rounded corners. The roundness of
// each corner is clamped to [0, 1], where 1 makes the corner radius equal
// to half the shorter side.
func (c *Context) RoundedRect(x, y, width, height, lowerLeft, upperLeft, upperRight, lowerRight, rotation float64) {
	if c.hidden() || !(width >= 0) || !(height >= 0) {
		return
	}

	ext := vec.Vec2{X: width / 2, Y: height / 2}
	p := c.params()
	grow := p.StrokeMin + p.StrokeThickness
	mesh := vec.Vec2{X: ext.X + grow, Y: ext.Y + grow}
	if mesh.X <= 0 || mesh.Y <= 0 {
		return
	}
	p.FillExtents = ext
	p.MeshExtents = mesh

	r := min(ext.X, ext.Y)
	for i, v := range [4]float64{lowerLeft, upperLeft, upperRight, lowerRight} {
		p.Roundedness[i] = r * clamp01(v)
	}

	m := c.model(
		matrix.Scale(mesh.X, mesh.Y),
		c.pivotShift(ext),
		rotationMatrix(rotation),
		translation(x, y),
	)
	c.submit(KindRect, unitQuad, m, &p)
}

// Line draws a straight stroke from (ax, ay) to (bx, by) with the given
// caps, rotated counter-clockwise by rotation degrees about the centre of
// the stroke. Under [CapInside] the stroke, caps included, ends at the end
// points. Under [CapOutside] round and square caps extend the line by half
// the stroke thickness.
func (c *Context) Line(ax, ay, bx, by float64, begin, end graphics.LineCapStyle, rotation float64) {
	if !c.strokeEnabled {
		return
	}

	d := vec.Vec2{X: bx - ax, Y: by - ay}
	length := d.Length()
	center := length / 2
	if c.capAlignment == CapOutside {
		h := c.halfStrokeThickness
		if begin != graphics.LineCapButt {
			length += h
			center -= h / 2
		}
		if end != graphics.LineCapButt {
			length += h
			center += h / 2
		}
	}
	t := min(c.strokeThickness, length)
	if !(t > 0) {
		return
	}

	p := Params{
		StrokeColor:         c.strokeColor,
		StrokeThickness:     t,
		HalfStrokeThickness: t / 2,
		FillExtents:         vec.Vec2{X: length / 2, Y: t / 2},
		RoundedCaps:         [2]bool{begin == graphics.LineCapRound, end == graphics.LineCapRound},
		Antialias:           c.antialias,
	}
	p.MeshExtents = p.FillExtents

	angle := math.Atan2(d.Y, d.X) * (180 / math.Pi)
	m := c.model(
		matrix.Scale(p.FillExtents.X, p.FillExtents.Y),
		rotationMatrix(rotation),
		translation(center, 0),
		rotationMatrix(angle),
		translation(ax, ay),
	)
	c.submit(KindLine, unitQuad, m, &p)
}

// Polygon draws poly with its local origin at (x, y), rotated
// counter-clockwise by rotation degrees. The fill is submitted as a
// triangle mesh, followed by the stroke as a quad strip.
func (c *Context) Polygon(poly *Polygon, x, y, rotation float64) {
	if c.hidden() || poly == nil {
		return
	}

	fill, stroke := poly.RenderObjects(c.strokeThickness, c.alignment, c.antialias)
	m := c.model(rotationMatrix(rotation), translation(x, y))
	p := c.params()
	if c.fillEnabled && !fill.IsEmpty() {
		c.submit(KindPolygon, fill, m, &p)
	}
	if c.strokeEnabled && !stroke.IsEmpty() {
		c.submit(KindPolygonStroke, stroke, m, &p)
	}
}

// Polyline draws line with its local origin at (x, y), rotated
// counter-clockwise by rotation degrees.
func (c *Context) Polyline(line *Polyline, x, y, rotation float64) {
	if !c.strokeEnabled || line == nil {
		return
	}

	mesh := line.RenderObjects(c.strokeThickness)
	if mesh.IsEmpty() {
		return
	}
	p := Params{
		StrokeColor:         c.strokeColor,
		StrokeThickness:     c.strokeThickness,
		HalfStrokeThickness: c.halfStrokeThickness,
		Antialias:           c.antialias,
	}
	m := c.model(rotationMatrix(rotation), translation(x, y))
	c.submit(KindPolyline, mesh, m, &p)
}
