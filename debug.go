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

// LinePoints marks the two end points of a line with circles of the given
// diameter, in the current fill and stroke style.
func (c *Context) LinePoints(ax, ay, bx, by, diameter float64) {
	defer c.centred()()

	c.Circle(ax, ay, diameter)
	c.Circle(bx, by, diameter)
}

// PolygonPoints marks the corners of poly, placed as by [Context.Polygon],
// with circles of the given diameter.
func (c *Context) PolygonPoints(poly *Polygon, x, y, diameter, rotation float64) {
	if poly == nil {
		return
	}
	defer c.centred()()

	c.PushCanvas()
	c.TranslateCanvas(x, y)
	c.RotateCanvas(rotation)
	for i := range poly.PointCount() {
		p := poly.Point(i)
		c.Circle(p.X, p.Y, diameter)
	}
	c.PopCanvas()
}

// PolylinePoints marks the points of line, placed as by
// [Context.Polyline], with circles of the given diameter.
func (c *Context) PolylinePoints(line *Polyline, x, y, diameter, rotation float64) {
	if line == nil {
		return
	}
	defer c.centred()()

	c.PushCanvas()
	c.TranslateCanvas(x, y)
	c.RotateCanvas(rotation)
	for i := range line.PointCount() {
		p := line.Point(i)
		c.Circle(p.X, p.Y, diameter)
	}
	c.PopCanvas()
}

// centred switches to the centre pivot and returns a function which
// restores the previous pivot.
func (c *Context) centred() func() {
	pivot, offset := c.pivot, c.pivotOffset
	c.SetPivot(Center)
	return func() {
		c.pivot, c.pivotOffset = pivot, offset
	}
}
