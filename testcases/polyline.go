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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/draw"
)

var polylineCases = []TestCase{
	zigzagScene("zigzag_butt", graphics.LineCapButt),
	zigzagScene("zigzag_round", graphics.LineCapRound),
	zigzagScene("zigzag_square", graphics.LineCapSquare),
	{
		Name:   "bezier",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			line := draw.NewPolyline()
			line.SetBezierCurve(pt(-0.8, -0.6), pt(-0.4, 0.9), pt(0.4, -0.9), pt(0.8, 0.6), 40)
			line.SetCaps(graphics.LineCapRound, graphics.LineCapRound)
			c.SetStrokeColor(blue)
			c.SetStrokeThickness(0.08)
			c.Polyline(line, 0, 0, 0)
		},
	},
	{
		Name:   "spiral",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			line := draw.NewPolyline()
			line.SetPath(spiral(0.1, 0.85, 2.5), 0)
			c.SetStrokeColor(dark)
			c.SetStrokeThickness(0.05)
			c.Polyline(line, 0, 0, 0)
		},
	},
	{
		Name:   "mixed_curves",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			line := draw.NewPolyline()
			line.SetPath(mixedLinesCurves(), 0.005)
			c.SetStrokeColor(green)
			c.SetStrokeThickness(0.06)
			c.Polyline(line, 0, 0, 0)
		},
	},
	{
		Name:   "miter_limit",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			line := draw.NewPolyline(pt(-0.8, -0.5), pt(0, 0.6), pt(0.8, -0.5))
			line.SetMiterLimit(1.5)
			c.SetStrokeColor(orange)
			c.SetStrokeThickness(0.2)
			c.Polyline(line, 0, -0.1, 0)
		},
	},
	{
		Name:   "polyline_points",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			line := draw.NewPolyline(zigzag(6, 1.4, 0.5)...)
			c.SetStrokeColor(draw.Gray(0.5))
			c.SetStrokeThickness(0.04)
			c.Polyline(line, 0, 0, 15)
			c.SetFillColor(orange)
			c.SetNoStroke()
			c.PolylinePoints(line, 0, 0, 0.1, 15)
		},
	},
}

// zigzagScene strokes a zigzag line with the given caps at both ends.
func zigzagScene(name string, lc graphics.LineCapStyle) TestCase {
	return TestCase{
		Name:   name,
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			line := draw.NewPolyline(zigzag(5, 1.4, 0.8)...)
			line.SetCaps(lc, lc)
			c.SetStrokeColor(dark)
			c.SetStrokeThickness(0.12)
			c.Polyline(line, 0, 0, 0)
		},
	}
}

// zigzag returns n points alternating between two heights, spread over
// the given width and centred at the origin.
func zigzag(n int, width, height float64) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		x := -width/2 + width*float64(i)/float64(n-1)
		y := height / 2
		if i%2 == 1 {
			y = -y
		}
		pts[i] = pt(x, y)
	}
	return pts
}

// spiral builds an Archimedean spiral around the origin.
func spiral(rMin, rMax, turns float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		steps := max(int(turns*32), 8)
		total := turns * 2 * math.Pi
		growth := (rMax - rMin) / total

		if !yield(path.CmdMoveTo, []vec.Vec2{pt(rMin, 0)}) {
			return
		}
		for i := 1; i <= steps; i++ {
			angle := float64(i) / float64(steps) * total
			r := rMin + growth*angle
			if !yield(path.CmdLineTo, []vec.Vec2{pt(r*math.Cos(angle), r*math.Sin(angle))}) {
				return
			}
		}
	}
}

// mixedLinesCurves builds a closed path of line segments, a quadratic and
// a cubic Bézier curve.
func mixedLinesCurves() path.Path {
	return (&path.Data{}).
		MoveTo(pt(-0.7, -0.5)).
		LineTo(pt(-0.4, 0.1)).
		QuadTo(pt(0, 0.8), pt(0.4, 0.1)).
		LineTo(pt(0.7, -0.5)).
		CubeTo(pt(0.5, -0.8), pt(-0.5, -0.8), pt(-0.7, -0.5)).
		Close().
		Iter()
}
