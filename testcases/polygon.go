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

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/draw"
)

var polygonCases = []TestCase{
	{
		Name:   "star",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			c.SetFillColor(orange)
			c.SetStrokeThickness(0.05)
			c.Polygon(draw.NewPolygon(star(5, 0.9, 0.4)...), 0, 0, 0)
		},
	},
	{
		Name:   "star_outside",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			c.SetFillColor(blue)
			c.SetStrokeThickness(0.08)
			c.SetStrokeAlignment(draw.Outside)
			c.Polygon(draw.NewPolygon(star(7, 0.8, 0.5)...), 0, 0, 10)
		},
	},
	{
		Name:   "l_shape",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			c.SetFillColor(green)
			c.SetStrokeAlignment(draw.Edge)
			poly := draw.NewPolygon(
				pt(-0.7, -0.7), pt(0.7, -0.7), pt(0.7, -0.2),
				pt(-0.2, -0.2), pt(-0.2, 0.7), pt(-0.7, 0.7),
			)
			c.Polygon(poly, 0, 0, 0)
		},
	},
	{
		Name:   "comb",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			c.SetFillColor(blue)
			c.SetNoStroke()
			pts := []vec.Vec2{pt(-0.8, -0.6), pt(0.8, -0.6)}
			for i := range 4 {
				right := 0.8 - 0.45*float64(i)
				left := right - 0.25
				pts = append(pts, pt(right, 0.7), pt(left, 0.7))
				if i < 3 {
					pts = append(pts, pt(left, -0.2), pt(left-0.2, -0.2))
				}
			}
			c.Polygon(draw.NewPolygon(pts...), 0, 0, 0)
		},
	},
	{
		Name:   "polygon_points",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			poly := draw.NewPolygon(star(4, 0.8, 0.35)...)
			c.SetFillColor(draw.Gray(0.8))
			c.SetStrokeThickness(0.03)
			c.Polygon(poly, 0, 0, 20)
			c.SetFillColor(orange)
			c.SetNoStroke()
			c.PolygonPoints(poly, 0, 0, 0.08, 20)
		},
	},
}

// star returns the corners of a star with n spikes, counter-clockwise.
func star(n int, outer, inner float64) []vec.Vec2 {
	pts := make([]vec.Vec2, 2*n)
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := math.Pi/2 + float64(i)*math.Pi/float64(n)
		pts[i] = pt(r*math.Cos(a), r*math.Sin(a))
	}
	return pts
}
