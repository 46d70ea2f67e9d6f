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
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/draw"
)

var styleCases = []TestCase{
	{
		Name:   "translucent",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			c.SetNoStroke()
			c.SetFillColor(draw.RGBA(0.9, 0.2, 0.2, 0.5))
			c.Circle(-0.3, 0.2, 1)
			c.SetFillColor(draw.RGBA(0.2, 0.8, 0.2, 0.5))
			c.Circle(0.3, 0.2, 1)
			c.SetFillColor(draw.RGBA(0.2, 0.2, 0.9, 0.5))
			c.Circle(0, -0.3, 1)
		},
	},
	{
		Name:   "no_fill",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			c.SetNoFill()
			c.SetStrokeColor(blue)
			c.SetStrokeThickness(0.06)
			c.Circle(-0.45, 0.45, 0.7)
			c.RoundedRect(0.45, 0.45, 0.7, 0.6, 0.5, 0.5, 0.5, 0.5, 0)
			c.Pie(-0.45, -0.45, 0.7, 0, 135, 0)
			c.Ring(0.45, -0.45, 0.3, 0.7)
		},
	},
	{
		Name:   "no_stroke",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			c.SetNoStroke()
			c.SetFillColor(green)
			c.Rect(-0.4, 0, 0.6, 1.2, 0)
			c.Pie(0.4, 0, 1.2, 200, 160, 0)
			c.Line(-1, -1, 1, 1, graphics.LineCapRound, graphics.LineCapRound, 0)
		},
	},
	{
		Name:   "aliased",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			c.SetAntialiasing(false)
			c.SetFillColor(orange)
			c.SetStrokeThickness(0.05)
			c.Circle(-0.4, 0.4, 0.7)
			c.Rect(0.4, 0.4, 0.6, 0.5, 20)
			c.Polygon(draw.NewPolygon(star(5, 0.45, 0.2)...), 0, -0.45, 0)
		},
	},
}
