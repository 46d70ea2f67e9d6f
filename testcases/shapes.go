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

var shapeCases = []TestCase{
	{
		Name:   "circle",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			c.SetFillColor(blue)
			c.Circle(0, 0, 1.5)
		},
	},
	{
		Name:   "ring",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			c.SetFillColor(orange)
			c.Ring(0, 0, 0.8, 1.6)
		},
	},
	{
		Name:   "pie",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			c.SetFillColor(green)
			c.Pie(0, 0, 1.6, 30, 300, 0)
		},
	},
	{
		Name:   "pie_narrow",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			c.SetFillColor(green)
			c.SetStrokeThickness(0.04)
			c.Pie(-0.8, 0, 3.2, -10, 10, 0)
		},
	},
	{
		Name:   "arc",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			c.SetFillColor(orange)
			c.Arc(0, 0, 0.8, 1.6, 0, 120, 45)
		},
	},
	{
		Name:   "arc_wrapped",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			c.SetFillColor(blue)
			c.Arc(0, 0, 1.0, 1.7, 300, 60, 0)
		},
	},
	{
		Name:   "rect",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			c.SetFillColor(blue)
			c.Rect(0, 0, 1.4, 0.8, 0)
		},
	},
	{
		Name:   "rect_rotated",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			c.SetFillColor(blue)
			c.Rect(0, 0, 1.2, 0.6, 30)
		},
	},
	{
		Name:   "rounded_rect",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			c.SetFillColor(green)
			c.RoundedRect(0, 0, 1.6, 1.1, 0.2, 0.4, 0.6, 1, 0)
		},
	},
	{
		Name:   "lines",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			c.SetStrokeColor(dark)
			c.SetStrokeThickness(0.15)
			caps := []graphics.LineCapStyle{
				graphics.LineCapButt,
				graphics.LineCapRound,
				graphics.LineCapSquare,
			}
			for i, lc := range caps {
				y := 0.5 - 0.5*float64(i)
				c.SetCapAlignment(draw.CapInside)
				c.Line(-0.8, y, -0.1, y, lc, lc, 0)
				c.SetCapAlignment(draw.CapOutside)
				c.Line(0.1, y, 0.8, y, lc, lc, 0)
			}
		},
	},
	{
		Name:   "lines_rotated",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			c.SetStrokeColor(blue)
			c.SetStrokeThickness(0.2)
			for i := range 4 {
				c.Line(-0.6, 0, 0.6, 0, graphics.LineCapRound, graphics.LineCapButt, 45*float64(i))
			}
		},
	},
	{
		Name:   "lines_diagonal",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			c.SetStrokeColor(orange)
			c.SetStrokeThickness(0.1)
			c.Line(-0.7, -0.7, 0.7, 0.6, graphics.LineCapRound, graphics.LineCapButt, 0)
			c.Line(-0.7, 0.7, 0.6, -0.7, graphics.LineCapSquare, graphics.LineCapRound, 0)
		},
	},
	{
		Name:   "row",
		Width:  300,
		Height: 120,
		Draw: func(c *draw.Context) {
			c.SetFillColor(orange)
			for i := range 5 {
				x := -1.2 + 0.6*float64(i)
				c.Circle(x, 0, 0.2+0.08*float64(i))
			}
		},
	},
}
