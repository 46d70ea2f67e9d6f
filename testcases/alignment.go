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
	"seehuhn.de/go/draw"
)

var alignmentCases = []TestCase{
	alignmentScene("inside", draw.Inside),
	alignmentScene("edge", draw.Edge),
	alignmentScene("outside", draw.Outside),
	{
		Name:   "thick_circle",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			c.SetFillColor(blue)
			c.SetStrokeThickness(0.6)
			c.SetStrokeAlignment(draw.Edge)
			c.Circle(0, 0, 1)
		},
	},
}

// alignmentScene draws every quad shape with a thick stroke using the
// given alignment.
func alignmentScene(name string, a draw.StrokeAlignment) TestCase {
	return TestCase{
		Name:   name,
		Width:  240,
		Height: 240,
		Draw: func(c *draw.Context) {
			c.SetFillColor(blue)
			c.SetStrokeColor(dark)
			c.SetStrokeThickness(0.12)
			c.SetStrokeAlignment(a)
			c.Circle(-0.55, 0.55, 0.7)
			c.Rect(0.55, 0.55, 0.7, 0.5, 0)
			c.Pie(-0.55, -0.55, 0.8, 20, 250, 0)
			c.Arc(0.55, -0.55, 0.3, 0.8, 0, 270, 0)
		},
	}
}
