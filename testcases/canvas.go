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
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/draw"
)

var canvasCases = []TestCase{
	{
		Name:   "translate_rotate",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			c.SetFillColor(blue)
			c.PushCanvas()
			c.TranslateCanvas(0.3, 0.2)
			c.RotateCanvas(30)
			c.Rect(0, 0, 0.8, 0.4, 0)
			c.PopCanvas()
			c.SetFillColor(orange)
			c.Circle(0.3, 0.2, 0.2)
		},
	},
	{
		Name:   "nested",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			c.SetStrokeThickness(0.05)
			for i := range 6 {
				c.SetFillColor(draw.Gray(0.3 + 0.12*float64(i)))
				c.Rect(0, 0, 1.6, 1.6, 0)
				c.PushCanvas()
				c.RotateCanvas(15)
				c.ScaleCanvas(0.8, 0.8)
			}
			for range 6 {
				c.PopCanvas()
			}
		},
	},
	{
		Name:   "ellipse",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			c.SetFillColor(green)
			c.SetStrokeThickness(0.05)
			c.ScaleCanvas(1.6, 0.8)
			c.Circle(0, 0, 1)
		},
	},
	{
		Name:   "shear",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			c.SetFillColor(orange)
			c.SetCanvasMatrix(matrix.Matrix{1, 0, 0.5, 1, 0, 0})
			c.Rect(0, 0, 0.8, 0.8, 0)
		},
	},
	{
		Name:   "pivots",
		Width:  300,
		Height: 300,
		Draw: func(c *draw.Context) {
			pivots := []draw.Pivot{
				draw.TopLeft, draw.Top, draw.TopRight,
				draw.Left, draw.Center, draw.Right,
				draw.BottomLeft, draw.Bottom, draw.BottomRight,
			}
			for i, p := range pivots {
				x := -1 + float64(i%3)
				y := 1 - float64(i/3)
				c.SetPivot(p)
				c.SetFillColor(blue)
				c.SetStrokeThickness(0.03)
				c.Rect(x, y, 0.4, 0.3, 0)

				c.SetPivot(draw.Center)
				c.SetFillColor(orange)
				c.SetNoStroke()
				c.Circle(x, y, 0.08)
				c.SetStrokeColor(draw.Black)
			}
		},
	},
	{
		Name:   "pivot_rotation",
		Width:  200,
		Height: 200,
		Draw: func(c *draw.Context) {
			c.SetPivot(draw.BottomLeft)
			c.SetStrokeThickness(0.03)
			for i := range 4 {
				c.SetFillColor(draw.Gray(0.2 + 0.2*float64(i)))
				c.Rect(0, 0, 0.8, 0.3, 90*float64(i))
			}
		},
	},
}
