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

// Package testcases contains drawing scenes for testing renderers.
//
// Every scene draws into a fresh draw.Context. World coordinates are
// chosen so that a scene fits into its Width×Height pixel image at 100
// pixels per unit, with the origin at the image centre.
package testcases

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/draw"
)

// TestCase is a named drawing scene.
type TestCase struct {
	Name   string // lowercase a-z and _ only
	Width  int    // image width in pixels
	Height int    // image height in pixels

	// Draw issues the draw calls of the scene.
	Draw func(c *draw.Context)
}

// Record draws the scene into a new Recorder.
func (tc TestCase) Record() *draw.Recorder {
	rec := &draw.Recorder{}
	tc.Draw(draw.New(rec))
	return rec
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// scene colors
var (
	blue   = draw.RGB(0.2, 0.4, 0.8)
	orange = draw.RGB(0.95, 0.55, 0.1)
	green  = draw.RGB(0.2, 0.65, 0.3)
	dark   = draw.Gray(0.15)
)
