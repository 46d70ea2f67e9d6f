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
)

// mul returns the transformation which applies a first and then b.
func mul(a, b matrix.Matrix) matrix.Matrix {
	return matrix.Matrix{
		a[0]*b[0] + a[1]*b[2],
		a[0]*b[1] + a[1]*b[3],
		a[2]*b[0] + a[3]*b[2],
		a[2]*b[1] + a[3]*b[3],
		a[4]*b[0] + a[5]*b[2] + b[4],
		a[4]*b[1] + a[5]*b[3] + b[5],
	}
}

func translation(x, y float64) matrix.Matrix {
	return matrix.Matrix{1, 0, 0, 1, x, y}
}

// rotationMatrix returns a counter-clockwise rotation by deg degrees.
func rotationMatrix(deg float64) matrix.Matrix {
	s, c := math.Sincos(deg * (math.Pi / 180))
	return matrix.Matrix{c, s, -s, c, 0, 0}
}

// Apply maps v through m.
func Apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// Invert returns the inverse of m.
// If m is singular, ok is false.
func Invert(m matrix.Matrix) (inv matrix.Matrix, ok bool) {
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return matrix.Matrix{}, false
	}
	a := m[3] / det
	b := -m[1] / det
	c := -m[2] / det
	d := m[0] / det
	return matrix.Matrix{
		a, b, c, d,
		-(m[4]*a + m[5]*c),
		-(m[4]*b + m[5]*d),
	}, true
}

// Concat returns the transformation which applies the given matrices in
// order, the first one first.
func Concat(ms ...matrix.Matrix) matrix.Matrix {
	res := matrix.Identity
	for _, m := range ms {
		res = mul(res, m)
	}
	return res
}
