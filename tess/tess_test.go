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

package tess

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/draw/vecmath"
)

// triangleAreas returns the signed area of every triangle in idx.
func triangleAreas(points []vec.Vec2, idx []int) []float64 {
	var res []float64
	for k := 0; k+2 < len(idx); k += 3 {
		a, b, c := points[idx[k]], points[idx[k+1]], points[idx[k+2]]
		res = append(res, vecmath.Cross(b.Sub(a), c.Sub(a))/2)
	}
	return res
}

func TestTriangulateSimple(t *testing.T) {
	star := make([]vec.Vec2, 10)
	for i := range star {
		r := 10.0
		if i%2 == 1 {
			r = 4
		}
		phi := float64(i) * math.Pi / 5
		star[i] = vec.Vec2{X: r * math.Cos(phi), Y: r * math.Sin(phi)}
	}

	cases := []struct {
		name   string
		points []vec.Vec2
	}{
		{"triangle", []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}},
		{"square-ccw", []vec.Vec2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}},
		{"square-cw", []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 0}}},
		{"L-shape", []vec.Vec2{
			{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 1},
			{X: 1, Y: 1}, {X: 1, Y: 3}, {X: 0, Y: 3},
		}},
		{"colinear", []vec.Vec2{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2},
		}},
		{"star", star},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			idx := Triangulate(tc.points, nil)
			require.Len(t, idx, 3*(len(tc.points)-2))

			total := 0.0
			for k, a := range triangleAreas(tc.points, idx) {
				assert.LessOrEqual(t, a, 1e-12, "triangle %d is not clockwise", k)
				total += a
			}
			want := math.Abs(vecmath.Area(tc.points))
			assert.InDelta(t, -want, total, 1e-9)
		})
	}
}

func TestTriangulateDegenerate(t *testing.T) {
	for n := range 3 {
		points := make([]vec.Vec2, n)
		assert.Nil(t, Triangulate(points, nil), fmt.Sprintf("%d points", n))
	}
}

func TestTriangulateHole(t *testing.T) {
	points := []vec.Vec2{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
		{X: 3, Y: 3}, {X: 7, Y: 3}, {X: 7, Y: 7}, {X: 3, Y: 7},
	}
	idx := Triangulate(points, []int{4})

	// two bridge vertices are added per hole
	require.Len(t, idx, 3*(len(points)+2-2))

	total := 0.0
	for _, a := range triangleAreas(points, idx) {
		assert.LessOrEqual(t, a, 1e-12)
		total += a
	}
	assert.InDelta(t, -84, total, 1e-9)

	for _, i := range idx {
		assert.True(t, i >= 0 && i < len(points))
	}
}

func TestTriangulateShortHole(t *testing.T) {
	points := []vec.Vec2{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4},
		{X: 1, Y: 1}, {X: 2, Y: 1},
	}
	idx := Triangulate(points, []int{4})
	assert.Len(t, idx, 6)
}
