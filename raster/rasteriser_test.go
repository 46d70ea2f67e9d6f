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

package raster

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestTriangleCoverage checks exact coverage values for a thin triangle.
// The triangle (0,0)→(10,0)→(10,1) has the diagonal edge y = x/10, so
// pixel x is covered to (2x+1)/20.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	r := NewRasteriser(rect.Rect{URx: 10, URy: 1})
	coverage := make([]float32, 10)
	r.FillNonZero(triangle, func(y, xMin int, cov []float32) {
		if y == 0 {
			copy(coverage[xMin:], cov)
		}
	})

	for x := range 10 {
		expected := float64(2*x+1) / 20
		assert.InDelta(t, expected, coverage[x], 1e-6, "pixel %d", x)
	}
}

// coverageMap rasterises with the given strategy and returns the result
// as a w×h grid.
func coverageMap(r *Rasteriser, w, h int, fill func(emit func(y, xMin int, cov []float32))) []float32 {
	out := make([]float32, w*h)
	fill(func(y, xMin int, cov []float32) {
		copy(out[y*w+xMin:], cov)
	})
	return out
}

func circlePath(cx, cy, radius float64, clockwise bool) *path.Data {
	const k = 0.5522847498
	kr := k * radius
	s := 1.0
	if clockwise {
		s = -1
	}
	p := &path.Data{}
	p.MoveTo(vec.Vec2{X: cx + radius, Y: cy})
	p.CubeTo(vec.Vec2{X: cx + radius, Y: cy + s*kr}, vec.Vec2{X: cx + kr, Y: cy + s*radius}, vec.Vec2{X: cx, Y: cy + s*radius})
	p.CubeTo(vec.Vec2{X: cx - kr, Y: cy + s*radius}, vec.Vec2{X: cx - radius, Y: cy + s*kr}, vec.Vec2{X: cx - radius, Y: cy})
	p.CubeTo(vec.Vec2{X: cx - radius, Y: cy - s*kr}, vec.Vec2{X: cx - kr, Y: cy - s*radius}, vec.Vec2{X: cx, Y: cy - s*radius})
	p.CubeTo(vec.Vec2{X: cx + kr, Y: cy - s*radius}, vec.Vec2{X: cx + radius, Y: cy - s*kr}, vec.Vec2{X: cx + radius, Y: cy})
	p.Close()
	return p
}

func TestStrategiesAgree(t *testing.T) {
	const w, h = 80, 60
	clip := rect.Rect{URx: w, URy: h}

	ring := circlePath(40, 30, 25, false)
	inner := circlePath(40, 30, 12, true)
	ring.Cmds = append(ring.Cmds, inner.Cmds...)
	ring.Coords = append(ring.Coords, inner.Coords...)

	dense := NewRasteriser(clip)
	dense.denseLimit = 1 << 30
	sweep := NewRasteriser(clip)
	sweep.denseLimit = 0

	for _, evenOdd := range []bool{false, true} {
		run := func(r *Rasteriser) []float32 {
			return coverageMap(r, w, h, func(emit func(y, xMin int, cov []float32)) {
				if evenOdd {
					r.FillEvenOdd(ring, emit)
				} else {
					r.FillNonZero(ring, emit)
				}
			})
		}
		a := run(dense)
		b := run(sweep)
		require.Len(t, b, len(a))
		for i := range a {
			if math.Abs(float64(a[i]-b[i])) > 1e-5 {
				t.Fatalf("evenOdd=%t: pixel (%d,%d) dense=%g sweep=%g",
					evenOdd, i%w, i/w, a[i], b[i])
			}
		}
	}
}

func TestFillPolygonMatchesPath(t *testing.T) {
	const w, h = 40, 40
	clip := rect.Rect{URx: w, URy: h}
	pts := []vec.Vec2{{X: 3, Y: 5}, {X: 35, Y: 2.5}, {X: 30.2, Y: 37}, {X: 12, Y: 20}}

	p := &path.Data{}
	p.MoveTo(pts[0])
	for _, q := range pts[1:] {
		p.LineTo(q)
	}
	p.Close()

	r := NewRasteriser(clip)
	a := coverageMap(r, w, h, func(emit func(y, xMin int, cov []float32)) {
		r.FillNonZero(p, emit)
	})
	b := coverageMap(r, w, h, func(emit func(y, xMin int, cov []float32)) {
		r.FillPolygon(pts, emit)
	})
	assert.Equal(t, a, b)
}

func TestFillRules(t *testing.T) {
	const w, h = 20, 20
	square := func(p *path.Data, x0, y0, x1, y1 float64) {
		p.MoveTo(vec.Vec2{X: x0, Y: y0})
		p.LineTo(vec.Vec2{X: x1, Y: y0})
		p.LineTo(vec.Vec2{X: x1, Y: y1})
		p.LineTo(vec.Vec2{X: x0, Y: y1})
		p.Close()
	}
	p := &path.Data{}
	square(p, 2, 2, 18, 18)
	square(p, 6, 6, 14, 14) // same orientation

	r := NewRasteriser(rect.Rect{URx: w, URy: h})
	nz := coverageMap(r, w, h, func(emit func(y, xMin int, cov []float32)) {
		r.FillNonZero(p, emit)
	})
	eo := coverageMap(r, w, h, func(emit func(y, xMin int, cov []float32)) {
		r.FillEvenOdd(p, emit)
	})

	centre := 10*w + 10
	ring := 4*w + 4
	assert.InDelta(t, 1, nz[centre], 1e-6)
	assert.InDelta(t, 0, eo[centre], 1e-6)
	assert.InDelta(t, 1, nz[ring], 1e-6)
	assert.InDelta(t, 1, eo[ring], 1e-6)
	assert.Zero(t, nz[0])
}

func TestTransformAndCurves(t *testing.T) {
	const size = 64
	r := NewRasteriser(rect.Rect{URx: size, URy: size})
	r.CTM = matrix.Matrix{10, 0, 0, 10, 32, 32}

	var total float64
	r.FillNonZero(circlePath(0, 0, 2.5, false), func(y, xMin int, cov []float32) {
		for _, c := range cov {
			total += float64(c)
		}
	})
	// area of a radius 25 circle, less the flattening error
	assert.InEpsilon(t, math.Pi*25*25, total, 0.02)
}

func TestClip(t *testing.T) {
	r := NewRasteriser(rect.Rect{LLx: 5, LLy: 5, URx: 10, URy: 10})
	sq := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 20, Y: 0}).
		LineTo(vec.Vec2{X: 20, Y: 20}).
		LineTo(vec.Vec2{X: 0, Y: 20}).
		Close()

	rows := 0
	r.FillNonZero(sq, func(y, xMin int, cov []float32) {
		rows++
		assert.GreaterOrEqual(t, y, 5)
		assert.Less(t, y, 10)
		assert.Equal(t, 5, xMin)
		assert.Len(t, cov, 5)
		for _, c := range cov {
			assert.InDelta(t, 1, c, 1e-6)
		}
	})
	assert.Equal(t, 5, rows)
}

func TestEmptyInput(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 10, URy: 10})
	called := false
	emit := func(y, xMin int, cov []float32) { called = true }

	r.FillNonZero(&path.Data{}, emit)
	r.FillPolygon(nil, emit)
	r.FillPolygon([]vec.Vec2{{X: 1, Y: 1}, {X: 5, Y: 5}}, emit)
	assert.False(t, called)
}

// TestAgainstVector compares the coverage of an "O" shape with the
// rasteriser from golang.org/x/image/vector.
func TestAgainstVector(t *testing.T) {
	const size = 64
	const centre, outer, inner = 32.0, 28.0, 17.0

	r := NewRasteriser(rect.Rect{URx: size, URy: size})
	r.Flatness = 0.02
	ours := coverageMap(r, size, size, func(emit func(y, xMin int, cov []float32)) {
		r.FillNonZero(makeOPath(centre, centre, outer, inner), emit)
	})

	v := vector.NewRasterizer(size, size)
	addCircleToVector(v, centre, centre, outer, false)
	addCircleToVector(v, centre, centre, inner, true)
	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	v.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})

	var sumOurs, sumTheirs float64
	for y := range size {
		for x := range size {
			a := float64(ours[y*size+x])
			b := float64(dst.AlphaAt(x, y).A) / 255
			sumOurs += a
			sumTheirs += b
			// x/image/vector flattens curves more coarsely
			if math.Abs(a-b) > 0.4 {
				t.Errorf("pixel (%d,%d): got %.3f, x/image/vector has %.3f", x, y, a, b)
			}
		}
	}
	assert.InEpsilon(t, sumTheirs, sumOurs, 0.03)
}
