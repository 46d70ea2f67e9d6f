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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/draw/vecmath"
)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // inverse slope
}

func (e *edge) yRange() (lo, hi float64) {
	return min(e.y0, e.y1), max(e.y0, e.y1)
}

// xAt returns the x coordinate of the edge's line at height y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasteriser computes anti-aliased pixel coverage of filled outlines.
//
// Coverage is exact area coverage: every edge adds its signed area to the
// pixels it crosses, and a prefix sum along each row turns this into
// winding-weighted coverage. Buffers are kept between calls, so that a
// long-lived Rasteriser does not allocate in steady state.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user coordinates to device pixels.
	CTM matrix.Matrix

	// Clip limits the output to this rectangle of device pixels.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments approximating it.
	Flatness float64

	// denseLimit is the largest bounding box area, in pixels, which is
	// rasterised with a full 2D accumulation buffer.
	denseLimit int

	cover     []float32 // signed vertical coverage per pixel; reused for output
	area      []float32 // area to the right of the edge within the pixel
	edges     []edge
	active    []int  // indices into edges, for the sweep
	rowUsed   []bool // rows of the dense buffer reached by an edge
	crossings []float64

	// device space bounding box of the collected edges
	haveEdges      bool
	bboxX0, bboxX1 float64
	bboxY0, bboxY1 float64

	current, subpathStart vec.Vec2 // device coordinates
}

// NewRasteriser returns a Rasteriser for the given clip rectangle with the
// identity transformation and the default flatness.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default settings for a new clip rectangle. Internal
// buffers keep their capacity.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.denseLimit = denseLimit

	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.rowUsed = r.rowUsed[:0]
	r.crossings = r.crossings[:0]
}

// FillNonZero fills p using the nonzero winding rule.
// The coverage of each row is passed to emit, starting at pixel xMin.
// The coverage slice is only valid during the call.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.collectPath(p)
	r.fill(nonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
// The coverage of each row is passed to emit, starting at pixel xMin.
// The coverage slice is only valid during the call.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.collectPath(p)
	r.fill(evenOdd, emit)
}

// FillPolygon fills the closed polygon with the given corners using the
// nonzero winding rule. This is the same as FillNonZero on the
// corresponding path, without building one.
func (r *Rasteriser) FillPolygon(points []vec.Vec2, emit func(y, xMin int, coverage []float32)) {
	r.beginEdges()
	if len(points) >= 3 {
		first := r.toDevice(points[0])
		prev := first
		for _, p := range points[1:] {
			q := r.toDevice(p)
			r.addEdge(prev, q)
			prev = q
		}
		r.addEdge(prev, first)
	}
	r.fill(nonZero, emit)
}

type fillRule int

const (
	nonZero fillRule = iota
	evenOdd
)

func (r *Rasteriser) fill(rule fillRule, emit func(y, xMin int, coverage []float32)) {
	x0, x1, y0, y1, ok := r.pixelBounds()
	if !ok {
		return
	}
	if (x1-x0)*(y1-y0) < r.denseLimit {
		r.rasteriseDense(x0, x1, y0, y1, rule, emit)
	} else {
		r.rasteriseSweep(x0, x1, y0, y1, rule, emit)
	}
}

func (r *Rasteriser) toDevice(p vec.Vec2) vec.Vec2 {
	m := &r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// collectPath converts p into device space edges. Since Bézier curves are
// invariant under affine maps, the control points are transformed first
// and the curves are flattened in device space.
func (r *Rasteriser) collectPath(p *path.Data) {
	r.beginEdges()
	lineTo := func(q vec.Vec2) {
		r.addEdge(r.current, q)
		r.current = q
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			r.closeSubpath()
			r.current = r.toDevice(p.Coords[k])
			r.subpathStart = r.current
			k++
		case path.CmdLineTo:
			lineTo(r.toDevice(p.Coords[k]))
			k++
		case path.CmdQuadTo:
			c := r.toDevice(p.Coords[k])
			q := r.toDevice(p.Coords[k+1])
			vecmath.FlattenQuadratic(r.current, c, q, r.Flatness, lineTo)
			k += 2
		case path.CmdCubeTo:
			c1 := r.toDevice(p.Coords[k])
			c2 := r.toDevice(p.Coords[k+1])
			q := r.toDevice(p.Coords[k+2])
			vecmath.FlattenCubic(r.current, c1, c2, q, r.Flatness, lineTo)
			k += 3
		case path.CmdClose:
			r.closeSubpath()
			r.current = r.subpathStart
		}
	}
	r.closeSubpath()
}

// closeSubpath adds the implicit closing edge of a filled subpath.
func (r *Rasteriser) closeSubpath() {
	if r.current != r.subpathStart {
		r.addEdge(r.current, r.subpathStart)
	}
}

func (r *Rasteriser) beginEdges() {
	r.edges = r.edges[:0]
	r.haveEdges = false
	r.current = vec.Vec2{}
	r.subpathStart = vec.Vec2{}
}

// addEdge records the device space segment from p0 to p1.
// Horizontal segments do not contribute to coverage and are dropped.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	dy := p1.Y - p0.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / dy,
	})

	xLo, xHi := min(p0.X, p1.X), max(p0.X, p1.X)
	yLo, yHi := min(p0.Y, p1.Y), max(p0.Y, p1.Y)
	if !r.haveEdges {
		r.bboxX0, r.bboxX1 = xLo, xHi
		r.bboxY0, r.bboxY1 = yLo, yHi
		r.haveEdges = true
		return
	}
	r.bboxX0 = min(r.bboxX0, xLo)
	r.bboxX1 = max(r.bboxX1, xHi)
	r.bboxY0 = min(r.bboxY0, yLo)
	r.bboxY1 = max(r.bboxY1, yHi)
}

// pixelBounds returns the pixel range [x0, x1)×[y0, y1) of the collected
// edges, intersected with the clip rectangle.
func (r *Rasteriser) pixelBounds() (x0, x1, y0, y1 int, ok bool) {
	if !r.haveEdges || len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	x0 = max(int(math.Floor(r.bboxX0)), int(r.Clip.LLx))
	x1 = min(int(math.Floor(r.bboxX1))+1, int(r.Clip.URx))
	y0 = max(int(math.Floor(r.bboxY0)), int(r.Clip.LLy))
	y1 = min(int(math.Floor(r.bboxY1))+1, int(r.Clip.URy))
	if x0 >= x1 || y0 >= y1 {
		return 0, 0, 0, 0, false
	}
	return x0, x1, y0, y1, true
}

// How coverage is accumulated:
//
// Within one row, an edge piece which stays inside a single pixel column
// and spans the height dy contributes sign·dy to cover[] at that pixel,
// and sign·dy·(1-f) to area[] there, where f is the horizontal position of
// the piece inside the pixel. The sign is +1 for downward edges.
//
// The coverage of pixel i is then sum(cover[:i]) + area[i]. Its absolute
// value, clamped to 1, is the nonzero coverage; folding it into [0, 1]
// with period 2 gives the even-odd coverage.

// addCoverage adds the part of e inside row y to the accumulation buffers,
// which cover the pixels [x0, x1). Pieces left of the buffer are folded
// into its first pixel, pieces right of it are dropped.
func (r *Rasteriser) addCoverage(e *edge, y int, cover, area []float32, x0, x1 int) {
	lo, hi := e.yRange()
	top := max(float64(y), lo)
	bot := min(float64(y+1), hi)
	if bot <= top {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa, xb := e.xAt(top), e.xAt(bot)
	left := int(math.Floor(min(xa, xb)))
	right := int(math.Floor(max(xa, xb)))

	switch {
	case right < x0:
		c := sign * float32(bot-top)
		cover[0] += c
		area[0] += c
		return
	case left >= x1:
		return
	case left == right:
		r.addPiece(e, top, bot, sign, left, cover, area, x0, x1)
		return
	}

	// The edge crosses columns: cut it where it meets x = left+1, ...,
	// right and handle every piece separately.
	r.crossings = append(r.crossings[:0], top, bot)
	dydx := 1 / e.dxdy
	for x := left + 1; x <= right; x++ {
		yx := e.y0 + dydx*(float64(x)-e.x0)
		if yx > top && yx < bot {
			r.crossings = append(r.crossings, yx)
		}
	}
	slices.Sort(r.crossings)

	for i := range len(r.crossings) - 1 {
		ya, yb := r.crossings[i], r.crossings[i+1]
		if yb <= ya {
			continue
		}
		pix := int(math.Floor(e.xAt((ya + yb) / 2)))
		r.addPiece(e, ya, yb, sign, pix, cover, area, x0, x1)
	}
}

// addPiece adds the part of e between the heights top and bot, which lies
// in pixel column pix.
func (r *Rasteriser) addPiece(e *edge, top, bot float64, sign float32, pix int, cover, area []float32, x0, x1 int) {
	c := sign * float32(bot-top)
	if pix < x0 {
		cover[0] += c
		area[0] += c
		return
	}
	if pix >= x1 {
		return
	}

	f := e.xAt((top+bot)/2) - float64(pix)
	i := pix - x0
	cover[i] += c
	area[i] += c * float32(1-f)
}

// resolve turns the accumulated cover and area of one row into coverage,
// in place in cover.
func resolve(rule fillRule, cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		if rule == evenOdd {
			v -= 2 * float32(int(v/2))
			if v > 1 {
				v = 2 - v
			}
		} else if v > 1 {
			v = 1
		}
		cover[i] = v
	}
}

// nonZeroSpan returns the part of row between the first and last non-zero
// entry, and the index of its first element.
func nonZeroSpan(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	for hi > lo && row[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return row[lo:hi], lo
}

// rasteriseDense accumulates all edges into a buffer covering the whole
// bounding box and then resolves it row by row.
func (r *Rasteriser) rasteriseDense(x0, x1, y0, y1 int, rule fillRule, emit func(y, xMin int, coverage []float32)) {
	w := x1 - x0
	h := y1 - y0

	n := w * h
	r.cover = slices.Grow(r.cover[:0], n)[:n]
	r.area = slices.Grow(r.area[:0], n)[:n]
	clear(r.cover)
	clear(r.area)

	r.rowUsed = slices.Grow(r.rowUsed[:0], h)[:h]
	clear(r.rowUsed)

	for i := range r.edges {
		e := &r.edges[i]
		lo, hi := e.yRange()
		first := max(int(math.Floor(lo)), y0)
		last := min(int(math.Floor(hi))+1, y1)
		for y := first; y < last; y++ {
			row := y - y0
			k := row * w
			r.addCoverage(e, y, r.cover[k:k+w], r.area[k:k+w], x0, x1)
			r.rowUsed[row] = true
		}
	}

	for row := range h {
		if !r.rowUsed[row] {
			continue
		}
		k := row * w
		cov := r.cover[k : k+w]
		resolve(rule, cov, r.area[k:k+w])
		if span, off := nonZeroSpan(cov); span != nil {
			emit(y0+row, x0+off, span)
		}
	}
}

// rasteriseSweep processes one row at a time, keeping a list of the edges
// which intersect the current row. This needs only one row of buffer
// space, which pays off for large bounding boxes.
func (r *Rasteriser) rasteriseSweep(x0, x1, y0, y1 int, rule fillRule, emit func(y, xMin int, coverage []float32)) {
	w := x1 - x0
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.active = r.active[:0]
	next := 0
	for y := y0; y < y1; y++ {
		top := float64(y)
		bot := float64(y + 1)

		for next < len(r.edges) {
			if lo, _ := r.edges[next].yRange(); lo >= bot {
				break
			}
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			lo, hi := e.yRange()
			if hi <= top {
				// finished: swap-remove
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			r.addCoverage(e, y, r.cover, r.area, x0, x1)
			if min(bot, hi) > max(top, lo) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		resolve(rule, r.cover, r.area)
		if span, off := nonZeroSpan(r.cover); span != nil {
			emit(y, x0+off, span)
		}
	}
}

const (
	// defaultFlatness is the default curve tolerance in device pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	// denseLimit is the largest bounding box area, in pixels, for which
	// a full 2D accumulation buffer is used.
	denseLimit = 65536
)
