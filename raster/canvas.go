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

// Package raster draws shape submissions into an RGBA image on the CPU.
//
// Quad shapes (circles, pies, arcs, rectangles and lines) are shaded per
// pixel from their signed distance functions. Mesh shapes (polygons and
// polylines) are scan converted face by face with an exact area coverage
// rasteriser. The result can be used to check scenes without a GPU, and
// to render them into image files.
package raster

import (
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/draw"
)

// PixelsPerUnit is the default scale of a Canvas.
const PixelsPerUnit = 100

// Canvas is a draw.Renderer which paints into an image.
//
// World coordinates have the y-axis pointing up. The default device
// transformation puts the origin at the centre of the image, with
// PixelsPerUnit pixels per world unit.
type Canvas struct {
	// Device maps world coordinates to pixel coordinates.
	Device matrix.Matrix

	// Background is the color used by Clear.
	Background draw.Color

	img       *image.RGBA
	antialias bool
	ras       *Rasteriser
	mask      []float32
}

var (
	_ draw.Renderer      = (*Canvas)(nil)
	_ draw.KeywordSetter = (*Canvas)(nil)
)

// NewCanvas allocates a width×height canvas with a white background.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		Device: matrix.Matrix{
			PixelsPerUnit, 0,
			0, -PixelsPerUnit,
			float64(width) / 2, float64(height) / 2,
		},
		Background: draw.White,
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		antialias:  true,
	}
	c.ras = NewRasteriser(c.clip())
	c.Clear()
	return c
}

// Image returns the image the canvas paints into.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the whole image with the background color.
func (c *Canvas) Clear() {
	r, g, b, a := c.Background.RGBA()
	px := [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	for i := 0; i < len(c.img.Pix); i += 4 {
		copy(c.img.Pix[i:i+4], px[:])
	}
}

// SetKeyword implements draw.KeywordSetter. The canvas knows the
// antialiasing keyword; other keywords are ignored.
func (c *Canvas) SetKeyword(name string, enabled bool) {
	if name != draw.KeywordAntialias {
		draw.Logger().Debug("ignoring unknown keyword", "keyword", name)
		return
	}
	c.antialias = enabled
}

// Submit implements draw.Renderer.
func (c *Canvas) Submit(s *draw.Submission) {
	dev := draw.Concat(s.Transform, c.Device)
	inv, ok := draw.Invert(dev)
	if !ok {
		draw.Logger().Debug("skipping submission with singular transform",
			"kind", s.Kind)
		return
	}
	aa := s.Params.Antialias && c.antialias

	if s.Kind.IsMesh() {
		c.drawMesh(s, dev, inv, aa)
	} else {
		c.drawQuad(s, dev, inv, aa)
	}
}

func (c *Canvas) clip() rect.Rect {
	b := c.img.Bounds()
	return rect.Rect{
		LLx: float64(b.Min.X), LLy: float64(b.Min.Y),
		URx: float64(b.Max.X), URy: float64(b.Max.Y),
	}
}

// deviceBounds returns the pixel rectangle covering the image of the
// rectangle b under m, clipped to the canvas.
func (c *Canvas) deviceBounds(b rect.Rect, m matrix.Matrix) image.Rectangle {
	x0, y0 := math.Inf(1), math.Inf(1)
	x1, y1 := math.Inf(-1), math.Inf(-1)
	for _, p := range [4]vec.Vec2{
		{X: b.LLx, Y: b.LLy}, {X: b.LLx, Y: b.URy},
		{X: b.URx, Y: b.URy}, {X: b.URx, Y: b.LLy},
	} {
		q := draw.Apply(m, p)
		x0, x1 = min(x0, q.X), max(x1, q.X)
		y0, y1 = min(y0, q.Y), max(y1, q.Y)
	}
	if !(x1 > x0 || y1 > y0) {
		return image.Rectangle{}
	}
	r := image.Rect(
		int(math.Floor(x0))-1, int(math.Floor(y0))-1,
		int(math.Ceil(x1))+1, int(math.Ceil(y1))+1,
	)
	return r.Intersect(c.img.Bounds())
}

// drawQuad shades a quad shape pixel by pixel.
func (c *Canvas) drawQuad(s *draw.Submission, dev, inv matrix.Matrix, aa bool) {
	p := &s.Params
	ext := p.MeshExtents
	if !(ext.X > 0 && ext.Y > 0) {
		return
	}
	box := c.deviceBounds(rect.Rect{LLx: -1, LLy: -1, URx: 1, URy: 1}, dev)
	if box.Empty() {
		return
	}

	// size of one pixel in local units
	px := math.Sqrt(math.Abs(inv[0]*inv[3]-inv[1]*inv[2]) * ext.X * ext.Y)
	if !(px > 0) {
		return
	}

	// the distance functions are valid beyond the quad, which leaves
	// room for the outer half of the antialiasing ramp
	limX := 1 + px/ext.X
	limY := 1 + px/ext.Y

	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			q := draw.Apply(inv, vec.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5})
			if math.Abs(q.X) > limX || math.Abs(q.Y) > limY {
				continue
			}
			local := vec.Vec2{X: q.X * ext.X, Y: q.Y * ext.Y}
			fd, od := bands(s.Kind, local, p)
			fc := coverage(fd/px, aa)
			sc := max(coverage(od/px, aa)-fc, 0)
			if fc == 0 && sc == 0 {
				continue
			}
			c.blend(x, y, p.FillColor, fc, p.StrokeColor, sc)
		}
	}
}

// drawMesh scan converts the faces of a mesh into a coverage mask and
// then paints the mask. Faces share edges, so the mask accumulates
// coverage as a saturating sum.
func (c *Canvas) drawMesh(s *draw.Submission, dev, inv matrix.Matrix, aa bool) {
	m := s.Mesh
	if m.IsEmpty() {
		return
	}
	box := c.deviceBounds(m.Bounds, dev)
	if box.Empty() {
		return
	}
	w, h := box.Dx(), box.Dy()
	n := w * h
	if cap(c.mask) < n {
		c.mask = make([]float32, n)
	}
	mask := c.mask[:n]
	clear(mask)

	c.ras.Reset(rect.Rect{
		LLx: float64(box.Min.X), LLy: float64(box.Min.Y),
		URx: float64(box.Max.X), URy: float64(box.Max.Y),
	})
	c.ras.CTM = dev

	half := s.Params.HalfStrokeThickness
	px := math.Sqrt(math.Abs(inv[0]*inv[3] - inv[1]*inv[2]))
	var seg *draw.Segment
	emit := func(y, xMin int, cov []float32) {
		row := mask[(y-box.Min.Y)*w:]
		for i, v := range cov {
			x := xMin + i
			if seg != nil && v > 0 {
				v *= float32(capCoverage(seg, inv, x, y, half, px, aa))
			}
			k := x - box.Min.X
			row[k] = min(row[k]+v, 1)
		}
	}

	size := m.Topology.FaceSize()
	for i, face := range m.Faces() {
		seg = nil
		if k := m.Indices[i*size]; k < len(m.Segments) {
			if sg := &m.Segments[k]; sg.RoundBegin || sg.RoundEnd {
				seg = sg
			}
		}
		c.ras.FillPolygon(face, emit)
	}

	col := s.Params.StrokeColor
	if s.Kind == draw.KindPolygon {
		col = s.Params.FillColor
	}
	for y := box.Min.Y; y < box.Max.Y; y++ {
		row := mask[(y-box.Min.Y)*w : (y-box.Min.Y+1)*w]
		for i, v := range row {
			if !aa {
				if v < 0.5 {
					continue
				}
				v = 1
			}
			if v > 0 {
				c.blend(box.Min.X+i, y, col, float64(v), draw.Clear, 0)
			}
		}
	}
}

// capCoverage trims the cap quad of a round stroke end to a half disc.
func capCoverage(seg *draw.Segment, inv matrix.Matrix, x, y int, half, px float64, aa bool) float64 {
	if !(px > 0) {
		return 1
	}
	p := draw.Apply(inv, vec.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5})
	axis := seg.B.Sub(seg.A)
	cov := 1.0
	if seg.RoundBegin && p.Sub(seg.A).Dot(axis) < 0 {
		cov *= coverage((p.Sub(seg.A).Length()-half)/px, aa)
	}
	if seg.RoundEnd && p.Sub(seg.B).Dot(axis) > 0 {
		cov *= coverage((p.Sub(seg.B).Length()-half)/px, aa)
	}
	return cov
}

// blend paints the fill color with coverage fc and the stroke color with
// coverage sc over the pixel at (x, y).
func (c *Canvas) blend(x, y int, fill draw.Color, fc float64, stroke draw.Color, sc float64) {
	fa := fill.A * fc
	sa := stroke.A * sc
	a := fa + sa
	if a <= 0 {
		return
	}
	r := fill.R*fa + stroke.R*sa
	g := fill.G*fa + stroke.G*sa
	b := fill.B*fa + stroke.B*sa

	i := c.img.PixOffset(x, y)
	pix := c.img.Pix[i : i+4 : i+4]
	keep := 1 - min(a, 1)
	pix[0] = toByte(r + float64(pix[0])/255*keep)
	pix[1] = toByte(g + float64(pix[1])/255*keep)
	pix[2] = toByte(b + float64(pix[2])/255*keep)
	pix[3] = toByte(a + float64(pix[3])/255*keep)
}

func toByte(v float64) uint8 {
	v = math.Round(v * 255)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
