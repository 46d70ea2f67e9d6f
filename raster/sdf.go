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
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/draw"
)

// aaWidth is half the width of the anti-aliasing transition, in pixels.
const aaWidth = 0.5

// coverage converts a signed distance in pixels (negative inside) into
// pixel coverage. With antialiasing the edge is a smoothstep over one
// pixel, otherwise it is a hard threshold.
func coverage(d float64, antialias bool) float64 {
	if !antialias {
		if d <= 0 {
			return 1
		}
		return 0
	}
	if d >= aaWidth {
		return 0
	}
	if d <= -aaWidth {
		return 1
	}
	t := (d + aaWidth) / (2 * aaWidth)
	return 1 - t*t*(3-2*t)
}

// bands returns the signed distances, in local units, from p to the
// inner edge of the stroke and to the outer edge of the stroke. Pixels
// with fill <= 0 get the fill color, pixels with fill > 0 and outer <= 0
// get the stroke color. The shape is centred at the origin.
func bands(kind draw.Kind, p vec.Vec2, params *draw.Params) (fill, outer float64) {
	if kind == draw.KindLine {
		return math.Inf(1), sdLine(p, params)
	}
	if kind == draw.KindCircle {
		r := params.MeshExtents.X
		l := p.Length()
		return l - params.InnerRadiusRel*r, l - r
	}

	var d float64
	switch kind {
	case draw.KindPie:
		d = sdPie(p, params.FillExtents.X, params.AngleExtents)
	case draw.KindArc:
		d = sdArc(p, params)
	case draw.KindRect:
		d = sdRoundedBox(p, params.FillExtents, params.Roundedness)
	default:
		return math.Inf(1), math.Inf(1)
	}
	fill = d - params.StrokeMin
	return fill, fill - params.StrokeThickness
}

// sdPie is the distance to a circular sector of radius r around the
// positive x-axis, with half opening angle a.
func sdPie(p vec.Vec2, r, a float64) float64 {
	d := p.Length() - r
	if a >= math.Pi {
		return d
	}
	return max(d, sdWedge(p, a))
}

// sdWedge is the distance to the infinite wedge of half opening angle a
// around the positive x-axis.
func sdWedge(p vec.Vec2, a float64) float64 {
	// fold into the upper half plane, rotated so that the wedge axis is y
	q := vec.Vec2{X: math.Abs(p.Y), Y: p.X}
	c := vec.Vec2{X: math.Sin(a), Y: math.Cos(a)}

	// distance to the boundary ray
	t := max(q.Dot(c), 0)
	m := q.Sub(c.Mul(t)).Length()
	if c.Y*q.X-c.X*q.Y > 0 {
		return m
	}
	return -m
}

// sdArc is the distance to a ring segment. The centre line of the band
// has radius FillExtents.X, the half band width is FillExtents.Y, and
// the segment has half opening angle AngleExtents around the x-axis.
func sdArc(p vec.Vec2, params *draw.Params) float64 {
	centre := params.FillExtents.X
	half := params.FillExtents.Y
	d := math.Abs(p.Length()-centre) - half
	if params.AngleExtents >= math.Pi {
		return d
	}
	return max(d, sdWedge(p, params.AngleExtents))
}

// sdRoundedBox is the distance to a rectangle of half size ext whose
// corners have the radii rad (lower left, upper left, upper right, lower
// right).
func sdRoundedBox(p, ext vec.Vec2, rad [4]float64) float64 {
	var r float64
	switch {
	case p.X < 0 && p.Y < 0:
		r = rad[0]
	case p.X < 0:
		r = rad[1]
	case p.Y >= 0:
		r = rad[2]
	default:
		r = rad[3]
	}

	dx := math.Abs(p.X) - ext.X + r
	dy := math.Abs(p.Y) - ext.Y + r
	outside := math.Hypot(max(dx, 0), max(dy, 0))
	inside := min(max(dx, dy), 0)
	return outside + inside - r
}

// sdLine is the distance to a straight stroke along the x-axis, with the
// length 2·MeshExtents.X and half thickness MeshExtents.Y. Rounded ends
// are half discs which fit inside the length.
func sdLine(p vec.Vec2, params *draw.Params) float64 {
	ext := params.MeshExtents
	h := ext.Y

	round := params.RoundedCaps[1]
	if p.X < 0 {
		round = params.RoundedCaps[0]
	}
	if !round {
		dx := math.Abs(p.X) - ext.X
		dy := math.Abs(p.Y) - h
		return math.Hypot(max(dx, 0), max(dy, 0)) + min(max(dx, dy), 0)
	}

	// capsule: distance to the axis segment, minus the radius
	end := ext.X - h
	x := min(math.Abs(p.X), end)
	return math.Hypot(math.Abs(p.X)-x, p.Y) - h
}
