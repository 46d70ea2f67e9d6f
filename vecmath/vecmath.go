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

// Package vecmath implements the small pieces of plane geometry needed by
// the mesh builders: intersection of offset lines, segment directions,
// cubic Bézier evaluation and flattening, and signed polygon area.
package vecmath

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// IntersectLines returns the intersection point of the infinite line through
// a1 and a2 with the infinite line through b1 and b2.
// If the lines are parallel, or if one of them is degenerate, ok is false.
func IntersectLines(a1, a2, b1, b2 vec.Vec2) (p vec.Vec2, ok bool) {
	da := a2.Sub(a1)
	db := b2.Sub(b1)

	// d is |da|·|db|·sin(angle between the lines)
	d := db.Y*da.X - db.X*da.Y
	scale := da.Length() * db.Length()
	if scale == 0 || math.Abs(d) <= parallelThreshold*scale {
		return vec.Vec2{}, false
	}

	ua := (db.X*(a1.Y-b1.Y) - db.Y*(a1.X-b1.X)) / d
	return a1.Add(da.Mul(ua)), true
}

// Unit returns v scaled to length 1.
// Vectors shorter than zeroLengthThreshold are mapped to the zero vector.
func Unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l < zeroLengthThreshold {
		return vec.Vec2{}
	}
	return v.Mul(1 / l)
}

// Directions fills dst with the unit direction from each point to the next
// one and returns the resulting slice. The last point inherits the direction
// of the final segment. If wrap is set, the points are treated as a closed
// ring and the last direction points back to the first point.
//
// The slice dst is reused if it has enough capacity.
func Directions(dst, points []vec.Vec2, wrap bool) []vec.Vec2 {
	n := len(points)
	if cap(dst) < n {
		dst = make([]vec.Vec2, n)
	}
	dst = dst[:n]
	if n < 2 {
		clear(dst)
		return dst
	}

	for i := 0; i < n-1; i++ {
		dst[i] = Unit(points[i+1].Sub(points[i]))
	}
	if wrap {
		dst[n-1] = Unit(points[0].Sub(points[n-1]))
	} else {
		dst[n-1] = dst[n-2]
	}
	return dst
}

// CubicBezier evaluates one coordinate of a cubic Bézier curve at t.
// a and d are the anchor values, b and c the control values.
func CubicBezier(a, b, c, d, t float64) float64 {
	s := 1 - t
	return a*s*s*s + 3*b*t*s*s + 3*c*t*t*s + d*t*t*t
}

// CubicPoint evaluates a cubic Bézier curve at t, one axis at a time.
func CubicPoint(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	return vec.Vec2{
		X: CubicBezier(p0.X, p1.X, p2.X, p3.X, t),
		Y: CubicBezier(p0.Y, p1.Y, p2.Y, p3.Y, t),
	}
}

// SampleCubic samples the cubic Bézier curve from anchorA to anchorB at
// resolution evenly spaced parameter values and stores the points in dst.
// The resolution is clamped to at least 3. The first and last sample are
// exactly the two anchors.
func SampleCubic(dst []vec.Vec2, anchorA, controlA, controlB, anchorB vec.Vec2, resolution int) []vec.Vec2 {
	resolution = max(resolution, MinBezierResolution)
	if cap(dst) < resolution {
		dst = make([]vec.Vec2, resolution)
	}
	dst = dst[:resolution]

	dst[0] = anchorA
	dst[resolution-1] = anchorB
	for i := 1; i < resolution-1; i++ {
		t := float64(i) / float64(resolution-1)
		dst[i] = CubicPoint(anchorA, controlA, controlB, anchorB, t)
	}
	return dst
}

// CubicSegments returns the number of line segments needed to approximate
// the cubic Bézier curve p0, p1, p2, p3 to within tolerance, using Wang's
// formula.
func CubicSegments(p0, p1, p2, p3 vec.Vec2, tolerance float64) int {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3
	m := max(d1.Length(), d2.Length())
	if m <= 0 || tolerance <= 0 {
		return 1
	}
	// n = ceil(sqrt(3 * m / (4 * ε)))
	n := math.Ceil(math.Sqrt(3 * m / (4 * tolerance)))
	return max(int(n), 1)
}

// QuadSegments returns the number of line segments needed to approximate
// the quadratic Bézier curve p0, p1, p2 to within tolerance.
func QuadSegments(p0, p1, p2 vec.Vec2, tolerance float64) int {
	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25).Length()
	if e <= tolerance || tolerance <= 0 {
		return 1
	}
	return max(int(math.Ceil(math.Sqrt(e/tolerance))), 1)
}

// FlattenCubic approximates a cubic Bézier curve by line segments and calls
// emit with every segment end point. The start point p0 is not emitted.
func FlattenCubic(p0, p1, p2, p3 vec.Vec2, tolerance float64, emit func(vec.Vec2)) {
	n := CubicSegments(p0, p1, p2, p3, tolerance)
	for i := 1; i < n; i++ {
		emit(CubicPoint(p0, p1, p2, p3, float64(i)/float64(n)))
	}
	emit(p3)
}

// FlattenQuadratic approximates a quadratic Bézier curve by line segments and
// calls emit with every segment end point. The start point p0 is not emitted.
func FlattenQuadratic(p0, p1, p2 vec.Vec2, tolerance float64, emit func(vec.Vec2)) {
	n := QuadSegments(p0, p1, p2, tolerance)
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
		s := 1 - t
		emit(p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t)))
	}
	emit(p2)
}

// Area returns the signed area of the polygon with the given vertices
// (shoelace formula). The area is positive if the vertices run
// counter-clockwise in a y-up coordinate system.
func Area(points []vec.Vec2) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}
	var sum float64
	prev := points[n-1]
	for _, p := range points {
		sum += prev.X*p.Y - p.X*prev.Y
		prev = p
	}
	return sum / 2
}

// Cross returns the z-component of the cross product of a and b.
func Cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

const (
	// MinBezierResolution is the smallest number of samples SampleCubic
	// produces.
	MinBezierResolution = 3

	// parallelThreshold is the sine of the smallest angle at which two
	// lines are still intersected.
	parallelThreshold = 1e-9

	// zeroLengthThreshold is the length below which a vector has no
	// direction.
	zeroLengthThreshold = 1e-12
)
