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

// Package tess triangulates simple polygons by ear clipping.
//
// The input is a flat list of vertices: the outer ring first, optionally
// followed by hole rings. Holes are joined to the outer ring by bridge edges
// before clipping, so the output never contains new vertices; every index
// refers to the input slice.
package tess

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/draw/vecmath"
)

// node is a vertex in the circular list of the ring being clipped.
type node struct {
	i          int // index into the input points
	p          vec.Vec2
	prev, next *node
}

// Triangulate returns a triangle index list covering the polygon.
//
// The outer ring is points[:holes[0]] (or all points if holes is empty),
// hole k is points[holes[k]:holes[k+1]]. Rings may be given in either
// orientation. Every returned triangle runs clockwise in a y-up coordinate
// system. For a simple polygon with N vertices and no holes the result has
// exactly 3*(N-2) entries. Fewer than three outer vertices give nil.
func Triangulate(points []vec.Vec2, holes []int) []int {
	outerEnd := len(points)
	if len(holes) > 0 {
		outerEnd = holes[0]
	}
	if outerEnd < 3 {
		return nil
	}

	outer := makeRing(points, 0, outerEnd, true)
	for k, start := range holes {
		end := len(points)
		if k+1 < len(holes) {
			end = holes[k+1]
		}
		if end-start < 3 {
			continue
		}
		hole := makeRing(points, start, end, false)
		outer = bridgeHole(outer, hole)
	}

	return clipEars(outer, nil)
}

// makeRing builds a circular list for points[start:end], oriented clockwise
// if cw is set and counter-clockwise otherwise.
func makeRing(points []vec.Vec2, start, end int, cw bool) *node {
	isCCW := vecmath.Area(points[start:end]) > 0

	var first, last *node
	add := func(i int) {
		n := &node{i: i, p: points[i]}
		if first == nil {
			first = n
		} else {
			last.next = n
			n.prev = last
		}
		last = n
	}
	if isCCW == cw {
		for i := end - 1; i >= start; i-- {
			add(i)
		}
	} else {
		for i := start; i < end; i++ {
			add(i)
		}
	}
	last.next = first
	first.prev = last
	return first
}

// clipEars removes ears from the ring until a single triangle is left and
// appends all triangles to dst.
func clipEars(ring *node, dst []int) []int {
	remaining := 0
	for n := ring; ; {
		remaining++
		n = n.next
		if n == ring {
			break
		}
	}

	ear := ring
	stop := ear
	for remaining > 3 {
		if isEar(ear) {
			dst = append(dst, ear.prev.i, ear.i, ear.next.i)
			next := ear.next
			unlink(ear)
			remaining--
			ear = next
			stop = ear
			continue
		}

		ear = ear.next
		if ear == stop {
			// No ear was found in a full pass, which only happens for
			// degenerate or self-intersecting input. Clip the current
			// vertex anyway so that the loop terminates.
			dst = append(dst, ear.prev.i, ear.i, ear.next.i)
			next := ear.next
			unlink(ear)
			remaining--
			ear = next
			stop = ear
		}
	}
	return append(dst, ear.prev.i, ear.i, ear.next.i)
}

// isEar reports whether the triangle (e.prev, e, e.next) can be cut off the
// clockwise ring: the corner at e must not be reflex and no other vertex may
// lie inside the triangle.
func isEar(e *node) bool {
	a, b, c := e.prev.p, e.p, e.next.p
	if vecmath.Cross(b.Sub(a), c.Sub(b)) > 0 {
		return false // reflex
	}

	for n := e.next.next; n != e.prev; n = n.next {
		p := n.p
		if p == a || p == b || p == c {
			continue // bridge duplicates
		}
		if inTriangleCW(a, b, c, p) {
			return false
		}
	}
	return true
}

// inTriangleCW reports whether p lies inside or on the boundary of the
// clockwise triangle a, b, c.
func inTriangleCW(a, b, c, p vec.Vec2) bool {
	return vecmath.Cross(b.Sub(a), p.Sub(a)) <= 0 &&
		vecmath.Cross(c.Sub(b), p.Sub(b)) <= 0 &&
		vecmath.Cross(a.Sub(c), p.Sub(c)) <= 0
}

func unlink(n *node) {
	n.prev.next = n.next
	n.next.prev = n.prev
}
