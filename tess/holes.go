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
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/draw/vecmath"
)

// bridgeHole joins the counter-clockwise hole ring to the clockwise outer
// ring with a pair of coincident bridge edges and returns the merged ring.
func bridgeHole(outer, hole *node) *node {
	// start from the leftmost hole vertex
	h := hole
	for n := hole.next; n != hole; n = n.next {
		if n.p.X < h.p.X || n.p.X == h.p.X && n.p.Y < h.p.Y {
			h = n
		}
	}

	o := findBridge(outer, hole, h)
	if o == nil {
		return outer // no visible vertex; the hole is dropped
	}
	splitRing(o, h)
	return outer
}

// findBridge returns the outer vertex closest to h that can be connected to
// h without crossing an edge of either ring.
func findBridge(outer, hole, h *node) *node {
	var best *node
	bestDist := math.Inf(1)
	for o := outer; ; {
		d := o.p.Sub(h.p).Length()
		if d < bestDist && locallyInside(o, h.p) && !crossesRing(outer, h.p, o.p) && !crossesRing(hole, h.p, o.p) {
			best = o
			bestDist = d
		}
		o = o.next
		if o == outer {
			break
		}
	}
	return best
}

// locallyInside reports whether the direction from vertex a towards b
// points into the interior of the clockwise ring at a.
func locallyInside(a *node, b vec.Vec2) bool {
	in := a.p.Sub(a.prev.p)
	out := a.next.p.Sub(a.p)
	d := b.Sub(a.p)
	rightOfIn := vecmath.Cross(in, d) < 0
	rightOfOut := vecmath.Cross(out, d) < 0
	if vecmath.Cross(in, out) <= 0 {
		return rightOfIn && rightOfOut // convex corner
	}
	return rightOfIn || rightOfOut // reflex corner
}

// crossesRing reports whether the segment from p to q properly crosses an
// edge of the ring. Edges touching p or q are ignored.
func crossesRing(ring *node, p, q vec.Vec2) bool {
	for n := ring; ; {
		a, b := n.p, n.next.p
		if a != p && a != q && b != p && b != q && segmentsCross(p, q, a, b) {
			return true
		}
		n = n.next
		if n == ring {
			return false
		}
	}
}

func segmentsCross(p1, p2, q1, q2 vec.Vec2) bool {
	d1 := vecmath.Cross(p2.Sub(p1), q1.Sub(p1))
	d2 := vecmath.Cross(p2.Sub(p1), q2.Sub(p1))
	d3 := vecmath.Cross(q2.Sub(q1), p1.Sub(q1))
	d4 := vecmath.Cross(q2.Sub(q1), p2.Sub(q1))
	return (d1 > 0) != (d2 > 0) && (d3 > 0) != (d4 > 0) &&
		d1 != 0 && d2 != 0 && d3 != 0 && d4 != 0
}

// splitRing links a to b and inserts copies a2 and b2 so that the ring
// continues a → b → … → b2 → a2 → (old a.next).
func splitRing(a, b *node) {
	a2 := &node{i: a.i, p: a.p}
	b2 := &node{i: b.i, p: b.p}
	an := a.next
	bp := b.prev

	a.next = b
	b.prev = a

	a2.next = an
	an.prev = a2

	b2.next = a2
	a2.prev = b2

	bp.next = b2
	b2.prev = bp
}
