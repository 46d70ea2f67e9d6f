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
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// StrokeAlignment selects where a stroke lies relative to the nominal
// boundary of a filled shape.
type StrokeAlignment int

// These are the supported stroke alignments.
const (
	// Inside places the whole stroke inside the boundary.
	Inside StrokeAlignment = iota

	// Edge centres the stroke on the boundary.
	Edge

	// Outside places the whole stroke outside the boundary.
	Outside
)

func (a StrokeAlignment) String() string {
	switch a {
	case Inside:
		return "inside"
	case Edge:
		return "edge"
	case Outside:
		return "outside"
	default:
		return fmt.Sprintf("StrokeAlignment(%d)", int(a))
	}
}

// CapAlignment selects whether the caps of a line fit between its end
// points or extend beyond them.
type CapAlignment int

// These are the supported cap alignments.
const (
	// CapInside keeps the line, caps included, between its end points.
	CapInside CapAlignment = iota

	// CapOutside extends round and square caps by half the stroke
	// thickness beyond the end points.
	CapOutside
)

func (a CapAlignment) String() string {
	switch a {
	case CapInside:
		return "inside"
	case CapOutside:
		return "outside"
	default:
		return fmt.Sprintf("CapAlignment(%d)", int(a))
	}
}

// Pivot names the point of a shape which is placed at the position
// passed to the drawing call.
type Pivot int

// These are the supported pivots.
const (
	Center Pivot = iota
	TopLeft
	Top
	TopRight
	Right
	BottomRight
	Bottom
	BottomLeft
	Left
)

var pivotNames = [...]string{
	Center:      "center",
	TopLeft:     "top-left",
	Top:         "top",
	TopRight:    "top-right",
	Right:       "right",
	BottomRight: "bottom-right",
	Bottom:      "bottom",
	BottomLeft:  "bottom-left",
	Left:        "left",
}

func (p Pivot) String() string {
	if p >= 0 && int(p) < len(pivotNames) {
		return pivotNames[p]
	}
	return fmt.Sprintf("Pivot(%d)", int(p))
}

// Offset returns the pivot position in normalized shape coordinates,
// where the lower left corner of the bounding box is (-1, -1) and the
// upper right corner is (1, 1). Unknown values map to the centre.
func (p Pivot) Offset() vec.Vec2 {
	switch p {
	case TopLeft:
		return vec.Vec2{X: -1, Y: 1}
	case Top:
		return vec.Vec2{X: 0, Y: 1}
	case TopRight:
		return vec.Vec2{X: 1, Y: 1}
	case Right:
		return vec.Vec2{X: 1, Y: 0}
	case BottomRight:
		return vec.Vec2{X: 1, Y: -1}
	case Bottom:
		return vec.Vec2{X: 0, Y: -1}
	case BottomLeft:
		return vec.Vec2{X: -1, Y: -1}
	case Left:
		return vec.Vec2{X: -1, Y: 0}
	default:
		return vec.Vec2{}
	}
}
