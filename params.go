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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Kind identifies the distance function a renderer must evaluate for a
// submission.
type Kind int

// These are the shape kinds emitted by a [Context].
const (
	KindCircle Kind = iota
	KindPie
	KindArc
	KindRect
	KindLine
	KindPolygon       // triangle mesh, filled
	KindPolygonStroke // closed quad strip around a polygon
	KindPolyline      // open quad strip
)

var kindNames = [...]string{
	KindCircle:        "circle",
	KindPie:           "pie",
	KindArc:           "arc",
	KindRect:          "rect",
	KindLine:          "line",
	KindPolygon:       "polygon",
	KindPolygonStroke: "polygon-stroke",
	KindPolyline:      "polyline",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsMesh reports whether submissions of this kind carry a dynamically
// built mesh instead of the unit quad.
func (k Kind) IsMesh() bool {
	return k >= KindPolygon
}

// Params is the parameter block of a submission.
//
// Distances are measured in shape-local units, that is after the model
// transform has been undone. Negative distances lie inside the nominal
// shape boundary.
type Params struct {
	FillColor   Color
	StrokeColor Color

	StrokeThickness     float64
	HalfStrokeThickness float64

	// StrokeMin is the signed distance from the nominal boundary at which
	// the stroke begins: -t for Inside, -t/2 for Edge, 0 for Outside.
	// Points closer to the inside are filled, points between StrokeMin
	// and StrokeMin+StrokeThickness are stroked.
	StrokeMin float64

	// InnerRadiusRel is the radius where a circle's stroke begins,
	// relative to the outer radius of the quad.
	InnerRadiusRel float64

	// FillExtents are the nominal half sizes of the shape. For arcs, X is
	// the centre radius of the band and Y is half the band width.
	FillExtents vec.Vec2

	// MeshExtents are the half sizes of the quad, including the stroke.
	MeshExtents vec.Vec2

	// AngleExtents is half the angular span of a pie or arc, in radians.
	// The span is centred on the local x-axis.
	AngleExtents float64

	// Roundedness holds the corner radii of a rectangle in the order
	// lower left, upper left, upper right, lower right.
	Roundedness [4]float64

	// RoundedCaps tells whether the begin and end of a line are rounded.
	RoundedCaps [2]bool

	Antialias bool
}

// Submission is a single draw call handed to a [Renderer].
type Submission struct {
	Kind Kind

	// Mesh is either the shared unit quad or a polygon/polyline mesh.
	Mesh *Mesh

	// Transform maps mesh coordinates to world coordinates.
	Transform matrix.Matrix

	Params Params
}

// Renderer consumes submissions.
//
// The submission and its mesh are only valid for the duration of the
// call. Implementations which keep them must make a copy.
type Renderer interface {
	Submit(s *Submission)
}

// KeywordSetter is implemented by renderers which support global shader
// keywords.
type KeywordSetter interface {
	SetKeyword(name string, enabled bool)
}

// KeywordAntialias is the global keyword toggled by
// [Context.SetAntialiasing].
const KeywordAntialias = "DRAW_ANTIALIASING"

// Recorder is a [Renderer] which stores a copy of every submission.
type Recorder struct {
	Submissions []Submission
	Keywords    map[string]bool
}

// Submit implements the [Renderer] interface.
func (r *Recorder) Submit(s *Submission) {
	c := *s
	if s.Mesh != unitQuad {
		c.Mesh = s.Mesh.Clone()
	}
	r.Submissions = append(r.Submissions, c)
}

// SetKeyword implements the [KeywordSetter] interface.
func (r *Recorder) SetKeyword(name string, enabled bool) {
	if r.Keywords == nil {
		r.Keywords = make(map[string]bool)
	}
	r.Keywords[name] = enabled
}

// Replay sends all recorded submissions to dst, in order.
// Recorded keywords are set first if dst supports them.
func (r *Recorder) Replay(dst Renderer) {
	if ks, ok := dst.(KeywordSetter); ok {
		for name, enabled := range r.Keywords {
			ks.SetKeyword(name, enabled)
		}
	}
	for i := range r.Submissions {
		dst.Submit(&r.Submissions[i])
	}
}

// Reset discards all recorded submissions and keywords.
func (r *Recorder) Reset() {
	r.Submissions = r.Submissions[:0]
	clear(r.Keywords)
}
