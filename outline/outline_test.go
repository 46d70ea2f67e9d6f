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

package outline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/draw"
)

// record runs the draw calls and returns the single submission.
func record(t *testing.T, calls func(c *draw.Context)) *draw.Submission {
	t.Helper()
	rec := &draw.Recorder{}
	calls(draw.New(rec))
	require.Len(t, rec.Submissions, 1)
	return &rec.Submissions[0]
}

func bounds(p *path.Data) rect.Rect {
	b := rect.Rect{LLx: math.Inf(1), LLy: math.Inf(1), URx: math.Inf(-1), URy: math.Inf(-1)}
	for _, v := range p.Coords {
		b.LLx = min(b.LLx, v.X)
		b.LLy = min(b.LLy, v.Y)
		b.URx = max(b.URx, v.X)
		b.URy = max(b.URy, v.Y)
	}
	return b
}

// onCurve returns the end points of all path segments.
func onCurve(p *path.Data) []vec.Vec2 {
	var pts []vec.Vec2
	for cmd, seg := range p.Iter() {
		if cmd != path.CmdClose {
			pts = append(pts, seg[len(seg)-1])
		}
	}
	return pts
}

func subpaths(p *path.Data) int {
	n := 0
	for _, cmd := range p.Cmds {
		if cmd == path.CmdMoveTo {
			n++
		}
	}
	return n
}

func assertRect(t *testing.T, want, got rect.Rect) {
	t.Helper()
	assert.InDelta(t, want.LLx, got.LLx, 1e-9)
	assert.InDelta(t, want.LLy, got.LLy, 1e-9)
	assert.InDelta(t, want.URx, got.URx, 1e-9)
	assert.InDelta(t, want.URy, got.URy, 1e-9)
}

func TestRect(t *testing.T) {
	s := record(t, func(c *draw.Context) {
		c.SetNoStroke()
		c.Rect(1, 2, 4, 2, 0)
	})
	fill := Fill(s)
	require.NotNil(t, fill)
	assertRect(t, rect.Rect{LLx: -1, LLy: 1, URx: 3, URy: 3}, bounds(fill))
	assert.Nil(t, Stroke(s))
}

func TestRectStrokeBand(t *testing.T) {
	s := record(t, func(c *draw.Context) {
		c.SetStrokeThickness(0.5)
		c.SetStrokeAlignment(draw.Outside)
		c.Rect(0, 0, 2, 2, 0)
	})
	assertRect(t, rect.Rect{LLx: -1, LLy: -1, URx: 1, URy: 1}, bounds(Fill(s)))

	stroke := Stroke(s)
	require.NotNil(t, stroke)
	assert.Equal(t, 2, subpaths(stroke))
	assertRect(t, rect.Rect{LLx: -1.5, LLy: -1.5, URx: 1.5, URy: 1.5}, bounds(stroke))
}

func TestCircle(t *testing.T) {
	s := record(t, func(c *draw.Context) {
		c.Circle(0.5, 0, 2) // inside stroke of thickness 0.1
	})

	fill := Fill(s)
	require.NotNil(t, fill)
	for _, p := range onCurve(fill) {
		assert.InDelta(t, 0.9, p.Sub(vec.Vec2{X: 0.5}).Length(), 1e-9)
	}

	stroke := Stroke(s)
	require.NotNil(t, stroke)
	assert.Equal(t, 2, subpaths(stroke))
	var radii []float64
	for _, p := range onCurve(stroke) {
		radii = append(radii, p.Sub(vec.Vec2{X: 0.5}).Length())
	}
	assert.InDelta(t, 1, radii[0], 1e-9)
	assert.InDelta(t, 0.9, radii[len(radii)-1], 1e-9)
}

func TestPie(t *testing.T) {
	s := record(t, func(c *draw.Context) {
		c.SetNoStroke()
		c.Pie(0, 0, 2, 0, 90, 0)
	})
	fill := Fill(s)
	require.NotNil(t, fill)

	apex := false
	for _, p := range onCurve(fill) {
		assert.GreaterOrEqual(t, p.X, -1e-9)
		assert.GreaterOrEqual(t, p.Y, -1e-9)
		assert.LessOrEqual(t, p.Length(), 1+1e-9)
		if p.Length() < 1e-9 {
			apex = true
		}
	}
	assert.True(t, apex)
}

func TestArcFullTurn(t *testing.T) {
	s := record(t, func(c *draw.Context) {
		c.SetNoStroke()
		c.Ring(0, 0, 1, 2)
	})
	fill := Fill(s)
	require.NotNil(t, fill)
	assert.Equal(t, 2, subpaths(fill))
	assertRect(t, rect.Rect{LLx: -1, LLy: -1, URx: 1, URy: 1}, bounds(fill))
}

func TestLine(t *testing.T) {
	for _, tc := range []struct {
		align draw.CapAlignment
		want  rect.Rect
	}{
		{draw.CapInside, rect.Rect{LLx: 0, LLy: -0.05, URx: 1, URy: 0.05}},
		{draw.CapOutside, rect.Rect{LLx: -0.05, LLy: -0.05, URx: 1.05, URy: 0.05}},
	} {
		s := record(t, func(c *draw.Context) {
			c.SetCapAlignment(tc.align)
			c.Line(0, 0, 1, 0, graphics.LineCapRound, graphics.LineCapRound, 0)
		})
		assert.Nil(t, Fill(s))
		stroke := Stroke(s)
		require.NotNil(t, stroke)
		assertRect(t, tc.want, bounds(stroke))
	}
}

func TestPolygon(t *testing.T) {
	rec := &draw.Recorder{}
	c := draw.New(rec)
	c.Polygon(draw.NewPolygon(
		vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 0},
		vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 0, Y: 1},
	), 0, 0, 0)
	require.Len(t, rec.Submissions, 2)

	fill := Fill(&rec.Submissions[0])
	require.NotNil(t, fill)
	assert.Equal(t, 2, subpaths(fill))
	assert.Nil(t, Stroke(&rec.Submissions[0]))

	stroke := Stroke(&rec.Submissions[1])
	require.NotNil(t, stroke)
	assert.Equal(t, 4, subpaths(stroke))
	assertRect(t, rect.Rect{LLx: 0, LLy: 0, URx: 1, URy: 1}, bounds(stroke))
}

func TestPolylineRoundCaps(t *testing.T) {
	line := draw.NewPolyline(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 0})
	line.SetCaps(graphics.LineCapRound, graphics.LineCapRound)
	s := record(t, func(c *draw.Context) {
		c.SetStrokeThickness(0.2)
		c.Polyline(line, 0, 0, 0)
	})

	stroke := Stroke(s)
	require.NotNil(t, stroke)
	assert.Equal(t, 3, subpaths(stroke)) // the quad and two discs
	assertRect(t, rect.Rect{LLx: -0.1, LLy: -0.1, URx: 1.1, URy: 0.1}, bounds(stroke))

	// the quad, which comes last, is cut back to the end points
	pts := onCurve(stroke)
	for _, p := range pts[len(pts)-4:] {
		assert.InDelta(t, 0, math.Min(math.Abs(p.X), math.Abs(p.X-1)), 1e-9)
		assert.InDelta(t, 0.1, math.Abs(p.Y), 1e-9)
	}
}
