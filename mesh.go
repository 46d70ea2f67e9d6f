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
	"iter"
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Topology describes how the indices of a [Mesh] form faces.
type Topology int

const (
	// Triangles uses three indices per face.
	Triangles Topology = iota

	// Quads uses four indices per face.
	Quads
)

// FaceSize returns the number of indices per face.
func (t Topology) FaceSize() int {
	if t == Quads {
		return 4
	}
	return 3
}

func (t Topology) String() string {
	if t == Quads {
		return "quads"
	}
	return "triangles"
}

// Segment is the per-vertex attribute of stroke meshes.
// It carries the centreline segment the vertex belongs to, so that a
// renderer can evaluate round caps without extra geometry.
type Segment struct {
	A, B       vec.Vec2
	RoundBegin bool // A is the start of the stroke and has a round cap
	RoundEnd   bool // B is the end of the stroke and has a round cap
}

// Mesh is a vertex and index buffer in shape-local coordinates.
type Mesh struct {
	Vertices []vec.Vec2
	Segments []Segment // one per vertex, or nil for fill meshes
	Indices  []int
	Topology Topology
	Bounds   rect.Rect
}

// IsEmpty reports whether the mesh has no faces.
func (m *Mesh) IsEmpty() bool {
	return m == nil || len(m.Indices) < m.Topology.FaceSize()
}

// Faces iterates over the faces of the mesh. The slice passed to yield is
// reused between iterations.
func (m *Mesh) Faces() iter.Seq2[int, []vec.Vec2] {
	return func(yield func(int, []vec.Vec2) bool) {
		if m == nil {
			return
		}
		n := m.Topology.FaceSize()
		face := make([]vec.Vec2, n)
		for k := 0; k+n <= len(m.Indices); k += n {
			for j := range n {
				face[j] = m.Vertices[m.Indices[k+j]]
			}
			if !yield(k/n, face) {
				return
			}
		}
	}
}

// Clone returns a deep copy of m.
func (m *Mesh) Clone() *Mesh {
	if m == nil {
		return nil
	}
	return &Mesh{
		Vertices: slices.Clone(m.Vertices),
		Segments: slices.Clone(m.Segments),
		Indices:  slices.Clone(m.Indices),
		Topology: m.Topology,
		Bounds:   m.Bounds,
	}
}

// reset empties the mesh but keeps the allocated buffers.
func (m *Mesh) reset() {
	m.Vertices = m.Vertices[:0]
	m.Segments = m.Segments[:0]
	m.Indices = m.Indices[:0]
	m.Bounds = rect.Rect{}
}

// updateBounds recomputes Bounds from the vertices.
func (m *Mesh) updateBounds() {
	if len(m.Vertices) == 0 {
		m.Bounds = rect.Rect{}
		return
	}
	b := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, v := range m.Vertices {
		b.LLx = min(b.LLx, v.X)
		b.LLy = min(b.LLy, v.Y)
		b.URx = max(b.URx, v.X)
		b.URy = max(b.URy, v.Y)
	}
	m.Bounds = b
}

// unitQuad is shared by all SDF shapes and must never be modified.
var unitQuad = &Mesh{
	Vertices: []vec.Vec2{
		{X: -1, Y: -1},
		{X: -1, Y: 1},
		{X: 1, Y: 1},
		{X: 1, Y: -1},
	},
	Indices:  []int{0, 1, 2, 3},
	Topology: Quads,
	Bounds:   rect.Rect{LLx: -1, LLy: -1, URx: 1, URy: 1},
}

// UnitQuad returns the shared quad covering [-1, 1]×[-1, 1].
// The caller must not modify the returned mesh.
func UnitQuad() *Mesh {
	return unitQuad
}
