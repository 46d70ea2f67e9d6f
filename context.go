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

// Package draw implements an immediate-mode 2D shape drawing library.
//
// A [Context] holds the ambient drawing state: fill and stroke style,
// stroke alignment, pivot, antialiasing and a stack of canvas matrices.
// Shape calls read this state and hand a [Submission] to a [Renderer].
// Circles, pies, arcs, rectangles and lines are submitted as the shared
// unit quad together with the parameters of a signed distance function.
// Polygons and polylines carry their own meshes, which are rebuilt only
// when their inputs change.
//
// World coordinates have the y-axis pointing up. Angles are given in
// degrees and run counter-clockwise, starting at the positive x-axis.
package draw

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Context is the drawing state machine.
//
// A Context is not safe for concurrent use.
type Context struct {
	r Renderer

	fillColor     Color
	fillEnabled   bool
	strokeColor   Color
	strokeEnabled bool

	strokeThickness     float64
	halfStrokeThickness float64
	alignment           StrokeAlignment
	capAlignment        CapAlignment

	pivot       Pivot
	pivotOffset vec.Vec2
	antialias   bool

	ctm   matrix.Matrix
	stack []matrix.Matrix

	sub Submission // reused for every draw call
}

// New returns a context in its default state which sends all draw calls
// to r. If r is nil, draw calls are discarded.
func New(r Renderer) *Context {
	c := &Context{r: r}
	c.Reset()
	return c
}

// Reset restores the default state: white fill, black stroke of
// thickness 0.1 aligned inside, line caps inside, centred pivot, antialiasing on, and the
// identity canvas matrix with an empty stack.
func (c *Context) Reset() {
	c.fillColor = White
	c.fillEnabled = true
	c.strokeColor = Black
	c.strokeThickness = defaultStrokeThickness
	c.halfStrokeThickness = defaultStrokeThickness / 2
	c.strokeEnabled = true
	c.alignment = Inside
	c.capAlignment = CapInside
	c.pivot = Center
	c.pivotOffset = vec.Vec2{}
	c.ctm = matrix.Identity
	c.stack = c.stack[:0]
	c.SetAntialiasing(true)
}

// Renderer returns the renderer draw calls are sent to.
func (c *Context) Renderer() Renderer {
	return c.r
}

// SetRenderer replaces the renderer. The drawing state is kept.
func (c *Context) SetRenderer(r Renderer) {
	c.r = r
	if ks, ok := r.(KeywordSetter); ok {
		ks.SetKeyword(KeywordAntialias, c.antialias)
	}
}

// SetFillColor sets the fill color. Filling is enabled if and only if the
// alpha component is positive.
func (c *Context) SetFillColor(col Color) {
	c.fillColor = col
	c.fillEnabled = col.A > 0
}

// SetNoFill disables filling.
func (c *Context) SetNoFill() {
	c.fillColor = Clear
	c.fillEnabled = false
}

// FillColor returns the current fill color.
func (c *Context) FillColor() Color {
	return c.fillColor
}

// FillEnabled reports whether shapes are filled.
func (c *Context) FillEnabled() bool {
	return c.fillEnabled
}

// SetStrokeColor sets the stroke color. Stroking is enabled if and only if
// the alpha component and the stroke thickness are both positive.
func (c *Context) SetStrokeColor(col Color) {
	c.strokeColor = col
	c.strokeEnabled = col.A > 0 && c.strokeThickness > 0
}

// SetNoStroke disables stroking.
func (c *Context) SetNoStroke() {
	c.strokeColor = Clear
	c.strokeEnabled = false
}

// StrokeColor returns the current stroke color.
func (c *Context) StrokeColor() Color {
	return c.strokeColor
}

// StrokeEnabled reports whether shapes are stroked.
func (c *Context) StrokeEnabled() bool {
	return c.strokeEnabled
}

// SetStrokeThickness sets the stroke thickness in canvas units.
// Stroking is enabled if and only if the thickness and the alpha component
// of the stroke color are both positive.
func (c *Context) SetStrokeThickness(t float64) {
	c.strokeThickness = t
	c.halfStrokeThickness = t / 2
	c.strokeEnabled = c.strokeColor.A > 0 && t > 0
}

// StrokeThickness returns the current stroke thickness.
func (c *Context) StrokeThickness() float64 {
	return c.strokeThickness
}

// SetStrokeAlignment sets where strokes lie relative to shape boundaries.
func (c *Context) SetStrokeAlignment(a StrokeAlignment) {
	c.alignment = a
}

// StrokeAlignment returns the current stroke alignment.
func (c *Context) StrokeAlignment() StrokeAlignment {
	return c.alignment
}

// SetCapAlignment sets whether the caps of subsequent lines extend beyond
// the end points.
func (c *Context) SetCapAlignment(a CapAlignment) {
	c.capAlignment = a
}

// CapAlignment returns the current cap alignment.
func (c *Context) CapAlignment() CapAlignment {
	return c.capAlignment
}

// SetPivot sets the point of subsequent shapes which is placed at the
// position given to the draw call.
func (c *Context) SetPivot(p Pivot) {
	c.pivot = p
	c.pivotOffset = p.Offset()
}

// SetPivotOffset sets the pivot in normalized shape coordinates, where
// (-1, -1) is the lower left and (1, 1) the upper right corner of the
// shape's nominal bounding box.
func (c *Context) SetPivotOffset(offset vec.Vec2) {
	c.pivotOffset = offset
}

// Pivot returns the pivot most recently set by [Context.SetPivot].
func (c *Context) Pivot() Pivot {
	return c.pivot
}

// PivotOffset returns the pivot in normalized shape coordinates.
func (c *Context) PivotOffset() vec.Vec2 {
	return c.pivotOffset
}

// SetAntialiasing turns antialiasing on or off for all subsequent shapes.
// If the renderer implements [KeywordSetter], the global keyword
// [KeywordAntialias] is toggled as well.
func (c *Context) SetAntialiasing(on bool) {
	c.antialias = on
	if ks, ok := c.r.(KeywordSetter); ok {
		ks.SetKeyword(KeywordAntialias, on)
	}
}

// Antialiasing reports whether antialiasing is on.
func (c *Context) Antialiasing() bool {
	return c.antialias
}

// PushCanvas saves a copy of the current canvas matrix.
func (c *Context) PushCanvas() {
	c.stack = append(c.stack, c.ctm)
}

// PopCanvas restores the canvas matrix saved by the matching
// [Context.PushCanvas]. If the stack is empty, a warning is logged and
// the state is left unchanged.
func (c *Context) PopCanvas() {
	n := len(c.stack)
	if n == 0 {
		Logger().Warn("canvas stack is empty: more PopCanvas than PushCanvas calls")
		return
	}
	c.ctm = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

// StackDepth returns the number of saved canvas matrices.
func (c *Context) StackDepth() int {
	return len(c.stack)
}

// MultCanvas composes m with the canvas matrix.
// The new transformation is applied in local space, before all
// transformations accumulated so far.
func (c *Context) MultCanvas(m matrix.Matrix) {
	c.ctm = mul(m, c.ctm)
}

// TranslateCanvas moves the origin of the canvas.
func (c *Context) TranslateCanvas(x, y float64) {
	c.MultCanvas(translation(x, y))
}

// RotateCanvas rotates the canvas counter-clockwise by deg degrees.
func (c *Context) RotateCanvas(deg float64) {
	c.MultCanvas(rotationMatrix(deg))
}

// ScaleCanvas scales the canvas.
func (c *Context) ScaleCanvas(sx, sy float64) {
	c.MultCanvas(matrix.Scale(sx, sy))
}

// SetCanvasMatrix replaces the canvas matrix. The stack is not changed.
func (c *Context) SetCanvasMatrix(m matrix.Matrix) {
	c.ctm = m
}

// CanvasMatrix returns the current canvas matrix.
func (c *Context) CanvasMatrix() matrix.Matrix {
	return c.ctm
}

// model returns the transformation which applies the given steps in
// order and then the canvas matrix.
func (c *Context) model(steps ...matrix.Matrix) matrix.Matrix {
	m := matrix.Identity
	for _, s := range steps {
		m = mul(m, s)
	}
	return mul(m, c.ctm)
}

// pivotShift moves a shape with the given nominal half sizes so that the
// pivot lands on the local origin.
func (c *Context) pivotShift(extents vec.Vec2) matrix.Matrix {
	return translation(-c.pivotOffset.X*extents.X, -c.pivotOffset.Y*extents.Y)
}

func (c *Context) submit(kind Kind, mesh *Mesh, m matrix.Matrix, p *Params) {
	if c.r == nil {
		return
	}
	c.sub = Submission{
		Kind:      kind,
		Mesh:      mesh,
		Transform: m,
		Params:    *p,
	}
	c.r.Submit(&c.sub)
}

const defaultStrokeThickness = 0.1
