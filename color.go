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

import "math"

// Color is a non-premultiplied RGBA color with components in [0, 1].
//
// Color implements [image/color.Color].
type Color struct {
	R, G, B, A float64
}

// Predefined colors.
var (
	White = Color{1, 1, 1, 1}
	Black = Color{0, 0, 0, 1}
	Clear = Color{}
)

// Gray returns an opaque gray with the given intensity.
func Gray(v float64) Color {
	return Color{v, v, v, 1}
}

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{r, g, b, 1}
}

// RGBA returns a color with the given components.
func RGBA(r, g, b, a float64) Color {
	return Color{r, g, b, a}
}

// WithAlpha returns c with the alpha component replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Luminance returns the Rec. 709 luma of the color, ignoring alpha.
func (c Color) Luminance() float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// RGBA implements the [image/color.Color] interface.
// The result is alpha-premultiplied, as required by that interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := clamp01(c.A)
	conv := func(x float64) uint32 {
		return uint32(math.Round(clamp01(x) * alpha * 0xffff))
	}
	return conv(c.R), conv(c.G), conv(c.B), uint32(math.Round(alpha * 0xffff))
}

func clamp01(x float64) float64 {
	if x < 0 || math.IsNaN(x) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
