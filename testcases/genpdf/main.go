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

// Command genpdf writes every scene as a vector PDF preview.
//
// The shapes are converted to outlines, so the files show the exact
// geometry of the draw calls independent of any rasteriser. Colors are
// reduced to their luminance, composited over a white page.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/draw"
	"seehuhn.de/go/draw/outline"
	"seehuhn.de/go/draw/raster"
	"seehuhn.de/go/draw/testcases"
)

const outDir = "testdata/preview"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// one point per pixel
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// world coordinates, as seen by the software canvas
	page.Transform(matrix.Matrix{
		raster.PixelsPerUnit, 0,
		0, raster.PixelsPerUnit,
		float64(tc.Width) / 2, float64(tc.Height) / 2,
	})

	fillRegion := func(p *path.Data, col draw.Color) {
		if p == nil || col.A <= 0 {
			return
		}
		page.SetFillColor(color.DeviceGray(gray(col)))
		for cmd, pts := range p.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Fill()
	}

	rec := tc.Record()
	for i := range rec.Submissions {
		s := &rec.Submissions[i]
		fillRegion(outline.Fill(s), s.Params.FillColor)
		fillRegion(outline.Stroke(s), s.Params.StrokeColor)
	}

	return page.Close()
}

// gray returns the luminance of col painted over white.
func gray(col draw.Color) float64 {
	return 1 - col.A*(1-col.Luminance())
}
