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

// Command export writes the submissions of all scenes as JSON, so that
// the scenes can be replayed by renderers outside of Go, for example a
// GPU shader test harness.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/draw"
	"seehuhn.de/go/draw/testcases"
)

func main() {
	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.Scenes = append(out.Scenes, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/scenes.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonScene struct {
	Name        string           `json:"name"`
	Width       int              `json:"width"`
	Height      int              `json:"height"`
	Keywords    map[string]bool  `json:"keywords,omitempty"`
	Submissions []jsonSubmission `json:"submissions"`
}

type jsonSubmission struct {
	Kind      string     `json:"kind"`
	Transform [6]float64 `json:"transform"`
	Mesh      *jsonMesh  `json:"mesh,omitempty"` // nil for the unit quad

	FillColor           [4]float64 `json:"fill_color"`
	StrokeColor         [4]float64 `json:"stroke_color"`
	StrokeThickness     float64    `json:"stroke_thickness"`
	HalfStrokeThickness float64    `json:"half_stroke_thickness"`
	StrokeMin           float64    `json:"stroke_min"`
	InnerRadiusRel      float64    `json:"inner_radius_rel,omitempty"`
	FillExtents         [2]float64 `json:"fill_extents"`
	MeshExtents         [2]float64 `json:"mesh_extents"`
	AngleExtents        float64    `json:"angle_extents,omitempty"`
	Roundedness         [4]float64 `json:"roundedness"`
	RoundedCaps         [2]bool    `json:"rounded_caps"`
	Antialias           bool       `json:"antialias"`
}

type jsonMesh struct {
	Topology string       `json:"topology"`
	Vertices [][2]float64 `json:"vertices"`
	Indices  []int        `json:"indices"`
	Segments []jsonSeg    `json:"segments,omitempty"`
}

type jsonSeg struct {
	A          [2]float64 `json:"a"`
	B          [2]float64 `json:"b"`
	RoundBegin bool       `json:"round_begin,omitempty"`
	RoundEnd   bool       `json:"round_end,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonScene {
	rec := tc.Record()
	scene := jsonScene{
		Name:     category + "_" + tc.Name,
		Width:    tc.Width,
		Height:   tc.Height,
		Keywords: rec.Keywords,
	}
	for i := range rec.Submissions {
		scene.Submissions = append(scene.Submissions, submissionToJSON(&rec.Submissions[i]))
	}
	return scene
}

func submissionToJSON(s *draw.Submission) jsonSubmission {
	p := &s.Params
	js := jsonSubmission{
		Kind:      s.Kind.String(),
		Transform: s.Transform,

		FillColor:           rgba(p.FillColor),
		StrokeColor:         rgba(p.StrokeColor),
		StrokeThickness:     p.StrokeThickness,
		HalfStrokeThickness: p.HalfStrokeThickness,
		StrokeMin:           p.StrokeMin,
		InnerRadiusRel:      p.InnerRadiusRel,
		FillExtents:         xy(p.FillExtents),
		MeshExtents:         xy(p.MeshExtents),
		AngleExtents:        p.AngleExtents,
		Roundedness:         p.Roundedness,
		RoundedCaps:         p.RoundedCaps,
		Antialias:           p.Antialias,
	}
	if s.Kind.IsMesh() {
		js.Mesh = meshToJSON(s.Mesh)
	}
	return js
}

func meshToJSON(m *draw.Mesh) *jsonMesh {
	jm := &jsonMesh{
		Topology: m.Topology.String(),
		Indices:  m.Indices,
	}
	for _, v := range m.Vertices {
		jm.Vertices = append(jm.Vertices, xy(v))
	}
	for _, seg := range m.Segments {
		jm.Segments = append(jm.Segments, jsonSeg{
			A:          xy(seg.A),
			B:          xy(seg.B),
			RoundBegin: seg.RoundBegin,
			RoundEnd:   seg.RoundEnd,
		})
	}
	return jm
}

func rgba(c draw.Color) [4]float64 {
	return [4]float64{c.R, c.G, c.B, c.A}
}

func xy(v vec.Vec2) [2]float64 {
	return [2]float64{v.X, v.Y}
}
