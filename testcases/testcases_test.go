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

package testcases

import (
	"maps"
	"regexp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"seehuhn.de/go/draw"
)

func TestScenes(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z_]+$`)
	seen := make(map[string]bool)

	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				assert.Regexp(t, valid, tc.Name)
				assert.False(t, seen[name], "duplicate scene")
				seen[name] = true
				assert.Positive(t, tc.Width)
				assert.Positive(t, tc.Height)

				rec := &draw.Recorder{}
				c := draw.New(rec)
				tc.Draw(c)
				assert.Zero(t, c.StackDepth(), "unbalanced canvas stack")
				assert.NotEmpty(t, rec.Submissions)
			})
		}
	}
}

func TestRecordIsRepeatable(t *testing.T) {
	for _, tc := range All["polyline"] {
		a := tc.Record()
		b := tc.Record()
		assert.Equal(t, a.Submissions, b.Submissions, tc.Name)
	}
}
