// seehuhn.de/go/layout - a document layout analysis library
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

package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/layout/geom"
	"seehuhn.de/go/layout/page"
)

func hline(x0, x1, y float64) geom.LineSegment {
	return geom.LineSegment{P1: geom.Point{X: x0, Y: y}, P2: geom.Point{X: x1, Y: y}}
}

func vline(x, y0, y1 float64) geom.LineSegment {
	return geom.LineSegment{P1: geom.Point{X: x, Y: y0}, P2: geom.Point{X: x, Y: y1}}
}

func gridPage() *page.Page {
	p := &page.Page{}
	for _, y := range []float64{0, 10, 20} {
		path := geom.NewPath()
		path.MoveTo(geom.Point{X: 0, Y: y})
		path.LineTo(geom.Point{X: 20, Y: y})
		p.Paths = append(p.Paths, path)
	}
	for _, x := range []float64{0, 10, 20} {
		path := geom.NewPath()
		path.MoveTo(geom.Point{X: x, Y: 0})
		path.LineTo(geom.Point{X: x, Y: 20})
		p.Paths = append(p.Paths, path)
	}
	return p
}

func TestGetTableCandidatesTwoByTwoGrid(t *testing.T) {
	p := gridPage()
	tables := GetTableCandidates(p)
	require.Len(t, tables, 1)
	assert.Len(t, tables[0], 4)

	var totalArea float64
	for _, cell := range tables[0] {
		totalArea += cell.Area()
	}
	assert.InDelta(t, 400, totalArea, 1e-6)
}

func TestGetTableCandidatesEmptyPage(t *testing.T) {
	p := &page.Page{}
	tables := GetTableCandidates(p)
	assert.Empty(t, tables)
}

func TestModeDimensions(t *testing.T) {
	letters := []page.Letter{
		{Value: "a", GlyphRectangle: geom.NewAxisAligned(0, 0, 5, 8)},
		{Value: "b", GlyphRectangle: geom.NewAxisAligned(0, 0, 5, 8)},
		{Value: "c", GlyphRectangle: geom.NewAxisAligned(0, 0, 9, 8)},
		{Value: " ", GlyphRectangle: geom.NewAxisAligned(0, 0, 2, 2)},
	}
	w, h := ModeDimensions(letters)
	assert.InDelta(t, 5, w, 1e-6)
	assert.InDelta(t, 8, h, 1e-6)
}

func TestExtractRulingsSkipsBezierPaths(t *testing.T) {
	curved := geom.NewPath()
	curved.MoveTo(geom.Point{X: 0, Y: 0})
	curved.CurveTo(geom.Point{X: 1, Y: 5}, geom.Point{X: 4, Y: 5}, geom.Point{X: 5, Y: 0})

	straight := geom.NewPath()
	straight.MoveTo(geom.Point{X: 0, Y: 0})
	straight.LineTo(geom.Point{X: 10, Y: 0})

	rulings := ExtractRulings([]*geom.Path{curved, straight}, 0, 0)
	require.Len(t, rulings, 1)
	assert.True(t, rulings[0].Horizontal())
}

func TestMergeRulingsJoinsOverlapping(t *testing.T) {
	rulings := []geom.LineSegment{
		hline(0, 5.5, 0),
		hline(5, 10, 0),
	}
	merged := MergeRulings(rulings)
	require.Len(t, merged, 1)
	assert.InDelta(t, 0, merged[0].P1.X, 1e-6)
	assert.InDelta(t, 10, merged[0].P2.X, 1e-6)
}

func TestGroupTablesSeparatesDisjointGrids(t *testing.T) {
	tableA := []geom.Rectangle{
		geom.NewAxisAligned(0, 0, 1, 1),
		geom.NewAxisAligned(1, 0, 2, 1),
	}
	tableB := []geom.Rectangle{
		geom.NewAxisAligned(100, 100, 101, 101),
	}
	cells := append(append([]geom.Rectangle{}, tableA...), tableB...)
	groups := GroupTables(cells, 1.0)
	require.Len(t, groups, 2)
}
