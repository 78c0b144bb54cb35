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
	"seehuhn.de/go/layout/cluster"
	"seehuhn.de/go/layout/geom"
	"seehuhn.de/go/layout/page"
)

// defaultCornerThreshold is the maximum distance between two cells'
// corners for them to be considered the same point when grouping cells
// into tables.
const defaultCornerThreshold = 1.0

// GroupTables groups cells into tables: two cells belong to the same table
// iff any of their corners coincide within threshold. Adjacency is built
// pairwise and DFS components (via cluster.Components) give the final
// grouping, the same connected-components machinery used for text
// clustering and ruling merge.
func GroupTables(cells []geom.Rectangle, threshold float64) [][]geom.Rectangle {
	n := len(cells)
	if n == 0 {
		return nil
	}
	edges := make([]int, n)
	for i := range edges {
		edges[i] = -1
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			if shareCorner(cells[i], cells[j], threshold) {
				edges[i] = j
				break
			}
		}
	}

	components := cluster.Components(edges)
	return cluster.Group(cells, components)
}

func shareCorner(a, b geom.Rectangle, threshold float64) bool {
	ac := [4]geom.Point{a.BottomLeft, a.BottomRight, a.TopLeft, a.TopRight}
	bc := [4]geom.Point{b.BottomLeft, b.BottomRight, b.TopLeft, b.TopRight}
	for _, p := range ac {
		for _, q := range bc {
			if p.DistanceTo(q) <= threshold {
				return true
			}
		}
	}
	return false
}

// GetTableCandidates runs the full table-extraction pipeline over one
// page's letters and drawn paths: ruling extraction, ruling merge,
// intersection mapping, cell discovery, and table grouping. It returns
// one slice of cell rectangles per candidate table; a page with no
// rulings yields an empty result.
func GetTableCandidates(p *page.Page) [][]geom.Rectangle {
	modeW, modeH := ModeDimensions(p.NonWhitespaceLetters())

	rulings := ExtractRulings(p.Paths, modeW, modeH)
	rulings = MergeRulings(rulings)

	var horiz, vert []geom.LineSegment
	for _, r := range rulings {
		if r.Horizontal() {
			horiz = append(horiz, r)
		} else if r.Vertical() {
			vert = append(vert, r)
		}
	}
	if len(horiz) == 0 || len(vert) == 0 {
		return nil
	}

	intersections := BuildIntersections(horiz, vert)
	cells := FindCells(intersections)
	if len(cells) == 0 {
		return nil
	}
	return GroupTables(cells, defaultCornerThreshold)
}
