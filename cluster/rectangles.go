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

package cluster

import "seehuhn.de/go/layout/geom"

// CoalesceRectangles repeatedly merges axis-aligned rectangles that touch
// or overlap (within tolerance) into their bounding union, until no further
// merge occurs. It returns, for each surviving group, the indices (into
// rects) that were merged into it and the resulting union rectangle.
//
// Every input rectangle is normalised to axis-aligned form first. The
// algorithm is the scan-and-merge described for table ruling coalescing:
// pop a head group, partition the remaining groups by whether they
// intersect the head (grown by tolerance on every side), fold any that do
// into the head, and repeat until a full pass produces no merge.
func CoalesceRectangles(rects []geom.Rectangle, tolerance float64) ([][]int, []geom.Rectangle) {
	type group struct {
		indices []int
		bounds  geom.Rectangle
	}

	groups := make([]group, len(rects))
	for i, r := range rects {
		groups[i] = group{indices: []int{i}, bounds: r.Normalise()}
	}

	for {
		merged := false
		out := groups[:0:0]
		consumed := make([]bool, len(groups))

		for i := range groups {
			if consumed[i] {
				continue
			}
			head := groups[i]
			consumed[i] = true
			for j := i + 1; j < len(groups); j++ {
				if consumed[j] {
					continue
				}
				if touches(head.bounds, groups[j].bounds, tolerance) {
					head = group{
						indices: append(append([]int(nil), head.indices...), groups[j].indices...),
						bounds:  union(head.bounds, groups[j].bounds),
					}
					consumed[j] = true
					merged = true
				}
			}
			out = append(out, head)
		}
		groups = out
		if !merged {
			break
		}
	}

	indices := make([][]int, len(groups))
	bounds := make([]geom.Rectangle, len(groups))
	for i, g := range groups {
		indices[i] = g.indices
		bounds[i] = g.bounds
	}
	return indices, bounds
}

// touches reports whether a and b intersect once each is grown by
// tolerance on every side, i.e. whether they overlap or are within
// tolerance of touching.
func touches(a, b geom.Rectangle, tolerance float64) bool {
	ga := geom.NewAxisAligned(a.Left()-tolerance, a.Bottom()-tolerance, a.Right()+tolerance, a.Top()+tolerance)
	return ga.Intersects(b)
}

// union returns the smallest axis-aligned rectangle containing both a and b.
func union(a, b geom.Rectangle) geom.Rectangle {
	return geom.NewAxisAligned(
		min(a.Left(), b.Left()), min(a.Bottom(), b.Bottom()),
		max(a.Right(), b.Right()), max(a.Top(), b.Top()),
	)
}
