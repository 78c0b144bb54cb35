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

import "seehuhn.de/go/layout/geom"

// Intersection records which horizontal and vertical ruling cross at a
// given point.
type Intersection struct {
	H, V geom.LineSegment
}

// BuildIntersections computes the segment/segment intersection of every
// (horizontal, vertical) ruling pair and stores it keyed by point. If two
// pairs cross at the same coordinates, the later pair silently overwrites
// the earlier one, matching the data model's "keys unique" contract.
func BuildIntersections(horiz, vert []geom.LineSegment) map[geom.Point]Intersection {
	out := map[geom.Point]Intersection{}
	for _, h := range sortedRulings(horiz, true) {
		for _, v := range sortedRulings(vert, false) {
			if p, ok := h.Intersect(v); ok {
				out[p] = Intersection{H: h, V: v}
			}
		}
	}
	return out
}
