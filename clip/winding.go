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

// Package clip implements polygon clipping: Sutherland-Hodgman for a convex
// clipper, and Greiner-Hormann for two general polygons under either the
// even-odd or non-zero-winding fill rule.
package clip

import "seehuhn.de/go/layout/geom"

// FillRule selects how a polygon's interior is determined where it
// self-intersects or is clipped against a general (non-convex) polygon.
type FillRule = geom.FillingRule

const (
	NonZeroWinding = geom.NonZeroWinding
	EvenOdd        = geom.EvenOdd
)

// WindingNumber returns the signed winding number of ring around p: the
// count of ring edges crossing the horizontal ray from p towards +X,
// signed by the crossing direction (upward +1, downward -1).
// ring is treated as implicitly closed (an edge connects the last point
// back to the first).
func WindingNumber(p geom.Point, ring []geom.Point) int {
	n := len(ring)
	wn := 0
	for i := 0; i < n; i++ {
		a := ring[i]
		b := ring[(i+1)%n]
		if a.Y <= p.Y {
			if b.Y > p.Y && geom.SignedArea2(a, b, p) > 0 {
				wn++
			}
		} else {
			if b.Y <= p.Y && geom.SignedArea2(a, b, p) < 0 {
				wn--
			}
		}
	}
	return wn
}

// Inside reports whether p lies inside ring under the given fill rule.
func Inside(p geom.Point, ring []geom.Point, rule FillRule) bool {
	wn := WindingNumber(p, ring)
	if rule == EvenOdd {
		return wn%2 != 0
	}
	return wn != 0
}
