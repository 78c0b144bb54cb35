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

package clip

import "seehuhn.de/go/layout/geom"

// SutherlandHodgman clips subject against the convex, counter-clockwise
// polygon clipper. For each edge of clipper, it walks subject and emits the
// current vertex when it lies inside the edge's half-plane, plus the
// edge-crossing point whenever the inside/outside status changes between
// the previous and current vertex.
//
// clipper must be convex and wound counter-clockwise; behavior is
// unspecified otherwise. Returns nil if the result is empty.
func SutherlandHodgman(clipper, subject []geom.Point) []geom.Point {
	output := subject
	n := len(clipper)
	for i := 0; i < n && len(output) > 0; i++ {
		edgeA := clipper[i]
		edgeB := clipper[(i+1)%n]
		output = clipAgainstEdge(edgeA, edgeB, output)
	}
	if len(output) == 0 {
		return nil
	}
	return output
}

// insideHalfPlane reports whether p is on the inside (left, i.e.
// counter-clockwise) side of the directed edge a->b.
func insideHalfPlane(a, b, p geom.Point) bool {
	return geom.SignedArea2(a, b, p) >= 0
}

func clipAgainstEdge(a, b geom.Point, input []geom.Point) []geom.Point {
	var output []geom.Point
	n := len(input)
	if n == 0 {
		return output
	}
	prev := input[n-1]
	prevInside := insideHalfPlane(a, b, prev)
	for _, curr := range input {
		currInside := insideHalfPlane(a, b, curr)
		switch {
		case currInside && prevInside:
			output = append(output, curr)
		case currInside && !prevInside:
			if x, ok := (geom.LineSegment{P1: prev, P2: curr}).Intersect(geom.LineSegment{P1: a, P2: b}); ok {
				output = append(output, x)
			} else if x, ok := infiniteIntersect(a, b, prev, curr); ok {
				output = append(output, x)
			}
			output = append(output, curr)
		case !currInside && prevInside:
			if x, ok := (geom.LineSegment{P1: prev, P2: curr}).Intersect(geom.LineSegment{P1: a, P2: b}); ok {
				output = append(output, x)
			} else if x, ok := infiniteIntersect(a, b, prev, curr); ok {
				output = append(output, x)
			}
		}
		prev = curr
		prevInside = currInside
	}
	return output
}

// infiniteIntersect computes the crossing point of the infinite line a-b
// with the infinite line through p-q. SutherlandHodgman's clip edge and the
// subject edge are finite segments that may not overlap exactly at their
// true crossing (e.g. the clip edge is usually much shorter than the line
// it defines), so the half-plane crossing point is the intersection of the
// two underlying lines, not a bounded-segment intersection.
func infiniteIntersect(a, b, p, q geom.Point) (geom.Point, bool) {
	x1, y1, x2, y2 := a.X, a.Y, b.X, b.Y
	x3, y3, x4, y4 := p.X, p.Y, q.X, q.Y
	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom == 0 {
		return geom.Point{}, false
	}
	t1 := x1*y2 - y1*x2
	t2 := x3*y4 - y3*x4
	px := (t1*(x3-x4) - (x1-x2)*t2) / denom
	py := (t1*(y3-y4) - (y1-y2)*t2) / denom
	return geom.Point{X: px, Y: py}, true
}
