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

package geom

import "math"

// LineSegment is an ordered pair of points.
type LineSegment struct {
	P1, P2 Point
}

// Vertical reports whether the segment's two endpoints share an X
// coordinate.
func (s LineSegment) Vertical() bool {
	return s.P1.X == s.P2.X
}

// Horizontal reports whether the segment's two endpoints share a Y
// coordinate.
func (s LineSegment) Horizontal() bool {
	return s.P1.Y == s.P2.Y
}

// Length returns the Euclidean length of the segment.
func (s LineSegment) Length() float64 {
	return s.P1.DistanceTo(s.P2)
}

// Vector returns P2-P1.
func (s LineSegment) Vector() Point {
	return s.P2.Sub(s.P1)
}

// slopeIntercept returns the slope and y-intercept of the infinite line
// through s. For a vertical segment the slope is reported as NaN and the
// intercept holds the segment's shared X coordinate, matching the
// special-case convention used by Intersect.
func (s LineSegment) slopeIntercept() (slope, intercept float64) {
	if s.Vertical() {
		return math.NaN(), s.P1.X
	}
	slope = (s.P2.Y - s.P1.Y) / (s.P2.X - s.P1.X)
	intercept = s.P1.Y - slope*s.P1.X
	return slope, intercept
}

// ParallelTo reports whether s and other have the same direction (or
// opposite direction), within Epsilon.
func (s LineSegment) ParallelTo(other LineSegment) bool {
	v1, v2 := s.Vector(), other.Vector()
	return math.Abs(v1.Cross(v2)) < Epsilon
}

// Contains reports whether p lies on the closed segment s, within Epsilon.
func (s LineSegment) Contains(p Point) bool {
	v := s.Vector()
	w := p.Sub(s.P1)
	if math.Abs(v.Cross(w)) > Epsilon {
		return false
	}
	t := 0.0
	len2 := v.Dot(v)
	if len2 > 0 {
		t = w.Dot(v) / len2
	}
	return t >= -Epsilon/max(len2, 1) && t <= 1+Epsilon/max(len2, 1)
}

// ccwSign returns -1, 0, or 1 for the CCW predicate applied to a,b,c,
// using SignedArea2 so degenerate (collinear) triples are reported as 0.
func ccwSign(a, b, c Point) int {
	area := SignedArea2(a, b, c)
	switch {
	case area > Epsilon:
		return 1
	case area < -Epsilon:
		return -1
	default:
		return 0
	}
}

// Intersects reports whether the closed segments s and other cross or
// touch, using the four-CCW-sign test: the segments properly cross iff
// P1,P2,other.P1 and P1,P2,other.P2 have opposite orientation, and
// other.P1,other.P2,P1 and other.P1,other.P2,P2 have opposite orientation.
// Collinear touching/overlapping endpoints are also reported as
// intersecting.
func (s LineSegment) Intersects(other LineSegment) bool {
	d1 := ccwSign(s.P1, s.P2, other.P1)
	d2 := ccwSign(s.P1, s.P2, other.P2)
	d3 := ccwSign(other.P1, other.P2, s.P1)
	d4 := ccwSign(other.P1, other.P2, s.P2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	if d1 == 0 && s.onSegment(other.P1) {
		return true
	}
	if d2 == 0 && s.onSegment(other.P2) {
		return true
	}
	if d3 == 0 && other.onSegment(s.P1) {
		return true
	}
	if d4 == 0 && other.onSegment(s.P2) {
		return true
	}
	return false
}

// onSegment reports whether p, known to be collinear with s, lies within
// s's bounding box.
func (s LineSegment) onSegment(p Point) bool {
	return p.X >= min(s.P1.X, s.P2.X)-Epsilon && p.X <= max(s.P1.X, s.P2.X)+Epsilon &&
		p.Y >= min(s.P1.Y, s.P2.Y)-Epsilon && p.Y <= max(s.P1.Y, s.P2.Y)+Epsilon
}

// Intersect returns the single point where the infinite lines through s and
// other cross, if that point lies on both closed segments. The crossing
// point of the two infinite lines is computed from slope/intercept form,
// with a dedicated branch for vertical segments (where the slope would
// otherwise be infinite).
func (s LineSegment) Intersect(other LineSegment) (Point, bool) {
	if s.ParallelTo(other) {
		return Point{}, false
	}

	var x, y float64
	switch {
	case s.Vertical() && other.Vertical():
		return Point{}, false
	case s.Vertical():
		m2, b2 := other.slopeIntercept()
		x = s.P1.X
		y = m2*x + b2
	case other.Vertical():
		m1, b1 := s.slopeIntercept()
		x = other.P1.X
		y = m1*x + b1
	default:
		m1, b1 := s.slopeIntercept()
		m2, b2 := other.slopeIntercept()
		x = (b2 - b1) / (m1 - m2)
		y = m1*x + b1
	}

	p := Point{x, y}
	if s.onSegment(p) && other.onSegment(p) {
		return p, true
	}
	return Point{}, false
}
