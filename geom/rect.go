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

// Rectangle is a quadrilateral given by its four corners. For an
// axis-aligned rectangle the corners coincide with the usual bottom-left,
// bottom-right, top-left, top-right ordering; for a rotated rectangle the
// same four roles are preserved under the rectangle's own rotation.
type Rectangle struct {
	BottomLeft  Point
	BottomRight Point
	TopLeft     Point
	TopRight    Point
}

// NewAxisAligned builds an axis-aligned rectangle from two opposite corners,
// normalising their order.
func NewAxisAligned(x0, y0, x1, y1 float64) Rectangle {
	left, right := math.Min(x0, x1), math.Max(x0, x1)
	bottom, top := math.Min(y0, y1), math.Max(y0, y1)
	return Rectangle{
		BottomLeft:  Point{left, bottom},
		BottomRight: Point{right, bottom},
		TopLeft:     Point{left, top},
		TopRight:    Point{right, top},
	}
}

// corners returns the four corners in consistent winding order
// (bottom-left, bottom-right, top-right, top-left).
func (r Rectangle) corners() [4]Point {
	return [4]Point{r.BottomLeft, r.BottomRight, r.TopRight, r.TopLeft}
}

// Width returns the length of the bottom edge.
func (r Rectangle) Width() float64 {
	return r.BottomLeft.DistanceTo(r.BottomRight)
}

// Height returns the length of the left edge.
func (r Rectangle) Height() float64 {
	return r.BottomLeft.DistanceTo(r.TopLeft)
}

// Area returns the rectangle's area (Width * Height for a well-formed
// rectangle, computed via the shoelace formula so it stays correct even for
// a rotated rectangle).
func (r Rectangle) Area() float64 {
	c := r.corners()
	var sum float64
	for i := range c {
		j := (i + 1) % len(c)
		sum += c[i].X*c[j].Y - c[j].X*c[i].Y
	}
	return math.Abs(sum) / 2
}

// Left returns the minimum X coordinate among the four corners.
func (r Rectangle) Left() float64 {
	return min(r.BottomLeft.X, r.BottomRight.X, r.TopLeft.X, r.TopRight.X)
}

// Right returns the maximum X coordinate among the four corners.
func (r Rectangle) Right() float64 {
	return max(r.BottomLeft.X, r.BottomRight.X, r.TopLeft.X, r.TopRight.X)
}

// Bottom returns the minimum Y coordinate among the four corners.
func (r Rectangle) Bottom() float64 {
	return min(r.BottomLeft.Y, r.BottomRight.Y, r.TopLeft.Y, r.TopRight.Y)
}

// Top returns the maximum Y coordinate among the four corners.
func (r Rectangle) Top() float64 {
	return max(r.BottomLeft.Y, r.BottomRight.Y, r.TopLeft.Y, r.TopRight.Y)
}

// Centroid returns the average of the four corners.
func (r Rectangle) Centroid() Point {
	c := r.corners()
	var x, y float64
	for _, p := range c {
		x += p.X
		y += p.Y
	}
	return Point{x / 4, y / 4}
}

// IsAxisAligned reports whether the rectangle's rotation is zero within
// Epsilon, i.e. the bottom edge is horizontal and the left edge is vertical.
func (r Rectangle) IsAxisAligned() bool {
	return math.Abs(r.BottomRight.Y-r.BottomLeft.Y) < Epsilon &&
		math.Abs(r.TopLeft.X-r.BottomLeft.X) < Epsilon
}

// Normalise returns the smallest axis-aligned rectangle containing all four
// corners of r.
func (r Rectangle) Normalise() Rectangle {
	return NewAxisAligned(r.Left(), r.Bottom(), r.Right(), r.Top())
}

// Contains reports whether p lies within r. includeBorder controls whether
// points exactly on the boundary count as contained.
//
// For an axis-aligned rectangle this is a direct coordinate comparison. For
// a rotated rectangle it uses the sum-of-triangle-areas test: p is inside
// iff the sum of the areas of the four triangles formed by p and each edge
// equals the rectangle's area within Epsilon; p is on the border iff any one
// of those triangle areas is below Epsilon.
func (r Rectangle) Contains(p Point, includeBorder bool) bool {
	if r.IsAxisAligned() {
		left, right, bottom, top := r.Left(), r.Right(), r.Bottom(), r.Top()
		if includeBorder {
			return p.X >= left && p.X <= right && p.Y >= bottom && p.Y <= top
		}
		return p.X > left && p.X < right && p.Y > bottom && p.Y < top
	}

	c := r.corners()
	total := 0.0
	onBorder := false
	for i := range c {
		j := (i + 1) % len(c)
		area := math.Abs(SignedArea2(p, c[i], c[j])) / 2
		if area < Epsilon {
			onBorder = true
		}
		total += area
	}
	if onBorder {
		return includeBorder
	}
	return math.Abs(total-r.Area()) < Epsilon
}

// ContainsRect reports whether r fully contains other, i.e. every corner of
// other lies within r (border included).
func (r Rectangle) ContainsRect(other Rectangle) bool {
	for _, p := range other.corners() {
		if !r.Contains(p, true) {
			return false
		}
	}
	return true
}

// Intersects reports whether r and other share any area or boundary.
//
// For two axis-aligned rectangles this is an interval-overlap test. For
// rotated rectangles it first checks whether the axis-aligned bounding
// boxes overlap (a cheap reject), then tests corner containment in both
// directions, then falls back to testing all sixteen edge-pair crossings.
func (r Rectangle) Intersects(other Rectangle) bool {
	if r.IsAxisAligned() && other.IsAxisAligned() {
		return r.Left() <= other.Right() && other.Left() <= r.Right() &&
			r.Bottom() <= other.Top() && other.Bottom() <= r.Top()
	}

	if !r.Normalise().Intersects(other.Normalise()) {
		return false
	}

	for _, p := range other.corners() {
		if r.Contains(p, true) {
			return true
		}
	}
	for _, p := range r.corners() {
		if other.Contains(p, true) {
			return true
		}
	}

	re := r.edges()
	oe := other.edges()
	for _, a := range re {
		for _, b := range oe {
			if _, ok := a.Intersect(b); ok {
				return true
			}
		}
	}
	return false
}

// edges returns the four boundary segments of r in winding order.
func (r Rectangle) edges() [4]LineSegment {
	c := r.corners()
	var e [4]LineSegment
	for i := range c {
		j := (i + 1) % len(c)
		e[i] = LineSegment{P1: c[i], P2: c[j]}
	}
	return e
}

// Intersect returns the intersection rectangle of r and other, and false if
// they do not overlap. If either input is rotated, both are first replaced
// by their axis-aligned bounding boxes (Normalise), so the result is the
// overlap of those boxes; for the exact overlap of rotated rectangles, use
// clip.Clip instead.
func (r Rectangle) Intersect(other Rectangle) (Rectangle, bool) {
	if !r.IsAxisAligned() || !other.IsAxisAligned() {
		r, other = r.Normalise(), other.Normalise()
	}
	left := max(r.Left(), other.Left())
	right := min(r.Right(), other.Right())
	bottom := max(r.Bottom(), other.Bottom())
	top := min(r.Top(), other.Top())
	if left > right || bottom > top {
		return Rectangle{}, false
	}
	return NewAxisAligned(left, bottom, right, top), true
}
