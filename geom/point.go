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

// Package geom implements the geometric primitives shared by the rest of
// the layout analysis pipeline: points, axis-aligned and oriented
// rectangles, line segments, paths, and affine transforms.
//
// Primitives here are immutable once constructed and perform no defensive
// validation of their inputs (no NaN/Inf checks); callers are expected to
// supply finite coordinates. This mirrors the precondition-by-documentation
// style used throughout the package.
package geom

import "math"

// Epsilon is the default tolerance used for geometric comparisons
// throughout this package (rotation detection, containment tests, etc).
const Epsilon = 1e-5

// Point is an immutable 2-D point.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Dot returns the dot product p·q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z-component of the 3-D cross product of p and q,
// treated as vectors from the origin.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the Euclidean norm of p, treated as a vector from the origin.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return p.Sub(q).Length()
}

// Lerp returns the point a fraction t of the way from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// CCW reports whether the three points a, b, c form a strict
// counter-clockwise turn. This is the predicate used throughout the
// geometry and hull algorithms: (b.X-a.X)*(c.Y-a.Y) > (b.Y-a.Y)*(c.X-a.X).
func CCW(a, b, c Point) bool {
	return (b.X-a.X)*(c.Y-a.Y) > (b.Y-a.Y)*(c.X-a.X)
}

// SignedArea2 returns twice the signed area of the triangle a,b,c.
// Positive when a,b,c turn counter-clockwise.
func SignedArea2(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
