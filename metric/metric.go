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

// Package metric implements the distance functions used by the clustering
// and table-extraction stages: point-to-point distances and projections,
// angles, color distance, and string edit distance. It has no
// point-to-line distance function.
package metric

import (
	"math"

	"seehuhn.de/go/layout/geom"
)

// Euclidean returns the straight-line distance between a and b.
func Euclidean(a, b geom.Point) float64 {
	return a.DistanceTo(b)
}

// WeightedEuclidean returns the Euclidean distance between a and b after
// scaling the X and Y axes by wx and wy respectively.
func WeightedEuclidean(a, b geom.Point, wx, wy float64) float64 {
	dx := (a.X - b.X) * wx
	dy := (a.Y - b.Y) * wy
	return math.Hypot(dx, dy)
}

// Manhattan returns the L1 (taxicab) distance between a and b.
func Manhattan(a, b geom.Point) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// Horizontal returns the absolute difference between a.X and b.X.
func Horizontal(a, b geom.Point) float64 {
	return math.Abs(a.X - b.X)
}

// Vertical returns the absolute difference between a.Y and b.Y.
func Vertical(a, b geom.Point) float64 {
	return math.Abs(a.Y - b.Y)
}

// SignedAngleRadians returns the angle, in radians in (-pi, pi], of the
// vector from a to b, measured counter-clockwise from the positive X axis.
func SignedAngleRadians(a, b geom.Point) float64 {
	v := b.Sub(a)
	return math.Atan2(v.Y, v.X)
}

// SignedAngleDegrees is SignedAngleRadians converted to degrees.
func SignedAngleDegrees(a, b geom.Point) float64 {
	return SignedAngleRadians(a, b) * 180 / math.Pi
}

// FindIndexNearest scans candidates and returns the index of the element
// closest to query by dist, excluding the candidate equal to query itself
// (by value, via Go's == on the comparable type T). Returns -1 if
// candidates is empty or every element equals query.
func FindIndexNearest[T comparable](query T, candidates []T, dist func(a, b T) float64) int {
	best := -1
	bestDist := math.Inf(1)
	for i, c := range candidates {
		if c == query {
			continue
		}
		d := dist(query, c)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}
