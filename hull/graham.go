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

// Package hull implements convex hull (Graham scan) and bounding rectangle
// (minimum-area via rotating calipers, and oriented-by-regression)
// algorithms over 2-D point sets.
package hull

import (
	"errors"
	"math"
	"sort"

	"seehuhn.de/go/layout/geom"
)

// ErrEmpty is returned by GrahamScan and MinimumAreaRectangle when called
// with zero points (OrientedBoundingBox returns ErrTooFewPoints instead).
var ErrEmpty = errors.New("hull: empty point set")

// GrahamScan computes the convex hull of points using the Graham scan
// algorithm and returns its vertices in the order the scan visits them
// (not necessarily the input order). The pivot is always the point with
// minimum Y (ties broken by minimum X), selected internally: this is a
// precondition of the polar-angle grouping step below (grouping by angle
// mod pi only works because every other point is weakly "above" the
// pivot), so callers cannot and do not supply their own pivot.
//
// Duplicate coordinates are removed before sorting. A single distinct
// point returns that point; two distinct points return both.
func GrahamScan(points []geom.Point) ([]geom.Point, error) {
	pts := dedupe(points)
	if len(pts) == 0 {
		return nil, ErrEmpty
	}
	if len(pts) <= 2 {
		return pts, nil
	}

	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
	pivot := pts[0]
	rest := pts[1:]

	sort.Slice(rest, func(i, j int) bool {
		ai := polarAngleModPi(pivot, rest[i])
		aj := polarAngleModPi(pivot, rest[j])
		if ai != aj {
			return ai < aj
		}
		return pivot.DistanceTo(rest[i]) < pivot.DistanceTo(rest[j])
	})

	// within each angle group, keep only the farthest point
	grouped := make([]geom.Point, 0, len(rest))
	i := 0
	for i < len(rest) {
		j := i + 1
		for j < len(rest) && sameAngleGroup(pivot, rest[i], rest[j]) {
			j++
		}
		grouped = append(grouped, rest[j-1])
		i = j
	}

	sorted := append([]geom.Point{pivot}, grouped...)
	if len(sorted) <= 2 {
		return sorted, nil
	}

	stack := make([]geom.Point, 0, len(sorted))
	stack = append(stack, sorted[0], sorted[1])
	for k := 2; k < len(sorted); k++ {
		p := sorted[k]
		for len(stack) >= 2 && !geom.CCW(stack[len(stack)-2], stack[len(stack)-1], p) {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, p)
	}
	return stack, nil
}

func dedupe(points []geom.Point) []geom.Point {
	seen := make(map[geom.Point]bool, len(points))
	out := make([]geom.Point, 0, len(points))
	for _, p := range points {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// polarAngleModPi returns the angle of the vector pivot->p, taken modulo
// pi. Since the pivot is the minimum-Y point, every other point lies in the
// upper half-plane (or on the pivot's horizontal line to its right), so
// collapsing opposite directions this way never merges two genuinely
// different points.
func polarAngleModPi(pivot, p geom.Point) float64 {
	a := math.Atan2(p.Y-pivot.Y, p.X-pivot.X)
	if a < 0 {
		a += math.Pi
	}
	return math.Mod(a, math.Pi)
}

func sameAngleGroup(pivot, a, b geom.Point) bool {
	return math.Abs(polarAngleModPi(pivot, a)-polarAngleModPi(pivot, b)) < geom.Epsilon
}
