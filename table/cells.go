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
	"sort"

	"seehuhn.de/go/layout/geom"
)

// FindCells discovers rectangular cells in an intersection map using
// Nurminen's algorithm: process crossings top-to-bottom then
// left-to-right; for each crossing c, look for a crossing directly below
// it on the same vertical ruling and a crossing directly right of it on
// the same horizontal ruling, and check whether their combination closes a
// rectangle whose four edges are all shared rulings. Each crossing
// contributes at most one cell, as the cell's top-left corner.
func FindCells(intersections map[geom.Point]Intersection) []geom.Rectangle {
	points := make([]geom.Point, 0, len(intersections))
	for p := range intersections {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Y != points[j].Y {
			return points[i].Y > points[j].Y // top first
		}
		return points[i].X < points[j].X // then left to right
	})

	belowByVertical := groupBelow(points, intersections)
	rightByHorizontal := groupRight(points, intersections)

	var cells []geom.Rectangle
	for _, c := range points {
		ci := intersections[c]
		xPoints := belowByVertical[ci.V]
		yPoints := rightByHorizontal[ci.H]
		if cell, ok := tryCell(c, xPoints, yPoints, intersections); ok {
			cells = append(cells, cell)
		}
	}
	return cells
}

// groupBelow maps each vertical ruling to the intersections that lie on
// it, sorted from nearest-above to farthest-below (descending Y), the
// order tryCell wants when searching for "directly below".
func groupBelow(points []geom.Point, intersections map[geom.Point]Intersection) map[geom.LineSegment][]geom.Point {
	out := map[geom.LineSegment][]geom.Point{}
	for _, p := range points {
		v := intersections[p].V
		out[v] = append(out[v], p)
	}
	for _, group := range out {
		sort.Slice(group, func(i, j int) bool { return group[i].Y > group[j].Y })
	}
	return out
}

// groupRight maps each horizontal ruling to the intersections that lie on
// it, sorted from nearest-left to farthest-right (ascending X).
func groupRight(points []geom.Point, intersections map[geom.Point]Intersection) map[geom.LineSegment][]geom.Point {
	out := map[geom.LineSegment][]geom.Point{}
	for _, p := range points {
		h := intersections[p].H
		out[h] = append(out[h], p)
	}
	for _, group := range out {
		sort.Slice(group, func(i, j int) bool { return group[i].X < group[j].X })
	}
	return out
}

// tryCell looks for the nearest (x_pt below c, y_pt right of c) pair whose
// opposite corner (y_pt.X, x_pt.Y) exists in the map and whose four edges
// are all shared rulings, and returns the resulting cell rectangle.
func tryCell(c geom.Point, xPoints, yPoints []geom.Point, intersections map[geom.Point]Intersection) (geom.Rectangle, bool) {
	cInfo := intersections[c]
	for _, xPt := range xPoints {
		if xPt.Y >= c.Y {
			continue
		}
		for _, yPt := range yPoints {
			if yPt.X <= c.X {
				continue
			}
			opposite := geom.Point{X: yPt.X, Y: xPt.Y}
			oppInfo, ok := intersections[opposite]
			if !ok {
				continue
			}
			xInfo := intersections[xPt]
			yInfo := intersections[yPt]

			// top edge: c -> yPt, along c's horizontal ruling
			if yInfo.H != cInfo.H {
				continue
			}
			// left edge: c -> xPt, along c's vertical ruling
			if xInfo.V != cInfo.V {
				continue
			}
			// bottom edge: xPt -> opposite, along xPt's horizontal ruling
			if oppInfo.H != xInfo.H {
				continue
			}
			// right edge: yPt -> opposite, along yPt's vertical ruling
			if oppInfo.V != yInfo.V {
				continue
			}

			return geom.NewAxisAligned(c.X, opposite.Y, opposite.X, c.Y), true
		}
	}
	return geom.Rectangle{}, false
}
