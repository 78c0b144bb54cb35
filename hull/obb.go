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

package hull

import (
	"errors"
	"math"

	"seehuhn.de/go/layout/geom"
)

// ErrTooFewPoints is returned by OrientedBoundingBox when fewer than two
// points are supplied.
var ErrTooFewPoints = errors.New("hull: need at least 2 points")

// OrientedBoundingBox fits a regression line through points, rotates all
// points by -atan(slope) so the fitted line is horizontal, computes the
// axis-aligned bounding box in that rotated frame, and rotates the result
// back. Requires at least 2 points.
func OrientedBoundingBox(points []geom.Point) (geom.Rectangle, error) {
	if len(points) < 2 {
		return geom.Rectangle{}, ErrTooFewPoints
	}

	slope, vertical := leastSquaresSlope(points)

	var theta float64
	if vertical {
		theta = math.Pi / 2
	} else {
		theta = math.Atan(slope)
	}

	cos, sin := math.Cos(-theta), math.Sin(-theta)
	rotate := func(p geom.Point) geom.Point {
		return geom.Point{
			X: p.X*cos - p.Y*sin,
			Y: p.X*sin + p.Y*cos,
		}
	}
	unrotateCos, unrotateSin := math.Cos(theta), math.Sin(theta)
	unrotate := func(p geom.Point) geom.Point {
		return geom.Point{
			X: p.X*unrotateCos - p.Y*unrotateSin,
			Y: p.X*unrotateSin + p.Y*unrotateCos,
		}
	}

	first := true
	var minX, minY, maxX, maxY float64
	for _, p := range points {
		r := rotate(p)
		if first {
			minX, maxX = r.X, r.X
			minY, maxY = r.Y, r.Y
			first = false
			continue
		}
		minX, maxX = math.Min(minX, r.X), math.Max(maxX, r.X)
		minY, maxY = math.Min(minY, r.Y), math.Max(maxY, r.Y)
	}

	corners := [4]geom.Point{
		{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY},
	}
	for i := range corners {
		corners[i] = unrotate(corners[i])
	}
	return geom.Rectangle{
		BottomLeft:  corners[0],
		BottomRight: corners[1],
		TopRight:    corners[2],
		TopLeft:     corners[3],
	}, nil
}

// leastSquaresSlope fits y = slope*x + intercept by ordinary least squares.
// If the point set has (near-)zero variance in X, the fit is reported as
// vertical instead (slope undefined).
func leastSquaresSlope(points []geom.Point) (slope float64, vertical bool) {
	n := float64(len(points))
	var sumX, sumY, sumXY, sumXX float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
		sumXY += p.X * p.Y
		sumXX += p.X * p.X
	}
	denom := n*sumXX - sumX*sumX
	if math.Abs(denom) < geom.Epsilon {
		return 0, true
	}
	slope = (n*sumXY - sumX*sumY) / denom
	return slope, false
}
