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

// Package layout is the document layout analysis core of a PDF
// content-extraction pipeline: given a page's already-decoded glyphs and
// drawn paths, it reconstructs convex hulls, oriented bounding boxes,
// clipped geometry, nearest-neighbour text clusters, and ruling-based
// table structure.
//
// layout itself is a thin facade over geom, hull, bezier, clip, kdtree,
// cluster, and table; most callers only need the functions declared here.
// The subpackages remain independently usable for callers that need finer
// control (a custom distance function, a specific fill rule, direct access
// to the k-d tree).
package layout

import (
	"seehuhn.de/go/layout/clip"
	"seehuhn.de/go/layout/cluster"
	"seehuhn.de/go/layout/geom"
	"seehuhn.de/go/layout/hull"
	"seehuhn.de/go/layout/page"
	"seehuhn.de/go/layout/table"
)

// GrahamScan computes the convex hull of points via the Graham scan
// algorithm. See hull.GrahamScan for the full contract.
func GrahamScan(points []geom.Point) ([]geom.Point, error) {
	return hull.GrahamScan(points)
}

// MinimumAreaRectangle returns the smallest-area rectangle containing
// points, found via rotating calipers over the convex hull. See
// hull.MinimumAreaRectangle.
func MinimumAreaRectangle(points []geom.Point) (geom.Rectangle, error) {
	return hull.MinimumAreaRectangle(points)
}

// OrientedBoundingBox returns a bounding rectangle aligned to the
// least-squares regression line through points. See hull.OrientedBoundingBox.
func OrientedBoundingBox(points []geom.Point) (geom.Rectangle, error) {
	return hull.OrientedBoundingBox(points)
}

// Clip clips subject against clipping, dispatching to Sutherland-Hodgman or
// Greiner-Hormann as appropriate. See clip.Clip.
func Clip(clipping, subject *geom.Path) ([]*geom.Path, error) {
	return clip.Clip(clipping, subject)
}

// GetTableCandidates recovers ruling-based table structure from p. See
// table.GetTableCandidates.
func GetTableCandidates(p *page.Page) [][]geom.Rectangle {
	return table.GetTableCandidates(p)
}

// ClusterOptions configures the parallelism of the nearest-neighbour
// edge-construction step; it is an alias of cluster.Options so callers
// need not import the cluster package for the common case.
type ClusterOptions = cluster.Options

// NearestNeighbours groups items into connected components by 1-nearest-
// neighbour: each item is linked to its nearest neighbour if that neighbour
// is accepted and within maxDist, and the resulting undirected graph's
// connected components are
// returned. See cluster.EdgesBy1NN and cluster.Components.
func NearestNeighbours[T any](
	items []T,
	key func(T) geom.Point,
	opts ClusterOptions,
	filterPivot cluster.Filter[T],
	accept cluster.Accept[T],
	maxDist cluster.MaxDistance[T],
	dist cluster.Dist,
) ([][]T, error) {
	edges, err := cluster.EdgesBy1NN(items, key, opts, filterPivot, accept, maxDist, dist)
	if err != nil {
		return nil, err
	}
	return cluster.Group(items, cluster.Components(edges)), nil
}

// KNearestNeighbours is like NearestNeighbours but considers up to k
// candidates per pivot before giving up on finding an accepted match. See
// cluster.EdgesByKNN.
func KNearestNeighbours[T any](
	items []T,
	key func(T) geom.Point,
	k int,
	opts ClusterOptions,
	filterPivot cluster.Filter[T],
	accept cluster.Accept[T],
	maxDist cluster.MaxDistance[T],
	dist cluster.Dist,
) ([][]T, error) {
	edges, err := cluster.EdgesByKNN(items, key, k, opts, filterPivot, accept, maxDist, dist)
	if err != nil {
		return nil, err
	}
	return cluster.Group(items, cluster.Components(edges)), nil
}

// NearestNeighboursByLine is like NearestNeighbours but compares candidates
// with a linear scan instead of a k-d tree, for cases (such as ruling
// merge) where candidates are naturally compared along one shared axis.
// See cluster.EdgesByLine.
func NearestNeighboursByLine[T any](
	items []T,
	opts ClusterOptions,
	filterPivot cluster.Filter[T],
	accept cluster.Accept[T],
	maxDist cluster.MaxDistance[T],
	dist func(a, b T) float64,
) ([][]T, error) {
	edges, err := cluster.EdgesByLine(items, opts, filterPivot, accept, maxDist, dist)
	if err != nil {
		return nil, err
	}
	return cluster.Group(items, cluster.Components(edges)), nil
}
