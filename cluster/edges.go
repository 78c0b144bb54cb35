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

package cluster

import (
	"math"

	"seehuhn.de/go/layout/geom"
	"seehuhn.de/go/layout/kdtree"
)

// Filter reports whether item at index i is a candidate at all (pivot
// filter, checked before a query is even issued).
type Filter[T any] func(i int, item T) bool

// Accept reports whether the candidate neighbour j is acceptable as the
// final edge target for pivot i.
type Accept[T any] func(i, j int, a, b T) bool

// MaxDistance returns the maximum acceptable distance between a and b for
// them to be linked by an edge.
type MaxDistance[T any] func(a, b T) float64

// Dist computes a distance between two coordinates.
type Dist func(a, b geom.Point) float64

// EdgesBy1NN builds the nearest-neighbour edge array described in the
// clustering spec: for every element i passing filterPivot, it queries a
// k-d tree (built once, shared read-only by every worker) for the nearest
// other point j and links i to it if accept(i,j,...) holds and the
// distance is within maxDist(items[i], items[j]). No farther candidate is
// tried. edges[i] == -1 if the nearest point does not qualify or
// filterPivot rejected i.
//
// Edge computation runs in parallel across elements per opts; edges is the
// only shared mutable state and each worker writes exactly one index, so
// no locking is required.
func EdgesBy1NN[T any](items []T, key func(T) geom.Point, opts Options, filterPivot Filter[T], accept Accept[T], maxDist MaxDistance[T], dist Dist) ([]int, error) {
	return EdgesByKNN(items, key, 1, opts, filterPivot, accept, maxDist, dist)
}

// EdgesByKNN is like EdgesBy1NN but considers up to k candidates per pivot
// (in ascending distance order) before giving up, which lets accept reject
// several near neighbours (e.g. already-claimed, wrong reading order) and
// still find a usable match further out.
func EdgesByKNN[T any](items []T, key func(T) geom.Point, k int, opts Options, filterPivot Filter[T], accept Accept[T], maxDist MaxDistance[T], dist Dist) ([]int, error) {
	n := len(items)
	edges := make([]int, n)
	for i := range edges {
		edges[i] = -1
	}
	if n == 0 {
		return edges, nil
	}

	tree := kdtree.New(items, key)

	g, ctx := newGroup(opts, n)
	for i := 0; i < n; i++ {
		i := i
		if filterPivot != nil && !filterPivot(i, items[i]) {
			continue
		}
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			matches := tree.KNearest(key(items[i]), k+1, dist)
			for _, m := range matches {
				if m.Index == i {
					continue
				}
				if accept != nil && !accept(i, m.Index, items[i], items[m.Index]) {
					continue
				}
				limit := math.Inf(1)
				if maxDist != nil {
					limit = maxDist(items[i], items[m.Index])
				}
				if m.Distance <= limit {
					edges[i] = m.Index
					break
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return edges, nil
}

// EdgesByLine builds edges with a linear scan rather than a k-d tree, for
// use when candidates are compared along one axis only (e.g. rulings
// sharing an orientation) and a spatial index would not pay for itself.
func EdgesByLine[T any](items []T, opts Options, filterPivot Filter[T], accept Accept[T], maxDist MaxDistance[T], dist func(a, b T) float64) ([]int, error) {
	n := len(items)
	edges := make([]int, n)
	for i := range edges {
		edges[i] = -1
	}
	if n == 0 {
		return edges, nil
	}

	g, ctx := newGroup(opts, n)
	for i := 0; i < n; i++ {
		i := i
		if filterPivot != nil && !filterPivot(i, items[i]) {
			continue
		}
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			bestJ := -1
			bestD := math.Inf(1)
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				if accept != nil && !accept(i, j, items[i], items[j]) {
					continue
				}
				d := dist(items[i], items[j])
				limit := math.Inf(1)
				if maxDist != nil {
					limit = maxDist(items[i], items[j])
				}
				if d <= limit && d < bestD {
					bestJ, bestD = j, d
				}
			}
			edges[i] = bestJ
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return edges, nil
}
