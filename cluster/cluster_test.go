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
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/layout/geom"
)

func TestEdgesByKNNFindsNearestAccepted(t *testing.T) {
	points := []geom.Point{{0, 0}, {1, 0}, {10, 0}, {11, 0}}
	edges, err := EdgesByKNN(points, func(p geom.Point) geom.Point { return p }, 3,
		Options{}, nil, nil, nil, func(a, b geom.Point) float64 { return a.DistanceTo(b) })
	require.NoError(t, err)
	assert.Equal(t, 1, edges[0])
	assert.Equal(t, 0, edges[1])
	assert.Equal(t, 3, edges[2])
	assert.Equal(t, 2, edges[3])
}

func TestEdgesRespectMaxDistance(t *testing.T) {
	points := []geom.Point{{0, 0}, {100, 0}}
	edges, err := EdgesByKNN(points, func(p geom.Point) geom.Point { return p }, 3,
		Options{}, nil, nil,
		func(a, b geom.Point) float64 { return 1 },
		func(a, b geom.Point) float64 { return a.DistanceTo(b) })
	require.NoError(t, err)
	assert.Equal(t, -1, edges[0])
	assert.Equal(t, -1, edges[1])
}

func TestEdgesRespectFilterPivot(t *testing.T) {
	points := []geom.Point{{0, 0}, {1, 0}}
	edges, err := EdgesByKNN(points, func(p geom.Point) geom.Point { return p }, 3,
		Options{}, func(i int, p geom.Point) bool { return i != 0 }, nil, nil,
		func(a, b geom.Point) float64 { return a.DistanceTo(b) })
	require.NoError(t, err)
	assert.Equal(t, -1, edges[0])
	assert.Equal(t, 0, edges[1])
}

func TestComponentsCoverEveryIndexDisjointly(t *testing.T) {
	edges := []int{1, 0, 3, 2, -1}
	comps := Components(edges)

	seen := map[int]int{}
	for ci, comp := range comps {
		for _, idx := range comp {
			seen[idx] = ci
		}
	}
	assert.Len(t, seen, len(edges))
	assert.Equal(t, seen[0], seen[1])
	assert.Equal(t, seen[2], seen[3])
	assert.NotEqual(t, seen[0], seen[2])
}

func TestComponentsRespectEdgeMembership(t *testing.T) {
	edges := []int{2, 2, -1}
	comps := Components(edges)
	membership := map[int]int{}
	for ci, comp := range comps {
		for _, idx := range comp {
			membership[idx] = ci
		}
	}
	for i, j := range edges {
		if j >= 0 {
			assert.Equal(t, membership[i], membership[j])
		}
	}
}

func TestCoalesceRectanglesMergesTouching(t *testing.T) {
	rects := []geom.Rectangle{
		geom.NewAxisAligned(0, 0, 1, 1),
		geom.NewAxisAligned(1, 0, 2, 1),
		geom.NewAxisAligned(10, 10, 11, 11),
	}
	indices, bounds := CoalesceRectangles(rects, 1e-6)
	require.Len(t, indices, 2)

	var grp []int
	for i, g := range indices {
		if len(g) == 2 {
			grp = g
			assert.InDelta(t, 2.0, bounds[i].Width(), 1e-9)
		}
	}
	sort.Ints(grp)
	assert.Equal(t, []int{0, 1}, grp)
}

func TestCoalesceRectanglesToleranceGap(t *testing.T) {
	rects := []geom.Rectangle{
		geom.NewAxisAligned(0, 0, 1, 1),
		geom.NewAxisAligned(1.5, 0, 2.5, 1),
	}
	indicesNoTol, _ := CoalesceRectangles(rects, 0)
	assert.Len(t, indicesNoTol, 2)

	indicesTol, _ := CoalesceRectangles(rects, 0.6)
	assert.Len(t, indicesTol, 1)
}
