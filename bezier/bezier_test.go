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

package bezier

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/layout/geom"
)

func TestSolveCubicLiteral(t *testing.T) {
	// x^3 - 6x^2 + 11x - 6 = 0 -> roots {1, 2, 3}
	roots := SolveCubic(1, -6, 11, -6)
	assert.Len(t, roots, 3)
	sortedRoots := append([]float64(nil), roots...)
	for i := 0; i < len(sortedRoots); i++ {
		for j := i + 1; j < len(sortedRoots); j++ {
			if sortedRoots[j] < sortedRoots[i] {
				sortedRoots[i], sortedRoots[j] = sortedRoots[j], sortedRoots[i]
			}
		}
	}
	want := []float64{1, 2, 3}
	for i, w := range want {
		assert.InDelta(t, w, sortedRoots[i], 1e-6)
	}
}

func TestSolveCubicRandomSatisfiesEquation(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for trial := 0; trial < 200; trial++ {
		a := r.Float64()*10 - 5
		if math.Abs(a) < 1e-3 {
			a = 1
		}
		b := r.Float64()*10 - 5
		c := r.Float64()*10 - 5
		d := r.Float64()*10 - 5

		roots := SolveCubic(a, b, c, d)
		tol := 1e-6 * (math.Abs(a) + math.Abs(b) + math.Abs(c) + math.Abs(d))
		for _, root := range roots {
			val := a*root*root*root + b*root*root + c*root + d
			assert.LessOrEqual(t, math.Abs(val), tol+1e-9,
				"a=%v b=%v c=%v d=%v root=%v", a, b, c, d, root)
		}
	}
}

func TestSplitReproducesCurve(t *testing.T) {
	c := Cubic{geom.Point{0, 0}, geom.Point{1, 2}, geom.Point{3, 2}, geom.Point{4, 0}}
	for _, tau := range []float64{0.1, 0.25, 0.5, 0.73, 0.9} {
		left, right := c.Split(tau)
		for _, s := range []float64{0, 0.25, 0.5, 0.75, 1.0} {
			// sample point on the combined curve at global parameter tau*s (left half)
			wantLeft := c.Eval(tau * s)
			gotLeft := left.Eval(s)
			assert.InDelta(t, wantLeft.X, gotLeft.X, 1e-6)
			assert.InDelta(t, wantLeft.Y, gotLeft.Y, 1e-6)

			wantRight := c.Eval(tau + (1-tau)*s)
			gotRight := right.Eval(s)
			assert.InDelta(t, wantRight.X, gotRight.X, 1e-6)
			assert.InDelta(t, wantRight.Y, gotRight.Y, 1e-6)
		}
	}
}

func TestIntersectLineHorizontal(t *testing.T) {
	c := Cubic{geom.Point{0, 0}, geom.Point{1, 3}, geom.Point{2, -3}, geom.Point{3, 0}}
	seg := geom.LineSegment{P1: geom.Point{-1, 0}, P2: geom.Point{4, 0}}
	pts := IntersectLine(c, seg)
	assert.GreaterOrEqual(t, len(pts), 1)
	for _, p := range pts {
		assert.InDelta(t, 0.0, p.Y, 1e-4)
	}
}

func TestIntersectLineMissesWhenBoundingBoxDisjoint(t *testing.T) {
	c := Cubic{geom.Point{0, 0}, geom.Point{1, 1}, geom.Point{2, 1}, geom.Point{3, 0}}
	seg := geom.LineSegment{P1: geom.Point{100, 100}, P2: geom.Point{200, 200}}
	pts := IntersectLine(c, seg)
	assert.Empty(t, pts)
}

func TestFlattenEndpoints(t *testing.T) {
	c := Cubic{geom.Point{0, 0}, geom.Point{1, 5}, geom.Point{4, 5}, geom.Point{5, 0}}
	pts := c.Flatten(0.1)
	assert.Equal(t, c.P0, pts[0])
	assert.InDelta(t, c.P3.X, pts[len(pts)-1].X, 1e-9)
	assert.InDelta(t, c.P3.Y, pts[len(pts)-1].Y, 1e-9)
	assert.GreaterOrEqual(t, len(pts), 2)
}

func TestFlattenFixedMatchesFlattenScaledBy64(t *testing.T) {
	c := Cubic{geom.Point{0, 0}, geom.Point{1, 5}, geom.Point{4, 5}, geom.Point{5, 0}}
	pts := c.Flatten(0.1)
	fixedPts := c.FlattenFixed(0.1)
	require.Len(t, fixedPts, len(pts))
	for i, p := range pts {
		assert.InDelta(t, p.X*64, float64(fixedPts[i].X), 1)
		assert.InDelta(t, p.Y*64, float64(fixedPts[i].Y), 1)
	}
}
