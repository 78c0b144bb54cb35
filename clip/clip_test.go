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

package clip

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/layout/geom"
)

func rectPath(x0, y0, x1, y1 float64) *geom.Path {
	p := geom.NewPath()
	p.Rectangle(geom.NewAxisAligned(x0, y0, x1, y1))
	return p
}

// polygonArea computes a simple polygon's area via the shoelace formula.
func polygonArea(ring []geom.Point) float64 {
	n := len(ring)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		a, b := ring[i], ring[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// scenario 3: an axis-aligned rectangle clipped against another axis-aligned
// rectangle produces a single rectangle.
func TestClipAxisAlignedRectangles(t *testing.T) {
	clipper := rectPath(0, 0, 10, 10)
	subject := rectPath(5, 5, 15, 15)

	out, err := Clip(clipper, subject)
	require.NoError(t, err)
	require.Len(t, out, 1)

	box, ok := out[0].GetBoundingRectangle()
	require.True(t, ok)
	assert.InDelta(t, 5, box.Left(), 1e-9)
	assert.InDelta(t, 5, box.Bottom(), 1e-9)
	assert.InDelta(t, 10, box.Right(), 1e-9)
	assert.InDelta(t, 10, box.Top(), 1e-9)
}

// scenario 4: two unit squares offset by (0.5, 0.5) clipped under
// non-zero-winding produce one rectangle of area 0.25.
func TestClipOffsetUnitSquares(t *testing.T) {
	a := rectPath(0, 0, 1, 1)
	b := rectPath(0.5, 0.5, 1.5, 1.5)
	b.FillingRule = geom.NonZeroWinding

	out, err := Clip(a, b)
	require.NoError(t, err)
	require.Len(t, out, 1)

	box, ok := out[0].GetBoundingRectangle()
	require.True(t, ok)
	area := box.Area()
	assert.InDelta(t, 0.25, area, 1e-6)
}

func TestClipAreaNeverExceedsSmallerInput(t *testing.T) {
	a := rectPath(0, 0, 4, 4)
	b := rectPath(1, 1, 2, 9)

	out, err := Clip(a, b)
	require.NoError(t, err)
	require.Len(t, out, 1)

	box, _ := out[0].GetBoundingRectangle()
	aBox, _ := a.GetBoundingRectangle()
	bBox, _ := b.GetBoundingRectangle()
	assert.LessOrEqual(t, box.Area(), math.Min(aBox.Area(), bBox.Area())+1e-9)
}

func TestClipDisjointRectanglesIsEmpty(t *testing.T) {
	a := rectPath(0, 0, 1, 1)
	b := rectPath(10, 10, 11, 11)

	out, err := Clip(a, b)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestClipIdempotent(t *testing.T) {
	a := rectPath(0, 0, 10, 10)
	b := rectPath(3, 3, 8, 12)

	first, err := Clip(a, b)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := Clip(a, first[0])
	require.NoError(t, err)
	require.Len(t, second, 1)

	box1, _ := first[0].GetBoundingRectangle()
	box2, _ := second[0].GetBoundingRectangle()
	assert.InDelta(t, box1.Area(), box2.Area(), 1e-6)
}

func TestClipConvexMatchesSutherlandHodgman(t *testing.T) {
	clipper := []geom.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	subject := []geom.Point{{-5, 5}, {5, -5}, {15, 5}, {5, 15}}

	direct := SutherlandHodgman(clipper, subject)
	require.NotEmpty(t, direct)

	clipperPath := rectPath(0, 0, 10, 10)
	subjectPath := geom.NewPath()
	subjectPath.MoveTo(subject[0])
	for _, p := range subject[1:] {
		subjectPath.LineTo(p)
	}
	subjectPath.LineTo(subject[0])
	subjectPath.Close()

	out, err := Clip(clipperPath, subjectPath)
	require.NoError(t, err)
	require.Len(t, out, 1)

	directArea := math.Abs(polygonArea(direct))
	clippedArea := math.Abs(polygonArea(out[0].Points()))
	assert.InDelta(t, directArea, clippedArea, 1e-6)
}

func TestClipOpenPathSplitsAtBoundary(t *testing.T) {
	clipper := rectPath(0, 0, 10, 10)
	subject := geom.NewPath()
	subject.MoveTo(geom.Point{-5, 5})
	subject.LineTo(geom.Point{5, 5})
	subject.LineTo(geom.Point{5, 20})
	subject.LineTo(geom.Point{15, 20})

	out, err := Clip(clipper, subject)
	require.NoError(t, err)
	require.Len(t, out, 1)

	box, ok := out[0].GetBoundingRectangle()
	require.True(t, ok)
	assert.InDelta(t, 0, box.Left(), 1e-9)
	assert.InDelta(t, 5, box.Right(), 1e-9)
	assert.InDelta(t, 5, box.Bottom(), 1e-9)
	assert.InDelta(t, 10, box.Top(), 1e-9)
}

func TestWindingNumberAndInside(t *testing.T) {
	square := []geom.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	assert.True(t, Inside(geom.Point{5, 5}, square, NonZeroWinding))
	assert.False(t, Inside(geom.Point{15, 15}, square, NonZeroWinding))
	assert.True(t, Inside(geom.Point{5, 5}, square, EvenOdd))
}

func TestGreinerHormannNoIntersectionContainment(t *testing.T) {
	outer := []geom.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	inner := []geom.Point{{2, 2}, {4, 2}, {4, 4}, {2, 4}}

	out := GreinerHormann(inner, outer, false, false, NonZeroWinding)
	require.Len(t, out, 1)
	assert.Equal(t, inner, out[0])
}

// lShape is a concave, CCW hexagon: a 10x10 square with its top-right 6x6
// quadrant (x in [4,10], y in [4,10]) removed. Its reflex vertex at (4, 4)
// forces any overlapping subject to cross its boundary at more than one
// edge, exercising GreinerHormann's intersection splicing and entry/exit
// labelling instead of the zero-intersection containment shortcut.
func lShape() []geom.Point {
	return []geom.Point{{0, 0}, {10, 0}, {10, 4}, {4, 4}, {4, 10}, {0, 10}}
}

func TestGreinerHormannConcaveClipperProducesRealIntersections(t *testing.T) {
	clipper := lShape()
	require.False(t, isConvexCCW(clipper))

	subject := []geom.Point{{2, 2}, {8, 2}, {8, 8}, {2, 8}}
	out := GreinerHormann(subject, clipper, false, false, NonZeroWinding)
	require.Len(t, out, 1)

	// the subject square (area 36) loses its overlap with the removed
	// quadrant (the 4x4 block from (4,4) to (8,8), area 16), leaving 20.
	area := math.Abs(polygonArea(out[0]))
	assert.InDelta(t, 20, area, 1e-6)

	// at least one output vertex must be a genuine edge/edge intersection
	// (not one of the four subject corners), proving the crossing/splicing
	// machinery actually ran.
	corners := map[geom.Point]bool{
		{2, 2}: true, {8, 2}: true, {8, 8}: true, {2, 8}: true,
	}
	foundIntersection := false
	for _, p := range out[0] {
		if !corners[p] {
			foundIntersection = true
			break
		}
	}
	assert.True(t, foundIntersection, "expected a computed intersection vertex, got %v", out[0])
}

// same scenario routed through Clip, which must dispatch to the
// GreinerHormann branch since lShape is not convex.
func TestClipConcaveClipperMatchesGreinerHormann(t *testing.T) {
	clipper := geom.NewPath()
	ring := lShape()
	clipper.MoveTo(ring[0])
	for _, p := range ring[1:] {
		clipper.LineTo(p)
	}
	clipper.Close()

	subject := rectPath(2, 2, 8, 8)

	out, err := Clip(clipper, subject)
	require.NoError(t, err)
	require.Len(t, out, 1)

	pts := out[0].Points()
	require.NotEmpty(t, pts)
	area := math.Abs(polygonArea(pts))
	assert.InDelta(t, 20, area, 1e-6)
}
