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

package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectangleAreaAndContains(t *testing.T) {
	r := NewAxisAligned(0, 0, 4, 3)
	assert.InDelta(t, 12.0, r.Area(), 1e-9)
	assert.True(t, r.Contains(Point{2, 1}, false))
	assert.True(t, r.Contains(Point{0, 0}, true))
	assert.False(t, r.Contains(Point{0, 0}, false))
	assert.False(t, r.Contains(Point{5, 5}, true))
}

func TestRectangleIntersect(t *testing.T) {
	a := NewAxisAligned(0, 0, 10, 10)
	b := NewAxisAligned(5, 5, 15, 15)
	got, ok := a.Intersect(b)
	require.True(t, ok)
	want := NewAxisAligned(5, 5, 10, 10)
	assert.Equal(t, want, got)

	c := NewAxisAligned(20, 20, 30, 30)
	_, ok = a.Intersect(c)
	assert.False(t, ok)
}

func TestRectangleRotatedContains(t *testing.T) {
	// a square rotated 45 degrees, centered on the origin, corners at
	// distance 1 (side length sqrt(2))
	r := Rectangle{
		BottomLeft:  Point{0, -1},
		BottomRight: Point{1, 0},
		TopRight:    Point{0, 1},
		TopLeft:     Point{-1, 0},
	}
	assert.False(t, r.IsAxisAligned())
	assert.True(t, r.Contains(Point{0, 0}, false))
	assert.False(t, r.Contains(Point{0.9, 0.9}, false))
}

func TestSegmentIntersect(t *testing.T) {
	a := LineSegment{Point{0, 0}, Point{4, 4}}
	b := LineSegment{Point{0, 4}, Point{4, 0}}
	p, ok := a.Intersect(b)
	require.True(t, ok)
	assert.InDelta(t, 2.0, p.X, 1e-9)
	assert.InDelta(t, 2.0, p.Y, 1e-9)

	assert.True(t, a.Intersects(b))
}

func TestSegmentVerticalIntersect(t *testing.T) {
	v := LineSegment{Point{3, -5}, Point{3, 5}}
	h := LineSegment{Point{-5, 2}, Point{5, 2}}
	p, ok := v.Intersect(h)
	require.True(t, ok)
	assert.Equal(t, Point{3, 2}, p)
}

func TestSegmentParallelNoIntersect(t *testing.T) {
	a := LineSegment{Point{0, 0}, Point{1, 0}}
	b := LineSegment{Point{0, 1}, Point{1, 1}}
	_, ok := a.Intersect(b)
	assert.False(t, ok)
}

func TestPathIsDrawnAsRectangle(t *testing.T) {
	p := NewPath().Rectangle(NewAxisAligned(0, 0, 10, 5))
	assert.True(t, p.IsDrawnAsRectangle())

	tri := NewPath()
	tri.MoveTo(Point{0, 0})
	tri.LineTo(Point{10, 0})
	tri.LineTo(Point{5, 10})
	tri.Close()
	assert.False(t, tri.IsDrawnAsRectangle())
}

func TestPathGetBoundingRectangle(t *testing.T) {
	p := NewPath()
	p.MoveTo(Point{1, 1})
	p.LineTo(Point{5, 1})
	p.CurveTo(Point{6, 6}, Point{-2, 6}, Point{1, 1})
	rect, ok := p.GetBoundingRectangle()
	require.True(t, ok)
	assert.InDelta(t, -2.0, rect.Left(), 1e-9)
	assert.InDelta(t, 6.0, rect.Right(), 1e-9)
}

func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.MoveTo(Point{1, 0})
	p.LineTo(Point{2, 0})
	m := Matrix{0, 1, -1, 0, 0, 0} // 90 degree rotation
	out := p.Transform(m)
	assert.Equal(t, Point{0, 1}, out.Commands[0].To)
	assert.Equal(t, Point{0, 2}, out.Commands[1].To)
}

func TestCCW(t *testing.T) {
	assert.True(t, CCW(Point{0, 0}, Point{1, 0}, Point{0, 1}))
	assert.False(t, CCW(Point{0, 0}, Point{0, 1}, Point{1, 0}))
}
