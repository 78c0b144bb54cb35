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

	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/layout/geom"
)

// Cubic is a cubic Bezier curve with start point P0, control points P1, P2,
// and end point P3.
type Cubic struct {
	P0, P1, P2, P3 geom.Point
}

// Eval evaluates the curve at parameter t using the standard cubic Bernstein
// blend.
func (c Cubic) Eval(t float64) geom.Point {
	omt := 1 - t
	omt2 := omt * omt
	omt3 := omt2 * omt
	t2 := t * t
	t3 := t2 * t
	return geom.Point{
		X: omt3*c.P0.X + 3*omt2*t*c.P1.X + 3*omt*t2*c.P2.X + t3*c.P3.X,
		Y: omt3*c.P0.Y + 3*omt2*t*c.P1.Y + 3*omt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Split divides c at parameter tau into two sub-curves using De Casteljau's
// triangular linear-interpolation scheme: the control points of each half
// are the intermediate points of the construction.
func (c Cubic) Split(tau float64) (left, right Cubic) {
	p01 := lerp(c.P0, c.P1, tau)
	p12 := lerp(c.P1, c.P2, tau)
	p23 := lerp(c.P2, c.P3, tau)

	p012 := lerp(p01, p12, tau)
	p123 := lerp(p12, p23, tau)

	p0123 := lerp(p012, p123, tau)

	left = Cubic{P0: c.P0, P1: p01, P2: p012, P3: p0123}
	right = Cubic{P0: p0123, P1: p123, P2: p23, P3: c.P3}
	return left, right
}

func lerp(a, b geom.Point, t float64) geom.Point {
	return a.Lerp(b, t)
}

// BoundingRectangle returns the axis-aligned bounding box of the curve's
// four control points (a fast, conservative over-approximation of the
// curve's true extent — the convex hull property guarantees the curve
// never leaves it).
func (c Cubic) BoundingRectangle() geom.Rectangle {
	minX := math.Min(math.Min(c.P0.X, c.P1.X), math.Min(c.P2.X, c.P3.X))
	maxX := math.Max(math.Max(c.P0.X, c.P1.X), math.Max(c.P2.X, c.P3.X))
	minY := math.Min(math.Min(c.P0.Y, c.P1.Y), math.Min(c.P2.Y, c.P3.Y))
	maxY := math.Max(math.Max(c.P0.Y, c.P1.Y), math.Max(c.P2.Y, c.P3.Y))
	return geom.NewAxisAligned(minX, minY, maxX, maxY)
}

// Flatten approximates c with a polyline whose deviation from the true
// curve is within tolerance, using the same deviation-vector/Wang's-formula
// segment-count heuristic as a rasterizer's curve flattening, adapted from
// device-pixel tolerance to a caller-supplied geometric tolerance. The
// returned slice always starts with c.P0 and ends with c.P3.
func (c Cubic) Flatten(tolerance float64) []geom.Point {
	if tolerance <= 0 {
		tolerance = 0.1
	}
	d1 := c.P0.Sub(c.P1.Scale(2)).Add(c.P2)
	d2 := c.P1.Sub(c.P2.Scale(2)).Add(c.P3)
	m := math.Max(d1.Length(), d2.Length())

	n := 1
	if m > 0 {
		nf := math.Sqrt(3 * m / (4 * tolerance))
		if nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	pts := make([]geom.Point, 0, n+1)
	pts = append(pts, c.P0)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		pts = append(pts, c.Eval(t))
	}
	return pts
}

// FlattenFixed is like Flatten, but returns the polyline in the 26.6
// fixed-point format used by font hinting and glyph rasterization
// (golang.org/x/image/math/fixed.Point26_6), for callers that feed the
// flattened outline into a device-pixel rendering pipeline instead of
// consuming it as floating-point geometry.
func (c Cubic) FlattenFixed(tolerance float64) []fixed.Point26_6 {
	pts := c.Flatten(tolerance)
	out := make([]fixed.Point26_6, len(pts))
	for i, p := range pts {
		out[i] = fixed.Point26_6{
			X: fixed.Int26_6(math.Round(p.X * 64)),
			Y: fixed.Int26_6(math.Round(p.Y * 64)),
		}
	}
	return out
}
