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

import "seehuhn.de/go/layout/geom"

// tParamEpsilon extends the valid root range slightly past [0,1] so that
// near-endpoint intersections are not lost to floating-point error.
const tParamEpsilon = 1e-7

// IntersectLine returns every point where c crosses the line segment seg,
// found by substituting the curve's parametric x(t), y(t) into the line's
// implicit equation A*x + B*y + C = 0, solving the resulting cubic in t,
// and keeping only the roots in [-eps, 1+eps] whose evaluated point also
// lies on the segment (not just the infinite line).
//
// A cheap bounding-box pre-filter skips the cubic solve entirely when c's
// bounding box does not meet seg's bounding box.
func IntersectLine(c Cubic, seg geom.LineSegment) []geom.Point {
	cbox := c.BoundingRectangle()
	sbox := geom.NewAxisAligned(
		min(seg.P1.X, seg.P2.X), min(seg.P1.Y, seg.P2.Y),
		max(seg.P1.X, seg.P2.X), max(seg.P1.Y, seg.P2.Y),
	)
	if !cbox.Intersects(sbox) {
		return nil
	}

	// implicit line: A*x + B*y + C = 0
	A := seg.P2.Y - seg.P1.Y
	B := seg.P1.X - seg.P2.X
	C := -(A*seg.P1.X + B*seg.P1.Y)

	// x(t), y(t) in Bernstein-expanded power-basis form
	xc := bernsteinToPower(c.P0.X, c.P1.X, c.P2.X, c.P3.X)
	yc := bernsteinToPower(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)

	// A*x(t) + B*y(t) + C = a*t^3 + b*t^2 + c*t + d
	a := A*xc[0] + B*yc[0]
	b := A*xc[1] + B*yc[1]
	cc := A*xc[2] + B*yc[2]
	d := A*xc[3] + B*yc[3] + C

	roots := SolveCubic(a, b, cc, d)

	var out []geom.Point
	for _, t := range roots {
		if t < -tParamEpsilon || t > 1+tParamEpsilon {
			continue
		}
		tt := clamp(t, 0, 1)
		p := c.Eval(tt)
		if seg.Contains(p) {
			out = append(out, p)
		}
	}
	return out
}

// bernsteinToPower converts the four cubic Bernstein coefficients (for one
// coordinate axis) to power-basis coefficients [a,b,c,d] such that
// a*t^3 + b*t^2 + c*t + d equals the Bernstein-basis polynomial.
func bernsteinToPower(p0, p1, p2, p3 float64) [4]float64 {
	a := -p0 + 3*p1 - 3*p2 + p3
	b := 3*p0 - 6*p1 + 3*p2
	c := -3*p0 + 3*p1
	d := p0
	return [4]float64{a, b, c, d}
}
