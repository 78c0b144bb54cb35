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

// Package bezier implements cubic Bezier curve operations needed by the
// layout core: splitting (De Casteljau), the real-root cubic solver used to
// intersect a curve with a line, and flattening to a polyline.
package bezier

import "math"

const cubicEpsilon = 1e-12

// SolveCubic returns the real roots of a*x^3 + b*x^2 + c*x + d = 0.
//
// If |a| is below epsilon the equation is treated as the quadratic
// b*x^2 + c*x + d = 0 and solved via the quadratic formula.
// Otherwise Cardano's method is used to reduce to a depressed cubic; the
// discriminant det = Q^3 + R^2 selects between the one-real-root case
// (det >= 0, via Cardano) and the three-real-root case (det < 0, the
// casus irreducibilis, via Viete's trigonometric substitution).
func SolveCubic(a, b, c, d float64) []float64 {
	if math.Abs(a) < cubicEpsilon {
		return solveQuadratic(b, c, d)
	}

	// normalize to x^3 + A*x^2 + B*x + C = 0
	A := b / a
	B := c / a
	C := d / a

	Q := (3*B - A*A) / 9
	R := (9*A*B - 27*C - 2*A*A*A) / 54
	det := Q*Q*Q + R*R

	if det >= 0 {
		sqrtDet := math.Sqrt(det)
		s := realCubeRoot(R + sqrtDet)
		t := realCubeRoot(R - sqrtDet)
		root1 := s + t - A/3
		roots := []float64{root1}

		// second (repeated, or distinct) real root exists when the
		// imaginary part of the complex-conjugate pair vanishes, i.e.
		// when sqrt(3)/2 * (s-t) ~= 0.
		if math.Abs(math.Sqrt(3)/2*(s-t)) < 1e-9 {
			root2 := -(s+t)/2 - A/3
			if math.Abs(root2-root1) > 1e-9 {
				roots = append(roots, root2)
			}
		}
		return roots
	}

	// three real roots via Viete's trigonometric form
	negQ3 := -Q * Q * Q
	theta := math.Acos(clamp(R/math.Sqrt(negQ3), -1, 1))
	twoSqrtNegQ := 2 * math.Sqrt(-Q)
	roots := make([]float64, 3)
	for k := 0; k < 3; k++ {
		roots[k] = twoSqrtNegQ*math.Cos((theta-2*math.Pi*float64(k))/3) - A/3
	}
	return roots
}

func solveQuadratic(b, c, d float64) []float64 {
	if math.Abs(b) < cubicEpsilon {
		if math.Abs(c) < cubicEpsilon {
			return nil
		}
		return []float64{-d / c}
	}
	disc := c*c - 4*b*d
	if disc < 0 {
		return nil
	}
	if disc == 0 {
		return []float64{-c / (2 * b)}
	}
	sq := math.Sqrt(disc)
	return []float64{(-c + sq) / (2 * b), (-c - sq) / (2 * b)}
}

// realCubeRoot returns the real cube root of x, preserving sign (math.Cbrt
// already does this, but the helper documents the intent at call sites and
// insulates the solver from relying on that implementation detail).
func realCubeRoot(x float64) float64 {
	return math.Cbrt(x)
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
