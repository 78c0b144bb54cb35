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

package table

// assertEnabled guards the NumericDegeneracy check in collapseComponent.
// Left on unconditionally: under the merge algorithm actually implemented
// (min/max of collinear coordinates), the merged span cannot shrink below
// any input, so the panic is unreachable and costs nothing to check.
const assertEnabled = true

// NumericDegeneracy is panicked when ruling merge would collapse multiple
// rulings into a segment shorter than one of its inputs, a violation of the
// merge algorithm's own invariant rather than a condition any valid input
// can trigger.
type NumericDegeneracy struct {
	Algorithm string
	Detail    string
}

func (e NumericDegeneracy) Error() string {
	return e.Algorithm + ": " + e.Detail
}
