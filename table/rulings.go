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

// Package table recovers ruling-based table structure from a page's drawn
// paths: ruling extraction, ruling merge, intersection mapping,
// rectangular-cell discovery (Nurminen's algorithm), and table grouping.
package table

import (
	"sort"

	"seehuhn.de/go/layout/cluster"
	"seehuhn.de/go/layout/geom"
	"seehuhn.de/go/layout/page"
)

// rulingExtension is how far each extracted ruling's endpoints are extended
// past the drawn geometry, so that rulings meant to meet at a corner
// actually overlap by a hair rather than falling just short of each other.
const rulingExtension = 2.0

// thinRulingFactor is the fraction of the page's modal letter dimension
// below which a filled rectangle is considered a ruling bar rather than
// body content (a table border is typically much thinner than a line of
// text).
const thinRulingFactor = 0.7

// ModeDimensions returns the most frequent glyph width and height among
// non-whitespace letters, the page-relative scale unit ruling extraction
// measures "thin" against. Returns (0, 0) if letters is empty.
func ModeDimensions(letters []page.Letter) (width, height float64) {
	widthCounts := map[float64]int{}
	heightCounts := map[float64]int{}
	for _, l := range letters {
		if isBlank(l.Value) {
			continue
		}
		r := l.GlyphRectangle
		widthCounts[roundTo(r.Width(), 3)]++
		heightCounts[roundTo(r.Height(), 3)]++
	}
	return mode(widthCounts), mode(heightCounts)
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

func roundTo(v float64, decimals int) float64 {
	scale := 1.0
	for i := 0; i < decimals; i++ {
		scale *= 10
	}
	return float64(int64(v*scale+0.5)) / scale
}

func mode(counts map[float64]int) float64 {
	var best float64
	bestCount := -1
	for v, c := range counts {
		if c > bestCount || (c == bestCount && v < best) {
			best, bestCount = v, c
		}
	}
	return best
}

// ExtractRulings scans paths for ruling candidates: thin filled rectangles
// reduced to their centerline, and Line commands that are strictly
// vertical or horizontal. Any path containing a Bezier command is skipped
// outright (curved borders are not rulings). Non-clipping paths only.
// Each extracted segment is extended by rulingExtension at both ends.
func ExtractRulings(paths []*geom.Path, modeWidth, modeHeight float64) []geom.LineSegment {
	var out []geom.LineSegment
	for _, p := range paths {
		if p.IsClipping {
			continue
		}
		if hasBezier(p) {
			continue
		}
		if p.IsDrawnAsRectangle() {
			if r, ok := p.GetBoundingRectangle(); ok {
				if s, ok := thinRectangleToCenterline(r, modeWidth, modeHeight); ok {
					out = append(out, extend(s))
				}
			}
			continue
		}
		for _, c := range p.Commands {
			if c.Type != geom.CmdLine {
				continue
			}
			seg := geom.LineSegment{P1: c.From, P2: c.To}
			if seg.Vertical() || seg.Horizontal() {
				out = append(out, extend(seg))
			}
		}
	}
	return dedupeSegments(out)
}

func hasBezier(p *geom.Path) bool {
	for _, c := range p.Commands {
		if c.Type == geom.CmdBezier {
			return true
		}
	}
	return false
}

// thinRectangleToCenterline reduces a thin rectangle to its single
// centerline ruling: horizontal if the rectangle is wide and short,
// vertical if tall and narrow. Returns false if neither dimension is thin
// relative to the page's modal letter size.
func thinRectangleToCenterline(r geom.Rectangle, modeWidth, modeHeight float64) (geom.LineSegment, bool) {
	w, h := r.Width(), r.Height()
	thinW := modeWidth > 0 && w < thinRulingFactor*modeWidth
	thinH := modeHeight > 0 && h < thinRulingFactor*modeHeight
	switch {
	case thinH && w >= h:
		y := (r.Bottom() + r.Top()) / 2
		return geom.LineSegment{P1: geom.Point{X: r.Left(), Y: y}, P2: geom.Point{X: r.Right(), Y: y}}, true
	case thinW && h >= w:
		x := (r.Left() + r.Right()) / 2
		return geom.LineSegment{P1: geom.Point{X: x, Y: r.Bottom()}, P2: geom.Point{X: x, Y: r.Top()}}, true
	default:
		return geom.LineSegment{}, false
	}
}

func extend(s geom.LineSegment) geom.LineSegment {
	switch {
	case s.Vertical():
		lo, hi := s.P1.Y, s.P2.Y
		if lo > hi {
			lo, hi = hi, lo
		}
		x := s.P1.X
		return geom.LineSegment{P1: geom.Point{X: x, Y: lo - rulingExtension}, P2: geom.Point{X: x, Y: hi + rulingExtension}}
	case s.Horizontal():
		lo, hi := s.P1.X, s.P2.X
		if lo > hi {
			lo, hi = hi, lo
		}
		y := s.P1.Y
		return geom.LineSegment{P1: geom.Point{X: lo - rulingExtension, Y: y}, P2: geom.Point{X: hi + rulingExtension, Y: y}}
	default:
		return s
	}
}

func dedupeSegments(segs []geom.LineSegment) []geom.LineSegment {
	seen := map[geom.LineSegment]bool{}
	var out []geom.LineSegment
	for _, s := range segs {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// MergeRulings merges collinear, overlapping-or-touching rulings sharing
// an orientation into the segment spanning their union. It builds a
// mergeable-neighbour edge array per spec and feeds it to
// cluster.Components for grouping, so the same DFS grouper used for
// nearest-neighbour text clustering also drives ruling merge.
func MergeRulings(rulings []geom.LineSegment) []geom.LineSegment {
	horiz, vert := splitByOrientation(rulings)
	merged := mergeGroup(horiz, true)
	merged = append(merged, mergeGroup(vert, false)...)
	return merged
}

func splitByOrientation(rulings []geom.LineSegment) (horiz, vert []geom.LineSegment) {
	for _, r := range rulings {
		if r.Horizontal() {
			horiz = append(horiz, r)
		} else if r.Vertical() {
			vert = append(vert, r)
		}
	}
	return horiz, vert
}

func mergeGroup(rulings []geom.LineSegment, horizontal bool) []geom.LineSegment {
	n := len(rulings)
	if n == 0 {
		return nil
	}
	edges := make([]int, n)
	for i := range edges {
		edges[i] = -1
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			if mergeable(rulings[i], rulings[j], horizontal) {
				edges[i] = j
				break
			}
		}
	}

	components := cluster.Components(edges)
	out := make([]geom.LineSegment, 0, len(components))
	for _, comp := range components {
		out = append(out, collapseComponent(rulings, comp, horizontal))
	}
	return out
}

// mergeable reports whether a and b are collinear (sharing the fixed axis
// coordinate within Epsilon) and overlap or touch along the variable axis.
func mergeable(a, b geom.LineSegment, horizontal bool) bool {
	if horizontal {
		if absf(a.P1.Y-b.P1.Y) > geom.Epsilon {
			return false
		}
		aLo, aHi := minmax(a.P1.X, a.P2.X)
		bLo, bHi := minmax(b.P1.X, b.P2.X)
		return aLo <= bHi && bLo <= aHi
	}
	if absf(a.P1.X-b.P1.X) > geom.Epsilon {
		return false
	}
	aLo, aHi := minmax(a.P1.Y, a.P2.Y)
	bLo, bHi := minmax(b.P1.Y, b.P2.Y)
	return aLo <= bHi && bLo <= aHi
}

func minmax(a, b float64) (lo, hi float64) {
	if a < b {
		return a, b
	}
	return b, a
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// collapseComponent reduces every ruling in comp to one segment spanning
// the min/max of the shared-axis coordinate, and asserts that the result is
// never shorter than any of its inputs (NumericDegeneracy would indicate a
// broken merge predicate, not a valid input).
func collapseComponent(rulings []geom.LineSegment, comp []int, horizontal bool) geom.LineSegment {
	fixed := 0.0
	lo, hi := 0.0, 0.0
	first := true
	maxInputLen := 0.0
	for _, idx := range comp {
		r := rulings[idx]
		var a, b float64
		if horizontal {
			fixed = r.P1.Y
			a, b = r.P1.X, r.P2.X
		} else {
			fixed = r.P1.X
			a, b = r.P1.Y, r.P2.Y
		}
		rLo, rHi := minmax(a, b)
		if first {
			lo, hi = rLo, rHi
			first = false
		} else {
			lo = min(lo, rLo)
			hi = max(hi, rHi)
		}
		maxInputLen = max(maxInputLen, rHi-rLo)
	}

	if assertEnabled && hi-lo < maxInputLen-geom.Epsilon {
		panic(NumericDegeneracy{Algorithm: "table.MergeRulings", Detail: "merged ruling shorter than an input"})
	}

	if horizontal {
		return geom.LineSegment{P1: geom.Point{X: lo, Y: fixed}, P2: geom.Point{X: hi, Y: fixed}}
	}
	return geom.LineSegment{P1: geom.Point{X: fixed, Y: lo}, P2: geom.Point{X: fixed, Y: hi}}
}

// sortedRulings returns rulings sorted by their fixed-axis coordinate then
// their starting coordinate, a stable order used when presenting results to
// callers or tests.
func sortedRulings(rulings []geom.LineSegment, horizontal bool) []geom.LineSegment {
	out := append([]geom.LineSegment(nil), rulings...)
	sort.Slice(out, func(i, j int) bool {
		if horizontal {
			if out[i].P1.Y != out[j].P1.Y {
				return out[i].P1.Y < out[j].P1.Y
			}
			return out[i].P1.X < out[j].P1.X
		}
		if out[i].P1.X != out[j].P1.X {
			return out[i].P1.X < out[j].P1.X
		}
		return out[i].P1.Y < out[j].P1.Y
	})
	return out
}
