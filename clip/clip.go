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
	"seehuhn.de/go/layout/bezier"
	"seehuhn.de/go/layout/geom"
)

// flattenTolerance is the maximum deviation allowed when a clip or subject
// path's Bezier segments are replaced by line segments before clipping.
const flattenTolerance = 0.05

// Clip clips subject against clipping and returns the resulting path or
// paths. clipping must describe a single closed ring (its first subpath is
// used; a Bezier segment in it is flattened).
//
// If subject is closed, the general Greiner-Hormann algorithm is used
// (Sutherland-Hodgman whenever clipping's ring happens to be convex and
// counter-clockwise, since it is substantially cheaper). If subject is open, it is flattened to a
// polyline and clipped segment-wise against clipping's ring, returning one
// open path per surviving sub-segment rather than failing outright.
func Clip(clipping, subject *geom.Path) ([]*geom.Path, error) {
	clipRing := flattenToPolyline(clipping)
	if len(clipRing) < 3 {
		return nil, nil
	}

	rule := subject.FillingRule

	if !subject.IsClosed() {
		return clipOpenPath(clipRing, subject), nil
	}

	subjRing := flattenToPolyline(subject)
	if len(subjRing) < 3 {
		return nil, nil
	}

	if isConvexCCW(clipRing) {
		out := SutherlandHodgman(clipRing, subjRing)
		if len(out) == 0 {
			return nil, nil
		}
		return []*geom.Path{pathFromRing(subject, out)}, nil
	}

	rings := GreinerHormann(subjRing, clipRing, false, false, FillRule(rule))
	if len(rings) == 0 {
		return nil, nil
	}
	paths := make([]*geom.Path, len(rings))
	for i, r := range rings {
		paths[i] = pathFromRing(subject, r)
	}
	return paths, nil
}

// clipOpenPath flattens subject to a polyline and keeps every sub-segment
// lying inside clipRing (non-zero winding), splitting at each boundary
// crossing. Degenerate (single-point) pieces are dropped.
func clipOpenPath(clipRing []geom.Point, subject *geom.Path) []*geom.Path {
	poly := flattenToPolyline(subject)
	if len(poly) < 2 {
		return nil
	}

	var pieces [][]geom.Point
	var cur []geom.Point
	appendPoint := func(p geom.Point) {
		if len(cur) == 0 || cur[len(cur)-1] != p {
			cur = append(cur, p)
		}
	}

	prevInside := Inside(poly[0], clipRing, NonZeroWinding)
	if prevInside {
		appendPoint(poly[0])
	}
	for i := 1; i < len(poly); i++ {
		a, b := poly[i-1], poly[i]
		curInside := Inside(b, clipRing, NonZeroWinding)

		if prevInside != curInside {
			if x, ok := boundaryCrossing(clipRing, a, b); ok {
				appendPoint(x)
			}
		}
		if curInside {
			appendPoint(b)
		} else if len(cur) > 0 {
			if len(cur) >= 2 {
				pieces = append(pieces, cur)
			}
			cur = nil
		}
		prevInside = curInside
	}
	if len(cur) >= 2 {
		pieces = append(pieces, cur)
	}

	paths := make([]*geom.Path, 0, len(pieces))
	for _, piece := range pieces {
		paths = append(paths, openPathFromPolyline(subject, piece))
	}
	return paths
}

// boundaryCrossing finds where segment a->b first crosses clipRing's
// boundary, used to split an open polyline exactly at the clip edge.
func boundaryCrossing(clipRing []geom.Point, a, b geom.Point) (geom.Point, bool) {
	seg := geom.LineSegment{P1: a, P2: b}
	n := len(clipRing)
	best, found := geom.Point{}, false
	bestDist := 0.0
	for i := 0; i < n; i++ {
		edge := geom.LineSegment{P1: clipRing[i], P2: clipRing[(i+1)%n]}
		if p, ok := seg.Intersect(edge); ok {
			d := a.DistanceTo(p)
			if !found || d < bestDist {
				best, bestDist, found = p, d, true
			}
		}
	}
	return best, found
}

// flattenToPolyline walks p's commands, replacing each Bezier with its
// flattened line approximation, and returns the resulting vertex sequence
// for the first subpath only.
func flattenToPolyline(p *geom.Path) []geom.Point {
	var out []geom.Point
	seenMove := false
	for _, c := range p.Commands {
		switch c.Type {
		case geom.CmdMove:
			if seenMove {
				return out // only the first subpath is used
			}
			seenMove = true
			out = append(out, c.To)
		case geom.CmdLine:
			out = append(out, c.To)
		case geom.CmdBezier:
			cubic := bezier.Cubic{P0: c.From, P1: c.C1, P2: c.C2, P3: c.To}
			pts := cubic.Flatten(flattenTolerance)
			if len(pts) > 0 {
				out = append(out, pts[1:]...)
			}
		case geom.CmdClose:
			// implicit edge back to the first point is not materialised as a
			// coordinate; callers treat the ring as implicitly closed.
		}
	}
	return out
}

// isConvexCCW reports whether ring, assumed simple, turns consistently
// counter-clockwise at every vertex.
func isConvexCCW(ring []geom.Point) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a := ring[i]
		b := ring[(i+1)%n]
		c := ring[(i+2)%n]
		if geom.SignedArea2(a, b, c) < -geom.Epsilon {
			return false
		}
	}
	return true
}

// pathFromRing builds a closed path from ring, copying subject's fill flags.
func pathFromRing(subject *geom.Path, ring []geom.Point) *geom.Path {
	out := subject.CloneEmpty()
	if len(ring) == 0 {
		return out
	}
	out.MoveTo(ring[0])
	for _, p := range ring[1:] {
		out.LineTo(p)
	}
	out.LineTo(ring[0])
	out.Close()
	return out
}

// openPathFromPolyline builds an open path from a polyline, copying
// subject's fill flags.
func openPathFromPolyline(subject *geom.Path, poly []geom.Point) *geom.Path {
	out := subject.CloneEmpty()
	if len(poly) == 0 {
		return out
	}
	out.MoveTo(poly[0])
	for _, p := range poly[1:] {
		out.LineTo(p)
	}
	return out
}
