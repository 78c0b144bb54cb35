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
	"sort"

	"seehuhn.de/go/layout/geom"
)

// listID names one of the two vertex lists a vertex belongs to. Using an
// enum rather than a raw pointer breaks the cyclic doubly-linked structure
// of the textbook algorithm: each vertex carries a (list, index) pair
// instead of a pointer into the other list.
type listID int

const (
	subjectList listID = iota
	clipList
)

// vertex is a Greiner-Hormann clip-intermediate vertex. It exists only for
// the duration of one GreinerHormann call.
type vertex struct {
	p            geom.Point
	intersect    bool
	entry        bool // meaningful only if intersect
	alpha        float32
	neighbour    listID
	neighbourIdx int
	processed    bool
	fake         bool // belongs to a synthetic closing edge of an open polygon
}

// ring is one input polygon plus whether it was originally open (in which
// case the edge from its last point back to its first is synthetic).
type ring struct {
	points []geom.Point
	open   bool
}

type xsect struct {
	point              geom.Point
	alphaSubj, alphaClip float64
	subjEdge, clipEdge int
	fake               bool
}

// GreinerHormann clips subject against clip under the given fill rule,
// supporting two general (possibly non-convex, possibly self-touching)
// polygons. It returns one ring per disjoint output component; holes are
// not merged into a containing ring (the caller composes multi-ring fills
// if that distinction matters to it).
//
// Both rings are given as ordered point lists, implicitly closed: an edge
// always connects the last point back to the first. Pass open=true for a
// ring whose source path was not closed; GreinerHormann will add the
// closing edge itself and mark any intersections found on it as fake, so
// they are used for in/out bookkeeping but never emitted.
func GreinerHormann(subject, clip []geom.Point, subjectOpen, clipOpen bool, rule FillRule) [][]geom.Point {
	subj := ring{points: subject, open: subjectOpen}
	clp := ring{points: clip, open: clipOpen}

	xs := findIntersections(subj, clp)

	if len(xs) == 0 {
		if Inside(firstOrZero(subject), clip, rule) {
			return [][]geom.Point{append([]geom.Point(nil), subject...)}
		}
		if Inside(firstOrZero(clip), subject, rule) {
			return [][]geom.Point{append([]geom.Point(nil), clip...)}
		}
		return nil
	}

	subjVerts, clipVerts := buildVertexLists(subj, clp, xs)
	labelEntryExit(subjVerts, clip, rule)
	labelEntryExit(clipVerts, subject, rule)

	return assembleOutput(subjVerts, clipVerts)
}

func firstOrZero(pts []geom.Point) geom.Point {
	if len(pts) == 0 {
		return geom.Point{}
	}
	return pts[0]
}

// findIntersections computes every intersection between a subject edge and
// a clip edge; an intersection on a fake edge is kept but flagged fake.
// Edge n-1 (last point back to first) is the only edge that can be "fake",
// and only when its ring was marked open.
func findIntersections(subj, clp ring) []xsect {
	var xs []xsect
	ns, nc := len(subj.points), len(clp.points)
	if ns < 2 || nc < 2 {
		return nil
	}
	for i := 0; i < ns; i++ {
		a0, a1 := subj.points[i], subj.points[(i+1)%ns]
		subjFake := subj.open && i == ns-1
		for j := 0; j < nc; j++ {
			b0, b1 := clp.points[j], clp.points[(j+1)%nc]
			clipFake := clp.open && j == nc-1

			seg1 := geom.LineSegment{P1: a0, P2: a1}
			seg2 := geom.LineSegment{P1: b0, P2: b1}
			p, ok := seg1.Intersect(seg2)
			if !ok {
				continue
			}
			xs = append(xs, xsect{
				point:     p,
				alphaSubj: normalizedAlpha(a0, a1, p),
				alphaClip: normalizedAlpha(b0, b1, p),
				subjEdge:  i,
				clipEdge:  j,
				fake:      subjFake || clipFake,
			})
		}
	}
	return xs
}

// normalizedAlpha returns the normalized squared distance of p from edge
// start a along edge a->b, used to order multiple insertions on the same
// edge.
func normalizedAlpha(a, b, p geom.Point) float64 {
	len2 := a.DistanceTo(b)
	len2 *= len2
	if len2 == 0 {
		return 0
	}
	d := a.DistanceTo(p)
	return (d * d) / len2
}

// buildVertexLists splices the intersections found by findIntersections
// into the original point lists and cross-links twin intersection vertices
// by (list, index).
func buildVertexLists(subj, clp ring, xs []xsect) ([]vertex, []vertex) {
	subjVerts := spliceEdges(subj.points, len(xs), func(edge int) []xsect {
		return bySubjEdge(xs, edge)
	}, func(x xsect) float64 { return x.alphaSubj })

	clipVerts := spliceEdges(clp.points, len(xs), func(edge int) []xsect {
		return byClipEdge(xs, edge)
	}, func(x xsect) float64 { return x.alphaClip })

	// cross-link: for each xsect, find its position in both lists. Matching
	// by coordinate is safe here because duplicate-coordinate
	// self-intersections on the same ring are pathological inputs outside
	// this algorithm's scope.
	for k := range xs {
		si := findUnclaimed(subjVerts, xs[k].point)
		ci := findUnclaimed(clipVerts, xs[k].point)
		if si >= 0 && ci >= 0 {
			subjVerts[si].neighbour = clipList
			subjVerts[si].neighbourIdx = ci
			subjVerts[si].processed = true
			clipVerts[ci].neighbour = subjectList
			clipVerts[ci].neighbourIdx = si
			clipVerts[ci].processed = true
		}
	}
	// processed is reused below as a "claimed during wiring" scratch flag;
	// clear it so labelEntryExit starts from a clean slate.
	for i := range subjVerts {
		subjVerts[i].processed = false
	}
	for i := range clipVerts {
		clipVerts[i].processed = false
	}
	return subjVerts, clipVerts
}

// findUnclaimed returns the index of the first not-yet-claimed intersection
// vertex at point p, marking nothing itself (callers claim via processed).
func findUnclaimed(verts []vertex, p geom.Point) int {
	for i, v := range verts {
		if v.intersect && v.p == p && !v.processed {
			return i
		}
	}
	return -1
}

func bySubjEdge(xs []xsect, edge int) []xsect {
	var out []xsect
	for _, x := range xs {
		if x.subjEdge == edge {
			out = append(out, x)
		}
	}
	return out
}

func byClipEdge(xs []xsect, edge int) []xsect {
	var out []xsect
	for _, x := range xs {
		if x.clipEdge == edge {
			out = append(out, x)
		}
	}
	return out
}

// spliceEdges builds the final vertex list for one ring: each original
// vertex, followed by the intersections on the edge leaving it, sorted by
// ascending alpha.
func spliceEdges(points []geom.Point, totalX int, onEdge func(int) []xsect, alphaOf func(xsect) float64) []vertex {
	out := make([]vertex, 0, len(points)+totalX)
	for i, p := range points {
		out = append(out, vertex{p: p})
		ins := onEdge(i)
		sort.Slice(ins, func(a, b int) bool { return alphaOf(ins[a]) < alphaOf(ins[b]) })
		for _, x := range ins {
			out = append(out, vertex{
				p:         x.point,
				intersect: true,
				alpha:     float32(alphaOf(x)),
				fake:      x.fake,
			})
		}
	}
	return out
}

// labelEntryExit determines whether list[0]'s point lies inside other
// (the opposing polygon) under rule, then walks list in order toggling
// in/out status at every intersection, recording whether each one is an
// entry or exit point.
func labelEntryExit(list []vertex, other []geom.Point, rule FillRule) {
	if len(list) == 0 {
		return
	}
	startInside := Inside(list[0].p, other, rule)
	nextIsEntry := !startInside
	for i := range list {
		if list[i].intersect {
			list[i].entry = nextIsEntry
			nextIsEntry = !nextIsEntry
		}
	}
}

// assembleOutput walks unprocessed non-fake intersections, tracing entry
// and following the documented forward/backward rule, until every non-fake
// intersection has been consumed.
func assembleOutput(subjVerts, clipVerts []vertex) [][]geom.Point {
	lists := [2][]vertex{subjVerts, clipVerts}

	var results [][]geom.Point
	for {
		startList, startIdx := findUnprocessedIntersection(lists)
		if startList < 0 {
			break
		}
		results = append(results, traceComponent(&lists, startList, startIdx))
	}
	return results
}

func findUnprocessedIntersection(lists [2][]vertex) (int, int) {
	for li := 0; li < 2; li++ {
		for i, v := range lists[li] {
			if v.intersect && !v.fake && !v.processed {
				return li, i
			}
		}
	}
	return -1, -1
}

func traceComponent(lists *[2][]vertex, startList, startIdx int) []geom.Point {
	var out []geom.Point
	curList, curIdx := startList, startIdx
	first := true
	for {
		v := lists[curList][curIdx]
		if !first && curList == startList && curIdx == startIdx {
			break
		}
		first = false

		if v.intersect {
			lists[curList][curIdx].processed = true
			lists[v.neighbour][v.neighbourIdx].processed = true
			curList, curIdx = v.neighbour, v.neighbourIdx
			forward := lists[curList][curIdx].entry
			for {
				vv := lists[curList][curIdx]
				if !vv.fake {
					out = append(out, vv.p)
				}
				next := advance(len(lists[curList]), curIdx, forward)
				if lists[curList][next].intersect {
					curIdx = next
					break
				}
				curIdx = next
				if curIdx == startIdx && curList == startList {
					return out
				}
			}
		}
	}
	return out
}

func advance(n, idx int, forward bool) int {
	if forward {
		return (idx + 1) % n
	}
	return (idx - 1 + n) % n
}
