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

package hull

import (
	"math"

	"seehuhn.de/go/layout/geom"
)

// MinimumAreaRectangle returns the smallest-area rectangle containing all
// of points, using Den Boer's rotating-calipers variant: the hull is
// computed first, then for each hull edge every hull vertex is projected
// onto that edge; the edge with the smallest resulting bounding area wins.
func MinimumAreaRectangle(points []geom.Point) (geom.Rectangle, error) {
	h, err := GrahamScan(points)
	if err != nil {
		return geom.Rectangle{}, err
	}
	if len(h) == 1 {
		return geom.Rectangle{BottomLeft: h[0], BottomRight: h[0], TopLeft: h[0], TopRight: h[0]}, nil
	}
	if len(h) == 2 {
		return segmentRectangle(h[0], h[1]), nil
	}

	best := math.Inf(1)
	var bestRect geom.Rectangle
	n := len(h)
	for k := 0; k < n; k++ {
		p0 := h[k]
		p1 := h[(k+1)%n]
		v := p1.Sub(p0)
		len2 := v.Dot(v)
		if len2 < geom.Epsilon {
			continue
		}
		// unit normal, 90 degrees CCW from v
		nrm := geom.Point{X: -v.Y, Y: v.X}
		nLen := nrm.Length()
		nrm = geom.Point{X: nrm.X / nLen, Y: nrm.Y / nLen}

		tMin, tMax := math.Inf(1), math.Inf(-1)
		sMax := 0.0
		for _, p := range h {
			w := p.Sub(p0)
			t := w.Dot(v) / len2
			tMin = math.Min(tMin, t)
			tMax = math.Max(tMax, t)
			s := w.Dot(nrm)
			if s > sMax {
				sMax = s
			}
		}

		edgeLen := math.Sqrt(len2)
		width := (tMax - tMin) * edgeLen
		area := width * sMax
		if area < best {
			best = area
			unitV := geom.Point{X: v.X / edgeLen, Y: v.Y / edgeLen}
			base := p0.Add(unitV.Scale(tMin * edgeLen))
			bl := base
			br := base.Add(unitV.Scale(width))
			tl := bl.Add(nrm.Scale(sMax))
			tr := br.Add(nrm.Scale(sMax))
			bestRect = geom.Rectangle{BottomLeft: bl, BottomRight: br, TopLeft: tl, TopRight: tr}
		}
	}
	return bestRect, nil
}

// segmentRectangle returns a zero-width rectangle degenerating to the
// segment a-b (used when the hull itself is a single segment).
func segmentRectangle(a, b geom.Point) geom.Rectangle {
	return geom.Rectangle{BottomLeft: a, BottomRight: b, TopLeft: a, TopRight: b}
}
