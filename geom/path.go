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

import "math"

// CommandType identifies the kind of a path Command, a closed sum type of
// {Move, Line, Bezier, Close}.
type CommandType int

const (
	CmdMove CommandType = iota
	CmdLine
	CmdBezier
	CmdClose
)

// Command is one entry of a Path. Only the fields relevant to Type are
// populated; for CmdMove that is To, for CmdLine it is From/To, for
// CmdBezier it is From/C1/C2/To, and CmdClose uses none.
type Command struct {
	Type CommandType
	From Point
	C1   Point
	C2   Point
	To   Point
}

// Move returns a CmdMove command to p.
func Move(p Point) Command { return Command{Type: CmdMove, To: p} }

// Line returns a CmdLine command from 'from' to 'to'.
func Line(from, to Point) Command { return Command{Type: CmdLine, From: from, To: to} }

// Bezier returns a CmdBezier command for a cubic curve with the given start,
// two control points, and end point.
func Bezier(start, c1, c2, end Point) Command {
	return Command{Type: CmdBezier, From: start, C1: c1, C2: c2, To: end}
}

// CloseCmd is the singleton CmdClose command.
var CloseCmd = Command{Type: CmdClose}

// FillingRule selects how a self-intersecting path determines its interior.
type FillingRule int

const (
	NonZeroWinding FillingRule = iota
	EvenOdd
)

// Path is an ordered sequence of drawing commands, produced by the external
// parser and immutable afterward. The IsDrawnAsRectangle flag is derived
// structurally from Commands and memoised on first access.
type Path struct {
	Commands    []Command
	IsClipping  bool
	IsFilled    bool
	FillingRule FillingRule

	rectChecked bool
	isRect      bool
}

// NewPath returns an empty, open, non-clipping, non-filled path using the
// non-zero winding rule.
func NewPath() *Path {
	return &Path{}
}

// CloneEmpty returns a new path with the same flags (IsClipping, IsFilled,
// FillingRule) as p but no commands.
func (p *Path) CloneEmpty() *Path {
	return &Path{
		IsClipping:  p.IsClipping,
		IsFilled:    p.IsFilled,
		FillingRule: p.FillingRule,
	}
}

// MoveTo appends a Move command and starts a new subpath.
func (p *Path) MoveTo(pt Point) *Path {
	p.Commands = append(p.Commands, Move(pt))
	p.rectChecked = false
	return p
}

// LineTo appends a Line command from the path's current point to pt.
// The caller must have called MoveTo first.
func (p *Path) LineTo(pt Point) *Path {
	from := p.currentPoint()
	p.Commands = append(p.Commands, Line(from, pt))
	p.rectChecked = false
	return p
}

// CurveTo appends a cubic Bezier command from the current point through
// control points c1, c2 to end.
func (p *Path) CurveTo(c1, c2, end Point) *Path {
	from := p.currentPoint()
	p.Commands = append(p.Commands, Bezier(from, c1, c2, end))
	p.rectChecked = false
	return p
}

// Close appends a Close command, connecting the current point back to the
// start of the current subpath.
func (p *Path) Close() *Path {
	p.Commands = append(p.Commands, CloseCmd)
	p.rectChecked = false
	return p
}

// Rectangle appends the four axis-aligned line commands (plus a leading
// Move and a trailing Close) describing the given rectangle, a convenience matching
// the common "thin filled bar" and ruling shapes.
func (p *Path) Rectangle(r Rectangle) *Path {
	p.MoveTo(r.BottomLeft)
	p.LineTo(r.BottomRight)
	p.LineTo(r.TopRight)
	p.LineTo(r.TopLeft)
	p.LineTo(r.BottomLeft)
	p.Close()
	return p
}

// currentPoint returns the endpoint of the most recently appended command,
// or the zero point if the path is empty.
func (p *Path) currentPoint() Point {
	if len(p.Commands) == 0 {
		return Point{}
	}
	last := p.Commands[len(p.Commands)-1]
	switch last.Type {
	case CmdClose:
		// walk back to the most recent Move
		for i := len(p.Commands) - 1; i >= 0; i-- {
			if p.Commands[i].Type == CmdMove {
				return p.Commands[i].To
			}
		}
		return Point{}
	default:
		return last.To
	}
}

// IsClosed reports whether the path ends with a Close command (or the last
// subpath returns to its starting point).
func (p *Path) IsClosed() bool {
	if len(p.Commands) == 0 {
		return false
	}
	if p.Commands[len(p.Commands)-1].Type == CmdClose {
		return true
	}
	var start Point
	haveStart := false
	for _, c := range p.Commands {
		if c.Type == CmdMove {
			start = c.To
			haveStart = true
		}
	}
	return haveStart && p.currentPoint() == start
}

// IsDrawnAsRectangle reports whether the path consists of exactly four
// axis-aligned line commands forming a closed rectangle (an optional
// leading Move and trailing Close are permitted). The result is computed
// once and cached.
func (p *Path) IsDrawnAsRectangle() bool {
	if !p.rectChecked {
		p.isRect = computeDrawnAsRectangle(p.Commands)
		p.rectChecked = true
	}
	return p.isRect
}

func computeDrawnAsRectangle(cmds []Command) bool {
	var lines []Command
	for _, c := range cmds {
		switch c.Type {
		case CmdMove, CmdClose:
			continue
		case CmdLine:
			lines = append(lines, c)
		default:
			return false // any Bezier disqualifies
		}
	}
	if len(lines) != 4 {
		return false
	}
	for i, l := range lines {
		horiz := math.Abs(l.To.Y-l.From.Y) < Epsilon
		vert := math.Abs(l.To.X-l.From.X) < Epsilon
		if !horiz && !vert {
			return false
		}
		next := lines[(i+1)%4]
		if l.To != next.From {
			return false
		}
	}
	// must close: last segment's end must equal first segment's start
	if lines[3].To != lines[0].From {
		return false
	}
	// opposite sides axis must alternate (h,v,h,v or v,h,v,h)
	h0 := math.Abs(lines[0].To.Y-lines[0].From.Y) < Epsilon
	for i := 1; i < 4; i++ {
		hi := math.Abs(lines[i].To.Y-lines[i].From.Y) < Epsilon
		if (i%2 == 0) != (hi == h0) {
			return false
		}
	}
	return true
}

// GetBoundingRectangle returns the smallest axis-aligned rectangle
// containing every command point of the path, Bezier control points
// included (so a curve's box may be larger than the curve itself), or
// false if the path has no commands.
func (p *Path) GetBoundingRectangle() (Rectangle, bool) {
	first := true
	var minX, minY, maxX, maxY float64
	visit := func(pt Point) {
		if first {
			minX, maxX = pt.X, pt.X
			minY, maxY = pt.Y, pt.Y
			first = false
			return
		}
		minX, maxX = min(minX, pt.X), max(maxX, pt.X)
		minY, maxY = min(minY, pt.Y), max(maxY, pt.Y)
	}
	for _, c := range p.Commands {
		switch c.Type {
		case CmdMove:
			visit(c.To)
		case CmdLine:
			visit(c.From)
			visit(c.To)
		case CmdBezier:
			visit(c.From)
			visit(c.C1)
			visit(c.C2)
			visit(c.To)
		}
	}
	if first {
		return Rectangle{}, false
	}
	return NewAxisAligned(minX, minY, maxX, maxY), true
}

// Transform returns a copy of p with every coordinate mapped through m.
// Flags (IsClipping, IsFilled, FillingRule) are preserved; the rectangle
// memoisation is reset since rotation can turn a rectangle into a
// non-axis-aligned quadrilateral.
func (p *Path) Transform(m Matrix) *Path {
	out := p.CloneEmpty()
	out.Commands = make([]Command, len(p.Commands))
	for i, c := range p.Commands {
		nc := c
		switch c.Type {
		case CmdMove:
			nc.To = m.Apply(c.To)
		case CmdLine:
			nc.From = m.Apply(c.From)
			nc.To = m.Apply(c.To)
		case CmdBezier:
			nc.From = m.Apply(c.From)
			nc.C1 = m.Apply(c.C1)
			nc.C2 = m.Apply(c.C2)
			nc.To = m.Apply(c.To)
		}
		out.Commands[i] = nc
	}
	return out
}

// Points returns every vertex referenced by the path's Line and Bezier
// commands' endpoints (control points excluded), in order. Useful for
// hull/MBR computation over a path's outline.
func (p *Path) Points() []Point {
	var pts []Point
	for _, c := range p.Commands {
		switch c.Type {
		case CmdMove, CmdLine:
			pts = append(pts, c.To)
		case CmdBezier:
			pts = append(pts, c.To)
		}
	}
	return pts
}
