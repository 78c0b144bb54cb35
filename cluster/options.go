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

// Package cluster builds nearest-neighbour graphs over page elements and
// groups them into connected components, the basis for word/line/block
// text grouping and for axis-aligned rectangle coalescing.
package cluster

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Options configures the parallel nearest-neighbour edge construction step.
type Options struct {
	// Parallelism sets the number of concurrent workers used to compute
	// edges. -1 means unbounded (one goroutine per element, still subject
	// to the Go scheduler's GOMAXPROCS); 0 means runtime.GOMAXPROCS(0);
	// a positive value is used as an exact cap via errgroup.SetLimit.
	Parallelism int

	// Context, if non-nil, is checked for cancellation between edges; a
	// cancelled context stops further edge computation and the call
	// returns ctx.Err(). Long-running clipping or table-extraction phases
	// are not cancellable through this mechanism, only edge construction.
	Context context.Context
}

// newGroup returns an errgroup.Group configured per opts, plus the context
// to check for cancellation (context.Background() if opts.Context is nil).
func newGroup(opts Options, n int) (*errgroup.Group, context.Context) {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	g, ctx := errgroup.WithContext(ctx)
	switch {
	case opts.Parallelism < 0:
		g.SetLimit(n) // "unbounded": one goroutine per element, scheduler-limited
	case opts.Parallelism == 0:
		g.SetLimit(runtime.GOMAXPROCS(0))
	default:
		g.SetLimit(opts.Parallelism)
	}
	return g, ctx
}
