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

package kdtree

import "container/heap"

// maxHeap is a bounded max-heap of Match values, ordered by descending
// Distance so the current worst-of-the-best-k sits at index 0. KNearest
// uses it to prune: once it holds k items, any candidate farther than the
// root is provably outside the final answer.
type maxHeap struct {
	items []Match
}

func (h maxHeap) Len() int            { return len(h.items) }
func (h maxHeap) Less(i, j int) bool  { return h.items[i].Distance > h.items[j].Distance }
func (h maxHeap) Swap(i, j int)       { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *maxHeap) Push(x interface{}) { h.items = append(h.items, x.(Match)) }
func (h *maxHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	return item
}

// push inserts m, then evicts the current worst match if the heap now holds
// more than limit items.
func (h *maxHeap) push(m Match, limit int) {
	heap.Push(h, m)
	if h.Len() > limit {
		heap.Pop(h)
	}
}
