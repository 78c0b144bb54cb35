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

package cluster

// Adjacency builds the undirected neighbour list implied by a directed
// edges array (edges[i] = j, or -1 for no edge): adj[i] contains edges[i]
// (if present) plus every k with edges[k] == i.
func Adjacency(edges []int) [][]int {
	n := len(edges)
	adj := make([][]int, n)
	for i, j := range edges {
		if j < 0 {
			continue
		}
		adj[i] = append(adj[i], j)
		adj[j] = append(adj[j], i)
	}
	return adj
}

// Components runs iterative DFS over the undirected graph implied by edges
// and returns its connected components, each a list of original indices in
// the order the DFS pops them off its stack. Every index from 0 to len(edges)-1 appears in exactly
// one component, including isolated elements (their own singleton
// component).
func Components(edges []int) [][]int {
	adj := Adjacency(edges)
	n := len(adj)
	visited := make([]bool, n)
	var components [][]int

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		var comp []int
		stack := []int{start}
		visited[start] = true
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, cur)
			for _, nb := range adj[cur] {
				if !visited[nb] {
					visited[nb] = true
					stack = append(stack, nb)
				}
			}
		}
		components = append(components, comp)
	}
	return components
}

// Group maps edges-derived index components back onto the original items,
// a convenience for callers that built edges over items via EdgesBy1NN /
// EdgesByKNN / EdgesByLine and want the final grouped-by-component slices.
func Group[T any](items []T, components [][]int) [][]T {
	out := make([][]T, len(components))
	for i, comp := range components {
		group := make([]T, len(comp))
		for j, idx := range comp {
			group[j] = items[idx]
		}
		out[i] = group
	}
	return out
}
