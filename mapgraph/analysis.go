// File: analysis.go
// Role: Read-only summaries of a Store (degrees, components, bounds) and the
//       invariant check used after loading untrusted documents.

package mapgraph

import (
	"fmt"

	"github.com/katalvlaran/worlded/geometry"
)

// Degree returns the number of edges touching vertex i.
// Complexity: O(E).
func (s *Store) Degree(i int) (int, error) {
	if !s.inRange(i) {
		return 0, fmt.Errorf("%w: %d (have %d vertices)", ErrOutOfRange, i, len(s.vertices))
	}
	n := 0
	for _, e := range s.edges {
		if e.Touches(i) {
			n++
		}
	}

	return n, nil
}

// Components groups vertex indices into connected components. Components are
// ordered by their smallest vertex index and each lists its vertices in BFS
// order from that vertex. An isolated vertex forms its own component.
// Out-of-range edges are ignored.
//
// Time:   O(V+E).
// Memory: O(V+E) for the adjacency lists.
func (s *Store) Components() [][]int {
	n := len(s.vertices)
	adj := make([][]int, n)
	for _, e := range s.edges {
		if !s.inRange(e.A) || !s.inRange(e.B) {
			continue
		}
		adj[e.A] = append(adj[e.A], e.B)
		adj[e.B] = append(adj[e.B], e.A)
	}

	seen := make([]bool, n)
	var comps [][]int
	for start := 0; start < n; start++ {
		if seen[start] {
			continue
		}
		queue := []int{start}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, w := range adj[queue[qi]] {
				if !seen[w] {
					seen[w] = true
					queue = append(queue, w)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// Bounds returns the smallest axis-aligned box containing every vertex.
// ok is false for an empty store.
func (s *Store) Bounds() (lo, hi geometry.Point, ok bool) {
	if len(s.vertices) == 0 {
		return geometry.Point{}, geometry.Point{}, false
	}
	lo, hi = s.vertices[0], s.vertices[0]
	for _, v := range s.vertices[1:] {
		if v.X < lo.X {
			lo.X = v.X
		}
		if v.X > hi.X {
			hi.X = v.X
		}
		if v.Y < lo.Y {
			lo.Y = v.Y
		}
		if v.Y > hi.Y {
			hi.Y = v.Y
		}
	}

	return lo, hi, true
}

// Validate checks every Store invariant and returns the first violation,
// wrapped in ErrInvalidGraph, or nil.
//
// Checks, in order:
//   - vertex positions are unique;
//   - every edge endpoint is a valid index;
//   - no edge is a self-loop;
//   - no unordered pair appears twice.
//
// Complexity: O(V+E).
func (s *Store) Validate() error {
	positions := make(map[geometry.Point]int, len(s.vertices))
	for i, v := range s.vertices {
		if j, dup := positions[v]; dup {
			return fmt.Errorf("%w: vertices %d and %d share position (%d,%d)", ErrInvalidGraph, j, i, v.X, v.Y)
		}
		positions[v] = i
	}

	seen := make(map[pairKey]int, len(s.edges))
	for k, e := range s.edges {
		if !s.inRange(e.A) || !s.inRange(e.B) {
			return fmt.Errorf("%w: edge %d (%d,%d) references a missing vertex", ErrInvalidGraph, k, e.A, e.B)
		}
		if e.A == e.B {
			return fmt.Errorf("%w: edge %d is a self-loop on vertex %d", ErrInvalidGraph, k, e.A)
		}
		if first, dup := seen[e.key()]; dup {
			return fmt.Errorf("%w: edges %d and %d join the same vertices", ErrInvalidGraph, first, k)
		}
		seen[e.key()] = k
	}

	return nil
}
