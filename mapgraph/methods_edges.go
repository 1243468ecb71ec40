// File: methods_edges.go
// Role: Edge lifecycle and read-only edge queries.
// Determinism:
//   - Edges() returns edges in insertion order, endpoints in the order given to AddEdge.

package mapgraph

import "fmt"

// AddEdge connects vertices i and j, storing the pair as (i, j).
//
// Steps:
//  1. Both indices must be valid (ErrOutOfRange).
//  2. i != j (ErrSelfLoop).
//  3. Neither (i,j) nor (j,i) may already exist (ErrDuplicateEdge).
//  4. Append and record the unordered key.
//
// The pair is not normalized: AddEdge(2, 0) stores Edge{A: 2, B: 0}.
// Complexity: O(1) amortized.
func (s *Store) AddEdge(i, j int) error {
	if !s.inRange(i) || !s.inRange(j) {
		return fmt.Errorf("%w: edge (%d,%d) with %d vertices", ErrOutOfRange, i, j, len(s.vertices))
	}
	if i == j {
		return fmt.Errorf("%w: vertex %d", ErrSelfLoop, i)
	}
	e := Edge{A: i, B: j}
	if s.index().Contains(e.key()) {
		return fmt.Errorf("%w: (%d,%d)", ErrDuplicateEdge, i, j)
	}
	s.edges = append(s.edges, e)
	s.index().Add(e.key())

	return nil
}

// HasEdge reports whether i and j are connected, in either order.
// Complexity: O(1).
func (s *Store) HasEdge(i, j int) bool {
	return s.index().Contains(Edge{A: i, B: j}.key())
}

// DeleteEdge removes the first edge joining the same unordered pair as e.
// Returns ErrEdgeNotFound, leaving the store unchanged, if there is none.
// Complexity: O(E).
func (s *Store) DeleteEdge(e Edge) error {
	for k, cur := range s.edges {
		if !cur.Same(e) {
			continue
		}
		s.edges = append(s.edges[:k], s.edges[k+1:]...)
		// A loaded file may carry parallel copies; keep the key while one remains.
		if !s.containsPair(e) {
			s.index().Remove(e.key())
		}

		return nil
	}

	return fmt.Errorf("%w: (%d,%d)", ErrEdgeNotFound, e.A, e.B)
}

// Edges returns a copy of the edge sequence in insertion order.
// Complexity: O(E).
func (s *Store) Edges() []Edge {
	out := make([]Edge, len(s.edges))
	copy(out, s.edges)

	return out
}

// EdgeCount returns the number of edges.
func (s *Store) EdgeCount() int { return len(s.edges) }

func (s *Store) containsPair(e Edge) bool {
	for _, cur := range s.edges {
		if cur.Same(e) {
			return true
		}
	}

	return false
}
