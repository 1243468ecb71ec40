// File: methods_vertices.go
// Role: Vertex lifecycle and read-only vertex queries.
// Determinism:
//   - Vertices() returns positions in index order.
//   - DeleteVertex renumbers edges in a single pass over the edge sequence.

package mapgraph

import (
	"fmt"

	"github.com/katalvlaran/worlded/geometry"
)

// AddVertex appends a vertex at p and returns its index.
//
// Implementation:
//   - Stage 1: Scan existing vertices for an identical position.
//   - Stage 2: Append p; its index is the previous VertexCount().
//
// Behavior highlights:
//   - Stacking is refused: if a vertex already sits at p the store is left
//     unchanged and the existing index is returned with ErrDuplicateVertex.
//
// Errors:
//   - ErrDuplicateVertex: position already occupied (non-fatal).
//
// Complexity:
//   - Time O(V), Space O(1) amortized.
func (s *Store) AddVertex(p geometry.Point) (int, error) {
	for i, v := range s.vertices {
		if v == p {
			return i, fmt.Errorf("%w: (%d,%d) is vertex %d", ErrDuplicateVertex, p.X, p.Y, i)
		}
	}
	s.vertices = append(s.vertices, p)

	return len(s.vertices) - 1, nil
}

// DeleteVertex removes vertex i together with every edge touching it, and
// shifts every edge endpoint greater than i down by one.
//
// Implementation:
//   - Stage 1: Validate i (ErrOutOfRange).
//   - Stage 2: Build the new edge sequence in one pass: drop incident edges,
//     decrement endpoints > i, preserve order.
//   - Stage 3: Remove the vertex, swap in the new edges, rebuild the pair index.
//   - Stage 4: Fire OnVertexRemoved hooks.
//
// Behavior highlights:
//   - The store is never observable half-renumbered: hooks run only after
//     Stage 3.
//
// Errors:
//   - ErrOutOfRange: i < 0 or i >= VertexCount().
//
// Complexity:
//   - Time O(V+E), Space O(E).
func (s *Store) DeleteVertex(i int) error {
	if !s.inRange(i) {
		return fmt.Errorf("%w: %d (have %d vertices)", ErrOutOfRange, i, len(s.vertices))
	}

	kept := make([]Edge, 0, len(s.edges))
	for _, e := range s.edges {
		if e.Touches(i) {
			continue
		}
		if e.A > i {
			e.A--
		}
		if e.B > i {
			e.B--
		}
		kept = append(kept, e)
	}

	s.vertices = append(s.vertices[:i], s.vertices[i+1:]...)
	s.edges = kept
	s.rebuildPairs()

	for _, fn := range s.onVertexRemoved {
		fn(i)
	}

	return nil
}

// Vertex returns the position of vertex i.
func (s *Store) Vertex(i int) (geometry.Point, error) {
	if !s.inRange(i) {
		return geometry.Point{}, fmt.Errorf("%w: %d (have %d vertices)", ErrOutOfRange, i, len(s.vertices))
	}

	return s.vertices[i], nil
}

// Vertices returns a copy of the vertex sequence in index order.
// Complexity: O(V).
func (s *Store) Vertices() []geometry.Point {
	out := make([]geometry.Point, len(s.vertices))
	copy(out, s.vertices)

	return out
}

// VertexCount returns the number of vertices.
func (s *Store) VertexCount() int { return len(s.vertices) }
