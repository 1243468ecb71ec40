package mapgraph

import (
	"errors"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/katalvlaran/worlded/geometry"
)

// Sentinel errors for map graph operations.
var (
	// ErrOutOfRange indicates an operation referenced a vertex index outside current bounds.
	ErrOutOfRange = errors.New("mapgraph: vertex index out of range")

	// ErrDuplicateVertex indicates a vertex already occupies the requested grid point.
	ErrDuplicateVertex = errors.New("mapgraph: vertex already exists at position")

	// ErrDuplicateEdge indicates the unordered vertex pair is already connected.
	ErrDuplicateEdge = errors.New("mapgraph: edge already exists")

	// ErrSelfLoop indicates an edge from a vertex to itself was requested.
	ErrSelfLoop = errors.New("mapgraph: self-loop not allowed")

	// ErrEdgeNotFound indicates DeleteEdge found no matching edge.
	ErrEdgeNotFound = errors.New("mapgraph: edge not found")

	// ErrInvalidGraph indicates Validate found a violated invariant.
	ErrInvalidGraph = errors.New("mapgraph: invalid graph")
)

// Edge is an undirected connection between vertex indices A and B.
// (A,B) and (B,A) denote the same edge for lookups; the stored order is the
// order the edge was created in.
type Edge struct {
	A, B int
}

// Same reports whether e and o join the same unordered pair.
func (e Edge) Same(o Edge) bool {
	return (e.A == o.A && e.B == o.B) || (e.A == o.B && e.B == o.A)
}

// Touches reports whether i is one of e's endpoints.
func (e Edge) Touches(i int) bool {
	return e.A == i || e.B == i
}

// pairKey is the order-free form of an edge used by the duplicate index.
type pairKey struct {
	lo, hi int
}

func (e Edge) key() pairKey {
	if e.A <= e.B {
		return pairKey{lo: e.A, hi: e.B}
	}

	return pairKey{lo: e.B, hi: e.A}
}

// Store holds the vertex and edge sequences of one map.
// The zero value is an empty store ready to use.
//
// vertices[i] is vertex i; edges keep insertion order. pairs mirrors the
// unordered keys present in edges for O(1) duplicate checks and is rebuilt
// whenever indices are renumbered.
type Store struct {
	vertices []geometry.Point
	edges    []Edge
	pairs    *hashset.Set

	onVertexRemoved []func(index int)
}

// NewStore creates an empty Store.
// Complexity: O(1).
func NewStore() *Store {
	return &Store{pairs: hashset.New()}
}

// FromSlices builds a Store around copies of vertices and edges without
// checking any invariant. It is the loader's entry point; call Validate to
// find out whether the input was consistent.
// Complexity: O(V+E).
func FromSlices(vertices []geometry.Point, edges []Edge) *Store {
	s := &Store{
		vertices: append([]geometry.Point(nil), vertices...),
		edges:    append([]Edge(nil), edges...),
	}
	s.rebuildPairs()

	return s
}

// OnVertexRemoved registers fn to run after DeleteVertex(index) completes.
// Hooks run in registration order and see the already renumbered store.
func (s *Store) OnVertexRemoved(fn func(index int)) {
	if fn == nil {
		return
	}
	s.onVertexRemoved = append(s.onVertexRemoved, fn)
}

// Clear removes every vertex and edge. Registered hooks are kept.
// Complexity: O(1) amortized.
func (s *Store) Clear() {
	s.vertices = nil
	s.edges = nil
	s.index().Clear()
}

// Clone returns a deep copy of the vertex and edge sequences. Hooks are not copied.
// Complexity: O(V+E).
func (s *Store) Clone() *Store {
	return FromSlices(s.vertices, s.edges)
}

// rebuildPairs recomputes the duplicate index from edges.
func (s *Store) rebuildPairs() {
	pairs := s.index()
	pairs.Clear()
	for _, e := range s.edges {
		pairs.Add(e.key())
	}
}

// index returns the pair set, creating it for a zero-value Store.
func (s *Store) index() *hashset.Set {
	if s.pairs == nil {
		s.pairs = hashset.New()
	}
	return s.pairs
}

// inRange reports whether i is a valid vertex index.
func (s *Store) inRange(i int) bool {
	return i >= 0 && i < len(s.vertices)
}
