// Package mapgraph provides the editable planar graph behind the map editor:
// an ordered vertex sequence of grid points and an ordered sequence of
// undirected edges between vertex positions.
//
// Identity model:
//
//	A vertex is identified by its position in the vertex sequence. Deleting
//	vertex k therefore renumbers every later vertex, and DeleteVertex
//	rewrites every edge endpoint > k as part of the same call.
//
// Invariants (hold after every mutating call):
//
//  1. every edge endpoint is < VertexCount();
//  2. no two edges join the same unordered pair;
//  3. no edge joins a vertex to itself;
//  4. no two vertices share a position.
//
// Core methods:
//
//	// Vertex lifecycle
//	AddVertex(p geometry.Point) (int, error)   // O(V)
//	DeleteVertex(i int) error                  // O(V+E)
//
//	// Edge lifecycle
//	AddEdge(i, j int) error                    // O(1) duplicate check
//	DeleteEdge(e Edge) error                   // O(E)
//	HasEdge(i, j int) bool                     // O(1)
//
//	// Hit-testing
//	FindVertexNear(x, y, tol float64) (int, bool)  // O(V), first in insertion order
//	FindEdgeNear(x, y, tol float64) (Edge, bool)   // O(E), first in insertion order
//
//	// Snapshots and analysis
//	Vertices() []geometry.Point; Edges() []Edge; Clone() *Store
//	Degree(i int) (int, error); Components() [][]int; Bounds() (lo, hi geometry.Point, ok bool)
//	Validate() error
//
//	// Maintenance
//	Clear()
//
// Hooks:
//
//	OnVertexRemoved registers a callback invoked after DeleteVertex has
//	finished renumbering, so index holders (a pending selection) can follow.
//
// Errors:
//
//	ErrOutOfRange      - vertex index outside [0, VertexCount()).
//	ErrDuplicateVertex - a vertex already sits on the requested position.
//	ErrDuplicateEdge   - the unordered pair is already connected.
//	ErrSelfLoop        - both endpoints are the same vertex.
//	ErrEdgeNotFound    - DeleteEdge target absent.
//	ErrInvalidGraph    - Validate found a broken invariant.
//
// A Store is not safe for concurrent use; one owner (the editor) mutates it.
package mapgraph
