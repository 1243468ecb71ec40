// File: query.go
// Role: Hit-testing a pointer position against vertices and edges.

package mapgraph

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/worlded/geometry"
)

// FindVertexNear returns the first vertex, in index order, whose position is
// strictly within tol of (x, y) on both axes (a square hit-box).
// Complexity: O(V).
func (s *Store) FindVertexNear(x, y, tol float64) (int, bool) {
	p := r2.Vec{X: x, Y: y}
	for i, v := range s.vertices {
		if geometry.InSquare(p, v.Vec(), tol) {
			return i, true
		}
	}

	return -1, false
}

// FindEdgeNear returns the first edge, in insertion order, that passes
// geometry.PointNearSegment for (x, y). Edges whose endpoints are out of
// range (possible only in an unvalidated, loaded store) are skipped.
// Complexity: O(E).
func (s *Store) FindEdgeNear(x, y, tol float64) (Edge, bool) {
	p := r2.Vec{X: x, Y: y}
	for _, e := range s.edges {
		if !s.inRange(e.A) || !s.inRange(e.B) {
			continue
		}
		if geometry.PointNearSegment(p, s.vertices[e.A].Vec(), s.vertices[e.B].Vec(), tol) {
			return e, true
		}
	}

	return Edge{}, false
}
