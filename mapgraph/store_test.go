package mapgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/worlded/geometry"
	"github.com/katalvlaran/worlded/mapgraph"
)

// Fixture positions reused across tests.
var (
	ptA = geometry.Point{X: 20, Y: 20}
	ptB = geometry.Point{X: 100, Y: 20}
	ptC = geometry.Point{X: 60, Y: 80}
	ptD = geometry.Point{X: 200, Y: 200}
)

// buildTriangle returns a store with vertices [A,B,C] and edges
// [(0,1),(1,2),(0,2)].
func buildTriangle(t *testing.T) *mapgraph.Store {
	t.Helper()
	s := mapgraph.NewStore()
	for _, p := range []geometry.Point{ptA, ptB, ptC} {
		_, err := s.AddVertex(p)
		require.NoError(t, err)
	}
	require.NoError(t, s.AddEdge(0, 1))
	require.NoError(t, s.AddEdge(1, 2))
	require.NoError(t, s.AddEdge(0, 2))

	return s
}

func TestAddVertex_AppendsAndReturnsIndex(t *testing.T) {
	s := mapgraph.NewStore()
	i, err := s.AddVertex(ptA)
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	j, err := s.AddVertex(ptB)
	require.NoError(t, err)
	assert.Equal(t, 1, j)
	assert.Equal(t, []geometry.Point{ptA, ptB}, s.Vertices())
}

// TestAddVertex_Duplicate verifies that stacking is refused and reported.
func TestAddVertex_Duplicate(t *testing.T) {
	s := mapgraph.NewStore()
	_, err := s.AddVertex(ptA)
	require.NoError(t, err)
	_, err = s.AddVertex(ptB)
	require.NoError(t, err)

	i, err := s.AddVertex(ptB)
	assert.ErrorIs(t, err, mapgraph.ErrDuplicateVertex)
	assert.Equal(t, 1, i, "existing index is returned")
	assert.Equal(t, 2, s.VertexCount())
}

// TestAddVertex_SnappedScenario clicks twice inside the same grid cell.
func TestAddVertex_SnappedScenario(t *testing.T) {
	s := mapgraph.NewStore()
	first := geometry.SnapToGrid(12, 12, 20)
	second := geometry.SnapToGrid(28, 19, 20)
	require.Equal(t, geometry.Point{X: 20, Y: 20}, first)
	require.Equal(t, first, second)

	_, err := s.AddVertex(first)
	require.NoError(t, err)
	_, err = s.AddVertex(second)
	assert.ErrorIs(t, err, mapgraph.ErrDuplicateVertex)
	assert.Equal(t, 1, s.VertexCount())
}

func TestAddEdge_Errors(t *testing.T) {
	s := buildTriangle(t)
	cases := []struct {
		name string
		i, j int
		err  error
	}{
		{"NegativeIndex", -1, 0, mapgraph.ErrOutOfRange},
		{"PastEnd", 0, 3, mapgraph.ErrOutOfRange},
		{"SelfLoop", 2, 2, mapgraph.ErrSelfLoop},
		{"SameOrder", 0, 1, mapgraph.ErrDuplicateEdge},
		{"Reversed", 1, 0, mapgraph.ErrDuplicateEdge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, s.AddEdge(tc.i, tc.j), tc.err)
			assert.Equal(t, 3, s.EdgeCount(), "store must be unchanged")
		})
	}
}

// TestAddEdge_NoParallel adds (i,j) then (j,i).
func TestAddEdge_NoParallel(t *testing.T) {
	s := mapgraph.NewStore()
	_, _ = s.AddVertex(ptA)
	_, _ = s.AddVertex(ptB)

	require.NoError(t, s.AddEdge(1, 0))
	assert.ErrorIs(t, s.AddEdge(0, 1), mapgraph.ErrDuplicateEdge)
	assert.Equal(t, 1, s.EdgeCount())
	assert.Equal(t, []mapgraph.Edge{{A: 1, B: 0}}, s.Edges(), "order as given, not normalized")
	assert.True(t, s.HasEdge(0, 1))
	assert.True(t, s.HasEdge(1, 0))
}

// TestDeleteVertex_Cascade removes the middle vertex of a triangle.
func TestDeleteVertex_Cascade(t *testing.T) {
	s := buildTriangle(t)

	require.NoError(t, s.DeleteVertex(1))
	assert.Equal(t, []geometry.Point{ptA, ptC}, s.Vertices())
	assert.Equal(t, []mapgraph.Edge{{A: 0, B: 1}}, s.Edges())
	assert.NoError(t, s.Validate())

	// The pair index follows the renumbering.
	assert.True(t, s.HasEdge(0, 1))
	assert.False(t, s.HasEdge(0, 2))
}

func TestDeleteVertex_RenumbersBothEndpoints(t *testing.T) {
	s := mapgraph.NewStore()
	for _, p := range []geometry.Point{ptA, ptB, ptC, ptD} {
		_, _ = s.AddVertex(p)
	}
	require.NoError(t, s.AddEdge(3, 2))
	require.NoError(t, s.AddEdge(0, 3))
	require.NoError(t, s.AddEdge(1, 2))

	require.NoError(t, s.DeleteVertex(1))
	assert.Equal(t, []mapgraph.Edge{{A: 2, B: 1}, {A: 0, B: 2}}, s.Edges())
	assert.NoError(t, s.AddEdge(0, 1), "pair (0,1) is free after renumbering")
}

func TestDeleteVertex_OutOfRange(t *testing.T) {
	s := buildTriangle(t)
	for _, i := range []int{-1, 3, 100} {
		assert.ErrorIs(t, s.DeleteVertex(i), mapgraph.ErrOutOfRange)
	}
	assert.Equal(t, 3, s.VertexCount())
	assert.Equal(t, 3, s.EdgeCount())
}

// TestDeleteVertex_Hooks checks hooks observe the finished renumbering.
func TestDeleteVertex_Hooks(t *testing.T) {
	s := buildTriangle(t)
	var calls []int
	s.OnVertexRemoved(func(i int) {
		calls = append(calls, i)
		assert.NoError(t, s.Validate())
		assert.Equal(t, 2, s.VertexCount())
	})
	s.OnVertexRemoved(nil)

	require.NoError(t, s.DeleteVertex(0))
	assert.Equal(t, []int{0}, calls)

	_ = s.DeleteVertex(7)
	assert.Equal(t, []int{0}, calls, "failed delete fires no hook")
}

func TestDeleteEdge(t *testing.T) {
	s := buildTriangle(t)

	require.NoError(t, s.DeleteEdge(mapgraph.Edge{A: 2, B: 1}), "reversed order matches")
	assert.Equal(t, []mapgraph.Edge{{A: 0, B: 1}, {A: 0, B: 2}}, s.Edges())
	assert.False(t, s.HasEdge(1, 2))

	err := s.DeleteEdge(mapgraph.Edge{A: 1, B: 2})
	assert.ErrorIs(t, err, mapgraph.ErrEdgeNotFound)
	assert.Equal(t, 2, s.EdgeCount())

	require.NoError(t, s.AddEdge(1, 2), "deleted pair can be re-added")
}

// TestDeleteEdge_LoadedParallel keeps the pair indexed while a copy remains.
func TestDeleteEdge_LoadedParallel(t *testing.T) {
	s := mapgraph.FromSlices(
		[]geometry.Point{ptA, ptB},
		[]mapgraph.Edge{{A: 0, B: 1}, {A: 1, B: 0}},
	)
	require.NoError(t, s.DeleteEdge(mapgraph.Edge{A: 0, B: 1}))
	assert.Equal(t, []mapgraph.Edge{{A: 1, B: 0}}, s.Edges())
	assert.True(t, s.HasEdge(0, 1))
	assert.ErrorIs(t, s.AddEdge(0, 1), mapgraph.ErrDuplicateEdge)
}

func TestClearAndClone(t *testing.T) {
	s := buildTriangle(t)
	c := s.Clone()

	s.Clear()
	assert.Equal(t, 0, s.VertexCount())
	assert.Equal(t, 0, s.EdgeCount())
	assert.False(t, s.HasEdge(0, 1))

	assert.Equal(t, 3, c.VertexCount(), "clone is independent")
	assert.Equal(t, 3, c.EdgeCount())
	assert.True(t, c.HasEdge(2, 0))
}

// TestSnapshotsAreCopies verifies callers cannot mutate the store through snapshots.
func TestSnapshotsAreCopies(t *testing.T) {
	s := buildTriangle(t)
	vs := s.Vertices()
	es := s.Edges()
	vs[0] = ptD
	es[0] = mapgraph.Edge{A: 9, B: 9}

	v, err := s.Vertex(0)
	require.NoError(t, err)
	assert.Equal(t, ptA, v)
	assert.Equal(t, mapgraph.Edge{A: 0, B: 1}, s.Edges()[0])

	_, err = s.Vertex(3)
	assert.ErrorIs(t, err, mapgraph.ErrOutOfRange)
}

func TestEdge_SameAndTouches(t *testing.T) {
	e := mapgraph.Edge{A: 3, B: 5}
	assert.True(t, e.Same(mapgraph.Edge{A: 5, B: 3}))
	assert.True(t, e.Same(e))
	assert.False(t, e.Same(mapgraph.Edge{A: 3, B: 4}))
	assert.True(t, e.Touches(5))
	assert.False(t, e.Touches(4))
}

// TestZeroValueStore uses a Store that was never built with NewStore.
func TestZeroValueStore(t *testing.T) {
	var s mapgraph.Store
	assert.False(t, s.HasEdge(0, 1))
	s.Clear()

	_, err := s.AddVertex(ptA)
	require.NoError(t, err)
	_, err = s.AddVertex(ptB)
	require.NoError(t, err)
	require.NoError(t, s.AddEdge(0, 1))
	assert.True(t, s.HasEdge(1, 0))
	assert.ErrorIs(t, s.AddEdge(1, 0), mapgraph.ErrDuplicateEdge)

	require.NoError(t, s.DeleteEdge(mapgraph.Edge{A: 1, B: 0}))
	assert.False(t, s.HasEdge(0, 1))
}
