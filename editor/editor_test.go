package editor_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/worlded/config"
	"github.com/katalvlaran/worlded/editor"
	"github.com/katalvlaran/worlded/geometry"
	"github.com/katalvlaran/worlded/mapfile"
	"github.com/katalvlaran/worlded/mapgraph"
)

func newEditor(opts ...editor.Option) *editor.Editor {
	return editor.New(config.Default().Editor, opts...)
}

// triangle places vertices at (20,20), (100,20), (60,80) and connects all three.
func triangle(t *testing.T, opts ...editor.Option) *editor.Editor {
	t.Helper()
	e := newEditor(opts...)
	for _, xy := range [][2]float64{{21, 19}, {99, 22}, {58, 81}} {
		require.True(t, e.PrimaryClick(xy[0], xy[1]).OK())
	}
	connect(t, e, 20, 20, 100, 20)
	connect(t, e, 100, 20, 60, 80)
	connect(t, e, 20, 20, 60, 80)

	return e
}

func connect(t *testing.T, e *editor.Editor, x1, y1, x2, y2 float64) {
	t.Helper()
	require.True(t, e.SecondaryClick(x1, y1).OK())
	st := e.SecondaryClick(x2, y2)
	require.True(t, st.OK(), st.Message)
}

func TestPrimaryClick_SnapsAndRefusesStacking(t *testing.T) {
	e := newEditor()

	st := e.PrimaryClick(12, 12)
	assert.Equal(t, editor.Info, st.Level)
	assert.Equal(t, "Vertex added.", st.Message)

	st = e.PrimaryClick(28, 19)
	assert.Equal(t, editor.Warn, st.Level)
	assert.ErrorIs(t, st.Err, mapgraph.ErrDuplicateVertex)
	assert.Equal(t, []geometry.Point{{X: 20, Y: 20}}, e.Vertices())
}

func TestSecondaryClick_Protocol(t *testing.T) {
	e := newEditor()
	e.PrimaryClick(20, 20)
	e.PrimaryClick(100, 20)

	st := e.SecondaryClick(22, 18)
	assert.Equal(t, "Vertex 0 selected. Right-click another vertex to connect.", st.Message)
	v, ok := e.Pending()
	assert.True(t, ok)
	assert.Equal(t, 0, v)

	st = e.SecondaryClick(101, 21)
	assert.Equal(t, "Line added between vertex 0 and 1.", st.Message)
	assert.Equal(t, []mapgraph.Edge{{A: 0, B: 1}}, e.Lines())
	_, ok = e.Pending()
	assert.False(t, ok)

	// Reverse order is the same line.
	e.SecondaryClick(100, 20)
	st = e.SecondaryClick(20, 20)
	assert.Equal(t, editor.Warn, st.Level)
	assert.Equal(t, "Line already exists.", st.Message)
	assert.Len(t, e.Lines(), 1)
	_, ok = e.Pending()
	assert.False(t, ok, "selection resets after a duplicate")
}

func TestSecondaryClick_ToggleAndEmptySpace(t *testing.T) {
	e := newEditor()
	e.PrimaryClick(20, 20)

	e.SecondaryClick(20, 20)
	st := e.SecondaryClick(20, 20)
	assert.Equal(t, "Selection cleared.", st.Message)
	assert.Empty(t, e.Lines())

	e.SecondaryClick(20, 20)
	st = e.SecondaryClick(300, 300)
	assert.Equal(t, "Selection cleared.", st.Message)
	_, ok := e.Pending()
	assert.False(t, ok)

	st = e.SecondaryClick(300, 300)
	assert.Equal(t, "No vertex here.", st.Message)
}

// TestDoubleClick_VertexCascade deletes the middle vertex of a triangle.
func TestDoubleClick_VertexCascade(t *testing.T) {
	e := triangle(t)

	st := e.DoubleClick(100, 20)
	assert.Equal(t, "Vertex and connected lines deleted.", st.Message)
	assert.Equal(t, []geometry.Point{{X: 20, Y: 20}, {X: 60, Y: 80}}, e.Vertices())
	assert.Equal(t, []mapgraph.Edge{{A: 0, B: 1}}, e.Lines())
	assert.NoError(t, e.Validate())
}

func TestDoubleClick_LineAndNothing(t *testing.T) {
	e := triangle(t)

	st := e.DoubleClick(60, 21)
	assert.Equal(t, "Line deleted.", st.Message)
	assert.Equal(t, []mapgraph.Edge{{A: 1, B: 2}, {A: 0, B: 2}}, e.Lines())

	st = e.DoubleClick(500, 500)
	assert.Equal(t, editor.Warn, st.Level)
	assert.Equal(t, "Double-click: No vertex or line found at this position.", st.Message)
	assert.Len(t, e.Lines(), 2)
}

func TestDeleteLine_NotFound(t *testing.T) {
	e := triangle(t)
	st := e.DeleteLine(mapgraph.Edge{A: 1, B: 2})
	require.True(t, st.OK())

	st = e.DeleteLine(mapgraph.Edge{A: 2, B: 1})
	assert.Equal(t, editor.Warn, st.Level)
	assert.ErrorIs(t, st.Err, mapgraph.ErrEdgeNotFound)
	assert.Len(t, e.Lines(), 2)
}

// TestDoubleClick_PendingVertexDeleted drops a selection whose vertex vanished
// and shifts one that sits above the deleted index.
func TestDoubleClick_PendingVertexDeleted(t *testing.T) {
	e := triangle(t)

	e.SecondaryClick(60, 80) // vertex 2 pending
	e.DoubleClick(20, 20)    // delete vertex 0
	v, ok := e.Pending()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	e.DoubleClick(60, 80)
	_, ok = e.Pending()
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	e := triangle(t)
	e.SecondaryClick(20, 20)

	st := e.Clear()
	assert.Equal(t, "Canvas cleared.", st.Message)
	assert.Empty(t, e.Vertices())
	assert.Empty(t, e.Lines())
	_, ok := e.Pending()
	assert.False(t, ok)
	assert.True(t, e.Dirty())
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.json")
	e := triangle(t)

	assert.Equal(t, "Untitled - WorldEd Map Editor", e.Title())
	st := e.Save()
	assert.Equal(t, editor.Error, st.Level)
	assert.ErrorIs(t, st.Err, editor.ErrNoPath)

	st = e.SaveAs(path)
	require.True(t, st.OK(), st.Message)
	assert.Equal(t, "Map saved to world.json", st.Message)
	assert.Equal(t, "world.json - WorldEd Map Editor", e.Title())
	assert.False(t, e.Dirty())

	e.PrimaryClick(200, 200)
	assert.True(t, e.Dirty())
	require.True(t, e.Save().OK())

	other := newEditor(editor.WithStrictLoad(true))
	other.PrimaryClick(500, 500)
	other.SecondaryClick(500, 500)
	st = other.Open(path)
	require.True(t, st.OK(), st.Message)
	assert.Equal(t, "Map loaded from world.json", st.Message)
	assert.Equal(t, e.Vertices(), other.Vertices())
	assert.Equal(t, e.Lines(), other.Lines())
	assert.Equal(t, path, other.Path())
	_, ok := other.Pending()
	assert.False(t, ok, "open resets the selection")
}

// TestOpen_FailureKeepsState checks every load failure leaves the map intact.
func TestOpen_FailureKeepsState(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
		return p
	}
	cases := []struct {
		name string
		path string
		err  error
		msg  string
	}{
		{"NotFound", filepath.Join(dir, "missing.json"), mapfile.ErrIO, "File not found: " + filepath.Join(dir, "missing.json")},
		{"MissingField", write("a.json", `{"vertices": []}`), mapfile.ErrMissingField, "Invalid map file format. Missing 'vertices' or 'lines'."},
		{"BadJSON", write("b.json", `{"vertices": [}`), mapfile.ErrMalformedDocument, "Could not decode map data. The file may be corrupted or not a valid JSON."},
		{"Dangling", write("c.json", `{"vertices": [[0,0]], "lines": [[0,3]]}`), mapgraph.ErrInvalidGraph, "Could not decode map data. The file may be corrupted or not a valid JSON."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := triangle(t, editor.WithStrictLoad(true))
			e.SecondaryClick(20, 20)
			before := e.Vertices()

			st := e.Open(tc.path)
			assert.Equal(t, editor.Error, st.Level)
			assert.ErrorIs(t, st.Err, tc.err)
			assert.Equal(t, tc.msg, st.Message)
			assert.Equal(t, before, e.Vertices())
			assert.Len(t, e.Lines(), 3)
			assert.Equal(t, "", e.Path())
			v, ok := e.Pending()
			assert.True(t, ok)
			assert.Equal(t, 0, v)
		})
	}
}

func TestOpen_TrustingModeLoadsDangling(t *testing.T) {
	path := filepath.Join(t.TempDir(), "d.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"vertices": [[0,0]], "lines": [[0,3]]}`), 0o644))

	e := newEditor(editor.WithStrictLoad(false))
	require.True(t, e.Open(path).OK())
	assert.Len(t, e.Lines(), 1)
	assert.ErrorIs(t, e.Validate(), mapgraph.ErrInvalidGraph)
	// the stale line is skipped by hit-testing
	assert.Equal(t, editor.Warn, e.DoubleClick(0, 30).Level)
}

func TestSaveAs_FailureKeepsPath(t *testing.T) {
	e := triangle(t)
	st := e.SaveAs(filepath.Join(t.TempDir(), "no", "such", "dir.json"))
	assert.Equal(t, editor.Error, st.Level)
	assert.ErrorIs(t, st.Err, mapfile.ErrIO)
	assert.Equal(t, "", e.Path())
	assert.True(t, e.Dirty())
}

func TestStatsAndAbout(t *testing.T) {
	e := triangle(t)
	e.PrimaryClick(400, 400)

	st := e.Stats()
	assert.Equal(t, 4, st.Vertices)
	assert.Equal(t, 3, st.Lines)
	assert.Equal(t, 2, st.Components)
	assert.Equal(t, 1, st.Isolated)
	assert.True(t, st.HasBounds)
	assert.Equal(t, geometry.Point{X: 20, Y: 20}, st.Min)
	assert.Equal(t, geometry.Point{X: 400, Y: 400}, st.Max)

	assert.Equal(t, 2, st.MaxDegree)
	assert.Equal(t, 0, st.OffCanvas)

	about := editor.About()
	assert.Equal(t, "WorldEd", about.Name)
	assert.Equal(t, editor.Version, about.Version)
}

func TestStats_DegreeAndCanvas(t *testing.T) {
	e := newEditor()
	for _, xy := range [][2]float64{{20, 20}, {100, 20}, {60, 80}, {1000, 20}, {-40, 300}} {
		require.True(t, e.PrimaryClick(xy[0], xy[1]).OK())
	}
	connect(t, e, 20, 20, 100, 20)
	connect(t, e, 20, 20, 60, 80)
	connect(t, e, 20, 20, 1000, 20)

	st := e.Stats()
	assert.Equal(t, 3, st.MaxDegree)
	assert.Equal(t, 2, st.OffCanvas, "(1000,20) is past the 900px width, (-40,300) left of 0")
	assert.Equal(t, 2, st.Components)
	assert.Equal(t, 1, st.Isolated)

	assert.Equal(t, 0, newEditor().Stats().MaxDegree)
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "info", editor.Info.String())
	assert.Equal(t, "warn", editor.Warn.String())
	assert.Equal(t, "error", editor.Error.String())
	assert.Equal(t, "unknown", editor.Level(9).String())
}
