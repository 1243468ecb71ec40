// Package editor is the controller between a UI front-end and the map model.
//
// An Editor exclusively owns one mapgraph.Store and its selection.State. The
// front-end forwards pointer gestures and file paths; the Editor mutates the
// model, logs, and answers with a Status. Rendering pulls the current
// vertices, edges and pending vertex through the read-only accessors; the
// editor never pushes drawing commands.
//
// Gestures:
//
//	PrimaryClick(x, y)    snap to grid and add a vertex
//	SecondaryClick(x, y)  select / connect vertices; empty space clears the selection
//	DoubleClick(x, y)     delete the vertex under the pointer, else the line under it
//
// An Editor is not safe for concurrent use.
package editor

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/katalvlaran/worlded/config"
	"github.com/katalvlaran/worlded/geometry"
	"github.com/katalvlaran/worlded/logging"
	"github.com/katalvlaran/worlded/mapgraph"
	"github.com/katalvlaran/worlded/selection"
)

// ErrNoPath indicates Save was called before the map had a file.
var ErrNoPath = errors.New("editor: no file path; use Save As")

const appTitle = "WorldEd Map Editor"

// Editor owns the map being edited.
type Editor struct {
	cfg    config.Editor
	strict bool

	store *mapgraph.Store
	sel   *selection.State

	path  string
	dirty bool
}

// Option configures an Editor.
type Option func(*Editor)

// WithStrictLoad makes Open reject maps that break graph invariants.
func WithStrictLoad(strict bool) Option {
	return func(e *Editor) { e.strict = strict }
}

// New returns an editor with an empty, untitled map.
func New(cfg config.Editor, opts ...Option) *Editor {
	e := &Editor{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}
	e.reset(mapgraph.NewStore())

	return e
}

// reset installs s as the current map with a fresh selection.
func (e *Editor) reset(s *mapgraph.Store) {
	e.store = s
	e.sel = selection.New(s)
	e.sel.Attach()
}

// PrimaryClick adds a vertex at the grid point nearest (x, y).
func (e *Editor) PrimaryClick(x, y float64) Status {
	p := geometry.SnapToGrid(x, y, e.cfg.GridSize)
	i, err := e.store.AddVertex(p)
	if err != nil {
		logging.Debugf("add vertex at (%d,%d): %v", p.X, p.Y, err)
		return warn(fmt.Sprintf("A vertex already exists at (%d, %d).", p.X, p.Y), err)
	}
	e.dirty = true
	logging.Debugf("vertex %d added at (%d,%d)", i, p.X, p.Y)

	return info("Vertex added.")
}

// SecondaryClick drives the two-click connect protocol with the vertex under
// (x, y). A click that hits no vertex clears the selection.
func (e *Editor) SecondaryClick(x, y float64) Status {
	v, ok := e.store.FindVertexNear(x, y, e.cfg.VertexTolerance())
	if !ok {
		if e.sel.Reset().Kind == selection.Cleared {
			return info("Selection cleared.")
		}
		return info("No vertex here.")
	}

	out := e.sel.Select(v)
	switch out.Kind {
	case selection.Selected:
		return info(fmt.Sprintf("Vertex %d selected. Right-click another vertex to connect.", v))
	case selection.Deselected:
		return info("Selection cleared.")
	case selection.Connected:
		e.dirty = true
		logging.Debugf("line added (%d,%d)", out.From, out.To)
		return info(fmt.Sprintf("Line added between vertex %d and %d.", out.From, out.To))
	case selection.Duplicate:
		return warn("Line already exists.", out.Err)
	default:
		logging.Warningf("connect %d and %d: %v", out.From, out.To, out.Err)
		return fail(fmt.Sprintf("Could not add line: %v", out.Err), out.Err)
	}
}

// DoubleClick deletes the vertex under (x, y) with its lines or, when no
// vertex is hit, the first line under (x, y).
func (e *Editor) DoubleClick(x, y float64) Status {
	if v, ok := e.store.FindVertexNear(x, y, e.cfg.VertexTolerance()); ok {
		if err := e.store.DeleteVertex(v); err != nil {
			return fail(fmt.Sprintf("Could not delete vertex %d: %v", v, err), err)
		}
		e.dirty = true
		logging.Debugf("vertex %d deleted", v)
		return info("Vertex and connected lines deleted.")
	}

	if l, ok := e.store.FindEdgeNear(x, y, e.cfg.LineHitTol); ok {
		return e.DeleteLine(l)
	}

	return warn("Double-click: No vertex or line found at this position.", nil)
}

// DeleteLine removes the line joining l's endpoints, in either order.
func (e *Editor) DeleteLine(l mapgraph.Edge) Status {
	if err := e.store.DeleteEdge(l); err != nil {
		logging.Warningf("line (%d,%d) not found for deletion", l.A, l.B)
		return warn(fmt.Sprintf("Line (%d, %d) not found.", l.A, l.B), err)
	}
	e.dirty = true
	logging.Debugf("line (%d,%d) deleted", l.A, l.B)

	return info("Line deleted.")
}

// Clear removes every vertex and line and drops the selection.
// The current file path is kept.
func (e *Editor) Clear() Status {
	e.store.Clear()
	e.sel.Reset()
	e.dirty = true
	logging.Debugf("map cleared")

	return info("Canvas cleared.")
}

// Title returns the window title for the current file.
func (e *Editor) Title() string {
	if e.path == "" {
		return "Untitled - " + appTitle
	}
	return filepath.Base(e.path) + " - " + appTitle
}

// Path returns the current file path, or "" for an untitled map.
func (e *Editor) Path() string { return e.path }

// Dirty reports whether the map changed since it was last opened or saved.
func (e *Editor) Dirty() bool { return e.dirty }

// Vertices returns a copy of the vertex positions in index order.
func (e *Editor) Vertices() []geometry.Point { return e.store.Vertices() }

// Lines returns a copy of the lines in insertion order.
func (e *Editor) Lines() []mapgraph.Edge { return e.store.Edges() }

// Pending returns the vertex awaiting a second click, if any.
func (e *Editor) Pending() (int, bool) { return e.sel.Pending() }
