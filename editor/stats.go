package editor

import "github.com/katalvlaran/worlded/geometry"

// Version is the editor release.
const Version = "0.12"

// AboutInfo is the text shown by an "About" dialog or command.
type AboutInfo struct {
	Name        string
	Version     string
	Description string
}

// About returns the editor's about text.
func About() AboutInfo {
	return AboutInfo{
		Name:        "WorldEd",
		Version:     Version,
		Description: "A simple map editor for creating and connecting vertices and lines.",
	}
}

// Stats summarizes the current map.
type Stats struct {
	Vertices   int
	Lines      int
	Components int
	Isolated   int // vertices without lines
	MaxDegree  int
	OffCanvas  int // vertices outside the configured canvas
	Min, Max   geometry.Point
	HasBounds  bool
}

// Stats computes a summary of the current map. O(V·E).
func (e *Editor) Stats() Stats {
	st := Stats{
		Vertices: e.store.VertexCount(),
		Lines:    e.store.EdgeCount(),
	}
	comps := e.store.Components()
	st.Components = len(comps)
	for _, c := range comps {
		if len(c) == 1 {
			st.Isolated++
		}
	}
	for i, v := range e.store.Vertices() {
		if d, err := e.store.Degree(i); err == nil && d > st.MaxDegree {
			st.MaxDegree = d
		}
		if v.X < 0 || v.Y < 0 || v.X > e.cfg.CanvasWidth || v.Y > e.cfg.CanvasHeight {
			st.OffCanvas++
		}
	}
	st.Min, st.Max, st.HasBounds = e.store.Bounds()

	return st
}

// Validate checks the loaded map against the graph invariants.
func (e *Editor) Validate() error {
	return e.store.Validate()
}
