// Package worlded is the model behind the WorldEd map editor: vertices on an
// integer grid joined by undirected lines, edited with pointer gestures and
// stored as a small JSON document.
//
// 🚀 What is in worlded?
//
//	• geometry/    grid snapping, distances, vertex and line hit-tests
//	• mapgraph/    the vertex/line store with positional indices and delete cascade
//	• selection/   the two-click connect protocol
//	• mapfile/     JSON encode/decode, schema checks, atomic Save
//	• editor/      gesture controller returning status messages
//	• config/      TOML settings (grid, tolerances, logging)
//	• logging/     leveled log lines to stderr or a rotating file
//	• cmd/worlded  command-line front-end (new, info, add, connect, replay…)
//
// ✨ Key rules
//
//   - A vertex's index is its identity; deleting vertex k drops its lines and
//     shifts every higher index down by one.
//   - At most one vertex per grid point and one line per vertex pair.
//   - Lines keep the endpoint order they were created with.
//
// Quick ASCII example:
//
//	    0───1
//	     \ /
//	      2
//
//	{"vertices": [[20,20],[100,20],[60,80]], "lines": [[0,1],[1,2],[0,2]]}
//
// Deleting vertex 1 leaves vertices [[20,20],[60,80]] and lines [[0,1]].
//
//	go install github.com/katalvlaran/worlded/cmd/worlded@latest
package worlded
