package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/katalvlaran/worlded/logging"
	"github.com/katalvlaran/worlded/mapfile"
)

// Open replaces the current map with the one at path. On any failure the
// current map, selection and path are left exactly as they were.
func (e *Editor) Open(path string) Status {
	var opts []mapfile.Option
	if e.strict {
		opts = append(opts, mapfile.WithStrict())
	}

	s, err := mapfile.Load(path, opts...)
	if err != nil {
		logging.Errorf("open %s: %v", path, err)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return fail(fmt.Sprintf("File not found: %s", path), err)
		case errors.Is(err, mapfile.ErrMissingField):
			return fail("Invalid map file format. Missing 'vertices' or 'lines'.", err)
		case errors.Is(err, mapfile.ErrMalformedDocument):
			return fail("Could not decode map data. The file may be corrupted or not a valid JSON.", err)
		default:
			return fail(fmt.Sprintf("Could not open map: %v", err), err)
		}
	}

	e.reset(s)
	e.path = path
	e.dirty = false
	logging.Infof("map loaded from %s (%d vertices, %d lines)", path, s.VertexCount(), s.EdgeCount())

	return info("Map loaded from " + filepath.Base(path))
}

// Save writes the map to the current path. An untitled map fails with
// ErrNoPath; the front-end should ask for a path and call SaveAs.
func (e *Editor) Save() Status {
	if e.path == "" {
		return fail("No file chosen. Use Save As.", ErrNoPath)
	}
	return e.write(e.path)
}

// SaveAs writes the map to path and makes path the current file on success.
func (e *Editor) SaveAs(path string) Status {
	st := e.write(path)
	if st.OK() {
		e.path = path
	}
	return st
}

func (e *Editor) write(path string) Status {
	if err := mapfile.Save(path, e.store); err != nil {
		logging.Errorf("save %s: %v", path, err)
		return fail(fmt.Sprintf("Error saving map: %v", err), err)
	}
	e.dirty = false
	logging.Infof("map saved to %s", path)

	return info("Map saved to " + filepath.Base(path))
}
