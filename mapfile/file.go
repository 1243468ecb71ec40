package mapfile

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/katalvlaran/worlded/mapgraph"
)

// FileError records a failed read or write of a map file.
// It matches both ErrIO and the underlying cause with errors.Is.
type FileError struct {
	Op   string // "open" or "save"
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return "mapfile: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

// Unwrap exposes ErrIO and the cause to errors.Is / errors.As.
func (e *FileError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

// Load reads and decodes the map at path.
// Read failures are *FileError; decode failures are returned as from Decode.
func Load(path string, opts ...Option) (*mapgraph.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}

	return Decode(data, opts...)
}

// Save writes s to path. The document goes to a temporary file in the same
// directory first and is renamed over path only once fully written, so a
// failed Save leaves any existing file untouched.
func Save(path string, s *mapgraph.Store) error {
	data, err := Marshal(s)
	if err != nil {
		return &FileError{Op: "save", Path: path, Err: err}
	}
	if err := writeFile(path, data); err != nil {
		return &FileError{Op: "save", Path: path, Err: err}
	}

	return nil
}

func writeFile(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return errors.Wrap(err, "write")
	}
	if err = tmp.Sync(); err != nil {
		return errors.Wrap(err, "sync")
	}
	if err = tmp.Chmod(0o644); err != nil {
		return errors.Wrap(err, "chmod")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "close")
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(err, "rename")
	}

	return nil
}
