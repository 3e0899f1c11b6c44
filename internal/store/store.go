// Package store persists the scene as a single versioned snapshot file.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/hack-pad/hackpadfs"
	osfs "github.com/hack-pad/hackpadfs/os"

	"scene-editor/internal/scene"
)

// DefaultPath is the cache file, relative to the working directory.
const DefaultPath = "cache"

// PersistenceError reports a cache file that could not be read or written. Callers log it and carry
// on: a failed load starts an empty scene, a failed save keeps the scene in memory.
type PersistenceError struct {
	Op   string // "open", "load", "save" or "set aside"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// NotExist reports whether the error is a missing cache file (a normal first run).
func (e *PersistenceError) NotExist() bool {
	return errors.Is(e.Err, fs.ErrNotExist)
}

// Store reads and writes the cache file on a hackpadfs filesystem.
type Store struct {
	fsys hackpadfs.FS
	name string // slash-separated path inside fsys
	path string // for messages
}

// New returns a store for file name inside fsys.
func New(fsys hackpadfs.FS, name string) *Store {
	return &Store{fsys: fsys, name: name, path: name}
}

// NewOS returns a store for the OS file at p (relative to the working directory or absolute).
func NewOS(p string) (*Store, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return nil, &PersistenceError{Op: "open", Path: p, Err: err}
	}
	root := osfs.NewFS()
	dir := strings.TrimPrefix(filepath.ToSlash(filepath.Dir(abs)), "/")
	if dir == "" {
		dir = "."
	}
	fsys, err := root.Sub(dir)
	if err != nil {
		return nil, &PersistenceError{Op: "open", Path: p, Err: err}
	}
	return &Store{fsys: fsys, name: filepath.Base(abs), path: p}, nil
}

// Path returns the cache path as given to the constructor.
func (s *Store) Path() string {
	return s.path
}

// Load reads the saved scene. A missing file is a *PersistenceError whose NotExist is true.
func (s *Store) Load() ([]*scene.Object, error) {
	data, err := fs.ReadFile(s.fsys, s.name)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Path: s.path, Err: err}
	}
	objs, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &PersistenceError{Op: "load", Path: s.path, Err: err}
	}
	return objs, nil
}

// Save replaces the cache file with a snapshot of objs. The data goes to a temporary file first and
// is renamed over the cache, so a failed save leaves the previous cache intact.
func (s *Store) Save(objs []*scene.Object) error {
	var buf bytes.Buffer
	if err := Encode(&buf, objs); err != nil {
		return &PersistenceError{Op: "save", Path: s.path, Err: err}
	}
	if dir := path.Dir(s.name); dir != "." {
		if err := hackpadfs.MkdirAll(s.fsys, dir, 0755); err != nil {
			return &PersistenceError{Op: "save", Path: s.path, Err: err}
		}
	}
	tmp := s.name + ".tmp"
	if err := hackpadfs.WriteFullFile(s.fsys, tmp, buf.Bytes(), 0644); err != nil {
		return &PersistenceError{Op: "save", Path: s.path, Err: err}
	}
	if err := hackpadfs.Rename(s.fsys, tmp, s.name); err != nil {
		_ = hackpadfs.Remove(s.fsys, tmp)
		return &PersistenceError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

// SetAside renames an unreadable cache file to <name>.bad, replacing any earlier one, so the next
// Save does not overwrite it. It returns the new path.
func (s *Store) SetAside() (string, error) {
	bad := s.path + ".bad"
	if err := hackpadfs.Rename(s.fsys, s.name, s.name+".bad"); err != nil {
		return "", &PersistenceError{Op: "set aside", Path: s.path, Err: err}
	}
	return bad, nil
}
