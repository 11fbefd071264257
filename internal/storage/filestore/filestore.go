package filestore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/rzbill/todo/internal/todo"
)

// Options configures the file store.
type Options struct {
	// Path is the location of the collection file.
	Path string
}

// Store persists the todo collection as a single pretty-printed JSON file,
// rewritten wholesale on every save. Writes are plain overwrites; callers
// that need write serialization must provide it themselves.
type Store struct {
	path string
}

// Open prepares the collection file at opts.Path. The parent directory is
// created if needed and a missing file is seeded with an empty collection,
// so after a successful Open any load failure signals real corruption or
// I/O trouble rather than a fresh install.
func Open(opts Options) (*Store, error) {
	if opts.Path == "" {
		return nil, errors.New("filestore: Options.Path is required")
	}
	if dir := filepath.Dir(opts.Path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &StorageError{Op: "open", Path: opts.Path, Err: err}
		}
	}
	s := &Store{path: opts.Path}
	if _, err := os.Stat(opts.Path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, &StorageError{Op: "open", Path: opts.Path, Err: err}
		}
		if err := s.Save(nil); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Load reads the whole collection. The raw document is checked against the
// collection schema before decoding, so a hand-edited or foreign file
// surfaces as a StorageError instead of silently dropping fields.
func (s *Store) Load() ([]todo.Item, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &StorageError{Op: "load", Path: s.path, Err: err}
	}
	var doc interface{}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, &StorageError{Op: "load", Path: s.path, Err: err}
	}
	if err := collectionSchema.Validate(doc); err != nil {
		return nil, &StorageError{Op: "load", Path: s.path, Err: err}
	}
	var items []todo.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, &StorageError{Op: "load", Path: s.path, Err: err}
	}
	return items, nil
}

// Save overwrites the collection file with items, pretty-printed with
// two-space indentation and a trailing newline. A nil slice persists as an
// empty collection, never the JSON literal null.
func (s *Store) Save(items []todo.Item) error {
	if items == nil {
		items = []todo.Item{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}
	b = append(b, '\n')
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

// Ping reports whether the collection file is still reachable.
func (s *Store) Ping() error {
	if _, err := os.Stat(s.path); err != nil {
		return &StorageError{Op: "ping", Path: s.path, Err: err}
	}
	return nil
}

// Path returns the location of the collection file.
func (s *Store) Path() string {
	return s.path
}
