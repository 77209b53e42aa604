// Package storage keeps finished documents on the local filesystem so
// the download endpoint can serve them back. Retention of the output
// directory is the operator's concern, not this service's.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var ErrNotFound = errors.New("document not found")

type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save writes one document. Filenames are generated server-side, but the
// traversal guard stays as a hard invariant on the write path too.
func (s *Store) Save(filename, content string) error {
	path, err := s.safePath(filename)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write document %s: %w", filename, err)
	}
	return nil
}

// Resolve maps a client-supplied filename to a servable path, rejecting
// anything outside the output directory.
func (s *Store) Resolve(filename string) (string, error) {
	path, err := s.safePath(filename)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err != nil {
		return "", ErrNotFound
	}
	return path, nil
}

func (s *Store) safePath(filename string) (string, error) {
	if filename == "" || filepath.Base(filename) != filename {
		return "", fmt.Errorf("invalid filename %q", filename)
	}
	return filepath.Join(s.dir, filename), nil
}
