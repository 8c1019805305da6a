// Package filestore keeps the denormalized public display lists
// (portfolio.json, services.json, slideshow.json) as flat JSON arrays on
// disk. All read-modify-write cycles go through one mutex so concurrent
// admin writes cannot drop each other's update.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Well-known file names under the data directory.
const (
	PortfolioFile = "portfolio.json"
	ServicesFile  = "services.json"
	SlideshowFile = "slideshow.json"
)

// Store serializes access to the JSON list files in a data directory.
type Store struct {
	mu  sync.Mutex
	dir string
}

// New creates the data directory if needed and returns a store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Read unmarshals the named list file into out. A missing file reads as an
// empty list.
func (s *Store) Read(name string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(name, out)
}

// Write replaces the named list file with the JSON encoding of in.
func (s *Store) Write(name string, in any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(name, in)
}

// Update applies fn to the current contents of the named file and writes the
// result back, all under the store lock.
func Update[T any](s *Store, name string, fn func(items []T) []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []T
	if err := s.read(name, &items); err != nil {
		return err
	}
	return s.write(name, fn(items))
}

func (s *Store) read(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			data = []byte("[]")
		} else {
			return fmt.Errorf("read %s: %w", name, err)
		}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (s *Store) write(name string, in any) error {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
