// Package history persists the list of folders that have been organized.
//
// The store is a single JSON array of strings. It is read fresh on every call
// and rewritten in full on append; there is no locking, a single running
// instance is assumed.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// DefaultFile is the history location relative to the working directory.
const DefaultFile = "history.json"

// ErrMalformed is returned when the history file exists but is not a JSON
// array of strings.
var ErrMalformed = errors.New("history file is malformed")

// Store reads and appends to a history file.
type Store struct {
	path string
}

// New returns a store backed by path. An empty path means DefaultFile.
func New(path string) *Store {
	if path == "" {
		path = DefaultFile
	}
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted folders in insertion order. A missing file is an
// empty history, not an error.
func (s *Store) Load() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("unable to read history: %w", err)
	}

	var folders []string
	if err := json.Unmarshal(data, &folders); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, s.path, err)
	}
	if folders == nil {
		folders = []string{}
	}
	return folders, nil
}

// Contains reports whether folder is already recorded.
func (s *Store) Contains(folder string) (bool, error) {
	folders, err := s.Load()
	if err != nil {
		return false, err
	}
	return slices.Contains(folders, folder), nil
}

// Save appends folder unless it is already present, then rewrites the file.
func (s *Store) Save(folder string) error {
	folders, err := s.Load()
	if err != nil {
		return err
	}
	if slices.Contains(folders, folder) {
		return nil
	}
	folders = append(folders, folder)

	data, err := json.Marshal(folders)
	if err != nil {
		return fmt.Errorf("unable to encode history: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("unable to create history dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("unable to write history: %w", err)
	}
	return nil
}
