package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/samber/oops"
)

// File stores one human-readable JSON document per table in basePath.
type File struct {
	basePath string
	mu       sync.RWMutex
}

// NewFile creates a file backend rooted at basePath
func NewFile(basePath string) (*File, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create storage directory").Wrap(err)
	}

	return &File{basePath: basePath}, nil
}

func (s *File) path(table string) string {
	return filepath.Join(s.basePath, table+".json")
}

func (s *File) Read(table string, v any) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(table))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, oops.With("table", table, "context", "failed to read table").Wrap(err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, oops.With("table", table, "context", "failed to unmarshal table").Wrap(err)
	}

	return true, nil
}

// Write rewrites the table file. The document goes to a temp file first and is
// renamed over the old one, so a crash never leaves a half-written table.
func (s *File) Write(table string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return oops.With("table", table, "context", "failed to marshal table").Wrap(err)
	}

	tmp := s.path(table) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return oops.With("table", table, "context", "failed to write table").Wrap(err)
	}

	if err := os.Rename(tmp, s.path(table)); err != nil {
		return oops.With("table", table, "context", "failed to replace table").Wrap(err)
	}
	return nil
}

func (s *File) Close() error {
	return nil
}
