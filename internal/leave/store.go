// Package leave implements the application submission collaborator: balance
// validation plus a JSON-file store of submitted leave applications.
package leave

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/hrkit/leavechat/internal/models"
)

// Store persists leave applications as a JSON array on disk. Writes rewrite
// the whole file; the data set is a handful of records, not a database.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store backed by the file at path. The file is created
// on first append.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// List returns all stored applications, oldest first. A missing file is an
// empty store, not an error.
func (s *Store) List() ([]models.LeaveApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Append adds an application to the store.
func (s *Store) Append(app models.LeaveApplication) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	apps, err := s.read()
	if err != nil {
		return err
	}
	apps = append(apps, app)

	data, err := json.MarshalIndent(apps, "", "  ")
	if err != nil {
		return fmt.Errorf("encode applications: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create application dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write applications: %w", err)
	}
	return nil
}

func (s *Store) read() ([]models.LeaveApplication, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read applications: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var apps []models.LeaveApplication
	if err := json.Unmarshal(data, &apps); err != nil {
		return nil, fmt.Errorf("decode applications: %w", err)
	}
	return apps, nil
}
