package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"habitgrid/internal/models"
)

// JSONStore keeps the whole state in a single pretty-printed JSON file.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.Save(&models.AppState{Version: models.StateVersion})
}

// Load reads the persisted blob. A missing file or unparseable content is
// reported as an error; the caller decides whether to fall back to defaults.
func (s *JSONStore) Load() (*models.AppState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no stored state at %s: %w", s.path, err)
		}
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}

	state := &models.AppState{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("failed to parse storage: %w", err)
	}
	return state, nil
}

func (s *JSONStore) Save(state *models.AppState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note: the store is not safe for concurrent use by multiple
// processes sharing the same path.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
