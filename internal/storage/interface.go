package storage

import "habitgrid/internal/models"

// Provider persists the application state as one atomic unit. Load and Save
// are best-effort: the engine falls back to in-memory defaults when Load
// fails and keeps running when Save fails.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// State blob
	Load() (*models.AppState, error)
	Save(*models.AppState) error

	// Utils
	GetConfigPath() string
}
