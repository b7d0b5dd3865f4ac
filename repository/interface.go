package repository

import (
	"context"
	"errors"

	"tesouraria-ibs/models"
)

var (
	// ErrNotFound is returned by key-value backends when a key has no value
	ErrNotFound = errors.New("key not found")
	// ErrCorrupt is returned when the backing store exists but cannot be parsed
	ErrCorrupt = errors.New("storage is corrupt")
)

// Storage keys
const (
	StateKey       = "ibs_financial_data"
	LastSaveDirKey = "lastSaveDir"
)

// KeyValueRepositoryInterface defines the contract for a persistent key-value backend
type KeyValueRepositoryInterface interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// StateRepositoryInterface defines the contract for application state persistence
type StateRepositoryInterface interface {
	// Load returns the raw persisted blob, or nil when nothing was saved yet
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, state models.AppState) error
	Clear(ctx context.Context) error
}

// PreferencesRepositoryInterface defines the contract for user preferences
type PreferencesRepositoryInterface interface {
	LastSaveDir(ctx context.Context) (string, error)
	SetLastSaveDir(ctx context.Context, dir string) error
}
