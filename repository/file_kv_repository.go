package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileKeyValueRepository stores every key in one JSON file.
// Writes go to a temporary file that is renamed over the original.
// A file that cannot be parsed reads as ErrCorrupt and is replaced by the next write.
type FileKeyValueRepository struct {
	path string
	mu   sync.Mutex
}

// NewFileKeyValueRepository creates a FileKeyValueRepository backed by path.
// The parent directory is created when missing.
func NewFileKeyValueRepository(path string) (*FileKeyValueRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FileKeyValueRepository{path: path}, nil
}

// Ensure FileKeyValueRepository implements KeyValueRepositoryInterface
var _ KeyValueRepositoryInterface = (*FileKeyValueRepository)(nil)

// Get returns the value stored under key
func (r *FileKeyValueRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	values, err := r.read()
	if err != nil {
		return nil, err
	}
	value, ok := values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return []byte(value), nil
}

// Set stores value under key
func (r *FileKeyValueRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	values, err := r.readOrReset()
	if err != nil {
		return err
	}
	values[key] = string(value)
	return r.write(values)
}

// Delete removes key. Deleting a missing key is not an error.
func (r *FileKeyValueRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	values, err := r.read()
	if errors.Is(err, ErrCorrupt) {
		return r.write(map[string]string{})
	}
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return r.write(values)
}

// Close is a no-op
func (r *FileKeyValueRepository) Close() error {
	return nil
}

func (r *FileKeyValueRepository) read() (map[string]string, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read storage file: %w", err)
	}
	if len(data) == 0 {
		return map[string]string{}, nil
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, r.path, err)
	}
	return values, nil
}

// readOrReset is read, except that a corrupt file yields an empty map
func (r *FileKeyValueRepository) readOrReset() (map[string]string, error) {
	values, err := r.read()
	if errors.Is(err, ErrCorrupt) {
		return map[string]string{}, nil
	}
	return values, err
}

func (r *FileKeyValueRepository) write(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode storage file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".state-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("failed to replace storage file: %w", err)
	}
	return nil
}
