package repository

import (
	"context"
	"errors"
	"fmt"
)

// PreferencesRepository stores small user preferences next to the state
type PreferencesRepository struct {
	kv KeyValueRepositoryInterface
}

// NewPreferencesRepository creates a PreferencesRepository over kv
func NewPreferencesRepository(kv KeyValueRepositoryInterface) *PreferencesRepository {
	return &PreferencesRepository{kv: kv}
}

// Ensure PreferencesRepository implements PreferencesRepositoryInterface
var _ PreferencesRepositoryInterface = (*PreferencesRepository)(nil)

// LastSaveDir returns the directory of the last exported file, or "" if none
func (r *PreferencesRepository) LastSaveDir(ctx context.Context) (string, error) {
	raw, err := r.kv.Get(ctx, LastSaveDirKey)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get last save dir: %w", err)
	}
	return string(raw), nil
}

// SetLastSaveDir remembers dir for the next export dialog
func (r *PreferencesRepository) SetLastSaveDir(ctx context.Context, dir string) error {
	if err := r.kv.Set(ctx, LastSaveDirKey, []byte(dir)); err != nil {
		return fmt.Errorf("failed to set last save dir: %w", err)
	}
	return nil
}
