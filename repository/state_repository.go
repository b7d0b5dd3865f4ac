package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tesouraria-ibs/models"
)

// StateRepository persists the whole application state as one JSON blob
type StateRepository struct {
	kv KeyValueRepositoryInterface
}

// NewStateRepository creates a StateRepository over kv
func NewStateRepository(kv KeyValueRepositoryInterface) *StateRepository {
	return &StateRepository{kv: kv}
}

// Ensure StateRepository implements StateRepositoryInterface
var _ StateRepositoryInterface = (*StateRepository)(nil)

// Load returns the persisted blob, or nil when none exists
func (r *StateRepository) Load(ctx context.Context) ([]byte, error) {
	raw, err := r.kv.Get(ctx, StateKey)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	return raw, nil
}

// Save writes state wholesale
func (r *StateRepository) Save(ctx context.Context, state models.AppState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if err := r.kv.Set(ctx, StateKey, raw); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// Clear removes the persisted blob
func (r *StateRepository) Clear(ctx context.Context) error {
	if err := r.kv.Delete(ctx, StateKey); err != nil {
		return fmt.Errorf("failed to clear state: %w", err)
	}
	return nil
}
