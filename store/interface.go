package store

import (
	"context"

	"tesouraria-ibs/models"
)

// StoreInterface defines the contract for the document store
type StoreInterface interface {
	State() models.AppState
	Dispatch(ctx context.Context, action Action) (models.AppState, bool, error)
	CloseEditor(ctx context.Context) (models.AppState, error)
	Status() EditorStatus
}

// Ensure Store implements StoreInterface
var _ StoreInterface = (*Store)(nil)
