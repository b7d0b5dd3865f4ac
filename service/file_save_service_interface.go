package service

import (
	"context"

	"tesouraria-ibs/models"
)

// FileSaveServiceInterface defines the contract for naming and writing exported files
type FileSaveServiceInterface interface {
	Suggest(ctx context.Context, state models.AppState, ext string) (ExportSuggestion, error)
	WriteFile(ctx context.Context, path string, data []byte) error
}
