package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"tesouraria-ibs/config"
	"tesouraria-ibs/models"
	"tesouraria-ibs/repository"
	"tesouraria-ibs/utils"
)

// ExportSuggestion pre-fills the save dialog
type ExportSuggestion struct {
	FileName    string `json:"fileName"`
	DefaultPath string `json:"defaultPath"`
}

// FileSaveService names, writes and remembers the location of exported files
type FileSaveService struct {
	prefs repository.PreferencesRepositoryInterface
}

// NewFileSaveService creates a FileSaveService
func NewFileSaveService(prefs repository.PreferencesRepositoryInterface) *FileSaveService {
	return &FileSaveService{prefs: prefs}
}

// Ensure FileSaveService implements FileSaveServiceInterface
var _ FileSaveServiceInterface = (*FileSaveService)(nil)

// SuggestFileName builds the export file name for the current view.
// ext is appended as given (".pdf", ".xlsx").
func SuggestFileName(state models.AppState, ext string) string {
	var base, date string
	switch state.CurrentView {
	case models.ViewTithes:
		base, date = "Recibo_Dizimo_Ofertas", state.TithesData.Date
	case models.ViewPayments:
		base, date = "Pagamentos_Diversos", state.PaymentData.Date
	default:
		base = "Documento"
	}
	if date != "" {
		base += "_" + utils.FileDate(date)
	}
	return utils.SanitizeFileName(base + ext)
}

// Suggest returns the file name and, when a directory was remembered, the full default path
func (s *FileSaveService) Suggest(ctx context.Context, state models.AppState, ext string) (ExportSuggestion, error) {
	name := SuggestFileName(state, ext)
	dir, err := s.prefs.LastSaveDir(ctx)
	if err != nil {
		return ExportSuggestion{}, err
	}

	suggestion := ExportSuggestion{FileName: name, DefaultPath: name}
	if dir != "" {
		suggestion.DefaultPath = filepath.Join(dir, name)
	}
	return suggestion, nil
}

// WriteFile writes data to path and remembers its directory.
// Failing to remember the directory does not fail the write.
func (s *FileSaveService) WriteFile(ctx context.Context, path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	if err := s.prefs.SetLastSaveDir(ctx, filepath.Dir(path)); err != nil {
		config.GetLogger().Warnf("⚠️ WriteFile: failed to remember save directory: %v", err)
	}
	return nil
}
