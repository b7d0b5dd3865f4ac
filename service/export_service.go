package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"tesouraria-ibs/config"
	"tesouraria-ibs/models"
	"tesouraria-ibs/store"
)

const (
	mimePDF  = "application/pdf"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	// ErrExportCancelled is returned when no destination path was chosen
	ErrExportCancelled = errors.New("export cancelled")
	// ErrNoPages is returned when a rendered document has no .pdf-page containers
	ErrNoPages = errors.New("document has no pages")
)

// DocumentStoreInterface is the part of the document store the export pipeline needs
type DocumentStoreInterface interface {
	State() models.AppState
	Dispatch(ctx context.Context, action store.Action) (models.AppState, bool, error)
}

// ExportResult describes a finished export
type ExportResult struct {
	Path     string `json:"path,omitempty"`
	FileName string `json:"fileName,omitempty"`
	Pages    int    `json:"pages,omitempty"`
	Size     int    `json:"size"`
	BackupID string `json:"backupId,omitempty"`
}

// ExportDeps are the collaborators of an ExportService. Backup may be nil.
type ExportDeps struct {
	Store       DocumentStoreInterface
	Renderer    RenderServiceInterface
	Rasterizer  RasterizerInterface
	Assembler   PDFAssemblerInterface
	Files       FileSaveServiceInterface
	Printer     PrinterInterface
	Spreadsheet SpreadsheetServiceInterface
	Backup      BackupServiceInterface
	Guard       *ExportGuard
	// TargetWidth is the pixel width page images are normalized to
	TargetWidth int
}

// ExportService saves the working document and turns it into a PDF, a print job or a spreadsheet
type ExportService struct {
	deps ExportDeps
	log  *logrus.Logger
}

// NewExportService creates an ExportService
func NewExportService(deps ExportDeps) *ExportService {
	if deps.Guard == nil {
		deps.Guard = NewExportGuard()
	}
	if deps.TargetWidth <= 0 {
		deps.TargetWidth = a4WidthPx
	}
	return &ExportService{deps: deps, log: config.GetLogger()}
}

// Ensure ExportService implements ExportServiceInterface
var _ ExportServiceInterface = (*ExportService)(nil)

// Suggestion returns the save dialog defaults for the current document
func (s *ExportService) Suggestion(ctx context.Context, ext string) (ExportSuggestion, error) {
	return s.deps.Files.Suggest(ctx, s.deps.Store.State(), ext)
}

// save stores the working document before any export.
// A persistence failure is logged and the export goes on with the in-memory state.
func (s *ExportService) save(ctx context.Context) (models.AppState, error) {
	state, _, err := s.deps.Store.Dispatch(ctx, store.SaveDocument{})
	if err != nil {
		if !errors.Is(err, store.ErrPersist) {
			return models.AppState{}, err
		}
		s.log.Warnf("⚠️ Export: document saved in memory only: %v", err)
	}
	if state.CurrentView == models.ViewDashboard || state.ActiveID() == "" {
		return models.AppState{}, ErrNoDocument
	}
	return state, nil
}

// ExportPDF saves the document, builds its PDF and writes it to path
func (s *ExportService) ExportPDF(ctx context.Context, path string) (*ExportResult, error) {
	state, err := s.save(ctx)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, ErrExportCancelled
	}

	release, err := s.deps.Guard.Acquire(state.ActiveID())
	if err != nil {
		return nil, err
	}
	defer release()

	log := s.log.WithFields(logrus.Fields{"document": state.ActiveID(), "view": state.CurrentView})
	log.Info("📥 ExportPDF: generating")

	_, pdf, pages, err := s.buildPDF(ctx, state)
	if err != nil {
		config.LogError(s.log, "export", "ExportPDF", map[string]any{"document": state.ActiveID(), "path": path}, err)
		return nil, err
	}

	if err := s.deps.Files.WriteFile(ctx, path, pdf); err != nil {
		log.Errorf("❌ ExportPDF: %v", err)
		return nil, err
	}

	result := &ExportResult{
		Path:     path,
		FileName: filepath.Base(path),
		Pages:    pages,
		Size:     len(pdf),
	}
	result.BackupID = s.uploadBackup(ctx, result.FileName, mimePDF, pdf)

	log.WithField("pages", pages).Infof("✅ ExportPDF: saved %s", result.FileName)
	return result, nil
}

// Print saves the document, builds its PDF and sends it to the printer
func (s *ExportService) Print(ctx context.Context) (*ExportResult, error) {
	state, err := s.save(ctx)
	if err != nil {
		return nil, err
	}

	release, err := s.deps.Guard.Acquire(state.ActiveID())
	if err != nil {
		return nil, err
	}
	defer release()

	doc, pdf, pages, err := s.buildPDF(ctx, state)
	if err != nil {
		s.log.Errorf("❌ Print: %v", err)
		return nil, err
	}
	if err := s.deps.Printer.Print(ctx, doc.Title, pdf); err != nil {
		s.log.Errorf("❌ Print: %v", err)
		return nil, err
	}

	s.log.WithField("pages", pages).Info("✅ Print: sent to printer")
	return &ExportResult{Pages: pages, Size: len(pdf)}, nil
}

// ExportSpreadsheet saves the document and writes it as an XLSX workbook to path
func (s *ExportService) ExportSpreadsheet(ctx context.Context, path string) (*ExportResult, error) {
	state, err := s.save(ctx)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, ErrExportCancelled
	}

	release, err := s.deps.Guard.Acquire(state.ActiveID())
	if err != nil {
		return nil, err
	}
	defer release()

	data, err := s.deps.Spreadsheet.Build(state)
	if err != nil {
		s.log.Errorf("❌ ExportSpreadsheet: %v", err)
		return nil, fmt.Errorf("failed to build spreadsheet: %w", err)
	}
	if err := s.deps.Files.WriteFile(ctx, path, data); err != nil {
		s.log.Errorf("❌ ExportSpreadsheet: %v", err)
		return nil, err
	}

	result := &ExportResult{Path: path, FileName: filepath.Base(path), Size: len(data)}
	result.BackupID = s.uploadBackup(ctx, result.FileName, mimeXLSX, data)

	s.log.Infof("✅ ExportSpreadsheet: saved %s", result.FileName)
	return result, nil
}

// buildPDF renders, rasterizes, normalizes and assembles the document
func (s *ExportService) buildPDF(ctx context.Context, state models.AppState) (*RenderedDocument, []byte, int, error) {
	doc, err := s.deps.Renderer.Render(state, false)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("failed to render document: %w", err)
	}

	images, err := s.deps.Rasterizer.RasterizePages(ctx, doc.HTML)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("failed to rasterize pages: %w", err)
	}
	if len(images) == 0 {
		return nil, nil, 0, ErrNoPages
	}
	if len(images) != doc.PageCount {
		s.log.Warnf("⚠️ Export: planned %d pages, captured %d", doc.PageCount, len(images))
	}

	for i, img := range images {
		normalized, err := NormalizePageImage(img, s.deps.TargetWidth)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("failed to normalize page %d: %w", i+1, err)
		}
		images[i] = normalized
	}

	pdf, err := s.deps.Assembler.AssemblePDF(ctx, images)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("failed to assemble PDF: %w", err)
	}
	return doc, pdf, len(images), nil
}

// uploadBackup returns the backup id, or "" when backups are off or the upload failed
func (s *ExportService) uploadBackup(ctx context.Context, name, mimeType string, data []byte) string {
	if s.deps.Backup == nil {
		return ""
	}
	id, err := s.deps.Backup.UploadBackup(ctx, name, mimeType, data)
	if err != nil {
		s.log.Warnf("⚠️ Export: backup of %s failed: %v", name, err)
		return ""
	}
	return id
}
