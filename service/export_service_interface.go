package service

import "context"

// ExportServiceInterface defines the contract for exporting the working document
type ExportServiceInterface interface {
	Suggestion(ctx context.Context, ext string) (ExportSuggestion, error)
	ExportPDF(ctx context.Context, path string) (*ExportResult, error)
	Print(ctx context.Context) (*ExportResult, error)
	ExportSpreadsheet(ctx context.Context, path string) (*ExportResult, error)
}
