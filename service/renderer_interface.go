package service

import "context"

// RasterizerInterface captures each .pdf-page container of a document as an image
type RasterizerInterface interface {
	RasterizePages(ctx context.Context, html string) ([][]byte, error)
}

// PDFAssemblerInterface lays page images out as an A4 PDF
type PDFAssemblerInterface interface {
	AssemblePDF(ctx context.Context, images [][]byte) ([]byte, error)
}
