package service

import "context"

// PrinterInterface sends a finished PDF to a printer
type PrinterInterface interface {
	Print(ctx context.Context, title string, pdf []byte) error
}
