package service

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// CommandRunner runs an external program and returns its combined output
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// PrintService sends PDFs to the system print queue through lp
type PrintService struct {
	printer string
	run     CommandRunner
}

// NewPrintService creates a PrintService. An empty printer uses the system default.
func NewPrintService(printer string) *PrintService {
	return &PrintService{printer: printer, run: execRunner}
}

// Ensure PrintService implements PrinterInterface
var _ PrinterInterface = (*PrintService)(nil)

// Print spools pdf under title
func (p *PrintService) Print(ctx context.Context, title string, pdf []byte) error {
	if len(pdf) == 0 {
		return ErrNoPages
	}

	dir, err := os.MkdirTemp("", "tesouraria-print-*")
	if err != nil {
		return fmt.Errorf("failed to create print spool dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "documento.pdf")
	if err := os.WriteFile(path, pdf, 0o600); err != nil {
		return fmt.Errorf("failed to write print file: %w", err)
	}

	args := []string{"-t", title}
	if p.printer != "" {
		args = append(args, "-d", p.printer)
	}
	args = append(args, path)

	out, err := p.run(ctx, "lp", args...)
	if err != nil {
		return fmt.Errorf("failed to print: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
