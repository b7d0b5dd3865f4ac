package service

import (
	"errors"
	"sync"
)

// ErrExportInProgress is returned when the same document is already being exported
var ErrExportInProgress = errors.New("export already in progress for this document")

// ExportGuard allows one in-flight export per document id
type ExportGuard struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewExportGuard creates an empty ExportGuard
func NewExportGuard() *ExportGuard {
	return &ExportGuard{inFlight: make(map[string]struct{})}
}

// Acquire marks id as exporting. The returned release must be called once
// the export ends, successfully or not.
func (g *ExportGuard) Acquire(id string) (release func(), err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.inFlight[id]; busy {
		return nil, ErrExportInProgress
	}
	g.inFlight[id] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.inFlight, id)
			g.mu.Unlock()
		})
	}, nil
}

// Busy reports whether id is being exported
func (g *ExportGuard) Busy(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.inFlight[id]
	return busy
}
