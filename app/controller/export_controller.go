package controller

import (
	"errors"
	"net/http"
	"strconv"

	"tesouraria-ibs/config"
	"tesouraria-ibs/service"
	"tesouraria-ibs/store"
)

// ExportController handles preview rendering and document export
type ExportController struct {
	documents store.StoreInterface
	renderer  service.RenderServiceInterface
	exporter  service.ExportServiceInterface
	backups   service.BackupServiceInterface
}

// NewExportController creates a new ExportController. backups may be nil.
func NewExportController(
	documents store.StoreInterface,
	renderer service.RenderServiceInterface,
	exporter service.ExportServiceInterface,
	backups service.BackupServiceInterface,
) *ExportController {
	return &ExportController{
		documents: documents,
		renderer:  renderer,
		exporter:  exporter,
		backups:   backups,
	}
}

// exportRequest carries the path picked in the save dialog; empty means cancelled
type exportRequest struct {
	Path string `json:"path"`
}

// Render handles GET /api/render?editable=true
// With format=html the document is written as text/html for the preview pane.
func (c *ExportController) Render(w http.ResponseWriter, r *http.Request) {
	editable, _ := strconv.ParseBool(r.URL.Query().Get("editable"))

	doc, err := c.renderer.Render(c.documents.State(), editable)
	if err != nil {
		if errors.Is(err, service.ErrNoDocument) {
			writeError(w, http.StatusConflict, err.Error(), nil)
			return
		}
		config.GetLogger().Errorf("❌ Render: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	if r.URL.Query().Get("format") == "html" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(doc.HTML))
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// Suggestion handles GET /api/export/suggestion?ext=.pdf
func (c *ExportController) Suggestion(w http.ResponseWriter, r *http.Request) {
	ext := r.URL.Query().Get("ext")
	if ext == "" {
		ext = ".pdf"
	}

	suggestion, err := c.exporter.Suggestion(r.Context(), ext)
	if err != nil {
		config.GetLogger().Errorf("❌ Suggestion: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	writeJSON(w, http.StatusOK, suggestion)
}

// ExportPDF handles POST /api/export/pdf
// Example request:
// { "path": "/home/tesouraria/Recibos/Pagamentos_Diversos_07-03-2025.pdf" }
func (c *ExportController) ExportPDF(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if !decodeJSON(w, r, "ExportPDF", &req) {
		return
	}
	result, err := c.exporter.ExportPDF(r.Context(), req.Path)
	c.writeExportResult(w, "ExportPDF", result, err)
}

// ExportSpreadsheet handles POST /api/export/xlsx
func (c *ExportController) ExportSpreadsheet(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if !decodeJSON(w, r, "ExportSpreadsheet", &req) {
		return
	}
	result, err := c.exporter.ExportSpreadsheet(r.Context(), req.Path)
	c.writeExportResult(w, "ExportSpreadsheet", result, err)
}

// Print handles POST /api/export/print
func (c *ExportController) Print(w http.ResponseWriter, r *http.Request) {
	result, err := c.exporter.Print(r.Context())
	c.writeExportResult(w, "Print", result, err)
}

// ListBackups handles GET /api/backups
func (c *ExportController) ListBackups(w http.ResponseWriter, r *http.Request) {
	if c.backups == nil {
		writeError(w, http.StatusNotFound, "backup is not configured", nil)
		return
	}

	files, err := c.backups.ListBackups(r.Context())
	if err != nil {
		config.GetLogger().Errorf("❌ ListBackups: %v", err)
		writeError(w, http.StatusBadGateway, err.Error(), nil)
		return
	}
	writeJSON(w, http.StatusOK, files)
}

func (c *ExportController) writeExportResult(w http.ResponseWriter, op string, result *service.ExportResult, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, struct {
			*service.ExportResult
			Status store.EditorStatus `json:"status"`
		}{result, c.documents.Status()})
	case errors.Is(err, service.ErrExportCancelled):
		writeJSON(w, http.StatusOK, map[string]any{"cancelled": true, "status": c.documents.Status()})
	case errors.Is(err, service.ErrExportInProgress):
		writeError(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, service.ErrNoDocument):
		writeError(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, store.ErrInvalidAction):
		writeError(w, http.StatusBadRequest, err.Error(), processValidationErrors(err))
	default:
		config.GetLogger().Errorf("❌ %s: %v", op, err)
		writeError(w, http.StatusInternalServerError, "Erro na geração: "+err.Error(), nil)
	}
}
