package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tesouraria-ibs/config"
	"tesouraria-ibs/models"
	"tesouraria-ibs/store"
)

// DocumentController handles navigation and the saved documents list
type DocumentController struct {
	documents store.StoreInterface
}

// NewDocumentController creates a new DocumentController
func NewDocumentController(documents store.StoreInterface) *DocumentController {
	return &DocumentController{documents: documents}
}

// GetState handles GET /api/state
func (c *DocumentController) GetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, stateResponse{
		State:  c.documents.State(),
		Status: c.documents.Status(),
	})
}

// GetStatus handles GET /api/editor/status
func (c *DocumentController) GetStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.documents.Status())
}

// SetView handles PUT /api/view
// Example request:
// { "view": "DASHBOARD" }
func (c *DocumentController) SetView(w http.ResponseWriter, r *http.Request) {
	var req struct {
		View models.View `json:"view"`
	}
	if !decodeJSON(w, r, "SetView", &req) {
		return
	}
	dispatch(w, r, c.documents, "SetView", store.SetView{View: req.View})
}

// CreateDocument handles POST /api/documents
// Example request:
// { "docType": "PAYMENTS" }
func (c *DocumentController) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DocType models.DocumentType `json:"docType"`
	}
	if !decodeJSON(w, r, "CreateDocument", &req) {
		return
	}
	dispatch(w, r, c.documents, "CreateDocument", store.CreateNewDocument{DocType: req.DocType})
}

// SaveDocument handles POST /api/documents/save
func (c *DocumentController) SaveDocument(w http.ResponseWriter, r *http.Request) {
	dispatch(w, r, c.documents, "SaveDocument", store.SaveDocument{})
}

// LoadDocument handles POST /api/documents/{id}/load
func (c *DocumentController) LoadDocument(w http.ResponseWriter, r *http.Request) {
	dispatch(w, r, c.documents, "LoadDocument", store.LoadDocument{ID: chi.URLParam(r, "id")})
}

// DeleteDocument handles DELETE /api/documents/{id}
func (c *DocumentController) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	dispatch(w, r, c.documents, "DeleteDocument", store.DeleteDocument{ID: chi.URLParam(r, "id")})
}

// CloseEditor handles POST /api/editor/close
func (c *DocumentController) CloseEditor(w http.ResponseWriter, r *http.Request) {
	state, err := c.documents.CloseEditor(r.Context())
	if err != nil {
		writeDispatchError(w, "CloseEditor", state, err)
		return
	}

	config.GetLogger().Debug("✅ CloseEditor: back to dashboard")
	writeJSON(w, http.StatusOK, stateResponse{State: state, Changed: true, Status: c.documents.Status()})
}
