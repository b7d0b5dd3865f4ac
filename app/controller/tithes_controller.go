package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"tesouraria-ibs/models"
	"tesouraria-ibs/store"
)

// TithesController handles edits of the working tithes receipt
type TithesController struct {
	documents store.StoreInterface
}

// NewTithesController creates a new TithesController
func NewTithesController(documents store.StoreInterface) *TithesController {
	return &TithesController{documents: documents}
}

// UpdateTithes handles PATCH /api/tithes
// Example request:
// { "serviceType": "QUINTA", "attendance": { "men": 10, "women": 12, "children": 4 } }
func (c *TithesController) UpdateTithes(w http.ResponseWriter, r *http.Request) {
	var patch models.TithesPatch
	if !decodeJSON(w, r, "UpdateTithes", &patch) {
		return
	}
	dispatch(w, r, c.documents, "UpdateTithes", store.UpdateTithesData{Patch: patch})
}

// AddEntry handles POST /api/tithes/entries
// Example request:
// { "name": "Maria", "value": 150.5, "type": "DIZIMO", "paymentMethod": "PIX" }
func (c *TithesController) AddEntry(w http.ResponseWriter, r *http.Request) {
	var entry models.TitheEntry
	if !decodeJSON(w, r, "AddEntry", &entry) {
		return
	}
	if entry.Value <= 0 {
		writeError(w, http.StatusBadRequest, "value must be greater than 0", map[string]string{"value": "gt"})
		return
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	dispatch(w, r, c.documents, "AddEntry", store.AddTitheEntry{Entry: entry})
}

// RemoveEntry handles DELETE /api/tithes/entries/{id}
func (c *TithesController) RemoveEntry(w http.ResponseWriter, r *http.Request) {
	dispatch(w, r, c.documents, "RemoveEntry", store.RemoveTitheEntry{ID: chi.URLParam(r, "id")})
}

// SetSummary handles PUT /api/tithes/summary
// Example request:
// { "type": "CAMPANHA", "paymentMethod": "CHEQUE", "value": 50 }
func (c *TithesController) SetSummary(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type          models.TitheType     `json:"type"`
		PaymentMethod models.PaymentMethod `json:"paymentMethod"`
		Value         models.Money         `json:"value"`
	}
	if !decodeJSON(w, r, "SetSummary", &req) {
		return
	}
	dispatch(w, r, c.documents, "SetSummary", store.SetSummarySlot{
		Slot:  models.SummarySlot{Type: req.Type, Method: req.PaymentMethod},
		Value: req.Value,
	})
}
