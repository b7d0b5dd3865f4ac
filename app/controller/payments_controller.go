package controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"tesouraria-ibs/models"
	"tesouraria-ibs/store"
)

// PaymentsController handles edits of the working payment sheet
type PaymentsController struct {
	documents store.StoreInterface
	now       func() time.Time
}

// NewPaymentsController creates a new PaymentsController.
// now dates expenses added without a date; nil means time.Now.
func NewPaymentsController(documents store.StoreInterface, now func() time.Time) *PaymentsController {
	if now == nil {
		now = time.Now
	}
	return &PaymentsController{documents: documents, now: now}
}

// UpdatePayments handles PATCH /api/payments
// Example request:
// { "previousBalance": 320.75, "entries": 1500, "dayOfWeek": "SEXTA" }
func (c *PaymentsController) UpdatePayments(w http.ResponseWriter, r *http.Request) {
	var patch models.PaymentPatch
	if !decodeJSON(w, r, "UpdatePayments", &patch) {
		return
	}
	dispatch(w, r, c.documents, "UpdatePayments", store.UpdatePaymentData{Patch: patch})
}

// AddExpense handles POST /api/payments/expenses
// Example request:
// { "date": "2025-03-07", "description": "Conta de luz", "value": 250.5 }
func (c *PaymentsController) AddExpense(w http.ResponseWriter, r *http.Request) {
	var expense models.Expense
	if !decodeJSON(w, r, "AddExpense", &expense) {
		return
	}

	expense.Description = strings.TrimSpace(expense.Description)
	if expense.Description == "" {
		writeError(w, http.StatusBadRequest, "description is required", map[string]string{"description": "required"})
		return
	}
	if expense.Value <= 0 {
		writeError(w, http.StatusBadRequest, "value must be greater than 0", map[string]string{"value": "gt"})
		return
	}
	if expense.ID == "" {
		expense.ID = uuid.NewString()
	}
	if expense.Date == "" {
		expense.Date = c.now().Format("2006-01-02")
	}

	dispatch(w, r, c.documents, "AddExpense", store.AddExpense{Expense: expense})
}

// RemoveExpense handles DELETE /api/payments/expenses/{id}
func (c *PaymentsController) RemoveExpense(w http.ResponseWriter, r *http.Request) {
	dispatch(w, r, c.documents, "RemoveExpense", store.RemoveExpense{ID: chi.URLParam(r, "id")})
}

// AddExtraEntry handles POST /api/payments/extra-entries
// Example request:
// { "description": "Bazar", "value": 80 }
func (c *PaymentsController) AddExtraEntry(w http.ResponseWriter, r *http.Request) {
	var entry models.ExtraEntry
	if !decodeJSON(w, r, "AddExtraEntry", &entry) {
		return
	}
	if entry.Value <= 0 {
		writeError(w, http.StatusBadRequest, "value must be greater than 0", map[string]string{"value": "gt"})
		return
	}
	if strings.TrimSpace(entry.Description) == "" {
		entry.Description = models.DefaultExtraEntryDescription
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	dispatch(w, r, c.documents, "AddExtraEntry", store.AddExtraEntry{Entry: entry})
}

// RemoveExtraEntry handles DELETE /api/payments/extra-entries/{id}
func (c *PaymentsController) RemoveExtraEntry(w http.ResponseWriter, r *http.Request) {
	dispatch(w, r, c.documents, "RemoveExtraEntry", store.RemoveExtraEntry{ID: chi.URLParam(r, "id")})
}
