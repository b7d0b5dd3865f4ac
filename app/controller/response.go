package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"tesouraria-ibs/config"
	"tesouraria-ibs/models"
	"tesouraria-ibs/store"
)

// errorResponse is the body of every 4xx/5xx reply
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
	State  *models.AppState  `json:"state,omitempty"`
}

// stateResponse is the body of every accepted action
type stateResponse struct {
	State   models.AppState    `json:"state"`
	Changed bool               `json:"changed"`
	Status  store.EditorStatus `json:"status"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		config.GetLogger().Errorf("❌ writeJSON: Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, fields map[string]string) {
	writeJSON(w, status, errorResponse{Error: message, Fields: fields})
}

// decodeJSON reads the request body into dst, answering 400 on failure
func decodeJSON(w http.ResponseWriter, r *http.Request, op string, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		config.GetLogger().Errorf("❌ %s: Failed to decode request body: %v", op, err)
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return false
	}
	return true
}

// processValidationErrors maps each failing field (json name, lowercased) to the failed tag
func processValidationErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fields := make(map[string]string, len(validationErrors))
	for _, ve := range validationErrors {
		fields[jsonFieldName(ve.Field())] = ve.Tag()
	}
	return fields
}

// jsonFieldName turns a Go field name into its camelCase JSON name (ID -> id, DocType -> docType)
func jsonFieldName(name string) string {
	if name == "" || strings.ToUpper(name) == name {
		return strings.ToLower(name)
	}
	return strings.ToLower(name[:1]) + name[1:]
}

// dispatch applies action and writes the resulting state.
// A persistence failure still carries the new state so the shell can keep showing it.
func dispatch(w http.ResponseWriter, r *http.Request, documents store.StoreInterface, op string, action store.Action) {
	log := config.GetLogger()
	log.Debugf("📥 %s: %s %s", op, r.Method, r.URL.Path)

	state, changed, err := documents.Dispatch(r.Context(), action)
	if err != nil {
		writeDispatchError(w, op, state, err)
		return
	}

	writeJSON(w, http.StatusOK, stateResponse{State: state, Changed: changed, Status: documents.Status()})
}

func writeDispatchError(w http.ResponseWriter, op string, state models.AppState, err error) {
	log := config.GetLogger()
	switch {
	case errors.Is(err, store.ErrInvalidAction):
		log.Warnf("⚠️ %s: %v", op, err)
		writeError(w, http.StatusBadRequest, err.Error(), processValidationErrors(err))
	case errors.Is(err, store.ErrPersist):
		log.Errorf("❌ %s: %v", op, err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: "Falha ao salvar os dados: " + err.Error(),
			State: &state,
		})
	default:
		log.Errorf("❌ %s: %v", op, err)
		writeError(w, http.StatusInternalServerError, err.Error(), nil)
	}
}
