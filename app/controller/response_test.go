package controller

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tesouraria-ibs/models"
	"tesouraria-ibs/store"
)

func TestProcessValidationErrors(t *testing.T) {
	err := validator.New().Struct(models.Expense{Value: -1})
	require.Error(t, err)

	fields := processValidationErrors(fmt.Errorf("%w: %w", store.ErrInvalidAction, err))
	assert.Equal(t, map[string]string{
		"id":          "required",
		"description": "required",
		"value":       "gte",
	}, fields)

	assert.Nil(t, processValidationErrors(errors.New("plain")))
}

func TestWriteDispatchError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid", fmt.Errorf("%w: bad view", store.ErrInvalidAction), http.StatusBadRequest},
		{"persist", fmt.Errorf("%w: disk full", store.ErrPersist), http.StatusInternalServerError},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeDispatchError(rec, "Test", models.AppState{CurrentView: models.ViewDashboard}, tt.err)
			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}
