package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tesouraria-ibs/models"
)

func TestSuggestFileName(t *testing.T) {
	tithes := models.AppState{CurrentView: models.ViewTithes, TithesData: models.NewTithesReceiptData("2025-03-09")}
	payments := paymentsState(0)
	undated := paymentsState(0)
	undated.PaymentData.Date = ""

	tests := []struct {
		name  string
		state models.AppState
		ext   string
		want  string
	}{
		{"tithes receipt", tithes, ".pdf", "Recibo_Dizimo_Ofertas_09-03-2025.pdf"},
		{"payment sheet", payments, ".pdf", "Pagamentos_Diversos_07-03-2025.pdf"},
		{"spreadsheet", payments, ".xlsx", "Pagamentos_Diversos_07-03-2025.xlsx"},
		{"no date", undated, ".pdf", "Pagamentos_Diversos.pdf"},
		{"dashboard", models.AppState{CurrentView: models.ViewDashboard}, ".pdf", "Documento.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SuggestFileName(tt.state, tt.ext))
		})
	}
}

func TestSuggest_UsesRememberedDirectory(t *testing.T) {
	ctx := context.Background()
	prefs := &fakePrefs{}
	svc := NewFileSaveService(prefs)

	first, err := svc.Suggest(ctx, paymentsState(0), ".pdf")
	require.NoError(t, err)
	assert.Equal(t, "Pagamentos_Diversos_07-03-2025.pdf", first.DefaultPath)

	prefs.dir = "/home/tesouraria/Recibos"
	second, err := svc.Suggest(ctx, paymentsState(0), ".pdf")
	require.NoError(t, err)
	assert.Equal(t, "Pagamentos_Diversos_07-03-2025.pdf", second.FileName)
	assert.Equal(t, filepath.Join("/home/tesouraria/Recibos", "Pagamentos_Diversos_07-03-2025.pdf"), second.DefaultPath)
}

func TestWriteFile_RemembersDirectory(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	prefs := &fakePrefs{}
	svc := NewFileSaveService(prefs)

	path := filepath.Join(dir, "out.pdf")
	require.NoError(t, svc.WriteFile(ctx, path, []byte("%PDF")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data))
	assert.Equal(t, dir, prefs.dir)
}

func TestWriteFile_PreferenceFailureIsNotFatal(t *testing.T) {
	svc := NewFileSaveService(&fakePrefs{setErr: errors.New("disk full")})
	path := filepath.Join(t.TempDir(), "out.pdf")

	assert.NoError(t, svc.WriteFile(context.Background(), path, []byte("%PDF")))
	assert.FileExists(t, path)
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	prefs := &fakePrefs{}
	svc := NewFileSaveService(prefs)

	err := svc.WriteFile(context.Background(), filepath.Join(t.TempDir(), "missing", "out.pdf"), []byte("%PDF"))
	assert.Error(t, err)
	assert.Empty(t, prefs.dir)
}
