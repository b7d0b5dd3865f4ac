package service

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"tesouraria-ibs/models"
)

// fakePrefs is an in-memory PreferencesRepositoryInterface
type fakePrefs struct {
	dir    string
	setErr error
	getErr error
}

func (f *fakePrefs) LastSaveDir(context.Context) (string, error) {
	return f.dir, f.getErr
}

func (f *fakePrefs) SetLastSaveDir(_ context.Context, dir string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.dir = dir
	return nil
}

// pngOf returns a width x height PNG filled with c
func pngOf(t *testing.T, width, height int, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func makeExpenses(n int) []models.Expense {
	out := make([]models.Expense, n)
	for i := range out {
		out[i] = models.Expense{
			ID:          string(rune('a'+i%26)) + "-exp",
			Date:        "2025-03-07",
			Description: "Conta de luz",
			Value:       1000,
		}
	}
	return out
}

// paymentsState is a saved payment sheet open in the editor
func paymentsState(expenses int) models.AppState {
	data := models.NewPaymentSheetData("2025-03-07")
	data.Entries = 100000
	data.Expenses = makeExpenses(expenses)
	data.TotalAmount = 100000 - models.Money(expenses*1000)
	return models.AppState{
		CurrentView:      models.ViewPayments,
		TithesData:       models.NewTithesReceiptData("2025-03-07"),
		PaymentData:      data,
		Documents:        []models.SavedDocument{},
		ActiveDocumentID: strPtr("1741341600000"),
	}
}
