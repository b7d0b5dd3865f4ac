package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"tesouraria-ibs/models"
)

// rowsByLabel maps the first cell of each row to the row's raw values.
// The first row with a given label wins.
func rowsByLabel(t *testing.T, data []byte, sheet string) map[string][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)

	out := make(map[string][]string, len(rows))
	for _, row := range rows {
		if len(row) == 0 || row[0] == "" {
			continue
		}
		if _, seen := out[row[0]]; !seen {
			out[row[0]] = row
		}
	}
	return out
}

func TestBuildPayments_Summary(t *testing.T) {
	svc := NewSpreadsheetService(nil)
	data := models.NewPaymentSheetData("2025-03-07")
	data.Entries = 100000
	data.PreviousBalance = 5000
	data.ExtraEntries = []models.ExtraEntry{{ID: "x1", Description: "Bazar", Value: 2000}}
	data.Expenses = []models.Expense{{ID: "e1", Date: "2025-03-06", Description: "Conta de água", Value: 25050}}

	out, err := svc.BuildPayments(data)
	require.NoError(t, err)

	rows := rowsByLabel(t, out, "Pagamentos")
	assert.Equal(t, "IGREJA BÍBLICA SEMEAR", rows["IGREJA BÍBLICA SEMEAR"][0])
	assert.Equal(t, "07/03/2025", rows["Data"][1])
	assert.Equal(t, "Segunda", rows["Dia"][1])
	assert.Equal(t, "20", rows["Bazar"][1])
	assert.Equal(t, "1070", rows["Total Disponível"][1])
	assert.Equal(t, "250.5", rows["Total Despesas"][1])
	assert.Equal(t, "819.5", rows["Valor Total em Caixa"][1])
	assert.Equal(t, "Conta de água", rows["06/03/2025"][1])
}

func TestBuildTithes_Breakdown(t *testing.T) {
	svc := NewSpreadsheetService(nil)
	data := models.NewTithesReceiptData("2025-03-09")
	data.Entries = []models.TitheEntry{
		{ID: "t1", Name: "Maria", Value: 10000, Type: models.TitheTypeDizimo, PaymentMethod: models.PaymentMethodPix},
		{ID: "t2", Name: "João", Value: 2550, Type: models.TitheTypeOferta},
	}
	data.TotalAmount = 12550

	out, err := svc.BuildTithes(data)
	require.NoError(t, err)

	rows := rowsByLabel(t, out, "Recibo")
	assert.Equal(t, "Domingo", rows["Culto"][1])
	assert.Equal(t, []string{"Maria", "Dízimo", "PIX", "100"}, rows["Maria"])
	assert.Equal(t, "Dinheiro", rows["João"][2])
	assert.Equal(t, "25.5", rows["Oferta"][1])
	assert.Equal(t, "25.5", rows["Dinheiro"][1])
	assert.Equal(t, "125.5", rows["Total"][1])
}

func TestBuild_Dashboard(t *testing.T) {
	_, err := NewSpreadsheetService(nil).Build(models.AppState{CurrentView: models.ViewDashboard})
	assert.ErrorIs(t, err, ErrNoDocument)
}
