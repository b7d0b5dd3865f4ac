package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tesouraria-ibs/models"
)

func TestLoadState_EmptyBlobGivesDefault(t *testing.T) {
	state, report, err := LoadState(nil, fixedNow)

	require.NoError(t, err)
	assert.True(t, report.Clean())
	assert.Equal(t, DefaultState(fixedNow), state)
	assert.Equal(t, models.ViewDashboard, state.CurrentView)
	assert.NotNil(t, state.Documents)
}

func TestLoadState_UnparsableBlob(t *testing.T) {
	for _, raw := range []string{"{not json", "[1,2,3]", "null", `"text"`} {
		t.Run(raw, func(t *testing.T) {
			state, _, err := LoadState([]byte(raw), fixedNow)

			assert.Error(t, err)
			assert.Equal(t, DefaultState(fixedNow), state)
		})
	}
}

func TestLoadState_RepairsMissingCollections(t *testing.T) {
	raw := `{
		"currentView": "PAYMENTS",
		"activeDocumentId": "42",
		"tithesData": {"date": "2025-03-09", "serviceType": "DOMINGO", "attendance": {"men": 1, "women": 2, "children": 0}, "totalAmount": 0},
		"paymentData": {"date": "2025-03-07", "previousBalance": 100, "entries": 50.25, "totalAmount": 0}
	}`

	state, report, err := LoadState([]byte(raw), fixedNow)
	require.NoError(t, err)

	assert.Equal(t, models.ViewDashboard, state.CurrentView, "always opens at the dashboard")
	assert.Nil(t, state.ActiveDocumentID)

	assert.NotNil(t, state.TithesData.Entries)
	assert.Empty(t, state.TithesData.Entries)
	assert.Equal(t, 3, state.TithesData.Attendance.Total())

	assert.NotNil(t, state.PaymentData.ExtraEntries)
	assert.Empty(t, state.PaymentData.ExtraEntries)
	assert.NotNil(t, state.PaymentData.Expenses)
	assert.Equal(t, models.Money(15025), state.PaymentData.TotalAmount, "total recomputed")

	assert.NotNil(t, state.Documents)
	assert.ElementsMatch(t, []string{"tithesData.entries", "paymentData.extraEntries", "paymentData.expenses", "documents"}, report.Fixed)
}

func TestLoadState_ReplacesMalformedSubObjects(t *testing.T) {
	raw := `{"tithesData": 12, "paymentData": "oops", "documents": {}}`

	state, report, err := LoadState([]byte(raw), fixedNow)
	require.NoError(t, err)

	assert.Equal(t, models.NewTithesReceiptData("2025-03-09"), state.TithesData)
	assert.Equal(t, models.NewPaymentSheetData("2025-03-09"), state.PaymentData)
	assert.Empty(t, state.Documents)
	assert.False(t, report.Clean())
}

func TestLoadState_MalformedCollectionKeepsSiblingFields(t *testing.T) {
	raw := `{
		"tithesData": {"date": "2024-05-05", "serviceType": "QUINTA", "attendance": {"men": 10, "women": 4, "children": 2}, "entries": "oops"},
		"paymentData": {"date": "2024-05-02", "previousBalance": 500, "entries": 100, "extraEntries": {}, "expenses": [{"id": "e1", "description": "Luz", "value": 40}]},
		"documents": []
	}`

	state, report, err := LoadState([]byte(raw), fixedNow)
	require.NoError(t, err)

	tithes := state.TithesData
	assert.Equal(t, "2024-05-05", tithes.Date)
	assert.Equal(t, models.ServiceTypeQuinta, tithes.ServiceType)
	assert.Equal(t, 10, tithes.Attendance.Men)
	assert.NotNil(t, tithes.Entries)
	assert.Empty(t, tithes.Entries)

	payments := state.PaymentData
	assert.Equal(t, "2024-05-02", payments.Date)
	assert.Equal(t, models.Money(50000), payments.PreviousBalance)
	assert.Equal(t, models.Money(10000), payments.Entries)
	assert.NotNil(t, payments.ExtraEntries)
	assert.Empty(t, payments.ExtraEntries)
	require.Len(t, payments.Expenses, 1)
	assert.Equal(t, models.Money(56000), payments.TotalAmount)

	assert.ElementsMatch(t, []string{"tithesData.entries", "paymentData.extraEntries"}, report.Fixed)
}

func TestLoadState_DropsUnreadableDocuments(t *testing.T) {
	good := models.SavedDocument{
		ID:    "1",
		Type:  models.DocumentTypePayments,
		Title: "Pagamentos - 07/03/2025",
		Payments: &models.PaymentSheetData{
			Date:     "2025-03-07",
			Entries:  1000,
			Expenses: []models.Expense{{ID: "e1", Description: "Luz", Value: 400}},
		},
	}
	goodRaw, err := json.Marshal(good)
	require.NoError(t, err)

	raw := `{"documents": [` + string(goodRaw) + `, {"id": "2", "type": "UNKNOWN", "data": {}}, {"id": "", "type": "TITHES", "data": {}}, ` + string(goodRaw) + `]}`

	state, report, err := LoadState([]byte(raw), fixedNow)
	require.NoError(t, err)

	require.Len(t, state.Documents, 1)
	doc := state.Documents[0]
	assert.Equal(t, "1", doc.ID)
	require.NotNil(t, doc.Payments)
	assert.NotNil(t, doc.Payments.ExtraEntries)
	assert.Equal(t, models.Money(600), doc.Payments.TotalAmount)
	assert.Equal(t, 3, report.DroppedDocuments)
}

func TestLoadState_RoundTrip(t *testing.T) {
	state := mustReduce(t, DefaultState(fixedNow),
		CreateNewDocument{DocType: models.DocumentTypeTithes},
		AddTitheEntry{Entry: models.TitheEntry{ID: "t1", Name: "Maria", Value: 12345, Type: models.TitheTypeDizimo, PaymentMethod: models.PaymentMethodPix}},
		SaveDocument{},
		SetView{View: models.ViewDashboard},
	)
	state.ActiveDocumentID = nil

	raw, err := json.Marshal(state)
	require.NoError(t, err)

	loaded, report, err := LoadState(raw, fixedNow)
	require.NoError(t, err)
	assert.True(t, report.Clean())
	assert.Equal(t, state, loaded)
}
