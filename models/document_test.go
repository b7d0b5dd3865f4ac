package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavedDocument_TithesWireShape(t *testing.T) {
	data := NewTithesReceiptData("2025-03-09")
	data.Entries = []TitheEntry{{ID: "t1", Name: "Maria", Value: 15050, Type: TitheTypeDizimo, PaymentMethod: PaymentMethodPix}}
	data.TotalAmount = 15050
	doc := SavedDocument{
		ID:           "1741514400000",
		Type:         DocumentTypeTithes,
		Title:        "Dízimos - 09/03/2025",
		Date:         "2025-03-09T10:00:00Z",
		LastModified: 1741514400000,
		Tithes:       &data,
	}

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(raw, &wire))
	assert.Equal(t, "TITHES", wire["type"])
	inner := wire["data"].(map[string]any)
	assert.Equal(t, 150.5, inner["totalAmount"])
	assert.Equal(t, "DOMINGO", inner["serviceType"])

	var back SavedDocument
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, doc, back)
}

func TestSavedDocument_PaymentsMissingListsBecomeEmpty(t *testing.T) {
	raw := `{"id":"1","type":"PAYMENTS","title":"Pagamentos","date":"","lastModified":1,"data":{"entries":100}}`

	var doc SavedDocument
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	require.NotNil(t, doc.Payments)
	assert.Nil(t, doc.Tithes)
	assert.Equal(t, Money(10000), doc.Payments.Entries)
	assert.NotNil(t, doc.Payments.Expenses)
	assert.NotNil(t, doc.Payments.ExtraEntries)
}

func TestSavedDocument_UnknownType(t *testing.T) {
	var doc SavedDocument
	assert.Error(t, json.Unmarshal([]byte(`{"id":"1","type":"RECEIPT","data":{}}`), &doc))

	_, err := json.Marshal(SavedDocument{ID: "1", Type: "RECEIPT"})
	assert.Error(t, err)
}

func TestAppState_CloneSharesNothing(t *testing.T) {
	id := "42"
	data := NewPaymentSheetData("2025-03-07")
	state := AppState{
		CurrentView:      ViewPayments,
		TithesData:       NewTithesReceiptData("2025-03-07"),
		PaymentData:      data,
		Documents:        []SavedDocument{{ID: "42", Type: DocumentTypePayments, Payments: &data}},
		ActiveDocumentID: &id,
	}

	clone := state.Clone()
	clone.PaymentData.Expenses = append(clone.PaymentData.Expenses, Expense{ID: "e1", Description: "Luz", Value: 100})
	clone.Documents[0].Payments.Entries = 500
	*clone.ActiveDocumentID = "43"

	assert.Empty(t, state.PaymentData.Expenses)
	assert.Zero(t, state.Documents[0].Payments.Entries)
	assert.Equal(t, "42", state.ActiveID())
	assert.Equal(t, 0, state.FindDocument("42"))
	assert.Equal(t, -1, state.FindDocument("43"))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Dízimo", TitheTypeDizimo.Label())
	assert.Equal(t, "Dinheiro", PaymentMethod("").Label())

	receipt := NewTithesReceiptData("")
	receipt.ServiceType = ServiceTypeOutro
	receipt.OtherServiceDescription = "Culto de Jovens"
	assert.Equal(t, "Culto de Jovens", receipt.ServiceLabel())

	sheet := NewPaymentSheetData("")
	assert.Equal(t, "Segunda", sheet.DayLabel())
}

func TestSummarySlot(t *testing.T) {
	slot := SummarySlot{Type: TitheTypeCampanha, Method: PaymentMethodCheque}
	assert.Equal(t, "summary_campanha_cheque", slot.EntryID())

	entry := slot.Entry(5000)
	assert.Equal(t, SummaryEntryName, entry.Name)
	assert.Equal(t, Money(5000), entry.Value)
}
