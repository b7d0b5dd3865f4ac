package totals

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tesouraria-ibs/models"
)

func TestPaymentTotal(t *testing.T) {
	tests := []struct {
		name string
		data models.PaymentSheetData
		want models.Money
	}{
		{
			name: "empty sheet",
			data: models.NewPaymentSheetData("2025-03-07"),
			want: 0,
		},
		{
			name: "balance plus entries minus expenses",
			data: models.PaymentSheetData{
				PreviousBalance: 10000,
				Entries:         50000,
				ExtraEntries:    []models.ExtraEntry{{ID: "x1", Value: 2550}},
				Expenses:        []models.Expense{{ID: "e1", Description: "Luz", Value: 12000}},
			},
			want: 50550,
		},
		{
			name: "shortfall is negative",
			data: models.PaymentSheetData{
				Entries:  1000,
				Expenses: []models.Expense{{ID: "e1", Description: "Água", Value: 4500}},
			},
			want: -3500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PaymentTotal(tt.data))
		})
	}
}

func TestSummarizePayments_FlagsNegativeBalance(t *testing.T) {
	data := models.PaymentSheetData{
		PreviousBalance: 500,
		Expenses:        []models.Expense{{ID: "e1", Description: "Gás", Value: 800}},
	}

	summary := SummarizePayments(data)

	assert.Equal(t, models.Money(500), summary.TotalAvailable)
	assert.Equal(t, models.Money(800), summary.TotalExpenses)
	assert.Equal(t, models.Money(-300), summary.Balance)
	assert.True(t, summary.Negative)
}

func TestBreakdownTithes(t *testing.T) {
	entries := []models.TitheEntry{
		{ID: "1", Type: models.TitheTypeDizimo, Value: 10000},
		{ID: "2", Type: models.TitheTypeOferta, Value: 2000, PaymentMethod: models.PaymentMethodCheque},
		{ID: "3", Type: models.TitheTypeCampanha, Value: 3000, PaymentMethod: models.PaymentMethodDinheiro},
		{ID: "4", Type: models.TitheTypeCantina, Value: 1500, PaymentMethod: models.PaymentMethodPix},
		{ID: "5", Type: models.TitheTypeLivraria, Value: 700, PaymentMethod: models.PaymentMethodCheque},
	}

	b := BreakdownTithes(entries)

	assert.Equal(t, models.Money(17200), b.Total)
	assert.Equal(t, models.Money(10000), b.ByType[models.TitheTypeDizimo])
	assert.Equal(t, models.Money(0), b.ByType[models.TitheTypeOutro])
	// entries without a method count as cash
	assert.Equal(t, models.Money(13000), b.ByMethod[models.PaymentMethodDinheiro])
	assert.Equal(t, models.Money(2700), b.ByMethod[models.PaymentMethodCheque])
	assert.Equal(t, models.Money(1500), b.ByMethod[models.PaymentMethodPix])
	assert.Equal(t, MethodSplit{Dinheiro: 10000, Cheque: 2000}, b.Geral)
	assert.Equal(t, MethodSplit{Dinheiro: 3000}, b.Campanha)
	assert.Equal(t, MethodSplit{}, b.Cantina)
	assert.Equal(t, MethodSplit{Cheque: 700}, b.Livraria)
}

func TestSummaryValue(t *testing.T) {
	slot := models.SummarySlot{Type: models.TitheTypeCantina, Method: models.PaymentMethodCheque}
	entries := []models.TitheEntry{slot.Entry(4200)}

	assert.Equal(t, models.Money(4200), SummaryValue(entries, slot))
	assert.Equal(t, models.Money(0), SummaryValue(entries, models.SummarySlot{Type: models.TitheTypeDizimo, Method: models.PaymentMethodCheque}))
}
