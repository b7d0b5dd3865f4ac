package totals

import "tesouraria-ibs/models"

// TithesTotal is the sum of every entry's value
func TithesTotal(entries []models.TitheEntry) models.Money {
	var total models.Money
	for _, e := range entries {
		total += e.Value
	}
	return total
}

// PaymentTotal is (previous balance + entries + extra entries) - expenses.
// The result may be negative.
func PaymentTotal(data models.PaymentSheetData) models.Money {
	return TotalAvailable(data) - ExpensesTotal(data.Expenses)
}

// TotalAvailable is the money available before expenses
func TotalAvailable(data models.PaymentSheetData) models.Money {
	return data.PreviousBalance + data.Entries + ExtraEntriesTotal(data.ExtraEntries)
}

// ExtraEntriesTotal sums extra income lines
func ExtraEntriesTotal(extra []models.ExtraEntry) models.Money {
	var total models.Money
	for _, e := range extra {
		total += e.Value
	}
	return total
}

// ExpensesTotal sums expense values
func ExpensesTotal(expenses []models.Expense) models.Money {
	var total models.Money
	for _, e := range expenses {
		total += e.Value
	}
	return total
}

// PaymentSummary holds the figures printed on a payment sheet
type PaymentSummary struct {
	TotalAvailable models.Money `json:"totalAvailable"`
	ExtraEntries   models.Money `json:"extraEntries"`
	TotalExpenses  models.Money `json:"totalExpenses"`
	Balance        models.Money `json:"balance"`
	Negative       bool         `json:"negative"`
}

// SummarizePayments computes the payment sheet figures
func SummarizePayments(data models.PaymentSheetData) PaymentSummary {
	balance := PaymentTotal(data)
	return PaymentSummary{
		TotalAvailable: TotalAvailable(data),
		ExtraEntries:   ExtraEntriesTotal(data.ExtraEntries),
		TotalExpenses:  ExpensesTotal(data.Expenses),
		Balance:        balance,
		Negative:       balance < 0,
	}
}

// MethodSplit is a cash/cheque pair
type MethodSplit struct {
	Dinheiro models.Money `json:"dinheiro"`
	Cheque   models.Money `json:"cheque"`
}

// TithesBreakdown holds the figures printed on a tithes receipt footer
type TithesBreakdown struct {
	ByType   map[models.TitheType]models.Money     `json:"byType"`
	ByMethod map[models.PaymentMethod]models.Money `json:"byMethod"`
	Campanha MethodSplit                           `json:"campanha"`
	Cantina  MethodSplit                           `json:"cantina"`
	Livraria MethodSplit                           `json:"livraria"`
	// Geral groups DIZIMO, OFERTA and OUTRO
	Geral MethodSplit  `json:"geral"`
	Total models.Money `json:"total"`
}

// effectiveMethod treats entries without a method as cash
func effectiveMethod(e models.TitheEntry) models.PaymentMethod {
	if e.PaymentMethod == "" {
		return models.PaymentMethodDinheiro
	}
	return e.PaymentMethod
}

func addToSplit(split *MethodSplit, method models.PaymentMethod, value models.Money) {
	switch method {
	case models.PaymentMethodDinheiro:
		split.Dinheiro += value
	case models.PaymentMethodCheque:
		split.Cheque += value
	}
}

// BreakdownTithes computes per-type, per-method and footer totals
func BreakdownTithes(entries []models.TitheEntry) TithesBreakdown {
	b := TithesBreakdown{
		ByType:   make(map[models.TitheType]models.Money, len(models.TitheTypes)),
		ByMethod: make(map[models.PaymentMethod]models.Money, len(models.PaymentMethods)),
	}
	for _, t := range models.TitheTypes {
		b.ByType[t] = 0
	}
	for _, m := range models.PaymentMethods {
		b.ByMethod[m] = 0
	}

	for _, e := range entries {
		method := effectiveMethod(e)
		b.ByType[e.Type] += e.Value
		b.ByMethod[method] += e.Value
		b.Total += e.Value

		switch e.Type {
		case models.TitheTypeCampanha:
			addToSplit(&b.Campanha, method, e.Value)
		case models.TitheTypeCantina:
			addToSplit(&b.Cantina, method, e.Value)
		case models.TitheTypeLivraria:
			addToSplit(&b.Livraria, method, e.Value)
		case models.TitheTypeDizimo, models.TitheTypeOferta, models.TitheTypeOutro:
			addToSplit(&b.Geral, method, e.Value)
		}
	}
	return b
}

// SummaryValue returns the value currently held by a manual summary slot
func SummaryValue(entries []models.TitheEntry, slot models.SummarySlot) models.Money {
	id := slot.EntryID()
	for _, e := range entries {
		if e.ID == id {
			return e.Value
		}
	}
	return 0
}
