package models

// DayOfWeek is the payment day marked on a payment sheet
type DayOfWeek string

const (
	DayOfWeekSegunda DayOfWeek = "SEGUNDA"
	DayOfWeekSexta   DayOfWeek = "SEXTA"
	DayOfWeekOutro   DayOfWeek = "OUTRO"
)

// Expense is a payment made out of the cash box
type Expense struct {
	ID          string `json:"id" validate:"required"`
	Date        string `json:"date"`
	Description string `json:"description" validate:"required"`
	Value       Money  `json:"value" validate:"gte=0"`
}

// ExtraEntry is an ad hoc additional income line
type ExtraEntry struct {
	ID          string `json:"id" validate:"required"`
	Description string `json:"description"`
	Value       Money  `json:"value" validate:"gte=0"`
}

// DefaultExtraEntryDescription is used when an extra entry is added without a description
const DefaultExtraEntryDescription = "Entrada Extra"

// PaymentSheetData is the working or saved miscellaneous payments sheet.
// TotalAmount is derived and may be negative (cash shortfall).
type PaymentSheetData struct {
	Date            string       `json:"date,omitempty"`
	DayOfWeek       DayOfWeek    `json:"dayOfWeek,omitempty"`
	CustomDay       string       `json:"customDay,omitempty"`
	PreviousBalance Money        `json:"previousBalance"`
	Entries         Money        `json:"entries"`
	ExtraEntries    []ExtraEntry `json:"extraEntries"`
	Expenses        []Expense    `json:"expenses"`
	TotalAmount     Money        `json:"totalAmount"`
}

// NewPaymentSheetData returns a blank payment sheet dated date (YYYY-MM-DD)
func NewPaymentSheetData(date string) PaymentSheetData {
	return PaymentSheetData{
		Date:         date,
		DayOfWeek:    DayOfWeekSegunda,
		ExtraEntries: []ExtraEntry{},
		Expenses:     []Expense{},
	}
}

// Clone returns a deep copy
func (d PaymentSheetData) Clone() PaymentSheetData {
	out := d
	out.ExtraEntries = make([]ExtraEntry, len(d.ExtraEntries))
	copy(out.ExtraEntries, d.ExtraEntries)
	out.Expenses = make([]Expense, len(d.Expenses))
	copy(out.Expenses, d.Expenses)
	return out
}

// IsEmpty reports whether nothing was filled in yet
func (d PaymentSheetData) IsEmpty() bool {
	return d.Entries == 0 && d.PreviousBalance == 0 && len(d.Expenses) == 0 && len(d.ExtraEntries) == 0
}
