package models

// TithesPatch is a partial update of the working tithes receipt.
// Nil fields are left unchanged. TotalAmount is not patchable.
type TithesPatch struct {
	Date                    *string       `json:"date,omitempty"`
	ServiceType             *ServiceType  `json:"serviceType,omitempty" validate:"omitempty,oneof=DOMINGO QUINTA SABADO OUTRO"`
	OtherServiceDescription *string       `json:"otherServiceDescription,omitempty"`
	Attendance              *Attendance   `json:"attendance,omitempty"`
	Entries                 *[]TitheEntry `json:"entries,omitempty" validate:"omitempty,unique=ID,dive"`
}

// Apply returns data with the patch merged in
func (p TithesPatch) Apply(data TithesReceiptData) TithesReceiptData {
	out := data.Clone()
	if p.Date != nil {
		out.Date = *p.Date
	}
	if p.ServiceType != nil {
		out.ServiceType = *p.ServiceType
	}
	if p.OtherServiceDescription != nil {
		out.OtherServiceDescription = *p.OtherServiceDescription
	}
	if p.Attendance != nil {
		out.Attendance = *p.Attendance
	}
	if p.Entries != nil {
		out.Entries = make([]TitheEntry, len(*p.Entries))
		copy(out.Entries, *p.Entries)
	}
	return out
}

// PaymentPatch is a partial update of the working payment sheet.
// Nil fields are left unchanged. TotalAmount is not patchable.
type PaymentPatch struct {
	Date            *string       `json:"date,omitempty"`
	DayOfWeek       *DayOfWeek    `json:"dayOfWeek,omitempty" validate:"omitempty,oneof=SEGUNDA SEXTA OUTRO"`
	CustomDay       *string       `json:"customDay,omitempty"`
	PreviousBalance *Money        `json:"previousBalance,omitempty"`
	Entries         *Money        `json:"entries,omitempty" validate:"omitempty,gte=0"`
	ExtraEntries    *[]ExtraEntry `json:"extraEntries,omitempty" validate:"omitempty,unique=ID,dive"`
	Expenses        *[]Expense    `json:"expenses,omitempty" validate:"omitempty,unique=ID,dive"`
}

// Apply returns data with the patch merged in
func (p PaymentPatch) Apply(data PaymentSheetData) PaymentSheetData {
	out := data.Clone()
	if p.Date != nil {
		out.Date = *p.Date
	}
	if p.DayOfWeek != nil {
		out.DayOfWeek = *p.DayOfWeek
	}
	if p.CustomDay != nil {
		out.CustomDay = *p.CustomDay
	}
	if p.PreviousBalance != nil {
		out.PreviousBalance = *p.PreviousBalance
	}
	if p.Entries != nil {
		out.Entries = *p.Entries
	}
	if p.ExtraEntries != nil {
		out.ExtraEntries = make([]ExtraEntry, len(*p.ExtraEntries))
		copy(out.ExtraEntries, *p.ExtraEntries)
	}
	if p.Expenses != nil {
		out.Expenses = make([]Expense, len(*p.Expenses))
		copy(out.Expenses, *p.Expenses)
	}
	return out
}
