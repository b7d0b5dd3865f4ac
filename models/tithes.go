package models

import (
	"fmt"
	"strings"
)

// TitheType is the category of a tithes receipt entry
type TitheType string

const (
	TitheTypeDizimo   TitheType = "DIZIMO"
	TitheTypeOferta   TitheType = "OFERTA"
	TitheTypeCampanha TitheType = "CAMPANHA"
	TitheTypeCantina  TitheType = "CANTINA"
	TitheTypeLivraria TitheType = "LIVRARIA"
	TitheTypeOutro    TitheType = "OUTRO"
)

// TitheTypes lists every entry category in display order
var TitheTypes = []TitheType{
	TitheTypeDizimo,
	TitheTypeOferta,
	TitheTypeCampanha,
	TitheTypeCantina,
	TitheTypeLivraria,
	TitheTypeOutro,
}

// Valid reports whether t is a known category
func (t TitheType) Valid() bool {
	for _, known := range TitheTypes {
		if t == known {
			return true
		}
	}
	return false
}

// PaymentMethod is how an entry was paid
type PaymentMethod string

const (
	PaymentMethodDinheiro PaymentMethod = "DINHEIRO"
	PaymentMethodCheque   PaymentMethod = "CHEQUE"
	PaymentMethodPix      PaymentMethod = "PIX"
)

// PaymentMethods lists every payment method in display order
var PaymentMethods = []PaymentMethod{PaymentMethodDinheiro, PaymentMethodCheque, PaymentMethodPix}

// Valid reports whether m is a known payment method
func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodDinheiro || m == PaymentMethodCheque || m == PaymentMethodPix
}

// ServiceType identifies the church service a receipt belongs to
type ServiceType string

const (
	ServiceTypeDomingo ServiceType = "DOMINGO"
	ServiceTypeQuinta  ServiceType = "QUINTA"
	ServiceTypeSabado  ServiceType = "SABADO"
	ServiceTypeOutro   ServiceType = "OUTRO"
)

// TitheEntry is one line of a tithes receipt
type TitheEntry struct {
	ID            string        `json:"id" validate:"required"`
	Name          string        `json:"name,omitempty"`
	Value         Money         `json:"value" validate:"gte=0"`
	Type          TitheType     `json:"type" validate:"required,oneof=DIZIMO OFERTA CAMPANHA CANTINA LIVRARIA OUTRO"`
	PaymentMethod PaymentMethod `json:"paymentMethod,omitempty" validate:"omitempty,oneof=DINHEIRO CHEQUE PIX"`
}

// Attendance counts the people present at a service
type Attendance struct {
	Men      int `json:"men" validate:"gte=0"`
	Women    int `json:"women" validate:"gte=0"`
	Children int `json:"children" validate:"gte=0"`
}

// Total returns the number of people present
func (a Attendance) Total() int {
	return a.Men + a.Women + a.Children
}

// TithesReceiptData is the working or saved tithes/offerings receipt.
// TotalAmount is derived from Entries and is never set by callers.
type TithesReceiptData struct {
	Date                    string       `json:"date"`
	ServiceType             ServiceType  `json:"serviceType"`
	OtherServiceDescription string       `json:"otherServiceDescription,omitempty"`
	Attendance              Attendance   `json:"attendance"`
	Entries                 []TitheEntry `json:"entries"`
	TotalAmount             Money        `json:"totalAmount"`
}

// NewTithesReceiptData returns a blank receipt dated date (YYYY-MM-DD)
func NewTithesReceiptData(date string) TithesReceiptData {
	return TithesReceiptData{
		Date:        date,
		ServiceType: ServiceTypeDomingo,
		Entries:     []TitheEntry{},
	}
}

// Clone returns a deep copy
func (d TithesReceiptData) Clone() TithesReceiptData {
	out := d
	out.Entries = make([]TitheEntry, len(d.Entries))
	copy(out.Entries, d.Entries)
	return out
}

// IsEmpty reports whether nothing was filled in yet
func (d TithesReceiptData) IsEmpty() bool {
	return d.TotalAmount == 0 && len(d.Entries) == 0 && d.Attendance.Total() == 0
}

// SummarySlot keys a synthetic entry written from the receipt's aggregate
// input fields. At most one entry exists per slot.
type SummarySlot struct {
	Type   TitheType     `json:"type" validate:"required,oneof=DIZIMO OFERTA CAMPANHA CANTINA LIVRARIA OUTRO"`
	Method PaymentMethod `json:"paymentMethod" validate:"required,oneof=DINHEIRO CHEQUE PIX"`
}

const (
	// SummaryEntryName is the contributor name given to synthetic summary entries
	SummaryEntryName = "Resumo Manual"
	// SummaryIDPrefix starts the id of every synthetic summary entry
	SummaryIDPrefix = "summary_"
)

// EntryID returns the persisted id of the slot's synthetic entry
func (s SummarySlot) EntryID() string {
	return fmt.Sprintf("%s%s_%s", SummaryIDPrefix, strings.ToLower(string(s.Type)), strings.ToLower(string(s.Method)))
}

// Entry builds the synthetic entry holding value for this slot
func (s SummarySlot) Entry(value Money) TitheEntry {
	return TitheEntry{
		ID:            s.EntryID(),
		Name:          SummaryEntryName,
		Value:         value,
		Type:          s.Type,
		PaymentMethod: s.Method,
	}
}
