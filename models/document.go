package models

import (
	"encoding/json"
	"fmt"
)

// View is the screen the application shows
type View string

const (
	ViewDashboard View = "DASHBOARD"
	ViewTithes    View = "TITHES"
	ViewPayments  View = "PAYMENTS"
)

// Valid reports whether v is a known view
func (v View) Valid() bool {
	return v == ViewDashboard || v == ViewTithes || v == ViewPayments
}

// DocumentType is the kind of a saved document
type DocumentType string

const (
	DocumentTypeTithes   DocumentType = "TITHES"
	DocumentTypePayments DocumentType = "PAYMENTS"
)

// Valid reports whether t is a known document type
func (t DocumentType) Valid() bool {
	return t == DocumentTypeTithes || t == DocumentTypePayments
}

// View returns the editor view for this document type
func (t DocumentType) View() View {
	return View(t)
}

// SavedDocument is a snapshot of a working document.
// Exactly one of Tithes or Payments is set, matching Type; on the wire both
// are carried by the "data" field.
type SavedDocument struct {
	ID           string
	Type         DocumentType
	Title        string
	Date         string
	LastModified int64
	Tithes       *TithesReceiptData
	Payments     *PaymentSheetData
}

type savedDocumentJSON struct {
	ID           string          `json:"id"`
	Type         DocumentType    `json:"type"`
	Title        string          `json:"title"`
	Date         string          `json:"date"`
	Data         json.RawMessage `json:"data"`
	LastModified int64           `json:"lastModified"`
}

// MarshalJSON encodes the document with its data under "data"
func (d SavedDocument) MarshalJSON() ([]byte, error) {
	var data any
	switch d.Type {
	case DocumentTypeTithes:
		data = d.Tithes
	case DocumentTypePayments:
		data = d.Payments
	default:
		return nil, fmt.Errorf("unknown document type %q", d.Type)
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document data: %w", err)
	}
	return json.Marshal(savedDocumentJSON{
		ID:           d.ID,
		Type:         d.Type,
		Title:        d.Title,
		Date:         d.Date,
		Data:         raw,
		LastModified: d.LastModified,
	})
}

// UnmarshalJSON decodes "data" according to "type"
func (d *SavedDocument) UnmarshalJSON(b []byte) error {
	var wire savedDocumentJSON
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}

	out := SavedDocument{
		ID:           wire.ID,
		Type:         wire.Type,
		Title:        wire.Title,
		Date:         wire.Date,
		LastModified: wire.LastModified,
	}

	switch wire.Type {
	case DocumentTypeTithes:
		data := NewTithesReceiptData("")
		if len(wire.Data) > 0 {
			if err := json.Unmarshal(wire.Data, &data); err != nil {
				return fmt.Errorf("invalid tithes data: %w", err)
			}
		}
		if data.Entries == nil {
			data.Entries = []TitheEntry{}
		}
		out.Tithes = &data
	case DocumentTypePayments:
		data := NewPaymentSheetData("")
		if len(wire.Data) > 0 {
			if err := json.Unmarshal(wire.Data, &data); err != nil {
				return fmt.Errorf("invalid payment data: %w", err)
			}
		}
		if data.ExtraEntries == nil {
			data.ExtraEntries = []ExtraEntry{}
		}
		if data.Expenses == nil {
			data.Expenses = []Expense{}
		}
		out.Payments = &data
	default:
		return fmt.Errorf("unknown document type %q", wire.Type)
	}

	*d = out
	return nil
}

// Clone returns a deep copy
func (d SavedDocument) Clone() SavedDocument {
	out := d
	if d.Tithes != nil {
		t := d.Tithes.Clone()
		out.Tithes = &t
	}
	if d.Payments != nil {
		p := d.Payments.Clone()
		out.Payments = &p
	}
	return out
}

// AppState is the whole persisted application state
type AppState struct {
	CurrentView      View              `json:"currentView"`
	TithesData       TithesReceiptData `json:"tithesData"`
	PaymentData      PaymentSheetData  `json:"paymentData"`
	Documents        []SavedDocument   `json:"documents"`
	ActiveDocumentID *string           `json:"activeDocumentId"`
}

// Clone returns a deep copy sharing nothing with s
func (s AppState) Clone() AppState {
	out := s
	out.TithesData = s.TithesData.Clone()
	out.PaymentData = s.PaymentData.Clone()
	out.Documents = make([]SavedDocument, len(s.Documents))
	for i, doc := range s.Documents {
		out.Documents[i] = doc.Clone()
	}
	if s.ActiveDocumentID != nil {
		id := *s.ActiveDocumentID
		out.ActiveDocumentID = &id
	}
	return out
}

// ActiveID returns the active document id or "" when editing an unsaved document
func (s AppState) ActiveID() string {
	if s.ActiveDocumentID == nil {
		return ""
	}
	return *s.ActiveDocumentID
}

// FindDocument returns the index of the document with id, or -1
func (s AppState) FindDocument(id string) int {
	for i, doc := range s.Documents {
		if doc.ID == id {
			return i
		}
	}
	return -1
}
