package store

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"tesouraria-ibs/models"
)

// RepairReport lists what LoadState had to fix in a persisted blob
type RepairReport struct {
	Fixed            []string
	DroppedDocuments int
}

// Clean reports whether the blob needed no repair
func (r RepairReport) Clean() bool {
	return len(r.Fixed) == 0 && r.DroppedDocuments == 0
}

func (r *RepairReport) fix(part string) {
	if !slices.Contains(r.Fixed, part) {
		r.Fixed = append(r.Fixed, part)
	}
}

// LoadState rebuilds application state from a persisted blob.
// Missing or malformed parts are replaced with defaults; documents that cannot
// be decoded are dropped. An error is returned only when raw is not a JSON
// object at all, in which case the default state is returned alongside it.
// The loaded state always opens at the dashboard with no active document.
func LoadState(raw []byte, now time.Time) (models.AppState, RepairReport, error) {
	state := DefaultState(now)
	var report RepairReport

	if len(raw) == 0 {
		return state, report, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return state, report, fmt.Errorf("failed to parse persisted state: %w", err)
	}
	if fields == nil {
		return state, report, fmt.Errorf("failed to parse persisted state: not an object")
	}

	if tithes, ok := decodeTithes(fields["tithesData"], now, &report); ok {
		state.TithesData = tithes
	}
	if payments, ok := decodePayments(fields["paymentData"], &report); ok {
		state.PaymentData = payments
	}
	state.Documents = decodeDocuments(fields["documents"], &report)

	state.CurrentView = models.ViewDashboard
	state.ActiveDocumentID = nil
	return state, report, nil
}

func decodeTithes(raw json.RawMessage, now time.Time, report *RepairReport) (models.TithesReceiptData, bool) {
	if isAbsent(raw) {
		report.fix("tithesData")
		return models.TithesReceiptData{}, false
	}
	data := models.NewTithesReceiptData(now.Format(dateLayout))
	data.Entries = nil
	if !decodeObject(raw, &data, "tithesData", report) {
		report.fix("tithesData")
		return models.TithesReceiptData{}, false
	}
	if data.Entries == nil {
		report.fix("tithesData.entries")
		data.Entries = []models.TitheEntry{}
	}
	return withTithesTotal(data), true
}

func decodePayments(raw json.RawMessage, report *RepairReport) (models.PaymentSheetData, bool) {
	if isAbsent(raw) {
		report.fix("paymentData")
		return models.PaymentSheetData{}, false
	}
	var data models.PaymentSheetData
	if !decodeObject(raw, &data, "paymentData", report) {
		report.fix("paymentData")
		return models.PaymentSheetData{}, false
	}
	if data.ExtraEntries == nil {
		report.fix("paymentData.extraEntries")
		data.ExtraEntries = []models.ExtraEntry{}
	}
	if data.Expenses == nil {
		report.fix("paymentData.expenses")
		data.Expenses = []models.Expense{}
	}
	return withPaymentTotal(data), true
}

// decodeObject decodes the JSON object raw into dst. Fields that do not decode
// on their own are dropped and reported as name.field, so one bad field keeps
// the rest of the object. It fails only when raw is not an object.
func decodeObject[T any](raw json.RawMessage, dst *T, name string, report *RepairReport) bool {
	initial := *dst
	if err := json.Unmarshal(raw, dst); err == nil {
		return true
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return false
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		single, err := json.Marshal(map[string]json.RawMessage{key: fields[key]})
		if err != nil {
			return false
		}
		var scratch T
		if err := json.Unmarshal(single, &scratch); err != nil {
			delete(fields, key)
			report.fix(name + "." + key)
		}
	}

	pruned, err := json.Marshal(fields)
	if err != nil {
		return false
	}
	*dst = initial
	return json.Unmarshal(pruned, dst) == nil
}

func decodeDocuments(raw json.RawMessage, report *RepairReport) []models.SavedDocument {
	docs := []models.SavedDocument{}
	if isAbsent(raw) {
		report.fix("documents")
		return docs
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		report.fix("documents")
		return docs
	}

	seen := make(map[string]bool, len(items))
	for _, item := range items {
		var doc models.SavedDocument
		if err := json.Unmarshal(item, &doc); err != nil || doc.ID == "" || seen[doc.ID] {
			report.DroppedDocuments++
			continue
		}
		seen[doc.ID] = true
		if doc.Tithes != nil {
			t := withTithesTotal(*doc.Tithes)
			doc.Tithes = &t
		}
		if doc.Payments != nil {
			p := withPaymentTotal(*doc.Payments)
			doc.Payments = &p
		}
		docs = append(docs, doc)
	}
	return docs
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
