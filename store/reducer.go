package store

import (
	"strconv"
	"time"

	"tesouraria-ibs/models"
	"tesouraria-ibs/totals"
	"tesouraria-ibs/utils"
)

// Clock supplies the current time to the reducer
type Clock func() time.Time

// dateLayout is the YYYY-MM-DD form used by document dates
const dateLayout = "2006-01-02"

// DefaultState is the state of a fresh installation
func DefaultState(now time.Time) models.AppState {
	date := now.Format(dateLayout)
	return models.AppState{
		CurrentView: models.ViewDashboard,
		TithesData:  models.NewTithesReceiptData(date),
		PaymentData: models.NewPaymentSheetData(date),
		Documents:   []models.SavedDocument{},
	}
}

// Reduce applies action to state and returns the next state.
// changed is false when the action is a no-op (unknown action, lookup miss,
// or nothing to save); in that case next is state itself and nothing should
// be persisted. state is never modified.
func Reduce(state models.AppState, action Action, now Clock) (next models.AppState, changed bool) {
	switch a := action.(type) {
	case SetView:
		next = state.Clone()
		next.CurrentView = a.View
		return next, true

	case CreateNewDocument:
		next = state.Clone()
		next.CurrentView = a.DocType.View()
		next.ActiveDocumentID = nil
		date := now().Format(dateLayout)
		switch a.DocType {
		case models.DocumentTypeTithes:
			next.TithesData = models.NewTithesReceiptData(date)
		case models.DocumentTypePayments:
			next.PaymentData = models.NewPaymentSheetData(date)
		}
		return next, true

	case SaveDocument:
		return saveDocument(state, now())

	case LoadDocument:
		idx := state.FindDocument(a.ID)
		if idx < 0 {
			return state, false
		}
		next = state.Clone()
		doc := next.Documents[idx]
		next.CurrentView = doc.Type.View()
		id := doc.ID
		next.ActiveDocumentID = &id
		switch doc.Type {
		case models.DocumentTypeTithes:
			if doc.Tithes != nil {
				next.TithesData = withTithesTotal(doc.Tithes.Clone())
			}
		case models.DocumentTypePayments:
			if doc.Payments != nil {
				next.PaymentData = withPaymentTotal(doc.Payments.Clone())
			}
		}
		return next, true

	case DeleteDocument:
		idx := state.FindDocument(a.ID)
		if idx < 0 {
			return state, false
		}
		next = state.Clone()
		next.Documents = append(next.Documents[:idx], next.Documents[idx+1:]...)
		return next, true

	case UpdateTithesData:
		next = state.Clone()
		next.TithesData = withTithesTotal(a.Patch.Apply(state.TithesData))
		return next, true

	case AddTitheEntry:
		next = state.Clone()
		next.TithesData.Entries = append(next.TithesData.Entries, a.Entry)
		next.TithesData = withTithesTotal(next.TithesData)
		return next, true

	case RemoveTitheEntry:
		next = state.Clone()
		next.TithesData.Entries = removeByID(next.TithesData.Entries, a.ID, func(e models.TitheEntry) string { return e.ID })
		next.TithesData = withTithesTotal(next.TithesData)
		return next, true

	case SetSummarySlot:
		next = state.Clone()
		next.TithesData.Entries = setSummarySlot(next.TithesData.Entries, a.Slot, a.Value)
		next.TithesData = withTithesTotal(next.TithesData)
		return next, true

	case UpdatePaymentData:
		next = state.Clone()
		next.PaymentData = withPaymentTotal(a.Patch.Apply(state.PaymentData))
		return next, true

	case AddExpense:
		next = state.Clone()
		next.PaymentData.Expenses = append(next.PaymentData.Expenses, a.Expense)
		next.PaymentData = withPaymentTotal(next.PaymentData)
		return next, true

	case RemoveExpense:
		next = state.Clone()
		next.PaymentData.Expenses = removeByID(next.PaymentData.Expenses, a.ID, func(e models.Expense) string { return e.ID })
		next.PaymentData = withPaymentTotal(next.PaymentData)
		return next, true

	case AddExtraEntry:
		next = state.Clone()
		next.PaymentData.ExtraEntries = append(next.PaymentData.ExtraEntries, a.Entry)
		next.PaymentData = withPaymentTotal(next.PaymentData)
		return next, true

	case RemoveExtraEntry:
		next = state.Clone()
		next.PaymentData.ExtraEntries = removeByID(next.PaymentData.ExtraEntries, a.ID, func(e models.ExtraEntry) string { return e.ID })
		next.PaymentData = withPaymentTotal(next.PaymentData)
		return next, true
	}

	return state, false
}

// saveDocument snapshots the working data of the current editor view.
// On the dashboard there is nothing to save.
func saveDocument(state models.AppState, now time.Time) (models.AppState, bool) {
	var docType models.DocumentType
	switch state.CurrentView {
	case models.ViewTithes:
		docType = models.DocumentTypeTithes
	case models.ViewPayments:
		docType = models.DocumentTypePayments
	default:
		return state, false
	}

	next := state.Clone()
	id := next.ActiveID()
	if id == "" {
		id = newDocumentID(next, now)
	}

	doc := models.SavedDocument{
		ID:           id,
		Type:         docType,
		Date:         now.UTC().Format(time.RFC3339Nano),
		LastModified: now.UnixMilli(),
	}
	if docType == models.DocumentTypeTithes {
		data := next.TithesData.Clone()
		doc.Tithes = &data
		doc.Title = DocumentTitle(docType, data.Date)
	} else {
		data := next.PaymentData.Clone()
		doc.Payments = &data
		doc.Title = DocumentTitle(docType, data.Date)
	}

	if idx := next.FindDocument(id); idx >= 0 {
		next.Documents[idx] = doc
	} else {
		next.Documents = append([]models.SavedDocument{doc}, next.Documents...)
	}
	next.ActiveDocumentID = &id
	return next, true
}

// newDocumentID is the save time in milliseconds, bumped past any id already taken
func newDocumentID(state models.AppState, now time.Time) string {
	ms := now.UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if state.FindDocument(id) < 0 {
			return id
		}
		ms++
	}
}

// DocumentTitle is the dashboard title of a saved document
func DocumentTitle(docType models.DocumentType, date string) string {
	label := "Pagamentos"
	if docType == models.DocumentTypeTithes {
		label = "Dízimos"
	}
	if date == "" {
		return label
	}
	return label + " - " + utils.FormatDate(date)
}

func withTithesTotal(data models.TithesReceiptData) models.TithesReceiptData {
	data.TotalAmount = totals.TithesTotal(data.Entries)
	return data
}

func withPaymentTotal(data models.PaymentSheetData) models.PaymentSheetData {
	data.TotalAmount = totals.PaymentTotal(data)
	return data
}

func removeByID[T any](items []T, id string, key func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if key(item) != id {
			out = append(out, item)
		}
	}
	return out
}

// setSummarySlot drops any synthetic entry for slot and, for a positive
// value, appends a fresh one
func setSummarySlot(entries []models.TitheEntry, slot models.SummarySlot, value models.Money) []models.TitheEntry {
	out := removeByID(entries, slot.EntryID(), func(e models.TitheEntry) string { return e.ID })
	if value > 0 {
		out = append(out, slot.Entry(value))
	}
	return out
}
