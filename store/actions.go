package store

import "tesouraria-ibs/models"

// ActionType names an action for logging
type ActionType string

const (
	ActionSetView          ActionType = "SET_VIEW"
	ActionCreateNew        ActionType = "CREATE_NEW_DOCUMENT"
	ActionSaveDocument     ActionType = "SAVE_DOCUMENT"
	ActionLoadDocument     ActionType = "LOAD_DOCUMENT"
	ActionDeleteDocument   ActionType = "DELETE_DOCUMENT"
	ActionUpdateTithes     ActionType = "UPDATE_TITHES_DATA"
	ActionAddTitheEntry    ActionType = "ADD_TITHE_ENTRY"
	ActionRemoveTitheEntry ActionType = "REMOVE_TITHE_ENTRY"
	ActionSetSummarySlot   ActionType = "SET_SUMMARY_SLOT"
	ActionUpdatePayment    ActionType = "UPDATE_PAYMENT_DATA"
	ActionAddExpense       ActionType = "ADD_EXPENSE"
	ActionRemoveExpense    ActionType = "REMOVE_EXPENSE"
	ActionAddExtraEntry    ActionType = "ADD_EXTRA_ENTRY"
	ActionRemoveExtraEntry ActionType = "REMOVE_EXTRA_ENTRY"
)

// Action is a state transition request. The set of implementations is closed.
type Action interface {
	Type() ActionType
}

type SetView struct {
	View models.View `validate:"required,oneof=DASHBOARD TITHES PAYMENTS"`
}

type CreateNewDocument struct {
	DocType models.DocumentType `validate:"required,oneof=TITHES PAYMENTS"`
}

type SaveDocument struct{}

type LoadDocument struct {
	ID string
}

type DeleteDocument struct {
	ID string
}

type UpdateTithesData struct {
	Patch models.TithesPatch
}

type AddTitheEntry struct {
	Entry models.TitheEntry
}

type RemoveTitheEntry struct {
	ID string
}

// SetSummarySlot writes the aggregate value of one (type, method) slot.
// Zero removes the slot's synthetic entry.
type SetSummarySlot struct {
	Slot  models.SummarySlot
	Value models.Money `validate:"gte=0"`
}

type UpdatePaymentData struct {
	Patch models.PaymentPatch
}

type AddExpense struct {
	Expense models.Expense
}

type RemoveExpense struct {
	ID string
}

type AddExtraEntry struct {
	Entry models.ExtraEntry
}

type RemoveExtraEntry struct {
	ID string
}

func (SetView) Type() ActionType           { return ActionSetView }
func (CreateNewDocument) Type() ActionType { return ActionCreateNew }
func (SaveDocument) Type() ActionType      { return ActionSaveDocument }
func (LoadDocument) Type() ActionType      { return ActionLoadDocument }
func (DeleteDocument) Type() ActionType    { return ActionDeleteDocument }
func (UpdateTithesData) Type() ActionType  { return ActionUpdateTithes }
func (AddTitheEntry) Type() ActionType     { return ActionAddTitheEntry }
func (RemoveTitheEntry) Type() ActionType  { return ActionRemoveTitheEntry }
func (SetSummarySlot) Type() ActionType    { return ActionSetSummarySlot }
func (UpdatePaymentData) Type() ActionType { return ActionUpdatePayment }
func (AddExpense) Type() ActionType        { return ActionAddExpense }
func (RemoveExpense) Type() ActionType     { return ActionRemoveExpense }
func (AddExtraEntry) Type() ActionType     { return ActionAddExtraEntry }
func (RemoveExtraEntry) Type() ActionType  { return ActionRemoveExtraEntry }
