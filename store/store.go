package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"tesouraria-ibs/config"
	"tesouraria-ibs/models"
	"tesouraria-ibs/repository"
)

var (
	// ErrInvalidAction wraps validation failures; the action is not applied
	ErrInvalidAction = errors.New("invalid action")
	// ErrPersist means the transition was applied in memory but could not be written
	ErrPersist = errors.New("failed to persist state")
)

// Store owns the application state. Every change goes through Dispatch,
// which validates, reduces and persists.
type Store struct {
	mu       sync.Mutex
	state    models.AppState
	repo     repository.StateRepositoryInterface
	validate *validator.Validate
	now      Clock
	log      *logrus.Logger
}

// Open loads persisted state through repo, repairing it when needed.
// A blob that cannot be parsed at all is discarded and the default state is used.
// Storage failures never keep the store from opening; the default state is used instead.
func Open(ctx context.Context, repo repository.StateRepositoryInterface, now Clock) (*Store, error) {
	if now == nil {
		now = time.Now
	}
	s := &Store{
		repo:     repo,
		validate: validator.New(),
		now:      now,
		log:      config.GetLogger(),
	}

	raw, err := repo.Load(ctx)
	if err != nil {
		s.log.Warnf("⚠️ Open: persisted state unavailable, starting from defaults: %v", err)
		raw = nil
		if errors.Is(err, repository.ErrCorrupt) {
			if clearErr := repo.Clear(ctx); clearErr != nil {
				s.log.Errorf("❌ Open: failed to clear unreadable state: %v", clearErr)
			}
		}
	}

	state, report, err := LoadState(raw, now())
	if err != nil {
		s.log.Warnf("⚠️ Open: discarding unreadable state: %v", err)
		if clearErr := repo.Clear(ctx); clearErr != nil {
			s.log.Errorf("❌ Open: failed to clear unreadable state: %v", clearErr)
		}
	} else if !report.Clean() {
		s.log.WithFields(logrus.Fields{
			"fixed":            report.Fixed,
			"droppedDocuments": report.DroppedDocuments,
		}).Warn("⚠️ Open: repaired persisted state")
	}

	s.state = state
	s.log.WithField("documents", len(state.Documents)).Info("✅ Open: state loaded")
	return s, nil
}

// State returns a copy of the current state
func (s *Store) State() models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Dispatch validates and applies action. It returns the resulting state and
// whether it changed. When the transition succeeded but the write failed the
// new state is kept and the error wraps ErrPersist.
func (s *Store) Dispatch(ctx context.Context, action Action) (models.AppState, bool, error) {
	if err := s.validateAction(action); err != nil {
		return s.State(), false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := checkEntryIDs(s.state, action); err != nil {
		s.log.WithField("action", action.Type()).Warnf("⚠️ Dispatch: %v", err)
		return s.state.Clone(), false, err
	}

	next, changed := Reduce(s.state, action, s.now)
	if !changed {
		s.log.WithField("action", action.Type()).Debug("Dispatch: no-op")
		return s.state.Clone(), false, nil
	}
	s.state = next

	s.log.WithFields(logrus.Fields{
		"action":   action.Type(),
		"view":     next.CurrentView,
		"activeId": next.ActiveID(),
	}).Debug("Dispatch: applied")

	if err := s.repo.Save(ctx, next); err != nil {
		s.log.WithField("action", action.Type()).Errorf("❌ Dispatch: %v", err)
		return next.Clone(), true, fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return next.Clone(), true, nil
}

// CloseEditor returns to the dashboard, saving the working document first
// unless it is a new document with nothing filled in.
func (s *Store) CloseEditor(ctx context.Context) (models.AppState, error) {
	current := s.State()

	if shouldSaveOnClose(current) {
		if _, _, err := s.Dispatch(ctx, SaveDocument{}); err != nil {
			return s.State(), err
		}
	}

	next, _, err := s.Dispatch(ctx, SetView{View: models.ViewDashboard})
	return next, err
}

func shouldSaveOnClose(state models.AppState) bool {
	switch state.CurrentView {
	case models.ViewTithes:
		return state.ActiveDocumentID != nil || !state.TithesData.IsEmpty()
	case models.ViewPayments:
		return state.ActiveDocumentID != nil || !state.PaymentData.IsEmpty()
	}
	return false
}

// EditorStatus describes whether the working document is a saved one
type EditorStatus struct {
	Saved      bool   `json:"saved"`
	DocumentID string `json:"documentId,omitempty"`
	Label      string `json:"label"`
}

// Status reports the editor status derived from the active document
func (s *Store) Status() EditorStatus {
	state := s.State()
	if id := state.ActiveID(); id != "" {
		return EditorStatus{Saved: true, DocumentID: id, Label: "Editando documento salvo"}
	}
	return EditorStatus{Label: "Novo documento (não salvo)"}
}

// validateAction checks struct tags on the action and its payload
func (s *Store) validateAction(action Action) error {
	var target any
	switch a := action.(type) {
	case SetView:
		target = a
	case CreateNewDocument:
		target = a
	case UpdateTithesData:
		target = a.Patch
	case AddTitheEntry:
		target = a.Entry
	case SetSummarySlot:
		target = a
	case UpdatePaymentData:
		target = a.Patch
	case AddExpense:
		target = a.Expense
	case AddExtraEntry:
		target = a.Entry
	case LoadDocument, DeleteDocument, RemoveTitheEntry, RemoveExpense, RemoveExtraEntry, SaveDocument:
		return nil
	case nil:
		return fmt.Errorf("%w: nil action", ErrInvalidAction)
	default:
		return nil
	}

	if err := s.validate.Struct(target); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAction, err)
	}
	return nil
}

// checkEntryIDs rejects adds whose id is already in the target list.
// Summary slot ids are reserved for SetSummarySlot.
func checkEntryIDs(state models.AppState, action Action) error {
	var id string
	var taken bool
	switch a := action.(type) {
	case AddTitheEntry:
		id = a.Entry.ID
		if strings.HasPrefix(id, models.SummaryIDPrefix) {
			return fmt.Errorf("%w: entry id %q is reserved for summary slots", ErrInvalidAction, id)
		}
		taken = slices.ContainsFunc(state.TithesData.Entries, func(e models.TitheEntry) bool { return e.ID == id })
	case AddExpense:
		id = a.Expense.ID
		taken = slices.ContainsFunc(state.PaymentData.Expenses, func(e models.Expense) bool { return e.ID == id })
	case AddExtraEntry:
		id = a.Entry.ID
		taken = slices.ContainsFunc(state.PaymentData.ExtraEntries, func(e models.ExtraEntry) bool { return e.ID == id })
	default:
		return nil
	}
	if taken {
		return fmt.Errorf("%w: duplicate id %q", ErrInvalidAction, id)
	}
	return nil
}
