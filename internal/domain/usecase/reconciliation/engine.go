package reconciliation

import (
	"context"
	"fmt"
	"sort"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/statement-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/statement-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/port/persistence"
)

// WorkingRow is one position of the working copy as shown to the editor
type WorkingRow struct {
	Position int
	Record   entity.TransactionRecord
	Selected bool
	Edited   bool // carries values not yet saved to the store
}

// BookingResult lists the records moved to BOOKED by one action
type BookingResult struct {
	Booked []uint64
}

// Engine drives the PENDING to BOOKED workflow over an explicit Session
type Engine struct {
	uow          persistence.UnitOfWork
	records      persistence.TransactionRecordRepository
	categories   entity.CategorySet
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewEngine creates a new reconciliation engine
func NewEngine(
	uow persistence.UnitOfWork,
	categories entity.CategorySet,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Engine {
	return &Engine{
		uow:          uow,
		records:      uow.GetTransactionRecordRepository(context.Background()),
		categories:   categories,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Categories returns the valid expense categories in configured order
func (e *Engine) Categories() []string {
	return e.categories.Values()
}

// View returns the working copy, rebuilding it from the store when dirty
func (e *Engine) View(ctx context.Context, s *Session) ([]WorkingRow, error) {
	if err := e.ensureLoaded(ctx, s); err != nil {
		return nil, err
	}
	return e.rows(s), nil
}

// Refresh forces a reload from the store. Unsaved edits are re-applied on top.
func (e *Engine) Refresh(ctx context.Context, s *Session) ([]WorkingRow, error) {
	s.MarkDirty()
	return e.View(ctx, s)
}

// SetScope restricts the working copy to one cardholder, or all when empty.
// Changing the scope discards every edit and selection.
func (e *Engine) SetScope(ctx context.Context, s *Session, cardholder string) ([]WorkingRow, error) {
	if cardholder != s.scope {
		e.logger.Info("Working copy scope changed", map[string]any{
			"session_id": s.ID,
			"from":       s.scope,
			"to":         cardholder,
		})
		s.scope = cardholder
		s.discard()
	}
	return e.View(ctx, s)
}

// ResetEdits discards unsaved edits, the selection and the delta digest
func (e *Engine) ResetEdits(ctx context.Context, s *Session) ([]WorkingRow, error) {
	e.logger.Info("Pending edits discarded", map[string]any{
		"session_id": s.ID,
		"edits":      len(s.edits),
		"selected":   len(s.selected),
	})
	s.discard()
	return e.View(ctx, s)
}

// NoteIngested remembers records inserted during the session and schedules a reload
func (e *Engine) NoteIngested(s *Session, records []entity.TransactionRecord) {
	if len(records) == 0 {
		return
	}
	s.ingested = append(s.ingested, records...)
	s.MarkDirty()
}

// ApplyDeltas merges a delta set into the working copy. A set whose digest
// equals the last applied one is ignored and false is returned. The whole set
// is validated before any row changes.
func (e *Engine) ApplyDeltas(ctx context.Context, s *Session, deltas DeltaSet) (bool, error) {
	if len(deltas) == 0 {
		return false, nil
	}

	if err := e.ensureLoaded(ctx, s); err != nil {
		return false, err
	}

	digest, err := deltas.Digest()
	if err != nil {
		return false, errs.NewInvalidDeltaError(-1, "delta set cannot be encoded", err)
	}

	if digest == s.lastDigest {
		e.logger.Debug("Delta set already applied", map[string]any{
			"session_id": s.ID,
			"digest":     digest,
		})
		return false, nil
	}

	positions := deltas.Positions()
	for _, p := range positions {
		if err := e.validateDelta(s, p, deltas[p]); err != nil {
			return false, err
		}
	}

	for _, p := range positions {
		d := deltas[p]
		row := &s.working[p]
		edit := s.edits[row.ID]

		if d.Reconciled != nil {
			v := *d.Reconciled
			row.Reconciled = v
			edit.Reconciled = &v
		}
		if d.ExpenseCategory != nil {
			v := *d.ExpenseCategory
			row.ExpenseCategory = v
			edit.ExpenseCategory = &v
		}
		if edit.Reconciled != nil || edit.ExpenseCategory != nil {
			s.edits[row.ID] = edit
		}

		if d.Selected != nil {
			if *d.Selected {
				s.selected[row.ID] = true
			} else {
				delete(s.selected, row.ID)
			}
		}
	}

	s.lastDigest = digest

	e.logger.Debug("Delta set applied", map[string]any{
		"session_id": s.ID,
		"digest":     digest,
		"rows":       len(positions),
	})

	return true, nil
}

func (e *Engine) validateDelta(s *Session, position int, d RowDelta) error {
	if position < 0 || position >= len(s.working) {
		return errs.NewInvalidDeltaError(position,
			fmt.Sprintf("position out of range, working copy has %d rows", len(s.working)), nil)
	}
	if d.ExpenseCategory != nil && !e.categories.Allows(*d.ExpenseCategory) {
		return errs.NewInvalidDeltaError(position,
			fmt.Sprintf("unknown expense category %q", *d.ExpenseCategory), errs.ErrInvalidCategory)
	}
	return nil
}

// Save persists reconciled and expense_category for every working row,
// selected or not. On failure the session is left untouched.
func (e *Engine) Save(ctx context.Context, s *Session) (int, error) {
	if err := e.ensureLoaded(ctx, s); err != nil {
		return 0, err
	}
	if len(s.working) == 0 {
		return 0, nil
	}

	err := e.withinTransaction(ctx, "save working copy", func(txCtx context.Context, repo persistence.TransactionRecordRepository) error {
		for _, r := range s.working {
			if err := repo.UpdateWorkingFields(txCtx, r.ID, r.Reconciled, r.ExpenseCategory); err != nil {
				return fmt.Errorf("row %d: %w", r.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		e.logger.Error("Saving working copy failed", map[string]any{
			"session_id": s.ID,
			"error":      err.Error(),
		})
		return 0, err
	}

	saved := len(s.working)
	s.edits = make(map[uint64]rowEdit)
	s.MarkDirty()

	e.logger.Info("Working copy saved", map[string]any{
		"session_id": s.ID,
		"rows":       saved,
	})

	return saved, nil
}

// Book moves the selected rows to BOOKED. Every selected row must be
// reconciled and categorised, otherwise nothing is written.
func (e *Engine) Book(ctx context.Context, s *Session) (BookingResult, error) {
	if err := e.ensureLoaded(ctx, s); err != nil {
		return BookingResult{}, err
	}

	var candidates []entity.TransactionRecord
	for _, r := range s.working {
		if s.selected[r.ID] {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return BookingResult{}, errs.ErrNothingSelected
	}

	var failures []errs.GuardFailure
	for _, r := range candidates {
		if violations := r.BookingViolations(); len(violations) > 0 {
			failures = append(failures, errs.GuardFailure{RowID: r.ID, Conditions: violations})
		}
	}
	if len(failures) > 0 {
		guardErr := errs.NewBookingGuardError(failures)
		fields := guardErr.(*errs.BookingGuardError).LogFields()
		fields["session_id"] = s.ID
		e.logger.Warn("Booking refused", fields)
		return BookingResult{}, guardErr
	}

	ids := make([]uint64, 0, len(candidates))
	for _, r := range candidates {
		ids = append(ids, r.ID)
	}

	err := e.withinTransaction(ctx, "book selected records", func(txCtx context.Context, repo persistence.TransactionRecordRepository) error {
		for _, r := range candidates {
			if err := repo.UpdateWorkingFields(txCtx, r.ID, r.Reconciled, r.ExpenseCategory); err != nil {
				return fmt.Errorf("row %d: %w", r.ID, err)
			}
		}
		booked, err := repo.Book(txCtx, ids)
		if err != nil {
			return err
		}
		if booked != int64(len(ids)) {
			return fmt.Errorf("booked %d of %d selected records", booked, len(ids))
		}
		return nil
	})
	if err != nil {
		e.logger.Error("Booking failed", map[string]any{
			"session_id": s.ID,
			"rows":       ids,
			"error":      err.Error(),
		})
		return BookingResult{}, err
	}

	for _, id := range ids {
		delete(s.selected, id)
		delete(s.edits, id)
	}
	s.working = nil
	s.MarkDirty()

	e.logger.Info("Records booked", map[string]any{
		"session_id": s.ID,
		"rows":       ids,
	})

	return BookingResult{Booked: ids}, nil
}

// Cardholders lists the distinct cardholders that still have pending records
func (e *Engine) Cardholders(ctx context.Context) ([]string, error) {
	pending, err := e.records.LoadPending(ctx)
	if err != nil {
		return nil, errs.NewPersistenceError("load pending records", err)
	}

	seen := make(map[string]struct{})
	var names []string
	for _, r := range pending {
		name := r.Cardholder()
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Booked returns the read-only list of booked records in display order
func (e *Engine) Booked(ctx context.Context, cardholder string) ([]entity.TransactionRecord, error) {
	booked, err := e.records.LoadBooked(ctx)
	if err != nil {
		return nil, errs.NewPersistenceError("load booked records", err)
	}
	out := booked[:0]
	for _, r := range booked {
		if cardholder == "" || r.Cardholder() == cardholder {
			out = append(out, r)
		}
	}
	SortRecords(out)
	return out, nil
}

func (e *Engine) ensureLoaded(ctx context.Context, s *Session) error {
	if !s.Dirty() {
		return nil
	}

	pending, err := e.records.LoadPending(ctx)
	if err != nil {
		return errs.NewPersistenceError("load pending records", err)
	}

	working := make([]entity.TransactionRecord, 0, len(pending))
	present := make(map[uint64]bool, len(pending))
	for _, r := range pending {
		if s.scope != "" && r.Cardholder() != s.scope {
			continue
		}
		c := r.Clone()
		if edit, ok := s.edits[c.ID]; ok {
			if edit.Reconciled != nil {
				c.Reconciled = *edit.Reconciled
			}
			if edit.ExpenseCategory != nil {
				c.ExpenseCategory = *edit.ExpenseCategory
			}
		}
		working = append(working, c)
		present[c.ID] = true
	}
	SortRecords(working)

	// Rows that left the pending set take their state with them
	for id := range s.selected {
		if !present[id] {
			delete(s.selected, id)
		}
	}
	for id := range s.edits {
		if !present[id] {
			delete(s.edits, id)
		}
	}

	s.relayout(working)
	s.working = working
	s.dirty = false
	s.loadedAt = e.timeProvider.Now()

	e.logger.Debug("Working copy rebuilt", map[string]any{
		"session_id": s.ID,
		"scope":      s.scope,
		"rows":       len(working),
		"edits":      len(s.edits),
	})

	return nil
}

func (e *Engine) rows(s *Session) []WorkingRow {
	rows := make([]WorkingRow, len(s.working))
	for i, r := range s.working {
		_, edited := s.edits[r.ID]
		rows[i] = WorkingRow{
			Position: i,
			Record:   r.Clone(),
			Selected: s.selected[r.ID],
			Edited:   edited,
		}
	}
	return rows
}

func (e *Engine) withinTransaction(
	ctx context.Context,
	operation string,
	fn func(txCtx context.Context, repo persistence.TransactionRecordRepository) error,
) (err error) {
	txCtx, err := e.uow.Begin(ctx)
	if err != nil {
		return errs.NewPersistenceError(operation, err)
	}

	defer func() {
		if err != nil {
			if rbErr := e.uow.Rollback(txCtx); rbErr != nil {
				e.logger.Error("Failed to roll back transaction", map[string]any{
					"operation": operation,
					"error":     rbErr.Error(),
				})
			}
		}
	}()

	if err = fn(txCtx, e.uow.GetTransactionRecordRepository(txCtx)); err != nil {
		return errs.NewPersistenceError(operation, err)
	}

	if err = e.uow.Commit(txCtx); err != nil {
		return errs.NewPersistenceError(operation, err)
	}
	return nil
}

// SortRecords orders records by date, description, operation amount and
// finally row identity so that equal-looking rows never swap places
func SortRecords(records []entity.TransactionRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.OperationDate != b.OperationDate {
			return a.OperationDate < b.OperationDate
		}
		if a.Description != b.Description {
			return a.Description < b.Description
		}
		if cmp := compareAmounts(a.OperationAmount, b.OperationAmount); cmp != 0 {
			return cmp < 0
		}
		return a.ID < b.ID
	})
}

// compareAmounts orders unknown amounts first
func compareAmounts(a, b *int64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}
