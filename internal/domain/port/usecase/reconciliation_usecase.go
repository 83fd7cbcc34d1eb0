package usecase

import (
	"context"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/entity"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/usecase/reconciliation"
)

// ReconciliationUseCase drives the single editing session of the service
type ReconciliationUseCase interface {
	// Categories returns the configured expense categories
	Categories() []string

	// View returns the working copy, reloading it when the store changed
	View(ctx context.Context) (reconciliation.Snapshot, error)

	// Refresh reloads the working copy, keeping unsaved edits
	Refresh(ctx context.Context) (reconciliation.Snapshot, error)

	// ResetEdits discards unsaved edits, the selection and the delta digest
	ResetEdits(ctx context.Context) (reconciliation.Snapshot, error)

	// SetScope restricts the working copy to one cardholder, empty for all
	SetScope(ctx context.Context, cardholder string) (reconciliation.Snapshot, error)

	// ApplyDeltas merges a delta set; false means it was ignored as a repeat
	//
	// Possible errors:
	// - ErrInvalidDelta: position out of range or unknown category
	ApplyDeltas(ctx context.Context, deltas reconciliation.DeltaSet) (bool, error)

	// Save persists the working fields of every row in the working copy
	Save(ctx context.Context) (int, error)

	// Book moves the selected rows to BOOKED
	//
	// Possible errors:
	// - ErrNothingSelected: no row is selected
	// - ErrBookingGuardFailed: a selected row is not reconciled or has no category
	Book(ctx context.Context) (reconciliation.BookingResult, error)

	// Cardholders lists cardholders that still have pending records
	Cardholders(ctx context.Context) ([]string, error)

	// Booked lists booked records, optionally for one cardholder
	Booked(ctx context.Context, cardholder string) ([]entity.TransactionRecord, error)

	// NoteIngested remembers records inserted by an ingestion batch
	NoteIngested(ctx context.Context, records []entity.TransactionRecord) error

	// SessionRecords returns the records ingested during this session
	SessionRecords(ctx context.Context) ([]entity.TransactionRecord, error)

	// Invalidate forces a reload after the store changed underneath the session
	Invalidate(ctx context.Context) error

	// Reset drops all session state, including the ingested records
	Reset(ctx context.Context) error
}
