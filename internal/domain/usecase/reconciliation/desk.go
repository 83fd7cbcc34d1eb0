package reconciliation

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/entity"
)

// Snapshot is the editor-facing state of the working copy after an action
type Snapshot struct {
	SessionID       string
	Scope           string
	Rows            []WorkingRow
	Selected        []uint64
	LastDigest      string
	HasUnsavedEdits bool
	LoadedAt        time.Time
}

// Desk owns the single editing session of a running service and serializes
// every action on it through the action queue
type Desk struct {
	engine  *Engine
	queue   *ActionQueue
	session *Session
}

// NewDesk creates a desk with a fresh session
func NewDesk(engine *Engine, queue *ActionQueue) *Desk {
	return &Desk{
		engine:  engine,
		queue:   queue,
		session: NewSession(),
	}
}

// SessionID returns the id of the desk's session
func (d *Desk) SessionID() string {
	return d.session.ID
}

// Categories returns the configured expense categories
func (d *Desk) Categories() []string {
	return d.engine.Categories()
}

// View returns the current working copy
func (d *Desk) View(ctx context.Context) (Snapshot, error) {
	return d.snapshotAction(ctx, "view", d.engine.View)
}

// Refresh reloads the working copy from the store
func (d *Desk) Refresh(ctx context.Context) (Snapshot, error) {
	return d.snapshotAction(ctx, "refresh", d.engine.Refresh)
}

// ResetEdits discards unsaved edits and the selection
func (d *Desk) ResetEdits(ctx context.Context) (Snapshot, error) {
	return d.snapshotAction(ctx, "reset", d.engine.ResetEdits)
}

// SetScope changes the cardholder filter
func (d *Desk) SetScope(ctx context.Context, cardholder string) (Snapshot, error) {
	return d.snapshotAction(ctx, "scope", func(ctx context.Context, s *Session) ([]WorkingRow, error) {
		return d.engine.SetScope(ctx, s, cardholder)
	})
}

// ApplyDeltas merges editor changes into the working copy
func (d *Desk) ApplyDeltas(ctx context.Context, deltas DeltaSet) (bool, error) {
	return Run(ctx, d.queue, d.session.ID, "apply_deltas", func(ctx context.Context) (bool, error) {
		return d.engine.ApplyDeltas(ctx, d.session, deltas)
	})
}

// Save persists the working fields of every row in the working copy
func (d *Desk) Save(ctx context.Context) (int, error) {
	return Run(ctx, d.queue, d.session.ID, "save", func(ctx context.Context) (int, error) {
		return d.engine.Save(ctx, d.session)
	})
}

// Book moves the selected rows to BOOKED
func (d *Desk) Book(ctx context.Context) (BookingResult, error) {
	return Run(ctx, d.queue, d.session.ID, "book", func(ctx context.Context) (BookingResult, error) {
		return d.engine.Book(ctx, d.session)
	})
}

// Cardholders lists cardholders with pending records
func (d *Desk) Cardholders(ctx context.Context) ([]string, error) {
	return d.engine.Cardholders(ctx)
}

// Booked lists booked records, optionally for one cardholder
func (d *Desk) Booked(ctx context.Context, cardholder string) ([]entity.TransactionRecord, error) {
	return d.engine.Booked(ctx, cardholder)
}

// NoteIngested records what an ingestion batch inserted
func (d *Desk) NoteIngested(ctx context.Context, records []entity.TransactionRecord) error {
	_, err := Run(ctx, d.queue, d.session.ID, "note_ingested", func(ctx context.Context) (struct{}, error) {
		d.engine.NoteIngested(d.session, records)
		return struct{}{}, nil
	})
	return err
}

// SessionRecords returns the records ingested since the service started
func (d *Desk) SessionRecords(ctx context.Context) ([]entity.TransactionRecord, error) {
	return Run(ctx, d.queue, d.session.ID, "session_records", func(ctx context.Context) ([]entity.TransactionRecord, error) {
		return d.session.Ingested(), nil
	})
}

// Invalidate schedules a reload after the store changed underneath the session
func (d *Desk) Invalidate(ctx context.Context) error {
	_, err := Run(ctx, d.queue, d.session.ID, "invalidate", func(ctx context.Context) (struct{}, error) {
		d.session.MarkDirty()
		return struct{}{}, nil
	})
	return err
}

// Reset returns the session to its initial state after the store was
// emptied. Scope, edits, selection, digest and ingested records are dropped.
func (d *Desk) Reset(ctx context.Context) error {
	_, err := Run(ctx, d.queue, d.session.ID, "reset", func(ctx context.Context) (struct{}, error) {
		d.session.clear()
		return struct{}{}, nil
	})
	return err
}

func (d *Desk) snapshotAction(
	ctx context.Context,
	name string,
	fn func(ctx context.Context, s *Session) ([]WorkingRow, error),
) (Snapshot, error) {
	return Run(ctx, d.queue, d.session.ID, name, func(ctx context.Context) (Snapshot, error) {
		rows, err := fn(ctx, d.session)
		if err != nil {
			return Snapshot{}, err
		}
		return Snapshot{
			SessionID:       d.session.ID,
			Scope:           d.session.Scope(),
			Rows:            rows,
			Selected:        d.session.SelectedIDs(),
			LastDigest:      d.session.LastDigest(),
			HasUnsavedEdits: d.session.HasUnsavedEdits(),
			LoadedAt:        d.session.LoadedAt(),
		}, nil
	})
}
