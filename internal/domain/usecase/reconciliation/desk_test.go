package reconciliation

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/statement-processor/internal/domain/error"
	mockcore "github.com/amirhossein-jamali/statement-processor/mocks/port/core"
)

func newTestDesk(t *testing.T) (*Desk, *fakeStore) {
	engine, store := newTestEngine(t)

	logger := mockcore.NewMockLogger(t)
	logger.On("Debug", mock.Anything, mock.Anything).Return().Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Return().Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Return().Maybe()

	queue := NewActionQueue(logger)
	t.Cleanup(queue.Shutdown)

	return NewDesk(engine, queue), store
}

func TestDesk_EditSaveBook(t *testing.T) {
	desk, store := newTestDesk(t)
	ctx := context.Background()

	snap, err := desk.View(ctx)
	require.NoError(t, err)
	assert.Equal(t, desk.SessionID(), snap.SessionID)
	require.Len(t, snap.Rows, 4)
	assert.Equal(t, uint64(4), snap.Rows[0].Record.ID)

	applied, err := desk.ApplyDeltas(ctx, DeltaSet{
		0: {Reconciled: boolPtr(true), ExpenseCategory: strPtr("Combustible"), Selected: boolPtr(true)},
	})
	require.NoError(t, err)
	assert.True(t, applied)

	snap, err = desk.View(ctx)
	require.NoError(t, err)
	assert.True(t, snap.HasUnsavedEdits)
	assert.Equal(t, []uint64{4}, snap.Selected)
	assert.NotEmpty(t, snap.LastDigest)

	saved, err := desk.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, saved)
	assert.Equal(t, "Combustible", store.get(4).ExpenseCategory)

	result, err := desk.Book(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint64{4}, result.Booked)
	assert.True(t, store.get(4).Booked)

	booked, err := desk.Booked(ctx, "Ana Rojas")
	require.NoError(t, err)
	assert.Len(t, booked, 2)
}

func TestDesk_BookNothingSelected(t *testing.T) {
	desk, _ := newTestDesk(t)

	_, err := desk.Book(context.Background())

	assert.ErrorIs(t, err, errs.ErrNothingSelected)
}

func TestDesk_ScopeAndReset(t *testing.T) {
	desk, _ := newTestDesk(t)
	ctx := context.Background()

	snap, err := desk.SetScope(ctx, "Juan Perez")
	require.NoError(t, err)
	assert.Equal(t, "Juan Perez", snap.Scope)
	assert.Len(t, snap.Rows, 3)

	_, err = desk.ApplyDeltas(ctx, DeltaSet{1: {Selected: boolPtr(true)}})
	require.NoError(t, err)

	snap, err = desk.ResetEdits(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Selected)
	assert.Empty(t, snap.LastDigest)
	assert.Equal(t, "Juan Perez", snap.Scope)
}

func TestDesk_NoteIngestedAndSessionRecords(t *testing.T) {
	desk, _ := newTestDesk(t)
	ctx := context.Background()

	records, err := desk.SessionRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	require.NoError(t, desk.NoteIngested(ctx, []entity.TransactionRecord{
		{ID: 99, Description: "NEW"},
	}))

	records, err = desk.SessionRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "NEW", records[0].Description)
}

func TestDesk_ResetAfterPurge(t *testing.T) {
	desk, store := newTestDesk(t)
	ctx := context.Background()

	require.NoError(t, desk.NoteIngested(ctx, []entity.TransactionRecord{{ID: 1, Description: "UBER TRIP"}}))
	_, err := desk.SetScope(ctx, "Juan Perez")
	require.NoError(t, err)
	_, err = desk.ApplyDeltas(ctx, DeltaSet{0: {Selected: boolPtr(true), ExpenseCategory: strPtr("Otro")}})
	require.NoError(t, err)

	store.records = make(map[uint64]entity.TransactionRecord)
	require.NoError(t, desk.Reset(ctx))

	records, err := desk.SessionRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	snap, err := desk.View(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Rows)
	assert.Empty(t, snap.Scope)
	assert.Empty(t, snap.Selected)
	assert.Empty(t, snap.LastDigest)
	assert.False(t, snap.HasUnsavedEdits)
}

func TestDesk_ConcurrentActionsAreSerialized(t *testing.T) {
	desk, store := newTestDesk(t)
	ctx := context.Background()

	_, err := desk.View(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = desk.ApplyDeltas(ctx, DeltaSet{i % 4: {Reconciled: boolPtr(i%2 == 0)}})
			_, _ = desk.Save(ctx)
			_, _ = desk.View(ctx)
		}(i)
	}
	wg.Wait()

	require.NoError(t, desk.Invalidate(ctx))
	snap, err := desk.View(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Rows, 4)
	assert.False(t, snap.HasUnsavedEdits)
	assert.Greater(t, store.commits, 0)
}
