package maintenance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/statement-processor/internal/domain/error"
	mockcore "github.com/amirhossein-jamali/statement-processor/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/statement-processor/mocks/port/persistence"
)

type txKey struct{}

var fixedNow = time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

type maintenanceMocks struct {
	uow     *mockpersistence.MockUnitOfWork
	records *mockpersistence.MockTransactionRecordRepository
	docs    *mockpersistence.MockProcessedDocumentRepository
	flags   *mockpersistence.MockMaintenanceFlagRepository
	clock   *mockcore.MockTimeProvider
	logger  *mockcore.MockLogger
	txCtx   context.Context
}

func newMaintenanceMocks(t *testing.T) *maintenanceMocks {
	m := &maintenanceMocks{
		uow:     mockpersistence.NewMockUnitOfWork(t),
		records: mockpersistence.NewMockTransactionRecordRepository(t),
		docs:    mockpersistence.NewMockProcessedDocumentRepository(t),
		flags:   mockpersistence.NewMockMaintenanceFlagRepository(t),
		clock:   mockcore.NewMockTimeProvider(t),
		logger:  mockcore.NewMockLogger(t),
		txCtx:   context.WithValue(context.Background(), txKey{}, "tx"),
	}
	m.logger.On("Info", mock.Anything, mock.Anything).Return().Maybe()
	m.logger.On("Warn", mock.Anything, mock.Anything).Return().Maybe()
	m.logger.On("Error", mock.Anything, mock.Anything).Return().Maybe()
	m.clock.On("Now").Return(fixedNow).Maybe()
	return m
}

func (m *maintenanceMocks) expectTx() {
	m.uow.EXPECT().Begin(mock.Anything).Return(m.txCtx, nil).Once()
	m.uow.EXPECT().GetTransactionRecordRepository(m.txCtx).Return(m.records).Maybe()
	m.uow.EXPECT().GetProcessedDocumentRepository(m.txCtx).Return(m.docs).Maybe()
	m.uow.EXPECT().GetMaintenanceFlagRepository(m.txCtx).Return(m.flags).Maybe()
}

func (m *maintenanceMocks) service(cfg NormalizationConfig) *Service {
	return NewService(m.uow, cfg, m.clock, m.logger)
}

func TestService_Purge(t *testing.T) {
	t.Run("requires confirmation", func(t *testing.T) {
		m := newMaintenanceMocks(t)

		_, err := m.service(NormalizationConfig{}).Purge(context.Background(), false)

		assert.ErrorIs(t, err, errs.ErrConfirmationRequired)
	})

	t.Run("deletes both tables in one transaction", func(t *testing.T) {
		m := newMaintenanceMocks(t)
		m.expectTx()
		m.records.EXPECT().PurgeAll(m.txCtx).Return(int64(12), nil).Once()
		m.docs.EXPECT().PurgeAll(m.txCtx).Return(int64(2), nil).Once()
		m.uow.EXPECT().Commit(m.txCtx).Return(nil).Once()

		result, err := m.service(NormalizationConfig{}).Purge(context.Background(), true)

		require.NoError(t, err)
		assert.Equal(t, PurgeResult{Records: 12, Documents: 2}, result)
	})

	t.Run("rolls back when a delete fails", func(t *testing.T) {
		m := newMaintenanceMocks(t)
		m.expectTx()
		m.records.EXPECT().PurgeAll(m.txCtx).Return(int64(12), nil).Once()
		m.docs.EXPECT().PurgeAll(m.txCtx).Return(int64(0), errors.New("disk I/O error")).Once()
		m.uow.EXPECT().Rollback(m.txCtx).Return(nil).Once()

		_, err := m.service(NormalizationConfig{}).Purge(context.Background(), true)

		assert.ErrorIs(t, err, errs.ErrPersistence)
	})
}

func TestService_NormalizeDates(t *testing.T) {
	cfg := NormalizationConfig{Enabled: true}

	t.Run("disabled by configuration", func(t *testing.T) {
		m := newMaintenanceMocks(t)

		_, err := m.service(NormalizationConfig{}).NormalizeDates(context.Background(), true)

		assert.ErrorIs(t, err, errs.ErrNormalizationDisabled)
	})

	t.Run("requires confirmation", func(t *testing.T) {
		m := newMaintenanceMocks(t)

		_, err := m.service(cfg).NormalizeDates(context.Background(), false)

		assert.ErrorIs(t, err, errs.ErrConfirmationRequired)
	})

	t.Run("refuses a second run", func(t *testing.T) {
		m := newMaintenanceMocks(t)
		m.expectTx()
		m.flags.EXPECT().IsSet(m.txCtx, "date_normalization:02/01/06->2006-01-02").Return(true, nil).Once()
		m.uow.EXPECT().Rollback(m.txCtx).Return(nil).Once()

		_, err := m.service(cfg).NormalizeDates(context.Background(), true)

		assert.ErrorIs(t, err, errs.ErrNormalizationAlreadyApplied)
		assert.NotErrorIs(t, err, errs.ErrPersistence)
	})

	t.Run("rewrites source layout dates and sets the flag", func(t *testing.T) {
		m := newMaintenanceMocks(t)
		m.expectTx()
		flag := "date_normalization:02/01/06->2006-01-02"
		m.flags.EXPECT().IsSet(m.txCtx, flag).Return(false, nil).Once()
		m.records.EXPECT().LoadAll(m.txCtx).Return([]entity.TransactionRecord{
			{ID: 1, OperationDate: "15/03/24"},
			{ID: 2, OperationDate: "2024-03-16"},
			{ID: 3, OperationDate: "garbage"},
			{ID: 4, OperationDate: "01/02/24", Booked: true},
		}, nil).Once()
		m.records.EXPECT().UpdateOperationDate(m.txCtx, uint64(1), "2024-03-15").Return(nil).Once()
		m.records.EXPECT().UpdateOperationDate(m.txCtx, uint64(4), "2024-02-01").Return(nil).Once()
		m.flags.EXPECT().Set(m.txCtx, flag, fixedNow).Return(nil).Once()
		m.uow.EXPECT().Commit(m.txCtx).Return(nil).Once()

		result, err := m.service(cfg).NormalizeDates(context.Background(), true)

		require.NoError(t, err)
		assert.Equal(t, NormalizationResult{Flag: flag, Converted: 2, Unchanged: 1, Unparseable: 1}, result)
	})

	t.Run("update failure rolls back without setting the flag", func(t *testing.T) {
		m := newMaintenanceMocks(t)
		m.expectTx()
		m.flags.EXPECT().IsSet(m.txCtx, mock.Anything).Return(false, nil).Once()
		m.records.EXPECT().LoadAll(m.txCtx).Return([]entity.TransactionRecord{
			{ID: 1, OperationDate: "15/03/24"},
		}, nil).Once()
		m.records.EXPECT().UpdateOperationDate(m.txCtx, uint64(1), "2024-03-15").Return(errors.New("locked")).Once()
		m.uow.EXPECT().Rollback(m.txCtx).Return(nil).Once()

		_, err := m.service(cfg).NormalizeDates(context.Background(), true)

		assert.ErrorIs(t, err, errs.ErrPersistence)
		m.flags.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestNormalizationConfig_FlagName(t *testing.T) {
	cfg := NormalizationConfig{FromLayout: "02/01/2006", ToLayout: "2006-01-02"}
	assert.Equal(t, "date_normalization:02/01/2006->2006-01-02", cfg.FlagName())
}
