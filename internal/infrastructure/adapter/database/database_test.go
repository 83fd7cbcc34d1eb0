package database_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/statement-processor/internal/domain/error"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/config"
	mockcore "github.com/amirhossein-jamali/statement-processor/mocks/port/core"
)

func TestUnitOfWork_CommitMakesWritesVisible(t *testing.T) {
	ctx := context.Background()
	tdb := database.NewTestDBManager(t, logger.NewNoopLogger())
	uow := tdb.Manager.CreateUnitOfWork()

	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)

	records := []*entity.TransactionRecord{{
		OperationDate:    "2024-03-15",
		Description:      "PEAJE AUTOPISTA",
		OperationAmount:  entity.Int64Ptr(2500),
		SourceDocumentID: "doc",
	}}
	require.NoError(t, uow.GetTransactionRecordRepository(txCtx).Insert(txCtx, records))
	require.NoError(t, uow.Commit(txCtx))

	all, err := uow.GetTransactionRecordRepository(ctx).LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUnitOfWork_RollbackDiscardsWrites(t *testing.T) {
	ctx := context.Background()
	tdb := database.NewTestDBManager(t, logger.NewNoopLogger())
	uow := tdb.Manager.CreateUnitOfWork()

	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)

	require.NoError(t, uow.GetTransactionRecordRepository(txCtx).Insert(txCtx, []*entity.TransactionRecord{{
		Description:      "HOTEL",
		SourceDocumentID: "doc",
	}}))
	require.NoError(t, uow.GetProcessedDocumentRepository(txCtx).Register(txCtx, &entity.ProcessedDocument{
		Fingerprint: "abc",
		DisplayName: "hotel.pdf",
	}))
	require.NoError(t, uow.Rollback(txCtx))

	// a second rollback is tolerated
	assert.NoError(t, uow.Rollback(txCtx))

	all, err := uow.GetTransactionRecordRepository(ctx).LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	exists, err := uow.GetProcessedDocumentRepository(ctx).ExistsByFingerprint(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUnitOfWork_CommitWithoutTransaction(t *testing.T) {
	tdb := database.NewTestDBManager(t, logger.NewNoopLogger())
	uow := tdb.Manager.CreateUnitOfWork()

	assert.Error(t, uow.Commit(context.Background()))
	assert.Error(t, uow.Rollback(context.Background()))
}

func TestUnitOfWork_SlowOperationsAreReported(t *testing.T) {
	ctx := context.Background()
	tdb := database.NewTestDBManager(t, logger.NewNoopLogger())

	// every reading of the clock is 150ms after the previous one
	now := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	clock := mockcore.NewMockTimeProvider(t)
	clock.EXPECT().Now().RunAndReturn(func() time.Time {
		now = now.Add(150 * time.Millisecond)
		return now
	})

	var slow []string
	log := mockcore.NewMockLogger(t)
	log.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	log.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	log.EXPECT().Warn("Slow database operation detected", mock.Anything).
		Run(func(_ string, fields map[string]interface{}) {
			slow = append(slow, fields["operation"].(string))
		})

	uow := database.NewUnitOfWork(tdb.Manager.DB(), database.DriverSQLite, tdb.Manager.GetErrorMapper(), log, clock)

	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)

	repo := uow.GetTransactionRecordRepository(txCtx)
	records := []*entity.TransactionRecord{{Description: "PEAJE", SourceDocumentID: "doc"}}
	require.NoError(t, repo.Insert(txCtx, records))
	booked, err := repo.Book(txCtx, []uint64{records[0].ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), booked)
	require.NoError(t, uow.Commit(txCtx))

	assert.Equal(t, []string{"begin", "insert_records", "book_records", "commit"}, slow)
}

func TestManager_PingAndMetrics(t *testing.T) {
	tdb := database.NewTestDBManager(t, logger.NewNoopLogger())

	require.NoError(t, tdb.Manager.Ping(context.Background()))
	assert.Equal(t, database.DriverSQLite, tdb.Manager.Driver())
	assert.Equal(t, 1, tdb.Manager.PoolMetrics().MaxOpenConnections)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *database.Config {
		return &database.Config{
			Driver:       database.DriverSQLite,
			SQLitePath:   "statements.db",
			MaxOpenConns: 1,
			MaxIdleConns: 1,
		}
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(c *database.Config)
	}{
		{"unknown driver", func(c *database.Config) { c.Driver = "mysql" }},
		{"missing sqlite path", func(c *database.Config) { c.SQLitePath = "" }},
		{"postgres without host", func(c *database.Config) { c.Driver = database.DriverPostgres }},
		{"zero open conns", func(c *database.Config) { c.MaxOpenConns = 0 }},
		{"negative retries", func(c *database.Config) { c.RetryAttempts = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	sqliteFile := &database.Config{Driver: database.DriverSQLite, SQLitePath: "/data/statements.db"}
	assert.Contains(t, sqliteFile.DSN(), "file:/data/statements.db?")
	assert.Contains(t, sqliteFile.DSN(), "_busy_timeout=5000")

	memory := &database.Config{Driver: database.DriverSQLite, SQLitePath: database.SQLiteMemory}
	assert.Equal(t, "file::memory:?_foreign_keys=on", memory.DSN())

	pg := &database.Config{
		Driver:   database.DriverPostgres,
		Host:     "db",
		Port:     5432,
		Username: "app",
		Password: "secret",
		Database: "statements",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=statements sslmode=disable", pg.DSN())
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, database.ParsePort("5432"))
	assert.Equal(t, 0, database.ParsePort("abc"))
	assert.Equal(t, 0, database.ParsePort("70000"))
}

func TestResolveStorageDir(t *testing.T) {
	base := t.TempDir()

	blocked := filepath.Join(base, "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o600))
	wanted := filepath.Join(base, "data")

	dir, err := database.ResolveStorageDir([]string{filepath.Join(blocked, "sub"), wanted}, logger.NewNoopLogger())
	require.NoError(t, err)
	assert.Equal(t, wanted, dir)

	info, err := os.Stat(wanted)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = os.Stat(filepath.Join(wanted, ".write_probe"))
	assert.True(t, os.IsNotExist(err))
}

func TestErrorMapper_MapError(t *testing.T) {
	m := database.NewErrorMapper()

	assert.NoError(t, m.MapError(nil, "op"))
	assert.ErrorIs(t, m.MapError(gorm.ErrRecordNotFound, "find"), errs.ErrRecordNotFound)
	assert.ErrorIs(t, m.MapError(errors.New("UNIQUE constraint failed: x"), "insert"), errs.ErrConstraintViolation)
	assert.ErrorIs(t, m.MapError(errors.New("dial tcp: connection refused"), "connect"), errs.ErrDatabaseConnection)
	assert.ErrorIs(t, m.MapError(errors.New("context deadline exceeded"), "query"), errs.ErrDatabaseConnection)
	assert.ErrorIs(t, m.MapError(errors.New("near \"SELEC\": syntax error"), "query"), errs.ErrPersistence)
}

func TestFromAppConfig_SQLitePath(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{Driver: database.DriverSQLite, File: "statements.db"}}
	assert.Equal(t, filepath.Join("/srv/data", "statements.db"), database.FromAppConfig(cfg, "/srv/data").SQLitePath)

	cfg.Database.File = database.SQLiteMemory
	assert.Equal(t, database.SQLiteMemory, database.FromAppConfig(cfg, "/srv/data").SQLitePath)

	cfg.Database.File = "/abs/other.db"
	assert.Equal(t, "/abs/other.db", database.FromAppConfig(cfg, "/srv/data").SQLitePath)
}

func TestRetry(t *testing.T) {
	ctx := context.Background()
	policy := database.RetryPolicy{Attempts: 4, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}
	log := logger.NewNoopLogger()

	t.Run("Transient error then success", func(t *testing.T) {
		calls := 0
		err := database.Retry(ctx, policy, log, "op", func(int) error {
			calls++
			if calls < 3 {
				return errors.New("database is locked")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("Permanent error is not retried", func(t *testing.T) {
		calls := 0
		err := database.Retry(ctx, policy, log, "op", func(int) error {
			calls++
			return errors.New("syntax error")
		})
		assert.EqualError(t, err, "syntax error")
		assert.Equal(t, 1, calls)
	})

	t.Run("Attempts run out", func(t *testing.T) {
		calls := 0
		err := database.Retry(ctx, policy, log, "op", func(int) error {
			calls++
			return errors.New("SQLITE_BUSY")
		})
		assert.Error(t, err)
		assert.Equal(t, 4, calls)
	})

	t.Run("Canceled context stops waiting", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		slow := database.RetryPolicy{Attempts: 3, BaseDelay: time.Hour, MaxDelay: time.Hour}
		err := database.Retry(canceled, slow, log, "op", func(int) error {
			return errors.New("connection reset by peer")
		})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Connect policy retries anything", func(t *testing.T) {
		calls := 0
		err := database.Retry(ctx, database.ConnectRetryPolicy(2, time.Millisecond), log, "connect", func(int) error {
			calls++
			return errors.New("no such host")
		})
		assert.Error(t, err)
		assert.Equal(t, 2, calls)
	})
}
