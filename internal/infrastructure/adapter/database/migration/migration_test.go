package migration_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/time"
)

func openMemoryDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func newManager(db *gorm.DB) *migration.MigrationManager {
	return migration.NewMigrationManager(db, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())
}

func TestMigrateAll_FreshDatabase(t *testing.T) {
	db := openMemoryDB(t)
	mgr := newManager(db)

	require.NoError(t, mgr.MigrateAll(context.Background()))

	migrator := db.Migrator()
	assert.True(t, migrator.HasTable(&model.TransactionRecord{}))
	assert.True(t, migrator.HasTable(&model.ProcessedDocument{}))
	assert.True(t, migrator.HasTable(&model.MaintenanceFlag{}))
	for _, field := range []string{"Reconciled", "ExpenseCategory", "Booked"} {
		assert.True(t, migrator.HasColumn(&model.TransactionRecord{}, field), field)
	}
	assert.True(t, migrator.HasIndex(&model.TransactionRecord{}, "idx_transaction_records_pending"))

	applied, err := mgr.AppliedVersions(context.Background())
	require.NoError(t, err)
	assert.Len(t, applied, len(mgr.Steps()))

	current, err := mgr.GetCurrentVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0006_postgres_tweaks", current)
}

func TestMigrateAll_IsIdempotent(t *testing.T) {
	db := openMemoryDB(t)
	mgr := newManager(db)

	require.NoError(t, mgr.MigrateAll(context.Background()))
	require.NoError(t, mgr.MigrateAll(context.Background()))

	var count int64
	require.NoError(t, db.Model(&model.MigrationVersion{}).Count(&count).Error)
	assert.Equal(t, int64(len(mgr.Steps())), count)
}

func TestMigrateAll_UpgradesLegacyRecordTable(t *testing.T) {
	db := openMemoryDB(t)

	// Store written before the working columns existed
	require.NoError(t, db.Exec(`CREATE TABLE transaction_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		operation_date TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		operation_amount INTEGER,
		total_amount INTEGER,
		source_document_id TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL
	)`).Error)
	require.NoError(t, db.Exec(`INSERT INTO transaction_records
		(operation_date, description, operation_amount, total_amount, source_document_id, created_at)
		VALUES ('15/03/2024', 'SUPERMERCADO', 12990, 12990, 'doc-1', CURRENT_TIMESTAMP)`).Error)

	require.NoError(t, newManager(db).MigrateAll(context.Background()))

	var records []model.TransactionRecord
	require.NoError(t, db.Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, "SUPERMERCADO", records[0].Description)
	assert.False(t, records[0].Reconciled)
	assert.False(t, records[0].Booked)
	assert.Equal(t, "", records[0].ExpenseCategory)
	require.NotNil(t, records[0].OperationAmount)
	assert.Equal(t, int64(12990), *records[0].OperationAmount)
}

func TestMigrateAll_CanceledContext(t *testing.T) {
	db := openMemoryDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, newManager(db).MigrateAll(ctx))
}

func TestSteps_StorageTweaksRunOutsideTransaction(t *testing.T) {
	db := openMemoryDB(t)
	mgr := newManager(db)

	for _, step := range mgr.Steps() {
		assert.Equal(t, step.Version == "0006_postgres_tweaks", step.OutsideTransaction, step.Version)
	}

	require.NoError(t, mgr.MigrateAll(context.Background()))

	var recorded model.MigrationVersion
	require.NoError(t, db.Where("version = ?", "0006_postgres_tweaks").First(&recorded).Error)
	assert.Equal(t, "apply postgres storage parameters", recorded.Details)
}
