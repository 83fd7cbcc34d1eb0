package database

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/statement-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/repository"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db           *gorm.DB
	driver       string
	errorMapper  *ErrorMapper
	metrics      *MetricsCollector
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(
	db *gorm.DB,
	driver string,
	errorMapper *ErrorMapper,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
) persistence.UnitOfWork {
	return &UnitOfWork{
		db:           db,
		driver:       driver,
		errorMapper:  errorMapper,
		metrics:      NewMetricsCollector(logger, timeProvider),
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Begin starts a new database transaction. Postgres transactions run SERIALIZABLE.
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	u.logger.Debug("Beginning database transaction", map[string]any{"driver": u.driver})

	var tx *gorm.DB
	_, err := u.metrics.MeasureQuery(ctx, "begin", func() (int64, error) {
		return 0, Retry(ctx, TransactionRetryPolicy(), u.logger, "begin", func(int) error {
			tx = u.db.WithContext(ctx).Begin()
			return tx.Error
		})
	})
	if err != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": err.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", u.errorMapper.MapError(err, "begin"))
	}

	if u.driver == DriverPostgres {
		if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL SERIALIZABLE").Error; err != nil {
			tx.Rollback()
			u.logger.Error("Failed to set transaction isolation level", map[string]any{"error": err.Error()})
			return ctx, fmt.Errorf("failed to set transaction isolation level: %w", err)
		}
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Committing database transaction", nil)
	_, err := u.metrics.MeasureQuery(ctx, "commit", func() (int64, error) {
		return 0, tx.Commit().Error
	})
	if err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", u.errorMapper.MapError(err, "commit"))
	}

	return nil
}

// Rollback rolls back the current transaction
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Rolling back database transaction", nil)

	err := tx.Rollback().Error

	// A transaction that already ended is not a failure of the rollback
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

// GetTransactionRecordRepository returns a record repository in the current transaction
func (u *UnitOfWork) GetTransactionRecordRepository(ctx context.Context) persistence.TransactionRecordRepository {
	return &measuredRecordRepository{
		TransactionRecordRepository: repository.NewTransactionRecordRepository(u.getDbFromContext(ctx), u.logger),
		metrics:                     u.metrics,
	}
}

// GetProcessedDocumentRepository returns a processed document repository in the current transaction
func (u *UnitOfWork) GetProcessedDocumentRepository(ctx context.Context) persistence.ProcessedDocumentRepository {
	return repository.NewProcessedDocumentRepository(u.getDbFromContext(ctx), u.logger)
}

// GetMaintenanceFlagRepository returns a maintenance flag repository in the current transaction
func (u *UnitOfWork) GetMaintenanceFlagRepository(ctx context.Context) persistence.MaintenanceFlagRepository {
	return repository.NewMaintenanceFlagRepository(u.getDbFromContext(ctx), u.logger)
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db
}
