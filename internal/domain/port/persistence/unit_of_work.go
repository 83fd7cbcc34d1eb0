package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetTransactionRecordRepository returns a record repository bound to the current transaction
	GetTransactionRecordRepository(ctx context.Context) TransactionRecordRepository

	// GetProcessedDocumentRepository returns a processed document repository bound to the current transaction
	GetProcessedDocumentRepository(ctx context.Context) ProcessedDocumentRepository

	// GetMaintenanceFlagRepository returns a maintenance flag repository bound to the current transaction
	GetMaintenanceFlagRepository(ctx context.Context) MaintenanceFlagRepository
}
