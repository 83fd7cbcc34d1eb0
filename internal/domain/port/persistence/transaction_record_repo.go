package persistence

import (
	"context"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/entity"
)

// TransactionRecordRepository defines the record store operations.
// Every targeted write is addressed by row identity, never by business fields.
type TransactionRecordRepository interface {
	// Insert appends records and assigns each its row identity and creation time
	//
	// Possible errors:
	// - ErrPersistence: If the write fails
	Insert(ctx context.Context, records []*entity.TransactionRecord) error

	// LoadAll returns every record, booked or not, ordered by row identity
	//
	// Possible errors:
	// - ErrPersistence: If the read fails
	LoadAll(ctx context.Context) ([]entity.TransactionRecord, error)

	// LoadPending returns records that have not been booked
	LoadPending(ctx context.Context) ([]entity.TransactionRecord, error)

	// LoadBooked returns booked records
	LoadBooked(ctx context.Context) ([]entity.TransactionRecord, error)

	// FindByID returns a single record
	//
	// Possible errors:
	// - ErrRecordNotFound: If no record has the identity
	FindByID(ctx context.Context, id uint64) (*entity.TransactionRecord, error)

	// UpdateWorkingFields persists the reconciled flag and expense category of one pending record
	//
	// Possible errors:
	// - ErrRecordNotFound: If no record has the identity
	// - ErrRecordBooked: If the record is already booked
	// - ErrPersistence: If the write fails
	UpdateWorkingFields(ctx context.Context, id uint64, reconciled bool, category string) error

	// Book marks the given pending records as booked and returns how many rows changed
	//
	// Possible errors:
	// - ErrPersistence: If the write fails
	Book(ctx context.Context, ids []uint64) (int64, error)

	// UpdateOperationDate rewrites the stored date of one record, booked or not.
	// Reserved for the maintenance normalization pass.
	UpdateOperationDate(ctx context.Context, id uint64, date string) error

	// PurgeAll deletes every record
	PurgeAll(ctx context.Context) (int64, error)
}
