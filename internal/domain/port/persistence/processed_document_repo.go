package persistence

import (
	"context"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/entity"
)

// ProcessedDocumentRepository stores the fingerprints of ingested documents
type ProcessedDocumentRepository interface {
	// ExistsByFingerprint checks whether content with this fingerprint was already ingested
	//
	// Possible errors:
	// - ErrPersistence: If the read fails
	ExistsByFingerprint(ctx context.Context, fingerprint string) (bool, error)

	// Register records a fingerprint as processed
	//
	// Possible errors:
	// - ErrDuplicateDocument: If the fingerprint is already registered
	// - ErrPersistence: If the write fails
	Register(ctx context.Context, document *entity.ProcessedDocument) error

	// List returns all processed documents, newest first
	List(ctx context.Context) ([]entity.ProcessedDocument, error)

	// PurgeAll deletes every processed document entry
	PurgeAll(ctx context.Context) (int64, error)
}
