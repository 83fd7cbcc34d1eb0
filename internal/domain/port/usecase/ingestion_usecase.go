package usecase

import (
	"context"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/port/extract"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/usecase/ingestion"
)

// IngestionUseCase turns uploaded statements into stored records
type IngestionUseCase interface {
	// IngestBatch processes documents one after another. Per-document
	// failures are reported in the result, never returned as an error.
	IngestBatch(ctx context.Context, docs []extract.Document, opts ingestion.Options) ingestion.BatchResult
}
