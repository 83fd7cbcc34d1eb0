package ingestion

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/statement-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/statement-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/port/extract"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/usecase/parser"
)

// DocumentStatus is the outcome of ingesting one document
type DocumentStatus string

// Document outcomes
const (
	StatusIngested       DocumentStatus = "ingested"
	StatusDuplicate      DocumentStatus = "duplicate"
	StatusNoTransactions DocumentStatus = "no_transactions"
	StatusFailed         DocumentStatus = "failed"
)

// Options tune a single ingestion batch
type Options struct {
	// ExcludeTerms drop records whose description contains any term
	ExcludeTerms []string
}

// DocumentResult reports what happened to one document of a batch
type DocumentResult struct {
	DisplayName      string
	Fingerprint      string
	Status           DocumentStatus
	SourceDocumentID string
	Inserted         int
	Excluded         int
	Message          string
	Records          []entity.TransactionRecord
	Err              error
}

// BatchResult aggregates the outcome of a batch
type BatchResult struct {
	BatchID   string
	Documents []DocumentResult
}

// Records returns every record inserted by the batch, in document order
func (b BatchResult) Records() []entity.TransactionRecord {
	var out []entity.TransactionRecord
	for _, d := range b.Documents {
		out = append(out, d.Records...)
	}
	return out
}

// Inserted returns the number of records inserted by the batch
func (b BatchResult) Inserted() int {
	total := 0
	for _, d := range b.Documents {
		total += d.Inserted
	}
	return total
}

// Service runs the admit, extract, parse, insert and register pipeline
type Service struct {
	uow          persistence.UnitOfWork
	guard        *DedupGuard
	extractor    extract.TextExtractor
	parser       *parser.Parser
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	excludeTerms []string
}

// NewService creates a new ingestion service
func NewService(
	uow persistence.UnitOfWork,
	extractor extract.TextExtractor,
	p *parser.Parser,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	defaultExcludeTerms []string,
) *Service {
	docRepo := uow.GetProcessedDocumentRepository(context.Background())

	return &Service{
		uow:          uow,
		guard:        NewDedupGuard(docRepo),
		extractor:    extractor,
		parser:       p,
		timeProvider: timeProvider,
		logger:       logger,
		excludeTerms: defaultExcludeTerms,
	}
}

// IngestBatch processes documents one after another. Each document is an
// independent unit: a duplicate or failure never affects the others.
func (s *Service) IngestBatch(ctx context.Context, docs []extract.Document, opts Options) BatchResult {
	batch := BatchResult{BatchID: uuid.NewString()}

	terms := opts.ExcludeTerms
	if terms == nil {
		terms = s.excludeTerms
	}

	s.logger.Info("Ingestion batch started", map[string]any{
		"batch_id":  batch.BatchID,
		"documents": len(docs),
	})

	for _, doc := range docs {
		result := s.IngestDocument(ctx, doc, terms)
		batch.Documents = append(batch.Documents, result)
	}

	s.logger.Info("Ingestion batch finished", map[string]any{
		"batch_id": batch.BatchID,
		"inserted": batch.Inserted(),
	})

	return batch
}

// IngestDocument runs the pipeline for a single document
func (s *Service) IngestDocument(ctx context.Context, doc extract.Document, excludeTerms []string) DocumentResult {
	result := DocumentResult{DisplayName: doc.DisplayName}

	// Step 1: Admit by content fingerprint
	admission, err := s.guard.Admit(ctx, doc.Content, doc.DisplayName)
	if err != nil {
		return s.rejected(result, err)
	}
	result.Fingerprint = admission.Fingerprint

	// Step 2: Extract page text
	pages, err := s.extractor.Extract(ctx, doc)
	if err != nil {
		s.logger.Warn("Text extraction failed", map[string]any{
			"document": doc.DisplayName,
			"error":    err.Error(),
		})
		return s.noTransactions(result)
	}

	// Step 3: Parse and filter
	parsed := s.parser.Parse(pages, doc.DisplayName)
	result.SourceDocumentID = parsed.SourceDocumentID

	records, excluded := parser.FilterExcluded(parsed.Records, excludeTerms)
	result.Excluded = excluded

	s.logger.Debug("Document parsed", map[string]any{
		"document":      doc.DisplayName,
		"source_doc_id": parsed.SourceDocumentID,
		"lines_seen":    parsed.LinesSeen,
		"lines_matched": parsed.LinesMatched,
		"excluded":      excluded,
	})

	if len(records) == 0 {
		return s.noTransactions(result)
	}

	// Step 4: Insert and register atomically
	if err := s.persist(ctx, admission, records); err != nil {
		return s.rejected(result, err)
	}

	result.Status = StatusIngested
	result.Inserted = len(records)
	result.Records = make([]entity.TransactionRecord, 0, len(records))
	for _, r := range records {
		result.Records = append(result.Records, *r)
	}
	result.Message = fmt.Sprintf("saved %d transactions from %s", len(records), doc.DisplayName)

	s.logger.Info("Document ingested", map[string]any{
		"document":    doc.DisplayName,
		"fingerprint": admission.Fingerprint,
		"inserted":    len(records),
	})

	return result
}

func (s *Service) persist(ctx context.Context, admission *Admission, records []*entity.TransactionRecord) (err error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return errs.NewPersistenceError("begin ingestion", err)
	}

	defer func() {
		if err != nil {
			if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
				s.logger.Error("Failed to roll back ingestion", map[string]any{
					"document": admission.DisplayName,
					"error":    rbErr.Error(),
				})
			}
		}
	}()

	if err = s.uow.GetTransactionRecordRepository(txCtx).Insert(txCtx, records); err != nil {
		return errs.NewPersistenceError("insert records", err)
	}

	document := &entity.ProcessedDocument{
		Fingerprint: admission.Fingerprint,
		DisplayName: admission.DisplayName,
		ProcessedAt: s.timeProvider.Now(),
	}
	if err = s.uow.GetProcessedDocumentRepository(txCtx).Register(txCtx, document); err != nil {
		if errors.Is(err, errs.ErrDuplicateDocument) {
			err = errs.NewDuplicateDocumentError(admission.Fingerprint, admission.DisplayName)
			return err
		}
		return errs.NewPersistenceError("register document", err)
	}

	if err = s.uow.Commit(txCtx); err != nil {
		return errs.NewPersistenceError("commit ingestion", err)
	}
	return nil
}

func (s *Service) rejected(result DocumentResult, err error) DocumentResult {
	result.Err = err
	result.Message = err.Error()

	if errs.IsDuplicateDocumentError(err) {
		result.Status = StatusDuplicate
		result.Message = fmt.Sprintf("%s was already processed, skipping", result.DisplayName)
		s.logger.Warn("Duplicate document skipped", map[string]any{
			"document": result.DisplayName,
		})
		return result
	}

	result.Status = StatusFailed
	fields := map[string]any{
		"document": result.DisplayName,
		"error":    err.Error(),
	}
	var pe *errs.PersistenceError
	if errors.As(err, &pe) {
		for k, v := range pe.LogFields() {
			fields[k] = v
		}
	}
	s.logger.Error("Document ingestion failed", fields)
	return result
}

func (s *Service) noTransactions(result DocumentResult) DocumentResult {
	result.Status = StatusNoTransactions
	result.Err = errs.ErrNoTransactionsFound
	result.Message = fmt.Sprintf("no transactions found in %s", result.DisplayName)
	s.logger.Warn("No transactions found", map[string]any{
		"document": result.DisplayName,
	})
	return result
}
