package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/statement-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/statement-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/model"
)

// ProcessedDocumentRepository stores document fingerprints using GORM
type ProcessedDocumentRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewProcessedDocumentRepository creates a new ProcessedDocumentRepository instance
func NewProcessedDocumentRepository(db *gorm.DB, logger coreport.Logger) *ProcessedDocumentRepository {
	return &ProcessedDocumentRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// ExistsByFingerprint checks whether the fingerprint is registered
func (r *ProcessedDocumentRepository) ExistsByFingerprint(ctx context.Context, fingerprint string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ProcessedDocument{}).
		Where("fingerprint = ?", fingerprint).
		Count(&count).Error
	if err != nil {
		return false, errs.NewPersistenceError("check fingerprint", err)
	}
	return count > 0, nil
}

// Register records a fingerprint. The unique index settles concurrent admissions.
func (r *ProcessedDocumentRepository) Register(ctx context.Context, document *entity.ProcessedDocument) error {
	m := model.ProcessedDocument{
		Fingerprint: document.Fingerprint,
		DisplayName: document.DisplayName,
		ProcessedAt: document.ProcessedAt,
	}

	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Warn("Duplicate document fingerprint", map[string]any{
				"fingerprint": document.Fingerprint,
				"document":    document.DisplayName,
			})
			return errs.ErrDuplicateDocument
		}
		r.logger.Error("Failed to register document", map[string]any{
			"fingerprint": document.Fingerprint,
			"error":       err.Error(),
		})
		return errs.NewPersistenceError("register document", err)
	}
	return nil
}

// List returns all processed documents, newest first
func (r *ProcessedDocumentRepository) List(ctx context.Context) ([]entity.ProcessedDocument, error) {
	var models []model.ProcessedDocument
	if err := r.db.WithContext(ctx).Order("processed_at desc, id desc").Find(&models).Error; err != nil {
		return nil, errs.NewPersistenceError("list documents", err)
	}

	out := make([]entity.ProcessedDocument, 0, len(models))
	for _, m := range models {
		out = append(out, documentToEntity(m))
	}
	return out, nil
}

// PurgeAll deletes every processed document entry
func (r *ProcessedDocumentRepository) PurgeAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&model.ProcessedDocument{})
	if result.Error != nil {
		return 0, errs.NewPersistenceError("purge documents", result.Error)
	}
	return result.RowsAffected, nil
}
