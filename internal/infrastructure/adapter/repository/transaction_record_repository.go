package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/statement-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/statement-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/model"
)

const insertBatchSize = 200

// TransactionRecordRepository implements the record store using GORM
type TransactionRecordRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRecordRepository creates a new TransactionRecordRepository instance
func NewTransactionRecordRepository(db *gorm.DB, logger coreport.Logger) *TransactionRecordRepository {
	return &TransactionRecordRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Insert appends records and writes the assigned identity and creation time back
func (r *TransactionRecordRepository) Insert(ctx context.Context, records []*entity.TransactionRecord) error {
	if len(records) == 0 {
		return nil
	}

	models := make([]model.TransactionRecord, 0, len(records))
	for _, rec := range records {
		m := recordToModel(rec)
		m.ID = 0
		models = append(models, m)
	}

	if err := r.db.WithContext(ctx).CreateInBatches(&models, insertBatchSize).Error; err != nil {
		r.logger.Error("Failed to insert transaction records", map[string]any{
			"count":      len(records),
			"error":      err.Error(),
			"error_type": string(r.errorClassifier.Classify(err)),
		})
		return errs.NewPersistenceError("insert records", err)
	}

	for i := range models {
		records[i].ID = models[i].ID
		records[i].CreatedAt = models[i].CreatedAt
	}

	r.logger.Debug("Transaction records inserted", map[string]any{
		"count":         len(records),
		"source_doc_id": records[0].SourceDocumentID,
	})
	return nil
}

// LoadAll returns every record ordered by row identity
func (r *TransactionRecordRepository) LoadAll(ctx context.Context) ([]entity.TransactionRecord, error) {
	return r.load(ctx, "load all records", nil)
}

// LoadPending returns records that have not been booked
func (r *TransactionRecordRepository) LoadPending(ctx context.Context) ([]entity.TransactionRecord, error) {
	booked := false
	return r.load(ctx, "load pending records", &booked)
}

// LoadBooked returns booked records
func (r *TransactionRecordRepository) LoadBooked(ctx context.Context) ([]entity.TransactionRecord, error) {
	booked := true
	return r.load(ctx, "load booked records", &booked)
}

func (r *TransactionRecordRepository) load(ctx context.Context, op string, booked *bool) ([]entity.TransactionRecord, error) {
	query := r.db.WithContext(ctx).Model(&model.TransactionRecord{})
	if booked != nil {
		query = query.Where("booked = ?", *booked)
	}

	var models []model.TransactionRecord
	if err := query.Order("id asc").Find(&models).Error; err != nil {
		r.logger.Error("Failed to read transaction records", map[string]any{
			"operation": op,
			"error":     err.Error(),
		})
		return nil, errs.NewPersistenceError(op, err)
	}
	return recordsToEntities(models), nil
}

// FindByID returns a single record
func (r *TransactionRecordRepository) FindByID(ctx context.Context, id uint64) (*entity.TransactionRecord, error) {
	var m model.TransactionRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrRecordNotFound
		}
		return nil, errs.NewPersistenceError("find record", err)
	}

	rec := recordToEntity(m)
	return &rec, nil
}

// UpdateWorkingFields persists the working fields of one pending record.
// Booked rows are excluded by the WHERE clause, not by a prior read.
func (r *TransactionRecordRepository) UpdateWorkingFields(ctx context.Context, id uint64, reconciled bool, category string) error {
	result := r.db.WithContext(ctx).Model(&model.TransactionRecord{}).
		Where("id = ? AND booked = ?", id, false).
		Updates(map[string]any{
			"reconciled":       reconciled,
			"expense_category": category,
		})

	if result.Error != nil {
		r.logger.Error("Failed to update working fields", map[string]any{
			"record_id": id,
			"error":     result.Error.Error(),
		})
		return errs.NewPersistenceError("update working fields", result.Error)
	}

	if result.RowsAffected == 0 {
		return r.explainMissedUpdate(ctx, id)
	}
	return nil
}

// explainMissedUpdate tells a missing row from a booked one
func (r *TransactionRecordRepository) explainMissedUpdate(ctx context.Context, id uint64) error {
	rec, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if rec.Booked {
		r.logger.Warn("Rejected write to booked record", map[string]any{
			"record_id": id,
		})
		return errs.ErrRecordBooked
	}
	// matched but unchanged on drivers that count changed rows only
	return nil
}

// Book flips the booked flag on the given pending records
func (r *TransactionRecordRepository) Book(ctx context.Context, ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).Model(&model.TransactionRecord{}).
		Where("id IN ? AND booked = ?", ids, false).
		Update("booked", true)

	if result.Error != nil {
		r.logger.Error("Failed to book records", map[string]any{
			"count": len(ids),
			"error": result.Error.Error(),
		})
		return 0, errs.NewPersistenceError("book records", result.Error)
	}

	r.logger.Info("Records booked", map[string]any{
		"requested": len(ids),
		"booked":    result.RowsAffected,
	})
	return result.RowsAffected, nil
}

// UpdateOperationDate rewrites the stored date of one record, booked or not
func (r *TransactionRecordRepository) UpdateOperationDate(ctx context.Context, id uint64, date string) error {
	result := r.db.WithContext(ctx).Model(&model.TransactionRecord{}).
		Where("id = ?", id).
		Update("operation_date", date)

	if result.Error != nil {
		return errs.NewPersistenceError("update operation date", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrRecordNotFound
	}
	return nil
}

// PurgeAll deletes every record
func (r *TransactionRecordRepository) PurgeAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&model.TransactionRecord{})
	if result.Error != nil {
		return 0, errs.NewPersistenceError("purge records", result.Error)
	}

	r.logger.Warn("All transaction records purged", map[string]any{
		"deleted": result.RowsAffected,
	})
	return result.RowsAffected, nil
}
