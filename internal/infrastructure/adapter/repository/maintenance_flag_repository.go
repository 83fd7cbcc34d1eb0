package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/statement-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/statement-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/model"
)

// MaintenanceFlagRepository persists one-shot maintenance markers using GORM
type MaintenanceFlagRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewMaintenanceFlagRepository creates a new MaintenanceFlagRepository instance
func NewMaintenanceFlagRepository(db *gorm.DB, logger coreport.Logger) *MaintenanceFlagRepository {
	return &MaintenanceFlagRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// IsSet reports whether the named flag exists
func (r *MaintenanceFlagRepository) IsSet(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.MaintenanceFlag{}).
		Where("name = ?", name).
		Count(&count).Error
	if err != nil {
		return false, errs.NewPersistenceError("read maintenance flag", err)
	}
	return count > 0, nil
}

// Set writes the named flag
func (r *MaintenanceFlagRepository) Set(ctx context.Context, name string, at time.Time) error {
	err := r.db.WithContext(ctx).Create(&model.MaintenanceFlag{
		Name:      name,
		AppliedAt: at,
	}).Error
	if err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			return errs.ErrNormalizationAlreadyApplied
		}
		return errs.NewPersistenceError("write maintenance flag", err)
	}

	r.logger.Info("Maintenance flag set", map[string]any{
		"flag": name,
	})
	return nil
}
