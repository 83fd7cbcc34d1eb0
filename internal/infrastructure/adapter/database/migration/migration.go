package migration

import (
	"context"
	"time"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/statement-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/model"
)

// Step is one ordered, recorded schema change
type Step struct {
	Version     string
	Description string
	Run         func(tx *gorm.DB) error
	// OutsideTransaction runs the step and records its version on the plain
	// connection. Postgres aborts a transaction on any failed statement, so
	// best-effort steps must not share one with setVersion.
	OutsideTransaction bool
}

// baselineTransactionRecord is the record table as first shipped, before the
// working columns existed. Older stores still carry exactly this shape.
type baselineTransactionRecord struct {
	ID               uint64 `gorm:"primaryKey;autoIncrement"`
	OperationDate    string `gorm:"size:32;not null;default:''"`
	Description      string `gorm:"type:text;not null;default:''"`
	OperationAmount  *int64
	TotalAmount      *int64
	SourceDocumentID string    `gorm:"size:255;not null;default:''"`
	CreatedAt        time.Time `gorm:"not null"`
}

func (baselineTransactionRecord) TableName() string {
	return "transaction_records"
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	indexMgr     *IndexManager
	steps        []Step
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	m := &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		indexMgr:     NewIndexManager(logger),
	}
	m.steps = m.defaultSteps()
	return m
}

func (m *MigrationManager) defaultSteps() []Step {
	record := &model.TransactionRecord{}

	return []Step{
		{
			Version:     "0001_baseline",
			Description: "create record, document and flag tables",
			Run:         m.createBaseline,
		},
		{
			Version:     "0002_add_reconciled",
			Description: "add reconciled working column",
			Run:         NewAddColumn(record, "transaction_records", "Reconciled", m.logger).Run,
		},
		{
			Version:     "0003_add_expense_category",
			Description: "add expense_category working column",
			Run:         NewAddColumn(record, "transaction_records", "ExpenseCategory", m.logger).Run,
		},
		{
			Version:     "0004_add_booked",
			Description: "add booked column",
			Run:         NewAddColumn(record, "transaction_records", "Booked", m.logger).Run,
		},
		{
			Version:     "0005_record_indexes",
			Description: "create record store indexes",
			Run:         m.indexMgr.CreateIndexes,
		},
		{
			Version:            "0006_postgres_tweaks",
			Description:        "apply postgres storage parameters",
			Run:                m.indexMgr.ApplyPostgresTweaks,
			OutsideTransaction: true,
		},
	}
}

// Steps returns the ordered migration steps
func (m *MigrationManager) Steps() []Step {
	out := make([]Step, len(m.steps))
	copy(out, m.steps)
	return out
}

// MigrateAll applies every step not yet recorded, in order
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"steps": len(m.steps),
	})

	db := m.db.WithContext(ctx)

	if err := db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	applied, err := m.AppliedVersions(ctx)
	if err != nil {
		m.logger.Error("Failed to read applied migrations", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	ran := 0
	for _, step := range m.steps {
		if applied[step.Version] {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		m.logger.Info("Applying migration", map[string]any{
			"version":     step.Version,
			"description": step.Description,
		})

		if err := m.runStep(db, step); err != nil {
			m.logger.Error("Migration failed", map[string]any{
				"version": step.Version,
				"error":   err.Error(),
			})
			return err
		}
		ran++
	}

	m.logger.Info("Database migrations completed", map[string]any{
		"applied": ran,
		"version": m.steps[len(m.steps)-1].Version,
	})
	return nil
}

func (m *MigrationManager) runStep(db *gorm.DB, step Step) error {
	apply := func(tx *gorm.DB) error {
		if err := step.Run(tx); err != nil {
			return err
		}
		return m.setVersion(tx, step.Version, step.Description)
	}
	if step.OutsideTransaction {
		return apply(db)
	}
	return db.Transaction(apply)
}

// AppliedVersions returns the set of recorded step versions
func (m *MigrationManager) AppliedVersions(ctx context.Context) (map[string]bool, error) {
	var versions []model.MigrationVersion
	if err := m.db.WithContext(ctx).Find(&versions).Error; err != nil {
		return nil, err
	}

	applied := make(map[string]bool, len(versions))
	for _, v := range versions {
		applied[v.Version] = true
	}
	return applied, nil
}

// GetCurrentVersion returns the most recently applied step, empty when none
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	var versions []model.MigrationVersion
	result := m.db.WithContext(ctx).Order("version desc").Limit(1).Find(&versions)
	if result.Error != nil {
		return "", result.Error
	}
	if len(versions) == 0 {
		return "", nil
	}
	return versions[0].Version, nil
}

func (m *MigrationManager) setVersion(tx *gorm.DB, version, details string) error {
	return tx.Create(&model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}).Error
}

// createBaseline creates missing tables. An existing record table is left
// alone so that the column steps upgrade it in place.
func (m *MigrationManager) createBaseline(tx *gorm.DB) error {
	migrator := tx.Migrator()

	if !migrator.HasTable(&baselineTransactionRecord{}) {
		if err := migrator.CreateTable(&baselineTransactionRecord{}); err != nil {
			return err
		}
	}

	return tx.AutoMigrate(
		&model.ProcessedDocument{},
		&model.MaintenanceFlag{},
	)
}
