package migration

import (
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/statement-processor/internal/domain/port/core"
)

// AddColumn adds one model field to an existing table when it is missing
type AddColumn struct {
	model  any
	table  string
	field  string
	logger coreport.Logger
}

// NewAddColumn creates a check-before-add column migration
func NewAddColumn(model any, table, field string, logger coreport.Logger) *AddColumn {
	return &AddColumn{
		model:  model,
		table:  table,
		field:  field,
		logger: logger,
	}
}

// Run executes the migration on db
func (m *AddColumn) Run(db *gorm.DB) error {
	migrator := db.Migrator()

	if migrator.HasColumn(m.model, m.field) {
		m.logger.Debug("Column already present", map[string]any{
			"table": m.table,
			"field": m.field,
		})
		return nil
	}

	m.logger.Info("Adding column", map[string]any{
		"table": m.table,
		"field": m.field,
	})
	if err := migrator.AddColumn(m.model, m.field); err != nil {
		m.logger.Error("Failed to add column", map[string]any{
			"table": m.table,
			"field": m.field,
			"error": err.Error(),
		})
		return err
	}
	return nil
}
