package migration

import (
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/statement-processor/internal/domain/port/core"
)

// IndexManager creates the secondary indexes of the record store
type IndexManager struct {
	logger coreport.Logger
}

// NewIndexManager creates a new index manager
func NewIndexManager(logger coreport.Logger) *IndexManager {
	return &IndexManager{logger: logger}
}

var recordIndexes = []struct {
	name string
	sql  string
}{
	{
		name: "idx_transaction_records_source_document",
		sql:  `CREATE INDEX IF NOT EXISTS idx_transaction_records_source_document ON transaction_records (source_document_id)`,
	},
	{
		name: "idx_transaction_records_operation_date",
		sql:  `CREATE INDEX IF NOT EXISTS idx_transaction_records_operation_date ON transaction_records (operation_date)`,
	},
	{
		// pending rows are what the editor reads on every reload
		name: "idx_transaction_records_pending",
		sql: `CREATE INDEX IF NOT EXISTS idx_transaction_records_pending
			ON transaction_records (source_document_id, operation_date)
			WHERE booked = false`,
	},
	{
		name: "idx_transaction_records_booked",
		sql:  `CREATE INDEX IF NOT EXISTS idx_transaction_records_booked ON transaction_records (booked)`,
	},
}

// CreateIndexes creates every record index that does not exist yet
func (m *IndexManager) CreateIndexes(db *gorm.DB) error {
	m.logger.Info("Creating record store indexes", nil)

	for _, idx := range recordIndexes {
		if err := db.Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}
	return nil
}

// ApplyPostgresTweaks tunes storage parameters. Failures are logged, not returned.
func (m *IndexManager) ApplyPostgresTweaks(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}

	m.logger.Info("Applying PostgreSQL storage tweaks", nil)

	// working fields are rewritten in place on every save
	if err := db.Exec(`ALTER TABLE transaction_records SET (fillfactor = 90)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for transaction_records", map[string]any{
			"error": err.Error(),
		})
	}
	return nil
}
