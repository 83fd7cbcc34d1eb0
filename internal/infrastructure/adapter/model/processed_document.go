package model

import (
	"time"
)

// ProcessedDocument marks a document fingerprint as ingested
type ProcessedDocument struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Fingerprint string    `gorm:"size:64;not null;uniqueIndex:idx_processed_documents_fingerprint"`
	DisplayName string    `gorm:"size:512;not null;default:''"`
	ProcessedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for ProcessedDocument
func (ProcessedDocument) TableName() string {
	return "processed_documents"
}

// MaintenanceFlag marks a one-shot maintenance operation as done
type MaintenanceFlag struct {
	Name      string    `gorm:"primaryKey;size:255"`
	AppliedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for MaintenanceFlag
func (MaintenanceFlag) TableName() string {
	return "maintenance_flags"
}
