package model

import (
	"time"
)

// TransactionRecord is the database model of one statement line
type TransactionRecord struct {
	ID               uint64 `gorm:"primaryKey;autoIncrement"`
	OperationDate    string `gorm:"size:32;not null;default:''"`
	Description      string `gorm:"type:text;not null;default:''"`
	OperationAmount  *int64
	TotalAmount      *int64
	SourceDocumentID string    `gorm:"size:255;not null;default:''"`
	Reconciled       bool      `gorm:"not null;default:false"`
	ExpenseCategory  string    `gorm:"size:100;not null;default:''"`
	Booked           bool      `gorm:"not null;default:false"`
	CreatedAt        time.Time `gorm:"not null"`
}

// TableName specifies the table name for TransactionRecord
func (TransactionRecord) TableName() string {
	return "transaction_records"
}
