package entity

import (
	"time"
)

// RecordStatus represents the reconciliation state of a transaction record
type RecordStatus string

// Record states
const (
	StatusPending RecordStatus = "PENDING"
	StatusBooked  RecordStatus = "BOOKED"
)

// Booking guard conditions
const (
	GuardNotReconciled   = "not_reconciled"
	GuardMissingCategory = "missing_category"
)

// TransactionRecord represents one normalized statement line
type TransactionRecord struct {
	ID               uint64    // Store-assigned row identity, zero until inserted
	OperationDate    string    // Operation date in CanonicalDateLayout when recognised
	Description      string    // Whitespace-collapsed description
	OperationAmount  *int64    // Operation amount in whole currency units, nil when malformed
	TotalAmount      *int64    // Total amount in whole currency units, nil when malformed
	SourceDocumentID string    // Label of the originating document
	Reconciled       bool      // Set by the user during reconciliation
	ExpenseCategory  string    // One of the configured categories, empty when unset
	Booked           bool      // Terminal flag, record is immutable once true
	CreatedAt        time.Time // When the record was inserted
}

// Status returns the reconciliation state derived from the booked flag
func (r *TransactionRecord) Status() RecordStatus {
	if r.Booked {
		return StatusBooked
	}
	return StatusPending
}

// Cardholder returns the cardholder encoded in the source document id, if any
func (r *TransactionRecord) Cardholder() string {
	return CardholderFromDocumentID(r.SourceDocumentID)
}

// BookingViolations lists the guard conditions the record fails.
// An empty result means the record may be booked.
func (r *TransactionRecord) BookingViolations() []string {
	var violations []string
	if !r.Reconciled {
		violations = append(violations, GuardNotReconciled)
	}
	if r.ExpenseCategory == "" {
		violations = append(violations, GuardMissingCategory)
	}
	return violations
}

// OperationAmountValue returns the operation amount or zero when it is unknown
func (r *TransactionRecord) OperationAmountValue() int64 {
	if r.OperationAmount == nil {
		return 0
	}
	return *r.OperationAmount
}

// Clone returns a deep copy so that working copies never share amount pointers with the store snapshot
func (r TransactionRecord) Clone() TransactionRecord {
	c := r
	if r.OperationAmount != nil {
		v := *r.OperationAmount
		c.OperationAmount = &v
	}
	if r.TotalAmount != nil {
		v := *r.TotalAmount
		c.TotalAmount = &v
	}
	return c
}

// ProcessedDocument records a document whose content has already been ingested
type ProcessedDocument struct {
	Fingerprint string    // Hex SHA-256 of the raw document bytes
	DisplayName string    // Last-seen filename, diagnostics only
	ProcessedAt time.Time // When the document was admitted
}
