package error

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest        = 4000
	CodeInvalidDelta          = 4001
	CodeInvalidCategory       = 4002
	CodeNothingSelected       = 4003
	CodeConfirmationRequired  = 4004
	CodeInvalidExportFormat   = 4005
	CodeUnreadableDocument    = 4006
	CodeRecordNotFound        = 4040
	CodeDuplicateDocument     = 4090
	CodeRecordBooked          = 4091
	CodeNormalizationApplied  = 4092
	CodeNormalizationDisabled = 4093
	CodeBookingGuardFailed    = 4220
	CodeNoTransactionsFound   = 4221

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodePersistence        = 5001
	CodeDatabaseConnection = 5030
)

// Base error types
var (
	// ErrNoTransactionsFound is returned when a document yields zero transaction lines
	ErrNoTransactionsFound = errors.New("no transactions found")

	// ErrUnreadableDocument is returned when text cannot be extracted from a document
	ErrUnreadableDocument = errors.New("document is unreadable")

	// ErrDuplicateDocument is returned when the document content was already ingested
	ErrDuplicateDocument = errors.New("document already processed")

	// ErrBookingGuardFailed is returned when a selected record is not ready to be booked
	ErrBookingGuardFailed = errors.New("booking guard failed")

	// ErrNothingSelected is returned when booking is requested with an empty selection
	ErrNothingSelected = errors.New("no records selected for booking")

	// ErrRecordNotFound is returned when no record has the requested row identity
	ErrRecordNotFound = errors.New("record not found")

	// ErrRecordBooked is returned when an ordinary edit targets a booked record
	ErrRecordBooked = errors.New("record is booked and cannot be edited")

	// ErrInvalidCategory is returned when an expense category is not in the configured set
	ErrInvalidCategory = errors.New("invalid expense category")

	// ErrInvalidDelta is returned when an edit delta cannot be applied to the working copy
	ErrInvalidDelta = errors.New("invalid edit delta")

	// ErrPersistence is returned when a write to the store fails
	ErrPersistence = errors.New("persistence failure")

	// ErrConfirmationRequired is returned when a destructive admin action lacks confirmation
	ErrConfirmationRequired = errors.New("explicit confirmation required")

	// ErrNormalizationAlreadyApplied is returned when the date normalization pass already ran
	ErrNormalizationAlreadyApplied = errors.New("date normalization already applied")

	// ErrNormalizationDisabled is returned when date normalization is not enabled in configuration
	ErrNormalizationDisabled = errors.New("date normalization is disabled")

	// ErrInvalidExportFormat is returned for an unsupported export format
	ErrInvalidExportFormat = errors.New("unsupported export format")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidDelta):
		return CodeInvalidDelta
	case errors.Is(err, ErrInvalidCategory):
		return CodeInvalidCategory
	case errors.Is(err, ErrNothingSelected):
		return CodeNothingSelected
	case errors.Is(err, ErrConfirmationRequired):
		return CodeConfirmationRequired
	case errors.Is(err, ErrInvalidExportFormat):
		return CodeInvalidExportFormat
	case errors.Is(err, ErrUnreadableDocument):
		return CodeUnreadableDocument
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrRecordNotFound):
		return CodeRecordNotFound
	case errors.Is(err, ErrDuplicateDocument):
		return CodeDuplicateDocument
	case errors.Is(err, ErrRecordBooked):
		return CodeRecordBooked
	case errors.Is(err, ErrNormalizationAlreadyApplied):
		return CodeNormalizationApplied
	case errors.Is(err, ErrNormalizationDisabled):
		return CodeNormalizationDisabled
	case errors.Is(err, ErrBookingGuardFailed):
		return CodeBookingGuardFailed
	case errors.Is(err, ErrNoTransactionsFound):
		return CodeNoTransactionsFound
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	case errors.Is(err, ErrPersistence), errors.Is(err, ErrConstraintViolation):
		return CodePersistence
	default:
		return CodeInternalServer
	}
}

// DuplicateDocumentError provides detailed information about a re-submitted document
type DuplicateDocumentError struct {
	Fingerprint string
	DisplayName string
}

// Error implements the error interface
func (e *DuplicateDocumentError) Error() string {
	return fmt.Sprintf("document %q already processed (fingerprint %s)", e.DisplayName, e.Fingerprint)
}

// Is checks if the target error is an ErrDuplicateDocument
func (e *DuplicateDocumentError) Is(target error) bool {
	return target == ErrDuplicateDocument
}

// LogFields returns a map of fields for structured logging
func (e *DuplicateDocumentError) LogFields() map[string]any {
	return map[string]any{
		"error_type":   "duplicate_document",
		"fingerprint":  e.Fingerprint,
		"display_name": e.DisplayName,
		"error_code":   CodeDuplicateDocument,
	}
}

// NewDuplicateDocumentError creates a new detailed duplicate document error
func NewDuplicateDocumentError(fingerprint, displayName string) error {
	return &DuplicateDocumentError{Fingerprint: fingerprint, DisplayName: displayName}
}

// GuardFailure names one selected record and the conditions it fails
type GuardFailure struct {
	RowID      uint64   `json:"rowId"`
	Conditions []string `json:"conditions"`
}

// BookingGuardError lists every selected record that blocks a booking action
type BookingGuardError struct {
	Failures []GuardFailure
}

// Error implements the error interface
func (e *BookingGuardError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, fmt.Sprintf("row %d: %s", f.RowID, strings.Join(f.Conditions, ", ")))
	}
	return fmt.Sprintf("booking refused, %d selected record(s) not ready: %s", len(e.Failures), strings.Join(parts, "; "))
}

// Is checks if the target error is an ErrBookingGuardFailed
func (e *BookingGuardError) Is(target error) bool {
	return target == ErrBookingGuardFailed
}

// LogFields returns a map of fields for structured logging
func (e *BookingGuardError) LogFields() map[string]any {
	rows := make([]uint64, 0, len(e.Failures))
	for _, f := range e.Failures {
		rows = append(rows, f.RowID)
	}
	return map[string]any{
		"error_type":   "booking_guard",
		"failing_rows": rows,
		"error_code":   CodeBookingGuardFailed,
	}
}

// NewBookingGuardError creates a booking guard error from the collected failures
func NewBookingGuardError(failures []GuardFailure) error {
	return &BookingGuardError{Failures: failures}
}

// PersistenceError wraps a failed store write with the operation that caused it
type PersistenceError struct {
	Operation string
	Err       error
}

// Error implements the error interface for PersistenceError
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
}

// Is checks if the target error is an ErrPersistence
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// Unwrap returns the underlying error
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PersistenceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "persistence_error",
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": CodePersistence,
	}
}

// NewPersistenceError wraps err unless it already carries a domain meaning
func NewPersistenceError(operation string, err error) error {
	if err == nil {
		return nil
	}
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	return &PersistenceError{Operation: operation, Err: err}
}

// InvalidDeltaError describes why an edit delta was rejected
type InvalidDeltaError struct {
	Position int
	Reason   string
	Err      error
}

// Error implements the error interface
func (e *InvalidDeltaError) Error() string {
	return fmt.Sprintf("delta at position %d rejected: %s", e.Position, e.Reason)
}

// Is checks if the target error is an ErrInvalidDelta
func (e *InvalidDeltaError) Is(target error) bool {
	return target == ErrInvalidDelta
}

// Unwrap returns the underlying error
func (e *InvalidDeltaError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *InvalidDeltaError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "invalid_delta",
		"position":   e.Position,
		"reason":     e.Reason,
		"error_code": CodeInvalidDelta,
	}
}

// NewInvalidDeltaError creates a delta validation error
func NewInvalidDeltaError(position int, reason string, err error) error {
	return &InvalidDeltaError{Position: position, Reason: reason, Err: err}
}

// IsDuplicateDocumentError checks if the error is a duplicate document error
func IsDuplicateDocumentError(err error) bool {
	return errors.Is(err, ErrDuplicateDocument)
}

// IsBookingGuardError checks if the error is a booking guard failure
func IsBookingGuardError(err error) bool {
	return errors.Is(err, ErrBookingGuardFailed)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrRecordNotFound)
}

// IsClientError reports whether err maps to a 4xxx code
func IsClientError(err error) bool {
	code := ErrorCode(err)
	return code >= 4000 && code < 5000
}
