package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrDuplicateDocument.Error() != "document already processed" {
		t.Errorf("ErrDuplicateDocument has unexpected message: %s", ErrDuplicateDocument.Error())
	}
	if ErrNoTransactionsFound.Error() != "no transactions found" {
		t.Errorf("ErrNoTransactionsFound has unexpected message: %s", ErrNoTransactionsFound.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidDelta", ErrInvalidDelta, 4001},
		{"InvalidCategory", ErrInvalidCategory, 4002},
		{"NothingSelected", ErrNothingSelected, 4003},
		{"ConfirmationRequired", ErrConfirmationRequired, 4004},
		{"RecordNotFound", ErrRecordNotFound, 4040},
		{"DuplicateDocument", ErrDuplicateDocument, 4090},
		{"RecordBooked", ErrRecordBooked, 4091},
		{"NormalizationApplied", ErrNormalizationAlreadyApplied, 4092},
		{"BookingGuard", ErrBookingGuardFailed, 4220},
		{"Persistence", ErrPersistence, 5001},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrRecordNotFound), 4040},
		{"TypedDuplicate", NewDuplicateDocumentError("abc", "a.pdf"), 4090},
		{"TypedPersistence", NewPersistenceError("save", errors.New("disk full")), 5001},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestDuplicateDocumentError(t *testing.T) {
	err := NewDuplicateDocumentError("deadbeef", "renamed.pdf")

	if !errors.Is(err, ErrDuplicateDocument) {
		t.Errorf("errors.Is(err, ErrDuplicateDocument) = false, want true")
	}
	if !IsDuplicateDocumentError(err) {
		t.Errorf("IsDuplicateDocumentError(err) = false, want true")
	}

	expected := `document "renamed.pdf" already processed (fingerprint deadbeef)`
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}

	var dupErr *DuplicateDocumentError
	if !errors.As(err, &dupErr) {
		t.Fatalf("errors.As failed for DuplicateDocumentError")
	}
	fields := dupErr.LogFields()
	if fields["fingerprint"] != "deadbeef" {
		t.Errorf("LogFields()[fingerprint] = %v, want deadbeef", fields["fingerprint"])
	}
}

func TestBookingGuardError(t *testing.T) {
	err := NewBookingGuardError([]GuardFailure{
		{RowID: 3, Conditions: []string{"missing_category"}},
		{RowID: 9, Conditions: []string{"not_reconciled", "missing_category"}},
	})

	if !IsBookingGuardError(err) {
		t.Errorf("IsBookingGuardError(err) = false, want true")
	}

	expected := "booking refused, 2 selected record(s) not ready: row 3: missing_category; row 9: not_reconciled, missing_category"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}

	var guardErr *BookingGuardError
	if !errors.As(err, &guardErr) {
		t.Fatalf("errors.As failed for BookingGuardError")
	}
	rows, ok := guardErr.LogFields()["failing_rows"].([]uint64)
	if !ok || len(rows) != 2 || rows[0] != 3 || rows[1] != 9 {
		t.Errorf("LogFields()[failing_rows] = %v, want [3 9]", guardErr.LogFields()["failing_rows"])
	}
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("database is locked")
	err := NewPersistenceError("save working copy", cause)

	if !errors.Is(err, ErrPersistence) {
		t.Errorf("errors.Is(err, ErrPersistence) = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}
	if err.Error() != "save working copy failed: database is locked" {
		t.Errorf("Error() = %s", err.Error())
	}

	// Already wrapped errors are not wrapped twice
	if again := NewPersistenceError("book", err); again != err {
		t.Errorf("NewPersistenceError re-wrapped an existing PersistenceError")
	}
	if NewPersistenceError("noop", nil) != nil {
		t.Errorf("NewPersistenceError(nil) should be nil")
	}
}

func TestInvalidDeltaError(t *testing.T) {
	err := NewInvalidDeltaError(4, "unknown category \"Casino\"", ErrInvalidCategory)

	if !errors.Is(err, ErrInvalidDelta) {
		t.Errorf("errors.Is(err, ErrInvalidDelta) = false, want true")
	}
	if !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("errors.Is(err, ErrInvalidCategory) = false, want true")
	}
	if !IsClientError(err) {
		t.Errorf("IsClientError(err) = false, want true")
	}
}
