package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionRecord_BookingViolations(t *testing.T) {
	testCases := []struct {
		name     string
		record   TransactionRecord
		expected []string
	}{
		{"Ready", TransactionRecord{Reconciled: true, ExpenseCategory: "Peajes"}, nil},
		{"Not reconciled", TransactionRecord{ExpenseCategory: "Peajes"}, []string{GuardNotReconciled}},
		{"No category", TransactionRecord{Reconciled: true}, []string{GuardMissingCategory}},
		{"Neither", TransactionRecord{}, []string{GuardNotReconciled, GuardMissingCategory}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.record.BookingViolations())
		})
	}
}

func TestTransactionRecord_Status(t *testing.T) {
	r := TransactionRecord{}
	assert.Equal(t, StatusPending, r.Status())
	r.Booked = true
	assert.Equal(t, StatusBooked, r.Status())
}

func TestTransactionRecord_Clone(t *testing.T) {
	original := TransactionRecord{ID: 7, OperationAmount: Int64Ptr(100), TotalAmount: Int64Ptr(200)}
	clone := original.Clone()

	*clone.OperationAmount = 1
	*clone.TotalAmount = 2

	assert.Equal(t, int64(100), *original.OperationAmount)
	assert.Equal(t, int64(200), *original.TotalAmount)
	assert.Equal(t, original.ID, clone.ID)
}

func TestCardholderFromDocumentID(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"BCI_JUAN_PEREZ_20240315", "Juan Perez"},
		{"BCI_MARÍA_NÚÑEZ_20231101", "María Núñez"},
		{"statement-march.pdf", ""},
		{"SCAN_2024.pdf", ""},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, CardholderFromDocumentID(tc.input))
		})
	}
}

func TestBuildDocumentID(t *testing.T) {
	id := BuildDocumentID("bci", "Juan  Perez", "20240315")
	assert.Equal(t, "BCI_JUAN_PEREZ_20240315", id)
	assert.Equal(t, "Juan Perez", CardholderFromDocumentID(id))
}

func TestNormalizeSourceDate(t *testing.T) {
	assert.Equal(t, "2024-03-15", NormalizeSourceDate("15/03/24"))
	assert.Equal(t, "31/02/24", NormalizeSourceDate("31/02/24"))

	month, ok := MonthKey("2024-03-15")
	assert.True(t, ok)
	assert.Equal(t, "2024-03", month)

	_, ok = MonthKey("15/03/24")
	assert.False(t, ok)
}

func TestCategorySet(t *testing.T) {
	set := NewCategorySet([]string{"Peajes", " Otro ", "", "Peajes"})

	assert.Equal(t, []string{"Peajes", "Otro"}, set.Values())
	assert.True(t, set.Contains("Otro"))
	assert.False(t, set.Contains(""))
	assert.True(t, set.Allows(""))
	assert.False(t, set.Allows("Casino"))
}
