package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/entity"
)

func rec(date, desc string, amount *int64, doc string) entity.TransactionRecord {
	return entity.TransactionRecord{
		OperationDate:    date,
		Description:      desc,
		OperationAmount:  amount,
		SourceDocumentID: doc,
	}
}

func TestMonthlyTotals(t *testing.T) {
	records := []entity.TransactionRecord{
		rec("2024-03-01", "A", entity.Int64Ptr(100), "BCI_ANA_X"),
		rec("2024-02-10", "B", entity.Int64Ptr(50), "BCI_ANA_X"),
		rec("2024-03-20", "C", entity.Int64Ptr(201), "BCI_ANA_X"),
		rec("2024-03-21", "D", nil, "BCI_ANA_X"),
		rec("01/03/24", "E", entity.Int64Ptr(999), "BCI_ANA_X"),
	}

	got := MonthlyTotals(records)

	assert.Equal(t, []MonthlySpend{
		{Month: "2024-02", Total: 50, Count: 1, Average: 50},
		{Month: "2024-03", Total: 301, Count: 2, Average: 151},
	}, got)
}

func TestMonthlyTotals_Empty(t *testing.T) {
	assert.Empty(t, MonthlyTotals(nil))
}

func TestTopDescriptions(t *testing.T) {
	records := []entity.TransactionRecord{
		rec("2024-03-01", "UBER", entity.Int64Ptr(300), ""),
		rec("2024-03-02", "LIDER", entity.Int64Ptr(500), ""),
		rec("2024-03-03", "UBER", entity.Int64Ptr(200), ""),
		rec("2024-03-04", "COPEC", entity.Int64Ptr(100), ""),
		rec("2024-03-05", "JUMBO", nil, ""),
	}

	got := TopDescriptions(records, 2)
	assert.Equal(t, []DescriptionSpend{
		{Description: "LIDER", Total: 500, Count: 1},
		{Description: "UBER", Total: 500, Count: 2},
	}, got)

	all := TopDescriptions(records, 0)
	assert.Len(t, all, 3)
	assert.Equal(t, "COPEC", all[2].Description)
}

func TestFilterByCardholder(t *testing.T) {
	records := []entity.TransactionRecord{
		rec("2024-03-01", "A", nil, "BCI_JUAN_PEREZ_20240315"),
		rec("2024-03-01", "B", nil, "BCI_ANA_SOTO_20240315"),
	}

	assert.Len(t, FilterByCardholder(records, ""), 2)

	got := FilterByCardholder(records, "Juan Perez")
	if assert.Len(t, got, 1) {
		assert.Equal(t, "A", got[0].Description)
	}
}
