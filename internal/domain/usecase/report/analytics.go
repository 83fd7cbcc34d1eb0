package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/entity"
)

// DefaultTopLimit is the number of descriptions returned when no limit is given
const DefaultTopLimit = 10

// MonthlySpend is the sum of operation amounts in one calendar month
type MonthlySpend struct {
	Month   string
	Total   int64
	Count   int
	Average int64
}

// DescriptionSpend is the sum of operation amounts for one description
type DescriptionSpend struct {
	Description string
	Total       int64
	Count       int
}

type bucket struct {
	total decimal.Decimal
	count int
}

// MonthlyTotals groups records by YYYY-MM in ascending month order.
// Records without an amount or a canonical date are left out.
func MonthlyTotals(records []entity.TransactionRecord) []MonthlySpend {
	buckets := make(map[string]*bucket)
	for _, r := range records {
		if r.OperationAmount == nil {
			continue
		}
		month, ok := entity.MonthKey(r.OperationDate)
		if !ok {
			continue
		}
		b, exists := buckets[month]
		if !exists {
			b = &bucket{total: decimal.Zero}
			buckets[month] = b
		}
		b.total = b.total.Add(decimal.NewFromInt(*r.OperationAmount))
		b.count++
	}

	out := make([]MonthlySpend, 0, len(buckets))
	for month, b := range buckets {
		out = append(out, MonthlySpend{
			Month:   month,
			Total:   b.total.IntPart(),
			Count:   b.count,
			Average: b.total.Div(decimal.NewFromInt(int64(b.count))).Round(0).IntPart(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// TopDescriptions returns the descriptions with the largest summed operation
// amount, ties broken alphabetically
func TopDescriptions(records []entity.TransactionRecord, limit int) []DescriptionSpend {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	buckets := make(map[string]*bucket)
	for _, r := range records {
		if r.OperationAmount == nil {
			continue
		}
		b, exists := buckets[r.Description]
		if !exists {
			b = &bucket{total: decimal.Zero}
			buckets[r.Description] = b
		}
		b.total = b.total.Add(decimal.NewFromInt(*r.OperationAmount))
		b.count++
	}

	out := make([]DescriptionSpend, 0, len(buckets))
	for desc, b := range buckets {
		out = append(out, DescriptionSpend{Description: desc, Total: b.total.IntPart(), Count: b.count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Description < out[j].Description
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// FilterByCardholder keeps records of one cardholder, or all when empty
func FilterByCardholder(records []entity.TransactionRecord, cardholder string) []entity.TransactionRecord {
	if cardholder == "" {
		return records
	}
	out := make([]entity.TransactionRecord, 0, len(records))
	for _, r := range records {
		if r.Cardholder() == cardholder {
			out = append(out, r)
		}
	}
	return out
}
