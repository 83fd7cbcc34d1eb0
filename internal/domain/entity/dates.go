package entity

import (
	"time"
)

// Date layouts
const (
	// CanonicalDateLayout is the only layout the store writes
	CanonicalDateLayout = "2006-01-02"
	// SourceDateLayout is the day/month/two-digit-year layout printed on statements
	SourceDateLayout = "02/01/06"
	// MonthLayout groups records by calendar month
	MonthLayout = "2006-01"
)

// NormalizeSourceDate converts a statement date token to CanonicalDateLayout.
// Tokens that are not valid dates in SourceDateLayout are returned unchanged.
func NormalizeSourceDate(token string) string {
	converted, ok := ConvertDateLayout(token, SourceDateLayout, CanonicalDateLayout)
	if !ok {
		return token
	}
	return converted
}

// ConvertDateLayout reformats value from one layout to another
func ConvertDateLayout(value, from, to string) (string, bool) {
	parsed, err := time.Parse(from, value)
	if err != nil {
		return value, false
	}
	return parsed.Format(to), true
}

// MonthKey returns the YYYY-MM bucket of a canonical date
func MonthKey(date string) (string, bool) {
	parsed, err := time.Parse(CanonicalDateLayout, date)
	if err != nil {
		return "", false
	}
	return parsed.Format(MonthLayout), true
}
