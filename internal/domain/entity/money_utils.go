package entity

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySymbol is prefixed to formatted amounts
const CurrencySymbol = "$"

// groupedAmountPattern accepts plain integers or integers grouped in thousands
// with either "." or "," as the separator
var groupedAmountPattern = regexp.MustCompile(`^-?(\d+|\d{1,3}([.,]\d{3})+)$`)

var amountPrinter = message.NewPrinter(language.English)

// ParseAmount normalizes a statement amount token such as "$ 12.500" or "-1.234".
// It strips the currency symbol, whitespace and thousands separators and returns
// nil when the remainder is not an integer. Statement amounts carry no subunits.
func ParseAmount(token string) *int64 {
	cleaned := strings.ReplaceAll(token, CurrencySymbol, "")
	cleaned = strings.Join(strings.Fields(cleaned), "")
	if cleaned == "" || !groupedAmountPattern.MatchString(cleaned) {
		return nil
	}

	cleaned = strings.NewReplacer(".", "", ",", "").Replace(cleaned)
	value, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return nil
	}
	return &value
}

// FormatAmount renders an amount for display, e.g. 12345 becomes "$12,345"
// and -500 becomes "$-500"
func FormatAmount(amount int64) string {
	return CurrencySymbol + amountPrinter.Sprintf("%d", amount)
}

// FormatAmountPtr formats an optional amount, returning an empty string for nil
func FormatAmountPtr(amount *int64) string {
	if amount == nil {
		return ""
	}
	return FormatAmount(*amount)
}

// Int64Ptr returns a pointer to v
func Int64Ptr(v int64) *int64 {
	return &v
}
