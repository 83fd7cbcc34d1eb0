package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"12.500", 12500},
			{"$ 12.500", 12500},
			{"$12.345", 12345},
			{"1.234.567", 1234567},
			{"-1.234", -1234},
			{"500", 500},
			{"0", 0},
			{"12,345", 12345},
			{" $ 7.000 ", 7000},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				amount := ParseAmount(tc.input)
				require.NotNil(t, amount)
				assert.Equal(t, tc.expected, *amount)
			})
		}
	})

	t.Run("Malformed amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			description string
		}{
			{"", "Empty string"},
			{"$", "Symbol only"},
			{"abc", "Non-numeric"},
			{"12.5", "Decimal fraction"},
			{"1.23.456", "Broken grouping"},
			{"99999999999999999999", "Overflow"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				assert.Nil(t, ParseAmount(tc.input))
			})
		}
	})
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$12,345", FormatAmount(12345))
	assert.Equal(t, "$0", FormatAmount(0))
	assert.Equal(t, "$1,234,567", FormatAmount(1234567))
	assert.Equal(t, "$-500", FormatAmount(-500))
	assert.Equal(t, "", FormatAmountPtr(nil))
	assert.Equal(t, "$12,500", FormatAmountPtr(Int64Ptr(12500)))
}

func TestAmountRoundTrip(t *testing.T) {
	for _, token := range []string{"12.345", "1.000", "987", "-4.321", "1.000.000"} {
		t.Run(token, func(t *testing.T) {
			parsed := ParseAmount(token)
			require.NotNil(t, parsed)

			display := FormatAmount(*parsed)
			reparsed := ParseAmount(display)
			require.NotNil(t, reparsed)
			assert.Equal(t, *parsed, *reparsed)
			assert.Equal(t, display, FormatAmount(*reparsed))
		})
	}
}
