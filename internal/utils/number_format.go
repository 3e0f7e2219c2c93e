package utils

import (
	"github.com/shopspring/decimal"
)

// FormatWithPrecision rounds amount to precision places and drops trailing zeros.
// Example: 0.10 with precision 4 returns "0.1"
// Example: 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}

// FormatFixed formats amount with exactly places fractional digits.
// Example: 9.090909 with places 2 returns "9.09"
// Example: 50 with places 2 returns "50.00"
func FormatFixed(amount decimal.Decimal, places int32) string {
	return amount.StringFixed(places)
}

// FormatOptionalFixed is FormatFixed for optional amounts; nil renders as "".
func FormatOptionalFixed(amount *decimal.Decimal, places int32) string {
	if amount == nil {
		return ""
	}
	return FormatFixed(*amount, places)
}
