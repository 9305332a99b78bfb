package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimalOrZero parses a numeric string from the upstream store.
// Malformed values are expected data variance, not errors: a single bad
// record must not abort an aggregation, so unparsable input coerces to zero.
func ParseDecimalOrZero(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
