package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount reads a decimal amount. Blank or unparsable input yields nil.
func ParseAmount(amountStr string) *decimal.Decimal {
	s := strings.TrimSpace(amountStr)
	if s == "" {
		return nil
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &amount
}

// FormatAmount renders an amount without exponent or trailing zeros.
func FormatAmount(amount decimal.Decimal) string {
	return amount.String()
}
