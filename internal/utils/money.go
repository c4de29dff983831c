package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// RoundMoney rounds a decimal amount to 2 fractional digits, half-up.
// Rounding policy is fixed here so every price in the system agrees.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
